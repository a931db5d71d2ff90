package templet

// Node is any AST node in a parsed template.
type Node interface {
	node()
}

// Document is the root node produced by Parse.
type Document struct {
	Nodes []Node
}

func (*Document) node() {}

// TextNode represents literal text between tags.
type TextNode struct {
	Text string
}

func (*TextNode) node() {}

// ValueNode represents a substitution tag: {$ path }. An unresolved path
// renders nothing; a resolved non-leaf is an invalid tag.
type ValueNode struct {
	Path string
}

func (*ValueNode) node() {}

// IfNode represents one branch of an if/elif/else chain. Next points at
// the continuation taken when Path does not resolve; the chain is
// right-nested, never a flat sibling list. An empty Path marks the
// unconditional else branch and must only appear at the end of a chain.
type IfNode struct {
	Path string
	Body []Node
	Next *IfNode
}

func (*IfNode) node() {}

// ForNode represents a loop: {% for path as alias %}. Each iteration
// renders Body against the enclosing scope extended with alias bound to
// the current element.
type ForNode struct {
	Path  string
	Alias string
	Body  []Node
}

func (*ForNode) node() {}
