package templet

import (
	"strings"
)

// Parse parses template source into a Document AST. It recognizes literal
// text, escaped tags {\...}, substitutions {$ path }, and the block
// statements if/elif/else/endif and for ... as .../endfor. Nested blocks
// are parsed by recursion: the call depth mirrors the block depth.
func Parse(src string) (*Document, error) {
	p := &parser{l: newLexer([]byte(src))}
	nodes, _, _, err := p.parseNodes(nil)
	if err != nil {
		return nil, err
	}
	return &Document{Nodes: nodes}, nil
}

type parser struct {
	l *lexer
}

// terminators is the closed set of keywords that end a block rather than
// open one. Which of them are legal at a given nesting level is decided by
// the until set passed to parseNodes; any other occurrence is an error.
var terminators = map[string]bool{
	"elif":   true,
	"else":   true,
	"endif":  true,
	"endfor": true,
}

var ifContinuations = map[string]bool{
	"elif":  true,
	"else":  true,
	"endif": true,
}

// parseNodes parses sibling nodes until it consumes a terminator keyword
// named in until, or runs out of input. End of input closes every open
// block; a terminator not named in until is an invalid tag. It returns the
// terminator that ended this level ("" at end of input) and its arguments.
func (p *parser) parseNodes(until map[string]bool) (nodes []Node, endTag, endArgs string, err error) {
	for {
		text, found := p.l.textUntilOpen()
		if text != "" {
			nodes = append(nodes, &TextNode{Text: text})
		}
		if !found {
			return nodes, "", "", nil
		}

		body, closed := p.l.tagBody()
		if !closed {
			// The template ends mid-tag; keep the remainder literally.
			nodes = append(nodes, &TextNode{Text: "{" + body})
			return nodes, "", "", nil
		}

		if body == "" {
			return nil, "", "", &InvalidTagError{Reason: "empty tag"}
		}

		switch body[0] {
		case '\\':
			// Escaped tag: emit it literally with one escape level removed.
			nodes = append(nodes, &TextNode{Text: "{" + body[1:] + "}"})

		case '$':
			path := strings.TrimSpace(body[1:])
			if err := ValidatePath(path); err != nil {
				return nil, "", "", err
			}
			nodes = append(nodes, &ValueNode{Path: path})

		case '%':
			stmt, ok := strings.CutSuffix(body[1:], "%")
			if !ok {
				return nil, "", "", &InvalidTagError{Reason: "block tag must be closed with %}"}
			}
			name, args := splitNameArgs(stmt)
			if terminators[name] {
				if until == nil || !until[name] {
					return nil, "", "", &InvalidTagError{Reason: "unexpected " + name}
				}
				return nodes, name, args, nil
			}
			switch name {
			case "if":
				n, err := p.parseIf(args)
				if err != nil {
					return nil, "", "", err
				}
				nodes = append(nodes, n)
			case "for":
				n, err := p.parseFor(stmt)
				if err != nil {
					return nil, "", "", err
				}
				nodes = append(nodes, n)
			default:
				return nil, "", "", &InvalidTagError{Reason: "unrecognized tag keyword: " + name}
			}

		default:
			return nil, "", "", &InvalidTagError{Reason: "unrecognized tag: {" + body + "}"}
		}
	}
}

// parseIf builds an if/elif/else chain. Each continuation is the Next of
// the branch before it, so the chain is right-nested by construction. The
// chain ends at endif or at end of input; an unterminated block is valid.
func (p *parser) parseIf(cond string) (*IfNode, error) {
	if err := ValidatePath(cond); err != nil {
		return nil, err
	}
	n := &IfNode{Path: cond}
	body, endTag, endArgs, err := p.parseNodes(ifContinuations)
	if err != nil {
		return nil, err
	}
	n.Body = body

	cur := n
	for endTag == "elif" {
		if err := ValidatePath(endArgs); err != nil {
			return nil, err
		}
		next := &IfNode{Path: endArgs}
		next.Body, endTag, endArgs, err = p.parseNodes(ifContinuations)
		if err != nil {
			return nil, err
		}
		cur.Next = next
		cur = next
	}
	if endTag == "else" {
		if endArgs != "" {
			return nil, &InvalidTagError{Reason: "else takes no arguments"}
		}
		next := &IfNode{}
		next.Body, endTag, endArgs, err = p.parseNodes(map[string]bool{"endif": true})
		if err != nil {
			return nil, err
		}
		cur.Next = next
	}
	if endTag == "endif" && endArgs != "" {
		return nil, &InvalidTagError{Reason: "endif takes no arguments"}
	}
	return n, nil
}

// parseFor parses the clause "for <source> as <alias>" and the loop body.
// The clause must be exactly four words; the alias is a plain name with no
// dots or indices.
func (p *parser) parseFor(stmt string) (*ForNode, error) {
	words := strings.Fields(stmt)
	if len(words) != 4 {
		return nil, &ExpressionSyntaxError{Reason: "for expressions must contain exactly four words"}
	}
	if words[0] != "for" || words[2] != "as" {
		return nil, &ExpressionSyntaxError{Reason: "for expression must have the form 'for <source> as <alias>'"}
	}
	if err := ValidatePath(words[1]); err != nil {
		return nil, err
	}
	if !validName(words[3]) {
		return nil, &InvalidTagError{Reason: "loop alias must only contain a-zA-Z0-9_-"}
	}
	n := &ForNode{Path: words[1], Alias: words[3]}
	body, endTag, endArgs, err := p.parseNodes(map[string]bool{"endfor": true})
	if err != nil {
		return nil, err
	}
	if endTag == "endfor" && endArgs != "" {
		return nil, &InvalidTagError{Reason: "endfor takes no arguments"}
	}
	n.Body = body
	return n, nil
}

func splitNameArgs(stmt string) (name, args string) {
	s := strings.TrimSpace(stmt)
	if s == "" {
		return "", ""
	}
	i := 0
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
