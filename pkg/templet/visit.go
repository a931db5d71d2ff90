package templet

import (
	"bytes"
	"fmt"
)

type Visitor interface {
	Visit(n Node) error
}

// Walk calls v.Visit on n and every node beneath it, including each branch
// of an if/elif/else chain.
func Walk(v Visitor, n Node) error {
	if err := v.Visit(n); err != nil {
		return err
	}
	switch t := n.(type) {
	case *Document:
		for _, c := range t.Nodes {
			if err := Walk(v, c); err != nil {
				return err
			}
		}
	case *IfNode:
		for _, c := range t.Body {
			if err := Walk(v, c); err != nil {
				return err
			}
		}
		if t.Next != nil {
			if err := Walk(v, t.Next); err != nil {
				return err
			}
		}
	case *ForNode:
		for _, c := range t.Body {
			if err := Walk(v, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pretty returns a line-oriented string representation of the AST.
func Pretty(doc *Document) string {
	var buf bytes.Buffer
	ppNode(&buf, 0, doc)
	return buf.String()
}

func ppNode(buf *bytes.Buffer, indent int, n Node) {
	ind := func() {
		for i := 0; i < indent; i++ {
			buf.WriteByte(' ')
		}
	}
	switch t := n.(type) {
	case *Document:
		ind()
		buf.WriteString("Document\n")
		for _, c := range t.Nodes {
			ppNode(buf, indent+2, c)
		}
	case *TextNode:
		ind()
		fmt.Fprintf(buf, "Text(%q)\n", t.Text)
	case *ValueNode:
		ind()
		fmt.Fprintf(buf, "Value(%q)\n", t.Path)
	case *IfNode:
		ppIf(buf, indent, t, "If")
	case *ForNode:
		ind()
		fmt.Fprintf(buf, "For(%q as %s)\n", t.Path, t.Alias)
		for _, c := range t.Body {
			ppNode(buf, indent+2, c)
		}
	}
}

func ppIf(buf *bytes.Buffer, indent int, n *IfNode, label string) {
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}
	if n.Path == "" {
		buf.WriteString("Else\n")
	} else {
		fmt.Fprintf(buf, "%s(%q)\n", label, n.Path)
	}
	for _, c := range n.Body {
		ppNode(buf, indent+2, c)
	}
	if n.Next != nil {
		ppIf(buf, indent, n.Next, "Elif")
	}
}
