package templet

import (
	"bytes"
	"fmt"
)

// Renderer walks a parsed Document against a context tree and produces the
// output string. A Renderer holds no state between calls; the same Document
// may be rendered concurrently against independent contexts.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

func (r *Renderer) Render(doc *Document, ctx MapValue) (string, error) {
	var buf bytes.Buffer
	if err := r.renderNodes(&buf, doc.Nodes, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) renderNodes(buf *bytes.Buffer, nodes []Node, scope MapValue) error {
	for _, n := range nodes {
		switch t := n.(type) {
		case *TextNode:
			buf.WriteString(t.Text)

		case *ValueNode:
			v, err := Resolve(t.Path, scope)
			if err != nil {
				return err
			}
			if v == nil {
				// Unresolved substitutions render nothing.
				continue
			}
			s, ok := v.(StringValue)
			if !ok {
				return &InvalidTagError{Reason: fmt.Sprintf("name %q must reference a string, not a %s", t.Path, v.Kind())}
			}
			buf.WriteString(string(s))

		case *IfNode:
			if err := r.renderIf(buf, t, scope); err != nil {
				return err
			}

		case *ForNode:
			if err := r.renderFor(buf, t, scope); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unhandled node type: %T", n)
		}
	}
	return nil
}

// renderIf walks the continuation chain and renders the body of the first
// branch whose path resolves. Presence decides truth: an empty leaf is
// still truthy, only an absent name is false. A branch with an empty path
// is the else branch and always renders.
func (r *Renderer) renderIf(buf *bytes.Buffer, n *IfNode, scope MapValue) error {
	for ; n != nil; n = n.Next {
		if n.Path == "" {
			return r.renderNodes(buf, n.Body, scope)
		}
		v, err := Resolve(n.Path, scope)
		if err != nil {
			return err
		}
		if v != nil {
			return r.renderNodes(buf, n.Body, scope)
		}
	}
	return nil
}

// renderFor iterates the list the source path resolves to. Unlike a
// condition, the source must exist. Every iteration renders against a
// fresh copy of the enclosing scope with the alias bound to the current
// element, so bindings never leak between iterations or out of the loop.
func (r *Renderer) renderFor(buf *bytes.Buffer, n *ForNode, scope MapValue) error {
	v, err := Resolve(n.Path, scope)
	if err != nil {
		return err
	}
	if v == nil {
		return &MissingTagError{Name: n.Path}
	}
	list, ok := v.(ListValue)
	if !ok {
		return &InvalidTagError{Reason: fmt.Sprintf("name %q must reference a list, not a %s", n.Path, v.Kind())}
	}
	if _, exists := scope[n.Alias]; exists {
		return &InvalidTagError{Reason: fmt.Sprintf("loop alias %q collides with an existing name", n.Alias)}
	}
	for _, item := range list {
		inner := make(MapValue, len(scope)+1)
		for k, sv := range scope {
			inner[k] = sv
		}
		inner[n.Alias] = item
		if err := r.renderNodes(buf, n.Body, inner); err != nil {
			return err
		}
	}
	return nil
}
