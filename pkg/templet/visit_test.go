package templet

import (
	"strings"
	"testing"
)

type countingVisitor struct {
	counts map[string]int
}

func (c *countingVisitor) Visit(n Node) error {
	switch n.(type) {
	case *TextNode:
		c.counts["text"]++
	case *ValueNode:
		c.counts["value"]++
	case *IfNode:
		c.counts["if"]++
	case *ForNode:
		c.counts["for"]++
	}
	return nil
}

func TestWalk(t *testing.T) {
	doc := mustParse(t, "a{$ x }{% if p %}b{% elif q %}{$ y }{% else %}c{% endif %}{% for xs as i %}{$ i }{% endfor %}")
	v := &countingVisitor{counts: map[string]int{}}
	if err := Walk(v, doc); err != nil {
		t.Fatalf("walk: %v", err)
	}
	// Three chain branches count as if nodes; the loop body value and the
	// elif body value count with the top-level ones.
	if v.counts["if"] != 3 {
		t.Fatalf("if count: %d", v.counts["if"])
	}
	if v.counts["for"] != 1 {
		t.Fatalf("for count: %d", v.counts["for"])
	}
	if v.counts["value"] != 3 {
		t.Fatalf("value count: %d", v.counts["value"])
	}
	if v.counts["text"] != 3 {
		t.Fatalf("text count: %d", v.counts["text"])
	}
}

func TestPretty(t *testing.T) {
	doc := mustParse(t, "A{$ x }{% if p %}B{% else %}C{% endif %}{% for xs as i %}{$ i }{% endfor %}")
	s := Pretty(doc)
	for _, want := range []string{"Document", `Value("x")`, `If("p")`, "Else", `For("xs" as i)`} {
		if !strings.Contains(s, want) {
			t.Fatalf("pretty output missing %q:\n%s", want, s)
		}
	}
}
