// Package templet implements a small string-template engine. Templates
// interleave literal text with substitution tags {$ path }, conditional
// blocks {% if path %}...{% elif path %}...{% else %}...{% endif %}, and
// loops {% for path as alias %}...{% endfor %}. Paths address a tree of
// string, list, and map values with dot and index notation. A '{' followed
// by '\' escapes the tag: {\$ x } emits {$ x }.
//
// Parsing and rendering are synchronous and allocate nothing shared; a
// parsed Document is immutable and may be rendered concurrently as long as
// the supplied value tree is not mutated underneath it. Recursion depth is
// bounded by block nesting depth, which is a caller responsibility.
package templet

import (
	"fmt"
	"os"
)

// TemplateString is template source that validates and renders on demand.
type TemplateString string

// Validate parses the template and reports any structural error.
func (t TemplateString) Validate() error {
	if _, err := Parse(string(t)); err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}
	return nil
}

// Render parses the template and renders it against ctx.
func (t TemplateString) Render(ctx MapValue) (string, error) {
	doc, err := Parse(string(t))
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	return NewRenderer().Render(doc, ctx)
}

// Render parses src and renders it against ctx in one call.
func Render(src string, ctx MapValue) (string, error) {
	return TemplateString(src).Render(ctx)
}

// Templet holds template text and the result of the last successful parse.
//
//	var data = templet.MapValue{"first_name": templet.StringValue("John")}
//	tpl := templet.New("Hello, {$ first_name }!")
//	out, err := tpl.Parse(data) // "Hello, John!"
type Templet struct {
	text   string
	result string
}

// New constructs a Templet with template text.
func New(text string) *Templet {
	return &Templet{text: text}
}

// SetTemplate replaces the template text and discards any previous result.
func (t *Templet) SetTemplate(text string) {
	t.text = text
	t.result = ""
}

// SetTemplateFromFile loads template text from a file. On failure the
// previous text and result are kept.
func (t *Templet) SetTemplateFromFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	t.SetTemplate(string(b))
	return nil
}

// Parse renders the template against values and stores the result. The
// template is re-parsed on every call; a failed render stores nothing and
// leaves Result empty.
func (t *Templet) Parse(values MapValue) (string, error) {
	t.result = ""
	out, err := Render(t.text, values)
	if err != nil {
		return "", err
	}
	t.result = out
	return out, nil
}

// Result returns the output of the last successful Parse.
func (t *Templet) Result() string {
	return t.result
}

// Save writes the last result to a file, replacing existing content.
func (t *Templet) Save(path string) error {
	if err := os.WriteFile(path, []byte(t.result), 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
