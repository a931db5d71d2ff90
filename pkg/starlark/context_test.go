package starlark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.starlark.net/starlark"

	"github.com/templet/templet/pkg/templet"
)

func TestExecContext(t *testing.T) {
	src := []byte(`
name = "John"
port = 8080
debug = True
ratio = 3.5
items = ["first", "second"]
server = {"hostname": "localhost", "ips": ["10.0.0.1"]}
_private = "hidden"

def helper():
    return 1
`)
	ctx, err := ExecContext("ctx.star", src)
	if err != nil {
		t.Fatalf("exec: %v", err)
	}

	cases := []struct {
		path, want string
	}{
		{"name", "John"},
		{"port", "8080"},
		{"debug", "true"},
		{"ratio", "3.5"},
		{"items[1]", "second"},
		{"server.hostname", "localhost"},
		{"server.ips[0]", "10.0.0.1"},
	}
	for _, tc := range cases {
		v, err := templet.Resolve(tc.path, ctx)
		if err != nil {
			t.Fatalf("resolve %q: %v", tc.path, err)
		}
		if s, ok := v.(templet.StringValue); !ok || string(s) != tc.want {
			t.Fatalf("resolve %q: got %#v, want %q", tc.path, v, tc.want)
		}
	}

	if _, ok := ctx["_private"]; ok {
		t.Fatalf("underscore global must be skipped")
	}
	if _, ok := ctx["helper"]; ok {
		t.Fatalf("function global must be skipped")
	}
}

func TestExecContextRendersTemplate(t *testing.T) {
	src := []byte(`
users = [{"name": "Ann"}, {"name": "Bob"}]
`)
	ctx, err := ExecContext("users.star", src)
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	out, err := templet.Render("{% for users as u %}{$ u.name };{% endfor %}", ctx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Ann;Bob;" {
		t.Fatalf("got %q", out)
	}
}

func TestExecContextSyntaxError(t *testing.T) {
	if _, err := ExecContext("bad.star", []byte("name = =")); err == nil {
		t.Fatalf("want syntax error")
	}
}

func TestLoadContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ctx.star")
	if err := os.WriteFile(path, []byte(`greeting = "hello"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ctx, err := LoadContext(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s := ctx["greeting"].(templet.StringValue); string(s) != "hello" {
		t.Fatalf("got %#v", ctx["greeting"])
	}

	if _, err := LoadContext(filepath.Join(t.TempDir(), "missing.star")); err == nil {
		t.Fatalf("want error for missing file")
	}
}

func TestValueRoundTrip(t *testing.T) {
	orig := templet.MapValue{
		"name":  templet.StringValue("John"),
		"items": templet.Strings("a", "b"),
		"nested": templet.MapValue{
			"inner": templet.Strings("x"),
		},
	}
	sv, err := ToStarlark(orig)
	if err != nil {
		t.Fatalf("to starlark: %v", err)
	}
	back, err := FromStarlark(sv)
	if err != nil {
		t.Fatalf("from starlark: %v", err)
	}
	m, ok := back.(templet.MapValue)
	if !ok {
		t.Fatalf("not a map: %#v", back)
	}
	if s := m["name"].(templet.StringValue); string(s) != "John" {
		t.Fatalf("name: %#v", m["name"])
	}
	items := m["items"].(templet.ListValue)
	if len(items) != 2 || string(items[1].(templet.StringValue)) != "b" {
		t.Fatalf("items: %#v", items)
	}
	inner := m["nested"].(templet.MapValue)["inner"].(templet.ListValue)
	if string(inner[0].(templet.StringValue)) != "x" {
		t.Fatalf("inner: %#v", inner)
	}
}

func TestFromStarlarkUnsupported(t *testing.T) {
	_, err := FromStarlark(starlark.NewBuiltin("f", nil))
	if err == nil || !strings.Contains(err.Error(), "cannot convert") {
		t.Fatalf("want conversion error, got %v", err)
	}
}
