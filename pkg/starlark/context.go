// Package starlark loads template contexts from Starlark programs. A
// context script is executed once and its exported globals become the
// root map the renderer resolves tag paths against.
package starlark

import (
	"fmt"
	"log/slog"
	"os"

	"go.starlark.net/starlark"

	"github.com/templet/templet/pkg/templet"
)

// LoadContext executes the Starlark file at path and converts its exported
// globals into a context map. Globals whose names start with an underscore
// and callables are skipped.
func LoadContext(path string) (templet.MapValue, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading context script: %w", err)
	}
	return ExecContext(path, src)
}

// ExecContext executes Starlark source and collects the exported globals.
// The filename is used only for error positions.
func ExecContext(filename string, src []byte) (templet.MapValue, error) {
	thread := &starlark.Thread{
		Name: "templet-context",
		Print: func(_ *starlark.Thread, msg string) {
			slog.Info("starlark print", "file", filename, "message", msg)
		},
	}

	globals, err := starlark.ExecFile(thread, filename, src, starlark.StringDict{})
	if err != nil {
		return nil, fmt.Errorf("executing context script: %w", err)
	}

	ctx := make(templet.MapValue, len(globals))
	for name, value := range globals {
		if len(name) > 0 && name[0] == '_' {
			continue
		}
		switch value.(type) {
		case *starlark.Function, *starlark.Builtin:
			continue
		}
		tv, err := FromStarlark(value)
		if err != nil {
			return nil, fmt.Errorf("global %q: %w", name, err)
		}
		ctx[name] = tv
	}
	return ctx, nil
}
