package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	tmplstarlark "github.com/templet/templet/pkg/starlark"
	"github.com/templet/templet/pkg/templet"
	"github.com/templet/templet/pkg/yamldata"
)

var contextPath string
var outputPath string
var verbose bool

// loadContext picks a loader by file extension. Starlark scripts can
// compute their values; YAML documents are plain data.
func loadContext(path string) (templet.MapValue, error) {
	if path == "" {
		return templet.MapValue{}, nil
	}
	switch ext := filepath.Ext(path); ext {
	case ".star", ".bzl":
		return tmplstarlark.LoadContext(path)
	case ".yaml", ".yml":
		return yamldata.LoadFile(path)
	default:
		return nil, fmt.Errorf("unsupported context format %q (want .yaml, .yml, .star or .bzl)", ext)
	}
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(data), nil
}

var rootCmd = cobra.Command{
	Use:   "templet",
	Short: "A tool to render string templates against YAML or Starlark contexts",
}

var renderCmd = cobra.Command{
	Use:   "render [template]",
	Short: "Render the specified template file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no template specified")
		}
		src, err := readTemplate(args[0])
		if err != nil {
			return err
		}
		ctx, err := loadContext(contextPath)
		if err != nil {
			return err
		}
		if verbose {
			slog.Info("rendering", "template", args[0], "context", contextPath, "values", len(ctx))
		}

		out, err := templet.Render(src, ctx)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", args[0], err)
		}

		if outputPath != "" {
			return os.WriteFile(outputPath, []byte(out), 0o644)
		}
		fmt.Print(out)
		return nil
	},
}

var astCmd = cobra.Command{
	Use:   "ast [template]",
	Short: "Print the parse tree of the specified template file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no template specified")
		}
		src, err := readTemplate(args[0])
		if err != nil {
			return err
		}
		doc, err := templet.Parse(src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		fmt.Print(templet.Pretty(doc))
		return nil
	},
}

var validateCmd = cobra.Command{
	Use:   "validate [template...]",
	Short: "Check template files for syntax errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no templates specified")
		}
		var bad []string
		for _, path := range args {
			src, err := readTemplate(path)
			if err != nil {
				return err
			}
			if err := templet.TemplateString(src).Validate(); err != nil {
				slog.Error("invalid template", "path", path, "error", err)
				bad = append(bad, path)
				continue
			}
			if verbose {
				slog.Info("valid template", "path", path)
			}
		}
		if len(bad) > 0 {
			return fmt.Errorf("invalid templates: %s", strings.Join(bad, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	renderCmd.Flags().StringVarP(&contextPath, "context", "c", "", "Path to a YAML or Starlark context file")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to a file instead of stdout")
	rootCmd.AddCommand(&renderCmd)

	rootCmd.AddCommand(&astCmd)
	rootCmd.AddCommand(&validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
