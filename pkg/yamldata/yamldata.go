// Package yamldata loads template contexts from YAML documents. The
// document must have a mapping at the top level; scalars collapse to
// leaves in their textual form.
package yamldata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/templet/templet/pkg/templet"
)

// FromYAML decodes a YAML document into a context map.
func FromYAML(data []byte) (templet.MapValue, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding context document: %w", err)
	}
	ctx, err := templet.MapFromGo(raw)
	if err != nil {
		return nil, fmt.Errorf("converting context document: %w", err)
	}
	return ctx, nil
}

// LoadFile reads and decodes the YAML document at path.
func LoadFile(path string) (templet.MapValue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading context document: %w", err)
	}
	return FromYAML(data)
}
