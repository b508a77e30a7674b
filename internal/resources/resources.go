// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resources resolves named assets for a deck: templates,
// styles, and scripts. Lookup walks the deck's template paths in
// reverse order, so paths listed later override earlier ones, and
// falls back to the embedded built-in bundle when no path has the
// file. The bundle also carries the built-in deck defaults the
// assembler merges against.
package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

//go:embed assets
var builtin embed.FS

// defaultsAsset names the embedded built-in deck defaults.
const defaultsAsset = "defaults.yaml"

// Get retrieves a resource by name. It returns the content plus the
// disk path it was read from, or an empty path when the embedded
// bundle served it. A resource found nowhere reports fs.ErrNotExist.
func Get(paths []string, name string) ([]byte, string, error) {
	for i := len(paths) - 1; i >= 0; i-- {
		p := filepath.Join(paths[i], name)
		content, err := os.ReadFile(p)
		switch {
		case err == nil:
			return content, p, nil
		case os.IsNotExist(err):
			continue
		default:
			return nil, "", fmt.Errorf("reading resource %s: %w", p, err)
		}
	}

	content, err := builtin.ReadFile("assets/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("resource %q: %w", name, fs.ErrNotExist)
	}
	return content, "", nil
}

// Exists reports whether a resource can be resolved at all.
func Exists(paths []string, name string) bool {
	_, _, err := Get(paths, name)
	return err == nil
}

// LoadYAML retrieves a resource and decodes it as YAML into out.
func LoadYAML(paths []string, name string, out any) error {
	content, from, err := Get(paths, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		if from == "" {
			from = "embedded " + name
		}
		return fmt.Errorf("parsing %s: %w", from, err)
	}
	return nil
}

// DeckDefaults are the built-in deck-level defaults: the asset lists
// and the tree-sitter highlight class mapping.
type DeckDefaults struct {
	Styles              []string       `yaml:"styles"`
	Scripts             []string       `yaml:"scripts"`
	TemplatePath        []string       `yaml:"template-path"`
	TreeSitterHighlight map[string]any `yaml:"tree-sitter-highlight"`
}

// BuiltinDeckDefaults loads the embedded deck defaults.
func BuiltinDeckDefaults() (DeckDefaults, error) {
	var d DeckDefaults
	if err := LoadYAML(nil, defaultsAsset, &d); err != nil {
		return d, fmt.Errorf("loading built-in deck defaults: %w", err)
	}
	return d, nil
}
