// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck loads deck files and assembles full decks: it merges
// deck-level defaults, orders the listed slide files, and drives the
// splitter and resolver over them to produce the final slide list.
// See docs/ARCHITECTURE § Deck Assembly.
package deck

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/pkg/diag"
)

// File is the decoded top-level deck file. Only Slides is mandatory;
// everything else falls back to built-in defaults.
type File struct {
	// Markdown configures how the render stage treats Markdown
	// constructs in slide content.
	Markdown *Markdown `yaml:"markdown"`

	// Context is a free-form mapping injected into every slide's
	// render context.
	Context map[string]any `yaml:"context"`

	// Meta is a meta-block patch applied over the built-in default
	// to form the deck's base meta.
	Meta map[string]any `yaml:"meta"`

	// Styles, Scripts, and TemplatePath are ordered resource lists;
	// a "default" element splices the built-in list in.
	Styles       []string `yaml:"styles"`
	Scripts      []string `yaml:"scripts"`
	TemplatePath []string `yaml:"template-path"`

	// Slides lists the slide files making up the deck, in order.
	Slides []string `yaml:"slides"`

	// TreeSitterHighlight maps CSS class names to tree-sitter
	// highlight names; a truthy "default" key merges the built-in
	// mapping underneath.
	TreeSitterHighlight map[string]any `yaml:"tree-sitter-highlight"`
}

// Markdown is the deck's Markdown rendering configuration, passed
// through to the render stage via the global context.
type Markdown struct {
	Blockquote      *MarkdownBlockquote `yaml:"blockquote"`
	CodeBlockPrefix string              `yaml:"code-block-prefix"`
	CodeBlockFocus  string              `yaml:"code-block-focus"`
}

// MarkdownBlockquote maps blockquote admonition kinds to CSS classes.
type MarkdownBlockquote struct {
	Note      string `yaml:"note"`
	Tip       string `yaml:"tip"`
	Important string `yaml:"important"`
	Warning   string `yaml:"warning"`
	Caution   string `yaml:"caution"`
}

// Load reads and decodes a deck file. A document that is not a
// mapping, or that lists no slides, is a deck-file error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	var df File
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, diag.Wrap(diag.CodeDeckFile, path, 0, "", err)
	}
	if len(df.Slides) == 0 {
		return nil, diag.New(diag.CodeDeckFile, path, 0, "slides",
			"deck file must list at least one slide file")
	}
	return &df, nil
}

// contextValue renders the Markdown configuration as the mapping it
// occupies in the global context.
func (m *Markdown) contextValue() map[string]any {
	out := map[string]any{}
	if m.Blockquote != nil {
		bq := map[string]any{}
		for kind, class := range map[string]string{
			"note":      m.Blockquote.Note,
			"tip":       m.Blockquote.Tip,
			"important": m.Blockquote.Important,
			"warning":   m.Blockquote.Warning,
			"caution":   m.Blockquote.Caution,
		} {
			if class != "" {
				bq[kind] = class
			}
		}
		out["blockquote"] = bq
	}
	if m.CodeBlockPrefix != "" {
		out["code-block-prefix"] = m.CodeBlockPrefix
	}
	if m.CodeBlockFocus != "" {
		out["code-block-focus"] = m.CodeBlockFocus
	}
	return out
}
