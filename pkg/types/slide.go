// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "maps"

// Slide is one fully-resolved slide. Instances are immutable once the
// resolver has produced them. No slide references another slide:
// inherited values are copied forward during resolution, never shared.
type Slide struct {
	// Index is the 1-based position of the slide across the whole deck.
	Index int `yaml:"index"`

	// File identifies the slide file the slide came from.
	File string `yaml:"file"`

	// Metadata is the final flat attribute mapping, including the
	// resolved meta block under "meta" and the two generated content
	// keys named by the meta block.
	Metadata map[string]any `yaml:"metadata"`

	// Template is the template name to expand for this slide.
	Template string `yaml:"template"`

	// ContentParts are the slide's content fragments in order.
	ContentParts []string `yaml:"content-parts"`

	// Notes is the presenter-notes text, possibly empty.
	Notes string `yaml:"notes,omitempty"`

	// Meta is the meta block in force when the slide was resolved.
	Meta MetaConfig `yaml:"-"`
}

// RenderContext builds the flat context handed to the template stage:
// the slide's metadata overlaid on the deck's global context.
func (s Slide) RenderContext(global map[string]any) map[string]any {
	ctx := make(map[string]any, len(global)+len(s.Metadata))
	maps.Copy(ctx, global)
	maps.Copy(ctx, s.Metadata)
	return ctx
}

// Deck is a fully-assembled deck: the ordered slides plus the
// deck-level configuration the render and asset stages consume.
// A Deck is built once per invocation and read-only afterwards.
type Deck struct {
	Slides        []Slide        `yaml:"slides"`
	BaseMeta      MetaConfig     `yaml:"base-meta"`
	Styles        []string       `yaml:"styles"`
	Scripts       []string       `yaml:"scripts"`
	TemplatePaths []string       `yaml:"template-path"`
	GlobalContext map[string]any `yaml:"global-context"`
}
