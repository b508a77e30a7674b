// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve implements slide metadata resolution: the stateful
// sequential scan that carries inherited values from slide to slide,
// merges each slide's own metadata and meta block, enforces the
// require/deny rules, and produces the final per-slide attribute
// mapping. Slides must be fed in document order; each resolution step
// depends on the carry left by the previous one.
// See docs/ARCHITECTURE § Metadata Resolution.
package resolve

import (
	"maps"

	"go.yaml.in/yaml/v3"

	"github.com/kinnison/harvey/internal/slides"
	"github.com/kinnison/harvey/pkg/diag"
	"github.com/kinnison/harvey/pkg/types"
)

// Resolver threads resolution state across the slides of a deck: the
// meta block currently in force and the values carried forward under
// its inherit set. State only advances when a slide resolves cleanly,
// so a lint pass can skip a broken slide and keep the carry its
// predecessor left.
type Resolver struct {
	meta  types.MetaConfig
	carry map[string]any
	count int
}

// New seeds a resolver from the deck's base meta block and an empty
// carry.
func New(base types.MetaConfig) *Resolver {
	return &Resolver{
		meta:  base.Clone(),
		carry: map[string]any{},
	}
}

// Next resolves one raw slide record into a final Slide. file and
// raw.Index locate any diagnostic; the returned slide's Index is its
// 1-based position across the whole deck.
func (r *Resolver) Next(file string, raw slides.Raw) (*types.Slide, error) {
	// Inherited values first, own metadata on top.
	mapping := maps.Clone(r.carry)

	own, err := decodeMapping(raw.Meta)
	if err != nil {
		return nil, locate(err, file, raw.Index)
	}
	maps.Copy(mapping, own)

	// Merge the slide's own meta block, if any, into the meta
	// config in force. Work on a clone so a failing slide leaves
	// the resolver state untouched.
	cfg := r.meta.Clone()
	if rawMeta, ok := own[types.MetaKey]; ok {
		patch, err := ParseMetaPatch(rawMeta)
		if err != nil {
			return nil, locate(err, file, raw.Index)
		}
		ApplyMeta(&cfg, patch)
	}

	if err := cfg.Validate(); err != nil {
		return nil, locate(err, file, raw.Index)
	}

	// Require/deny run against the overlaid mapping, with the meta
	// key itself counting as a checkable key.
	for _, key := range cfg.Require {
		if _, ok := mapping[key]; !ok {
			return nil, diag.New(diag.CodeMissingRequiredKey, file, raw.Index, key,
				"required key is missing")
		}
	}
	for _, key := range cfg.Deny {
		if _, ok := mapping[key]; ok {
			return nil, diag.New(diag.CodeForbiddenKeyPresent, file, raw.Index, key,
				"denied key is present")
		}
	}

	template := cfg.DefaultTemplate
	if v, ok := mapping[types.TemplateKey]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, diag.New(diag.CodeMetadataDecode, file, raw.Index, types.TemplateKey,
				"template must be a string, got %T", v)
		}
		template = s
	}

	// The resolved meta block replaces whatever raw or inherited
	// value sat under the meta key.
	mapping[types.MetaKey] = cfg.Clone()

	// Generated content keys always win over user values under the
	// same names.
	body := slides.SectionBody(raw.Body)
	fragments := body.Fragments()
	mapping[cfg.ContentName] = body.Whole()
	mapping[cfg.ContentList] = fragments

	// Commit: next carry is this mapping restricted to the inherit
	// set now in force. Values are copied by reference only; nothing
	// mutates them after resolution.
	carry := make(map[string]any, len(cfg.Inherit))
	for _, key := range cfg.Inherit {
		if v, ok := mapping[key]; ok {
			carry[key] = v
		}
	}
	r.meta = cfg
	r.carry = carry
	r.count++

	return &types.Slide{
		Index:        r.count,
		File:         file,
		Metadata:     mapping,
		Template:     template,
		ContentParts: fragments,
		Notes:        body.TrimmedNotes(),
		Meta:         cfg.Clone(),
	}, nil
}

// Meta returns the meta block currently in force.
func (r *Resolver) Meta() types.MetaConfig {
	return r.meta.Clone()
}

// decodeMapping decodes raw slide metadata text into a mapping. Empty
// metadata is an empty mapping; anything that decodes to a non-mapping
// is an error.
func decodeMapping(raw string) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal([]byte(raw), &m); err != nil {
		return nil, diag.Wrap(diag.CodeMetadataDecode, "", 0, "", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// locate stamps file and slide position onto a diagnostic that was
// produced without them.
func locate(err error, file string, slide int) error {
	if e, ok := err.(*diag.Error); ok {
		if e.File == "" {
			e.File = file
		}
		if e.Slide == 0 {
			e.Slide = slide
		}
		return e
	}
	return err
}
