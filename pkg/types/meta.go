// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared across the deck compiler:
// the reserved meta block, resolved slides, and assembled decks.
// See docs/ARCHITECTURE § Data Model.
package types

import (
	"slices"

	"github.com/kinnison/harvey/pkg/diag"
)

// MetaKey is the reserved metadata key that carries the meta block.
const MetaKey = "meta"

// TemplateKey is the metadata key naming a slide's template.
const TemplateKey = "template"

// MetaConfig is the reserved control block governing resolution: the
// names of the generated content keys, the fallback template, the
// inheritance and validation sets, and the screen ratio. It is a
// structured record rather than a free-form mapping so arbitrary user
// keys cannot shadow its fields.
type MetaConfig struct {
	ContentName     string   `json:"content-name" yaml:"content-name"`
	ContentList     string   `json:"content-list" yaml:"content-list"`
	DefaultTemplate string   `json:"default-template" yaml:"default-template"`
	Inherit         []string `json:"inherit" yaml:"inherit"`
	Require         []string `json:"require" yaml:"require"`
	Deny            []string `json:"deny" yaml:"deny"`
	Ratio           Ratio    `json:"ratio" yaml:"ratio"`
}

// DefaultMeta returns the built-in meta block every deck starts from.
func DefaultMeta() MetaConfig {
	return MetaConfig{
		ContentName:     "harvey-content",
		ContentList:     "harvey-contents",
		DefaultTemplate: "harvey-slide",
		Inherit:         []string{MetaKey, TemplateKey},
		Require:         []string{},
		Deny:            []string{},
		Ratio:           Ratio{Width: 16, Height: 9},
	}
}

// Clone deep-copies the meta block so a resolved slide's snapshot is
// insulated from later merges.
func (m MetaConfig) Clone() MetaConfig {
	m.Inherit = slices.Clone(m.Inherit)
	m.Require = slices.Clone(m.Require)
	m.Deny = slices.Clone(m.Deny)
	return m
}

// Inherits reports whether key is in the inherit set.
func (m MetaConfig) Inherits(key string) bool {
	return slices.Contains(m.Inherit, key)
}

// Validate enforces the meta-block invariant: "meta" must stay in the
// inherit set and must never enter the deny set. Without it the block
// itself would stop propagating and resolution state would be lost.
func (m MetaConfig) Validate() error {
	if !slices.Contains(m.Inherit, MetaKey) {
		return diag.New(diag.CodeMetaInvariant, "", 0, MetaKey, "%q must be in the inherit set", MetaKey)
	}
	if slices.Contains(m.Deny, MetaKey) {
		return diag.New(diag.CodeMetaInvariant, "", 0, MetaKey, "%q must not be in the deny set", MetaKey)
	}
	return nil
}

// MetaPatch is a partial meta block as written in deck or slide YAML.
// Only present fields replace the corresponding MetaConfig fields;
// the set-valued fields replace wholesale (subject to default-sentinel
// splicing, which the resolver handles).
type MetaPatch struct {
	ContentName     *string   `yaml:"content-name"`
	ContentList     *string   `yaml:"content-list"`
	DefaultTemplate *string   `yaml:"default-template"`
	Inherit         *[]string `yaml:"inherit"`
	Require         *[]string `yaml:"require"`
	Deny            *[]string `yaml:"deny"`
	Ratio           *Ratio    `yaml:"ratio"`
}

// IsZero reports whether the patch carries no fields at all.
func (p MetaPatch) IsZero() bool {
	return p.ContentName == nil && p.ContentList == nil && p.DefaultTemplate == nil &&
		p.Inherit == nil && p.Require == nil && p.Deny == nil && p.Ratio == nil
}
