// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"slices"

	"github.com/kinnison/harvey/internal/merge"
	"github.com/kinnison/harvey/pkg/diag"
	"github.com/kinnison/harvey/pkg/types"
)

// ParseMetaPatch converts a decoded YAML value into a meta-block
// patch. The value must be a mapping; each field is converted
// explicitly so a bad field reports its own key rather than a generic
// decode failure.
func ParseMetaPatch(v any) (types.MetaPatch, error) {
	var p types.MetaPatch

	m, ok := v.(map[string]any)
	if !ok {
		return p, diag.New(diag.CodeMetadataDecode, "", 0, types.MetaKey,
			"meta block must be a mapping, got %T", v)
	}

	for key, val := range m {
		switch key {
		case "content-name":
			s, err := metaString(key, val)
			if err != nil {
				return p, err
			}
			p.ContentName = &s
		case "content-list":
			s, err := metaString(key, val)
			if err != nil {
				return p, err
			}
			p.ContentList = &s
		case "default-template":
			s, err := metaString(key, val)
			if err != nil {
				return p, err
			}
			p.DefaultTemplate = &s
		case "inherit":
			set, err := metaSet(key, val)
			if err != nil {
				return p, err
			}
			p.Inherit = &set
		case "require":
			set, err := metaSet(key, val)
			if err != nil {
				return p, err
			}
			p.Require = &set
		case "deny":
			set, err := metaSet(key, val)
			if err != nil {
				return p, err
			}
			p.Deny = &set
		case "ratio":
			s, err := metaString(key, val)
			if err != nil {
				return p, err
			}
			ratio, err := types.ParseRatio(s)
			if err != nil {
				return p, err
			}
			p.Ratio = &ratio
		default:
			return p, diag.New(diag.CodeMetadataDecode, "", 0, key,
				"unknown meta block key")
		}
	}
	return p, nil
}

// ApplyMeta merges a patch into the meta block in force. Present
// fields fully replace their counterparts; the set-valued fields
// replace wholesale, except that a "default" sentinel element splices
// the built-in default set back in.
func ApplyMeta(cfg *types.MetaConfig, p types.MetaPatch) {
	def := types.DefaultMeta()

	if p.ContentName != nil {
		cfg.ContentName = *p.ContentName
	}
	if p.ContentList != nil {
		cfg.ContentList = *p.ContentList
	}
	if p.DefaultTemplate != nil {
		cfg.DefaultTemplate = *p.DefaultTemplate
	}
	if p.Inherit != nil {
		cfg.Inherit = merge.Strings(slices.Clone(*p.Inherit), def.Inherit)
	}
	if p.Require != nil {
		cfg.Require = merge.Strings(slices.Clone(*p.Require), def.Require)
	}
	if p.Deny != nil {
		cfg.Deny = merge.Strings(slices.Clone(*p.Deny), def.Deny)
	}
	if p.Ratio != nil {
		cfg.Ratio = *p.Ratio
	}
}

func metaString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", diag.New(diag.CodeMetadataDecode, "", 0, key,
			"meta %s must be a string, got %T", key, v)
	}
	return s, nil
}

func metaSet(key string, v any) ([]string, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, diag.New(diag.CodeMetadataDecode, "", 0, key,
			"meta %s must be a sequence of strings, got %T", key, v)
	}
	out := make([]string, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, diag.New(diag.CodeMetadataDecode, "", 0, key,
				"meta %s element %d must be a string, got %T", key, i, e)
		}
		out[i] = s
	}
	return out, nil
}
