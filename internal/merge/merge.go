// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge implements default-sentinel splicing for deck
// configuration values. A user value normally replaces the built-in
// default outright; writing the sentinel asks for the default to be
// folded back in: as a base for mappings, or spliced in place for
// sequences. Both the deck assembler and the metadata resolver use
// the same operation. See docs/ARCHITECTURE § Default Merging.
package merge

import "maps"

// Sentinel is the literal marker requesting built-in defaults: a
// "default" key in a mapping, or a "default" element in a sequence.
const Sentinel = "default"

// Map merges a user mapping against a built-in default. When the user
// mapping carries a truthy Sentinel key, the result is the default
// with the user's remaining entries applied on top (user wins) and
// the sentinel removed. Otherwise the user mapping is returned
// unchanged. The result is always a fresh map.
func Map(user, builtin map[string]any) map[string]any {
	if !truthy(user[Sentinel]) {
		return maps.Clone(user)
	}
	out := make(map[string]any, len(builtin)+len(user))
	maps.Copy(out, builtin)
	for k, v := range user {
		if k == Sentinel {
			continue
		}
		out[k] = v
	}
	return out
}

// List merges a user sequence against a built-in default. The first
// Sentinel element is replaced in place by the whole default
// sequence; any later Sentinel elements stay as literal elements.
// Without a sentinel the user sequence is returned unchanged.
func List(user, builtin []any) []any {
	at := -1
	for i, v := range user {
		if s, ok := v.(string); ok && s == Sentinel {
			at = i
			break
		}
	}
	if at < 0 {
		return user
	}
	out := make([]any, 0, len(user)-1+len(builtin))
	out = append(out, user[:at]...)
	out = append(out, builtin...)
	out = append(out, user[at+1:]...)
	return out
}

// Strings is List specialized to string sequences, the shape of the
// deck's styles, scripts, and template-path lists.
func Strings(user, builtin []string) []string {
	at := -1
	for i, s := range user {
		if s == Sentinel {
			at = i
			break
		}
	}
	if at < 0 {
		return user
	}
	out := make([]string, 0, len(user)-1+len(builtin))
	out = append(out, user[:at]...)
	out = append(out, builtin...)
	out = append(out, user[at+1:]...)
	return out
}

// Value dispatches over the closed set of YAML value shapes. Mappings
// and sequences merge per Map and List; scalars replace the default
// outright and are returned unchanged.
func Value(user, builtin any) any {
	switch u := user.(type) {
	case map[string]any:
		b, _ := builtin.(map[string]any)
		return Map(u, b)
	case []any:
		b, _ := builtin.([]any)
		return List(u, b)
	default:
		return user
	}
}

// truthy decides whether a sentinel key's value requests merging.
// Absent keys and explicit false-ish scalars do not.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}
