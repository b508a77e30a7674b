// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/kinnison/harvey/internal/merge"
	"github.com/kinnison/harvey/internal/resolve"
	"github.com/kinnison/harvey/internal/resources"
	"github.com/kinnison/harvey/internal/slides"
	"github.com/kinnison/harvey/pkg/diag"
	"github.com/kinnison/harvey/pkg/types"
)

// assembly is the shared deck-level preparation for the build and
// lint paths: the decoded deck file plus the empty deck with all
// deck-level merges already applied.
type assembly struct {
	df   *File
	dir  string
	deck *types.Deck
}

// prepare loads the deck file and performs every deck-level merge:
// base meta over the built-in meta, asset lists and the highlight map
// over the embedded defaults, and the global context.
func prepare(path string) (*assembly, error) {
	df, err := Load(path)
	if err != nil {
		return nil, err
	}

	defaults, err := resources.BuiltinDeckDefaults()
	if err != nil {
		return nil, err
	}

	baseMeta := types.DefaultMeta()
	if df.Meta != nil {
		patch, err := resolve.ParseMetaPatch(df.Meta)
		if err != nil {
			return nil, locateDeck(err, path)
		}
		resolve.ApplyMeta(&baseMeta, patch)
		if err := baseMeta.Validate(); err != nil {
			return nil, locateDeck(err, path)
		}
	}

	highlight := mapOrDefault(df.TreeSitterHighlight, defaults.TreeSitterHighlight)

	d := &types.Deck{
		BaseMeta:      baseMeta,
		Styles:        listOrDefault(df.Styles, defaults.Styles),
		Scripts:       listOrDefault(df.Scripts, defaults.Scripts),
		TemplatePaths: listOrDefault(df.TemplatePath, defaults.TemplatePath),
		GlobalContext: globalContext(df, baseMeta, highlight),
	}

	return &assembly{df: df, dir: filepath.Dir(path), deck: d}, nil
}

// listOrDefault falls back to the built-in list when the deck file
// omits the key entirely; a present list replaces the default, with
// sentinel splicing available.
func listOrDefault(user, builtin []string) []string {
	if user == nil {
		return builtin
	}
	return merge.Strings(user, builtin)
}

// mapOrDefault is listOrDefault for mapping-valued configuration.
func mapOrDefault(user, builtin map[string]any) map[string]any {
	if user == nil {
		return maps.Clone(builtin)
	}
	return merge.Map(user, builtin)
}

// globalContext builds the mapping injected into every slide's render
// context: the markdown and highlight configuration, with the user's
// free-form context on top. Dict- and list-valued user entries may use
// the default sentinel to extend the underlying value instead of
// replacing it.
func globalContext(df *File, baseMeta types.MetaConfig, highlight map[string]any) map[string]any {
	ctx := map[string]any{
		"ratio":                 baseMeta.Ratio.String(),
		"tree-sitter-highlight": highlight,
	}
	if df.Markdown != nil {
		ctx["markdown"] = df.Markdown.contextValue()
	}
	for key, val := range df.Context {
		if base, ok := ctx[key]; ok {
			ctx[key] = merge.Value(val, base)
			continue
		}
		ctx[key] = val
	}
	return ctx
}

// Build compiles the full deck: every slide file split, sectioned,
// and resolved in order, with inheritance flowing across file
// boundaries. The first error aborts the build; no partial deck is
// ever returned.
func Build(path string) (*types.Deck, error) {
	a, err := prepare(path)
	if err != nil {
		return nil, err
	}

	r := resolve.New(a.deck.BaseMeta)
	for _, name := range a.df.Slides {
		text, err := os.ReadFile(filepath.Join(a.dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading slide file %s: %w", name, err)
		}
		raws, err := slides.Split(name, string(text))
		if err != nil {
			return nil, err
		}
		for _, raw := range raws {
			slide, err := r.Next(name, raw)
			if err != nil {
				return nil, err
			}
			a.deck.Slides = append(a.deck.Slides, *slide)
		}
	}
	return a.deck, nil
}

// locateDeck stamps the deck file path onto a diagnostic raised while
// decoding deck-level configuration.
func locateDeck(err error, path string) error {
	if e, ok := err.(*diag.Error); ok && e.File == "" {
		e.File = path
	}
	return err
}
