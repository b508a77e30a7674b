// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kinnison/harvey/internal/resolve"
	"github.com/kinnison/harvey/internal/slides"
	"github.com/kinnison/harvey/pkg/diag"
)

// Report is one slide's fully resolved metadata as emitted by the
// metadata-extraction mode, keyed by source file and slide position
// within it.
type Report struct {
	File     string         `yaml:"file"`
	Slide    int            `yaml:"slide"`
	Metadata map[string]any `yaml:"metadata"`
}

// Lint runs the resolution pipeline in metadata-extraction mode:
// every slide's resolved metadata is reported without rendering, and
// instead of halting at the first bad slide it collects that slide's
// diagnostic and carries on with the state the previous slide left.
// Deck-level failures still abort, since nothing can be resolved
// without a base configuration.
func Lint(path string) ([]Report, diag.List) {
	a, err := prepare(path)
	if err != nil {
		return nil, asList(err)
	}

	var reports []Report
	var errs diag.List

	r := resolve.New(a.deck.BaseMeta)
	for _, name := range a.df.Slides {
		text, err := os.ReadFile(filepath.Join(a.dir, name))
		if err != nil {
			errs = append(errs, diag.Wrap(diag.CodeDeckFile, name, 0, "",
				fmt.Errorf("reading slide file: %w", err)))
			continue
		}
		raws, err := slides.Split(name, string(text))
		if err != nil {
			errs = append(errs, asList(err)...)
			continue
		}
		for _, raw := range raws {
			slide, err := r.Next(name, raw)
			if err != nil {
				errs = append(errs, asList(err)...)
				continue
			}
			reports = append(reports, Report{
				File:     name,
				Slide:    raw.Index,
				Metadata: slide.Metadata,
			})
		}
	}
	return reports, errs
}

// asList coerces any pipeline error into a diagnostics list.
func asList(err error) diag.List {
	switch e := err.(type) {
	case diag.List:
		return e
	case *diag.Error:
		return diag.List{e}
	default:
		return diag.List{diag.Wrap(diag.CodeDeckFile, "", 0, "", err)}
	}
}
