// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides tokenizes slide-file source text. The splitter cuts
// a file into raw slide records along marker lines; the sectioner
// cuts one record's body into content fragments and presenter notes.
// Neither stage interprets metadata; that is the resolver's job.
// See docs/ARCHITECTURE § Source Format.
package slides

import (
	"strings"

	"github.com/kinnison/harvey/pkg/diag"
)

// notesSeparator splits a slide body into content and presenter notes.
const notesSeparator = "???"

// partSeparator splits slide content into ordered fragments.
const partSeparator = "***"

// metaTerminator ends a wide-marker (four or more dashes) metadata
// block. Narrow three-dash markers terminate at the first blank line
// instead.
const metaTerminator = "..."

// Raw is one slide as cut from the source text, before any metadata
// interpretation: the marker that opened it, its raw metadata text,
// and its raw body text.
type Raw struct {
	// Index is the 1-based position of the slide within its file.
	Index int
	// Line is the 1-based line number of the opening marker.
	Line int
	// MarkerWidth is the dash count of the opening marker.
	MarkerWidth int
	// Meta is the raw metadata text between marker and terminator.
	Meta string
	// Body is the raw body text between terminator and the next
	// marker or end of file.
	Body string
}

// isMarker reports whether line opens a new slide: three or more
// dashes and nothing else. Shorter dash runs stay ordinary text so
// Markdown setext underlines cannot open slides by accident.
func isMarker(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, c := range line {
		if c != '-' {
			return false
		}
	}
	return true
}

// Split cuts the full text of one slide file into raw slide records
// in document order. The file must open with a marker line; each
// marker's width selects the metadata termination rule (width 3:
// first blank line; width 4+: a line of exactly "..."). The
// terminator is consumed. A metadata block still open at end of file
// is fatal.
func Split(file, text string) ([]Raw, error) {
	lines := splitLines(text)
	if len(lines) == 0 || !isMarker(lines[0]) {
		return nil, diag.New(diag.CodeMalformedDeck, file, 0, "", "deck must open with a slide marker")
	}

	var out []Raw
	i := 0
	for i < len(lines) {
		marker := lines[i]
		rec := Raw{
			Index:       len(out) + 1,
			Line:        i + 1,
			MarkerWidth: len(marker),
		}

		terminator := ""
		if rec.MarkerWidth >= 4 {
			terminator = metaTerminator
		}

		// Metadata runs from the line after the marker to the
		// terminator. Marker lines are not recognized here; a
		// dash run inside metadata is metadata text.
		i++
		metaStart := i
		for i < len(lines) && lines[i] != terminator {
			i++
		}
		if i == len(lines) {
			return nil, diag.New(diag.CodeMalformedDeck, file, rec.Index, "",
				"metadata opened at line %d is never terminated", rec.Line)
		}
		rec.Meta = strings.Join(lines[metaStart:i], "\n")
		i++ // consume the terminator

		bodyStart := i
		for i < len(lines) && !isMarker(lines[i]) {
			i++
		}
		rec.Body = strings.Join(lines[bodyStart:i], "\n")

		out = append(out, rec)
	}
	return out, nil
}

// splitLines splits text the way a line iterator would: no trailing
// empty line for a trailing newline, carriage returns stripped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
