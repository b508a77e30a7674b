// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import "strings"

// Body is a slide body sectioned into ordered content parts and
// presenter notes. Parts and Notes preserve the source lines exactly
// (separator lines removed); the trimming applied for metadata values
// happens in the accessor methods so the raw body can be
// reconstructed byte-for-byte.
type Body struct {
	// Parts are the raw content fragments, in order. Always at
	// least one element.
	Parts []string
	// Notes is the raw notes text following the "???" line.
	Notes string
	// HasNotes records whether a "???" line was present at all,
	// distinguishing absent notes from empty ones.
	HasNotes bool
}

// SectionBody cuts a raw slide body at the first "???" line into
// content and notes, then cuts the content at every "***" line into
// fragments. The separator lines themselves are dropped.
func SectionBody(raw string) Body {
	lines := splitLines(raw)

	var b Body
	content := lines
	for i, line := range lines {
		if line == notesSeparator {
			content = lines[:i]
			b.Notes = strings.Join(lines[i+1:], "\n")
			b.HasNotes = true
			break
		}
	}

	start := 0
	for i, line := range content {
		if line == partSeparator {
			b.Parts = append(b.Parts, strings.Join(content[start:i], "\n"))
			start = i + 1
		}
	}
	b.Parts = append(b.Parts, strings.Join(content[start:], "\n"))
	return b
}

// Whole returns the whole-content string: the content text with the
// separator lines removed and everything else in original order and
// spacing, trimmed of leading and trailing whitespace.
func (b Body) Whole() string {
	return strings.TrimSpace(strings.Join(b.Parts, "\n"))
}

// Fragments returns the content parts with each fragment trimmed of
// leading and trailing whitespace.
func (b Body) Fragments() []string {
	out := make([]string, len(b.Parts))
	for i, p := range b.Parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// TrimmedNotes returns the notes trimmed of surrounding whitespace.
func (b Body) TrimmedNotes() string {
	return strings.TrimSpace(b.Notes)
}

// Reassemble reconstructs the raw body the sectioning came from, with
// the "***" and "???" separator lines reinserted.
func (b Body) Reassemble() string {
	out := strings.Join(b.Parts, "\n"+partSeparator+"\n")
	if b.HasNotes {
		out += "\n" + notesSeparator
		if b.Notes != "" {
			out += "\n" + b.Notes
		}
	}
	return out
}
