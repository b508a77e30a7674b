// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diag defines the typed diagnostics produced by a deck build.
// Every failure in the pipeline is reported as a *Error carrying a
// stable code plus enough location context (file, slide number, key)
// to point straight at the offending source.
package diag

import (
	"fmt"
	"strings"
)

// Code identifies a class of build failure.
type Code string

const (
	// CodeMalformedDeck indicates a slide file whose delimiter
	// structure is broken: missing opening marker or an unterminated
	// metadata block.
	CodeMalformedDeck Code = "malformed-deck"
	// CodeMetadataDecode indicates slide metadata that is not a YAML
	// mapping, or does not decode at all.
	CodeMetadataDecode Code = "metadata-decode"
	// CodeMetaInvariant indicates a meta block where "meta" has been
	// removed from the inherit set or added to the deny set.
	CodeMetaInvariant Code = "meta-invariant"
	// CodeMissingRequiredKey indicates a slide lacking a key the meta
	// block requires.
	CodeMissingRequiredKey Code = "missing-required-key"
	// CodeForbiddenKeyPresent indicates a slide carrying a key the
	// meta block denies.
	CodeForbiddenKeyPresent Code = "forbidden-key-present"
	// CodeInvalidRatio indicates a ratio that is not W:H with both
	// components positive.
	CodeInvalidRatio Code = "invalid-ratio"
	// CodeDeckFile indicates a malformed deck file: not a mapping, or
	// no slides listed.
	CodeDeckFile Code = "deck-file"
)

// Error is a single build diagnostic. Slide is 1-based within the
// slide file; zero means the error is not tied to a particular slide.
type Error struct {
	Code  Code
	File  string
	Slide int
	Key   string
	Msg   string
	Err   error
}

// Error renders the diagnostic as "code: file, slide N, key K: msg".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.File != "" {
		fmt.Fprintf(&b, ": %s", e.File)
	}
	if e.Slide > 0 {
		fmt.Fprintf(&b, ", slide %d", e.Slide)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, ", key %q", e.Key)
	}
	if e.Msg != "" {
		fmt.Fprintf(&b, ": %s", e.Msg)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a diagnostic with a formatted message.
func New(code Code, file string, slide int, key, format string, args ...any) *Error {
	return &Error{
		Code:  code,
		File:  file,
		Slide: slide,
		Key:   key,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// Wrap builds a diagnostic around an underlying error.
func Wrap(code Code, file string, slide int, key string, err error) *Error {
	return &Error{Code: code, File: file, Slide: slide, Key: key, Err: err}
}

// CodeOf returns the diagnostic code of err, or the empty code when
// err is not a *Error.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}

// List collects diagnostics for modes that keep going past the first
// failure, such as metadata linting.
type List []*Error

// Error joins the collected diagnostics, one per line.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ErrOrNil returns the list as an error, or nil when it is empty.
func (l List) ErrOrNil() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
