// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

// Package slug derives ASCII URL slugs from event titles.
//
// # Usage
//
// Slugs are the public identifiers for events (e.g., "react-conf-2024").
// Derivation is deterministic and idempotent: re-deriving from an existing
// slug returns the same string, so a title edit always maps to exactly one
// canonical slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonWord matches characters outside word chars, whitespace, and hyphens.
	// These are stripped outright rather than replaced, so "Conf 2024!"
	// becomes "conf-2024" and not "conf-2024-".
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// whitespaceRun collapses any whitespace sequence into a single hyphen.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// hyphenRun collapses multiple consecutive hyphens into one.
	hyphenRun = regexp.MustCompile(`-+`)
)

// Derive converts an arbitrary Unicode title into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
//  1. Normalizes to NFD and removes combining marks (é → e).
//  2. Converts to lowercase and trims surrounding whitespace.
//  3. Strips special characters (anything outside word chars, spaces, hyphens).
//  4. Collapses whitespace runs to single hyphens.
//  5. Collapses hyphen runs and trims leading/trailing hyphens.
//
// Derive is total: every input produces some slug. A title consisting solely
// of punctuation derives to the empty string — callers on the write path must
// decide whether an empty slug is acceptable.
func Derive(title string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, title)

	// 2. Lowercase and trim
	result = strings.TrimSpace(strings.ToLower(result))

	// 3. Strip special characters
	result = nonWord.ReplaceAllString(result, "")

	// 4. Whitespace runs become single hyphens
	result = whitespaceRun.ReplaceAllString(result, "-")

	// 5. Clean up hyphenation
	result = hyphenRun.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
