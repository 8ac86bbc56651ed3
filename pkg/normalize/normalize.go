// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes free-text user input before it is used as a
// filter value or as part of a cache key.
//
// # Why NFC
//
// CJK tag names and accented Latin names can arrive either precomposed or as
// base character plus combining mark depending on the client IME. Both forms
// render the same, so they must filter the same and share a cache entry.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Term trims, NFC-normalizes, and collapses internal whitespace runs to a single space.
func Term(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// List normalizes every element of a comma-separated list and re-joins it with
// bare commas. Empty elements are kept so the caller decides how to treat them.
func List(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = Term(p)
	}
	return strings.Join(parts, ",")
}
