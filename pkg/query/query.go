// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses list-shaped URL query parameters.
package query

import "strings"

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings. Empty segments are dropped.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// FirstOf returns the first non-empty value among the given keys.
//
// It lets one handler accept several historical spellings of a parameter.
func FirstOf(get func(string) string, keys ...string) string {
	for _, key := range keys {
		if v := get(key); v != "" {
			return v
		}
	}
	return ""
}
