// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paginated list endpoints.
//
// # Overview
//
// It standardizes how the requested page is read from the query string and how
// a page of rows is wrapped into the response envelope the frontend consumes.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// ParsePage parses a raw "page" query value.
//
// # Clamping
//
// Empty, non-numeric, zero, or negative values fall back to [DefaultPage].
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// Offset returns the SQL OFFSET for a 1-indexed page. Pages below 1 count as 1.
// Pages whose offset would overflow an int saturate at the largest whole page.
func Offset(page, size int) int {
	if page <= 1 || size <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/size {
		return math.MaxInt / size * size
	}
	return (page - 1) * size
}

// TotalPages returns ceil(total / size), or 0 when size is not positive.
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Envelope is the JSON body of a paginated list response.
type Envelope[T any] struct {
	Data                  []T  `json:"data"`
	TotalCount            int  `json:"totalCount"`
	TotalPage             int  `json:"totalPage"`
	CurrentPage           int  `json:"currentPage"`
	PageSize              int  `json:"pageSize"`
	NextPageAvailable     bool `json:"nextPageAvailable"`
	PreviousPageAvailable bool `json:"previousPageAvailable"`
}

// NewEnvelope wraps one page of rows with its derived navigation fields.
//
// It performs no validation: callers are trusted to have already limited rows
// to the page size. A nil rows slice is encoded as an empty JSON array.
func NewEnvelope[T any](rows []T, currentPage, pageSize, totalCount int) Envelope[T] {
	if rows == nil {
		rows = []T{}
	}

	totalPage := TotalPages(totalCount, pageSize)

	return Envelope[T]{
		Data:                  rows,
		TotalCount:            totalCount,
		TotalPage:             totalPage,
		CurrentPage:           currentPage,
		PageSize:              pageSize,
		NextPageAvailable:     currentPage < totalPage,
		PreviousPageAvailable: currentPage > 1,
	}
}
