// Package aggregate implements the list pipeline shared by every view:
// search-filter, group-and-sum, and pagination over an arbitrary record type.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stakeledger/stakeledger/internal/paging"
)

// Fields extracts the searchable text of a record.
type Fields[T any] func(T) []string

// Key extracts the grouping key of a record.
type Key[T any] func(T) string

// Amount extracts the value summed per group.
type Amount[T any] func(T) decimal.Decimal

// Spec describes how a record type is searched and grouped.
type Spec[T any] struct {
	Fields Fields[T]
	Key    Key[T]
	Amount Amount[T]
}

// Query is the caller-controlled part of a pipeline run.
type Query struct {
	Text       string
	Page       int
	PageSize   int
	MaxButtons int // navigation window size; 0 means no window
}

// Result is the output of Run.
type Result[T any] struct {
	Filtered   []T
	Grouped    Groups
	Page       []T
	PageIndex  int
	TotalPages int
	Window     []int
}

// Filter returns the records where at least one field contains text,
// ignoring case. An empty text matches everything. Order is preserved.
func Filter[T any](records []T, text string, fields Fields[T]) []T {
	if text == "" {
		return append([]T(nil), records...)
	}
	needle := strings.ToLower(text)
	var out []T
	for _, r := range records {
		if matches(fields(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// GroupSum sums amount per key in a single pass, keeping keys in order of
// first occurrence.
func GroupSum[T any](records []T, key Key[T], amount Amount[T]) Groups {
	var g Groups
	for _, r := range records {
		g.add(key(r), amount(r))
	}
	return g
}

// Paginate returns the records on page. The page must be within
// [1, TotalPages]; callers clamp with paging.ClampPage first.
func Paginate[T any](records []T, page, pageSize int) ([]T, error) {
	start, end, err := paging.Bounds(page, pageSize, len(records))
	if err != nil {
		return nil, err
	}
	return records[start:end:end], nil
}

// Run executes the whole pipeline. The requested page is clamped; an empty
// filtered set yields zero pages and an empty page without error.
func Run[T any](records []T, q Query, spec Spec[T]) (Result[T], error) {
	filtered := Filter(records, q.Text, spec.Fields)
	total, err := paging.TotalPages(len(filtered), q.PageSize)
	if err != nil {
		return Result[T]{}, fmt.Errorf("aggregating: %w", err)
	}

	res := Result[T]{
		Filtered:   filtered,
		Grouped:    GroupSum(filtered, spec.Key, spec.Amount),
		PageIndex:  paging.ClampPage(q.Page, total),
		TotalPages: total,
	}
	if total == 0 {
		return res, nil
	}

	res.Page, err = Paginate(filtered, res.PageIndex, q.PageSize)
	if err != nil {
		return Result[T]{}, fmt.Errorf("aggregating: %w", err)
	}
	res.Window = paging.PageWindow(total, res.PageIndex, q.MaxButtons)
	return res, nil
}
