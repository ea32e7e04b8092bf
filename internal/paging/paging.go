// Package paging maps page numbers onto slice boundaries and navigation
// controls. Pages are 1-based.
package paging

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrPageOutOfRange  = errors.New("page out of range")
)

// TotalPages returns ceil(n/pageSize).
func TotalPages(n, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, fmt.Errorf("page size %d: %w", pageSize, ErrInvalidPageSize)
	}
	if n <= 0 {
		return 0, nil
	}
	return (n + pageSize - 1) / pageSize, nil
}

// ClampPage snaps requested into [1, totalPages]. With no pages it returns 1.
func ClampPage(requested, totalPages int) int {
	if totalPages <= 0 || requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Bounds returns the [start, end) slice boundary of page within n items.
// The page must already be clamped.
func Bounds(page, pageSize, n int) (start, end int, err error) {
	total, err := TotalPages(n, pageSize)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 || page > total {
		return 0, 0, fmt.Errorf("page %d of %d: %w", page, total, ErrPageOutOfRange)
	}
	start = (page - 1) * pageSize
	end = min(start+pageSize, n)
	return start, end, nil
}

// PageWindow returns up to maxButtons consecutive page numbers centred on
// current, shifted to stay inside [1, totalPages].
func PageWindow(totalPages, current, maxButtons int) []int {
	if totalPages <= 0 || maxButtons <= 0 {
		return nil
	}
	current = ClampPage(current, totalPages)
	size := min(maxButtons, totalPages)

	first := current - size/2
	if first < 1 {
		first = 1
	}
	last := first + size - 1
	if last > totalPages {
		last = totalPages
		first = last - size + 1
	}

	window := make([]int, 0, size)
	for p := first; p <= last; p++ {
		window = append(window, p)
	}
	return window
}
