// Package listing derives the visible slice of a collection: criteria
// filtering followed by pagination. Both steps are pure linear scans.
package listing

import (
	"math"
	"strings"
)

// All disables the status or type criterion.
const All = "all"

// DefaultPageSize matches the dashboard tables.
const DefaultPageSize = 25

// Record is what the filter engine needs to know about an element.
type Record interface {
	SearchText() []string
	FilterStatus() string
	FilterCategory() string
}

// Criteria are ANDed together. Empty Status or Type behaves like All.
type Criteria struct {
	Search string `form:"search" json:"search"`
	Status string `form:"status" json:"status"`
	Type   string `form:"type" json:"type"`
}

// Filter returns the records matching every criterion, in input order.
// The input slice is not modified.
func Filter[T Record](records []T, c Criteria) []T {
	search := strings.ToLower(c.Search)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !matchesSearch(r, search) {
			continue
		}
		if !matchesExact(r.FilterStatus(), c.Status) {
			continue
		}
		if !matchesExact(r.FilterCategory(), c.Type) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r Record, lowered string) bool {
	if lowered == "" {
		return true
	}
	for _, field := range r.SearchText() {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

func matchesExact(value, want string) bool {
	return want == "" || want == All || value == want
}

// Paginate returns records[page*pageSize : page*pageSize+pageSize], clipped
// to the available length. A negative page is treated as 0; a non-positive
// pageSize or a page past the end yields an empty slice.
func Paginate[T any](records []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return []T{}
	}
	if page < 0 {
		page = 0
	}
	if page > 0 && pageSize > math.MaxInt/page {
		return []T{}
	}
	start := page * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) || end < start {
		end = len(records)
	}
	return append([]T{}, records[start:end]...)
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
