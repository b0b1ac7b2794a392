// Package pagination slices pre-fetched result sets into fixed pages.
//
// The store's query layer filters on at most one field and cannot sort
// server-side, so the full filtered set is materialized in memory before
// paging. That is acceptable at small-to-moderate catalog sizes and is
// bounded by the repository scan cap; it does not scale past that by
// design.
package pagination

import (
	"sort"
	"time"
)

// Page is the envelope returned for one slice of a result set.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// Paginate sorts items by createdAt descending (stable, so equal
// timestamps keep arrival order) and returns the 1-indexed page of size
// pageSize. The input slice is never mutated.
//
// A page before 1 or past the last yields empty Items with HasMore=false.
// An empty input yields TotalPages=0. pageSize below 1 is normalized to 1.
func Paginate[T any](items []T, page, pageSize int, createdAt func(T) time.Time) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})

	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize

	out := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   pageSize,
		Total:      int64(total),
		TotalPages: totalPages,
	}
	if page < 1 || page > totalPages {
		return out
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	out.Items = sorted[start:end]
	out.HasMore = page < totalPages
	return out
}
