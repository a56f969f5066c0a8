package shared

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

const cacheKeySeparator = ":"

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return pageCount(total, limit)
}

// pageCount rounds total/limit up without overflowing.
func pageCount(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return pages
}

// BuildCacheKey joins prefix and parts with ":". Empty parts are kept so that a
// missing device id still yields a distinct, stable key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// Paginate returns the items of a 1-based page.
func Paginate[T any](items []T, itemsPerPage, currentPage int) []T {
	if itemsPerPage <= 0 || currentPage <= 0 {
		return []T{}
	}

	// Bounding the page first keeps the offset below len(items).
	if currentPage > pageCount(len(items), itemsPerPage) {
		return []T{}
	}

	start := (currentPage - 1) * itemsPerPage
	end := start + min(itemsPerPage, len(items)-start)

	return items[start:end]
}

// RemoveDuplicates keeps one item per key. Each key sits where it was first seen but
// holds the last item with that key.
func RemoveDuplicates[T any, K comparable](items []T, key func(T) K) []T {
	index := make(map[K]int, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = item

			continue
		}

		index[k] = len(out)
		out = append(out, item)
	}

	return out
}

// Dated is anything carrying creation and update times.
type Dated interface {
	CreatedTime() time.Time
	UpdatedTime() time.Time
}

// SortLatestFirst orders items newest first by creation time, falling back to the update
// time when the creation time is unset, then drops items sharing a key.
func SortLatestFirst[T Dated, K comparable](items []T, key func(T) K) []T {
	stamp := func(item T) time.Time {
		if created := item.CreatedTime(); !created.IsZero() {
			return created
		}

		return item.UpdatedTime()
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(stamp(b).UnixNano(), stamp(a).UnixNano())
	})

	return RemoveDuplicates(sorted, key)
}
