package shared_test

import (
	"math"
	"pakt/shared"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "fewer than a page", total: 3, limit: 10, expected: 1},
		{name: "no items", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 5, limit: 0, expected: 1},
		{name: "negative limit", total: 5, limit: -1, expected: 1},
		{name: "huge total", total: math.MaxInt, limit: 2, expected: math.MaxInt/2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "P4K7FUND_u53r_71m3z0n3", expected: "P4K7FUND_u53r_71m3z0n3"},
		{name: "device", prefix: "P4K7FUND_u53r_71m3z0n3", parts: []string{"phone"}, expected: "P4K7FUND_u53r_71m3z0n3:phone"},
		{name: "limiter", prefix: "limiter", parts: []string{"timezone", "10.0.0.1", "curl/8"}, expected: "limiter:timezone:10.0.0.1:curl/8"},
		{name: "empty part kept", prefix: "limiter", parts: []string{"", "ua"}, expected: "limiter::ua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		perPage  int
		page     int
		expected []int
	}{
		{name: "first page", perPage: 2, page: 1, expected: []int{1, 2}},
		{name: "last partial page", perPage: 2, page: 3, expected: []int{5}},
		{name: "past the end", perPage: 2, page: 4, expected: []int{}},
		{name: "zero page", perPage: 2, page: 0, expected: []int{}},
		{name: "zero per page", perPage: 0, page: 1, expected: []int{}},
		{name: "huge page", perPage: 2, page: math.MaxInt, expected: []int{}},
		{name: "huge per page", perPage: math.MaxInt, page: 1, expected: []int{1, 2, 3, 4, 5}},
		{name: "huge page and per page", perPage: math.MaxInt, page: math.MaxInt, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.Paginate(items, tt.perPage, tt.page))
		})
	}
}

type record struct {
	ID        string
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r record) CreatedTime() time.Time { return r.CreatedAt }
func (r record) UpdatedTime() time.Time { return r.UpdatedAt }

func recordID(r record) string { return r.ID }

func TestRemoveDuplicates(t *testing.T) {
	items := []record{
		{ID: "a", Label: "first a"},
		{ID: "b", Label: "b"},
		{ID: "a", Label: "second a"},
	}

	result := shared.RemoveDuplicates(items, recordID)

	assert.Equal(t, []record{
		{ID: "a", Label: "second a"},
		{ID: "b", Label: "b"},
	}, result)
}

func TestSortLatestFirst(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	items := []record{
		{ID: "old", CreatedAt: base},
		{ID: "updated-only", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "new", CreatedAt: base.Add(time.Hour)},
	}

	result := shared.SortLatestFirst(items, recordID)

	ids := make([]string, 0, len(result))
	for _, r := range result {
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []string{"updated-only", "new", "old"}, ids)
	assert.Equal(t, "old", items[0].ID, "input is not reordered")
}
