package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageSize   int
		want       int
	}{
		{name: "even split", totalCount: 100, pageSize: 10, want: 10},
		{name: "remainder adds a page", totalCount: 101, pageSize: 10, want: 11},
		{name: "empty set has zero pages", totalCount: 0, pageSize: 10, want: 0},
		{name: "single short page", totalCount: 3, pageSize: 10, want: 1},
		{name: "page size of one", totalCount: 4, pageSize: 1, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, tt.totalCount, 1, tt.pageSize)
			assert.Equal(t, tt.want, p.TotalPages)
		})
	}
}

func TestPage_BoundaryFlags(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageNumber int
		pageSize   int
		wantPrev   bool
		wantNext   bool
	}{
		{name: "first of many", totalCount: 100, pageNumber: 1, pageSize: 10, wantPrev: false, wantNext: true},
		{name: "middle page", totalCount: 100, pageNumber: 5, pageSize: 10, wantPrev: true, wantNext: true},
		{name: "last page", totalCount: 100, pageNumber: 10, pageSize: 10, wantPrev: true, wantNext: false},
		{name: "only page", totalCount: 5, pageNumber: 1, pageSize: 10, wantPrev: false, wantNext: false},
		{name: "beyond the end", totalCount: 100, pageNumber: 11, pageSize: 10, wantPrev: true, wantNext: false},
		{name: "empty set", totalCount: 0, pageNumber: 1, pageSize: 10, wantPrev: false, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, tt.totalCount, tt.pageNumber, tt.pageSize)
			assert.Equal(t, tt.wantPrev, p.HasPreviousPage())
			assert.Equal(t, tt.wantNext, p.HasNextPage())
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{PageNumber: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, PageQuery{PageNumber: 2, PageSize: 10}.Offset())
	assert.Equal(t, 6, PageQuery{PageNumber: 4, PageSize: 2}.Offset())
}
