package repository

import "math"

// Page is a bounded view over an ordered snapshot of records plus the
// metadata needed to walk the full set. It is recomputed on every
// listing request and never cached.
// T is typically a model type.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int
	TotalPages int
}

// NewPage computes pagination metadata for one window of items.
// TotalPages uses real-valued division before rounding up, so a zero
// total yields zero pages. A window fully or partially beyond the total
// simply carries fewer than pageSize items; out-of-range pages are not
// an error condition.
func NewPage[T any](items []T, totalCount, pageNumber, pageSize int) *Page[T] {
	return &Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}
}

// HasPreviousPage reports whether any page precedes this one.
func (p *Page[T]) HasPreviousPage() bool {
	return p.PageNumber > 1
}

// HasNextPage reports whether any page follows this one.
func (p *Page[T]) HasNextPage() bool {
	return p.PageNumber < p.TotalPages
}
