package types

import "math"

// Pageable is a zero-based page request bound from the query string
type Pageable struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// MaxPageSize caps client supplied page sizes
const MaxPageSize = 100

// MaxPage keeps Offset within a 32-bit row offset
const MaxPage = math.MaxInt32 / MaxPageSize

// Normalize fills in defaults and clamps out of range values
func (p Pageable) Normalize(defaultSize int) Pageable {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset of the page
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a sorted result set
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// NewPage assembles a page from a query result
func NewPage[T any](content []T, p Pageable, total int64) Page[T] {
	return Page[T]{
		Content:       content,
		Number:        p.Page,
		Size:          p.Size,
		TotalElements: total,
	}
}

// TotalPages returns the number of pages, at least one
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.TotalElements == 0 {
		return 1
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) IsFirst() bool { return p.Number == 0 }

func (p Page[T]) IsLast() bool { return p.Number >= p.TotalPages()-1 }

func (p Page[T]) HasPrevious() bool { return p.Number > 0 }

func (p Page[T]) HasNext() bool { return !p.IsLast() }

func (p Page[T]) Previous() int { return p.Number - 1 }

func (p Page[T]) Next() int { return p.Number + 1 }

// Numbers lists the page indexes to render in a pager
func (p Page[T]) Numbers() []int {
	n := p.TotalPages()
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// IsEmpty reports whether the page has no rows
func (p Page[T]) IsEmpty() bool { return len(p.Content) == 0 }
