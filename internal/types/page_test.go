package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageableNormalize(t *testing.T) {
	p := Pageable{Page: -3, Size: 0}.Normalize(10)
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, 0, p.Offset())

	p = Pageable{Page: 2, Size: 500}.Normalize(10)
	assert.Equal(t, MaxPageSize, p.Size)
	assert.Equal(t, 200, p.Offset())

	p = Pageable{Page: math.MaxInt, Size: MaxPageSize}.Normalize(10)
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.Offset())
}

func TestPageNavigation(t *testing.T) {
	tests := []struct {
		name      string
		number    int
		total     int64
		pages     int
		hasPrev   bool
		hasNext   bool
		wantEmpty bool
	}{
		{name: "empty", number: 0, total: 0, pages: 1, wantEmpty: true},
		{name: "single page", number: 0, total: 7, pages: 1},
		{name: "first of three", number: 0, total: 25, pages: 3, hasNext: true},
		{name: "middle", number: 1, total: 25, pages: 3, hasPrev: true, hasNext: true},
		{name: "last", number: 2, total: 25, pages: 3, hasPrev: true},
		{name: "exact multiple", number: 1, total: 20, pages: 2, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var content []int
			if !tt.wantEmpty {
				content = []int{1}
			}
			page := NewPage(content, Pageable{Page: tt.number, Size: 10}, tt.total)
			assert.Equal(t, tt.pages, page.TotalPages())
			assert.Equal(t, tt.hasPrev, page.HasPrevious())
			assert.Equal(t, tt.hasNext, page.HasNext())
			assert.Equal(t, tt.wantEmpty, page.IsEmpty())
			assert.Len(t, page.Numbers(), tt.pages)
		})
	}
}
