package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		param   string
		number  int
		count   int
		offset  int
		hasPrev bool
		hasNext bool
	}{
		{"first page of 13", 13, "", 1, 2, 0, false, true},
		{"second page of 13", 13, "2", 2, 2, 10, true, false},
		{"beyond last clamps", 13, "99", 2, 2, 10, true, false},
		{"non-numeric means first", 13, "abc", 1, 2, 0, false, true},
		{"zero means first", 13, "0", 1, 2, 0, false, true},
		{"negative means first", 13, "-3", 1, 2, 0, false, true},
		{"empty listing", 0, "", 1, 1, 0, false, false},
		{"exact multiple", 20, "2", 2, 2, 10, true, false},
		{"single page", 7, "", 1, 1, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.total, tt.param)
			assert.Equal(t, tt.number, page.Number)
			assert.Equal(t, tt.count, page.Count)
			assert.Equal(t, tt.offset, page.Offset)
			assert.Equal(t, PageSize, page.Limit)
			assert.Equal(t, tt.hasPrev, page.HasPrev)
			assert.Equal(t, tt.hasNext, page.HasNext)
		})
	}
}

func TestPaginateWindowsDoNotOverlap(t *testing.T) {
	first := Paginate(13, "1")
	second := Paginate(13, "2")
	assert.Equal(t, first.Offset+first.Limit, second.Offset)
}
