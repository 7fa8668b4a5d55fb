package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"exact fit", 1, 5, 10, 2},
		{"remainder rounds up", 1, 5, 12, 3},
		{"single partial page", 1, 5, 3, 1},
		{"empty listing", 1, 5, 0, 0},
		{"defaults applied", 0, 0, 12, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNormalize(t *testing.T) {
	page, limit := Normalize(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 5, limit)

	page, limit = Normalize(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 5, limit)

	page, limit = Normalize(4, 20)
	assert.Equal(t, 4, page)
	assert.Equal(t, 20, limit)
}
