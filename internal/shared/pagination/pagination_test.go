package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"empty input falls back", "", "", 1, 12},
		{"valid values pass through", "3", "24", 3, 24},
		{"zero page falls back", "0", "24", 1, 24},
		{"negative page falls back", "-2", "24", 1, 24},
		{"non-numeric falls back", "two", "many", 1, 12},
		{"limit above cap falls back", "1", "500", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.page, tt.limit, 12)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestSkip(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 12}.Skip())
	assert.Equal(t, 24, Params{Page: 3, Limit: 12}.Skip())
}

func TestNewMeta(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		m := NewMeta(Params{Page: 2, Limit: 10}, 35)
		assert.Equal(t, int64(35), m.Total)
		assert.Equal(t, 4, m.TotalPages)
		assert.True(t, m.HasNextPage)
		assert.True(t, m.HasPrevPage)
	})

	t.Run("last page has no next", func(t *testing.T) {
		m := NewMeta(Params{Page: 4, Limit: 10}, 35)
		assert.False(t, m.HasNextPage)
		assert.True(t, m.HasPrevPage)
	})

	t.Run("empty result set", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, Limit: 10}, 0)
		assert.Equal(t, 0, m.TotalPages)
		assert.False(t, m.HasNextPage)
		assert.False(t, m.HasPrevPage)
	})

	t.Run("exact multiple of limit", func(t *testing.T) {
		m := NewMeta(Params{Page: 1, Limit: 10}, 30)
		assert.Equal(t, 3, m.TotalPages)
	})
}

func TestFromInts(t *testing.T) {
	p := FromInts(0, 0, 12)
	assert.Equal(t, Params{Page: 1, Limit: 12}, p)

	p = FromInts(5, 50, 12)
	assert.Equal(t, Params{Page: 5, Limit: 50}, p)

	p = FromInts(-1, MaxLimit+1, 12)
	assert.Equal(t, Params{Page: 1, Limit: 12}, p)
}
