package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{320, 1},
		{767, 1},
		{768, 2},
		{1000, 2},
		{1023, 2},
		{1024, 3},
		{2560, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Columns(tt.width), "width %d", tt.width)
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		columns        int
		scrollTop      int
		viewportHeight int
		want           Range
	}{
		{
			name:  "empty list",
			total: 0, columns: 3,
			scrollTop: 0, viewportHeight: 660,
			want: Range{},
		},
		{
			name:  "top of a long list",
			total: 100, columns: 3,
			scrollTop: 0, viewportHeight: 660,
			// rows 0-3 visible, +3 overscan below = rows 0-6.
			want: Range{Start: 0, End: 21},
		},
		{
			name:  "mid-scroll applies overscan both ways",
			total: 1000, columns: 2,
			scrollTop: 2200, viewportHeight: 440,
			// rows 10-12 visible, overscan widens to rows 7-15.
			want: Range{Start: 14, End: 32},
		},
		{
			name:  "end is clamped to the item count",
			total: 10, columns: 3,
			scrollTop: 0, viewportHeight: 10000,
			want: Range{Start: 0, End: 10},
		},
		{
			name:  "negative scroll is treated as zero",
			total: 100, columns: 1,
			scrollTop: -500, viewportHeight: 440,
			// rows 0-2 visible, +3 overscan = rows 0-5.
			want: Range{Start: 0, End: 6},
		},
		{
			name:  "scrolled far past the end returns nothing",
			total: 6, columns: 3,
			scrollTop: 100000, viewportHeight: 440,
			want: Range{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(tt.total, tt.columns, DefaultRowHeight, tt.scrollTop, tt.viewportHeight, DefaultOverscan)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.End-tt.want.Start, got.Len())
		})
	}
}

func TestVisible_DegenerateInputs(t *testing.T) {
	assert.Equal(t, Range{}, Visible(10, 0, DefaultRowHeight, 0, 440, DefaultOverscan))
	assert.Equal(t, Range{}, Visible(10, 3, 0, 0, 440, DefaultOverscan))
	assert.Equal(t, Range{}, Visible(-1, 3, DefaultRowHeight, 0, 440, DefaultOverscan))
}
