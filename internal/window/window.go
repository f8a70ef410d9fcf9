// Package window computes which rows of a card grid intersect the visible
// scroll region, so the dashboard renders only those.
package window

// Breakpoints (px) at which the grid gains a column.
const (
	twoColumnMinWidth   = 768
	threeColumnMinWidth = 1024
)

// DefaultRowHeight is the fixed estimated card height in px.
const DefaultRowHeight = 220

// DefaultOverscan is the number of extra rows rendered above and below the
// visible region.
const DefaultOverscan = 3

// Columns picks the column count for a container width: 1 below 768px,
// 2 from 768 to 1023px, 3 from 1024px up.
func Columns(width int) int {
	switch {
	case width >= threeColumnMinWidth:
		return 3
	case width >= twoColumnMinWidth:
		return 2
	default:
		return 1
	}
}

// Range is a half-open [Start, End) span of item indices.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of items in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Visible returns the item index range whose rows intersect the scroll
// viewport, expanded by overscan rows and clamped to the item count.
func Visible(total, columns, rowHeight, scrollTop, viewportHeight, overscan int) Range {
	if total <= 0 || columns <= 0 || rowHeight <= 0 {
		return Range{}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}

	rowCount := (total + columns - 1) / columns

	firstRow := scrollTop/rowHeight - overscan
	if firstRow < 0 {
		firstRow = 0
	}
	lastRow := (scrollTop+viewportHeight)/rowHeight + overscan
	if lastRow >= rowCount {
		lastRow = rowCount - 1
	}
	if lastRow < firstRow {
		return Range{}
	}

	start := firstRow * columns
	end := (lastRow + 1) * columns
	if end > total {
		end = total
	}
	return Range{Start: start, End: end}
}
