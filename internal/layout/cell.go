package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpan is returned when a row or column span is zero or negative.
var ErrInvalidSpan = errors.New("invalid span")

// SpanToEnd extends a span to the last dimension.
const SpanToEnd = math.MaxInt32

// Cell is a child's placement in a grid: the first row and column it
// occupies and how many rows and columns it spans.
type Cell struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// DefaultCell places a child in the first row and column with single spans.
func DefaultCell() Cell {
	return Cell{RowSpan: 1, ColumnSpan: 1}
}

// NewCell validates spans and returns the placement. Negative row or column
// indexes are clamped to 0 when the grid resolves the placement.
func NewCell(row, column, rowSpan, columnSpan int) (Cell, error) {
	if err := ValidateSpan(rowSpan); err != nil {
		return Cell{}, fmt.Errorf("row span: %w", err)
	}
	if err := ValidateSpan(columnSpan); err != nil {
		return Cell{}, fmt.Errorf("column span: %w", err)
	}
	return Cell{Row: row, Column: column, RowSpan: rowSpan, ColumnSpan: columnSpan}, nil
}

// ValidateSpan rejects zero and negative spans.
func ValidateSpan(span int) error {
	if span <= 0 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidSpan, span)
	}
	return nil
}

// span is a half-open range of dimension indexes.
type span struct {
	start, end int
}

func (s span) single() bool {
	return s.end-s.start == 1
}

// resolveSpan clamps a declared start and span to a list of n dimensions.
func resolveSpan(start, count, n int) span {
	start = max(0, min(start, n-1))
	if count <= 0 {
		count = 1
	}
	end := n
	if count < n-start {
		end = start + count
	}
	return span{start: start, end: end}
}
