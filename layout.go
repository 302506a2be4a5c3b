// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Size is a width/height pair. Either axis may be Unbounded when used as a
// measure constraint.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Thickness holds per-side values for margin and padding.
type Thickness = layout.Thickness

// Unset marks a length that has not been declared. Width and Height fall
// back to content size; Min and Max are ignored.
var Unset = layout.Unset

// Unbounded marks an unconstrained axis.
var Unbounded = layout.Unbounded

// IsSet reports whether v holds a declared length.
func IsSet(v float64) bool {
	return layout.IsSet(v)
}

// NewSize creates a Size.
func NewSize(w, h float64) Size {
	return layout.NewSize(w, h)
}

// NewRect creates a Rect.
func NewRect(x, y, w, h float64) Rect {
	return layout.NewRect(x, y, w, h)
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(n float64) Thickness {
	return layout.Uniform(n)
}

// Symmetric creates a Thickness from horizontal and vertical values.
func Symmetric(h, v float64) Thickness {
	return layout.Symmetric(h, v)
}

// LTRB creates a Thickness from left, top, right and bottom values.
func LTRB(l, t, r, b float64) Thickness {
	return layout.LTRB(l, t, r, b)
}

// Alignment positions a node within its slot on one axis.
type Alignment = layout.Alignment

const (
	AlignUnset   = layout.AlignUnset
	AlignNear    = layout.AlignNear
	AlignCenter  = layout.AlignCenter
	AlignFar     = layout.AlignFar
	AlignStretch = layout.AlignStretch
)

// Direction specifies the main axis for stacking children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Dimension is a grid row or column.
type Dimension = layout.Dimension

// DimensionList is an ordered, never-empty set of rows or columns.
type DimensionList = layout.DimensionList

// DimensionKind says how a dimension gets its size.
type DimensionKind = layout.DimensionKind

const (
	DimensionAuto  = layout.DimensionAuto
	DimensionFixed = layout.DimensionFixed
	DimensionStar  = layout.DimensionStar
)

// SpanToEnd extends a row or column span to the last dimension.
const SpanToEnd = layout.SpanToEnd

// ErrInvalidSpan is returned for zero or negative spans.
var ErrInvalidSpan = layout.ErrInvalidSpan

// ErrInvalidDimension is returned when a dimension declaration cannot be parsed.
var ErrInvalidDimension = layout.ErrInvalidDimension

// Fixed creates a dimension with a declared size.
func Fixed(size float64) *Dimension {
	return layout.Fixed(size)
}

// Auto creates a content-sized dimension.
func Auto() *Dimension {
	return layout.Auto()
}

// Star creates a proportional dimension.
func Star(weight float64) *Dimension {
	return layout.Star(weight)
}

// ParseDimension parses "auto", "*", "2*" or a fixed size.
func ParseDimension(s string) (*Dimension, error) {
	return layout.ParseDimension(s)
}

// RectFromSize returns a rect of size s at the origin.
func RectFromSize(s Size) Rect {
	return layout.RectFromSize(s)
}
