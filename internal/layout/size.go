package layout

import "math"

// Size is a width/height pair. Either axis may be Unbounded when used as a
// measure constraint.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// UnboundedSize returns a constraint with no limit on either axis.
func UnboundedSize() Size {
	return Size{Width: Unbounded, Height: Unbounded}
}

// IsValid reports whether the size is usable as a measured result:
// finite, not NaN, and not negative on both axes.
func (s Size) IsValid() bool {
	return validLength(s.Width) && validLength(s.Height)
}

// IsEmpty reports whether either axis is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Deflate removes the thickness from the size, keeping unbounded axes
// unbounded and never going below zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  subtractBounded(s.Width, t.Horizontal()),
		Height: subtractBounded(s.Height, t.Vertical()),
	}
}

// Inflate adds the thickness to the size.
func (s Size) Inflate(t Thickness) Size {
	return Size{Width: s.Width + t.Horizontal(), Height: s.Height + t.Vertical()}
}

// Scale multiplies both axes by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Axis returns the extent along the given axis.
func (s Size) Axis(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Equal compares sizes treating two NaN axes as equal.
func (s Size) Equal(other Size) bool {
	return sameLength(s.Width, other.Width) && sameLength(s.Height, other.Height)
}

func validLength(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func sameLength(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
