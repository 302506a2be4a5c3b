package layout

// Thickness represents values for the four sides of a box (margin, padding).
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(n float64) Thickness {
	return Thickness{Left: n, Top: n, Right: n, Bottom: n}
}

// Symmetric creates a Thickness with horizontal (left/right) and vertical
// (top/bottom) values.
func Symmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// LTRB creates a Thickness from left, top, right, bottom.
func LTRB(l, t, r, b float64) Thickness {
	return Thickness{Left: l, Top: t, Right: r, Bottom: b}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// IsZero returns true if all edge values are zero.
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}
