package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect":     {rect: NewRect(5, 10, 20, 15), right: 25, bottom: 25},
		"zero position":     {rect: NewRect(0, 0, 10, 10), right: 10, bottom: 10},
		"negative position": {rect: NewRect(-5, -5, 10, 10), right: 5, bottom: 5},
		"zero size":         {rect: NewRect(5, 5, 0, 0), right: 5, bottom: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y float64
		want bool
	}

	tests := map[string]tc{
		"inside":          {x: 15, y: 15, want: true},
		"top-left corner": {x: 10, y: 10, want: true},
		"right edge":      {x: 30, y: 15, want: false},
		"bottom edge":     {x: 15, y: 30, want: false},
		"just inside":     {x: 29.5, y: 29.5, want: true},
		"outside":         {x: 5, y: 5, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlap":      {a: NewRect(0, 0, 10, 10), b: NewRect(5, 5, 10, 10), want: NewRect(5, 5, 5, 5)},
		"contained":    {a: NewRect(0, 0, 10, 10), b: NewRect(2, 2, 3, 3), want: NewRect(2, 2, 3, 3)},
		"touching":     {a: NewRect(0, 0, 10, 10), b: NewRect(10, 0, 10, 10), want: Rect{}},
		"disjoint":     {a: NewRect(0, 0, 10, 10), b: NewRect(20, 20, 5, 5), want: Rect{}},
		"empty other":  {a: NewRect(0, 0, 10, 10), b: NewRect(5, 5, 0, 0), want: Rect{}},
		"fractional":   {a: NewRect(0, 0, 1.5, 1.5), b: NewRect(0.5, 0.5, 2, 2), want: NewRect(0.5, 0.5, 1, 1)},
		"negative pos": {a: NewRect(-10, -10, 15, 15), b: NewRect(0, 0, 10, 10), want: NewRect(0, 0, 5, 5)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got := tt.a.Intersects(tt.b); got != !tt.want.IsEmpty() {
				t.Errorf("Intersects = %v, want %v", got, !tt.want.IsEmpty())
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 5, 10)

	if got := a.Union(b); got != NewRect(0, 0, 25, 15) {
		t.Errorf("Union = %+v, want {0 0 25 15}", got)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestRect_DeflateInflate(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	th := Uniform(2)

	deflated := r.Deflate(th)
	if deflated != NewRect(2, 2, 6, 6) {
		t.Errorf("Deflate = %+v, want {2 2 6 6}", deflated)
	}
	if got := deflated.Inflate(th); got != r {
		t.Errorf("Inflate(Deflate(r)) = %+v, want %+v", got, r)
	}
	if got := NewRect(0, 0, 3, 3).Deflate(th); got.Width != 0 || got.Height != 0 {
		t.Errorf("Deflate past zero = %+v, want zero size", got)
	}
}

func TestRect_Round(t *testing.T) {
	type tc struct {
		rect Rect
		want Rect
	}

	tests := map[string]tc{
		"already integral": {rect: NewRect(1, 2, 3, 4), want: NewRect(1, 2, 3, 4)},
		"floors origin":    {rect: NewRect(1.6, 2.2, 3, 4), want: NewRect(1, 2, 4, 5)},
		"ceils extent":     {rect: NewRect(0, 0, 10.1, 0.5), want: NewRect(0, 0, 11, 1)},
		"adjacent halves":  {rect: NewRect(33.3, 0, 33.3, 1), want: NewRect(33, 0, 34, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Round(); got != tt.want {
				t.Errorf("Round() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
