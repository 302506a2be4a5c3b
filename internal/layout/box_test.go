package layout

import "testing"

func TestBox_CoreConstraint(t *testing.T) {
	type tc struct {
		box        func(b *Box)
		constraint Size
		want       Size
	}

	tests := map[string]tc{
		"default passes through": {
			constraint: NewSize(100, 80),
			want:       NewSize(100, 80),
		},
		"margin removed": {
			box:        func(b *Box) { b.Margin = LTRB(5, 10, 5, 0) },
			constraint: NewSize(100, 80),
			want:       NewSize(90, 70),
		},
		"explicit size replaces available": {
			box:        func(b *Box) { b.Width = 40; b.Height = 200 },
			constraint: NewSize(100, 80),
			want:       NewSize(40, 200),
		},
		"max narrows": {
			box:        func(b *Box) { b.MaxWidth = 30 },
			constraint: NewSize(100, 80),
			want:       NewSize(30, 80),
		},
		"max bounds unbounded": {
			box:        func(b *Box) { b.MaxHeight = 50 },
			constraint: UnboundedSize(),
			want:       NewSize(Unbounded, 50),
		},
		"zoom divides": {
			box:        func(b *Box) { b.Zoom = 2 },
			constraint: NewSize(100, 80),
			want:       NewSize(50, 40),
		},
		"invalid zoom ignored": {
			box:        func(b *Box) { b.Zoom = -3 },
			constraint: NewSize(100, 80),
			want:       NewSize(100, 80),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := DefaultBox()
			if tt.box != nil {
				tt.box(&b)
			}
			if got := b.CoreConstraint(tt.constraint); !got.Equal(tt.want) {
				t.Errorf("CoreConstraint(%+v) = %+v, want %+v", tt.constraint, got, tt.want)
			}
		})
	}
}

func TestBox_DesiredSize(t *testing.T) {
	type tc struct {
		box  func(b *Box)
		core Size
		want Size
	}

	tests := map[string]tc{
		"content size": {
			core: NewSize(30, 20),
			want: NewSize(30, 20),
		},
		"explicit pins": {
			box:  func(b *Box) { b.Width = 50 },
			core: NewSize(30, 20),
			want: NewSize(50, 20),
		},
		"min clamps": {
			box:  func(b *Box) { b.MinWidth = 40; b.MaxHeight = 10 },
			core: NewSize(30, 20),
			want: NewSize(40, 10),
		},
		"zoom after clamp": {
			box:  func(b *Box) { b.MaxWidth = 20; b.Zoom = 1.5 },
			core: NewSize(30, 20),
			want: NewSize(30, 30),
		},
		"margin re-added": {
			box:  func(b *Box) { b.Margin = Uniform(2) },
			core: NewSize(30, 20),
			want: NewSize(34, 24),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := DefaultBox()
			if tt.box != nil {
				tt.box(&b)
			}
			if got := b.DesiredSize(tt.core); got != tt.want {
				t.Errorf("DesiredSize(%+v) = %+v, want %+v", tt.core, got, tt.want)
			}
		})
	}
}

func TestBox_ArrangeRect(t *testing.T) {
	type tc struct {
		box     func(b *Box)
		final   Rect
		desired Size
		want    Rect
	}

	tests := map[string]tc{
		"stretch fills slot": {
			final:   NewRect(0, 0, 100, 50),
			desired: NewSize(20, 10),
			want:    NewRect(0, 0, 100, 50),
		},
		"margin deflates slot": {
			box:     func(b *Box) { b.Margin = Uniform(5) },
			final:   NewRect(10, 10, 100, 50),
			desired: NewSize(30, 20),
			want:    NewRect(15, 15, 90, 40),
		},
		"center offsets in slack": {
			box:     func(b *Box) { b.HorizontalAlignment = AlignCenter; b.VerticalAlignment = AlignFar },
			final:   NewRect(0, 0, 100, 50),
			desired: NewSize(20, 10),
			want:    NewRect(40, 40, 20, 10),
		},
		"pinned is never stretched": {
			box:     func(b *Box) { b.Width = 30; b.HorizontalAlignment = AlignStretch },
			final:   NewRect(0, 0, 100, 50),
			desired: NewSize(30, 10),
			want:    NewRect(0, 0, 30, 50),
		},
		"stretch honours max": {
			box:     func(b *Box) { b.MaxWidth = 60 },
			final:   NewRect(0, 0, 100, 50),
			desired: NewSize(20, 10),
			want:    NewRect(0, 0, 60, 50),
		},
		"overflowing item pinned near": {
			box:     func(b *Box) { b.HorizontalAlignment = AlignFar },
			final:   NewRect(0, 0, 10, 10),
			desired: NewSize(40, 10),
			want:    NewRect(0, 0, 40, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := DefaultBox()
			if tt.box != nil {
				tt.box(&b)
			}
			if got := b.ArrangeRect(tt.final, tt.desired); got != tt.want {
				t.Errorf("ArrangeRect(%+v, %+v) = %+v, want %+v", tt.final, tt.desired, got, tt.want)
			}
		})
	}
}

func TestEffectiveAlignment(t *testing.T) {
	type tc struct {
		align  Alignment
		pinned bool
		want   Alignment
	}

	tests := map[string]tc{
		"unset becomes stretch":   {align: AlignUnset, want: AlignStretch},
		"unset pinned is near":    {align: AlignUnset, pinned: true, want: AlignNear},
		"stretch pinned is near":  {align: AlignStretch, pinned: true, want: AlignNear},
		"center pinned unchanged": {align: AlignCenter, pinned: true, want: AlignCenter},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := EffectiveAlignment(tt.align, tt.pinned); got != tt.want {
				t.Errorf("EffectiveAlignment(%v, %v) = %v, want %v", tt.align, tt.pinned, got, tt.want)
			}
		})
	}
}
