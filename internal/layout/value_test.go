package layout

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	type tc struct {
		v, min, max float64
		want        float64
	}

	tests := map[string]tc{
		"unset bounds":       {v: 42, min: Unset, max: Unset, want: 42},
		"below min":          {v: 5, min: 10, max: Unset, want: 10},
		"above max":          {v: 50, min: Unset, max: 20, want: 20},
		"within":             {v: 15, min: 10, max: 20, want: 15},
		"min wins over max":  {v: 15, min: 30, max: 20, want: 30},
		"unbounded to max":   {v: Unbounded, min: Unset, max: 100, want: 100},
		"unbounded kept":     {v: Unbounded, min: 10, max: Unset, want: Unbounded},
		"negative below min": {v: -3, min: 0, max: Unset, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	if IsSet(Unset) {
		t.Error("IsSet(Unset) = true, want false")
	}
	if !IsSet(0) {
		t.Error("IsSet(0) = false, want true")
	}
	if IsBounded(Unbounded) {
		t.Error("IsBounded(Unbounded) = true, want false")
	}
	if IsBounded(Unset) {
		t.Error("IsBounded(Unset) = true, want false")
	}
	if got := Resolve(Unset, 7); got != 7 {
		t.Errorf("Resolve(Unset, 7) = %v, want 7", got)
	}
	if got := NonNegative(math.NaN()); got != 0 {
		t.Errorf("NonNegative(NaN) = %v, want 0", got)
	}
	if got := subtractBounded(Unbounded, 50); !math.IsInf(got, 1) {
		t.Errorf("subtractBounded(Unbounded, 50) = %v, want +Inf", got)
	}
	if got := subtractBounded(30, 50); got != 0 {
		t.Errorf("subtractBounded(30, 50) = %v, want 0", got)
	}
}

func TestSize_IsValid(t *testing.T) {
	type tc struct {
		size Size
		want bool
	}

	tests := map[string]tc{
		"zero":         {size: Size{}, want: true},
		"positive":     {size: NewSize(10, 20), want: true},
		"negative":     {size: NewSize(-1, 20), want: false},
		"nan":          {size: NewSize(math.NaN(), 0), want: false},
		"infinite":     {size: NewSize(0, Unbounded), want: false},
		"fractional":   {size: NewSize(0.5, 0.25), want: true},
		"both invalid": {size: NewSize(-1, math.NaN()), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.size.IsValid(); got != tt.want {
				t.Errorf("%+v.IsValid() = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestSize_DeflateInflate(t *testing.T) {
	m := LTRB(1, 2, 3, 4)

	got := NewSize(10, 10).Deflate(m)
	if got != NewSize(6, 4) {
		t.Errorf("Deflate = %+v, want {6 4}", got)
	}

	got = NewSize(2, Unbounded).Deflate(m)
	if got.Width != 0 || !math.IsInf(got.Height, 1) {
		t.Errorf("Deflate keeps unbounded and floors at zero, got %+v", got)
	}

	if got := NewSize(6, 4).Inflate(m); got != NewSize(10, 10) {
		t.Errorf("Inflate = %+v, want {10 10}", got)
	}
}

func TestSize_Equal(t *testing.T) {
	a := NewSize(math.NaN(), 1)
	if !a.Equal(NewSize(math.NaN(), 1)) {
		t.Error("sizes with NaN on the same axis should be equal")
	}
	if a.Equal(NewSize(0, 1)) {
		t.Error("NaN should not equal 0")
	}
}
