package layout

import "math"

// Unset is the sentinel for a length that has not been declared. For Width
// and Height it means "size to content"; for Min it means 0 and for Max it
// means no limit.
var Unset = math.NaN()

// Unbounded is the sentinel for an axis with no constraint.
var Unbounded = math.Inf(1)

// IsSet reports whether v holds a declared length.
func IsSet(v float64) bool {
	return !math.IsNaN(v)
}

// IsBounded reports whether v is a finite constraint.
func IsBounded(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Resolve returns v when it is set and fallback otherwise.
func Resolve(v, fallback float64) float64 {
	if IsSet(v) {
		return v
	}
	return fallback
}

// Clamp restricts v to [minVal, maxVal]. Unset bounds are ignored.
// If minVal > maxVal, minVal wins.
func Clamp(v, minVal, maxVal float64) float64 {
	if IsSet(maxVal) && v > maxVal {
		v = maxVal
	}
	if IsSet(minVal) && v < minVal {
		v = minVal
	}
	return v
}

// NonNegative returns v, or 0 when v is negative or NaN.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// subtractBounded subtracts d from an available length, preserving the
// unbounded sentinel and never going below zero.
func subtractBounded(avail, d float64) float64 {
	if !IsBounded(avail) {
		return avail
	}
	return NonNegative(avail - d)
}
