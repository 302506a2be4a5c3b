package layout

import "math"

// Box holds the box-model properties that shape how a node negotiates its
// size with its parent. Length fields use Unset when not declared.
type Box struct {
	Width     float64
	Height    float64
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64

	Margin Thickness

	HorizontalAlignment Alignment
	VerticalAlignment   Alignment

	// Zoom uniformly scales the measured size. Values <= 0 or NaN act as 1.
	Zoom float64
}

// DefaultBox returns a Box with every length unset and a zoom of 1.
func DefaultBox() Box {
	return Box{
		Width:     Unset,
		Height:    Unset,
		MinWidth:  Unset,
		MinHeight: Unset,
		MaxWidth:  Unset,
		MaxHeight: Unset,
		Zoom:      1,
	}
}

// Pinned reports whether the explicit length on the axis is declared.
func (b Box) Pinned(a Axis) bool {
	if a == Horizontal {
		return IsSet(b.Width)
	}
	return IsSet(b.Height)
}

// SizePinned reports whether both Width and Height are declared.
func (b Box) SizePinned() bool {
	return IsSet(b.Width) && IsSet(b.Height)
}

// EffectiveZoom returns Zoom, or 1 when Zoom is not a positive number.
func (b Box) EffectiveZoom() float64 {
	if math.IsNaN(b.Zoom) || b.Zoom <= 0 {
		return 1
	}
	return b.Zoom
}

// CoreConstraint converts the constraint handed to Measure (margin included)
// into the space offered to the node's own content: margin removed, narrowed
// by the explicit size and Min/Max, then divided by Zoom.
func (b Box) CoreConstraint(constraint Size) Size {
	avail := constraint.Deflate(b.Margin)
	z := b.EffectiveZoom()
	return Size{
		Width:  coreAxis(avail.Width, b.Width, b.MinWidth, b.MaxWidth) / z,
		Height: coreAxis(avail.Height, b.Height, b.MinHeight, b.MaxHeight) / z,
	}
}

func coreAxis(avail, explicit, minV, maxV float64) float64 {
	if IsSet(explicit) {
		return Clamp(explicit, minV, maxV)
	}
	return Clamp(avail, minV, maxV)
}

// DesiredSize turns the size proposed by the node's content into the
// node's desired size: explicit size pins, Min/Max clamp, Zoom scales and
// the margin is re-added.
func (b Box) DesiredSize(core Size) Size {
	z := b.EffectiveZoom()
	w := Clamp(Resolve(b.Width, core.Width), b.MinWidth, b.MaxWidth) * z
	h := Clamp(Resolve(b.Height, core.Height), b.MinHeight, b.MaxHeight) * z
	return Size{Width: w, Height: h}.Inflate(b.Margin)
}

// Slot returns the final rect minus margin: the layout slot the node's
// content may occupy.
func (b Box) Slot(final Rect) Rect {
	return final.Deflate(b.Margin)
}

// ArrangeRect places the node's content inside the final rect allotted by
// the parent (margin included). desired is the node's DesiredSize (margin
// included). Stretch fills the slot, Center and Far offset within the slack,
// and a pinned length is never stretched: Stretch with a pinned length is
// placed as Near.
func (b Box) ArrangeRect(final Rect, desired Size) Rect {
	slot := b.Slot(final)
	inner := desired.Deflate(b.Margin)
	z := b.EffectiveZoom()

	w, x := arrangeAxis(slot.Width, inner.Width, b.Width, b.MinWidth*z, b.MaxWidth*z, b.HorizontalAlignment)
	h, y := arrangeAxis(slot.Height, inner.Height, b.Height, b.MinHeight*z, b.MaxHeight*z, b.VerticalAlignment)

	return Rect{X: slot.X + x, Y: slot.Y + y, Width: w, Height: h}
}

func arrangeAxis(slot, desired, explicit, minV, maxV float64, align Alignment) (size, offset float64) {
	align = EffectiveAlignment(align, IsSet(explicit))
	if align == AlignStretch {
		return NonNegative(Clamp(slot, minV, maxV)), 0
	}
	size = desired
	return size, align.Offset(slot, size)
}

// EffectiveAlignment resolves an unset alignment to Stretch and demotes
// Stretch to Near when the length on that axis is pinned.
func EffectiveAlignment(a Alignment, pinned bool) Alignment {
	a = a.Or(AlignStretch)
	if a == AlignStretch && pinned {
		return AlignNear
	}
	return a
}
