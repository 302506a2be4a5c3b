package compositor

import (
	"slices"

	"github.com/grindlemire/go-scene/internal/layout"
)

// Visual is one retained back-end surface.
type Visual struct {
	id       uint64
	name     string
	parent   *Visual
	children []*Visual
	released bool

	size    layout.Size
	x, y, z float64
	visible bool
	clip    layout.Rect
	hasClip bool
	zOrder  int
}

// ID returns the visual's identifier, unique within its tree.
func (v *Visual) ID() uint64 { return v.id }

// Name returns the label given at creation.
func (v *Visual) Name() string { return v.name }

// Parent returns the parent visual, or nil for a top-level visual.
func (v *Visual) Parent() *Visual { return v.parent }

// Released reports whether the visual was returned to its tree.
func (v *Visual) Released() bool { return v.released }

// SetSize sets the visual's extent.
func (v *Visual) SetSize(s layout.Size) { v.size = s }

// Size returns the visual's extent.
func (v *Visual) Size() layout.Size { return v.size }

// SetOffset positions the visual in window coordinates. z is the depth.
func (v *Visual) SetOffset(x, y, z float64) {
	v.x, v.y, v.z = x, y, z
}

// Offset returns the position set by SetOffset.
func (v *Visual) Offset() (x, y, z float64) { return v.x, v.y, v.z }

// SetVisible shows or hides the visual and its children.
func (v *Visual) SetVisible(visible bool) { v.visible = visible }

// Visible reports the visibility flag.
func (v *Visual) Visible() bool { return v.visible }

// SetClip limits painting to r, in window coordinates.
func (v *Visual) SetClip(r layout.Rect) {
	v.clip, v.hasClip = r, true
}

// Clip returns the clip rect, or the visual's own bounds when none is set.
func (v *Visual) Clip() layout.Rect {
	if v.hasClip {
		return v.clip
	}
	return layout.Rect{X: v.x, Y: v.y, Width: v.size.Width, Height: v.size.Height}
}

// SetZOrder orders the visual among its siblings. Higher paints later.
func (v *Visual) SetZOrder(z int) { v.zOrder = z }

// ZOrder returns the sibling order.
func (v *Visual) ZOrder() int { return v.zOrder }

// paintOrder returns the children sorted back to front, stable on ties.
func (v *Visual) paintOrder() []*Visual {
	out := slices.Clone(v.children)
	slices.SortStableFunc(out, func(a, b *Visual) int {
		return a.zOrder - b.zOrder
	})
	return out
}
