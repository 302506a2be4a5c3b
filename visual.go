package scene

import (
	"github.com/grindlemire/go-scene/internal/compositor"
)

// Visual is the back-end surface a node publishes its geometry to.
type Visual interface {
	SetSize(s Size)
	// SetOffset positions the visual in window coordinates; z is the
	// node's depth.
	SetOffset(x, y, z float64)
	SetVisible(visible bool)
	SetClip(r Rect)
	SetZOrder(z int)
}

// Compositor creates and releases visuals for a window's nodes.
type Compositor interface {
	NewVisual(n Node) Visual
	ReleaseVisual(v Visual)
}

// SpatialIndex tracks the rendered bounds of a window's nodes.
type SpatialIndex interface {
	Move(n Node, bounds Rect)
	Remove(n Node)
}

// Scheduler runs drain requests later on the UI goroutine.
type Scheduler interface {
	Post(fn func())
}

// retained is the default Compositor: a compositor.Tree whose visuals
// mirror the node hierarchy.
type retained struct {
	tree *compositor.Tree
}

var _ Compositor = (*retained)(nil)

func newRetained() *retained {
	return &retained{tree: compositor.New()}
}

func (r *retained) NewVisual(n Node) Visual {
	var parent *compositor.Visual
	if p, ok := n.Parent(); ok {
		if pv, ok := p.data().visual.(*compositor.Visual); ok {
			parent = pv
		}
	}
	return r.tree.NewVisual(parent, n.label())
}

func (r *retained) ReleaseVisual(v Visual) {
	if cv, ok := v.(*compositor.Visual); ok {
		r.tree.Release(cv)
	}
}
