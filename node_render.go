package scene

import (
	"slices"
)

// Render publishes the node's geometry: the visible rect (arranged rect
// minus margin, clipped to its layout slot and its parent's bounds unless
// the node opts out or owns a shadow), its backing visual and its spatial
// index entry. The node's whole visible subtree is rendered with it.
//
// An empty or invisible result hides the visual and removes the subtree
// from the spatial index. Render panics with a RenderBeforeArrange contract
// error when the node has never been arranged.
func (n Node) Render() {
	n.s.checkThread("Render")
	origin, scale, clip, clipping := n.parentRenderState()
	n.render(origin, scale, clip, clipping)
}

// parentRenderState returns what the parent's last render left for its
// children: absolute content origin, scale, and clip bounds. A root is
// clipped to its window's client area.
func (n Node) parentRenderState() (origin Point, scale float64, clip Rect, clipping bool) {
	d := n.data()
	if d.parent == noNode {
		if d.window == nil {
			return Point{}, 1, Rect{}, false
		}
		return Point{}, 1, Rect{Width: d.window.client.Width, Height: d.window.client.Height}, true
	}
	pd := n.s.nodes[d.parent]
	return pd.absOrigin, pd.absScale * pd.box.EffectiveZoom(), pd.absBounds, true
}

func (n Node) render(origin Point, scale float64, clip Rect, clipping bool) {
	d := n.data()
	if !d.visible {
		d.render, d.renderValid = Rect{}, true
		d.absBounds = Rect{}
		n.hide(d)
		return
	}
	if !d.arrangedValid {
		if !d.hasFinal {
			panic(newContractError(RenderBeforeArrange, n, "node has no arranged rect"))
		}
		n.Arrange(d.final)
	}
	incrPass("render")

	inner := d.arranged.Deflate(d.box.Margin)
	abs := toAbsolute(inner, origin, scale)
	visible := abs
	if clipping && d.clipFromParent && !d.shadow {
		slot := toAbsolute(d.final.Deflate(d.box.Margin), origin, scale)
		visible = abs.Intersect(slot).Intersect(clip)
	}

	d.absOrigin = abs.Origin()
	d.absScale = scale
	d.absBounds = visible
	d.renderValid = true
	if visible.IsEmpty() {
		d.render = Rect{}
		n.hide(d)
		n.emit(EventRendered)
		return
	}
	d.render = Rect{
		X:      (visible.X - origin.X) / scale,
		Y:      (visible.Y - origin.Y) / scale,
		Width:  visible.Width / scale,
		Height: visible.Height / scale,
	}

	if w := d.window; w != nil {
		w.publish(n, d, abs, visible)
	}

	childScale := scale * d.box.EffectiveZoom()
	for _, child := range n.paintOrder() {
		child.render(d.absOrigin, childScale, visible, true)
	}
	n.emit(EventRendered)
}

func toAbsolute(r Rect, origin Point, scale float64) Rect {
	return Rect{
		X:      origin.X + r.X*scale,
		Y:      origin.Y + r.Y*scale,
		Width:  r.Width * scale,
		Height: r.Height * scale,
	}
}

// hide makes the node's visual invisible and drops the subtree from the
// spatial index.
func (n Node) hide(d *nodeData) {
	if d.visual != nil {
		d.visual.SetVisible(false)
	}
	if w := d.window; w != nil {
		w.unindexSubtree(n)
	}
}

// zOrder ranks the node among its siblings by its explicit z-index, or by
// its declaration index when none is set. An explicit z-index paints above
// a declaration index of the same value.
func (n Node) zOrder(index int) int {
	d := n.data()
	if d.hasZIndex {
		return 2*d.zIndex + 1
	}
	return 2 * index
}

// paintOrder returns the children sorted back to front.
func (n Node) paintOrder() []Node {
	d := n.data()
	type entry struct {
		node Node
		z    int
	}
	entries := make([]entry, len(d.children))
	for i, id := range d.children {
		c := n.s.handle(id)
		entries[i] = entry{node: c, z: c.zOrder(i)}
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.z - b.z
	})
	out := make([]Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}
	return out
}

// paintPath returns the node's paint position at every level from the root.
// A lexicographically greater path paints later; a descendant paints after
// its ancestors.
func (n Node) paintPath() []int {
	var path []int
	cur := n
	for {
		d := cur.data()
		if d.parent == noNode {
			break
		}
		parent := n.s.handle(d.parent)
		idx := slices.Index(parent.paintOrder(), cur)
		path = append(path, idx)
		cur = parent
	}
	slices.Reverse(path)
	return path
}
