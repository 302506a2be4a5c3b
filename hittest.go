package scene

import (
	"slices"
)

// HitTest returns the topmost enabled node whose rendered bounds contain
// (x, y) in window coordinates. Topmost follows paint order: later
// siblings and higher z-indexes win, and a child wins over its parent.
// A node is hittable only when it and all its ancestors are enabled.
func (w *Window) HitTest(x, y float64) (Node, bool) {
	w.scene.checkThread("HitTest")
	var candidates []Node
	if w.quad != nil {
		candidates = w.quad.query(x, y)
	} else if root, ok := w.Root(); ok {
		candidates = root.collectHits(x, y, nil)
	}

	var (
		best     Node
		bestPath []int
		found    bool
	)
	for _, n := range candidates {
		if !n.IsValid() || !n.hittable() {
			continue
		}
		path := n.paintPath()
		if !found || slices.Compare(path, bestPath) > 0 {
			best, bestPath, found = n, path, true
		}
	}
	return best, found
}

func (n Node) hittable() bool {
	d := n.data()
	if !d.renderValid || d.absBounds.IsEmpty() {
		return false
	}
	for cur := d; ; cur = n.s.nodes[cur.parent] {
		if !cur.enabled || !cur.visible {
			return false
		}
		if cur.parent == noNode {
			return true
		}
	}
}

// collectHits walks the rendered tree when no quad index is available.
func (n Node) collectHits(x, y float64, out []Node) []Node {
	d := n.data()
	if !d.visible || !d.renderValid || d.absBounds.IsEmpty() {
		return out
	}
	if d.absBounds.Contains(x, y) {
		out = append(out, n)
	}
	for _, id := range d.children {
		out = n.s.handle(id).collectHits(x, y, out)
	}
	return out
}
