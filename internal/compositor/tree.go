package compositor

import (
	"slices"
)

// Tree owns a set of visuals. It is not safe for concurrent use; the scene
// only touches it from its UI goroutine.
type Tree struct {
	roots  []*Visual
	nextID uint64
	live   int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewVisual creates a visible visual under parent. A nil parent creates a
// top-level visual.
func (t *Tree) NewVisual(parent *Visual, name string) *Visual {
	t.nextID++
	v := &Visual{id: t.nextID, name: name, parent: parent, visible: true}
	if parent != nil && !parent.released {
		parent.children = append(parent.children, v)
	} else {
		v.parent = nil
		t.roots = append(t.roots, v)
	}
	t.live++
	return v
}

// Release removes v and its remaining children from the tree. Releasing a
// visual twice is a no-op.
func (t *Tree) Release(v *Visual) {
	if v == nil || v.released {
		return
	}
	for _, c := range slices.Clone(v.children) {
		t.Release(c)
	}
	if p := v.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Visual) bool { return c == v })
	} else {
		t.roots = slices.DeleteFunc(t.roots, func(c *Visual) bool { return c == v })
	}
	v.released = true
	v.children = nil
	t.live--
}

// Len returns the number of live visuals.
func (t *Tree) Len() int {
	return t.live
}

// Walk visits visible visuals back to front. Children of a hidden visual
// are skipped. depth is 0 for top-level visuals.
func (t *Tree) Walk(fn func(v *Visual, depth int)) {
	for _, r := range t.roots {
		walk(r, 0, fn)
	}
}

func walk(v *Visual, depth int, fn func(v *Visual, depth int)) {
	if !v.visible {
		return
	}
	fn(v, depth)
	for _, c := range v.paintOrder() {
		walk(c, depth+1, fn)
	}
}
