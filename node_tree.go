package scene

import "slices"

// NewNode creates a detached node in the scene's arena and applies opts.
// A failing option frees the node and returns the error.
func (s *Scene) NewNode(opts ...Option) (Node, error) {
	s.checkThread("NewNode")
	n := s.alloc()
	for _, opt := range opts {
		if err := opt(n); err != nil {
			s.release(n.id)
			return Node{}, err
		}
	}
	return n, nil
}

// MustNode is like NewNode but panics if an option fails.
func (s *Scene) MustNode(opts ...Option) Node {
	n, err := s.NewNode(opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// Parent returns the node's parent and whether it has one.
func (n Node) Parent() (Node, bool) {
	d := n.data()
	if d.parent == noNode {
		return Node{}, false
	}
	return n.s.handle(d.parent), true
}

// Children returns the node's children in declaration order.
func (n Node) Children() []Node {
	d := n.data()
	out := make([]Node, len(d.children))
	for i, id := range d.children {
		out[i] = n.s.handle(id)
	}
	return out
}

// ChildCount returns the number of children.
func (n Node) ChildCount() int {
	return len(n.data().children)
}

// ChildAt returns the child at index i.
func (n Node) ChildAt(i int) Node {
	return n.s.handle(n.data().children[i])
}

// Level returns the node's depth (a root is 0).
func (n Node) Level() int {
	return n.data().level
}

// Window returns the window the node is attached to, or nil when detached.
func (n Node) Window() *Window {
	return n.data().window
}

// IsAttached reports whether the node's root is a window root.
func (n Node) IsAttached() bool {
	return n.data().window != nil
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n Node) IsAncestorOf(other Node) bool {
	d := other.data()
	for p := d.parent; p != noNode; p = n.s.nodes[p].parent {
		if p == n.id {
			return true
		}
	}
	return false
}

// AddChild appends child to n's children.
func (n Node) AddChild(child Node) {
	n.InsertChild(len(n.data().children), child)
}

// InsertChild inserts child at index i (clamped to the child count).
//
// Panics with an AlreadyParented contract error when child already has a
// parent or is a window root, and with CyclicParent when child is n or one
// of its ancestors.
func (n Node) InsertChild(i int, child Node) {
	n.s.checkThread("InsertChild")
	d := n.data()
	cd := child.data()
	if child.s != n.s {
		panic(newContractError(StaleNode, child, "child belongs to another scene"))
	}
	if cd.parent != noNode || cd.isRoot {
		panic(newContractError(AlreadyParented, child, "cannot add to %s", n.label()))
	}
	if child == n || child.IsAncestorOf(n) {
		panic(newContractError(CyclicParent, child, "cannot add beneath %s", n.label()))
	}

	i = max(0, min(i, len(d.children)))
	d.children = slices.Insert(d.children, i, child.id)
	cd.parent = n.id
	child.setLevel(d.level + 1)

	// The child's caches may be valid for a different parent.
	child.resetCaches(ModeMeasure)
	if d.window != nil {
		child.attach(d.window)
	}
	n.changed(PropChildren)
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n Node) RemoveChild(child Node) bool {
	n.s.checkThread("RemoveChild")
	d := n.data()
	idx := slices.Index(d.children, child.id)
	if idx < 0 || child.lookup() == nil {
		return false
	}
	n.removeAt(idx)
	n.changed(PropChildren)
	return true
}

// RemoveAllChildren detaches every child.
func (n Node) RemoveAllChildren() {
	n.s.checkThread("RemoveAllChildren")
	d := n.data()
	if len(d.children) == 0 {
		return
	}
	for len(d.children) > 0 {
		n.removeAt(len(d.children) - 1)
	}
	n.changed(PropChildren)
}

func (n Node) removeAt(idx int) {
	d := n.data()
	child := n.s.handle(d.children[idx])
	d.children = slices.Delete(d.children, idx, idx+1)

	child.detach()
	cd := child.data()
	cd.parent = noNode
	child.setLevel(0)
	child.resetCaches(ModeMeasure)
	cd.hasConstraint, cd.hasFinal = false, false
}

// Destroy detaches n from its parent, clears every cache, unregisters the
// subtree from its window and frees the arena slots. Handles to destroyed
// nodes become stale.
func (n Node) Destroy() {
	n.s.checkThread("Destroy")
	d := n.data()
	if p := d.parent; p != noNode {
		parent := n.s.handle(p)
		parent.removeAt(slices.Index(n.s.nodes[p].children, n.id))
		parent.changed(PropChildren)
	} else if d.isRoot && d.window != nil {
		d.window.clearRoot()
	}
	n.destroySubtree()
}

// destroySubtree detaches n before releasing its children, so detach never
// walks a released slot.
func (n Node) destroySubtree() {
	d := n.data()
	n.detach()
	for _, id := range d.children {
		n.s.handle(id).destroySubtree()
	}
	if b, ok := d.policy.(binder); ok {
		b.bind(Node{})
	}
	n.s.release(n.id)
}

func (n Node) setLevel(level int) {
	d := n.data()
	d.level = level
	for _, id := range d.children {
		n.s.handle(id).setLevel(level + 1)
	}
}

// attach binds the subtree to w.
func (n Node) attach(w *Window) {
	d := n.data()
	d.window = w
	for _, id := range d.children {
		n.s.handle(id).attach(w)
	}
	n.emit(EventAttached)
}

// detach releases the subtree's window resources: visuals, spatial index
// entries and pending dirty entries.
func (n Node) detach() {
	d := n.data()
	for _, id := range d.children {
		n.s.handle(id).detach()
	}
	w := d.window
	if w == nil {
		return
	}
	w.forget(n, d)
	d.window = nil
	d.renderValid = false
	n.emit(EventDetached)
}
