package scene

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/grindlemire/go-scene/internal/compositor"
	"github.com/grindlemire/go-scene/internal/debug"
)

// Window is a surface hosting one node tree. It owns the tree's dirty set
// and drains it once per scheduling tick.
type Window struct {
	scene  *Scene
	id     uuid.UUID
	name   string
	root   Node
	client Size

	// mu guards dirty. Invalidations may be raised while a drain runs; they
	// land in the fresh batch swapped in at the start of the drain.
	mu    sync.Mutex
	dirty map[Node]Mode

	// pending is set while a drain has been requested but not run.
	pending atomic.Bool

	scheduler  Scheduler
	compositor Compositor
	spatial    SpatialIndex
	quad       *quadIndex // nil when a custom spatial index is installed

	loop     *loopDetector
	draining bool
}

// NewWindow creates a window with the given client size.
func (s *Scene) NewWindow(width, height float64, opts ...WindowOption) (*Window, error) {
	s.checkThread("NewWindow")
	if !validClient(width, height) {
		return nil, fmt.Errorf("window size %gx%g must be finite and non-negative", width, height)
	}
	w := &Window{
		scene:  s,
		id:     uuid.New(),
		client: Size{Width: width, Height: height},
		dirty:  make(map[Node]Mode),
		loop:   newLoopDetector(s.loopDetection),
	}
	w.name = w.id.String()[:8]
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	if w.compositor == nil {
		w.compositor = newRetained()
	}
	if w.spatial == nil {
		w.quad = newQuadIndex(w.client)
		w.spatial = w.quad
	}
	s.windows = append(s.windows, w)
	debug.Event("window created", "window", w.name, "id", w.id, "width", width, "height", height)
	return w, nil
}

func validClient(width, height float64) bool {
	return Size{Width: width, Height: height}.IsValid()
}

// ID returns the window's unique identifier.
func (w *Window) ID() uuid.UUID { return w.id }

// Name returns the window's name, used in logs.
func (w *Window) Name() string { return w.name }

// Scene returns the scene that owns the window.
func (w *Window) Scene() *Scene { return w.scene }

// Root returns the root node, if any.
func (w *Window) Root() (Node, bool) {
	return w.root, w.root.IsValid()
}

// ClientSize returns the size the root is measured against.
func (w *Window) ClientSize() Size { return w.client }

// Compositor returns the window's visual back end.
func (w *Window) Compositor() Compositor { return w.compositor }

// Visuals returns the retained visual tree of the default compositor, or
// nil when a custom compositor is installed.
func (w *Window) Visuals() *compositor.Tree {
	if r, ok := w.compositor.(*retained); ok {
		return r.tree
	}
	return nil
}

// SetRoot makes n the window's root, replacing the current one. n must not
// have a parent or belong to another window.
func (w *Window) SetRoot(n Node) {
	w.scene.checkThread("SetRoot")
	d := n.data()
	if w.root == n {
		return
	}
	if d.parent != noNode || d.isRoot {
		panic(newContractError(AlreadyParented, n, "cannot become the root of window %s", w.name))
	}
	if old, ok := w.Root(); ok {
		od := old.data()
		od.isRoot = false
		w.clearRoot()
		old.detach()
		od.hasConstraint, od.hasFinal = false, false
	}
	w.root = n
	d.isRoot = true
	n.setLevel(0)
	n.attach(w)
	n.raise(Invalidation{Node: n, Mode: ModeMeasure, Reason: "set root"})
}

// clearRoot forgets the root without touching the node.
func (w *Window) clearRoot() {
	if d := w.root.lookup(); d != nil {
		d.isRoot = false
	}
	w.root = Node{}
}

// Resize changes the client size and remeasures the root.
func (w *Window) Resize(width, height float64) error {
	w.scene.checkThread("Resize")
	if !validClient(width, height) {
		return fmt.Errorf("window size %gx%g must be finite and non-negative", width, height)
	}
	size := Size{Width: width, Height: height}
	if size.Equal(w.client) {
		return nil
	}
	w.client = size
	if w.quad != nil {
		w.quad.resize(size)
		if root, ok := w.Root(); ok {
			root.markUnindexed()
		}
	}
	if root, ok := w.Root(); ok {
		root.raise(Invalidation{Node: root, Mode: ModeMeasure, Reason: "resize"})
	}
	return nil
}

// forget releases everything the window holds for a node leaving it.
func (w *Window) forget(n Node, d *nodeData) {
	if d.visual != nil {
		w.compositor.ReleaseVisual(d.visual)
		d.visual = nil
	}
	if d.indexed {
		w.spatial.Remove(n)
		d.indexed = false
	}
	w.mu.Lock()
	delete(w.dirty, n)
	w.mu.Unlock()
	if w.root == n {
		w.root = Node{}
	}
}

// publish pushes a rendered node's geometry to its visual and the spatial
// index.
func (w *Window) publish(n Node, d *nodeData, abs, visible Rect) {
	if d.visual == nil {
		d.visual = w.compositor.NewVisual(n)
	}
	if v := d.visual; v != nil {
		v.SetSize(abs.Size())
		v.SetOffset(abs.X, abs.Y, float64(d.level))
		v.SetClip(visible)
		v.SetZOrder(n.siblingZOrder())
		v.SetVisible(true)
	}
	w.spatial.Move(n, visible)
	d.indexed = true
}

// unindexSubtree removes n and its descendants from the spatial index.
func (w *Window) unindexSubtree(n Node) {
	d := n.data()
	if d.indexed {
		w.spatial.Remove(n)
		d.indexed = false
	}
	for _, id := range d.children {
		w.unindexSubtree(w.scene.handle(id))
	}
}

// markUnindexed clears index bookkeeping after the index was reset.
func (n Node) markUnindexed() {
	d := n.data()
	d.indexed = false
	for _, id := range d.children {
		n.s.handle(id).markUnindexed()
	}
}

// siblingZOrder is the node's z-order among its siblings.
func (n Node) siblingZOrder() int {
	d := n.data()
	if d.parent == noNode {
		return n.zOrder(0)
	}
	return n.zOrder(slices.Index(n.s.nodes[d.parent].children, n.id))
}
