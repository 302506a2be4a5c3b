package scene

import (
	"github.com/grindlemire/go-scene/internal/debug"
)

// Mode is the severity of an invalidation: how much of the pipeline must
// rerun. Modes are totally ordered: Render < Arrange < Measure.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeRender
	ModeArrange
	ModeMeasure
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRender:
		return "render"
	case ModeArrange:
		return "arrange"
	case ModeMeasure:
		return "measure"
	default:
		return "none"
	}
}

// Invalidation describes one request to recompute part of the pipeline.
type Invalidation struct {
	Node     Node
	Mode     Mode
	Property Property // PropNone for manual and propagated invalidations
	Reason   string
	Source   Node // the child whose change was propagated, if any
}

// ParentNotifier is implemented by layout policies that decide for their
// own node whether a non-render invalidation must reach the parent. def is
// the default decision: true unless both Width and Height are pinned.
type ParentNotifier interface {
	NotifiesParent(inv Invalidation, def bool) bool
}

// ChildInvalidationFilter is implemented by layout policies that decide
// whether a child's invalidation reaches their node. notify is the child's
// decision; the returned mode and flag are final.
type ChildInvalidationFilter interface {
	FilterChildInvalidation(parent Node, inv Invalidation, notify bool) (Mode, bool)
}

// Invalidate marks n for recomputation at the given severity. Detached
// nodes only have their caches reset.
func (n Node) Invalidate(mode Mode, reason string) {
	n.s.checkThread("Invalidate")
	n.raise(Invalidation{Node: n, Mode: mode, Reason: reason})
}

// Invalidate marks n for recomputation at the given severity. This is the
// sole entry point to the window's dirty set; property setters and
// Node.Invalidate route through it. n must be attached to w.
func (w *Window) Invalidate(n Node, mode Mode, reason string) {
	w.scene.checkThread("Invalidate")
	if d := n.data(); d.window != w {
		panic(newContractError(StaleNode, n, "node is not attached to window %s", w.name))
	}
	w.invalidate(Invalidation{Node: n, Mode: mode, Reason: reason})
}

func (n Node) raise(inv Invalidation) {
	if inv.Mode == ModeNone {
		return
	}
	d := n.data()
	if d.window != nil {
		d.window.invalidate(inv)
		return
	}
	n.resetCaches(inv.Mode)
	n.markAncestors(inv.Mode)
}

// resetCaches drops the geometry the mode invalidates. Measure resets all
// three caches, Arrange resets arrange and render, Render resets render.
func (n Node) resetCaches(mode Mode) {
	d := n.data()
	switch mode {
	case ModeMeasure:
		d.desiredValid = false
		d.arrangedValid = false
		d.renderValid = false
	case ModeArrange:
		d.arrangedValid = false
		d.renderValid = false
	case ModeRender:
		d.renderValid = false
	}
}

// markAncestors flags every ancestor so the next pass descends to n even
// when the ancestor's own cache is valid.
func (n Node) markAncestors(mode Mode) {
	if mode < ModeArrange {
		return
	}
	for p := n.data().parent; p != noNode; p = n.s.nodes[p].parent {
		pd := n.s.nodes[p]
		pd.subtreeArrangeDirty = true
		if mode == ModeMeasure {
			pd.subtreeMeasureDirty = true
		}
	}
}

// notifiesParent decides whether inv must be raised on the node's parent
// and at which severity. The child's policy refines the default, then the
// parent's policy has the final say.
func (w *Window) notifiesParent(inv Invalidation, parent Node) (Mode, bool) {
	d := inv.Node.data()
	notify := !d.box.SizePinned()
	if pn, ok := d.policy.(ParentNotifier); ok {
		notify = pn.NotifiesParent(inv, notify)
	}
	mode := inv.Mode
	if f, ok := parent.data().policy.(ChildInvalidationFilter); ok {
		mode, notify = f.FilterChildInvalidation(parent, inv, notify)
	}
	return mode, notify && mode != ModeNone
}

func (w *Window) invalidate(inv Invalidation) {
	n := inv.Node
	d := n.data()
	n.resetCaches(inv.Mode)
	n.markAncestors(inv.Mode)
	w.recordMarker(inv)
	incrInvalidate(inv.Mode)

	if inv.Mode != ModeRender && d.parent != noNode {
		parent := w.scene.handle(d.parent)
		if mode, ok := w.notifiesParent(inv, parent); ok {
			w.invalidate(Invalidation{
				Node:   parent,
				Mode:   mode,
				Reason: "child " + inv.Reason,
				Source: n,
			})
		}
	}

	defer w.requestDrain()
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.subsumedLocked(n, inv.Mode) {
		return
	}
	if old, ok := w.dirty[n]; ok && old >= inv.Mode {
		return
	}
	w.dirty[n] = inv.Mode
	w.dropDescendantsLocked(n, inv.Mode)
}

// subsumedLocked walks up from n to the nearest ancestor with a pending
// entry. An equal or higher entry already covers n; a lower one is
// upgraded in place of adding n. Caller must hold w.mu.
func (w *Window) subsumedLocked(n Node, mode Mode) bool {
	s := w.scene
	for p := n.data().parent; p != noNode; p = s.nodes[p].parent {
		a := s.handle(p)
		pending, ok := w.dirty[a]
		if !ok {
			continue
		}
		if pending < mode {
			debug.Event("escalate ancestor", "window", w.name, "node", a.label(), "from", pending, "to", mode)
			w.dirty[a] = mode
			w.dropDescendantsLocked(a, mode)
		}
		return true
	}
	return false
}

// dropDescendantsLocked removes entries below n that n's pass will cover:
// every entry at or below n's severity. Caller must hold w.mu.
func (w *Window) dropDescendantsLocked(n Node, mode Mode) {
	for k, m := range w.dirty {
		if m <= mode && n.IsAncestorOf(k) {
			delete(w.dirty, k)
		}
	}
}

// PendingMode returns the severity pending for n in the current batch.
func (w *Window) PendingMode(n Node) (Mode, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, ok := w.dirty[n]
	return m, ok
}

// PendingCount returns the number of entries in the current batch.
func (w *Window) PendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirty)
}
