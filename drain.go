package scene

import (
	"cmp"
	"slices"
	"time"

	"github.com/grindlemire/go-scene/internal/debug"
)

type batchEntry struct {
	node  Node
	mode  Mode
	level int
}

// Drain processes the current batch. The dirty set is swapped out first,
// so invalidations raised while draining land in the next batch, which is
// requested when this one finishes. A Drain called while one is already
// running returns at once. Entries run top-down; a root entry runs a full
// pass against the client size and abandons the rest of the batch.
//
// A contract violation during the drain is returned as a *ContractError.
// Any other panic propagates.
func (w *Window) Drain() (err error) {
	w.scene.checkThread("Drain")
	if w.draining {
		// The running drain re-requests once it sees the new entries.
		w.resetPending()
		return nil
	}
	w.resetPending()

	w.mu.Lock()
	batch := w.dirty
	w.dirty = make(map[Node]Mode)
	w.mu.Unlock()

	start := time.Now()
	w.draining = true
	defer func() {
		w.draining = false
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
		if lerr := w.finishLoopCheck(); err == nil {
			err = lerr
		}
		if ce, ok := err.(*ContractError); ok {
			incrDrainError(ce.Kind)
			debug.Warn("drain failed", "window", w.name, "kind", ce.Kind, "node", ce.NodeName, "detail", ce.Detail)
		}
		measureDrain(start, len(batch))
		if err == nil && w.PendingCount() > 0 {
			w.requestDrain()
		}
	}()

	if len(batch) == 0 {
		return nil
	}
	entries := w.sortBatch(batch)
	debug.Event("drain", "window", w.name, "entries", len(entries))

	for i, e := range entries {
		if d := e.node.lookup(); d == nil || d.window != w {
			continue
		}
		mode := w.escalate(e.node, e.mode)
		target := e.node
		if mode == ModeMeasure {
			target = w.measureTarget(e.node)
		}
		if target == w.root {
			w.rootPass()
			if rest := len(entries) - i - 1; rest > 0 {
				debug.Event("root pass abandoned batch", "window", w.name, "abandoned", rest)
			}
			return nil
		}
		if w.hiddenByAncestor(target) {
			continue
		}
		w.execute(target, mode)
	}
	return nil
}

// sortBatch orders entries by depth, then slot, so parents run before
// their descendants.
func (w *Window) sortBatch(batch map[Node]Mode) []batchEntry {
	entries := make([]batchEntry, 0, len(batch))
	for n, m := range batch {
		level := 0
		if d := n.lookup(); d != nil {
			level = d.level
		}
		entries = append(entries, batchEntry{node: n, mode: m, level: level})
	}
	slices.SortFunc(entries, func(a, b batchEntry) int {
		if c := cmp.Compare(a.level, b.level); c != 0 {
			return c
		}
		return cmp.Compare(a.node.id, b.node.id)
	})
	return entries
}

// escalate raises mode when the state it builds on is missing: a render
// needs a valid arrange and an arrange needs a valid measure.
func (w *Window) escalate(n Node, mode Mode) Mode {
	d := n.data()
	from := mode
	if mode == ModeRender && !d.arrangedValid {
		mode = ModeArrange
	}
	if mode == ModeArrange && !d.desiredValid {
		mode = ModeMeasure
	}
	if mode != from {
		debug.Event("escalate entry", "window", w.name, "node", n.label(), "from", from, "to", mode)
	}
	return mode
}

// measureTarget returns the nearest node, starting at n, that knows the
// constraint to measure against. Only the parent can supply a constraint
// to a node that was never measured.
func (w *Window) measureTarget(n Node) Node {
	for {
		d := n.data()
		if d.hasConstraint || d.parent == noNode {
			return n
		}
		debug.Event("escalate to parent", "window", w.name, "node", n.label(), "reason", "no constraint")
		n = w.scene.handle(d.parent)
	}
}

// rootPass measures the root against the client size, arranges it over
// the client area and renders the whole tree.
func (w *Window) rootPass() {
	incrRootPass()
	root := w.root
	root.Measure(w.client)
	root.Arrange(RectFromSize(w.client))
	root.Render()
}

// hiddenByAncestor reports whether an ancestor of n is collapsed or was
// last rendered with nothing visible. Such subtrees are skipped.
func (w *Window) hiddenByAncestor(n Node) bool {
	s := w.scene
	for p := n.data().parent; p != noNode; p = s.nodes[p].parent {
		pd := s.nodes[p]
		if !pd.visible || (pd.renderValid && pd.absBounds.IsEmpty()) {
			return true
		}
	}
	return false
}

// execute runs the pipeline from mode downwards and renders the subtree.
func (w *Window) execute(n Node, mode Mode) {
	d := n.data()
	switch mode {
	case ModeMeasure:
		before := d.desired
		n.Measure(d.constraint)
		n.reportDesiredChange(before)
		fallthrough
	case ModeArrange:
		if !d.hasFinal {
			// Never placed by its parent; the parent's pass will.
			return
		}
		n.Arrange(d.final)
		fallthrough
	case ModeRender:
		n.Render()
	}
}
