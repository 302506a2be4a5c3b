package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
)

func TestDrain_RootPass(t *testing.T) {
	s := newTestScene(t)
	child := newTestNode(t, s, WithName("child"), WithSize(50, 20))
	root := newTestNode(t, s, WithName("root"), WithChildren(child))
	w := newTestWindow(t, s, 200, 100)

	w.SetRoot(root)
	must.True(t, w.DrainPending())
	must.NoError(t, w.Drain())

	must.Eq(t, Rendered, root.State())
	must.Eq(t, Rendered, child.State())
	b, ok := root.Bounds()
	must.True(t, ok)
	must.Eq(t, NewRect(0, 0, 200, 100), b)
	b, _ = child.Bounds()
	must.Eq(t, NewRect(0, 0, 50, 20), b)
	must.Eq(t, 0, w.PendingCount())
}

func TestDrain_RootAbandonsBatch(t *testing.T) {
	s := newTestScene(t)
	w, root, child, _ := pinnedTree(t, s)
	var log eventLog
	log.observe(child)

	child.Invalidate(ModeArrange, "child")
	root.Invalidate(ModeRender, "root")
	must.Eq(t, 2, w.PendingCount())

	must.NoError(t, w.Drain())

	// The root pass covers the child once; its own entry is not run.
	must.Eq(t, 1, log.count(EventArranged))
	must.Eq(t, 1, log.count(EventRendered))
	must.Eq(t, Rendered, child.State())
}

func TestDrain_Escalation(t *testing.T) {
	type tc struct {
		mode         Mode
		breakCaches  func(d *nodeData)
		wantMeasured int
		wantArranged int
	}

	tests := map[string]tc{
		"render with valid arrange": {
			mode:         ModeRender,
			breakCaches:  func(*nodeData) {},
			wantMeasured: 0,
			wantArranged: 0,
		},
		"render without arrange arranges": {
			mode:         ModeRender,
			breakCaches:  func(d *nodeData) { d.arrangedValid = false },
			wantMeasured: 0,
			wantArranged: 1,
		},
		"arrange without measure measures": {
			mode:         ModeArrange,
			breakCaches:  func(d *nodeData) { d.desiredValid = false },
			wantMeasured: 1,
			wantArranged: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t)
			w, _, child, _ := pinnedTree(t, s)
			var log eventLog
			log.observe(child)

			child.Invalidate(tt.mode, "test")
			tt.breakCaches(child.data())
			must.NoError(t, w.Drain())

			must.Eq(t, tt.wantMeasured, log.count(EventMeasured))
			must.Eq(t, tt.wantArranged, log.count(EventArranged))
			must.Eq(t, 1, log.count(EventRendered))
			must.Eq(t, Rendered, child.State())
		})
	}
}

func TestDrain_MeasureWithoutConstraintGoesToParent(t *testing.T) {
	s := newTestScene(t)
	w, _, child, grand := pinnedTree(t, s)
	var childLog, grandLog eventLog
	childLog.observe(child)
	grandLog.observe(grand)

	grand.Invalidate(ModeMeasure, "grand")
	grand.data().hasConstraint = false
	must.NoError(t, w.Drain())

	must.Eq(t, 1, childLog.count(EventMeasured))
	must.Eq(t, 1, grandLog.count(EventMeasured))
	must.Eq(t, Rendered, grand.State())
	c, ok := grand.LastConstraint()
	must.True(t, ok)
	must.Eq(t, NewSize(50, 50), c)
}

func TestDrain_HiddenSubtreeSkipped(t *testing.T) {
	type tc struct {
		childOpts []Option
	}

	tests := map[string]tc{
		"collapsed parent": {
			childOpts: []Option{WithVisible(false)},
		},
		"parent clipped to nothing": {
			childOpts: []Option{WithSize(0, 0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t)
			grand := newTestNode(t, s, WithSize(10, 10))
			child := newTestNode(t, s, append(tt.childOpts, WithChildren(grand))...)
			root := newTestNode(t, s, WithChildren(child))
			w := mountTree(t, s, 100, 100, root)
			var log eventLog
			log.observe(grand)

			grand.Invalidate(ModeRender, "grand")
			must.NoError(t, w.Drain())

			must.Eq(t, 0, log.count(EventRendered))
			_, hit := w.HitTest(5, 5)
			must.True(t, hit)
			got, _ := w.HitTest(5, 5)
			must.EqOp(t, root, got)
		})
	}
}

func TestDrain_DesiredSizeChangeRaisesParent(t *testing.T) {
	s := newTestScene(t)
	w, root, child, _ := pinnedTree(t, s)

	child.SetWidth(80)
	_, ok := w.PendingMode(root)
	must.False(t, ok)

	must.NoError(t, w.Drain())
	got, ok := w.PendingMode(root)
	must.True(t, ok)
	must.Eq(t, ModeMeasure, got)

	settle(t, s)
	d, _ := root.DesiredSize()
	must.Eq(t, NewSize(80, 50), d)
	r, _ := child.ArrangedRect()
	must.Eq(t, NewRect(0, 0, 80, 50), r)
}

func TestDrain_ContractErrorReturned(t *testing.T) {
	type tc struct {
		size Size
	}

	tests := map[string]tc{
		"nan width":       {size: Size{Width: math.NaN(), Height: 1}},
		"negative height": {size: Size{Width: 1, Height: -1}},
		"infinite width":  {size: Size{Width: math.Inf(1), Height: 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t)
			bad := newTestNode(t, s, WithName("bad"), WithPolicy(&fixedPolicy{size: tt.size}))
			root := newTestNode(t, s, WithChildren(bad))
			w := newTestWindow(t, s, 100, 100)
			w.SetRoot(root)

			err := s.RunPending()
			must.ErrorIs(t, err, ErrContract)
			var ce *ContractError
			must.True(t, errors.As(err, &ce))
			must.Eq(t, InvalidMeasure, ce.Kind)
			must.EqOp(t, bad, ce.Node)
			must.True(t, strings.HasPrefix(ce.NodeName, "bad"))
		})
	}
}

func TestDrain_OtherPanicsPropagate(t *testing.T) {
	s := newTestScene(t)
	root := newTestNode(t, s, WithPolicy(panicPolicy{value: "boom"}))
	w := newTestWindow(t, s, 100, 100)
	w.SetRoot(root)

	r := capturePanic(func() { _ = w.Drain() })
	must.Eq(t, any("boom"), r)

	// The drain state is reset; the next drain runs normally.
	root.SetPolicy(Panel{})
	must.NoError(t, s.RunPending())
	must.Eq(t, Rendered, root.State())
}

// tickOnRender re-invalidates n every time it renders, which never settles.
func tickOnRender(n Node) {
	n.Observe(func(e Event) {
		if e.Kind == EventRendered {
			n.Invalidate(ModeRender, "tick")
		}
	})
}

func TestDrain_Oscillation(t *testing.T) {
	type tc struct {
		detect  bool
		wantErr error
	}

	tests := map[string]tc{
		"detected":     {detect: true, wantErr: ErrContract},
		"not detected": {detect: false, wantErr: ErrUnsettled},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t, WithLoopDetection(tt.detect), WithSettleLimit(5))
			child := newTestNode(t, s, WithSize(10, 10))
			root := newTestNode(t, s, WithChildren(child))
			tickOnRender(child)
			w := newTestWindow(t, s, 100, 100)
			w.SetRoot(root)

			err := s.RunPending()
			must.ErrorIs(t, err, tt.wantErr)
			var ce *ContractError
			if errors.As(err, &ce) {
				must.Eq(t, Oscillation, ce.Kind)
			}
		})
	}
}

func TestDrain_OutsideInputResetsLoopCheck(t *testing.T) {
	s := newTestScene(t, WithLoopDetection(true))
	child := newTestNode(t, s, WithSize(10, 10))
	root := newTestNode(t, s, WithChildren(child))
	tickOnRender(child)
	w := newTestWindow(t, s, 100, 100)
	w.SetRoot(root)

	must.NoError(t, w.Drain())
	child.Invalidate(ModeRender, "outside")
	must.NoError(t, w.Drain())
	must.ErrorIs(t, w.Drain(), ErrContract)
}

func TestDrain_DestroyedEntriesDropped(t *testing.T) {
	s := newTestScene(t)
	w, _, child, grand := pinnedTree(t, s)

	grand.Invalidate(ModeMeasure, "grand")
	child.Invalidate(ModeArrange, "child")
	must.Eq(t, 2, w.PendingCount())

	child.Destroy()
	must.False(t, child.IsValid())
	must.False(t, grand.IsValid())

	// Destroying the child raised a measure on the root.
	must.Eq(t, 1, w.PendingCount())
	must.NoError(t, w.Drain())
}

// syncScheduler runs posted drains inline, so a drain requested while
// draining re-enters Drain.
type syncScheduler struct{}

func (syncScheduler) Post(fn func()) { fn() }

func TestDrain_ReentrantRequestRunsNextBatch(t *testing.T) {
	s := newTestScene(t)
	w := newTestWindow(t, s, 100, 100, WithScheduler(syncScheduler{}))
	leaf := newTestNode(t, s, WithName("leaf"), WithSize(10, 10))
	root := newTestNode(t, s, WithName("root"), WithChildren(leaf))

	var log eventLog
	log.observe(leaf)
	fired := false
	leaf.Observe(func(e Event) {
		if e.Kind == EventArranged && !fired {
			fired = true
			leaf.Invalidate(ModeRender, "arranged")
		}
	})

	w.SetRoot(root)
	must.True(t, fired)
	must.False(t, w.DrainPending())
	must.Eq(t, 0, w.PendingCount())
	must.Eq(t, Rendered, leaf.State())
	must.Eq(t, 2, log.count(EventRendered))

	leaf.Invalidate(ModeArrange, "later")
	must.False(t, w.DrainPending())
	must.Eq(t, 0, w.PendingCount())
	must.Eq(t, Rendered, leaf.State())
}
