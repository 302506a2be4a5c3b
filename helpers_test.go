package scene

import (
	"testing"

	"github.com/shoenig/test/must"
)

// newTestScene creates a scene owned by the calling goroutine. Subtests run
// on their own goroutines, so each creates its own scene.
func newTestScene(t *testing.T, opts ...SceneOption) *Scene {
	t.Helper()
	s, err := NewScene(opts...)
	must.NoError(t, err)
	return s
}

func newTestWindow(t *testing.T, s *Scene, width, height float64, opts ...WindowOption) *Window {
	t.Helper()
	w, err := s.NewWindow(width, height, opts...)
	must.NoError(t, err)
	return w
}

func newTestNode(t *testing.T, s *Scene, opts ...Option) Node {
	t.Helper()
	n, err := s.NewNode(opts...)
	must.NoError(t, err)
	return n
}

// settle runs every pending task and drain.
func settle(t *testing.T, s *Scene) {
	t.Helper()
	must.NoError(t, s.RunPending())
}

// mountTree puts root in a fresh window and settles it.
func mountTree(t *testing.T, s *Scene, width, height float64, root Node) *Window {
	t.Helper()
	w := newTestWindow(t, s, width, height)
	w.SetRoot(root)
	settle(t, s)
	return w
}

// fixedPolicy is a leaf reporting a constant content size.
type fixedPolicy struct {
	size Size

	measures  int
	arranges  int
	available Size // last MeasureCore argument
	content   Rect // last ArrangeCore argument
}

func (p *fixedPolicy) MeasureCore(_ Node, available Size) Size {
	p.measures++
	p.available = available
	return p.size
}

func (p *fixedPolicy) ArrangeCore(_ Node, content Rect) {
	p.arranges++
	p.content = content
}

// quietPolicy never tells its parent about its own changes.
type quietPolicy struct {
	Panel
}

func (quietPolicy) NotifiesParent(Invalidation, bool) bool { return false }

// panicPolicy panics with value from MeasureCore.
type panicPolicy struct {
	value any
}

func (p panicPolicy) MeasureCore(Node, Size) Size { panic(p.value) }
func (p panicPolicy) ArrangeCore(Node, Rect)      {}

// recordingScheduler keeps posted drains for the test to run.
type recordingScheduler struct {
	posted []func()
}

func (r *recordingScheduler) Post(fn func()) {
	r.posted = append(r.posted, fn)
}

// eventLog records observer events for a node.
type eventLog struct {
	events []EventKind
}

func (l *eventLog) observe(n Node) Unobserve {
	return n.Observe(func(e Event) {
		l.events = append(l.events, e.Kind)
	})
}

func (l *eventLog) count(kind EventKind) int {
	c := 0
	for _, k := range l.events {
		if k == kind {
			c++
		}
	}
	return c
}

// capturePanic runs fn and returns what it panicked with, or nil.
func capturePanic(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

// contractKind returns the kind of a *ContractError panic value.
func contractKind(t *testing.T, r any) ContractKind {
	t.Helper()
	ce, ok := r.(*ContractError)
	must.True(t, ok, must.Sprintf("expected *ContractError, got %T: %v", r, r))
	return ce.Kind
}
