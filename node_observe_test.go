package scene

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestNode_ObserveLifecycle(t *testing.T) {
	s := newTestScene(t)
	leaf := newTestNode(t, s, WithSize(10, 10))
	root := newTestNode(t, s, WithChildren(leaf))

	var log eventLog
	stop := log.observe(leaf)
	mountTree(t, s, 100, 100, root)

	must.Eq(t, []EventKind{EventAttached, EventMeasured, EventArranged, EventRendered}, log.events)

	leaf.SetZIndex(3)
	settle(t, s)
	must.Eq(t, 2, log.count(EventRendered))
	must.Eq(t, 1, log.count(EventMeasured))

	root.RemoveChild(leaf)
	must.Eq(t, 1, log.count(EventDetached))

	stop()
	stop()
	root.AddChild(leaf)
	settle(t, s)
	must.Eq(t, 1, log.count(EventAttached))
}

func TestNode_ObserveEventCarriesNode(t *testing.T) {
	s := newTestScene(t)
	n := newTestNode(t, s)

	var got Event
	n.Observe(func(e Event) { got = e })
	n.Measure(NewSize(10, 10))

	must.Eq(t, EventMeasured, got.Kind)
	must.EqOp(t, n, got.Node)
}

func TestNode_ObserverMayUnobserveItself(t *testing.T) {
	s := newTestScene(t)
	n := newTestNode(t, s)

	calls := 0
	var stop Unobserve
	stop = n.Observe(func(Event) {
		calls++
		stop()
	})
	var other eventLog
	other.observe(n)

	n.Measure(NewSize(10, 10))
	n.Measure(NewSize(20, 20))
	must.Eq(t, 1, calls)
	must.Eq(t, 2, other.count(EventMeasured))
}
