package scene

// EventKind identifies a node lifecycle notification.
type EventKind uint8

const (
	EventAttached EventKind = iota + 1
	EventDetached
	EventMeasured
	EventArranged
	EventRendered
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventAttached:
		return "attached"
	case EventDetached:
		return "detached"
	case EventMeasured:
		return "measured"
	case EventArranged:
		return "arranged"
	case EventRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// Event is delivered to a node's observers after a lifecycle step.
type Event struct {
	Kind EventKind
	Node Node
}

type observer struct {
	fn     func(Event)
	active bool
}

// Unobserve removes an observer registered with Node.Observe.
type Unobserve func()

// Observe registers fn to be called synchronously on the UI goroutine after
// the node is attached, detached, measured, arranged or rendered. Observers
// must not mutate layout properties of the node being notified.
func (n Node) Observe(fn func(Event)) Unobserve {
	n.s.checkThread("Observe")
	d := n.data()
	o := &observer{fn: fn, active: true}
	d.observers = append(d.observers, o)
	return func() {
		o.active = false
		if d := n.lookup(); d != nil {
			for i, cur := range d.observers {
				if cur == o {
					d.observers = append(d.observers[:i], d.observers[i+1:]...)
					break
				}
			}
		}
	}
}

func (n Node) emit(kind EventKind) {
	d := n.lookup()
	if d == nil || len(d.observers) == 0 {
		return
	}
	observers := make([]*observer, len(d.observers))
	copy(observers, d.observers)
	ev := Event{Kind: kind, Node: n}
	for _, o := range observers {
		if o.active {
			o.fn(ev)
		}
	}
}
