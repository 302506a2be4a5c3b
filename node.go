package scene

import (
	"fmt"

	"github.com/grindlemire/go-scene/internal/layout"
)

// Node is a handle to a node stored in its Scene's arena. Handles are small
// comparable values; copying one does not copy the node. A handle outlives
// its node: using it after Destroy panics with a StaleNode contract error.
//
// The zero Node refers to nothing.
type Node struct {
	s   *Scene
	id  int32
	gen uint32
}

// noNode marks an absent parent or child link in the arena.
const noNode int32 = -1

// nodeData is the arena record behind a Node handle.
type nodeData struct {
	gen   uint32
	alive bool
	name  string

	// Tree (arena indexes)
	parent   int32
	children []int32
	level    int
	window   *Window
	isRoot   bool

	// Box model
	box     layout.Box
	padding layout.Thickness

	visible        bool
	enabled        bool
	clipFromParent bool
	shadow         bool
	zIndex         int
	hasZIndex      bool

	// Container attachment
	cell   layout.Cell
	grow   float64
	shrink float64

	policy LayoutPolicy

	// Geometry caches. Each value keeps its last content after the validity
	// flag is cleared so a drain can tell whether it changed.
	desired       Size
	desiredValid  bool
	constraint    Size
	hasConstraint bool
	final         Rect
	hasFinal      bool
	arranged      Rect
	arrangedValid bool
	render        Rect
	renderValid   bool

	// Set on ancestors of a node whose caches were reset, so a pass that
	// finds this node's own cache valid still descends.
	subtreeMeasureDirty bool
	subtreeArrangeDirty bool

	// Absolute render state used by descendants and hit testing.
	absOrigin Point
	absScale  float64
	absBounds Rect
	indexed   bool
	visual    Visual

	observers []*observer
}

func newNodeData(gen uint32) *nodeData {
	return &nodeData{
		gen:            gen,
		alive:          true,
		parent:         noNode,
		box:            layout.DefaultBox(),
		visible:        true,
		enabled:        true,
		clipFromParent: true,
		cell:           layout.DefaultCell(),
		shrink:         1,
		policy:         Panel{},
		absScale:       1,
	}
}

// alloc takes a slot from the free list or grows the arena.
func (s *Scene) alloc() Node {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		gen := s.nodes[id].gen + 1
		s.nodes[id] = newNodeData(gen)
		return Node{s: s, id: id, gen: gen}
	}
	id := int32(len(s.nodes))
	s.nodes = append(s.nodes, newNodeData(1))
	return Node{s: s, id: id, gen: 1}
}

// release frees the slot. The generation is kept so stale handles fail.
func (s *Scene) release(id int32) {
	d := s.nodes[id]
	gen := d.gen
	*d = nodeData{gen: gen, parent: noNode}
	s.free = append(s.free, id)
}

// handle returns a Node for an arena index.
func (s *Scene) handle(id int32) Node {
	if id == noNode {
		return Node{}
	}
	return Node{s: s, id: id, gen: s.nodes[id].gen}
}

// lookup returns the arena record, or nil when the handle is stale.
func (n Node) lookup() *nodeData {
	if n.s == nil || n.id < 0 || int(n.id) >= len(n.s.nodes) {
		return nil
	}
	d := n.s.nodes[n.id]
	if !d.alive || d.gen != n.gen {
		return nil
	}
	return d
}

// data returns the arena record and panics on a stale handle.
func (n Node) data() *nodeData {
	d := n.lookup()
	if d == nil {
		panic(&ContractError{Kind: StaleNode, Node: n, NodeName: n.label(), Detail: "handle refers to a destroyed or foreign node"})
	}
	return d
}

// IsValid reports whether the handle refers to a live node.
func (n Node) IsValid() bool {
	return n.lookup() != nil
}

// Scene returns the scene that owns the node.
func (n Node) Scene() *Scene {
	return n.s
}

// ID returns the node's arena slot. Slots are reused after Destroy; pair
// with the handle itself for identity.
func (n Node) ID() int {
	return int(n.id)
}

// label names the node for errors and logs without panicking on a stale
// handle.
func (n Node) label() string {
	if n.s == nil {
		return "<nil>"
	}
	d := n.lookup()
	if d == nil || d.name == "" {
		return fmt.Sprintf("#%d", n.id)
	}
	return fmt.Sprintf("%s#%d", d.name, n.id)
}

// String returns the node's debug name and slot.
func (n Node) String() string {
	return n.label()
}

// State is a node's position in the measure, arrange, render cycle.
type State uint8

const (
	Unmeasured State = iota
	Measured
	Arranged
	Rendered
)

// String returns the state name.
func (st State) String() string {
	switch st {
	case Measured:
		return "measured"
	case Arranged:
		return "arranged"
	case Rendered:
		return "rendered"
	default:
		return "unmeasured"
	}
}

// State derives the node's state from its cache validity.
func (n Node) State() State {
	d := n.data()
	switch {
	case !d.desiredValid:
		return Unmeasured
	case !d.arrangedValid:
		return Measured
	case !d.renderValid:
		return Arranged
	default:
		return Rendered
	}
}
