package scene

import (
	"fmt"

	"github.com/grindlemire/go-scene/internal/layout"
)

// LayoutPolicy is the node-specific half of the measure and arrange
// contract. A node delegates to its policy after applying its own box
// model.
type LayoutPolicy interface {
	// MeasureCore measures n's children as needed and returns the content
	// size n wants within available (padding already removed). The result
	// must be finite and non-negative.
	MeasureCore(n Node, available Size) Size

	// ArrangeCore arranges n's children within content, given in n's local
	// coordinates (padding already removed).
	ArrangeCore(n Node, content Rect)
}

// binder is implemented by policies that keep a reference to the node they
// are installed on.
type binder interface {
	bind(n Node)
}

func policyName(p LayoutPolicy) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}

// Panel overlays its children: each child gets the whole content rect and
// the panel wants the largest child.
type Panel struct{}

var _ LayoutPolicy = Panel{}

// MeasureCore measures every child against the available space.
func (Panel) MeasureCore(n Node, available Size) Size {
	var out Size
	for _, c := range n.Children() {
		c.Measure(available)
		d, _ := c.DesiredSize()
		out.Width = max(out.Width, d.Width)
		out.Height = max(out.Height, d.Height)
	}
	return out
}

// ArrangeCore gives every child the full content rect.
func (Panel) ArrangeCore(n Node, content Rect) {
	for _, c := range n.Children() {
		c.Arrange(content)
	}
}

func (Panel) String() string { return "panel" }

// childNode adapts a Node to the solver child interfaces.
type childNode struct {
	n Node
}

var (
	_ layout.GridChild = childNode{}
	_ layout.FlexChild = childNode{}
)

func (c childNode) Measure(constraint Size) { c.n.Measure(constraint) }
func (c childNode) Arrange(final Rect)      { c.n.Arrange(final) }
func (c childNode) Visible() bool           { return c.n.data().visible }
func (c childNode) Box() layout.Box         { return c.n.data().box }
func (c childNode) Cell() layout.Cell       { return c.n.data().cell }
func (c childNode) Grow() float64           { return c.n.data().grow }
func (c childNode) Shrink() float64         { return c.n.data().shrink }

func (c childNode) DesiredSize() Size {
	d, _ := c.n.DesiredSize()
	return d
}

func gridChildren(n Node) []layout.GridChild {
	d := n.data()
	out := make([]layout.GridChild, len(d.children))
	for i, id := range d.children {
		out[i] = childNode{n: n.s.handle(id)}
	}
	return out
}

func flexChildren(n Node) []layout.FlexChild {
	d := n.data()
	out := make([]layout.FlexChild, len(d.children))
	for i, id := range d.children {
		out[i] = childNode{n: n.s.handle(id)}
	}
	return out
}

// invalidateOwner raises a policy change on the node the policy is bound to.
func invalidateOwner(owner Node, mode Mode, reason string) {
	if !owner.IsValid() {
		return
	}
	owner.s.checkThread(reason)
	owner.raise(Invalidation{Node: owner, Mode: mode, Property: PropPolicy, Reason: reason})
}
