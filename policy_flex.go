package scene

import (
	"github.com/grindlemire/go-scene/internal/layout"
)

// Flex stacks children along one axis. Free space goes to children by
// their grow weight and a deficit is taken back by shrink weight.
type Flex struct {
	owner     Node
	direction Direction
	justify   Justify
	gap       float64
}

var (
	_ LayoutPolicy            = (*Flex)(nil)
	_ ChildInvalidationFilter = (*Flex)(nil)
)

// NewFlex creates a flex policy stacking along direction.
func NewFlex(direction Direction) *Flex {
	return &Flex{direction: direction}
}

func (f *Flex) bind(n Node) { f.owner = n }

// Direction returns the main axis direction.
func (f *Flex) Direction() Direction { return f.direction }

// SetDirection changes the main axis.
func (f *Flex) SetDirection(d Direction) {
	if f.direction == d {
		return
	}
	f.direction = d
	invalidateOwner(f.owner, ModeMeasure, "flex direction")
}

// SetJustify changes how free space is distributed.
func (f *Flex) SetJustify(j Justify) {
	if f.justify == j {
		return
	}
	f.justify = j
	invalidateOwner(f.owner, ModeArrange, "flex justify")
}

// SetGap changes the space between children.
func (f *Flex) SetGap(gap float64) {
	gap = layout.NonNegative(gap)
	if f.gap == gap {
		return
	}
	f.gap = gap
	invalidateOwner(f.owner, ModeMeasure, "flex gap")
}

func (f *Flex) solver() layout.Flex {
	return layout.Flex{Direction: f.direction, Justify: f.justify, Gap: f.gap}
}

// MeasureCore measures children with an unbounded main axis.
func (f *Flex) MeasureCore(n Node, available Size) Size {
	return f.solver().Measure(flexChildren(n), available)
}

// ArrangeCore distributes the content rect along the main axis.
func (f *Flex) ArrangeCore(n Node, content Rect) {
	f.solver().Arrange(flexChildren(n), content)
}

// FilterChildInvalidation rearranges the stack when a child's grow or
// shrink weight changes.
func (f *Flex) FilterChildInvalidation(_ Node, inv Invalidation, notify bool) (Mode, bool) {
	switch inv.Property {
	case PropFlexGrow, PropFlexShrink:
		return ModeArrange, true
	}
	return inv.Mode, notify
}

func (f *Flex) String() string { return "flex" }
