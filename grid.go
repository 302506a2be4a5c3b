package scene

import (
	"github.com/grindlemire/go-scene/internal/layout"
)

// Grid partitions its node into rows and columns. Children choose their
// cell with SetRow, SetColumn, SetRowSpan and SetColumnSpan.
//
// A Grid belongs to one node; installing it on another node moves it.
type Grid struct {
	owner   Node
	rows    *DimensionList
	columns *DimensionList

	// stretch flags and space used by the last measure
	lastAvailable Size
	lastStretch   [2]bool
	measured      bool
}

var (
	_ LayoutPolicy            = (*Grid)(nil)
	_ ChildInvalidationFilter = (*Grid)(nil)
)

// NewGrid creates a grid with the given rows and columns. An empty list
// gets a single Star(1) dimension.
func NewGrid(rows, columns []*Dimension) *Grid {
	g := &Grid{
		rows:    layout.NewDimensionList(rows...),
		columns: layout.NewDimensionList(columns...),
	}
	g.rows.OnChange = g.dimensionsChanged
	g.columns.OnChange = g.dimensionsChanged
	return g
}

// Rows returns the row list. Mutating it remeasures the grid's node.
func (g *Grid) Rows() *DimensionList {
	return g.rows
}

// Columns returns the column list. Mutating it remeasures the grid's node.
func (g *Grid) Columns() *DimensionList {
	return g.columns
}

func (g *Grid) bind(n Node) {
	g.owner = n
	g.measured = false
}

func (g *Grid) dimensionsChanged() {
	invalidateOwner(g.owner, ModeMeasure, "grid dimensions")
}

func (g *Grid) solver(n Node) layout.Grid {
	return layout.Grid{
		Rows:          g.rows,
		Columns:       g.columns,
		StretchWidth:  g.stretches(n, layout.Horizontal),
		StretchHeight: g.stretches(n, layout.Vertical),
	}
}

// stretches reports whether the grid's node stretches on the axis.
func (g *Grid) stretches(n Node, axis layout.Axis) bool {
	box := n.data().box
	align := box.HorizontalAlignment
	if axis == layout.Vertical {
		align = box.VerticalAlignment
	}
	return layout.EffectiveAlignment(align, box.Pinned(axis)) == AlignStretch
}

// MeasureCore runs the content and resolution passes.
func (g *Grid) MeasureCore(n Node, available Size) Size {
	s := g.solver(n)
	g.lastAvailable = available
	g.lastStretch = [2]bool{s.StretchWidth, s.StretchHeight}
	g.measured = true
	return s.Measure(gridChildren(n), available)
}

// ArrangeCore assigns start positions and arranges each child in its cell.
// An alignment change on the grid's node only raises an arrange, so the
// resolution pass reruns here when the stretch correction would differ.
func (g *Grid) ArrangeCore(n Node, content Rect) {
	s := g.solver(n)
	children := gridChildren(n)
	if g.measured && g.lastStretch != [2]bool{s.StretchWidth, s.StretchHeight} {
		s.Measure(children, g.lastAvailable)
		g.lastStretch = [2]bool{s.StretchWidth, s.StretchHeight}
	}
	s.Arrange(children, content)
}

// FilterChildInvalidation remeasures the grid whenever a child moves to
// another cell, even when the child's own size is pinned.
func (g *Grid) FilterChildInvalidation(_ Node, inv Invalidation, notify bool) (Mode, bool) {
	if inv.Property.IsGridAttachment() {
		return ModeMeasure, true
	}
	return inv.Mode, notify
}

func (g *Grid) String() string { return "grid" }
