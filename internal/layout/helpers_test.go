package layout

// testChild is a fixed-content child used by the solver tests. It reports
// a desired size computed the same way a node would: box constraint, then
// content clamped by the box.
type testChild struct {
	box     Box
	content Size
	hidden  bool
	cell    Cell
	grow    float64
	shrink  float64

	measured   []Size
	desired    Size
	arranged   Rect
	arrangeCnt int
}

func newTestChild(w, h float64) *testChild {
	return &testChild{
		box:     DefaultBox(),
		content: Size{Width: w, Height: h},
		cell:    DefaultCell(),
	}
}

func (c *testChild) at(row, col int) *testChild {
	c.cell.Row, c.cell.Column = row, col
	return c
}

func (c *testChild) spans(rows, cols int) *testChild {
	c.cell.RowSpan, c.cell.ColumnSpan = rows, cols
	return c
}

func (c *testChild) Measure(constraint Size) {
	c.measured = append(c.measured, constraint)
	if c.hidden {
		c.desired = Size{}
		return
	}
	c.desired = c.box.DesiredSize(c.content)
}

func (c *testChild) DesiredSize() Size { return c.desired }
func (c *testChild) Arrange(final Rect) {
	c.arranged = final
	c.arrangeCnt++
}
func (c *testChild) Visible() bool   { return !c.hidden }
func (c *testChild) Box() Box        { return c.box }
func (c *testChild) Cell() Cell      { return c.cell }
func (c *testChild) Grow() float64   { return c.grow }
func (c *testChild) Shrink() float64 { return c.shrink }

func gridChildren(cs ...*testChild) []GridChild {
	out := make([]GridChild, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}

func flexChildren(cs ...*testChild) []FlexChild {
	out := make([]FlexChild, len(cs))
	for i, c := range cs {
		out[i] = c
	}
	return out
}
