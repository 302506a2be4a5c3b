package layout

// GridChild is a child of a grid container.
type GridChild interface {
	Child

	// Cell returns where the child sits in the grid.
	Cell() Cell
}

// Grid partitions space into rows and columns and resolves children against
// their cells. Measure runs a content pass that sizes auto dimensions from
// the children touching them, then a resolution pass for fixed, auto and
// star dimensions. Arrange walks the dimensions accumulating start positions
// and places each child in the intersection of its rows and columns.
type Grid struct {
	Rows    *DimensionList
	Columns *DimensionList

	// StretchWidth and StretchHeight report whether the grid itself is
	// stretched on that axis. Auto dimensions whose occupants are all
	// unpinned then fill the remaining space instead of keeping their
	// content size (only when the axis has no star dimension).
	StretchWidth  bool
	StretchHeight bool
}

// NewGrid creates a grid with a single default row and column.
func NewGrid() *Grid {
	return &Grid{Rows: NewDimensionList(), Columns: NewDimensionList()}
}

// placement is a visible child resolved against the current dimensions.
type placement struct {
	child GridChild
	rows  span
	cols  span
}

func (g *Grid) lists() (rows, cols []*Dimension) {
	if g.Rows == nil {
		g.Rows = NewDimensionList()
	}
	if g.Columns == nil {
		g.Columns = NewDimensionList()
	}
	return g.Rows.All(), g.Columns.All()
}

func (g *Grid) place(children []GridChild, nRows, nCols int) []placement {
	out := make([]placement, 0, len(children))
	for _, c := range children {
		if !c.Visible() {
			continue
		}
		cell := c.Cell()
		out = append(out, placement{
			child: c,
			rows:  resolveSpan(cell.Row, cell.RowSpan, nRows),
			cols:  resolveSpan(cell.Column, cell.ColumnSpan, nCols),
		})
	}
	return out
}

// Measure sizes the grid's dimensions for the available space and returns
// the grid's content size.
func (g *Grid) Measure(children []GridChild, available Size) Size {
	rows, cols := g.lists()
	for _, d := range rows {
		d.reset()
	}
	for _, d := range cols {
		d.reset()
	}

	placements := g.place(children, len(rows), len(cols))

	// Content pass
	for _, p := range placements {
		constraint := Size{
			Width:  spanConstraint(cols, p.cols, available.Width),
			Height: spanConstraint(rows, p.rows, available.Height),
		}
		p.child.Measure(constraint)
		d := p.child.DesiredSize()
		growContent(cols, p.cols, d.Width)
		growContent(rows, p.rows, d.Height)
	}

	// Stretch correction
	markFill(cols, placements, Horizontal, available.Width, g.StretchWidth)
	markFill(rows, placements, Vertical, available.Height, g.StretchHeight)

	// Resolution pass
	return Size{
		Width:  resolveDimensions(cols, available.Width),
		Height: resolveDimensions(rows, available.Height),
	}
}

// spanConstraint computes the space offered to a child on one axis. When
// every spanned dimension is fixed the child gets exactly their sum;
// otherwise it gets the available space minus the fixed dimensions outside
// its span.
func spanConstraint(dims []*Dimension, s span, available float64) float64 {
	allFixed := true
	var inside, outside float64
	for i, d := range dims {
		inSpan := i >= s.start && i < s.end
		if d.kind != DimensionFixed {
			if inSpan {
				allFixed = false
			}
			continue
		}
		if inSpan {
			inside += d.value
		} else {
			outside += d.value
		}
	}
	if allFixed {
		return inside
	}
	return subtractBounded(available, outside)
}

// growContent records a child's extent on the dimensions it spans. A child
// spanning several dimensions shares what is left after the fixed ones
// equally among the others. Auto dimensions take the max across children.
func growContent(dims []*Dimension, s span, extent float64) {
	extent = NonNegative(extent)
	if s.single() {
		d := dims[s.start]
		d.content = max(d.content, extent)
		if d.kind == DimensionAuto {
			d.setDesired(max(d.size(), extent))
		}
		return
	}

	var fixed float64
	flexible := 0
	for i := s.start; i < s.end; i++ {
		if dims[i].kind == DimensionFixed {
			fixed += dims[i].value
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return
	}
	share := NonNegative(extent-fixed) / float64(flexible)
	for i := s.start; i < s.end; i++ {
		d := dims[i]
		if d.kind == DimensionFixed {
			continue
		}
		d.content = max(d.content, share)
		if d.kind == DimensionAuto {
			d.setDesired(max(d.size(), share))
		}
	}
}

// markFill reclassifies auto dimensions as filling when the grid stretches
// on this axis, the space is bounded, no star dimension exists to take the
// leftover, and every occupant of the dimension is unpinned on this axis.
func markFill(dims []*Dimension, placements []placement, axis Axis, available float64, stretch bool) {
	if !stretch || !IsBounded(available) {
		return
	}
	for _, d := range dims {
		if d.kind == DimensionStar {
			return
		}
	}

	occupied := make([]bool, len(dims))
	pinned := make([]bool, len(dims))
	for _, p := range placements {
		s := p.cols
		if axis == Vertical {
			s = p.rows
		}
		isPinned := p.child.Box().Pinned(axis)
		for i := s.start; i < s.end; i++ {
			occupied[i] = true
			if isPinned {
				pinned[i] = true
			}
		}
	}

	for i, d := range dims {
		if d.kind == DimensionAuto && occupied[i] && !pinned[i] {
			d.fill = true
		}
	}
}

// resolveDimensions assigns every dimension its desired size and returns
// the total.
func resolveDimensions(dims []*Dimension, available float64) float64 {
	var used float64
	var fills, stars []*Dimension

	for _, d := range dims {
		switch d.kind {
		case DimensionFixed:
			d.setDesired(d.value)
			used += d.value
		case DimensionAuto:
			if d.fill {
				fills = append(fills, d)
				continue
			}
			d.setDesired(d.size())
			used += d.desired
		case DimensionStar:
			stars = append(stars, d)
		}
	}

	if len(fills) > 0 {
		share := NonNegative(available-used) / float64(len(fills))
		for _, d := range fills {
			d.setDesired(max(d.content, share))
			used += d.desired
		}
	}

	if len(stars) > 0 {
		used += resolveStars(stars, available, used)
	}
	return used
}

// resolveStars sizes star dimensions and returns their total. With bounded
// space the leftover is divided by total weight. With unbounded space the
// star with the largest content sets the unit (content / weight) and every
// other star follows its weight; the first star wins ties, and when no star
// has content every star resolves to 0.
func resolveStars(stars []*Dimension, available, used float64) float64 {
	var total float64

	if !IsBounded(available) {
		best := -1
		var bestContent float64
		for i, d := range stars {
			if d.content > bestContent {
				bestContent = d.content
				best = i
			}
		}
		var unit float64
		if best >= 0 && stars[best].value > 0 {
			unit = bestContent / stars[best].value
		}
		for _, d := range stars {
			d.setDesired(unit * d.value)
			total += d.desired
		}
		return total
	}

	var weight float64
	for _, d := range stars {
		weight += d.value
	}
	leftover := NonNegative(available - used)
	for _, d := range stars {
		v := 0.0
		if weight > 0 {
			v = leftover * d.value / weight
		}
		d.setDesired(v)
		total += v
	}
	return total
}

// Arrange assigns start positions for the final size and arranges every
// visible child into its cell. It returns the rect given to each child, in
// the order of children; invisible children get a zero rect. Children whose
// cell starts outside the final size are arranged into a zero-size slot at
// the grid's edge.
func (g *Grid) Arrange(children []GridChild, final Rect) []Rect {
	rows, cols := g.lists()
	assignStarts(cols, final.Width)
	assignStarts(rows, final.Height)

	rects := make([]Rect, len(children))
	for i, c := range children {
		if !c.Visible() {
			continue
		}
		cell := c.Cell()
		p := placement{
			child: c,
			rows:  resolveSpan(cell.Row, cell.RowSpan, len(rows)),
			cols:  resolveSpan(cell.Column, cell.ColumnSpan, len(cols)),
		}
		r := placeChild(p, rows, cols, final)
		c.Arrange(r)
		rects[i] = r
	}
	return rects
}

// assignStarts walks dimensions in order accumulating a running position.
// Once the position exceeds the available length every remaining dimension
// is left without a start.
func assignStarts(dims []*Dimension, length float64) {
	var pos float64
	overflow := false
	for _, d := range dims {
		if overflow || (IsBounded(length) && pos > length) {
			overflow = true
			d.start, d.hasStart = 0, false
			continue
		}
		d.start, d.hasStart = pos, true
		pos += d.size()
	}
}

// cellExtent returns the start and clipped size of a span. ok is false when
// the first spanned dimension has no start.
func cellExtent(dims []*Dimension, s span, length float64) (start, size float64, ok bool) {
	first := dims[s.start]
	if !first.hasStart {
		return 0, 0, false
	}
	start = first.start
	for i := s.start; i < s.end; i++ {
		if !dims[i].hasStart {
			break
		}
		size += dims[i].size()
	}
	if IsBounded(length) {
		size = min(size, NonNegative(length-start))
	}
	return start, size, true
}

func placeChild(p placement, rows, cols []*Dimension, final Rect) Rect {
	x, w, okX := cellExtent(cols, p.cols, final.Width)
	y, h, okY := cellExtent(rows, p.rows, final.Height)
	if !okX || !okY {
		if !okX {
			x = final.Width
		}
		if !okY {
			y = final.Height
		}
		return Rect{X: final.X + x, Y: final.Y + y}
	}

	box := p.child.Box()
	desired := p.child.DesiredSize()

	hAlign := EffectiveAlignment(box.HorizontalAlignment.Or(cols[p.cols.start].DefaultAlignment), box.Pinned(Horizontal))
	vAlign := EffectiveAlignment(box.VerticalAlignment.Or(rows[p.rows.start].DefaultAlignment), box.Pinned(Vertical))

	cx, cw := alignInCell(hAlign, x, w, desired.Width)
	cy, ch := alignInCell(vAlign, y, h, desired.Height)
	return Rect{X: final.X + cx, Y: final.Y + cy, Width: cw, Height: ch}
}

func alignInCell(align Alignment, start, cell, desired float64) (pos, size float64) {
	if align == AlignStretch {
		return start, cell
	}
	size = min(desired, cell)
	return start + align.Offset(cell, size), size
}
