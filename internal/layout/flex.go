package layout

// FlexChild is a child of a flex container.
type FlexChild interface {
	Child

	// Grow returns how much of the free main-axis space this child takes,
	// relative to its siblings.
	Grow() float64

	// Shrink returns how much of a main-axis deficit this child absorbs,
	// relative to its siblings.
	Shrink() float64
}

// Flex stacks children along one axis.
type Flex struct {
	Direction Direction
	Justify   Justify
	Gap       float64
}

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	child    FlexChild
	baseSize float64
	mainSize float64
	mainPos  float64
	grow     float64
	shrink   float64
}

// Measure measures every visible child and returns the content size of the
// stack: the sum of main-axis extents plus gaps, and the largest cross-axis
// extent.
func (f Flex) Measure(children []FlexChild, available Size) Size {
	isRow := f.Direction == Row
	constraint := available
	if isRow {
		constraint.Width = Unbounded
	} else {
		constraint.Height = Unbounded
	}

	var mainTotal, crossMax float64
	count := 0
	for _, child := range children {
		if !child.Visible() {
			continue
		}
		child.Measure(constraint)
		d := child.DesiredSize()
		main, cross := d.Width, d.Height
		if !isRow {
			main, cross = cross, main
		}
		mainTotal += main
		crossMax = max(crossMax, cross)
		count++
	}
	if count > 1 {
		mainTotal += f.Gap * float64(count-1)
	}

	if isRow {
		return Size{Width: mainTotal, Height: crossMax}
	}
	return Size{Width: crossMax, Height: mainTotal}
}

// Arrange distributes the content rect among visible children. Free space
// goes to children by grow weight, a deficit is taken back by shrink weight,
// and what remains is distributed according to Justify. Each child receives
// the full cross-axis extent and aligns itself within it.
func (f Flex) Arrange(children []FlexChild, content Rect) {
	isRow := f.Direction == Row

	mainSize := content.Width
	crossSize := content.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes (desired size along main axis, margin included)
	items := make([]flexItem, 0, len(children))
	var totalBase, totalGrow, totalShrink float64
	for _, child := range children {
		if !child.Visible() {
			continue
		}
		d := child.DesiredSize()
		base := d.Width
		if !isRow {
			base = d.Height
		}
		item := flexItem{child: child, baseSize: base, grow: child.Grow(), shrink: child.Shrink()}
		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
		items = append(items, item)
	}
	if len(items) == 0 {
		return
	}

	totalGap := f.Gap * float64(len(items)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			items[i].mainSize = items[i].baseSize + freeSpace*items[i].grow/totalGrow
		}
		freeSpace = 0
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			items[i].mainSize = NonNegative(items[i].baseSize - deficit*items[i].shrink/totalShrink)
		}
		freeSpace = 0
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
		freeSpace = max(0, freeSpace)
	}

	// Phase 3: position along main axis (justify)
	offset := justifyOffset(f.Justify, freeSpace, len(items))
	spacing := justifySpacing(f.Justify, freeSpace, len(items))
	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + f.Gap + spacing
	}

	// Phase 4: convert to slots and arrange
	for _, item := range items {
		var slot Rect
		if isRow {
			slot = Rect{X: content.X + item.mainPos, Y: content.Y, Width: item.mainSize, Height: crossSize}
		} else {
			slot = Rect{X: content.X, Y: content.Y + item.mainPos, Width: crossSize, Height: item.mainSize}
		}
		item.child.Arrange(slot)
	}
}

// justifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func justifyOffset(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float64(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func justifySpacing(justify Justify, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float64(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float64(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}
