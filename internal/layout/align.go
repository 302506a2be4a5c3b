package layout

// Axis selects the horizontal or vertical dimension.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Alignment positions content within a slot on one axis.
type Alignment uint8

const (
	AlignUnset   Alignment = iota // Not declared; callers pick a default
	AlignNear                     // Left or top
	AlignCenter                   // Centered in the slack
	AlignFar                      // Right or bottom
	AlignStretch                  // Fill the slot
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignNear:
		return "near"
	case AlignCenter:
		return "center"
	case AlignFar:
		return "far"
	case AlignStretch:
		return "stretch"
	default:
		return "unset"
	}
}

// Or returns a, or fallback when a is unset.
func (a Alignment) Or(fallback Alignment) Alignment {
	if a == AlignUnset {
		return fallback
	}
	return a
}

// Offset returns the offset of an item of size itemSize inside a slot of
// size slotSize. Overflowing items are pinned to the near edge.
func (a Alignment) Offset(slotSize, itemSize float64) float64 {
	slack := slotSize - itemSize
	if slack <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return slack / 2
	case AlignFar:
		return slack
	default: // AlignNear, AlignStretch, AlignUnset
		return 0
	}
}

// Direction specifies the main axis for stacking children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// MainAxis returns the axis children are stacked along.
func (d Direction) MainAxis() Axis {
	if d == Row {
		return Horizontal
	}
	return Vertical
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)
