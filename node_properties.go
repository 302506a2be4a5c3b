package scene

import "math"

// Property identifies a mutable node field. Every property has a fixed
// invalidation mode raised when its value changes.
type Property uint8

const (
	PropNone Property = iota
	PropName
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMargin
	PropPadding
	PropZoom
	PropVisible
	PropRow
	PropColumn
	PropRowSpan
	PropColumnSpan
	PropChildren
	PropPolicy
	PropHorizontalAlignment
	PropVerticalAlignment
	PropFlexGrow
	PropFlexShrink
	PropZIndex
	PropEnabled
	PropClipFromParent
	PropShadow

	propCount
)

type propertyInfo struct {
	name string
	mode Mode
}

var propertyTable = [propCount]propertyInfo{
	PropNone:                {"none", ModeNone},
	PropName:                {"name", ModeNone},
	PropWidth:               {"width", ModeMeasure},
	PropHeight:              {"height", ModeMeasure},
	PropMinWidth:            {"min-width", ModeMeasure},
	PropMinHeight:           {"min-height", ModeMeasure},
	PropMaxWidth:            {"max-width", ModeMeasure},
	PropMaxHeight:           {"max-height", ModeMeasure},
	PropMargin:              {"margin", ModeMeasure},
	PropPadding:             {"padding", ModeMeasure},
	PropZoom:                {"zoom", ModeMeasure},
	PropVisible:             {"visible", ModeMeasure},
	PropRow:                 {"row", ModeMeasure},
	PropColumn:              {"column", ModeMeasure},
	PropRowSpan:             {"row-span", ModeMeasure},
	PropColumnSpan:          {"column-span", ModeMeasure},
	PropChildren:            {"children", ModeMeasure},
	PropPolicy:              {"policy", ModeMeasure},
	PropHorizontalAlignment: {"horizontal-alignment", ModeArrange},
	PropVerticalAlignment:   {"vertical-alignment", ModeArrange},
	PropFlexGrow:            {"flex-grow", ModeArrange},
	PropFlexShrink:          {"flex-shrink", ModeArrange},
	PropZIndex:              {"z-index", ModeRender},
	PropEnabled:             {"enabled", ModeRender},
	PropClipFromParent:      {"clip-from-parent", ModeRender},
	PropShadow:              {"shadow", ModeRender},
}

// String returns the property name.
func (p Property) String() string {
	if p >= propCount {
		return "unknown"
	}
	return propertyTable[p].name
}

// Mode returns the invalidation raised when the property changes.
func (p Property) Mode() Mode {
	if p >= propCount {
		return ModeNone
	}
	return propertyTable[p].mode
}

// IsGridAttachment reports whether the property places a node in a grid.
func (p Property) IsGridAttachment() bool {
	switch p {
	case PropRow, PropColumn, PropRowSpan, PropColumnSpan:
		return true
	}
	return false
}

// changed raises the property's invalidation on n.
func (n Node) changed(p Property) {
	mode := p.Mode()
	if mode == ModeNone {
		return
	}
	n.raise(Invalidation{Node: n, Mode: mode, Property: p, Reason: p.String()})
}

func setValue[T comparable](n Node, p Property, field *T, v T) {
	n.s.checkThread("set " + p.String())
	if *field == v {
		return
	}
	*field = v
	n.changed(p)
}

func setLength(n Node, p Property, field *float64, v float64) {
	n.s.checkThread("set " + p.String())
	if sameLength(*field, v) {
		return
	}
	*field = v
	n.changed(p)
}

func sameLength(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
