package scene

import (
	"fmt"

	"github.com/grindlemire/go-scene/internal/layout"
)

// Name returns the node's debug name.
func (n Node) Name() string {
	return n.data().name
}

// SetName sets the debug name used in errors, logs and snapshots.
func (n Node) SetName(name string) {
	setValue(n, PropName, &n.data().name, name)
}

// Width returns the explicit width, or Unset.
func (n Node) Width() float64 { return n.data().box.Width }

// Height returns the explicit height, or Unset.
func (n Node) Height() float64 { return n.data().box.Height }

// SetWidth pins the width. Pass Unset to size to content. A negative or
// infinite width fails the next Measure.
func (n Node) SetWidth(v float64) { setLength(n, PropWidth, &n.data().box.Width, v) }

// SetHeight pins the height. Pass Unset to size to content.
func (n Node) SetHeight(v float64) { setLength(n, PropHeight, &n.data().box.Height, v) }

// SetSize pins both axes.
func (n Node) SetSize(w, h float64) {
	n.SetWidth(w)
	n.SetHeight(h)
}

// MinWidth returns the minimum width, or Unset.
func (n Node) MinWidth() float64 { return n.data().box.MinWidth }

// MinHeight returns the minimum height, or Unset.
func (n Node) MinHeight() float64 { return n.data().box.MinHeight }

// MaxWidth returns the maximum width, or Unset.
func (n Node) MaxWidth() float64 { return n.data().box.MaxWidth }

// MaxHeight returns the maximum height, or Unset.
func (n Node) MaxHeight() float64 { return n.data().box.MaxHeight }

// SetMinWidth sets the minimum width. Pass Unset for none.
func (n Node) SetMinWidth(v float64) { setLength(n, PropMinWidth, &n.data().box.MinWidth, v) }

// SetMinHeight sets the minimum height. Pass Unset for none.
func (n Node) SetMinHeight(v float64) { setLength(n, PropMinHeight, &n.data().box.MinHeight, v) }

// SetMaxWidth sets the maximum width. Pass Unset for no limit.
func (n Node) SetMaxWidth(v float64) { setLength(n, PropMaxWidth, &n.data().box.MaxWidth, v) }

// SetMaxHeight sets the maximum height. Pass Unset for no limit.
func (n Node) SetMaxHeight(v float64) { setLength(n, PropMaxHeight, &n.data().box.MaxHeight, v) }

// Margin returns the space reserved outside the node.
func (n Node) Margin() Thickness { return n.data().box.Margin }

// SetMargin sets the space reserved outside the node.
func (n Node) SetMargin(t Thickness) { setValue(n, PropMargin, &n.data().box.Margin, t) }

// Padding returns the space reserved between the node's edge and its content.
func (n Node) Padding() Thickness { return n.data().padding }

// SetPadding sets the space between the node's edge and its content.
func (n Node) SetPadding(t Thickness) { setValue(n, PropPadding, &n.data().padding, t) }

// Zoom returns the uniform scale factor applied to the measured size.
func (n Node) Zoom() float64 { return n.data().box.Zoom }

// SetZoom sets the uniform scale factor. Values <= 0 act as 1.
func (n Node) SetZoom(v float64) { setLength(n, PropZoom, &n.data().box.Zoom, v) }

// HorizontalAlignment returns the declared horizontal alignment.
func (n Node) HorizontalAlignment() Alignment { return n.data().box.HorizontalAlignment }

// VerticalAlignment returns the declared vertical alignment.
func (n Node) VerticalAlignment() Alignment { return n.data().box.VerticalAlignment }

// SetHorizontalAlignment sets how the node sits in extra horizontal space.
func (n Node) SetHorizontalAlignment(a Alignment) {
	setValue(n, PropHorizontalAlignment, &n.data().box.HorizontalAlignment, a)
}

// SetVerticalAlignment sets how the node sits in extra vertical space.
func (n Node) SetVerticalAlignment(a Alignment) {
	setValue(n, PropVerticalAlignment, &n.data().box.VerticalAlignment, a)
}

// Visible reports whether the node participates in layout and rendering.
func (n Node) Visible() bool { return n.data().visible }

// SetVisible shows or collapses the node. Collapsed nodes measure to zero.
func (n Node) SetVisible(v bool) { setValue(n, PropVisible, &n.data().visible, v) }

// Enabled reports whether the node can be hit.
func (n Node) Enabled() bool { return n.data().enabled }

// SetEnabled controls whether hit testing may return the node.
func (n Node) SetEnabled(v bool) { setValue(n, PropEnabled, &n.data().enabled, v) }

// ClipFromParent reports whether rendering clips the node to its parent.
func (n Node) ClipFromParent() bool { return n.data().clipFromParent }

// SetClipFromParent opts the node in or out of parent clipping.
func (n Node) SetClipFromParent(v bool) { setValue(n, PropClipFromParent, &n.data().clipFromParent, v) }

// Shadow reports whether the node owns a shadow effect.
func (n Node) Shadow() bool { return n.data().shadow }

// SetShadow marks the node as owning a shadow. Shadowed nodes are never
// clipped to their parent.
func (n Node) SetShadow(v bool) { setValue(n, PropShadow, &n.data().shadow, v) }

// ZIndex returns the explicit z-index and whether one is set.
func (n Node) ZIndex() (int, bool) {
	d := n.data()
	return d.zIndex, d.hasZIndex
}

// SetZIndex sets an explicit z-index. Without one a node paints in sibling
// declaration order.
func (n Node) SetZIndex(z int) {
	n.s.checkThread("set z-index")
	d := n.data()
	if d.hasZIndex && d.zIndex == z {
		return
	}
	d.zIndex, d.hasZIndex = z, true
	n.changed(PropZIndex)
}

// ClearZIndex reverts to declaration order.
func (n Node) ClearZIndex() {
	n.s.checkThread("clear z-index")
	d := n.data()
	if !d.hasZIndex {
		return
	}
	d.zIndex, d.hasZIndex = 0, false
	n.changed(PropZIndex)
}

// Row returns the grid row the node occupies.
func (n Node) Row() int { return n.data().cell.Row }

// Column returns the grid column the node occupies.
func (n Node) Column() int { return n.data().cell.Column }

// RowSpan returns how many grid rows the node spans.
func (n Node) RowSpan() int { return n.data().cell.RowSpan }

// ColumnSpan returns how many grid columns the node spans.
func (n Node) ColumnSpan() int { return n.data().cell.ColumnSpan }

func (n Node) SetRow(row int)       { setValue(n, PropRow, &n.data().cell.Row, row) }
func (n Node) SetColumn(column int) { setValue(n, PropColumn, &n.data().cell.Column, column) }

// SetRowSpan sets the row span. Spans below 1 are rejected with ErrInvalidSpan.
func (n Node) SetRowSpan(span int) error {
	if err := layout.ValidateSpan(span); err != nil {
		return fmt.Errorf("node %s: row span: %w", n.label(), err)
	}
	setValue(n, PropRowSpan, &n.data().cell.RowSpan, span)
	return nil
}

// SetColumnSpan sets the column span. Spans below 1 are rejected with
// ErrInvalidSpan.
func (n Node) SetColumnSpan(span int) error {
	if err := layout.ValidateSpan(span); err != nil {
		return fmt.Errorf("node %s: column span: %w", n.label(), err)
	}
	setValue(n, PropColumnSpan, &n.data().cell.ColumnSpan, span)
	return nil
}

// Grow returns the node's share of free space in a Flex parent.
func (n Node) Grow() float64 { return n.data().grow }

// Shrink returns the node's share of a deficit in a Flex parent.
func (n Node) Shrink() float64 { return n.data().shrink }

func (n Node) SetGrow(v float64)   { setLength(n, PropFlexGrow, &n.data().grow, layout.NonNegative(v)) }
func (n Node) SetShrink(v float64) { setLength(n, PropFlexShrink, &n.data().shrink, layout.NonNegative(v)) }

// Policy returns the node's layout policy.
func (n Node) Policy() LayoutPolicy { return n.data().policy }

// SetPolicy replaces the node's layout policy. A nil policy means Panel.
func (n Node) SetPolicy(p LayoutPolicy) {
	n.s.checkThread("set policy")
	if p == nil {
		p = Panel{}
	}
	d := n.data()
	if old, ok := d.policy.(binder); ok {
		old.bind(Node{})
	}
	d.policy = p
	if b, ok := p.(binder); ok {
		b.bind(n)
	}
	n.changed(PropPolicy)
}

// Box returns the node's box-model properties.
func (n Node) Box() layout.Box {
	return n.data().box
}

// DesiredSize returns the size produced by the last Measure, margin
// included. ok is false when the cache is invalid.
func (n Node) DesiredSize() (Size, bool) {
	d := n.data()
	return d.desired, d.desiredValid
}

// ArrangedRect returns the rect assigned by the last Arrange, relative to
// the parent's content origin and including margin.
func (n Node) ArrangedRect() (Rect, bool) {
	d := n.data()
	return d.arranged, d.arrangedValid
}

// RelativeRenderRect returns the visible rect computed by the last Render,
// relative to the parent's content origin, after margin and clipping.
func (n Node) RelativeRenderRect() (Rect, bool) {
	d := n.data()
	return d.render, d.renderValid
}

// Bounds returns the node's absolute visible bounds from the last Render.
func (n Node) Bounds() (Rect, bool) {
	d := n.data()
	return d.absBounds, d.renderValid
}

// LastConstraint returns the constraint of the last Measure.
func (n Node) LastConstraint() (Size, bool) {
	d := n.data()
	return d.constraint, d.hasConstraint
}
