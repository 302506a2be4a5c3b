package scene

import (
	"github.com/grindlemire/go-scene/internal/debug"
	"github.com/grindlemire/go-scene/internal/layout"
)

// Measure computes the node's desired size for constraint (margin
// included; either axis may be Unbounded).
//
// The margin is removed and the remaining space narrowed by the explicit
// size, Min/Max and Zoom before the layout policy's MeasureCore runs. The
// content size it returns must be valid: a NaN, negative or infinite size
// panics with an InvalidMeasure contract error. Explicit size, Min/Max and
// Zoom are then applied and the margin re-added. A desired size left
// negative or infinite by those lengths panics the same way.
//
// Measure is skipped when the cache is valid for the same constraint and no
// descendant is dirty.
func (n Node) Measure(constraint Size) {
	n.s.checkThread("Measure")
	d := n.data()
	if d.desiredValid && d.hasConstraint && d.constraint.Equal(constraint) && !d.subtreeMeasureDirty {
		return
	}
	incrPass("measure")

	d.constraint, d.hasConstraint = constraint, true
	var desired Size
	if d.visible {
		core := d.box.CoreConstraint(constraint).Deflate(d.padding)
		content := d.policy.MeasureCore(n, core)
		if !content.IsValid() {
			panic(newContractError(InvalidMeasure, n, "%s.MeasureCore returned %+v for constraint %+v",
				policyName(d.policy), content, core))
		}
		desired = d.box.DesiredSize(content.Inflate(d.padding))
		if !desired.IsValid() {
			panic(newContractError(InvalidMeasure, n, "desired size %+v from content %+v; check explicit and min/max lengths",
				desired, content))
		}
	}

	if !desired.Equal(d.desired) {
		d.arrangedValid = false
		d.renderValid = false
	}
	d.desired, d.desiredValid = desired, true
	d.subtreeMeasureDirty = false
	n.emit(EventMeasured)
}

// Arrange assigns the node its final rect (margin included) relative to the
// parent's top-left corner.
//
// The margin is removed, the remaining rect constrained by explicit size,
// Min/Max and alignment (a pinned length is never stretched), and the
// layout policy's ArrangeCore receives the node-local content rect. The
// margin is re-added and, with layout rounding enabled, the result snapped
// to integer boundaries.
//
// Arrange panics with an ArrangeBeforeMeasure contract error when the node
// has never been measured. A node whose measure was invalidated is first
// re-measured against its last constraint.
func (n Node) Arrange(final Rect) {
	n.s.checkThread("Arrange")
	d := n.data()
	if !d.desiredValid {
		if !d.hasConstraint {
			panic(newContractError(ArrangeBeforeMeasure, n, "arrange to %+v", final))
		}
		n.remeasure(d)
	}
	if d.arrangedValid && d.hasFinal && d.final == final && !d.subtreeArrangeDirty {
		return
	}
	incrPass("arrange")

	d.final, d.hasFinal = final, true
	arranged := Rect{X: final.X, Y: final.Y}
	if d.visible {
		inner := d.box.ArrangeRect(final, d.desired)
		local := layout.RectFromSize(inner.Size().Scale(1 / d.box.EffectiveZoom()))
		d.policy.ArrangeCore(n, local.Deflate(d.padding))
		arranged = inner.Inflate(d.box.Margin)
	}
	if n.s.rounding {
		arranged = arranged.Round()
	}

	d.arranged, d.arrangedValid = arranged, true
	d.renderValid = false
	d.subtreeArrangeDirty = false
	n.emit(EventArranged)
}

// remeasure measures against the last constraint outside of a parent pass.
func (n Node) remeasure(d *nodeData) {
	before := d.desired
	n.Measure(d.constraint)
	n.reportDesiredChange(before)
}

// reportDesiredChange raises a Measure on the parent when a measure the
// parent did not ask for changed the desired size.
func (n Node) reportDesiredChange(before Size) {
	d := n.data()
	if before.Equal(d.desired) || d.parent == noNode || d.window == nil {
		return
	}
	parent := n.s.handle(d.parent)
	debug.Event("desired size changed", "node", n.label(), "from", before, "to", d.desired)
	d.window.invalidate(Invalidation{
		Node:   parent,
		Mode:   ModeMeasure,
		Reason: "desired size of " + n.label(),
		Source: n,
	})
}
