package layout

// Child is the interface for anything a solver can size and place.
// Solvers work entirely with this interface, so callers decide how a child
// caches results or reports contract violations.
type Child interface {
	// Measure computes the child's desired size for the given constraint
	// (margin included). Either axis may be Unbounded.
	Measure(constraint Size)

	// DesiredSize returns the size produced by the last Measure, margin
	// included.
	DesiredSize() Size

	// Arrange assigns the child its final rect (margin included) relative to
	// the solver's content origin.
	Arrange(final Rect)

	// Visible reports whether the child participates in layout.
	Visible() bool

	// Box returns the child's box-model properties (explicit sizes and
	// alignment are consulted by the solvers).
	Box() Box
}
