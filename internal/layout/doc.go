// Package layout implements the pure geometry and sizing algorithms used by
// the scene graph: float64 sizes and rects with an explicit "unset" sentinel,
// box-model arithmetic for measure and arrange, a flex stacking solver, and a
// two-pass grid constraint solver with fixed, auto and star dimensions.
//
// Nothing here knows about nodes, windows or invalidation. Solvers work
// against small interfaces ([FlexChild], [GridChild]) so callers decide how
// children are measured and arranged. Types are re-exported through the root
// scene package for public consumption.
package layout
