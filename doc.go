// Package scene provides a retained-mode layout tree for Go.
//
// A Scene owns an arena of nodes and one or more windows. Each window holds
// a root node whose subtree is sized and placed in two passes: Measure asks
// every node how big it wants to be under a constraint, and Arrange hands
// it a final rect. Render then turns the arranged tree into absolute,
// clipped bounds and keeps a visual per node in the window's compositor.
//
// Property setters never run layout directly. They record an invalidation
// in the window's dirty set and request a drain; the drain runs on the
// scene's UI goroutine, sorts the pending nodes by depth and re-runs only
// the passes each one needs. Layout policies (Panel, Grid, Flex, Text)
// decide how children are measured and placed.
//
// All node and window methods must be called from the goroutine that owns
// the scene: the one that created it, or the one running Run. Other
// goroutines reach the scene through Post and Call.
package scene
