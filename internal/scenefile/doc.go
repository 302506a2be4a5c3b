// Package scenefile reads scene documents: TOML descriptions of a window
// and its node tree.
//
// A document has three tables. [scene] holds scene options, [window] the
// client size, and [root] the root node. Nodes nest through [[...children]]
// arrays:
//
//	[window]
//	width = 300
//	height = 100
//
//	[root]
//	layout = "grid"
//	columns = ["50", "auto", "*"]
//
//	[[root.children]]
//	name = "sidebar"
//	column = 1
//	width = 40
//	height = 20
//
// Lengths are in device-independent units. Thickness values (margin and
// padding) take one, two (horizontal, vertical) or four (left, top, right,
// bottom) numbers.
package scenefile
