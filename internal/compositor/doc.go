// Package compositor keeps a retained tree of visuals mirroring the
// rendered part of a scene and paints it to an image.
//
// Each visual records what the scene last published for its node: size,
// window offset with a depth component, visibility, clip rect and z-order
// among its siblings. The painter walks the tree back to front and fills
// each visible clip rect, which is enough to inspect a layout visually.
package compositor
