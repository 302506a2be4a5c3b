package scene

import (
	"github.com/grindlemire/go-scene/internal/spatial"
)

// quadIndex is the default SpatialIndex. It also answers hit-test queries.
type quadIndex struct {
	tree *spatial.Tree[Node]
}

var _ SpatialIndex = (*quadIndex)(nil)

func newQuadIndex(client Size) *quadIndex {
	return &quadIndex{tree: spatial.New[Node](RectFromSize(client))}
}

func (q *quadIndex) Move(n Node, bounds Rect) { q.tree.Move(n, bounds) }
func (q *quadIndex) Remove(n Node)            { q.tree.Remove(n) }

func (q *quadIndex) query(x, y float64) []Node {
	return q.tree.Query(x, y)
}

func (q *quadIndex) resize(client Size) {
	q.tree.Reset(RectFromSize(client))
}
