// Package spatial implements a region quad-tree used for hit testing.
//
// Items are stored at the deepest quadrant that fully contains their
// bounds. Items that straddle quadrant edges stay at the parent, and items
// outside the tree bounds are kept in a separate list so a window can be
// resized without losing them.
package spatial

import (
	"github.com/grindlemire/go-scene/internal/layout"
)

const (
	defaultMaxItems = 8
	defaultMaxDepth = 8
)

// Option configures a Tree.
type Option func(*config)

type config struct {
	maxItems int
	maxDepth int
}

// WithMaxItems sets how many items a quadrant holds before it splits.
func WithMaxItems(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxItems = n
		}
	}
}

// WithMaxDepth caps how deep quadrants split.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxDepth = n
		}
	}
}

// Tree indexes keys by rectangle.
type Tree[K comparable] struct {
	cfg     config
	root    *quad[K]
	outside []item[K]
	owner   map[K]*quad[K] // nil value means the key is in outside
	bounds  map[K]layout.Rect
}

type item[K comparable] struct {
	key  K
	rect layout.Rect
}

type quad[K comparable] struct {
	bounds layout.Rect
	depth  int
	items  []item[K]
	kids   *[4]*quad[K]
}

// New creates a tree covering bounds.
func New[K comparable](bounds layout.Rect, opts ...Option) *Tree[K] {
	cfg := config{maxItems: defaultMaxItems, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[K]{
		cfg:    cfg,
		root:   &quad[K]{bounds: bounds},
		owner:  make(map[K]*quad[K]),
		bounds: make(map[K]layout.Rect),
	}
}

// Len returns the number of indexed keys.
func (t *Tree[K]) Len() int {
	return len(t.bounds)
}

// Bounds returns the rectangle stored for k.
func (t *Tree[K]) Bounds(k K) (layout.Rect, bool) {
	r, ok := t.bounds[k]
	return r, ok
}

// Move indexes k at r, replacing any previous rectangle. An empty rectangle
// removes k.
func (t *Tree[K]) Move(k K, r layout.Rect) {
	if old, ok := t.bounds[k]; ok {
		if old == r {
			return
		}
		t.Remove(k)
	}
	if r.IsEmpty() {
		return
	}
	t.bounds[k] = r
	t.insert(item[K]{key: k, rect: r})
}

func (t *Tree[K]) insert(it item[K]) {
	if !t.root.bounds.ContainsRect(it.rect) {
		t.outside = append(t.outside, it)
		t.owner[it.key] = nil
		return
	}
	q := t.root
	for {
		if q.kids != nil {
			if kid := q.childFor(it.rect); kid != nil {
				q = kid
				continue
			}
		}
		q.items = append(q.items, it)
		t.owner[it.key] = q
		if q.kids == nil && len(q.items) > t.cfg.maxItems && q.depth < t.cfg.maxDepth {
			t.split(q)
		}
		return
	}
}

func (q *quad[K]) childFor(r layout.Rect) *quad[K] {
	for _, kid := range q.kids {
		if kid.bounds.ContainsRect(r) {
			return kid
		}
	}
	return nil
}

func (t *Tree[K]) split(q *quad[K]) {
	hw, hh := q.bounds.Width/2, q.bounds.Height/2
	x, y := q.bounds.X, q.bounds.Y
	q.kids = &[4]*quad[K]{
		{bounds: layout.NewRect(x, y, hw, hh), depth: q.depth + 1},
		{bounds: layout.NewRect(x+hw, y, q.bounds.Width-hw, hh), depth: q.depth + 1},
		{bounds: layout.NewRect(x, y+hh, hw, q.bounds.Height-hh), depth: q.depth + 1},
		{bounds: layout.NewRect(x+hw, y+hh, q.bounds.Width-hw, q.bounds.Height-hh), depth: q.depth + 1},
	}
	kept := q.items[:0]
	for _, it := range q.items {
		if kid := q.childFor(it.rect); kid != nil {
			kid.items = append(kid.items, it)
			t.owner[it.key] = kid
			continue
		}
		kept = append(kept, it)
	}
	q.items = kept
}

// Remove drops k from the index. It reports whether k was present.
func (t *Tree[K]) Remove(k K) bool {
	if _, ok := t.bounds[k]; !ok {
		return false
	}
	q := t.owner[k]
	if q == nil {
		t.outside = removeKey(t.outside, k)
	} else {
		q.items = removeKey(q.items, k)
	}
	delete(t.owner, k)
	delete(t.bounds, k)
	return true
}

func removeKey[K comparable](items []item[K], k K) []item[K] {
	for i, it := range items {
		if it.key == k {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// Query returns the keys whose rectangles contain the point, in no
// particular order.
func (t *Tree[K]) Query(x, y float64) []K {
	var out []K
	for _, it := range t.outside {
		if it.rect.Contains(x, y) {
			out = append(out, it.key)
		}
	}
	q := t.root
	for q != nil {
		for _, it := range q.items {
			if it.rect.Contains(x, y) {
				out = append(out, it.key)
			}
		}
		var next *quad[K]
		if q.kids != nil {
			for _, kid := range q.kids {
				if kid.bounds.Contains(x, y) {
					next = kid
					break
				}
			}
		}
		q = next
	}
	return out
}

// Intersecting returns the keys whose rectangles overlap r.
func (t *Tree[K]) Intersecting(r layout.Rect) []K {
	var out []K
	for _, it := range t.outside {
		if it.rect.Intersects(r) {
			out = append(out, it.key)
		}
	}
	var walk func(q *quad[K])
	walk = func(q *quad[K]) {
		if !q.bounds.Intersects(r) && q != t.root {
			return
		}
		for _, it := range q.items {
			if it.rect.Intersects(r) {
				out = append(out, it.key)
			}
		}
		if q.kids != nil {
			for _, kid := range q.kids {
				walk(kid)
			}
		}
	}
	walk(t.root)
	return out
}

// Reset re-roots the tree at bounds and reinserts every key.
func (t *Tree[K]) Reset(bounds layout.Rect) {
	items := make([]item[K], 0, len(t.bounds))
	for k, r := range t.bounds {
		items = append(items, item[K]{key: k, rect: r})
	}
	t.root = &quad[K]{bounds: bounds}
	t.outside = nil
	clear(t.owner)
	for _, it := range items {
		t.insert(it)
	}
}
