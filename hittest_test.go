package scene

import (
	"testing"

	"github.com/shoenig/test/must"
)

// mapIndex is a SpatialIndex that only records bounds.
type mapIndex struct {
	bounds map[Node]Rect
}

func (m *mapIndex) Move(n Node, r Rect) { m.bounds[n] = r }
func (m *mapIndex) Remove(n Node)       { delete(m.bounds, n) }

// hitTree builds root (100x100) with a at {0,0,50,50} holding leaf at
// {0,0,10,10}, and b at {20,20,30,30} painted after a.
func hitTree(t *testing.T, s *Scene, opts ...WindowOption) (w *Window, root, a, b, leaf Node) {
	t.Helper()
	leaf = newTestNode(t, s, WithName("leaf"), WithSize(10, 10))
	a = newTestNode(t, s, WithName("a"), WithSize(50, 50), WithChildren(leaf))
	b = newTestNode(t, s, WithName("b"), WithSize(30, 30), WithMargin(LTRB(20, 20, 0, 0)))
	root = newTestNode(t, s, WithName("root"), WithChildren(a, b))
	w = newTestWindow(t, s, 100, 100, opts...)
	w.SetRoot(root)
	settle(t, s)
	return w, root, a, b, leaf
}

func TestWindow_HitTest(t *testing.T) {
	type tc struct {
		index  bool
		mutate func(root, a, b, leaf Node)
		x, y   float64
		want   string
	}

	tests := map[string]tc{
		"single node": {
			x: 40, y: 10, want: "a",
		},
		"child over parent": {
			x: 5, y: 5, want: "leaf",
		},
		"later sibling on top": {
			x: 25, y: 25, want: "b",
		},
		"root background": {
			x: 80, y: 80, want: "root",
		},
		"z-index raises earlier sibling": {
			mutate: func(_, a, _, _ Node) { a.SetZIndex(1) },
			x:      25, y: 25, want: "a",
		},
		"disabled node skipped": {
			mutate: func(_, _, b, _ Node) { b.SetEnabled(false) },
			x:      25, y: 25, want: "a",
		},
		"disabled ancestor hides subtree": {
			mutate: func(_, a, _, _ Node) { a.SetEnabled(false) },
			x:      5, y: 5, want: "root",
		},
		"disabled root": {
			mutate: func(root, _, _, _ Node) { root.SetEnabled(false) },
			x:      5, y: 5,
		},
		"outside window": {
			x: 150, y: 150,
		},
		"hidden node skipped": {
			mutate: func(_, _, b, _ Node) { b.SetVisible(false) },
			x:      25, y: 25, want: "a",
		},
		"custom index falls back to tree walk": {
			index: true,
			x:     25, y: 25, want: "b",
		},
		"custom index child over parent": {
			index: true,
			x:     5, y: 5, want: "leaf",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t)
			var opts []WindowOption
			idx := &mapIndex{bounds: map[Node]Rect{}}
			if tt.index {
				opts = append(opts, WithSpatialIndex(idx))
			}
			w, root, a, b, leaf := hitTree(t, s, opts...)
			if tt.mutate != nil {
				tt.mutate(root, a, b, leaf)
				settle(t, s)
			}

			got, ok := w.HitTest(tt.x, tt.y)
			if tt.want == "" {
				must.False(t, ok, must.Sprintf("unexpected hit %s", got))
				return
			}
			must.True(t, ok)
			must.Eq(t, tt.want, got.Name())
			if tt.index {
				must.MapLen(t, 4, idx.bounds)
			}
		})
	}
}

func TestWindow_HitTestAfterResize(t *testing.T) {
	s := newTestScene(t)
	w, _, _, b, _ := hitTree(t, s)

	must.NoError(t, w.Resize(40, 40))
	settle(t, s)

	bounds, _ := b.Bounds()
	must.Eq(t, NewRect(20, 20, 20, 20), bounds)

	got, ok := w.HitTest(30, 30)
	must.True(t, ok)
	must.EqOp(t, b, got)

	_, ok = w.HitTest(45, 45)
	must.False(t, ok)
}
