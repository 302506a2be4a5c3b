package scene

import (
	"math"
	"testing"

	"github.com/shoenig/test/must"
)

func TestScene_NewWindow(t *testing.T) {
	type tc struct {
		width, height float64
		opts          []WindowOption
		wantErr       bool
	}

	tests := map[string]tc{
		"valid":              {width: 100, height: 50},
		"zero size":          {width: 0, height: 0},
		"negative width":     {width: -1, height: 10, wantErr: true},
		"nan height":         {width: 10, height: math.NaN(), wantErr: true},
		"infinite":           {width: math.Inf(1), height: 10, wantErr: true},
		"empty name":         {width: 10, height: 10, opts: []WindowOption{WithWindowName("")}, wantErr: true},
		"nil compositor":     {width: 10, height: 10, opts: []WindowOption{WithCompositor(nil)}, wantErr: true},
		"nil spatial index":  {width: 10, height: 10, opts: []WindowOption{WithSpatialIndex(nil)}, wantErr: true},
		"nil scheduler":      {width: 10, height: 10, opts: []WindowOption{WithScheduler(nil)}, wantErr: true},
		"custom compositor":  {width: 10, height: 10, opts: []WindowOption{WithCompositor(&countingCompositor{})}},
		"custom window name": {width: 10, height: 10, opts: []WindowOption{WithWindowName("main")}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestScene(t)
			w, err := s.NewWindow(tt.width, tt.height, tt.opts...)
			if tt.wantErr {
				must.Error(t, err)
				must.Len(t, 0, s.Windows())
				return
			}
			must.NoError(t, err)
			must.Eq(t, NewSize(tt.width, tt.height), w.ClientSize())
			must.Len(t, 1, s.Windows())
			must.EqOp(t, s, w.Scene())
			must.NotEq(t, "", w.Name())
		})
	}
}

func TestWindow_DefaultName(t *testing.T) {
	s := newTestScene(t)
	w := newTestWindow(t, s, 10, 10)
	must.Eq(t, w.ID().String()[:8], w.Name())
	must.NotNil(t, w.Visuals())
}

func TestWindow_SetRootReplaces(t *testing.T) {
	s := newTestScene(t)
	first := newTestNode(t, s, WithChildren(s.MustNode()))
	w := mountTree(t, s, 100, 100, first)
	must.Eq(t, 2, w.Visuals().Len())

	second := newTestNode(t, s)
	w.SetRoot(second)
	root, ok := w.Root()
	must.True(t, ok)
	must.EqOp(t, second, root)
	must.False(t, first.IsAttached())
	must.Eq(t, 0, w.Visuals().Len())

	settle(t, s)
	must.Eq(t, Rendered, second.State())
	must.Eq(t, 1, w.Visuals().Len())

	// The old root may be used as a child again.
	second.AddChild(first)
	settle(t, s)
	must.Eq(t, 1, first.Level())
	must.Eq(t, Rendered, first.State())

	r := capturePanic(func() { w.SetRoot(first) })
	must.Eq(t, AlreadyParented, contractKind(t, r))

	// Setting the current root again is a no-op.
	w.SetRoot(second)
	must.Eq(t, 0, w.PendingCount())
}

func TestWindow_RootOfAnotherWindow(t *testing.T) {
	s := newTestScene(t)
	root := newTestNode(t, s)
	mountTree(t, s, 10, 10, root)

	other := newTestWindow(t, s, 10, 10)
	r := capturePanic(func() { other.SetRoot(root) })
	must.Eq(t, AlreadyParented, contractKind(t, r))
}

func TestWindow_Resize(t *testing.T) {
	s := newTestScene(t)
	root := newTestNode(t, s)
	w := mountTree(t, s, 100, 100, root)

	must.NoError(t, w.Resize(100, 100))
	must.Eq(t, 0, w.PendingCount())

	must.NoError(t, w.Resize(50, 20))
	must.Eq(t, NewSize(50, 20), w.ClientSize())
	settle(t, s)
	bounds, _ := root.Bounds()
	must.Eq(t, NewRect(0, 0, 50, 20), bounds)

	must.Error(t, w.Resize(-1, 10))
	must.Eq(t, NewSize(50, 20), w.ClientSize())
}

func TestWindow_CustomCompositor(t *testing.T) {
	s := newTestScene(t)
	comp := &countingCompositor{}
	leaf := newTestNode(t, s, WithSize(10, 10))
	root := newTestNode(t, s, WithChildren(leaf))
	w := newTestWindow(t, s, 100, 100, WithCompositor(comp))
	w.SetRoot(root)
	settle(t, s)

	must.Nil(t, w.Visuals())
	must.Eq(t, 2, comp.created)

	leaf.Destroy()
	must.Eq(t, 1, comp.released)
}

// countingCompositor hands out inert visuals.
type countingCompositor struct {
	created  int
	released int
}

func (c *countingCompositor) NewVisual(Node) Visual {
	c.created++
	return nopVisual{}
}

func (c *countingCompositor) ReleaseVisual(Visual) {
	c.released++
}

type nopVisual struct{}

func (nopVisual) SetSize(Size)              {}
func (nopVisual) SetOffset(x, y, z float64) {}
func (nopVisual) SetVisible(bool)           {}
func (nopVisual) SetClip(Rect)              {}
func (nopVisual) SetZOrder(int)             {}
