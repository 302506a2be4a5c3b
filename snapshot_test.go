package scene

import (
	"encoding/json"
	"testing"

	"github.com/shoenig/test/must"
)

func TestWindow_Snapshot(t *testing.T) {
	s := newTestScene(t)
	grid := NewGrid(nil, []*Dimension{Fixed(40), Star(1)})
	label := newTestNode(t, s, WithName("label"), WithPolicy(NewText("hi")), WithZIndex(2))
	body := newTestNode(t, s, WithName("body"), WithCell(0, 1))
	root := newTestNode(t, s, WithName("root"), WithPolicy(grid), WithChildren(label, body))
	w := newTestWindow(t, s, 200, 100, WithWindowName("main"))
	w.SetRoot(root)
	settle(t, s)

	body.SetVisible(false)
	snap := w.Snapshot()

	must.Eq(t, "main", snap.Window)
	must.Eq(t, w.ID().String(), snap.ID)
	must.Eq(t, NewSize(200, 100), snap.Client)
	must.Eq(t, 1, snap.Pending)

	must.NotNil(t, snap.Root)
	must.Eq(t, "grid", snap.Root.Policy)
	must.Eq(t, "unmeasured", snap.Root.State)
	must.Eq(t, "measure", snap.Root.Pending)
	must.Nil(t, snap.Root.Desired)
	must.Len(t, 2, snap.Root.Columns)
	must.Eq(t, "fixed", snap.Root.Columns[0].Kind)
	must.Eq(t, 40.0, *snap.Root.Columns[0].Size)
	must.Eq(t, 40.0, *snap.Root.Columns[1].Start)

	var labels []string
	var depths []int
	snap.Walk(func(n *NodeSnapshot, depth int) {
		labels = append(labels, n.Label())
		depths = append(depths, depth)
	})
	must.Eq(t, []string{"root", "label", "body"}, labels)
	must.Eq(t, []int{0, 1, 1}, depths)

	ls := snap.Root.Children[0]
	must.Eq(t, "hi", ls.Text)
	must.Eq(t, "text", ls.Policy)
	must.Eq(t, 2, *ls.ZIndex)
	must.Eq(t, NewRect(0, 0, 40, 100), *ls.Bounds)

	bs := snap.Root.Children[1]
	must.False(t, bs.Visible)
	must.Eq(t, 1, bs.Column)

	data, err := json.Marshal(snap)
	must.NoError(t, err)
	must.StrContains(t, string(data), `"window":"main"`)
	must.StrContains(t, string(data), `"text":"hi"`)
}

func TestWindow_SnapshotEmpty(t *testing.T) {
	s := newTestScene(t)
	w := newTestWindow(t, s, 10, 10)

	snap := w.Snapshot()
	must.Nil(t, snap.Root)
	called := false
	snap.Walk(func(*NodeSnapshot, int) { called = true })
	must.False(t, called)
}

func TestNodeSnapshot_Label(t *testing.T) {
	must.Eq(t, "a", (&NodeSnapshot{ID: 3, Name: "a"}).Label())
	must.Eq(t, "#3", (&NodeSnapshot{ID: 3}).Label())
}
