package scene

import (
	"strconv"
)

// Snapshot is a read-only copy of a window's tree and geometry, suitable
// for JSON encoding.
type Snapshot struct {
	Window  string        `json:"window"`
	ID      string        `json:"id"`
	Client  Size          `json:"client"`
	Pending int           `json:"pending"`
	Root    *NodeSnapshot `json:"root,omitempty"`
}

// NodeSnapshot captures one node. Cached geometry that is currently
// invalid is omitted.
type NodeSnapshot struct {
	ID       int32  `json:"id"`
	Name     string `json:"name,omitempty"`
	Level    int    `json:"level"`
	Policy   string `json:"policy"`
	State    string `json:"state"`
	Pending  string `json:"pending,omitempty"`
	Visible  bool   `json:"visible"`
	Enabled  bool   `json:"enabled"`
	Text     string `json:"text,omitempty"`
	ZIndex   *int   `json:"z_index,omitempty"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	RowSpan  int    `json:"row_span"`
	ColSpan  int    `json:"column_span"`
	Desired  *Size  `json:"desired,omitempty"`
	Arranged *Rect  `json:"arranged,omitempty"`
	Render   *Rect  `json:"render,omitempty"`
	Bounds   *Rect  `json:"bounds,omitempty"`

	Rows    []DimensionSnapshot `json:"rows,omitempty"`
	Columns []DimensionSnapshot `json:"columns,omitempty"`

	Children []*NodeSnapshot `json:"children,omitempty"`
}

// DimensionSnapshot captures a resolved grid row or column.
type DimensionSnapshot struct {
	Kind  string   `json:"kind"`
	Value float64  `json:"value"`
	Size  *float64 `json:"size,omitempty"`
	Start *float64 `json:"start,omitempty"`
}

// Label returns the node's name, or its slot when unnamed.
func (ns *NodeSnapshot) Label() string {
	if ns.Name != "" {
		return ns.Name
	}
	return "#" + strconv.Itoa(int(ns.ID))
}

// Walk visits the snapshot depth first in declaration order.
func (s Snapshot) Walk(fn func(n *NodeSnapshot, depth int)) {
	if s.Root != nil {
		s.Root.walk(0, fn)
	}
}

func (ns *NodeSnapshot) walk(depth int, fn func(n *NodeSnapshot, depth int)) {
	fn(ns, depth)
	for _, c := range ns.Children {
		c.walk(depth+1, fn)
	}
}

// Snapshot copies the window's tree.
func (w *Window) Snapshot() Snapshot {
	w.scene.checkThread("Snapshot")
	s := Snapshot{
		Window:  w.name,
		ID:      w.id.String(),
		Client:  w.client,
		Pending: w.PendingCount(),
	}
	if root, ok := w.Root(); ok {
		s.Root = w.snapshotNode(root)
	}
	return s
}

func (w *Window) snapshotNode(n Node) *NodeSnapshot {
	d := n.data()
	ns := &NodeSnapshot{
		ID:      n.id,
		Name:    d.name,
		Level:   d.level,
		Policy:  policyName(d.policy),
		State:   n.State().String(),
		Visible: d.visible,
		Enabled: d.enabled,
		Row:     d.cell.Row,
		Column:  d.cell.Column,
		RowSpan: d.cell.RowSpan,
		ColSpan: d.cell.ColumnSpan,
	}
	if m, ok := w.PendingMode(n); ok {
		ns.Pending = m.String()
	}
	if d.hasZIndex {
		z := d.zIndex
		ns.ZIndex = &z
	}
	if d.desiredValid {
		v := d.desired
		ns.Desired = &v
	}
	if d.arrangedValid {
		v := d.arranged
		ns.Arranged = &v
	}
	if d.renderValid {
		r, b := d.render, d.absBounds
		ns.Render, ns.Bounds = &r, &b
	}
	switch p := d.policy.(type) {
	case *Text:
		ns.Text = p.Text()
	case *Grid:
		ns.Rows = snapshotDimensions(p.Rows())
		ns.Columns = snapshotDimensions(p.Columns())
	}
	for _, id := range d.children {
		ns.Children = append(ns.Children, w.snapshotNode(n.s.handle(id)))
	}
	return ns
}

func snapshotDimensions(l *DimensionList) []DimensionSnapshot {
	out := make([]DimensionSnapshot, 0, l.Len())
	for _, d := range l.All() {
		ds := DimensionSnapshot{Kind: d.Kind().String(), Value: d.Value()}
		if v, ok := d.DesiredSize(); ok {
			ds.Size = &v
		}
		if v, ok := d.FinalStartPosition(); ok {
			ds.Start = &v
		}
		out = append(out, ds)
	}
	return out
}
