package scenefile

import (
	"fmt"

	scene "github.com/grindlemire/go-scene"
)

// Built is a scene constructed from a document. Named holds every node
// that declared a name.
type Built struct {
	Scene  *scene.Scene
	Window *scene.Window
	Root   scene.Node
	Named  map[string]scene.Node
}

// Lookup returns the node declared with name.
func (b *Built) Lookup(name string) (scene.Node, bool) {
	n, ok := b.Named[name]
	return n, ok
}

// SceneOptions converts the [scene] table to scene options.
func (c SceneConfig) SceneOptions() []scene.SceneOption {
	opts := []scene.SceneOption{
		scene.WithLayoutRounding(c.Rounding),
		scene.WithLoopDetection(c.LoopDetection),
	}
	if c.TextCellWidth > 0 && c.TextLineHeight > 0 {
		opts = append(opts, scene.WithTextMetrics(scene.TextMetrics{
			CellWidth:  c.TextCellWidth,
			LineHeight: c.TextLineHeight,
		}))
	}
	if c.TextCache != nil {
		opts = append(opts, scene.WithTextCache(*c.TextCache))
	}
	if c.SettleLimit > 0 {
		opts = append(opts, scene.WithSettleLimit(c.SettleLimit))
	}
	return opts
}

// Build creates a scene owned by the calling goroutine, a window and the
// node tree, and settles the first layout. Extra options are applied after
// the document's own.
func (d *Document) Build(opts ...scene.SceneOption) (*Built, error) {
	s, err := scene.NewScene(append(d.Scene.SceneOptions(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}
	var wopts []scene.WindowOption
	if d.Window.Name != "" {
		wopts = append(wopts, scene.WithWindowName(d.Window.Name))
	}
	w, err := s.NewWindow(d.Window.Width, d.Window.Height, wopts...)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	b := &Built{Scene: s, Window: w, Named: make(map[string]scene.Node)}
	root, err := b.node(d.Root, "root")
	if err != nil {
		return nil, err
	}
	b.Root = root
	w.SetRoot(root)
	if err := s.RunPending(); err != nil {
		return nil, fmt.Errorf("settling layout: %w", err)
	}
	return b, nil
}

func (b *Built) node(decl *Node, path string) (scene.Node, error) {
	opts, err := decl.Options()
	if err != nil {
		return scene.Node{}, fmt.Errorf("%s: %w", path, err)
	}
	n, err := b.Scene.NewNode(opts...)
	if err != nil {
		return scene.Node{}, fmt.Errorf("%s: %w", path, err)
	}
	if decl.Name != "" {
		b.Named[decl.Name] = n
	}
	for i, c := range decl.Children {
		child, err := b.node(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return scene.Node{}, err
		}
		n.AddChild(child)
	}
	return n, nil
}

// Options converts the declaration, without its children, to node options.
func (n *Node) Options() ([]scene.Option, error) {
	var opts []scene.Option
	if n.Name != "" {
		opts = append(opts, scene.WithName(n.Name))
	}

	policy, err := n.policy()
	if err != nil {
		return nil, err
	}
	opts = append(opts, scene.WithPolicy(policy))

	lengths := []struct {
		v   *float64
		set func(scene.Node, float64)
	}{
		{n.Width, scene.Node.SetWidth},
		{n.Height, scene.Node.SetHeight},
		{n.MinWidth, scene.Node.SetMinWidth},
		{n.MinHeight, scene.Node.SetMinHeight},
		{n.MaxWidth, scene.Node.SetMaxWidth},
		{n.MaxHeight, scene.Node.SetMaxHeight},
		{n.Grow, scene.Node.SetGrow},
		{n.Shrink, scene.Node.SetShrink},
	}
	for _, l := range lengths {
		if l.v == nil {
			continue
		}
		v, set := *l.v, l.set
		opts = append(opts, func(node scene.Node) error {
			set(node, v)
			return nil
		})
	}

	margin, err := thickness(n.Margin)
	if err != nil {
		return nil, fmt.Errorf("margin: %w", err)
	}
	padding, err := thickness(n.Padding)
	if err != nil {
		return nil, fmt.Errorf("padding: %w", err)
	}
	opts = append(opts,
		scene.WithMargin(margin),
		scene.WithPadding(padding),
		scene.WithAlignment(alignments[n.HAlign], alignments[n.VAlign]),
	)

	if n.Zoom != nil {
		opts = append(opts, scene.WithZoom(*n.Zoom))
	}
	if n.Visible != nil {
		opts = append(opts, scene.WithVisible(*n.Visible))
	}
	if n.Enabled != nil {
		opts = append(opts, scene.WithEnabled(*n.Enabled))
	}
	if n.Clip != nil {
		opts = append(opts, scene.WithClipFromParent(*n.Clip))
	}
	if n.Shadow {
		opts = append(opts, scene.WithShadow())
	}
	if n.ZIndex != nil {
		opts = append(opts, scene.WithZIndex(*n.ZIndex))
	}

	rowSpan, err := span(n.RowSpan)
	if err != nil {
		return nil, fmt.Errorf("row_span: %w", err)
	}
	colSpan, err := span(n.ColumnSpan)
	if err != nil {
		return nil, fmt.Errorf("column_span: %w", err)
	}
	opts = append(opts, scene.WithCell(n.Row, n.Column), scene.WithSpan(rowSpan, colSpan))
	return opts, nil
}

func (n *Node) policy() (scene.LayoutPolicy, error) {
	switch n.Layout {
	case "", "panel":
		return scene.Panel{}, nil
	case "grid":
		rows, err := dimensions(n.Rows)
		if err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
		cols, err := dimensions(n.Columns)
		if err != nil {
			return nil, fmt.Errorf("columns: %w", err)
		}
		return scene.NewGrid(rows, cols), nil
	case "flex":
		f := scene.NewFlex(directions[n.Direction])
		f.SetJustify(justifies[n.Justify])
		f.SetGap(n.Gap)
		return f, nil
	case "text":
		t := scene.NewText(n.Text)
		t.SetWrap(n.Wrap)
		return t, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", n.Layout)
	}
}

func dimensions(specs []string) ([]*scene.Dimension, error) {
	out := make([]*scene.Dimension, 0, len(specs))
	for _, s := range specs {
		d, err := scene.ParseDimension(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
