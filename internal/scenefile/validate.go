package scenefile

import (
	"fmt"
	"math"

	multierror "github.com/hashicorp/go-multierror"

	scene "github.com/grindlemire/go-scene"
)

var (
	alignments = map[string]scene.Alignment{
		"":        scene.AlignUnset,
		"near":    scene.AlignNear,
		"left":    scene.AlignNear,
		"top":     scene.AlignNear,
		"center":  scene.AlignCenter,
		"far":     scene.AlignFar,
		"right":   scene.AlignFar,
		"bottom":  scene.AlignFar,
		"stretch": scene.AlignStretch,
	}
	directions = map[string]scene.Direction{
		"":       scene.Row,
		"row":    scene.Row,
		"column": scene.Column,
	}
	justifies = map[string]scene.Justify{
		"":              scene.JustifyStart,
		"start":         scene.JustifyStart,
		"end":           scene.JustifyEnd,
		"center":        scene.JustifyCenter,
		"space-between": scene.JustifySpaceBetween,
		"space-around":  scene.JustifySpaceAround,
		"space-evenly":  scene.JustifySpaceEvenly,
	}
	layouts = map[string]bool{"": true, "panel": true, "grid": true, "flex": true, "text": true}
)

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	var mErr multierror.Error

	if err := d.Scene.validate(); err != nil {
		multierror.Append(&mErr, multierror.Prefix(err, "scene:"))
	}
	if err := d.Window.validate(); err != nil {
		multierror.Append(&mErr, multierror.Prefix(err, "window:"))
	}
	if d.Root == nil {
		multierror.Append(&mErr, fmt.Errorf("root node must be specified"))
		return mErr.ErrorOrNil()
	}

	names := make(map[string]string)
	d.Root.Walk(func(n *Node, path string) {
		if n.Name != "" {
			if prev, ok := names[n.Name]; ok {
				multierror.Append(&mErr, fmt.Errorf("%s: name %q already used by %s", path, n.Name, prev))
			} else {
				names[n.Name] = path
			}
		}
		if err := n.validate(); err != nil {
			multierror.Append(&mErr, multierror.Prefix(err, path+":"))
		}
	})

	return mErr.ErrorOrNil()
}

func (c SceneConfig) validate() error {
	var mErr multierror.Error
	if c.TextCellWidth < 0 || c.TextLineHeight < 0 {
		multierror.Append(&mErr, fmt.Errorf("text metrics must not be negative"))
	}
	if (c.TextCellWidth == 0) != (c.TextLineHeight == 0) {
		multierror.Append(&mErr, fmt.Errorf("text_cell_width and text_line_height must be set together"))
	}
	if c.TextCache != nil && *c.TextCache < 0 {
		multierror.Append(&mErr, fmt.Errorf("text_cache must not be negative"))
	}
	if c.SettleLimit < 0 {
		multierror.Append(&mErr, fmt.Errorf("settle_limit must not be negative"))
	}
	return mErr.ErrorOrNil()
}

func (c WindowConfig) validate() error {
	var mErr multierror.Error
	if !finiteNonNegative(c.Width) || !finiteNonNegative(c.Height) {
		multierror.Append(&mErr, fmt.Errorf("size %gx%g must be finite and non-negative", c.Width, c.Height))
	}
	return mErr.ErrorOrNil()
}

func (n *Node) validate() error {
	var mErr multierror.Error

	if !layouts[n.Layout] {
		multierror.Append(&mErr, fmt.Errorf("unknown layout %q", n.Layout))
	}
	for name, v := range map[string]*float64{
		"width": n.Width, "height": n.Height,
		"min_width": n.MinWidth, "min_height": n.MinHeight,
		"max_width": n.MaxWidth, "max_height": n.MaxHeight,
		"grow": n.Grow, "shrink": n.Shrink,
	} {
		if v != nil && !finiteNonNegative(*v) {
			multierror.Append(&mErr, fmt.Errorf("%s must be finite and non-negative, got %v", name, *v))
		}
	}
	if n.Zoom != nil && (*n.Zoom <= 0 || !finiteNonNegative(*n.Zoom)) {
		multierror.Append(&mErr, fmt.Errorf("zoom must be positive, got %v", *n.Zoom))
	}
	if _, err := thickness(n.Margin); err != nil {
		multierror.Append(&mErr, fmt.Errorf("margin: %w", err))
	}
	if _, err := thickness(n.Padding); err != nil {
		multierror.Append(&mErr, fmt.Errorf("padding: %w", err))
	}
	if _, ok := alignments[n.HAlign]; !ok {
		multierror.Append(&mErr, fmt.Errorf("unknown h_align %q", n.HAlign))
	}
	if _, ok := alignments[n.VAlign]; !ok {
		multierror.Append(&mErr, fmt.Errorf("unknown v_align %q", n.VAlign))
	}

	if n.Row < 0 || n.Column < 0 {
		multierror.Append(&mErr, fmt.Errorf("row and column must not be negative"))
	}
	if _, err := span(n.RowSpan); err != nil {
		multierror.Append(&mErr, fmt.Errorf("row_span: %w", err))
	}
	if _, err := span(n.ColumnSpan); err != nil {
		multierror.Append(&mErr, fmt.Errorf("column_span: %w", err))
	}

	if n.Layout != "grid" && (len(n.Rows) > 0 || len(n.Columns) > 0) {
		multierror.Append(&mErr, fmt.Errorf("rows and columns need layout \"grid\""))
	}
	for _, list := range [][]string{n.Rows, n.Columns} {
		for _, s := range list {
			if _, err := scene.ParseDimension(s); err != nil {
				multierror.Append(&mErr, err)
			}
		}
	}

	if n.Layout != "flex" && (n.Direction != "" || n.Justify != "" || n.Gap != 0) {
		multierror.Append(&mErr, fmt.Errorf("direction, justify and gap need layout \"flex\""))
	}
	if _, ok := directions[n.Direction]; !ok {
		multierror.Append(&mErr, fmt.Errorf("unknown direction %q", n.Direction))
	}
	if _, ok := justifies[n.Justify]; !ok {
		multierror.Append(&mErr, fmt.Errorf("unknown justify %q", n.Justify))
	}
	if !finiteNonNegative(n.Gap) {
		multierror.Append(&mErr, fmt.Errorf("gap must be finite and non-negative"))
	}

	if n.Layout == "text" && len(n.Children) > 0 {
		multierror.Append(&mErr, fmt.Errorf("text nodes cannot have children"))
	}
	if n.Layout != "text" && (n.Text != "" || n.Wrap) {
		multierror.Append(&mErr, fmt.Errorf("text and wrap need layout \"text\""))
	}
	for i, c := range n.Children {
		if c == nil {
			multierror.Append(&mErr, fmt.Errorf("child %d is empty", i))
		}
	}

	return mErr.ErrorOrNil()
}

// thickness converts one, two or four values to a Thickness.
func thickness(v []float64) (scene.Thickness, error) {
	for _, x := range v {
		if !finiteNonNegative(x) {
			return scene.Thickness{}, fmt.Errorf("values must be finite and non-negative")
		}
	}
	switch len(v) {
	case 0:
		return scene.Thickness{}, nil
	case 1:
		return scene.Uniform(v[0]), nil
	case 2:
		return scene.Symmetric(v[0], v[1]), nil
	case 4:
		return scene.LTRB(v[0], v[1], v[2], v[3]), nil
	default:
		return scene.Thickness{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(v))
	}
}

// span maps 0 to the default of 1 and -1 to SpanToEnd.
func span(v int) (int, error) {
	switch {
	case v == 0:
		return 1, nil
	case v == -1:
		return scene.SpanToEnd, nil
	case v < 0:
		return 0, fmt.Errorf("%w: %d", scene.ErrInvalidSpan, v)
	default:
		return v, nil
	}
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
