// Package dot renders window snapshots as Graphviz node-link diagrams.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	scene "github.com/grindlemire/go-scene"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed adds policy, state and geometry to node labels. When false
	// only the node label is shown.
	Detailed bool
}

// ToDOT converts a snapshot to Graphviz DOT. Pending nodes are filled
// yellow, hidden nodes are dashed, and nodes with invalid render caches
// are grey.
func ToDOT(snap scene.Snapshot, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", snap.Window)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=12];\n")
	buf.WriteString("\n")

	var edges []string
	snap.Walk(func(n *scene.NodeSnapshot, _ int) {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed))
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(attrs, ", "))
		for _, c := range n.Children {
			edges = append(edges, fmt.Sprintf("  n%d -> n%d;\n", n.ID, c.ID))
		}
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			buf.WriteString(e)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *scene.NodeSnapshot, detailed bool) string {
	if !detailed {
		return n.Label()
	}
	parts := []string{n.Label(), n.Policy + " / " + n.State}
	if n.Pending != "" {
		parts = append(parts, "pending: "+n.Pending)
	}
	if n.Desired != nil {
		parts = append(parts, fmt.Sprintf("desired: %gx%g", n.Desired.Width, n.Desired.Height))
	}
	if n.Bounds != nil {
		b := n.Bounds
		parts = append(parts, fmt.Sprintf("bounds: %g,%g %gx%g", b.X, b.Y, b.Width, b.Height))
	}
	if n.Text != "" {
		parts = append(parts, fmt.Sprintf("text: %q", n.Text))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *scene.NodeSnapshot, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case n.Pending != "":
		attrs = append(attrs, "fillcolor=lightyellow")
	case n.Render == nil:
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	if !n.Visible {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
