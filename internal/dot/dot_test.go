package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/shoenig/test/must"

	scene "github.com/grindlemire/go-scene"
)

func testSnapshot(t *testing.T) scene.Snapshot {
	t.Helper()
	s, err := scene.NewScene()
	must.NoError(t, err)
	w, err := s.NewWindow(100, 50, scene.WithWindowName("main"))
	must.NoError(t, err)

	label := s.MustNode(scene.WithName("label"), scene.WithPolicy(scene.NewText("hi")))
	hidden := s.MustNode(scene.WithName("hidden"), scene.WithVisible(false))
	w.SetRoot(s.MustNode(scene.WithName("root"), scene.WithChildren(label, hidden)))
	must.NoError(t, s.RunPending())

	label.SetZIndex(1)
	return w.Snapshot()
}

func TestToDOT(t *testing.T) {
	type tc struct {
		opts     Options
		contains []string
		excludes []string
	}

	tests := map[string]tc{
		"plain": {
			contains: []string{
				`digraph "main" {`,
				`label="root"`,
				`label="label", fillcolor=lightyellow`,
				`style="rounded,filled,dashed"`,
				" -> ",
			},
			excludes: []string{"desired:"},
		},
		"detailed": {
			opts: Options{Detailed: true},
			contains: []string{
				`root\npanel / rendered`,
				`pending: render`,
				`text: \"hi\"`,
				`bounds: 0,0 100x50`,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := ToDOT(testSnapshot(t), tt.opts)
			for _, c := range tt.contains {
				must.StrContains(t, out, c)
			}
			for _, e := range tt.excludes {
				must.StrNotContains(t, out, e)
			}
			must.Eq(t, 2, strings.Count(out, "->"))
		})
	}
}

func TestToDOT_EmptyWindow(t *testing.T) {
	out := ToDOT(scene.Snapshot{Window: "empty"}, Options{})
	must.Eq(t, "digraph \"empty\" {\n  rankdir=TB;\n  bgcolor=\"transparent\";\n"+
		"  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=12];\n\n}\n", out)
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testSnapshot(t), Options{}))
	must.NoError(t, err)
	must.StrContains(t, string(svg), "<svg")
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), "digraph {")
	must.Error(t, err)
}
