package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shoenig/test/must"
)

const dashboard = "../../internal/scenefile/testdata/dashboard.toml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := newCLI(&out, io.Discard)
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "--width", "120", dashboard)
	must.NoError(t, err)

	must.StrContains(t, out, "dashboard  300x100")
	for _, want := range []string{"logo", "menu", "title", "body", "header", "content"} {
		must.StrContains(t, out, want)
	}
	must.StrContains(t, out, "0,0 50x100")
	must.StrContains(t, out, "50,0 40x20")
	must.StrContains(t, out, "52,36 246x62")
}

func TestDotCommand(t *testing.T) {
	type tc struct {
		args []string
		want []string
	}
	tests := map[string]tc{
		"plain": {
			args: []string{"dot", dashboard},
			want: []string{`digraph "dashboard"`, `label="logo"`, " -> "},
		},
		"detailed": {
			args: []string{"dot", "--detailed", dashboard},
			want: []string{"grid / rendered", "flex / rendered"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			must.NoError(t, err)
			for _, want := range tt.want {
				must.StrContains(t, out, want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "scene.png")
	_, err := execute(t, "render", "-o", path, dashboard)
	must.NoError(t, err)

	data, err := os.ReadFile(path)
	must.NoError(t, err)
	must.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestCommandErrors(t *testing.T) {
	type tc struct {
		args []string
		want string
	}
	tests := map[string]tc{
		"missing file": {
			args: []string{"layout", "nope.toml"},
			want: "nope.toml",
		},
		"no args": {
			args: []string{"render"},
			want: "accepts 1 arg(s)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			must.Error(t, err)
			must.StrContains(t, err.Error(), tt.want)
		})
	}
}
