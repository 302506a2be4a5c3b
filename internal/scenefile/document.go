package scenefile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Document is a parsed scene file.
type Document struct {
	Scene  SceneConfig  `toml:"scene"`
	Window WindowConfig `toml:"window"`
	Root   *Node        `toml:"root"`
}

// SceneConfig maps to scene options.
type SceneConfig struct {
	Rounding       bool    `toml:"rounding"`
	LoopDetection  bool    `toml:"loop_detection"`
	TextCellWidth  float64 `toml:"text_cell_width"`
	TextLineHeight float64 `toml:"text_line_height"`
	TextCache      *int    `toml:"text_cache"`
	SettleLimit    int     `toml:"settle_limit"`
}

// WindowConfig describes the window hosting the tree.
type WindowConfig struct {
	Name   string  `toml:"name"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Node is one node declaration. Unset optional fields keep the scene's
// defaults.
type Node struct {
	Name   string `toml:"name"`
	Layout string `toml:"layout"` // panel (default), grid, flex or text

	Width     *float64 `toml:"width"`
	Height    *float64 `toml:"height"`
	MinWidth  *float64 `toml:"min_width"`
	MinHeight *float64 `toml:"min_height"`
	MaxWidth  *float64 `toml:"max_width"`
	MaxHeight *float64 `toml:"max_height"`

	Margin  []float64 `toml:"margin"`
	Padding []float64 `toml:"padding"`

	HAlign string `toml:"h_align"`
	VAlign string `toml:"v_align"`

	Zoom    *float64 `toml:"zoom"`
	Visible *bool    `toml:"visible"`
	Enabled *bool    `toml:"enabled"`
	Clip    *bool    `toml:"clip"`
	Shadow  bool     `toml:"shadow"`
	ZIndex  *int     `toml:"z_index"`

	// Grid placement. A span of -1 extends to the last dimension.
	Row        int `toml:"row"`
	Column     int `toml:"column"`
	RowSpan    int `toml:"row_span"`
	ColumnSpan int `toml:"column_span"`

	// Grid layout
	Rows    []string `toml:"rows"`
	Columns []string `toml:"columns"`

	// Flex layout
	Direction string   `toml:"direction"`
	Justify   string   `toml:"justify"`
	Gap       float64  `toml:"gap"`
	Grow      *float64 `toml:"grow"`
	Shrink    *float64 `toml:"shrink"`

	// Text layout
	Text string `toml:"text"`
	Wrap bool   `toml:"wrap"`

	Children []*Node `toml:"children"`
}

// Label names the node in error messages.
func (n *Node) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return "<unnamed>"
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(n *Node, path string)) {
	n.walk("root", fn)
}

func (n *Node) walk(path string, fn func(n *Node, path string)) {
	fn(n, path)
	for i, c := range n.Children {
		if c == nil {
			continue
		}
		c.walk(fmt.Sprintf("%s.children[%d]", path, i), fn)
	}
}

// Parse decodes and validates a document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decoding scene file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in scene file: %s", strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
