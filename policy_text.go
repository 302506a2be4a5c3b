package scene

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/go-scene/internal/layout"
)

// TextMetrics gives the size of one monospace cell.
type TextMetrics struct {
	CellWidth  float64
	LineHeight float64
}

// DefaultTextMetrics matches a 7x13 bitmap font.
var DefaultTextMetrics = TextMetrics{CellWidth: 7, LineHeight: 13}

// Text is a leaf policy sizing a monospace string. East Asian wide runes
// take two cells. With wrapping on, lines break at spaces to fit the
// available width; words wider than a line are split.
type Text struct {
	owner Node
	text  string
	wrap  bool
}

var _ LayoutPolicy = (*Text)(nil)

// NewText creates a text policy.
func NewText(text string) *Text {
	return &Text{text: text}
}

func (t *Text) bind(n Node) { t.owner = n }

// Text returns the string being measured.
func (t *Text) Text() string { return t.text }

// SetText replaces the string and remeasures the node.
func (t *Text) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	invalidateOwner(t.owner, ModeMeasure, "text")
}

// Wrap reports whether lines wrap to the available width.
func (t *Text) Wrap() bool { return t.wrap }

// SetWrap turns wrapping on or off.
func (t *Text) SetWrap(wrap bool) {
	if t.wrap == wrap {
		return
	}
	t.wrap = wrap
	invalidateOwner(t.owner, ModeMeasure, "text wrap")
}

// MeasureCore returns the text extent in cells scaled by the scene's
// metrics.
func (t *Text) MeasureCore(n Node, available Size) Size {
	return n.s.measureText(t.text, available.Width, t.wrap)
}

// ArrangeCore is a no-op; text has no children to place.
func (t *Text) ArrangeCore(Node, Rect) {}

func (t *Text) String() string { return "text" }

type textKey struct {
	text     string
	maxCells int
	wrap     bool
}

// textExtent is a measured string in cells.
type textExtent struct {
	cols  int
	lines int
}

func (s *Scene) measureText(text string, maxWidth float64, wrap bool) Size {
	if text == "" {
		return Size{}
	}
	m := s.textMetrics
	maxCells := 0
	if wrap && layout.IsBounded(maxWidth) {
		maxCells = max(int(maxWidth/m.CellWidth), 1)
	}
	key := textKey{text: text, maxCells: maxCells, wrap: wrap}

	ext, ok := textExtent{}, false
	if s.textCache != nil {
		ext, ok = s.textCache.Get(key)
	}
	if !ok {
		lines := wrapLines(text, maxCells)
		ext = textExtent{lines: len(lines)}
		for _, l := range lines {
			ext.cols = max(ext.cols, runewidth.StringWidth(l))
		}
		if s.textCache != nil {
			s.textCache.Add(key, ext)
		}
	}
	return Size{
		Width:  float64(ext.cols) * m.CellWidth,
		Height: float64(ext.lines) * m.LineHeight,
	}
}

// wrapLines splits text into lines of at most maxCells display cells.
// maxCells <= 0 only splits at newlines.
func wrapLines(text string, maxCells int) []string {
	paragraphs := strings.Split(text, "\n")
	if maxCells <= 0 {
		return paragraphs
	}
	var out []string
	for _, p := range paragraphs {
		out = append(out, wrapParagraph(p, maxCells)...)
	}
	return out
}

func wrapParagraph(p string, maxCells int) []string {
	var (
		lines []string
		cur   strings.Builder
		width int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		width = 0
	}

	for _, word := range strings.Fields(p) {
		ww := runewidth.StringWidth(word)
		for ww > maxCells {
			if width > 0 {
				flush()
			}
			head := runewidth.Truncate(word, maxCells, "")
			if head == "" {
				// A single rune wider than the line.
				head = string([]rune(word)[:1])
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		if width > 0 && width+1+ww > maxCells {
			flush()
		}
		if width > 0 {
			cur.WriteByte(' ')
			width++
		}
		cur.WriteString(word)
		width += ww
	}
	if width > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
