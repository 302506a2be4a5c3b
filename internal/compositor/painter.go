package compositor

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// DefaultPalette cycles fills by depth.
var DefaultPalette = []color.Color{
	color.RGBA{0x4c, 0x72, 0xb0, 0xff},
	color.RGBA{0xdd, 0x84, 0x52, 0xff},
	color.RGBA{0x55, 0xa8, 0x68, 0xff},
	color.RGBA{0xc4, 0x4e, 0x52, 0xff},
	color.RGBA{0x81, 0x72, 0xb3, 0xff},
	color.RGBA{0x93, 0x78, 0x60, 0xff},
}

// Painter rasterizes a Tree.
type Painter struct {
	Background color.Color
	Palette    []color.Color
	Outline    float64 // stroke width; 0 disables outlines
	Labels     bool    // draw each visual's name in its top-left corner
}

// DefaultPainter paints on white with outlines and labels.
func DefaultPainter() Painter {
	return Painter{
		Background: color.White,
		Palette:    DefaultPalette,
		Outline:    1,
		Labels:     true,
	}
}

// Paint draws t onto a width x height image.
func (p Painter) Paint(t *Tree, width, height int) image.Image {
	return p.draw(t, width, height).Image()
}

// EncodePNG paints t and writes it to w as PNG.
func (p Painter) EncodePNG(w io.Writer, t *Tree, width, height int) error {
	if err := p.draw(t, width, height).EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (p Painter) draw(t *Tree, width, height int) *gg.Context {
	dc := gg.NewContext(max(width, 1), max(height, 1))
	if p.Background != nil {
		dc.SetColor(p.Background)
		dc.Clear()
	}
	palette := p.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}

	t.Walk(func(v *Visual, depth int) {
		r := v.Clip()
		if r.IsEmpty() {
			return
		}
		dc.SetColor(palette[depth%len(palette)])
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()

		if p.Outline > 0 {
			dc.SetLineWidth(p.Outline)
			dc.SetRGB(0.1, 0.1, 0.1)
			dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
			dc.Stroke()
		}
		if p.Labels && v.name != "" {
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(v.name, r.X+2, r.Y+2, 0, 1)
		}
	})
	return dc
}
