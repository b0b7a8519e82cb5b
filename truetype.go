package gfx

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"

	"github.com/BeatGlow/gfx/pixel"
)

// ParseFont parses a TrueType font.
func ParseFont(data []byte) (*truetype.Font, error) {
	f, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("gfx: parse font: %w", err)
	}
	return f, nil
}

// DrawString draws s in a TrueType font of size points with the pen on the baseline at
// logical (x, y). The returned point is the pen after the last glyph.
//
// Coverage is composited through the canvas color model, so low depth canvases threshold
// the antialiased edges.
func (c *Canvas) DrawString(f *truetype.Font, size float64, x, y int, s string, v uint16) (image.Point, error) {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(c.Bounds())
	ctx.SetDst(c)
	ctx.SetSrc(image.NewUniform(pixel.SampleColor(c.surface.Depth(), v)))

	c.StartWrite()
	defer c.EndWrite()

	pt, err := ctx.DrawString(s, freetype.Pt(x, y))
	if err != nil {
		return image.Pt(x, y), fmt.Errorf("gfx: draw string: %w", err)
	}
	return image.Pt(pt.X.Round(), pt.Y.Round()), nil
}
