package main

import (
	"image"
	"image/color"
	_ "image/png" // PNG logos
	"os"

	_ "golang.org/x/image/bmp" // BMP logos
	"golang.org/x/image/font/gofont/goregular"

	"github.com/golang/freetype/truetype"

	"github.com/BeatGlow/gfx"
	"github.com/BeatGlow/gfx/font"
	"github.com/BeatGlow/gfx/pixel"
)

const title = "BeatGlow"

type demo struct {
	c      *gfx.Canvas
	depth  int
	fg     uint16
	logo   image.Image
	ttf    *truetype.Font
	offset int
	ball   image.Point
	step   image.Point
}

func newDemo(c *gfx.Canvas, f font.Font, imageFile string) (*demo, error) {
	d := &demo{
		c:     c,
		depth: c.Surface().Depth(),
		ball:  image.Pt(c.Width()/3, c.Height()/3),
		step:  image.Pt(1, 1),
	}
	d.fg = uint16(1<<d.depth - 1)
	c.SetFont(f)

	if d.depth > 1 && c.Height() >= 32 {
		var err error
		if d.ttf, err = gfx.ParseFont(goregular.TTF); err != nil {
			return nil, err
		}
	}
	if imageFile != "" {
		r, err := os.Open(imageFile)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		if d.logo, _, err = image.Decode(r); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// frame draws the next animation frame.
func (d *demo) frame() {
	c := d.c
	c.StartWrite()
	defer c.EndWrite()

	w, h := c.Width(), c.Height()
	d.gradient(w, h)
	c.Rect(0, 0, w, h, d.fg)

	if d.logo != nil {
		c.RenderImageScaled(d.logo, image.Rect(2, 2, w/3, h-2), gfx.AlphaImage)
	}

	d.ball = d.ball.Add(d.step)
	const r = 4
	if d.ball.X-r <= 1 || d.ball.X+r >= w-2 {
		d.step.X = -d.step.X
	}
	if d.ball.Y-r <= 1 || d.ball.Y+r >= h-2 {
		d.step.Y = -d.step.Y
	}
	c.FillCircle(d.ball.X, d.ball.Y, r, d.fg)

	if d.ttf != nil {
		_, _ = c.DrawString(d.ttf, float64(h)/4, 4, h/3, title, d.fg)
	}
	b := c.TextBounds(title, 0, 0)
	c.SetCursor((w-b.Dx())/2, h-b.Dy()-3)
	c.SetTextColorBg(d.fg, 0)
	_, _ = c.WriteString(title)

	d.offset++
}

func (d *demo) gradient(w, h int) {
	c := d.c
	switch d.depth {
	case 1:
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				var v uint16
				if (x+y+d.offset)%4 == 0 {
					v = 1
				}
				c.DrawPixel(x, y, v)
			}
		}
	case 16:
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				c.Set(x, y, color.RGBA{
					R: uint8((x + d.offset) * 255 / w),
					G: uint8(y * 255 / h),
					B: uint8(255 - (x+d.offset)*255/w),
					A: 0xff,
				})
			}
		}
	default:
		for x := 1; x < w-1; x++ {
			level := uint8(((x + d.offset) % w) * 255 / w)
			c.FastVLine(x, 1, h-2, pixel.ColorSample(d.depth, color.Gray{Y: level}))
		}
	}
}
