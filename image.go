package gfx

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/gfx/pixel"
)

// AlphaMode selects the opacity sources used when rendering images.
type AlphaMode uint8

// Alpha modes, AlphaBoth multiplies the canvas alpha with the image alpha.
const (
	AlphaNone AlphaMode = iota
	AlphaCanvas
	AlphaImage
	AlphaBoth
)

func (m AlphaMode) String() string {
	switch m {
	case AlphaCanvas:
		return "canvas"
	case AlphaImage:
		return "image"
	case AlphaBoth:
		return "both"
	default:
		return "none"
	}
}

// RenderImage draws img with its top left corner at logical (x, y).
func (c *Canvas) RenderImage(img image.Image, x, y int, mode AlphaMode) {
	if img == nil {
		return
	}
	var (
		b         = img.Bounds()
		depth     = c.surface.Depth()
		useImage  = mode&AlphaImage != 0
		useCanvas = mode&AlphaCanvas != 0
		base      = uint8(0xFF)
	)
	if useCanvas {
		base = c.alpha
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		useImage = false
	}

	c.StartWrite()
	defer c.EndWrite()

	for j := b.Min.Y; j < b.Max.Y; j++ {
		for i := b.Min.X; i < b.Max.X; i++ {
			p := color.NRGBAModel.Convert(img.At(i, j)).(color.NRGBA)

			alpha := base
			if useImage {
				if useCanvas {
					alpha = uint8(uint16(c.alpha) * uint16(p.A) / 0xFF)
				} else {
					alpha = p.A
				}
			}

			var v uint16
			if depth == 16 {
				v = pixel.RGB565(p.R, p.G, p.B)
			} else {
				v = pixel.ColorSample(depth, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
			}
			c.writePixel(x+i-b.Min.X, y+j-b.Min.Y, v, alpha)
		}
	}
}

// RenderImageScaled scales img into the logical rectangle r and draws it.
func (c *Canvas) RenderImageScaled(img image.Image, r image.Rectangle, mode AlphaMode) {
	if img == nil || r.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	c.RenderImage(scaled, r.Min.X, r.Min.Y, mode)
}
