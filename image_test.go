package gfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/gfx/pixel"
)

func TestRenderImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF})

	tests := []struct {
		Name        string
		Mode        AlphaMode
		Alpha       float64
		Left, Right uint16
	}{
		{"none", AlphaNone, 0, pixel.Red, pixel.White},
		{"image", AlphaImage, 1, pixel.Red, pixel.Navy},
		{"canvas", AlphaCanvas, 0, pixel.Navy, pixel.Navy},
		{"both", AlphaBoth, 1, pixel.Red, pixel.Navy},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			c, _ := NewRGB565(4, 4)
			c.FillScreen(pixel.Navy)
			_ = c.SetAlpha(test.Alpha)
			c.RenderImage(img, 1, 1, test.Mode)
			if v := c.GetPixel(1, 1); v != test.Left {
				it.Errorf("expected left pixel %#04x, got %#04x", test.Left, v)
			}
			if v := c.GetPixel(2, 1); v != test.Right {
				it.Errorf("expected right pixel %#04x, got %#04x", test.Right, v)
			}
		})
	}

	t.Run("mono", func(it *testing.T) {
		g := image.NewGray(image.Rect(0, 0, 2, 2))
		g.SetGray(1, 1, color.Gray{Y: 0xFF})
		c, _ := NewMono(4, 4)
		c.RenderImage(g, 2, 2, AlphaNone)
		if c.GetPixel(3, 3) != 1 || c.GetPixel(2, 2) != 0 {
			it.Error("expected only the white pixel to be set")
		}
	})
}

func TestRenderImageScaled(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 0xFF
		img.Pix[i+3] = 0xFF
	}

	c, _ := NewRGB565(8, 8)
	c.RenderImageScaled(img, image.Rect(2, 2, 6, 6), AlphaNone)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := pixel.Black
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = pixel.Red
			}
			if v := c.GetPixel(x, y); v != want {
				t.Errorf("expected %#04x at (%d,%d), got %#04x", want, x, y, v)
			}
		}
	}
}
