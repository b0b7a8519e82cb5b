package pixel

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// formats lists every surface with the size of its backing buffer.
var formats = []struct {
	name  string
	new   func(w, h int) Surface
	model color.Model
	depth int
	size  func(w, h int) int
}{
	{
		"mono rows", func(w, h int) Surface { return NewMonoImage(w, h) }, MonoModel, 1,
		func(w, h int) int { return (w + 7) / 8 * h },
	},
	{
		"mono pages", func(w, h int) Surface { return NewMonoVerticalLSBImage(w, h) }, MonoModel, 1,
		func(w, h int) int { return (h + 7) / 8 * w },
	},
	{
		"gray4", func(w, h int) Surface { return NewGray4Image(w, h) }, Gray4Model, 4,
		func(w, h int) int { return (w + 1) / 2 * h },
	},
	{
		"gray8", func(w, h int) Surface { return NewGray8Image(w, h) }, Gray8Model, 8,
		func(w, h int) int { return w * h },
	},
	{
		"rgb565", func(w, h int) Surface { return NewRGB565Image(w, h) }, CRGB16Model, 16,
		func(w, h int) int { return w * h * 2 },
	},
}

// pattern is a sample that differs between neighbouring pixels.
func pattern(depth, x, y int) uint16 {
	max := uint16(1<<depth - 1)
	return uint16(x*7+y*13+1) & max
}

func TestSurfaceLayout(t *testing.T) {
	sizes := []image.Point{{1, 1}, {3, 9}, {128, 64}, {256, 64}, {240, 7}}
	for _, format := range formats {
		t.Run(format.name, func(it *testing.T) {
			for _, size := range sizes {
				s := format.new(size.X, size.Y)
				if b := s.Bounds(); !b.Size().Eq(size) {
					it.Errorf("%s: expected bounds of size %s, got %s", size, size, b)
				}
				if s.Depth() != format.depth {
					it.Errorf("%s: expected depth %d, got %d", size, format.depth, s.Depth())
				}
				if s.ColorModel() != format.model {
					it.Errorf("%s: expected color model %T, got %T", size, format.model, s.ColorModel())
				}
				if l, want := len(s.Bytes()), format.size(size.X, size.Y); l != want {
					it.Errorf("%s: expected %d bytes, got %d", size, want, l)
				}
			}
		})
	}
}

func TestSurfaceSamples(t *testing.T) {
	const w, h = 19, 11
	for _, format := range formats {
		t.Run(format.name, func(it *testing.T) {
			s := format.new(w, h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					s.SetSample(x, y, pattern(format.depth, x, y))
				}
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					want := pattern(format.depth, x, y)
					if v := s.Sample(x, y); v != want {
						it.Fatalf("sample (%d,%d): expected %#x, got %#x", x, y, want, v)
					}
					if c := s.At(x, y); c != SampleColor(format.depth, want) {
						it.Fatalf("color (%d,%d): expected %v, got %v", x, y, SampleColor(format.depth, want), c)
					}
				}
			}

			it.Run("colors", func(itt *testing.T) {
				v := pattern(format.depth, 4, 2)
				s.Set(0, 0, SampleColor(format.depth, v))
				if got := s.Sample(0, 0); got != v {
					itt.Errorf("expected sample %#x after setting its color, got %#x", v, got)
				}
			})

			it.Run("out of bounds", func(itt *testing.T) {
				before := bytes.Clone(s.Bytes())
				for _, p := range []image.Point{{-1, 0}, {0, -1}, {w, 0}, {0, h}, {w + 8, h + 8}} {
					s.SetSample(p.X, p.Y, 1)
					s.Set(p.X, p.Y, color.White)
					if v := s.Sample(p.X, p.Y); v != 0 {
						itt.Errorf("expected sample 0 at %s, got %#x", p, v)
					}
					if c := s.At(p.X, p.Y); c != color.Transparent {
						itt.Errorf("expected transparent at %s, got %v", p, c)
					}
				}
				if !bytes.Equal(before, s.Bytes()) {
					itt.Error("expected writes outside of the surface to be dropped")
				}
			})

			it.Run("fill", func(itt *testing.T) {
				v := uint16(1<<format.depth - 1)
				s.FillSamples(v)
				for _, p := range []image.Point{{0, 0}, {w - 1, 0}, {7, 5}, {w - 1, h - 1}} {
					if got := s.Sample(p.X, p.Y); got != v {
						itt.Errorf("expected %#x at %s, got %#x", v, p, got)
					}
				}
				s.Fill(SampleColor(format.depth, 0))
				if got := s.Sample(3, 3); got != 0 {
					itt.Errorf("expected fill with the zero color to clear, got %#x", got)
				}
			})

			it.Run("clear", func(itt *testing.T) {
				s.FillSamples(1)
				s.Clear()
				if !bytes.Equal(s.Bytes(), make([]byte, format.size(w, h))) {
					itt.Error("expected all bytes cleared")
				}
			})
		})
	}
}
