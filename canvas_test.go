package gfx

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/BeatGlow/gfx/pixel"
)

func TestNew(t *testing.T) {
	for _, size := range [][2]int{{0, 8}, {8, 0}, {-1, 8}} {
		if _, err := NewMono(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize for %dx%d, got %v", size[0], size[1], err)
		}
	}
	if _, err := New(nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for a nil surface, got %v", err)
	}

	c, err := NewRGB565(32, 16)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 32 || c.Height() != 16 {
		t.Errorf("expected 32x16, got %dx%d", c.Width(), c.Height())
	}
	if w := c.Window(); w != (Window{0, 0, 31, 15}) {
		t.Errorf("expected a new canvas to be dirty, got %+v", w)
	}
}

func TestStartWriteWithoutSurface(t *testing.T) {
	defer func() {
		if err, ok := recover().(error); !ok || !errors.Is(err, ErrUnsupported) {
			t.Errorf("expected panic with ErrUnsupported, got %v", err)
		}
	}()
	var c Canvas
	c.DrawPixel(0, 0, 1)
}

func TestRotation(t *testing.T) {
	for _, r := range []Rotation{NoRotation, Rotate90, Rotate180, Rotate270} {
		t.Run(r.String(), func(it *testing.T) {
			c, err := NewMonoVertical(16, 24)
			if err != nil {
				it.Fatal(err)
			}
			c.SetRotation(r)
			if r.Swapped() && (c.Width() != 24 || c.Height() != 16) {
				it.Fatalf("expected swapped size 24x16, got %dx%d", c.Width(), c.Height())
			}

			for _, p := range [][2]int{{3, 5}, {0, 0}, {c.Width() - 1, c.Height() - 1}, {c.Width() - 1, 0}} {
				c.Clear()
				c.DrawPixel(p[0], p[1], 1)
				if v := c.GetPixel(p[0], p[1]); v != 1 {
					it.Errorf("expected pixel at %v to be set", p)
				}
				var n int
				for _, b := range c.Surface().Bytes() {
					for ; b != 0; b &= b - 1 {
						n++
					}
				}
				if n != 1 {
					it.Errorf("expected one bit set after drawing %v, got %d", p, n)
				}

				w, h := c.physicalSize()
				px, py := r.toPhysical(p[0], p[1], w, h)
				if c.Surface().Sample(px, py) != 1 {
					it.Errorf("expected physical pixel (%d,%d) to be set", px, py)
				}
				if x, y := r.toLogical(px, py, w, h); x != p[0] || y != p[1] {
					it.Errorf("expected (%d,%d) to map back to %v, got (%d,%d)", px, py, p, x, y)
				}
			}
		})
	}
}

func TestRotatedRuns(t *testing.T) {
	surfaces := map[string]func() pixel.Surface{
		"mono":          func() pixel.Surface { return pixel.NewMonoImage(21, 13) },
		"mono vertical": func() pixel.Surface { return pixel.NewMonoVerticalLSBImage(21, 13) },
		"gray4":         func() pixel.Surface { return pixel.NewGray4Image(21, 13) },
		"rgb565":        func() pixel.Surface { return pixel.NewRGB565Image(21, 13) },
	}
	for name, newSurface := range surfaces {
		for _, r := range []Rotation{NoRotation, Rotate90, Rotate180, Rotate270} {
			t.Run(name+" "+r.String(), func(it *testing.T) {
				fast, _ := New(newSurface())
				slow, _ := New(newSurface())
				fast.SetRotation(r)
				slow.SetRotation(r)

				rnd := rand.New(rand.NewSource(int64(r)))
				for i := 0; i < 200; i++ {
					var (
						x = rnd.Intn(fast.Width()+10) - 5
						y = rnd.Intn(fast.Height()+10) - 5
						l = rnd.Intn(40) - 20
						v = uint16(rnd.Intn(2))
					)
					if fast.Surface().Depth() > 1 {
						v = uint16(rnd.Intn(16))
					}
					if i%2 == 0 {
						fast.FastHLine(x, y, l, v)
						for _, p := range reference(x, l) {
							slow.DrawPixel(p, y, v)
						}
					} else {
						fast.FastVLine(x, y, l, v)
						for _, p := range reference(y, l) {
							slow.DrawPixel(x, p, v)
						}
					}
				}
				if !bytes.Equal(fast.Surface().Bytes(), slow.Surface().Bytes()) {
					it.Error("expected fast runs to match pixel by pixel drawing")
				}
			})
		}
	}
}

// reference lists the positions covered by a run of length l starting at p.
func reference(p, l int) (out []int) {
	if l < 0 {
		l = -l
		p -= l - 1
	}
	for i := 0; i < l; i++ {
		out = append(out, p+i)
	}
	return
}

func TestFastHLineClip(t *testing.T) {
	c, _ := NewMono(8, 1)
	c.FastHLine(-5, 0, 10, 1)
	if v := c.Surface().Bytes()[0]; v != 0xF8 {
		t.Errorf("expected columns 0-4 set (%#08b), got %#08b", 0xF8, v)
	}
	c.Clear()
	c.FastHLine(5, 0, -10, 1)
	if v := c.Surface().Bytes()[0]; v != 0xFC {
		t.Errorf("expected columns 0-5 set (%#08b), got %#08b", 0xFC, v)
	}
}

func TestAlpha(t *testing.T) {
	c, _ := NewRGB565(4, 4)
	c.FillScreen(pixel.Navy)
	c.TakeWindow()

	if err := c.SetAlpha(1.5); !errors.Is(err, ErrInvalidAlpha) {
		t.Errorf("expected ErrInvalidAlpha, got %v", err)
	}

	t.Run("opaque", func(it *testing.T) {
		_ = c.SetAlpha(1)
		c.DrawPixel(1, 1, pixel.Yellow)
		if v := c.GetPixel(1, 1); v != pixel.Yellow {
			it.Errorf("expected %#04x, got %#04x", pixel.Yellow, v)
		}
	})

	t.Run("transparent", func(it *testing.T) {
		c.TakeWindow()
		before := c.Snapshot()
		_ = c.SetAlpha(0)
		c.DrawPixel(2, 2, pixel.Yellow)
		c.FastHLine(0, 3, 4, pixel.Yellow)
		if !bytes.Equal(before, c.Snapshot()) {
			it.Error("expected alpha 0 to leave the surface unchanged")
		}
		if w := c.Window(); !w.Empty() {
			it.Errorf("expected no dirty pixels, got %+v", w)
		}
	})

	t.Run("blend", func(it *testing.T) {
		_ = c.SetAlpha(1)
		c.DrawPixel(0, 0, pixel.Black)
		c.DrawPixelAlpha(0, 0, pixel.White, 0x80)
		if v, want := c.GetPixel(0, 0), pixel.Blend565(pixel.White, pixel.Black, 0x80); v != want {
			it.Errorf("expected %#04x, got %#04x", want, v)
		}
	})

	t.Run("override", func(it *testing.T) {
		_ = c.SetAlpha(0)
		c.DrawPixelAlpha(3, 0, pixel.White, 0xFF)
		if v := c.GetPixel(3, 0); v != pixel.White {
			it.Errorf("expected an opaque pixel on a transparent canvas, got %#04x", v)
		}
		_ = c.SetAlpha(0.5)
		c.DrawPixelAlpha(3, 1, pixel.White, 0xFF)
		if v := c.GetPixel(3, 1); v != pixel.White {
			it.Errorf("expected the canvas alpha to be replaced, got %#04x", v)
		}
	})

	t.Run("antialiased line", func(it *testing.T) {
		l, _ := NewRGB565(8, 8)
		l.SetAntialias(true)
		_ = l.SetAlpha(0)
		l.TakeWindow()
		l.Line(0, 0, 7, 3, pixel.White)
		if w := l.Window(); !w.Empty() {
			it.Errorf("expected a transparent canvas to hide antialiased lines, got %+v", w)
		}
	})

	t.Run("mono threshold", func(it *testing.T) {
		m, _ := NewMono(8, 1)
		_ = m.SetAlpha(0.25)
		m.DrawPixel(0, 0, 1)
		_ = m.SetAlpha(0.75)
		m.DrawPixel(1, 0, 1)
		if v := m.Surface().Bytes()[0]; v != 0x40 {
			it.Errorf("expected only the second pixel set, got %#08b", v)
		}
	})
}

func TestPenWidth(t *testing.T) {
	c, _ := NewMono(8, 8)
	if err := c.SetPenWidth(0); !errors.Is(err, ErrInvalidPenWidth) {
		t.Errorf("expected ErrInvalidPenWidth, got %v", err)
	}
	if err := c.SetPenWidth(3); err != nil || c.PenWidth() != 3 {
		t.Errorf("expected pen width 3, got %g (%v)", c.PenWidth(), err)
	}
}

func TestWindow(t *testing.T) {
	c, _ := NewMono(16, 16)
	c.TakeWindow()
	if w := c.Window(); !w.Empty() || !w.Rect().Empty() {
		t.Fatalf("expected empty window, got %+v", w)
	}

	c.DrawPixel(3, 4, 1)
	if w := c.Window(); w != (Window{3, 4, 3, 4}) {
		t.Errorf("expected (3,4,3,4), got %+v", w)
	}
	c.DrawPixel(1, 9, 1)
	if w := c.Window(); w != (Window{1, 4, 3, 9}) {
		t.Errorf("expected (1,4,3,9), got %+v", w)
	}

	r := c.TakeWindow()
	if r.Min.X != 1 || r.Min.Y != 4 || r.Max.X != 4 || r.Max.Y != 10 {
		t.Errorf("expected rectangle (1,4)-(4,10), got %v", r)
	}

	t.Run("out of bounds", func(it *testing.T) {
		c.DrawPixel(-1, 0, 1)
		c.DrawPixel(16, 0, 1)
		c.FastVLine(3, 20, 5, 1)
		if w := c.Window(); !w.Empty() {
			it.Errorf("expected clipped writes to leave the window empty, got %+v", w)
		}
	})

	t.Run("rotated", func(it *testing.T) {
		c.SetRotation(Rotate90)
		c.DrawPixel(0, 0, 1)
		if w := c.Window(); w != (Window{15, 0, 15, 0}) {
			it.Errorf("expected physical (15,0), got %+v", w)
		}
		c.FastHLine(0, 1, 4, 1)
		if w := c.Window(); w != (Window{14, 0, 15, 3}) {
			it.Errorf("expected run ends marked, got %+v", w)
		}
	})
}

func TestWriteBatch(t *testing.T) {
	c, _ := NewMono(16, 16)
	var n int
	c.OnEndWrite(func() { n++ })

	c.StartWrite()
	c.DrawPixel(0, 0, 1)
	c.FillRect(1, 1, 4, 4, 1)
	c.Line(0, 0, 15, 15, 1)
	if n != 0 {
		t.Errorf("expected no batch end inside an open batch, got %d", n)
	}
	c.EndWrite()
	if n != 1 {
		t.Errorf("expected one batch end, got %d", n)
	}

	c.Circle(8, 8, 4, 1)
	if n != 2 {
		t.Errorf("expected a shape to end one batch, got %d batches", n)
	}

	c.EndWrite()
	if n != 2 {
		t.Errorf("expected unbalanced EndWrite to be ignored, got %d", n)
	}
}

func TestFillRect(t *testing.T) {
	c, _ := NewGray8(8, 8)
	c.FillRect(5, 5, -3, -2, 9)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if x >= 3 && x <= 5 && y >= 4 && y <= 5 {
				want = 9
			}
			if v := c.GetPixel(x, y); v != want {
				t.Errorf("expected %d at (%d,%d), got %d", want, x, y, v)
			}
		}
	}
}

func TestLinePen(t *testing.T) {
	thin, _ := NewMono(16, 16)
	thin.Line(0, 8, 15, 8, 1)

	thick, _ := NewMono(16, 16)
	_ = thick.SetPenWidth(3)
	thick.Line(0, 8, 15, 8, 1)

	count := func(c *Canvas) (n int) {
		for y := 0; y < c.Height(); y++ {
			for x := 0; x < c.Width(); x++ {
				n += int(c.GetPixel(x, y))
			}
		}
		return
	}
	if n := count(thin); n != 16 {
		t.Errorf("expected 16 pixels for a thin line, got %d", n)
	}
	if count(thick) <= count(thin) {
		t.Error("expected a thick line to cover more pixels")
	}
}
