package draw

import (
	"image"
	"image/color"
	"testing"
)

// recorder is a Pixeler that records every pixel write.
type recorder struct {
	pixels map[image.Point]uint16
	alpha  map[image.Point]uint8
	writes int
	depth  int
	max    int
}

func newRecorder() *recorder {
	return &recorder{
		pixels: make(map[image.Point]uint16),
		alpha:  make(map[image.Point]uint8),
	}
}

func (r *recorder) DrawPixel(x, y int, c uint16) {
	r.pixels[image.Pt(x, y)] = c
	r.writes++
}

func (r *recorder) StartWrite() {
	r.depth++
	r.max = max(r.max, r.depth)
}

func (r *recorder) EndWrite() {
	r.depth--
}

func (r *recorder) has(x, y int) bool {
	_, ok := r.pixels[image.Pt(x, y)]
	return ok
}

// alphaRecorder also accepts pixels with opacity.
type alphaRecorder struct {
	*recorder
}

func (r alphaRecorder) DrawPixelAlpha(x, y int, c uint16, alpha uint8) {
	r.DrawPixel(x, y, c)
	r.alpha[image.Pt(x, y)] = alpha
}

// hliner counts fast runs.
type hliner struct {
	*recorder
	runs int
}

func (h *hliner) FastHLine(x, y, w int, c uint16) {
	h.runs++
	for i := 0; i < w; i++ {
		h.DrawPixel(x+i, y, c)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		Name           string
		X0, Y0, X1, Y1 int
		Want           []image.Point
	}{
		{"point", 3, 3, 3, 3, []image.Point{{3, 3}}},
		{"horizontal", 4, 1, 1, 1, []image.Point{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical", 0, 2, 0, 0, []image.Point{{0, 0}, {0, 1}, {0, 2}}},
		{"diagonal", 0, 0, 3, 3, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"shallow", 0, 0, 4, 2, []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			r := newRecorder()
			Line(r, test.X0, test.Y0, test.X1, test.Y1, 1)
			if len(r.pixels) != len(test.Want) {
				it.Errorf("expected %d pixels, got %d: %v", len(test.Want), len(r.pixels), r.pixels)
			}
			for _, p := range test.Want {
				if !r.has(p.X, p.Y) {
					it.Errorf("expected pixel %s to be drawn", p)
				}
			}
			if r.depth != 0 {
				it.Errorf("expected balanced writes, depth is %d", r.depth)
			}
		})
	}
}

func TestLineUsesHLiner(t *testing.T) {
	h := &hliner{recorder: newRecorder()}
	Line(h, 0, 0, 9, 0, 1)
	if h.runs != 1 {
		t.Errorf("expected 1 fast run, got %d", h.runs)
	}
	if len(h.pixels) != 10 {
		t.Errorf("expected 10 pixels, got %d", len(h.pixels))
	}
}

func TestRect(t *testing.T) {
	r := newRecorder()
	Rect(r, 0, 0, 4, 3, 1)
	if r.writes != 10 {
		t.Errorf("expected 10 writes without double drawn corners, got %d", r.writes)
	}
	if r.has(1, 1) {
		t.Error("expected rectangle to be hollow")
	}

	r = newRecorder()
	Rect(r, 0, 0, 5, 1, 1)
	if len(r.pixels) != 5 || r.has(0, 1) {
		t.Errorf("expected a single row of 5 pixels, got %v", r.pixels)
	}
}

func TestCircle(t *testing.T) {
	r := newRecorder()
	Circle(r, 10, 10, 0, 1)
	if len(r.pixels) != 1 || !r.has(10, 10) {
		t.Errorf("expected a single pixel for radius 0, got %v", r.pixels)
	}

	r = newRecorder()
	Circle(r, 10, 10, 5, 1)
	for _, p := range []image.Point{{10, 5}, {10, 15}, {5, 10}, {15, 10}} {
		if !r.has(p.X, p.Y) {
			t.Errorf("expected pixel %s on the circle", p)
		}
	}
	for p := range r.pixels {
		m := image.Pt(20-p.X, p.Y)
		if !r.has(m.X, m.Y) {
			t.Errorf("expected circle to be symmetric, %s has no mirror %s", p, m)
		}
	}
	if r.has(10, 10) {
		t.Error("expected circle to be hollow")
	}
}

func TestFillCircle(t *testing.T) {
	r := newRecorder()
	FillCircle(r, 2, 2, 2, 1)
	if len(r.pixels) != 21 {
		t.Errorf("expected 21 pixels, got %d", len(r.pixels))
	}
	if r.writes != 21 {
		t.Errorf("expected no pixel to be drawn twice, got %d writes", r.writes)
	}
	for _, p := range []image.Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}} {
		if r.has(p.X, p.Y) {
			t.Errorf("expected corner %s to be empty", p)
		}
	}
}

func TestRoundRect(t *testing.T) {
	r := newRecorder()
	RoundRect(r, 0, 0, 10, 8, 100, 1)
	if r.has(0, 0) || r.has(9, 7) {
		t.Error("expected corners to be rounded")
	}
	if r.depth != 0 || r.max != 1 {
		t.Errorf("expected a single balanced batch, got depth %d max %d", r.depth, r.max)
	}

	r = newRecorder()
	FillRoundRect(r, 0, 0, 10, 8, 2, 1)
	if r.has(0, 0) {
		t.Error("expected corners to be rounded")
	}
	if !r.has(5, 4) || !r.has(0, 4) || !r.has(9, 4) {
		t.Error("expected interior to be filled")
	}
}

func TestFillTriangle(t *testing.T) {
	t.Run("flat", func(it *testing.T) {
		h := &hliner{recorder: newRecorder()}
		FillTriangle(h, 5, 3, 1, 3, 9, 3, 1)
		if h.runs != 1 {
			it.Errorf("expected a single run, got %d", h.runs)
		}
		if len(h.pixels) != 9 {
			it.Errorf("expected 9 pixels, got %d", len(h.pixels))
		}
	})
	t.Run("right-angle", func(it *testing.T) {
		r := newRecorder()
		FillTriangle(r, 0, 4, 0, 0, 4, 0, 1)
		if len(r.pixels) != 15 {
			it.Errorf("expected 15 pixels, got %d", len(r.pixels))
		}
		if !r.has(0, 4) || r.has(1, 4) {
			it.Error("expected the bottom row to hold only the apex")
		}
	})
}

func TestBitmap(t *testing.T) {
	r := newRecorder()
	Bitmap(r, 1, 1, []byte{0xA0, 0x40}, 3, 2, 7)
	want := map[image.Point]uint16{{1, 1}: 7, {3, 1}: 7, {2, 2}: 7}
	if len(r.pixels) != len(want) {
		t.Errorf("expected %v, got %v", want, r.pixels)
	}
	for p, c := range want {
		if r.pixels[p] != c {
			t.Errorf("expected pixel %s to be %d, got %d", p, c, r.pixels[p])
		}
	}

	r = newRecorder()
	BitmapBg(r, 0, 0, []byte{0x80}, 2, 1, 7, 3)
	if r.pixels[image.Pt(0, 0)] != 7 || r.pixels[image.Pt(1, 0)] != 3 {
		t.Errorf("expected foreground and background, got %v", r.pixels)
	}

	r = newRecorder()
	XBitmap(r, 0, 0, []byte{0x05}, 3, 1, 7)
	if !r.has(0, 0) || r.has(1, 0) || !r.has(2, 0) {
		t.Errorf("expected LSB first pixels, got %v", r.pixels)
	}

	r = newRecorder()
	Bitmap(r, 0, 0, []byte{0xFF}, 8, 4, 1)
	if len(r.pixels) != 8 {
		t.Errorf("expected rows past the end of the bitmap to be skipped, got %d pixels", len(r.pixels))
	}
}

func TestGrayscaleBitmap(t *testing.T) {
	r := newRecorder()
	GrayscaleBitmapMask(r, 0, 0, []byte{1, 2, 3, 4}, []byte{0x40, 0x80}, 2, 2)
	if len(r.pixels) != 2 || r.pixels[image.Pt(1, 0)] != 2 || r.pixels[image.Pt(0, 1)] != 3 {
		t.Errorf("expected masked pixels, got %v", r.pixels)
	}

	r = newRecorder()
	RGBBitmap(r, 0, 0, []uint16{0xF800, 0x07E0}, 2, 1)
	if r.pixels[image.Pt(0, 0)] != 0xF800 || r.pixels[image.Pt(1, 0)] != 0x07E0 {
		t.Errorf("expected colors to be copied, got %v", r.pixels)
	}

	r = newRecorder()
	RGBBitmapMask(r, 0, 0, []uint16{0xF800, 0x07E0}, []byte{0x80}, 2, 1)
	if len(r.pixels) != 1 || !r.has(0, 0) {
		t.Errorf("expected only the masked pixel, got %v", r.pixels)
	}
}

func TestEllipse(t *testing.T) {
	r := newRecorder()
	Ellipse(r, 2, 2, 2, 2, 1)
	for _, p := range []image.Point{{2, 0}, {2, 4}, {0, 2}, {4, 2}} {
		if !r.has(p.X, p.Y) {
			t.Errorf("expected pixel %s on the ellipse", p)
		}
	}
	if r.has(2, 2) {
		t.Error("expected ellipse to be hollow")
	}
}

func TestLineAA(t *testing.T) {
	r := alphaRecorder{newRecorder()}
	LineAA(r, 0, 0, 3, 3, 1)
	for i := 0; i <= 3; i++ {
		if a, ok := r.alpha[image.Pt(i, i)]; !ok || a != 0xFF {
			t.Errorf("expected pixel (%d,%d) to be opaque, got %d", i, i, a)
		}
	}
	if a, ok := r.alpha[image.Pt(0, 1)]; !ok || a == 0 || a == 0xFF {
		t.Errorf("expected pixel (0,1) to be partially covered, got %d", a)
	}
}

func TestThickLine(t *testing.T) {
	thin := newRecorder()
	Line(thin, 2, 5, 10, 5, 1)

	thick := newRecorder()
	ThickLine(thick, 2, 5, 10, 5, 3, 1)
	for x := 2; x <= 10; x++ {
		if !thick.has(x, 5) {
			t.Errorf("expected pixel (%d,5) to be drawn", x)
		}
	}
	if len(thick.pixels) <= len(thin.pixels) {
		t.Errorf("expected a thick line to cover more than %d pixels, got %d", len(thin.pixels), len(thick.pixels))
	}
}

func TestTarget(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	target := Target{
		Image: img,
		Color: func(v uint16) color.Color { return color.Gray{Y: uint8(v)} },
	}
	FillRect(target, 1, 1, 2, 2, 0x80)
	if v := img.GrayAt(2, 2).Y; v != 0x80 {
		t.Errorf("expected pixel to be %#02x, got %#02x", 0x80, v)
	}
	if v := img.GrayAt(0, 0).Y; v != 0 {
		t.Errorf("expected pixel outside of the rectangle to be untouched, got %#02x", v)
	}
}
