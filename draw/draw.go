package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Drawer is an alias for [image/draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Pixeler is the minimal drawing target, every primitive in this package reduces to DrawPixel.
//
// Targets may implement any of [HLiner], [VLiner], [RectFiller], [Batcher] and [AlphaPixeler]
// to provide faster or richer versions of the same operations.
type Pixeler interface {
	DrawPixel(x, y int, c uint16)
}

// HLiner can draw horizontal runs.
type HLiner interface {
	FastHLine(x, y, w int, c uint16)
}

// VLiner can draw vertical runs.
type VLiner interface {
	FastVLine(x, y, h int, c uint16)
}

// RectFiller can fill rectangles.
type RectFiller interface {
	FillRect(x, y, w, h int, c uint16)
}

// Batcher brackets a group of writes.
type Batcher interface {
	StartWrite()
	EndWrite()
}

// AlphaPixeler can draw a pixel with an extra opacity, 0xFF is opaque.
type AlphaPixeler interface {
	DrawPixelAlpha(x, y int, c uint16, alpha uint8)
}

// HLine draws a horizontal run of w pixels, a negative w runs to the left.
func HLine(dst Pixeler, x, y, w int, c uint16) {
	if l, ok := dst.(HLiner); ok {
		l.FastHLine(x, y, w, c)
		return
	}
	if w < 0 {
		w = -w
		x -= w - 1
	}
	for i := 0; i < w; i++ {
		dst.DrawPixel(x+i, y, c)
	}
}

// VLine draws a vertical run of h pixels, a negative h runs upwards.
func VLine(dst Pixeler, x, y, h int, c uint16) {
	if l, ok := dst.(VLiner); ok {
		l.FastVLine(x, y, h, c)
		return
	}
	if h < 0 {
		h = -h
		y -= h - 1
	}
	for i := 0; i < h; i++ {
		dst.DrawPixel(x, y+i, c)
	}
}

// FillRect fills the w by h rectangle at (x, y).
func FillRect(dst Pixeler, x, y, w, h int, c uint16) {
	if f, ok := dst.(RectFiller); ok {
		f.FillRect(x, y, w, h, c)
		return
	}
	begin(dst)
	if w < 0 {
		w = -w
		x -= w - 1
	}
	for i := x; i < x+w; i++ {
		VLine(dst, i, y, h, c)
	}
	end(dst)
}

func begin(dst Pixeler) {
	if b, ok := dst.(Batcher); ok {
		b.StartWrite()
	}
}

func end(dst Pixeler) {
	if b, ok := dst.(Batcher); ok {
		b.EndWrite()
	}
}

// Target adapts an [Image] to a [Pixeler].
type Target struct {
	Image

	// Color converts a sample to a color, nil uses [color.Gray16].
	Color func(uint16) color.Color
}

func (t Target) DrawPixel(x, y int, c uint16) {
	if t.Color == nil {
		t.Set(x, y, color.Gray16{Y: c})
		return
	}
	t.Set(x, y, t.Color(c))
}

var _ Pixeler = Target{}
