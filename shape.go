package gfx

import "github.com/BeatGlow/gfx/draw"

// Line draws a line from (x0, y0) to (x1, y1) with the current pen.
func (c *Canvas) Line(x0, y0, x1, y1 int, v uint16) {
	switch {
	case c.penWidth > 1:
		draw.ThickLine(coverage{c}, x0, y0, x1, y1, c.penWidth, v)
	case c.antialias:
		draw.LineAA(coverage{c}, x0, y0, x1, y1, v)
	default:
		draw.Line(c, x0, y0, x1, y1, v)
	}
}

// Rect draws the outline of the w by h rectangle at (x, y).
func (c *Canvas) Rect(x, y, w, h int, v uint16) {
	draw.Rect(c, x, y, w, h, v)
}

// RoundRect draws a rectangle outline with rounded corners.
func (c *Canvas) RoundRect(x, y, w, h, r int, v uint16) {
	draw.RoundRect(c, x, y, w, h, r, v)
}

// FillRoundRect fills a rectangle with rounded corners.
func (c *Canvas) FillRoundRect(x, y, w, h, r int, v uint16) {
	draw.FillRoundRect(c, x, y, w, h, r, v)
}

// Circle draws a circle outline centered at (x, y).
func (c *Canvas) Circle(x, y, r int, v uint16) {
	draw.Circle(c, x, y, r, v)
}

// FillCircle fills a circle centered at (x, y).
func (c *Canvas) FillCircle(x, y, r int, v uint16) {
	draw.FillCircle(c, x, y, r, v)
}

// Ellipse draws an ellipse outline centered at (x, y) with radii a and b.
func (c *Canvas) Ellipse(x, y, a, b int, v uint16) {
	draw.Ellipse(c, x, y, a, b, v)
}

// Triangle draws a triangle outline.
func (c *Canvas) Triangle(x0, y0, x1, y1, x2, y2 int, v uint16) {
	draw.Triangle(c, x0, y0, x1, y1, x2, y2, v)
}

// FillTriangle fills a triangle.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, v uint16) {
	draw.FillTriangle(c, x0, y0, x1, y1, x2, y2, v)
}

// Bitmap draws the set bits of a 1-bit MSB-first bitmap, clear bits are transparent.
func (c *Canvas) Bitmap(x, y int, bitmap []byte, w, h int, v uint16) {
	draw.Bitmap(c, x, y, bitmap, w, h, v)
}

// BitmapBg draws a 1-bit MSB-first bitmap with clear bits in bg.
func (c *Canvas) BitmapBg(x, y int, bitmap []byte, w, h int, v, bg uint16) {
	draw.BitmapBg(c, x, y, bitmap, w, h, v, bg)
}

// XBitmap draws the set bits of a 1-bit LSB-first (XBM) bitmap.
func (c *Canvas) XBitmap(x, y int, bitmap []byte, w, h int, v uint16) {
	draw.XBitmap(c, x, y, bitmap, w, h, v)
}

// GrayscaleBitmap draws an 8-bit bitmap, samples are written as they are.
func (c *Canvas) GrayscaleBitmap(x, y int, bitmap []byte, w, h int) {
	draw.GrayscaleBitmap(c, x, y, bitmap, w, h)
}

// RGBBitmap draws a 16-bit bitmap.
func (c *Canvas) RGBBitmap(x, y int, bitmap []uint16, w, h int) {
	draw.RGBBitmap(c, x, y, bitmap, w, h)
}
