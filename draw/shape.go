package draw

// Corner selectors for [CircleHelper] and [FillCircleHelper].
const (
	TopLeft     = 0x1
	TopRight    = 0x2
	BottomRight = 0x4
	BottomLeft  = 0x8
)

// Line draws a line between (x0, y0) and (x1, y1), both ends included.
func Line(dst Pixeler, x0, y0, x1, y1 int, c uint16) {
	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		VLine(dst, x0, y0, y1-y0+1, c)
	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		HLine(dst, x0, y0, x1-x0+1, c)
	default:
		begin(dst)
		bresenham(dst, x0, y0, x1, y1, c)
		end(dst)
	}
}

// Generalized with integer error terms, steps x and y independently.
func bresenham(dst Pixeler, x0, y0, x1, y1 int, c uint16) {
	var (
		dx  = abs(x1 - x0)
		dy  = -abs(y1 - y0)
		sx  = sign(x0, x1)
		sy  = sign(y0, y1)
		err = dx + dy
	)
	for {
		dst.DrawPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err << 1
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Rect draws the outline of a w by h rectangle, corner pixels are drawn once.
func Rect(dst Pixeler, x, y, w, h int, c uint16) {
	begin(dst)
	HLine(dst, x, y, w, c)
	HLine(dst, x, y+h-1, w, c)
	if h > 2 {
		VLine(dst, x, y+1, h-2, c)
		VLine(dst, x+w-1, y+1, h-2, c)
	}
	end(dst)
}

// Circle draws a circle outline with center (x0, y0) and radius r.
func Circle(dst Pixeler, x0, y0, r int, c uint16) {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)

	begin(dst)
	dst.DrawPixel(x0, y0+r, c)
	dst.DrawPixel(x0, y0-r, c)
	dst.DrawPixel(x0+r, y0, c)
	dst.DrawPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		dst.DrawPixel(x0+x, y0+y, c)
		dst.DrawPixel(x0-x, y0+y, c)
		dst.DrawPixel(x0+x, y0-y, c)
		dst.DrawPixel(x0-x, y0-y, c)
		dst.DrawPixel(x0+y, y0+x, c)
		dst.DrawPixel(x0-y, y0+x, c)
		dst.DrawPixel(x0+y, y0-x, c)
		dst.DrawPixel(x0-y, y0-x, c)
	}
	end(dst)
}

// CircleHelper draws the quarter circle outlines selected by corners.
func CircleHelper(dst Pixeler, x0, y0, r, corners int, c uint16) {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if corners&BottomRight != 0 {
			dst.DrawPixel(x0+x, y0+y, c)
			dst.DrawPixel(x0+y, y0+x, c)
		}
		if corners&TopRight != 0 {
			dst.DrawPixel(x0+x, y0-y, c)
			dst.DrawPixel(x0+y, y0-x, c)
		}
		if corners&BottomLeft != 0 {
			dst.DrawPixel(x0-y, y0+x, c)
			dst.DrawPixel(x0-x, y0+y, c)
		}
		if corners&TopLeft != 0 {
			dst.DrawPixel(x0-y, y0-x, c)
			dst.DrawPixel(x0-x, y0-y, c)
		}
	}
}

// FillCircle draws a filled circle with center (x0, y0) and radius r.
func FillCircle(dst Pixeler, x0, y0, r int, c uint16) {
	begin(dst)
	VLine(dst, x0, y0-r, 2*r+1, c)
	FillCircleHelper(dst, x0, y0, r, 3, 0, c)
	end(dst)
}

// FillCircleHelper fills the right (corners&1) and left (corners&2) halves of a circle,
// stretched vertically by delta pixels. It is the building block of [FillCircle] and
// [FillRoundRect].
func FillCircleHelper(dst Pixeler, x0, y0, r, corners, delta int, c uint16) {
	var (
		f    = 1 - r
		ddFx = 1
		ddFy = -2 * r
		x    = 0
		y    = r
		px   = x
		py   = y
	)

	delta++ // avoid some +1's in the loop

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		// These checks avoid double-drawing certain lines.
		if x < y+1 {
			if corners&1 != 0 {
				VLine(dst, x0+x, y0-y, 2*y+delta, c)
			}
			if corners&2 != 0 {
				VLine(dst, x0-x, y0-y, 2*y+delta, c)
			}
		}
		if y != py {
			if corners&1 != 0 {
				VLine(dst, x0+py, y0-px, 2*px+delta, c)
			}
			if corners&2 != 0 {
				VLine(dst, x0-py, y0-px, 2*px+delta, c)
			}
			py = y
		}
		px = x
	}
}

func clampRadius(w, h, r int) int {
	if m := min(w, h) / 2; r > m {
		return m
	}
	return r
}

// RoundRect draws a rectangle outline with corners of radius r.
func RoundRect(dst Pixeler, x, y, w, h, r int, c uint16) {
	r = clampRadius(w, h, r)

	begin(dst)
	HLine(dst, x+r, y, w-2*r, c)
	HLine(dst, x+r, y+h-1, w-2*r, c)
	VLine(dst, x, y+r, h-2*r, c)
	VLine(dst, x+w-1, y+r, h-2*r, c)
	CircleHelper(dst, x+r, y+r, r, TopLeft, c)
	CircleHelper(dst, x+w-r-1, y+r, r, TopRight, c)
	CircleHelper(dst, x+w-r-1, y+h-r-1, r, BottomRight, c)
	CircleHelper(dst, x+r, y+h-r-1, r, BottomLeft, c)
	end(dst)
}

// FillRoundRect fills a rectangle with corners of radius r.
func FillRoundRect(dst Pixeler, x, y, w, h, r int, c uint16) {
	r = clampRadius(w, h, r)

	begin(dst)
	FillRect(dst, x+r, y, w-2*r, h, c)
	FillCircleHelper(dst, x+w-r-1, y+r, r, 1, h-2*r-1, c)
	FillCircleHelper(dst, x+r, y+r, r, 2, h-2*r-1, c)
	end(dst)
}

// Triangle draws the outline of a triangle.
func Triangle(dst Pixeler, x0, y0, x1, y1, x2, y2 int, c uint16) {
	Line(dst, x0, y0, x1, y1, c)
	Line(dst, x1, y1, x2, y2, c)
	Line(dst, x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle with horizontal spans.
func FillTriangle(dst Pixeler, x0, y0, x1, y1, x2, y2 int, c uint16) {
	// Sort coordinates by y order (y2 >= y1 >= y0).
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}
	if y1 > y2 {
		y2, y1 = y1, y2
		x2, x1 = x1, x2
	}
	if y0 > y1 {
		y0, y1 = y1, y0
		x0, x1 = x1, x0
	}

	begin(dst)
	defer end(dst)

	if y0 == y2 {
		// All on the same line.
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		HLine(dst, a, y0, b-a+1, c)
		return
	}

	var (
		dx01 = x1 - x0
		dy01 = y1 - y0
		dx02 = x2 - x0
		dy02 = y2 - y0
		dx12 = x2 - x1
		dy12 = y2 - y1
		sa   int
		sb   int
		last int
		y    int
	)

	// For upper part of triangle, find scanline crossings for segments 0-1 and 0-2. If y1=y2
	// (flat-bottomed triangle), the scanline y1 is included here (and second loop will be
	// skipped, avoiding a /0 error there), otherwise scanline y1 is skipped here and handled
	// in the second loop, which also avoids a /0 error here if y0=y1 (flat-topped triangle).
	if y1 == y2 {
		last = y1
	} else {
		last = y1 - 1
	}

	for y = y0; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		HLine(dst, a, y, b-a+1, c)
	}

	// For lower part of triangle, find scanline crossings for segments 0-2 and 1-2.
	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		HLine(dst, a, y, b-a+1, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
