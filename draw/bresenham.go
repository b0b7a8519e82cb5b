package draw

import "math"

// plotAA draws a pixel with an antialiasing intensity, 0 is fully inked and 255 is fully
// transparent. Targets without alpha support get the pixel when it is at least half inked.
func plotAA(dst Pixeler, x, y int, c uint16, aa float64) {
	switch {
	case aa < 0:
		aa = 0
	case aa > 255:
		aa = 255
	}
	if a, ok := dst.(AlphaPixeler); ok {
		if aa < 255 {
			a.DrawPixelAlpha(x, y, c, uint8(255-aa))
		}
		return
	}
	if aa < 128 {
		dst.DrawPixel(x, y, c)
	}
}

// LineAA draws an antialiased line between (x0, y0) and (x1, y1).
func LineAA(dst Pixeler, x0, y0, x1, y1 int, c uint16) {
	var (
		dx  = abs(x1 - x0)
		dy  = abs(y1 - y0)
		sx  = sign(x0, x1)
		sy  = sign(y0, y1)
		err = dx - dy
		ed  = 1.0
	)
	if dx+dy != 0 {
		ed = math.Sqrt(float64(dx*dx + dy*dy))
	}

	begin(dst)
	defer end(dst)
	for {
		plotAA(dst, x0, y0, c, 255*float64(abs(err-dx+dy))/ed)
		e2, x2 := err, x0
		if 2*e2 >= -dx { // x step
			if x0 == x1 {
				return
			}
			if float64(e2+dy) < ed {
				plotAA(dst, x0, y0+sy, c, 255*float64(e2+dy)/ed)
			}
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy { // y step
			if y0 == y1 {
				return
			}
			if float64(dx-e2) < ed {
				plotAA(dst, x2+sx, y0, c, 255*float64(dx-e2)/ed)
			}
			err += dx
			y0 += sy
		}
	}
}

// ThickLine draws a line of the given pen width, edges are antialiased when the target
// supports [AlphaPixeler]. Widths up to 1 draw a regular [Line].
func ThickLine(dst Pixeler, x0, y0, x1, y1 int, width float64, c uint16) {
	if width <= 1 {
		Line(dst, x0, y0, x1, y1, c)
		return
	}

	var (
		dx  = abs(x1 - x0)
		dy  = abs(y1 - y0)
		sx  = sign(x0, x1)
		sy  = sign(y0, y1)
		err = dx - dy
		ed  = 1.0
		wd  = (width + 1) / 2
	)
	if dx+dy != 0 {
		ed = math.Sqrt(float64(dx*dx + dy*dy))
	}
	intensity := func(e int) float64 {
		return math.Max(0, 255*(math.Abs(float64(e))/ed-wd+1))
	}

	begin(dst)
	defer end(dst)
	for {
		plotAA(dst, x0, y0, c, intensity(err-dx+dy))
		e2, x2 := err, x0
		if 2*e2 >= -dx { // x step
			e2 += dy
			for y2 := y0; float64(e2) < ed*wd && (y1 != y2 || dx > dy); e2 += dx {
				y2 += sy
				plotAA(dst, x0, y2, c, intensity(e2))
			}
			if x0 == x1 {
				return
			}
			e2 = err
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy { // y step
			for e2 = dx - e2; float64(e2) < ed*wd && (x1 != x2 || dx < dy); e2 += dy {
				x2 += sx
				plotAA(dst, x2, y0, c, intensity(e2))
			}
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// Ellipse draws an ellipse outline with center (xm, ym) and radii a and b.
func Ellipse(dst Pixeler, xm, ym, a, b int, c uint16) {
	EllipseRect(dst, xm-a, ym-b, xm+a, ym+b, c)
}

// EllipseRect draws the ellipse outline inscribed in the rectangle (x0, y0)-(x1, y1).
func EllipseRect(dst Pixeler, x0, y0, x1, y1 int, c uint16) {
	var (
		a  = abs(x1 - x0)
		b  = abs(y1 - y0)
		b1 = b & 1
		dx = 4 * (1 - float64(a)) * float64(b) * float64(b)
		dy = 4 * float64(b1+1) * float64(a) * float64(a)
	)
	err := dx + dy + float64(b1*a*a)

	if x0 > x1 {
		x0 = x1
		x1 += a
	}
	if y0 > y1 {
		y0 = y1
	}
	y0 += (b + 1) / 2
	y1 = y0 - b1
	var (
		aa = float64(8 * a * a)
		bb = float64(8 * b * b)
	)

	begin(dst)
	defer end(dst)
	for x0 <= x1 {
		dst.DrawPixel(x1, y0, c) //   I. Quadrant
		dst.DrawPixel(x0, y0, c) //  II. Quadrant
		dst.DrawPixel(x0, y1, c) // III. Quadrant
		dst.DrawPixel(x1, y1, c) //  IV. Quadrant
		e2 := 2 * err
		if e2 <= dy { // y step
			y0++
			y1--
			dy += aa
			err += dy
		}
		if e2 >= dx || 2*err > dy { // x step
			x0++
			x1--
			dx += bb
			err += dx
		}
	}

	// Too early stop of flat ellipses, finish the tip.
	for y0-y1 < b {
		dst.DrawPixel(x0-1, y0, c)
		dst.DrawPixel(x1+1, y0, c)
		y0++
		dst.DrawPixel(x0-1, y1, c)
		dst.DrawPixel(x1+1, y1, c)
		y1--
	}
}
