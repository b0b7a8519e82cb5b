package draw

// Bitmap draws a 1-bit image with MSB first rows padded to whole bytes. Set bits are drawn
// with c, clear bits are left untouched.
func Bitmap(dst Pixeler, x, y int, bitmap []byte, w, h int, c uint16) {
	bitmap1(dst, x, y, bitmap, w, h, c, 0, false, false)
}

// BitmapBg is like [Bitmap] but draws clear bits with bg.
func BitmapBg(dst Pixeler, x, y int, bitmap []byte, w, h int, c, bg uint16) {
	bitmap1(dst, x, y, bitmap, w, h, c, bg, true, false)
}

// XBitmap draws a 1-bit image in XBM format, rows are LSB first and padded to whole bytes.
func XBitmap(dst Pixeler, x, y int, bitmap []byte, w, h int, c uint16) {
	bitmap1(dst, x, y, bitmap, w, h, c, 0, false, true)
}

func bitmap1(dst Pixeler, x, y int, bitmap []byte, w, h int, c, bg uint16, withBg, lsb bool) {
	byteWidth := (w + 7) / 8 // bitmap scanline pad = whole byte

	begin(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			switch {
			case maskBit(bitmap, byteWidth, i, j, lsb):
				dst.DrawPixel(x+i, y+j, c)
			case withBg:
				dst.DrawPixel(x+i, y+j, bg)
			}
		}
	}
	end(dst)
}

// maskBit returns bit i of row j, bits past the end of the slice read as clear.
func maskBit(bitmap []byte, byteWidth, i, j int, lsb bool) bool {
	o := j*byteWidth + i/8
	if o >= len(bitmap) {
		return false
	}
	if lsb {
		return bitmap[o]&(0x01<<uint(i&7)) != 0
	}
	return bitmap[o]&(0x80>>uint(i&7)) != 0
}

// GrayscaleBitmap draws an 8-bit image, samples are written unchanged.
func GrayscaleBitmap(dst Pixeler, x, y int, bitmap []byte, w, h int) {
	begin(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if o := j*w + i; o < len(bitmap) {
				dst.DrawPixel(x+i, y+j, uint16(bitmap[o]))
			}
		}
	}
	end(dst)
}

// GrayscaleBitmapMask is like [GrayscaleBitmap], only pixels with a set bit in the 1-bit mask
// are drawn.
func GrayscaleBitmapMask(dst Pixeler, x, y int, bitmap, mask []byte, w, h int) {
	byteWidth := (w + 7) / 8

	begin(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if o := j*w + i; o < len(bitmap) && maskBit(mask, byteWidth, i, j, false) {
				dst.DrawPixel(x+i, y+j, uint16(bitmap[o]))
			}
		}
	}
	end(dst)
}

// RGBBitmap draws a 16-bit 5-6-5 image.
func RGBBitmap(dst Pixeler, x, y int, bitmap []uint16, w, h int) {
	begin(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if o := j*w + i; o < len(bitmap) {
				dst.DrawPixel(x+i, y+j, bitmap[o])
			}
		}
	}
	end(dst)
}

// RGBBitmapMask is like [RGBBitmap], only pixels with a set bit in the 1-bit mask are drawn.
func RGBBitmapMask(dst Pixeler, x, y int, bitmap []uint16, mask []byte, w, h int) {
	byteWidth := (w + 7) / 8

	begin(dst)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if o := j*w + i; o < len(bitmap) && maskBit(mask, byteWidth, i, j, false) {
				dst.DrawPixel(x+i, y+j, bitmap[o])
			}
		}
	}
	end(dst)
}
