package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Inverse is the 1-bit sample value that toggles a pixel instead of setting it.
const Inverse uint16 = 2

// Image is a draw.Image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Surface is a pixel buffer addressed with raw samples in physical coordinates.
//
// Coordinates outside of the surface read as 0 and are dropped on write.
type Surface interface {
	Image

	// Depth is the number of bits per pixel.
	Depth() int

	// Sample returns the raw value of the pixel at (x, y).
	Sample(x, y int) uint16

	// SetSample sets the raw value of the pixel at (x, y).
	SetSample(x, y int, v uint16)

	// FillSamples sets every pixel to v.
	FillSamples(v uint16)

	// HLine sets w pixels starting at (x, y) going right.
	HLine(x, y, w int, v uint16)

	// VLine sets h pixels starting at (x, y) going down.
	VLine(x, y, h int, v uint16)

	// Bytes returns the backing buffer.
	Bytes() []byte

	// Snapshot returns a copy of the buffer in bus byte order.
	Snapshot() []byte
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) Bytes() []byte {
	return p.Pix
}

func (p *Buffer) Snapshot() []byte {
	return append([]byte(nil), p.Pix...)
}

func (p *Buffer) fill(value byte) {
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func (p *Buffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Rect.Max.X && y < p.Rect.Max.Y
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// ClipRun clips a run of l pixels starting at p to [0, extent).
//
// A negative length runs backwards from p. The run is rejected when it lies
// entirely outside of the extent.
func ClipRun(p, l, extent int) (int, int, bool) {
	if l < 0 {
		l = -l
		p -= l - 1
	}
	if l == 0 || p >= extent || p+l-1 < 0 {
		return 0, 0, false
	}
	if p < 0 {
		l += p
		p = 0
	}
	if p+l > extent {
		l = extent - p
	}
	return p, l, true
}

// Masks for partial bytes in packed 1-bit buffers.
var (
	// rowHeadMask selects pixel x&7 up to the end of a MSB-first byte.
	rowHeadMask = [8]byte{0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01}

	// rowTailMask selects the first n pixels of a MSB-first byte.
	rowTailMask = [8]byte{0x00, 0x80, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC, 0xFE}

	// colHeadMask selects row y&7 up to the end of a LSB-first band byte.
	colHeadMask = [8]byte{0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80}

	// colTailMask selects the first n rows of a LSB-first band byte.
	colTailMask = [8]byte{0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F}
)

func applyMask(b *byte, mask byte, v uint16) {
	switch v {
	case 0:
		*b &^= mask
	case Inverse:
		*b ^= mask
	default:
		*b |= mask
	}
}

// MonoImage is a 1-bit per pixel monochrome image with horizontally packed rows, MSB first.
type MonoImage struct {
	Buffer
}

func NewMonoImage(w, h int) *MonoImage {
	stride := (w + 7) / 8 // round up to whole bytes
	return &MonoImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoImage) Depth() int { return 1 }

func (p *MonoImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *MonoImage) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return Mono{On: p.Sample(x, y) != 0}
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	p.SetSample(x, y, ColorSample(1, c))
}

func (p *MonoImage) Sample(x, y int) uint16 {
	if !p.in(x, y) {
		return 0
	}
	if p.Pix[p.PixOffset(x, y)]&(0x80>>uint(x&7)) != 0 {
		return 1
	}
	return 0
}

func (p *MonoImage) SetSample(x, y int, v uint16) {
	if !p.in(x, y) {
		return
	}
	applyMask(&p.Pix[p.PixOffset(x, y)], 0x80>>uint(x&7), v)
}

func (p *MonoImage) Fill(c color.Color) {
	p.FillSamples(ColorSample(1, c))
}

func (p *MonoImage) FillSamples(v uint16) {
	switch v {
	case 0:
		p.fill(0x00)
	case Inverse:
		for i := range p.Pix {
			p.Pix[i] ^= 0xFF
		}
	default:
		p.fill(0xFF)
	}
}

// HLine fills a leading partial byte, whole bytes and a trailing partial byte.
func (p *MonoImage) HLine(x, y, w int, v uint16) {
	if y < 0 || y >= p.Rect.Max.Y {
		return
	}
	var ok bool
	if x, w, ok = ClipRun(x, w, p.Rect.Max.X); !ok {
		return
	}

	i := p.PixOffset(x, y)
	if mod := x & 7; mod != 0 {
		mask := rowHeadMask[mod]
		if n := 8 - mod; w < n {
			mask &^= rowHeadMask[mod+w]
			applyMask(&p.Pix[i], mask, v)
			return
		}
		applyMask(&p.Pix[i], mask, v)
		w -= 8 - mod
		i++
	}

	for ; w >= 8; w -= 8 {
		switch v {
		case 0:
			p.Pix[i] = 0x00
		case Inverse:
			p.Pix[i] ^= 0xFF
		default:
			p.Pix[i] = 0xFF
		}
		i++
	}

	if w > 0 {
		applyMask(&p.Pix[i], rowTailMask[w], v)
	}
}

func (p *MonoImage) VLine(x, y, h int, v uint16) {
	if x < 0 || x >= p.Rect.Max.X {
		return
	}
	var ok bool
	if y, h, ok = ClipRun(y, h, p.Rect.Max.Y); !ok {
		return
	}
	mask := byte(0x80) >> uint(x&7)
	for i, end := p.PixOffset(x, y), p.PixOffset(x, y+h); i < end; i += p.Stride {
		applyMask(&p.Pix[i], mask, v)
	}
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image.
//
// Every byte holds 8 vertically adjacent pixels, LSB at the top. This is the page
// layout used by SSD1xxx and SH1xxx OLED controllers.
type MonoVerticalLSBImage struct {
	Buffer
}

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	bands := (h + 7) / 8 // round up to whole bytes
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, bands*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoVerticalLSBImage) Depth() int { return 1 }

func (p *MonoVerticalLSBImage) PixOffset(x, y int) int {
	return y/8*p.Stride + x
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return Mono{On: p.Sample(x, y) != 0}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	p.SetSample(x, y, ColorSample(1, c))
}

func (p *MonoVerticalLSBImage) Sample(x, y int) uint16 {
	if !p.in(x, y) {
		return 0
	}
	if p.Pix[p.PixOffset(x, y)]&(1<<uint(y&7)) != 0 {
		return 1
	}
	return 0
}

func (p *MonoVerticalLSBImage) SetSample(x, y int, v uint16) {
	if !p.in(x, y) {
		return
	}
	applyMask(&p.Pix[p.PixOffset(x, y)], 1<<uint(y&7), v)
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	p.FillSamples(ColorSample(1, c))
}

func (p *MonoVerticalLSBImage) FillSamples(v uint16) {
	switch v {
	case 0:
		p.fill(0x00)
	case Inverse:
		for i := range p.Pix {
			p.Pix[i] ^= 0xFF
		}
	default:
		p.fill(0xFF)
	}
}

func (p *MonoVerticalLSBImage) HLine(x, y, w int, v uint16) {
	if y < 0 || y >= p.Rect.Max.Y {
		return
	}
	var ok bool
	if x, w, ok = ClipRun(x, w, p.Rect.Max.X); !ok {
		return
	}
	var (
		i    = p.PixOffset(x, y)
		mask = byte(1) << uint(y&7)
	)
	for end := i + w; i < end; i++ {
		applyMask(&p.Pix[i], mask, v)
	}
}

// VLine fills a partial top byte, whole band bytes and a partial bottom byte.
func (p *MonoVerticalLSBImage) VLine(x, y, h int, v uint16) {
	if x < 0 || x >= p.Rect.Max.X {
		return
	}
	var ok bool
	if y, h, ok = ClipRun(y, h, p.Rect.Max.Y); !ok {
		return
	}

	i := p.PixOffset(x, y)
	if mod := y & 7; mod != 0 {
		mask := colHeadMask[mod]
		if n := 8 - mod; h < n {
			mask &= colTailMask[mod+h]
			applyMask(&p.Pix[i], mask, v)
			return
		}
		applyMask(&p.Pix[i], mask, v)
		h -= 8 - mod
		i += p.Stride
	}

	for ; h >= 8; h -= 8 {
		switch v {
		case 0:
			p.Pix[i] = 0x00
		case Inverse:
			p.Pix[i] ^= 0xFF
		default:
			p.Pix[i] = 0xFF
		}
		i += p.Stride
	}

	if h > 0 {
		applyMask(&p.Pix[i], colTailMask[h], v)
	}
}

// Gray4Image is a 4-bits per pixel gray scale image.
//
// The high nibble of every byte holds the even x pixel.
type Gray4Image struct {
	Buffer
}

func NewGray4Image(w, h int) *Gray4Image {
	return &Gray4Image{
		Buffer: makeBuffer(w, h, (w+1)/2, h*((w+1)/2)),
	}
}

func (p *Gray4Image) ColorModel() color.Model {
	return Gray4Model
}

func (p *Gray4Image) Depth() int { return 4 }

func (p *Gray4Image) PixOffset(x, y int) int {
	return y*p.Stride + x>>1
}

func (p *Gray4Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return Gray4{Y: uint8(p.Sample(x, y))}
}

func (p *Gray4Image) Set(x, y int, c color.Color) {
	p.SetSample(x, y, ColorSample(4, c))
}

func (p *Gray4Image) Sample(x, y int) uint16 {
	if !p.in(x, y) {
		return 0
	}
	b := p.Pix[p.PixOffset(x, y)]
	if x&1 == 0 {
		return uint16(b >> 4)
	}
	return uint16(b & 0x0F)
}

func (p *Gray4Image) SetSample(x, y int, v uint16) {
	if !p.in(x, y) {
		return
	}
	p.set(p.PixOffset(x, y), x, byte(v&0x0F))
}

func (p *Gray4Image) set(i, x int, v byte) {
	if x&1 == 0 {
		p.Pix[i] = (p.Pix[i] & 0x0F) | v<<4
	} else {
		p.Pix[i] = (p.Pix[i] & 0xF0) | v
	}
}

func (p *Gray4Image) Fill(c color.Color) {
	p.FillSamples(ColorSample(4, c))
}

func (p *Gray4Image) FillSamples(v uint16) {
	value := byte(v & 0x0F)
	p.fill(value | value<<4)
}

func (p *Gray4Image) HLine(x, y, w int, v uint16) {
	if y < 0 || y >= p.Rect.Max.Y {
		return
	}
	var ok bool
	if x, w, ok = ClipRun(x, w, p.Rect.Max.X); !ok {
		return
	}
	value := byte(v & 0x0F)
	i := p.PixOffset(x, y)
	if x&1 == 1 {
		p.set(i, x, value)
		i++
		w--
	}
	for ; w >= 2; w -= 2 {
		p.Pix[i] = value | value<<4
		i++
	}
	if w == 1 {
		p.set(i, 0, value)
	}
}

func (p *Gray4Image) VLine(x, y, h int, v uint16) {
	if x < 0 || x >= p.Rect.Max.X {
		return
	}
	var ok bool
	if y, h, ok = ClipRun(y, h, p.Rect.Max.Y); !ok {
		return
	}
	value := byte(v & 0x0F)
	for i, end := p.PixOffset(x, y), p.PixOffset(x, y+h); i < end; i += p.Stride {
		p.set(i, x, value)
	}
}

// Gray8Image is a 8-bits per pixel gray scale image.
type Gray8Image struct {
	Buffer
}

func NewGray8Image(w, h int) *Gray8Image {
	return &Gray8Image{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *Gray8Image) ColorModel() color.Model {
	return Gray8Model
}

func (p *Gray8Image) Depth() int { return 8 }

func (p *Gray8Image) PixOffset(x, y int) int {
	return y*p.Stride + x
}

func (p *Gray8Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return color.Gray{Y: uint8(p.Sample(x, y))}
}

func (p *Gray8Image) Set(x, y int, c color.Color) {
	p.SetSample(x, y, ColorSample(8, c))
}

func (p *Gray8Image) Sample(x, y int) uint16 {
	if !p.in(x, y) {
		return 0
	}
	return uint16(p.Pix[p.PixOffset(x, y)])
}

func (p *Gray8Image) SetSample(x, y int, v uint16) {
	if !p.in(x, y) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = byte(v)
}

func (p *Gray8Image) Fill(c color.Color) {
	p.FillSamples(ColorSample(8, c))
}

func (p *Gray8Image) FillSamples(v uint16) {
	p.fill(byte(v))
}

func (p *Gray8Image) HLine(x, y, w int, v uint16) {
	if y < 0 || y >= p.Rect.Max.Y {
		return
	}
	var ok bool
	if x, w, ok = ClipRun(x, w, p.Rect.Max.X); !ok {
		return
	}
	row := p.Pix[p.PixOffset(x, y) : p.PixOffset(x+w, y)]
	for i := range row {
		row[i] = byte(v)
	}
}

func (p *Gray8Image) VLine(x, y, h int, v uint16) {
	if x < 0 || x >= p.Rect.Max.X {
		return
	}
	var ok bool
	if y, h, ok = ClipRun(y, h, p.Rect.Max.Y); !ok {
		return
	}
	for i, end := p.PixOffset(x, y), p.PixOffset(x, y+h); i < end; i += p.Stride {
		p.Pix[i] = byte(v)
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
//
// Pixels are stored in Order, which defaults to the host byte order.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
		Order:  binary.NativeEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return CRGB16Model
}

func (p *RGB565Image) Depth() int { return 16 }

func (p *RGB565Image) PixOffset(x, y int) int {
	return y*p.Stride + x*2
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return CRGB16{V: p.Sample(x, y)}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	p.SetSample(x, y, ColorSample(16, c))
}

func (p *RGB565Image) Sample(x, y int) uint16 {
	if !p.in(x, y) {
		return 0
	}
	return p.Order.Uint16(p.Pix[p.PixOffset(x, y):])
}

func (p *RGB565Image) SetSample(x, y int, v uint16) {
	if !p.in(x, y) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], v)
}

func (p *RGB565Image) Fill(c color.Color) {
	p.FillSamples(ColorSample(16, c))
}

func (p *RGB565Image) FillSamples(v uint16) {
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, v)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

func (p *RGB565Image) HLine(x, y, w int, v uint16) {
	if y < 0 || y >= p.Rect.Max.Y {
		return
	}
	var ok bool
	if x, w, ok = ClipRun(x, w, p.Rect.Max.X); !ok {
		return
	}
	for i, end := p.PixOffset(x, y), p.PixOffset(x+w, y); i < end; i += 2 {
		p.Order.PutUint16(p.Pix[i:], v)
	}
}

func (p *RGB565Image) VLine(x, y, h int, v uint16) {
	if x < 0 || x >= p.Rect.Max.X {
		return
	}
	var ok bool
	if y, h, ok = ClipRun(y, h, p.Rect.Max.Y); !ok {
		return
	}
	for i, end := p.PixOffset(x, y), p.PixOffset(x, y+h); i < end; i += p.Stride {
		p.Order.PutUint16(p.Pix[i:], v)
	}
}

// Snapshot returns a copy of the pixels in big-endian order, as expected by
// 16-bit panel controllers.
func (p *RGB565Image) Snapshot() []byte {
	out := make([]byte, len(p.Pix))
	if p.Order == binary.BigEndian {
		copy(out, p.Pix)
		return out
	}
	for i, l := 0, len(p.Pix); i+1 < l; i += 2 {
		binary.BigEndian.PutUint16(out[i:], p.Order.Uint16(p.Pix[i:]))
	}
	return out
}

// Interface checks.
var (
	_ Surface = (*MonoImage)(nil)
	_ Surface = (*MonoVerticalLSBImage)(nil)
	_ Surface = (*Gray4Image)(nil)
	_ Surface = (*Gray8Image)(nil)
	_ Surface = (*RGB565Image)(nil)
)
