// Package framebuffer copies canvases to the operating system's native framebuffer.
//
// This requires framebuffer device support in the operating system. A device is opened with
// [Open]; [New] wraps any pixel memory with a known [Format], which is what Open does with the
// mapped device memory.
package framebuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/BeatGlow/gfx"
	"github.com/BeatGlow/gfx/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrFormat       = errors.New("framebuffer: unsupported pixel format")
)

// Bitfield is the position of one color channel inside a pixel.
type Bitfield struct {
	Offset uint
	Length uint
}

// Format describes the pixel layout of a framebuffer.
type Format struct {
	BitsPerPixel     int
	Red, Green, Blue Bitfield
}

// Common formats.
var (
	RGB565 = Format{BitsPerPixel: 16, Red: Bitfield{11, 5}, Green: Bitfield{5, 6}, Blue: Bitfield{0, 5}}
	XRGB32 = Format{BitsPerPixel: 32, Red: Bitfield{16, 8}, Green: Bitfield{8, 8}, Blue: Bitfield{0, 8}}
)

func (f Format) String() string {
	return fmt.Sprintf("%dbpp r%d:%d g%d:%d b%d:%d", f.BitsPerPixel,
		f.Red.Offset, f.Red.Length, f.Green.Offset, f.Green.Length, f.Blue.Offset, f.Blue.Length)
}

func (f Format) valid() bool {
	switch f.BitsPerPixel {
	case 16, 24, 32:
	default:
		return false
	}
	for _, c := range []Bitfield{f.Red, f.Green, f.Blue} {
		if c.Length == 0 || c.Length > 8 || int(c.Offset+c.Length) > f.BitsPerPixel {
			return false
		}
	}
	return true
}

func (f Format) pack(r, g, b uint32) uint32 {
	return r>>(16-f.Red.Length)<<f.Red.Offset |
		g>>(16-f.Green.Length)<<f.Green.Offset |
		b>>(16-f.Blue.Length)<<f.Blue.Offset
}

// FrameBuffer is pixel memory in host byte order.
type FrameBuffer struct {
	Format Format
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	close  func() error
}

// New wraps pix holding w by h pixels with stride bytes per row.
func New(pix []byte, w, h, stride int, format Format) (*FrameBuffer, error) {
	if !format.valid() {
		return nil, fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if w <= 0 || h <= 0 || stride < w*format.BitsPerPixel/8 || len(pix) < (h-1)*stride+w*format.BitsPerPixel/8 {
		return nil, fmt.Errorf("framebuffer: %dx%d with stride %d does not fit %d bytes: %w", w, h, stride, len(pix), gfx.ErrInvalidSize)
	}
	return &FrameBuffer{
		Format: format,
		Pix:    pix,
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("framebuffer %dx%d %s", fb.Rect.Dx(), fb.Rect.Dy(), fb.Format)
}

// Bounds of the framebuffer.
func (fb *FrameBuffer) Bounds() image.Rectangle { return fb.Rect }

// NewCanvas returns an RGB565 canvas the size of the framebuffer.
func (fb *FrameBuffer) NewCanvas() (*gfx.Canvas, error) {
	return gfx.NewRGB565(fb.Rect.Dx(), fb.Rect.Dy())
}

// Draw copies the dirty window of c and returns the copied rectangle. Canvases of any depth
// are accepted, pixels outside of the framebuffer are dropped.
func (fb *FrameBuffer) Draw(c *gfx.Canvas) image.Rectangle {
	r := c.TakeWindow().Intersect(fb.Rect)
	if r.Empty() {
		return r
	}
	var (
		s     = c.Surface()
		depth = s.Depth()
		bpp   = fb.Format.BitsPerPixel / 8
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := y*fb.Stride + r.Min.X*bpp
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := pixel.SampleColor(depth, s.Sample(x, y)).RGBA()
			v := fb.Format.pack(cr, cg, cb)
			switch bpp {
			case 2:
				binary.NativeEndian.PutUint16(fb.Pix[i:], uint16(v))
			case 3:
				fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = byte(v), byte(v>>8), byte(v>>16)
			default:
				binary.NativeEndian.PutUint32(fb.Pix[i:], v)
			}
			i += bpp
		}
	}
	if debug {
		log.Printf("framebuffer: copied %s", r)
	}
	return r
}

// Close releases the framebuffer device, if any.
func (fb *FrameBuffer) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close, fb.Pix = nil, nil
	return err
}
