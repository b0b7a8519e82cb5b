package framebuffer

import (
	"encoding/binary"
	"errors"
	"image"
	"testing"

	"github.com/BeatGlow/gfx"
)

func TestNew(t *testing.T) {
	if _, err := New(make([]byte, 8*4*2), 8, 4, 16, RGB565); err != nil {
		t.Fatal(err)
	}
	if _, err := New(make([]byte, 8*4*2), 8, 5, 16, RGB565); !errors.Is(err, gfx.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := New(make([]byte, 64), 8, 4, 8, Format{BitsPerPixel: 8}); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDraw(t *testing.T) {
	// Rows carry 2 bytes of padding.
	fb, err := New(make([]byte, 4*18), 8, 4, 18, RGB565)
	if err != nil {
		t.Fatal(err)
	}
	c, err := fb.NewCanvas()
	if err != nil {
		t.Fatal(err)
	}
	c.TakeWindow()
	c.DrawPixel(2, 1, 0xF800)
	c.DrawPixel(3, 2, 0x001F)

	if r := fb.Draw(c); r != image.Rect(2, 1, 4, 3) {
		t.Errorf("expected the dirty window to be copied, got %v", r)
	}
	if v := binary.NativeEndian.Uint16(fb.Pix[1*18+2*2:]); v != 0xF800 {
		t.Errorf("expected red at (2,1), got %#04x", v)
	}
	if v := binary.NativeEndian.Uint16(fb.Pix[2*18+3*2:]); v != 0x001F {
		t.Errorf("expected blue at (3,2), got %#04x", v)
	}
	if r := fb.Draw(c); !r.Empty() {
		t.Errorf("expected nothing to copy, got %v", r)
	}

	t.Run("xrgb32", func(it *testing.T) {
		fb, err := New(make([]byte, 4*4*4), 4, 4, 16, XRGB32)
		if err != nil {
			it.Fatal(err)
		}
		c, _ := gfx.NewGray8(4, 4)
		c.DrawPixel(1, 1, 0x80)
		fb.Draw(c)
		if v := binary.NativeEndian.Uint32(fb.Pix[16+4:]); v != 0x808080 {
			it.Errorf("expected gray at (1,1), got %#08x", v)
		}
		if err = fb.Close(); err != nil {
			it.Error(err)
		}
	})
}
