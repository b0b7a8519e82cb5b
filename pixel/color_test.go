package pixel

import (
	"errors"
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Off
			if y > 0 {
				c = On
			}
			r, g, b, _ := c.RGBA()
			y *= 0xF
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				t.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				t.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				t.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestGray4(t *testing.T) {
	for y := 0; y < 16; y++ {
		t.Run("", func(it *testing.T) {
			c := Gray4{Y: uint8(y)}
			r, g, b, _ := c.RGBA()
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				t.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				t.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				t.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
		})
	}
}

func TestRGB565(t *testing.T) {
	tests := []struct {
		R, G, B uint8
		Want    uint16
	}{
		{0x00, 0x00, 0x00, Black},
		{0xFF, 0xFF, 0xFF, White},
		{0xFF, 0x00, 0x00, Red},
		{0x00, 0xFF, 0x00, Green},
		{0x00, 0x00, 0xFF, Blue},
		{0xFF, 0xA5, 0x00, Orange},
	}
	for _, test := range tests {
		if v := RGB565(test.R, test.G, test.B); v != test.Want {
			t.Errorf("RGB565(%#02x, %#02x, %#02x): expected %#04x, got %#04x", test.R, test.G, test.B, test.Want, v)
		}
	}
}

func TestParseHTMLColor(t *testing.T) {
	tests := []struct {
		Test string
		Want uint16
		Err  bool
	}{
		{"#ff0000", Red, false},
		{"00FF00", Green, false},
		{"#0000fF", Blue, false},
		{"#fff", 0, true},
		{"#gg0000", 0, true},
		{"", 0, true},
	}
	for _, test := range tests {
		t.Run(test.Test, func(it *testing.T) {
			v, err := ParseHTMLColor(test.Test)
			if test.Err {
				if !errors.Is(err, ErrInvalidColor) {
					it.Errorf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if v != test.Want {
				it.Errorf("expected %#04x, got %#04x", test.Want, v)
			}
		})
	}
}

func TestBlend565(t *testing.T) {
	if v := Blend565(Red, Blue, 0xFF); v != Red {
		t.Errorf("expected opaque blend to return foreground, got %#04x", v)
	}
	if v := Blend565(Red, Blue, 0x00); v != Blue {
		t.Errorf("expected transparent blend to return background, got %#04x", v)
	}
	// Half of 31 is 15 (truncated) on both red and blue.
	if v, want := Blend565(Red, Blue, 128), uint16(15<<11|15); v != want {
		t.Errorf("expected %#04x, got %#04x", want, v)
	}
}

func TestColorSample(t *testing.T) {
	tests := []struct {
		Depth int
		Color color.Color
		Want  uint16
	}{
		{1, color.White, 1},
		{1, color.Black, 0},
		{4, color.White, 15},
		{4, Gray4{Y: 7}, 7},
		{8, color.Gray{Y: 0x42}, 0x42},
		{16, color.RGBA{R: 0xFF, A: 0xFF}, Red},
	}
	for _, test := range tests {
		if v := ColorSample(test.Depth, test.Color); v != test.Want {
			t.Errorf("depth %d %v: expected %#04x, got %#04x", test.Depth, test.Color, test.Want, v)
		}
		if v := ColorSample(test.Depth, SampleColor(test.Depth, test.Want)); v != test.Want {
			t.Errorf("depth %d: expected sample %#04x to survive conversion, got %#04x", test.Depth, test.Want, v)
		}
	}
}
