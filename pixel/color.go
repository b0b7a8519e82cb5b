package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	Gray4Model  color.Model = color.ModelFunc(gray4Model)
	Gray8Model              = color.GrayModel
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go.
	//
	// Note that 19595 + 38470 + 7471 equals 65536.
	//
	// The 31 is 16 + 15. The 16 is the same as used in RGBToYCbCr. The 15 is
	// because the return value is 1 bit color, not 16 bit color.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}

// Gray4 represents a 4-bit grayscale color, Y is in [0, 15].
type Gray4 struct {
	Y uint8
}

func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y & 0x0F)
	y |= y << 4
	y |= y << 8
	return y, y, y, 0xffff
}

func gray4Model(c color.Color) color.Color {
	if _, ok := c.(Gray4); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 28
	return Gray4{Y: uint8(y & 0x0F)}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB16{0xffff}
		}
		return CRGB16{}
	case CRGB16:
		return c
	default:
		r, g, b, _ := c.RGBA()
		return CRGB16{RGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))}
	}
}

// ColorSample converts c to a raw sample for a surface of the given depth.
func ColorSample(depth int, c color.Color) uint16 {
	switch depth {
	case 1:
		if monoModel(c).(Mono).On {
			return 1
		}
		return 0
	case 4:
		return uint16(gray4Model(c).(Gray4).Y)
	case 8:
		return uint16(color.GrayModel.Convert(c).(color.Gray).Y)
	default:
		return crgb16Model(c).(CRGB16).V
	}
}

// SampleColor converts a raw sample of the given depth to a color.
func SampleColor(depth int, v uint16) color.Color {
	switch depth {
	case 1:
		return Mono{On: v != 0}
	case 4:
		return Gray4{Y: uint8(v & 0x0F)}
	case 8:
		return color.Gray{Y: uint8(v)}
	default:
		return CRGB16{V: v}
	}
}

// ErrInvalidColor is returned when parsing a malformed color string.
var ErrInvalidColor = errors.New("pixel: invalid color")

// RGB565 packs 8-bit red, green and blue components.
func RGB565(r, g, b uint8) uint16 {
	hi := uint16(r&0xF8) | uint16(g>>5)
	lo := uint16(g&0x1C)<<3 | uint16(b>>3)
	return hi<<8 | lo
}

// ParseHTMLColor parses a "#rrggbb" or "rrggbb" string.
func ParseHTMLColor(s string) (uint16, error) {
	v := strings.TrimPrefix(s, "#")
	if len(v) != 6 {
		return 0, fmt.Errorf("pixel: %q: %w", s, ErrInvalidColor)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("pixel: %q: %w", s, ErrInvalidColor)
	}
	return RGB565(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// Blend565 mixes fg over bg with the given alpha, per 5-6-5 channel.
func Blend565(fg, bg uint16, alpha uint8) uint16 {
	switch alpha {
	case 0xFF:
		return fg
	case 0x00:
		return bg
	}
	a := uint32(alpha)
	mix := func(f, b uint32) uint32 {
		return (f*a + b*(255-a)) / 255
	}
	r := mix(uint32(fg>>11), uint32(bg>>11))
	g := mix(uint32(fg>>5)&0x3F, uint32(bg>>5)&0x3F)
	b := mix(uint32(fg)&0x1F, uint32(bg)&0x1F)
	return uint16(r<<11 | g<<5 | b)
}

// Named 5-6-5 colors.
const (
	Black       uint16 = 0x0000
	Navy        uint16 = 0x000F
	DarkGreen   uint16 = 0x03E0
	DarkCyan    uint16 = 0x03EF
	Maroon      uint16 = 0x7800
	Purple      uint16 = 0x780F
	Olive       uint16 = 0x7BE0
	LightGrey   uint16 = 0xC618
	DarkGrey    uint16 = 0x7BEF
	Blue        uint16 = 0x001F
	Green       uint16 = 0x07E0
	Cyan        uint16 = 0x07FF
	Red         uint16 = 0xF800
	Magenta     uint16 = 0xF81F
	Yellow      uint16 = 0xFFE0
	White       uint16 = 0xFFFF
	Orange      uint16 = 0xFD20
	GreenYellow uint16 = 0xAFE5
	Pink        uint16 = 0xFC18
)
