package display

import (
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	sh1122DefaultWidth         = 256
	sh1122DefaultHeight        = 64
	sh1122SetDischargeVSLLevel = 0x30
	sh1122SetDisplayStartLine  = 0x40
	sh1122SetDCDC              = 0xAD
	sh1122SetRowAddress        = 0xB0
	sh1122SetVSEGMLevel        = 0xDC
)

type sh1122 struct {
	gray4OLED
	displayOffset byte
}

// SH1122 is a driver for the Sino Wealth SH1122 OLED display.
func SH1122() Driver {
	return new(sh1122)
}

func (d *sh1122) String() string { return "SH1122" }

func (d *sh1122) DefaultSize() (int, int) {
	return sh1122DefaultWidth, sh1122DefaultHeight
}

func (d *sh1122) Surface(width, height int) (pixel.Surface, error) {
	switch {
	case width == 128 && height == 32:
		d.displayOffset = 0x0f
	case width == 128 && height == 64:
		d.displayOffset = 0x00
	case width == 128 && height == 128:
		d.displayOffset = 0x02
	case width == 256 && height == 64:
		d.displayOffset = 0x00
	default:
		return nil, unsupportedSize(d, width, height)
	}
	return d.surface(width, height), nil
}

func (d *sh1122) Init(c Conn) error {
	return commands(c,
		[]byte{setDisplayOff},
		[]byte{sh1122SetDisplayStartLine},
		[]byte{setRemap},
		[]byte{setComScanInc},
		[]byte{setContrast, 0x80},
		[]byte{setMultiplexRatio, byte(d.height - 1)},
		[]byte{sh1122SetDCDC, 0x81},
		[]byte{setDisplayClockDiv, 0x50},
		[]byte{setDisplayOffset, d.displayOffset},
		[]byte{setPrecharge, 0x21},
		[]byte{setVComDetect, 0x35},
		[]byte{sh1122SetVSEGMLevel, 0x35},
		[]byte{sh1122SetDischargeVSLLevel},
		[]byte{setNormalDisplay},
	)
}

// Flush writes row by row. A column address covers two pixels, so the window is widened
// to even columns.
func (d *sh1122) Flush(c Conn, pix []byte, r image.Rectangle) (err error) {
	var (
		stride = d.stride()
		left   = r.Min.X >> 1
		right  = (r.Max.X + 1) >> 1
		column = byte(left)
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if err = c.Command(setLowColumn|column&0xf, setHighColumn|column>>4, sh1122SetRowAddress, byte(y)); err != nil {
			return
		}
		if err = c.Data(pix[y*stride+left : y*stride+right]...); err != nil {
			return
		}
	}
	return
}

var _ Driver = (*sh1122)(nil)
