package display

import (
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	ssd1305DefaultWidth    = 128
	ssd1305DefaultHeight   = 32
	ssd1305SetLUT          = 0x91
	ssd1305SetMasterConfig = 0xAD
	ssd1305SetAreaColor    = 0xD8
)

type ssd1305 struct {
	monoOLED
	colOffset byte
}

// SSD1305 is a driver for the Solomon Systech SSD1305 OLED display.
func SSD1305() Driver {
	return new(ssd1305)
}

func (d *ssd1305) String() string { return "SSD1305" }

func (d *ssd1305) DefaultSize() (int, int) {
	return ssd1305DefaultWidth, ssd1305DefaultHeight
}

func (d *ssd1305) Surface(width, height int) (pixel.Surface, error) {
	switch {
	case width == 128 && height == 32:
		d.colOffset = 0
	case width == 128 && height == 64:
		d.colOffset = 4
	default:
		return nil, unsupportedSize(d, width, height)
	}
	return d.surface(width, height), nil
}

func (d *ssd1305) Init(c Conn) error {
	if err := c.Command(
		setDisplayOff,
		setLowColumn|d.colOffset&0xf,
		setHighColumn|d.colOffset>>4,
		setStartLine,
		setSegmentRemap,
		setNormalDisplay,
		setMultiplexRatio, byte(d.height-1),
		ssd1305SetMasterConfig, 0x8E,
		setComScanDec,
		setDisplayOffset, 0x00,
		setDisplayClockDiv, 0xF0,
		ssd1305SetAreaColor, 0x05,
		setPrecharge, 0xF1,
		setComPins, 0x12,
		ssd1305SetLUT, 0x3F, 0x3F, 0x3F, 0x3F,
	); err != nil {
		return err
	}
	return d.Contrast(c, 0x7F)
}

func (d *ssd1305) Flush(c Conn, pix []byte, r image.Rectangle) (err error) {
	var (
		first, last = pageRange(r.Min.Y, r.Max.Y)
		column      = d.colOffset + byte(r.Min.X)
	)
	for page := first; page <= last; page++ {
		if err = c.Command(
			setPageStart|byte(page&0x7),
			setLowColumn|column&0xf,
			setHighColumn|column>>4,
		); err != nil {
			return
		}
		off := page * d.width
		if err = c.Data(pix[off+r.Min.X : off+r.Max.X]...); err != nil {
			return
		}
	}
	return
}

var _ Driver = (*ssd1305)(nil)
