package display

import (
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	sh1106DefaultWidth  = 128
	sh1106DefaultHeight = 64

	// The 128 pixel panels are centered in 132 columns of RAM.
	sh1106ColumnOffset = 2
)

type sh1106 struct {
	monoOLED
	multiplexRatio byte
	displayOffset  byte
}

// SH1106 is a driver for the Sino Wealth SH1106 OLED display.
func SH1106() Driver {
	return new(sh1106)
}

func (d *sh1106) String() string { return "SH1106" }

func (d *sh1106) DefaultSize() (int, int) {
	return sh1106DefaultWidth, sh1106DefaultHeight
}

func (d *sh1106) Surface(width, height int) (pixel.Surface, error) {
	switch {
	case width == 128 && height == 32:
		d.multiplexRatio, d.displayOffset = 0x20, 0x0f
	case width == 128 && height == 64:
		d.multiplexRatio, d.displayOffset = 0x3f, 0x00
	case width == 128 && height == 128:
		d.multiplexRatio, d.displayOffset = 0xff, 0x02
	default:
		return nil, unsupportedSize(d, width, height)
	}
	return d.surface(width, height), nil
}

func (d *sh1106) Init(c Conn) error {
	if err := c.Command(
		setDisplayOff,
		setMemoryMode,
		setHighColumn, 0x80, 0xC8,
		setLowColumn, 0x10, 0x40,
		setSegmentRemap,
		setNormalDisplay,
		setMultiplexRatio, d.multiplexRatio,
		setDisplayAllOnResume,
		setDisplayOffset, d.displayOffset,
		setDisplayClockDiv, 0xF0,
		setPrecharge, 0x22,
		setComPins, 0x12,
		setVComDetect, 0x20,
		setChargePump, 0x14,
	); err != nil {
		return err
	}
	return d.Contrast(c, 0x7F)
}

// Flush writes page by page, the SH1106 has no horizontal addressing mode.
func (d *sh1106) Flush(c Conn, pix []byte, r image.Rectangle) (err error) {
	var (
		first, last = pageRange(r.Min.Y, r.Max.Y)
		column      = byte(r.Min.X + sh1106ColumnOffset)
	)
	for page := first; page <= last; page++ {
		if err = c.Command(
			setPageStart|byte(page&0xf),
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

var _ Driver = (*sh1106)(nil)
