package display

import (
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
)

type ssd1306 struct {
	monoOLED
	displayClockDiv byte
	comPins         byte
	colStart        byte
}

// SSD1306 is a driver for the Solomon Systech SSD1306 OLED display.
func SSD1306() Driver {
	return new(ssd1306)
}

func (d *ssd1306) String() string { return "SSD1306" }

func (d *ssd1306) DefaultSize() (int, int) {
	return ssd1306DefaultWidth, ssd1306DefaultHeight
}

func (d *ssd1306) Surface(width, height int) (pixel.Surface, error) {
	switch {
	case width == 64 && height == 32:
		d.displayClockDiv, d.comPins, d.colStart = 0x80, 0x12, 32
	case width == 64 && height == 48:
		d.displayClockDiv, d.comPins, d.colStart = 0x80, 0x12, 32
	case width == 96 && height == 16:
		d.displayClockDiv, d.comPins, d.colStart = 0x60, 0x02, 0
	case width == 128 && height == 32:
		d.displayClockDiv, d.comPins, d.colStart = 0x80, 0x02, 0
	case width == 128 && height == 64:
		d.displayClockDiv, d.comPins, d.colStart = 0x80, 0x12, 0
	default:
		return nil, unsupportedSize(d, width, height)
	}
	return d.surface(width, height), nil
}

func (d *ssd1306) Init(c Conn) error {
	if err := c.Command(
		setDisplayOff,
		setDisplayClockDiv, d.displayClockDiv,
		setMultiplexRatio, byte(d.height-1),
		setDisplayOffset, 0x00,
		setStartLine,
		setChargePump, 0x14,
		setMemoryMode, 0x00,
		setSegmentRemap,
		setComScanDec,
		setComPins, d.comPins,
		setPrecharge, 0xF1,
		setVComDetect, 0x40,
		setDisplayAllOnResume,
		setNormalDisplay,
	); err != nil {
		return err
	}
	return d.Contrast(c, 0xCF)
}

// Flush uses horizontal addressing: the controller wraps to the next page at the end of
// the column range, so the window goes out as a single data transfer.
func (d *ssd1306) Flush(c Conn, pix []byte, r image.Rectangle) error {
	first, last := pageRange(r.Min.Y, r.Max.Y)
	if err := commands(c,
		[]byte{setColumnAddr, d.colStart + byte(r.Min.X), d.colStart + byte(r.Max.X-1)},
		[]byte{setPageAddr, byte(first), byte(last)},
	); err != nil {
		return err
	}
	return c.Data(rows(pix, d.width, r.Min.X, r.Max.X, first, last+1)...)
}

var _ Driver = (*ssd1306)(nil)
