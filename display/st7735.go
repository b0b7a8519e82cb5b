package display

import (
	"fmt"
	"time"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	st7735DefaultWidth  = 128
	st7735DefaultHeight = 160
	st7735MaxWidth      = 132
	st7735MaxHeight     = 162
)

// Registers (from st7735.pdf).
const (
	st7735FRMCTR1 = 0xB1
	st7735FRMCTR2 = 0xB2
	st7735FRMCTR3 = 0xB3
	st7735INVCTR  = 0xB4
	st7735PWCTR1  = 0xC0
	st7735PWCTR2  = 0xC1
	st7735PWCTR3  = 0xC2
	st7735PWCTR4  = 0xC3
	st7735PWCTR5  = 0xC4
	st7735VMCTR1  = 0xC5
	st7735GMCTRP1 = 0xE0
	st7735GMCTRN1 = 0xE1
)

type st7735 struct {
	tft
}

// ST7735 is a driver for the Sitronix ST7735 TFT display.
//
// The controller has no brightness command, contrast needs a backlight pin.
func ST7735() Driver {
	return new(st7735)
}

func (d *st7735) String() string { return "ST7735" }

func (d *st7735) DefaultSize() (int, int) {
	return st7735DefaultWidth, st7735DefaultHeight
}

func (d *st7735) Surface(width, height int) (pixel.Surface, error) {
	if width > st7735MaxWidth || height > st7735MaxHeight {
		return nil, fmt.Errorf("display: %s invalid size %dx%d, maximum size is %dx%d", d, width, height, st7735MaxWidth, st7735MaxHeight)
	}
	return d.surface(width, height), nil
}

func (d *st7735) Init(c Conn) (err error) {
	sleep(10 * time.Millisecond)
	if err = c.Command(tftSWRESET); err != nil {
		return
	}
	sleep(150 * time.Millisecond)
	if err = c.Command(tftSLPOUT); err != nil { // Sleep Out
		return
	}
	sleep(150 * time.Millisecond)

	return commands(c,
		[]byte{st7735FRMCTR1, 0x01, 0x2C, 0x2D},
		[]byte{st7735FRMCTR2, 0x01, 0x2C, 0x2D},
		[]byte{st7735FRMCTR3, 0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D},
		[]byte{st7735INVCTR, 0x07},
		[]byte{st7735PWCTR1, 0xA2, 0x02, 0x84},
		[]byte{st7735PWCTR2, 0xC5},
		[]byte{st7735PWCTR3, 0x0A, 0x00},
		[]byte{st7735PWCTR4, 0x8A, 0x2A},
		[]byte{st7735PWCTR5, 0x8A, 0xEE},
		[]byte{st7735VMCTR1, 0x0E},
		[]byte{tftINVOFF},
		[]byte{tftMADCTL, 0x00},
		[]byte{tftCOLMOD, 0x05}, // 16-bits per pixel
		[]byte{st7735GMCTRP1, 0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D, 0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10},
		[]byte{st7735GMCTRN1, 0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D, 0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10},
		[]byte{tftNORON},
	)
}

func (d *st7735) Contrast(Conn, uint8) error {
	return nil
}

var _ Driver = (*st7735)(nil)
