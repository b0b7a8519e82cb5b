package display

import (
	"fmt"
	"time"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	st7789DefaultWidth  = 240
	st7789DefaultHeight = 240
	st7789MaxWidth      = 240
	st7789MaxHeight     = 320
)

// Registers (from st7789.pdf).
const (
	st7789WRDISBV   = 0x51 // Write Display Brightness
	st7789PORCTRL   = 0xB2 // Porch Setting
	st7789GCTRL     = 0xB7 // Gate Control
	st7789VCOMS     = 0xBB // VCOM Setting
	st7789LCMCTRL   = 0xC0 // LCM Control
	st7789VDVVRHEN  = 0xC2 // VDV and VRH Command Enable
	st7789VRHS      = 0xC3 // VRH Set
	st7789VDVSET    = 0xC4 // VDV Set
	st7789VCMOFSET  = 0xC5 // VCOM Offset Set
	st7789FRCTR2    = 0xC6 // Frame Rate Control in Normal Mode
	st7789PWCTRL1   = 0xD0 // Power Control 1
	st7789PVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	st7789NVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

type st7789 struct {
	tft
}

// ST7789 is a driver for the Sitronix ST7789 TFT display.
//
// The panels are wired inverted, inverse video is undone by the driver.
func ST7789() Driver {
	return &st7789{tft: tft{invertReversed: true}}
}

func (d *st7789) String() string { return "ST7789" }

func (d *st7789) DefaultSize() (int, int) {
	return st7789DefaultWidth, st7789DefaultHeight
}

func (d *st7789) Surface(width, height int) (pixel.Surface, error) {
	if width > st7789MaxWidth || height > st7789MaxHeight {
		return nil, fmt.Errorf("display: %s invalid size %dx%d, maximum size is %dx%d", d, width, height, st7789MaxWidth, st7789MaxHeight)
	}
	return d.surface(width, height), nil
}

func (d *st7789) Init(c Conn) (err error) {
	sleep(10 * time.Millisecond)
	if err = c.Command(tftSLPOUT); err != nil { // Sleep Out
		return
	}
	sleep(150 * time.Millisecond)

	return commands(c,
		[]byte{tftMADCTL, 0x00},          // Memory Data Access Control: rotation is done by the canvas
		[]byte{tftCOLMOD, 0x05},          // Interface Pixel Format: 16-bit/pixel (RGB 5-6-5-bit input)
		[]byte{st7789PORCTRL, 0x0C, 0x0C}, // Porch Setting: default
		[]byte{st7789GCTRL, 0x35},         // Gate Control: 13.26V / -10.43V (default)
		[]byte{st7789VCOMS, 0x1A},         // VCOM Setting: 0.75V (default is 0x20 / 0.9V)
		[]byte{st7789LCMCTRL, 0x2C},       // LCM Control: default
		[]byte{st7789VDVVRHEN, 0x01},      // VDV and VRH Command Enable: default
		[]byte{st7789VRHS, 0x0B},          // VRH Set: default (4.1V+( vcom+vcom offset+vdv))
		[]byte{st7789VDVSET, 0x20},        // VDV Set: default (0V)
		[]byte{st7789VCMOFSET, 0x20},      // VCOM Offset Set: default (0V)
		[]byte{st7789FRCTR2, 0x0F},        // Frame Rate Control in Normal Mode: 60Hz (default)
		[]byte{st7789PWCTRL1, 0xA4, 0xA1}, // Power Control 1: default
		[]byte{tftINVON},                  // Undo the inverted panel wiring
		[]byte{st7789PVGAMCTRL, 0x00, 0x19, 0x1E, 0x0A, 0x09, 0x15, 0x3D, 0x44, 0x51, 0x12, 0x03, 0x00, 0x3F, 0x3F}, // Positive Voltage Gamma Control: default
		[]byte{st7789NVGAMCTRL, 0x00, 0x18, 0x1E, 0x0A, 0x09, 0x25, 0x3F, 0x43, 0x52, 0x33, 0x03, 0x00, 0x3F, 0x3F}, // Negative Voltage Gamma Control: default
		[]byte{tftNORON}, // Normal Display Mode On
	)
}

func (d *st7789) Contrast(c Conn, level uint8) error {
	return c.Command(st7789WRDISBV, level)
}

var _ Driver = (*st7789)(nil)
