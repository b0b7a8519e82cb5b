package display

import (
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

const (
	ssd1322DefaultWidth  = 256
	ssd1322DefaultHeight = 64

	// Columns of display RAM, the panel is centered in them.
	ssd1322Columns = 480
)

const (
	ssd1322SetColumnAddress       = 0x15
	ssd1322WriteRAM               = 0x5C
	ssd1322SetRowAddress          = 0x75
	ssd1322SetRemap               = 0xA0
	ssd1322SetDisplayStartLine    = 0xA1
	ssd1322SetDisplayOffset       = 0xA2
	ssd1322SetDisplayAllOff       = 0xA4
	ssd1322SetDisplayAllOn        = 0xA5
	ssd1322SetDisplayNormal       = 0xA6
	ssd1322SetDisplayInverse      = 0xA7
	ssd1322SetExitPartialDisplay  = 0xA9
	ssd1322SetFunction            = 0xAB
	ssd1322SetDisplayOff          = 0xAE
	ssd1322SetDisplayOn           = 0xAF
	ssd1322SetPhaseLength         = 0xB1
	ssd1322SetFrontClockDiv       = 0xB3
	ssd1322SetDisplayEnhancementA = 0xB4
	ssd1322SetGPIO                = 0xB5
	ssd1322SetSecondPrecharge     = 0xB6
	ssd1322SetDefaultGrayscale    = 0xB9
	ssd1322SetPrechargeVoltage    = 0xBB
	ssd1322SetVCOMHVoltage        = 0xBE
	ssd1322SetContrast            = 0xC1
	ssd1322SetMasterCurrent       = 0xC7
	ssd1322SetMultiplexRatio      = 0xCA
	ssd1322SetDisplayEnhancementB = 0xD1
	ssd1322SetCommandLock         = 0xFD
)

var ssd1322SupportedSizes = []image.Point{
	image.Pt(256, 64),
	image.Pt(256, 48),
	image.Pt(256, 32),
	image.Pt(128, 64),
	image.Pt(128, 48),
	image.Pt(128, 32),
	image.Pt(64, 64),
	image.Pt(64, 48),
	image.Pt(64, 32),
}

type ssd1322 struct {
	gray4OLED
	columnOffset int
}

// SSD1322 is a driver for Solomon Systech SSD1322 OLED display.
func SSD1322() Driver {
	return new(ssd1322)
}

func (d *ssd1322) String() string { return "SSD1322" }

func (d *ssd1322) DefaultSize() (int, int) {
	return ssd1322DefaultWidth, ssd1322DefaultHeight
}

func (d *ssd1322) Surface(width, height int) (pixel.Surface, error) {
	var supported bool
	for _, size := range ssd1322SupportedSizes {
		if supported = size.X == width && size.Y == height; supported {
			break
		}
	}
	if !supported {
		return nil, unsupportedSize(d, width, height)
	}
	d.columnOffset = (ssd1322Columns - width) >> 1
	return d.surface(width, height), nil
}

func (d *ssd1322) Init(c Conn) error {
	if err := commands(c,
		[]byte{ssd1322SetCommandLock, 0x12},                      // Unlock IC
		[]byte{ssd1322SetDisplayOff},                             // Display off
		[]byte{ssd1322SetFrontClockDiv, 0xF2},                    // Display divide clockratio/freq
		[]byte{ssd1322SetMultiplexRatio, byte(d.height - 1)},     // Set MUX ratio
		[]byte{ssd1322SetDisplayOffset, 0x00},                    // Display offset
		[]byte{ssd1322SetDisplayStartLine, 0x00},                 // Display start Line
		[]byte{ssd1322SetRemap, 0x14, 0x11},                      // Set remap & dual COM Line
		[]byte{ssd1322SetGPIO, 0x00},                             // Set GPIO (disabled)
		[]byte{ssd1322SetFunction, 0x01},                         // Function select (internal Vdd)
		[]byte{ssd1322SetDisplayEnhancementA, 0xA0, 0xFD},        // Display enhancement A (External VSL)
		[]byte{ssd1322SetMasterCurrent, 0x0F},                    // Master contrast (reset)
		[]byte{ssd1322SetDefaultGrayscale},                       // Set default greyscale table
		[]byte{ssd1322SetPhaseLength, 0xF0},                      // Phase length
		[]byte{ssd1322SetDisplayEnhancementB, 0x82, 0x20},        // Display enhancement B (reset)
		[]byte{ssd1322SetPrechargeVoltage, 0x0D},                 // Pre-charge voltage
		[]byte{ssd1322SetSecondPrecharge, 0x08},                  // 2nd precharge period
		[]byte{ssd1322SetVCOMHVoltage, 0x00},                     // Set VcomH
		[]byte{ssd1322SetDisplayNormal},                          // Normal display
		[]byte{ssd1322SetExitPartialDisplay},                     // Exit partial display
	); err != nil {
		return err
	}
	return d.Contrast(c, 0x7F)
}

func (d *ssd1322) Show(c Conn, on bool) error {
	if on {
		return c.Command(ssd1322SetDisplayOn)
	}
	return c.Command(ssd1322SetDisplayOff)
}

func (d *ssd1322) Invert(c Conn, on bool) error {
	if on {
		return c.Command(ssd1322SetDisplayInverse)
	}
	return c.Command(ssd1322SetDisplayNormal)
}

func (d *ssd1322) Contrast(c Conn, level uint8) error {
	return c.Command(ssd1322SetContrast, level)
}

// The SSD1322 takes command arguments as data.
func (d *ssd1322) spiDefaults(config *SPIConfig) {
	config.DataLow = false
}

// Flush addresses columns in units of 4 pixels, so the window is widened to that grid.
func (d *ssd1322) Flush(c Conn, pix []byte, r image.Rectangle) error {
	var (
		left  = r.Min.X &^ 3
		right = min((r.Max.X+3)&^3, d.width)
	)
	if err := commands(c,
		[]byte{ssd1322SetColumnAddress, byte((d.columnOffset + left) >> 2), byte((d.columnOffset+right)>>2) - 1},
		[]byte{ssd1322SetRowAddress, byte(r.Min.Y), byte(r.Max.Y - 1)},
		[]byte{ssd1322WriteRAM},
	); err != nil {
		return err
	}
	return c.Data(rows(pix, d.stride(), left>>1, right>>1, r.Min.Y, r.Max.Y)...)
}

var _ Driver = (*ssd1322)(nil)
