package display

import (
	"encoding/binary"
	"image"

	"github.com/BeatGlow/gfx/pixel"
)

// MIPI DCS commands shared by the TFT controllers.
const (
	tftNOP     = 0x00
	tftSWRESET = 0x01
	tftSLPIN   = 0x10
	tftSLPOUT  = 0x11
	tftNORON   = 0x13
	tftINVOFF  = 0x20
	tftINVON   = 0x21
	tftDISPOFF = 0x28
	tftDISPON  = 0x29
	tftCASET   = 0x2A
	tftRASET   = 0x2B
	tftRAMWR   = 0x2C
	tftMADCTL  = 0x36
	tftCOLMOD  = 0x3A
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                        byte = 1 << iota // D0: reserved
	_                                         // D1: reserved
	tftDisplayDataLatchOrder                  // D2: MH
	tftBGROrder                               // D3: RGB
	tftLineAddressOrder                       // D4: ML
	tftPageColumnOrder                        // D5: MV
	tftColumnAddressOrder                     // D6: MX
	tftPageAddressOrder                       // D7: MY
)

// tft is a 16-bit RGB 5-6-5 controller with a column/row address window.
type tft struct {
	width     int
	height    int
	colOffset int
	rowOffset int

	// invertReversed is set for panels that are wired inverted, inverse video then turns
	// inversion off.
	invertReversed bool
}

func (d *tft) surface(width, height int) pixel.Surface {
	d.width, d.height = width, height
	p := pixel.NewRGB565Image(width, height)
	p.Order = binary.BigEndian
	return p
}

func (d *tft) Show(c Conn, on bool) error {
	if on {
		return c.Command(tftDISPON)
	}
	return c.Command(tftDISPOFF)
}

func (d *tft) Invert(c Conn, on bool) error {
	if on != d.invertReversed {
		return c.Command(tftINVON)
	}
	return c.Command(tftINVOFF)
}

func (d *tft) spiDefaults(config *SPIConfig) {
	config.DataLow = false
	if config.SpeedHz == 0 {
		config.Mode = 3
		config.SpeedHz = 40_000_000
	}
}

func (d *tft) setWindow(c Conn, r image.Rectangle) error {
	var (
		x0 = r.Min.X + d.colOffset
		y0 = r.Min.Y + d.rowOffset
		x1 = r.Max.X - 1 + d.colOffset
		y1 = r.Max.Y - 1 + d.rowOffset
	)
	return commands(c,
		[]byte{tftCASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}, // Column address
		[]byte{tftRASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}, // Row address
		[]byte{tftRAMWR}, // Write to RAM
	)
}

// Flush sends the window as big-endian RGB 5-6-5.
func (d *tft) Flush(c Conn, pix []byte, r image.Rectangle) error {
	if err := d.setWindow(c, r); err != nil {
		return err
	}
	return c.Data(rows(pix, d.width*2, r.Min.X*2, r.Max.X*2, r.Min.Y, r.Max.Y)...)
}
