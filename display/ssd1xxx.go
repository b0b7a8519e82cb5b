package display

import (
	"github.com/BeatGlow/gfx/pixel"
)

// Command set shared by most OLED controllers.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setRemap              = 0xA0
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setDisplayAllOn       = 0xA5
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageStart          = 0xB0
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// oled implements the commands every OLED controller shares.
type oled struct {
	width  int
	height int
}

func (d *oled) Show(c Conn, on bool) error {
	if on {
		return c.Command(setDisplayOn)
	}
	return c.Command(setDisplayOff)
}

func (d *oled) Invert(c Conn, on bool) error {
	if on {
		return c.Command(setInvertDisplay)
	}
	return c.Command(setNormalDisplay)
}

func (d *oled) Contrast(c Conn, level uint8) error {
	return c.Command(setContrast, level)
}

// spiDefaults holds DC low through command arguments, they are command bytes too.
func (d *oled) spiDefaults(config *SPIConfig) {
	config.DataLow = true
}

// monoOLED is an OLED controller with 1-bit pages of 8 vertical pixels.
type monoOLED struct {
	oled
}

func (d *monoOLED) surface(width, height int) pixel.Surface {
	d.width, d.height = width, height
	return pixel.NewMonoVerticalLSBImage(width, height)
}

// pageRange returns the first and last page holding rows [y0, y1).
func pageRange(y0, y1 int) (int, int) {
	return y0 >> 3, (y1 - 1) >> 3
}

// gray4OLED is an OLED controller with 4-bit pixels, two per byte.
type gray4OLED struct {
	oled
}

func (d *gray4OLED) surface(width, height int) pixel.Surface {
	d.width, d.height = width, height
	return pixel.NewGray4Image(width, height)
}

func (d *gray4OLED) stride() int {
	return (d.width + 1) / 2
}
