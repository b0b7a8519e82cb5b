package display

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/BeatGlow/gfx/pixel"
)

// Driver speaks the command set of a display controller.
//
// Drivers are stateless apart from the geometry fixed by Surface, all bus traffic goes
// through the Conn passed to each call.
type Driver interface {
	// String is the controller name.
	String() string

	// DefaultSize is the panel size used when none is configured.
	DefaultSize() (width, height int)

	// Surface validates the panel size and returns a pixel surface in the controller's RAM layout.
	Surface(width, height int) (pixel.Surface, error)

	// Init sends the power-up command sequence.
	Init(Conn) error

	// Flush sends the surface rectangle r of the snapshot pix.
	Flush(c Conn, pix []byte, r image.Rectangle) error

	// Show toggles the display on or off.
	Show(c Conn, on bool) error

	// Invert toggles inverse video.
	Invert(c Conn, on bool) error

	// Contrast adjusts the contrast level.
	Contrast(c Conn, level uint8) error
}

// spiDefaulter is implemented by drivers that need specific SPI settings.
type spiDefaulter interface {
	spiDefaults(*SPIConfig)
}

var drivers = map[string]func() Driver{
	"sh1106":  SH1106,
	"sh1122":  SH1122,
	"ssd1305": SSD1305,
	"ssd1306": SSD1306,
	"ssd1322": SSD1322,
	"st7735":  ST7735,
	"st7789":  ST7789,
}

// NewDriver returns a new driver by controller name, the name is case insensitive.
func NewDriver(name string) (Driver, error) {
	if fn, ok := drivers[strings.ToLower(name)]; ok {
		return fn(), nil
	}
	return nil, fmt.Errorf("display: unknown driver %q, supported are %s", name, strings.Join(DriverNames(), ", "))
}

// DriverNames returns the sorted names of all drivers.
func DriverNames() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func commands(c Conn, commands ...[]byte) (err error) {
	for _, command := range commands {
		if err = c.Command(command[0], command[1:]...); err != nil {
			return
		}
	}
	return
}

func unsupportedSize(d Driver, width, height int) error {
	return fmt.Errorf("display: %s unsupported size %dx%d", d, width, height)
}

// rows copies the byte range [x0, x1) of rows [y0, y1) from pix.
func rows(pix []byte, stride, x0, x1, y0, y1 int) []byte {
	if x0 == 0 && x1 == stride {
		return pix[y0*stride : y1*stride]
	}
	out := make([]byte, 0, (x1-x0)*(y1-y0))
	for y := y0; y < y1; y++ {
		out = append(out, pix[y*stride+x0:y*stride+x1]...)
	}
	return out
}
