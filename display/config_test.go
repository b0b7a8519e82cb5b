package display

import (
	"strings"
	"testing"

	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/BeatGlow/gfx"
)

const testConfig = `
driver: SSD1322
bus: SPI
width: 256
height: 64
rotation: 180
queue_size: 4
spi:
  speed_hz: 16000000
pins:
  reset: GPIO25
  dc: GPIO24
`

func TestLoadConfig(t *testing.T) {
	s, err := LoadConfig(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if s.Driver != "SSD1322" || s.Bus != "spi" {
		t.Errorf("expected SSD1322 on spi, got %s on %s", s.Driver, s.Bus)
	}
	if s.Width != 256 || s.Height != 64 || s.Rotation != gfx.Rotate180 {
		t.Errorf("expected 256x64 at 180°, got %dx%d at %s", s.Width, s.Height, s.Rotation)
	}
	if s.SPI.SpeedHz != 16_000_000 || s.SPI.BatchSize != DefaultSPIConfig.BatchSize {
		t.Errorf("expected 16MHz with default batch size, got %+v", s.SPI)
	}
	if s.I2C.Addr != DefaultI2CConfig.Addr {
		t.Errorf("expected default I²C address, got %#02x", s.I2C.Addr)
	}
	if s.Pins.Reset != "GPIO25" || s.Pins.DC != "GPIO24" || s.Pins.Backlight != "" {
		t.Errorf("unexpected pins %+v", s.Pins)
	}
	if c := s.Config(nil); c.QueueSize != 4 || c.Width != 256 || c.Rotation != gfx.Rotate180 {
		t.Errorf("unexpected display config %+v", c)
	}

	t.Run("empty", func(it *testing.T) {
		s, err := LoadConfig(strings.NewReader(""))
		if err != nil {
			it.Fatal(err)
		}
		if s.Driver != "ssd1306" || s.Bus != "i2c" || s.I2C.Device != -1 {
			it.Errorf("expected defaults, got %+v", s)
		}
	})

	t.Run("invalid", func(it *testing.T) {
		for _, text := range []string{
			"drvier: ssd1306",
			"driver: hd44780",
			"bus: uart",
			"rotation: 45",
		} {
			if _, err := LoadConfig(strings.NewReader(text)); err == nil {
				it.Errorf("expected %q to fail", text)
			}
		}
	})
}

func TestSPISetup(t *testing.T) {
	s, err := LoadConfig(strings.NewReader("driver: ssd1306\nbus: spi\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c := s.SPI.Config(SSD1306()); !c.DataLow || c.SpeedHz != 0 {
		t.Errorf("expected the driver to hold DC low, got %+v", c)
	}

	s, err = LoadConfig(strings.NewReader("driver: ssd1306\nbus: spi\nspi:\n  data_low: false\n  mode: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c := s.SPI.Config(SSD1306()); c.DataLow || c.Mode != 2 {
		t.Errorf("expected the configured DC polarity and mode, got %+v", c)
	}

	t.Run("tft", func(it *testing.T) {
		mode := uint8(0)
		c := SPISetup{Mode: &mode}.Config(ST7789())
		if c.Mode != 0 || c.SpeedHz != 40_000_000 {
			it.Errorf("expected mode 0 at the driver speed, got %+v", c)
		}
		if c = (SPISetup{}).Config(ST7789()); c.Mode != 3 {
			it.Errorf("expected the driver mode, got %+v", c)
		}
	})
}

func TestPinsResolve(t *testing.T) {
	if err := gpioreg.Register(&gpiotest.Pin{N: "TEST_RESET"}); err != nil {
		t.Fatal(err)
	}

	reset, dc, backlight, err := Pins{Reset: "TEST_RESET"}.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if reset == nil || reset.Name() != "TEST_RESET" {
		t.Errorf("expected pin TEST_RESET, got %v", reset)
	}
	if dc != nil || backlight != nil {
		t.Errorf("expected unnamed pins to be nil, got %v and %v", dc, backlight)
	}

	if _, _, _, err = (Pins{Backlight: "TEST_MISSING"}).Resolve(); err == nil {
		t.Error("expected an unknown pin to fail")
	}
}
