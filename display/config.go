package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/BeatGlow/gfx"
)

// Setup describes a display and the bus it is attached to, as read from a YAML file:
//
//	driver: ssd1322
//	bus: spi
//	width: 256
//	height: 64
//	rotation: 180
//	spi:
//	  speed_hz: 16000000
//	pins:
//	  reset: GPIO25
//	  dc: GPIO24
type Setup struct {
	Driver    string       `yaml:"driver"`
	Bus       string       `yaml:"bus"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Rotation  gfx.Rotation `yaml:"rotation"`
	QueueSize int          `yaml:"queue_size"`
	AutoFlush bool         `yaml:"auto_flush"`
	I2C       I2CConfig    `yaml:"i2c"`
	SPI       SPISetup     `yaml:"spi"`
	Pins      Pins         `yaml:"pins"`
}

// Pins are GPIO pin names as known to gpioreg.
type Pins struct {
	Reset     string `yaml:"reset"`
	DC        string `yaml:"dc"`
	Backlight string `yaml:"backlight"`
}

// DefaultSetup is the setup used for keys missing from a file.
var DefaultSetup = Setup{
	Driver: "ssd1306",
	Bus:    "i2c",
	I2C:    DefaultI2CConfig,

	// Speed and mode stay unset, so drivers can pick theirs.
	SPI: SPISetup{BatchSize: DefaultSPIConfig.BatchSize},
}

// SPISetup is the spi section of a setup. The driver picks the mode and DC polarity unless
// they are set.
type SPISetup struct {
	Bus       int    `yaml:"bus"`
	Device    int    `yaml:"device"`
	Mode      *uint8 `yaml:"mode"`
	SpeedHz   uint32 `yaml:"speed_hz"`
	DataLow   *bool  `yaml:"data_low"`
	BatchSize uint   `yaml:"batch_size"`
}

// Config returns the bus configuration for driver.
func (s SPISetup) Config(driver Driver) SPIConfig {
	config := SPIConfig{
		Bus:       s.Bus,
		Device:    s.Device,
		SpeedHz:   s.SpeedHz,
		BatchSize: s.BatchSize,
	}
	if d, ok := driver.(spiDefaulter); ok {
		d.spiDefaults(&config)
	}
	if s.Mode != nil {
		config.Mode = *s.Mode
	}
	if s.DataLow != nil {
		config.DataLow = *s.DataLow
	}
	return config
}

// LoadConfig reads a setup, unknown keys are an error.
func LoadConfig(r io.Reader) (*Setup, error) {
	s := DefaultSetup
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("display: config: %w", err)
	}
	if _, err := NewDriver(s.Driver); err != nil {
		return nil, err
	}
	switch s.Bus = strings.ToLower(s.Bus); s.Bus {
	case "i2c", "spi":
	default:
		return nil, fmt.Errorf("display: config: unknown bus %q", s.Bus)
	}
	return &s, nil
}

// LoadConfigFile reads a setup from the file name.
func LoadConfigFile(name string) (*Setup, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return LoadConfig(f)
}

func pin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("display: unknown GPIO pin %q", name)
	}
	return p, nil
}

// Resolve looks up the configured pins, pins without a name are nil.
func (p Pins) Resolve() (reset, dc, backlight gpio.PinOut, err error) {
	if reset, err = pin(p.Reset); err != nil {
		return
	}
	if dc, err = pin(p.DC); err != nil {
		return
	}
	backlight, err = pin(p.Backlight)
	return
}

// Config returns the display configuration.
func (s *Setup) Config(backlight gpio.PinOut) *Config {
	return &Config{
		Width:     s.Width,
		Height:    s.Height,
		Rotation:  s.Rotation,
		Backlight: backlight,
		QueueSize: s.QueueSize,
		AutoFlush: s.AutoFlush,
	}
}

// Open connects the bus and sets up the display. The host drivers must be loaded.
func (s *Setup) Open() (*Display, error) {
	driver, err := NewDriver(s.Driver)
	if err != nil {
		return nil, err
	}
	reset, dc, backlight, err := s.Pins.Resolve()
	if err != nil {
		return nil, err
	}

	var c Conn
	switch s.Bus {
	case "spi":
		config := s.SPI.Config(driver)
		config.Reset, config.DC = reset, dc
		c, err = OpenSPI(&config)
	default:
		config := s.I2C
		config.Reset = reset
		c, err = OpenI2C(&config)
	}
	if err != nil {
		return nil, err
	}

	d, err := New(c, driver, s.Config(backlight))
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return d, nil
}
