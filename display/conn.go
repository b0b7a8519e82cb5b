package display

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"

	busconn "github.com/BeatGlow/gfx/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("display: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("display: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// Waiter is implemented by connections that can wait for the controller to be ready.
type Waiter interface {
	Wait() error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int `yaml:"device"`

	// Addr is the I²C address.
	Addr uint8 `yaml:"addr"`

	// BusyWait polls the controller status before every block.
	BusyWait bool `yaml:"busy_wait"`

	// Reset pin.
	Reset gpio.PinOut `yaml:"-"`
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device:   -1,
	Addr:     0x3c,
	BusyWait: true,
}

// I²C control bytes and the largest block sent in one transfer, control byte included.
const (
	i2cCommand   = 0x00
	i2cData      = 0x40
	i2cBlockSize = 8192
)

// Delays between status polls.
var (
	i2cFirstPoll = 10 * time.Millisecond
	i2cNextPoll  = 30 * time.Millisecond
)

type i2cConn struct {
	c        conn.Conn
	closer   io.Closer
	reset    gpio.PinOut
	busyWait bool
}

// OpenI2C opens an I²C display connection.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := busconn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	i := NewI2C(c, config)
	i.(*i2cConn).closer = c
	return i, nil
}

// NewI2C uses c as an I²C display connection.
func NewI2C(c conn.Conn, config *I2CConfig) Conn {
	if config == nil {
		config = &DefaultI2CConfig
	}
	return &i2cConn{
		c:        c,
		reset:    config.Reset,
		busyWait: config.BusyWait,
	}
}

func (c *i2cConn) String() string {
	return c.c.String()
}

func (c *i2cConn) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Reset is a no-op without a reset pin.
func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return nil
	}
	return c.reset.Out(level)
}

func (c *i2cConn) Command(cmnd byte, args ...byte) error {
	return c.writeBlocks(i2cCommand, append([]byte{cmnd}, args...))
}

func (c *i2cConn) Data(data ...byte) error {
	return c.writeBlocks(i2cData, data)
}

func (c *i2cConn) writeBlocks(control byte, data []byte) error {
	const size = i2cBlockSize - 1
	for len(data) > 0 {
		n := min(len(data), size)
		if c.busyWait {
			if err := c.Wait(); err != nil {
				return err
			}
		}
		if err := c.c.Tx(append([]byte{control}, data[:n]...), nil); err != nil {
			return fmt.Errorf("display: I²C write: %w", err)
		}
		data = data[n:]
	}
	return nil
}

// Wait polls the status byte until the busy bit clears.
func (c *i2cConn) Wait() error {
	var (
		status = make([]byte, 1)
		delay  = i2cFirstPoll
	)
	for {
		if err := c.c.Tx(nil, status); err != nil {
			return fmt.Errorf("display: I²C status read: %w", err)
		}
		if status[0]&0x80 == 0 {
			return nil
		}
		if debug {
			log.Printf("display: %s busy, waiting %s", c.c, delay)
		}
		sleep(delay)
		delay = i2cNextPoll
	}
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int         `yaml:"bus"`
	Device    int         `yaml:"device"`
	Mode      uint8       `yaml:"mode"`
	SpeedHz   uint32      `yaml:"speed_hz"`
	DataLow   bool        `yaml:"data_low"`
	BatchSize uint        `yaml:"batch_size"`
	Reset     gpio.PinOut `yaml:"-"`
	DC        gpio.PinOut `yaml:"-"`
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	Mode:      0,
	SpeedHz:   8_000_000,
	BatchSize: 4096,
}

// Default pins, looked up when the configuration has none.
const (
	DefaultResetPin = "GPIO25"
	DefaultDCPin    = "GPIO24"
)

// ValidSPISpeeds are common valid SPI bus speeds.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	16_000_000,
	20_000_000,
	24_000_000,
	28_000_000,
	32_000_000,
	36_000_000,
	40_000_000,
	48_000_000,
	50_000_000,
	52_000_000,
}

type spiConn struct {
	bus       conn.Conn
	closer    io.Closer
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	dcSet     bool
	dataLow   bool
	batchSize int
}

// OpenSPI opens a SPI display connection.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("display: invalid SPI speed %dHz", config.SpeedHz)
	}

	var (
		reset = config.Reset
		dc    = config.DC
	)
	if reset == nil {
		reset = gpioreg.ByName(DefaultResetPin)
	}
	if dc == nil {
		dc = gpioreg.ByName(DefaultDCPin)
	}

	c, err := busconn.OpenSPI(config.Bus, config.Device, busconn.SPIMode(config.Mode), physic.Frequency(config.SpeedHz)*physic.Hertz)
	if err != nil {
		return nil, err
	}

	s, err := NewSPI(c, dc, reset, config)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	s.(*spiConn).closer = c
	return s, nil
}

// NewSPI uses c as a SPI display connection, with dc as the data/command select line.
func NewSPI(c conn.Conn, dc, reset gpio.PinOut, config *SPIConfig) (Conn, error) {
	if config == nil {
		config = &DefaultSPIConfig
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if reset == nil || reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	batchSize := int(config.BatchSize)
	if batchSize <= 0 {
		batchSize = int(DefaultSPIConfig.BatchSize)
	}
	return &spiConn{
		bus:       c,
		reset:     reset,
		dc:        dc,
		dataLow:   config.DataLow,
		batchSize: batchSize,
	}, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if !c.dcSet || c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel, c.dcSet = level, true
	}
	return nil
}

// Command sends cmnd with DC low. Arguments follow with DC high, unless the controller wants
// the select line held low through the payload.
func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateDC(gpio.Low); err != nil {
		return
	}
	if err = c.bus.Tx([]byte{cmnd}, nil); err != nil {
		return fmt.Errorf("display: SPI command %#02x: %w", cmnd, err)
	}
	if len(args) > 0 {
		if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
			return
		}
		return c.writeChunked(args)
	}
	return
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.High); err != nil {
		return
	}
	return c.writeChunked(data)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if debug && len(data) > c.batchSize {
		log.Printf("display: write %d bytes of data in %d chunks", len(data), (len(data)+c.batchSize-1)/c.batchSize)
	}
	for len(data) > 0 {
		n := min(len(data), c.batchSize)
		if err = c.bus.Tx(data[:n], nil); err != nil {
			return fmt.Errorf("display: SPI write: %w", err)
		}
		data = data[n:]
	}
	return
}

// Interface checks
var (
	_ Conn   = (*i2cConn)(nil)
	_ Waiter = (*i2cConn)(nil)
	_ Conn   = (*spiConn)(nil)
)
