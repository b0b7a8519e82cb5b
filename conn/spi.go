package conn

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPIMode is the clock polarity and phase.
type SPIMode = spi.Mode

// SPI modes.
const (
	SPIMode0 = spi.Mode0
	SPIMode1 = spi.Mode1
	SPIMode2 = spi.Mode2
	SPIMode3 = spi.Mode3
)

// SPI is a connection to a SPI device.
type SPI struct {
	port  spi.PortCloser
	conn  spi.Conn
	mode  SPIMode
	speed physic.Frequency
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often corresponds to the CS pin for that bus.
//
// Use a negative bus for the first available port.
func OpenSPI(bus, device int, mode SPIMode, speed physic.Frequency) (*SPI, error) {
	var name string
	if bus >= 0 {
		name = fmt.Sprintf("SPI%d.%d", bus, device)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("conn: open SPI port: %w", err)
	}

	c, err := port.Connect(speed, mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("conn: connect SPI port %s: %w", port, err)
	}

	return &SPI{
		port:  port,
		conn:  c,
		mode:  mode,
		speed: speed,
	}, nil
}

func (c *SPI) Close() error {
	return c.port.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s mode=%d max speed=%s", c.port, c.mode&0x3, c.speed)
}

// Mode returns the SPI mode used.
func (c *SPI) Mode() SPIMode {
	return c.mode
}

// MaxSpeed returns the clock frequency requested when connecting.
func (c *SPI) MaxSpeed() physic.Frequency {
	return c.speed
}

// Tx does a simultaneous write and read.
func (c *SPI) Tx(w, r []byte) error {
	return c.conn.Tx(w, r)
}

func (c *SPI) Duplex() conn.Duplex {
	return c.conn.Duplex()
}

// MaxTxSize returns the largest transfer the port supports, 0 when unlimited.
func (c *SPI) MaxTxSize() int {
	if l, ok := c.conn.(conn.Limits); ok {
		return l.MaxTxSize()
	}
	return 0
}

func (c *SPI) Write(b []byte) (int, error) {
	return len(b), c.conn.Tx(b, nil)
}

var _ conn.Conn = (*SPI)(nil)
