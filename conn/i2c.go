// Package conn opens the serial buses displays are attached to.
//
// Both buses implement [periph.io/x/conn/v3.Conn], so display drivers can be tested against
// any other implementation of that interface.
package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is a device on an I²C bus.
type I2C struct {
	bus  i2c.Bus
	conn conn.Conn
}

// OpenI2C opens the numbered I²C bus, use -1 for the first available bus.
func OpenI2C(device int, addr uint8) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, fmt.Errorf("conn: open I²C bus: %w", err)
	}
	return NewI2C(bus, addr), nil
}

// NewI2C addresses a device on an already opened bus.
func NewI2C(bus i2c.Bus, addr uint8) *I2C {
	return &I2C{
		bus:  bus,
		conn: &i2c.Dev{Bus: bus, Addr: uint16(addr)},
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

// Close the bus, if it was opened by [OpenI2C].
func (c *I2C) Close() error {
	if closer, ok := c.bus.(i2c.BusCloser); ok {
		return closer.Close()
	}
	return nil
}

// Tx does a write followed by a read.
func (c *I2C) Tx(w, r []byte) error {
	return c.conn.Tx(w, r)
}

func (c *I2C) Duplex() conn.Duplex {
	return conn.Half
}

func (c *I2C) Read(p []byte) (int, error) {
	return len(p), c.conn.Tx(nil, p)
}

func (c *I2C) Write(p []byte) (int, error) {
	return len(p), c.conn.Tx(p, nil)
}

var _ conn.Conn = (*I2C)(nil)
