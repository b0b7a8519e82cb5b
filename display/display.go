// Package display drives serial display panels from a gfx canvas.
//
// All bus traffic runs on a queue: drawing stays on the caller's goroutine, flushes take a
// snapshot of the surface and hand it to the queue without waiting for the transfer.
package display

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/gfx"
	"github.com/BeatGlow/gfx/queue"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

var sleep = time.Sleep

// Timings.
const (
	resetDelay    = 100 * time.Millisecond
	backlightRate = 2 * physic.KiloHertz
)

// Config is the display configuration.
type Config struct {
	// Width of the panel in pixels, 0 selects the driver default.
	Width int

	// Height of the panel in pixels, 0 selects the driver default.
	Height int

	// Rotation of the canvas.
	Rotation gfx.Rotation

	// Backlight pin, contrast is set through its duty cycle when present.
	Backlight gpio.PinOut

	// QueueSize is the number of pending bus tasks.
	QueueSize int

	// AutoFlush flushes after every outermost write batch.
	AutoFlush bool
}

// Display is a canvas attached to a panel.
type Display struct {
	*gfx.Canvas
	conn      Conn
	driver    Driver
	queue     *queue.Queue
	backlight gpio.PinOut
}

// New sets up a display, nothing is sent before Startup.
func New(conn Conn, driver Driver, config *Config) (*Display, error) {
	if config == nil {
		config = new(Config)
	}
	if config.Width < 0 || config.Height < 0 {
		return nil, fmt.Errorf("display: %dx%d: %w", config.Width, config.Height, gfx.ErrInvalidSize)
	}

	width, height := driver.DefaultSize()
	if config.Width > 0 {
		width = config.Width
	}
	if config.Height > 0 {
		height = config.Height
	}

	surface, err := driver.Surface(width, height)
	if err != nil {
		return nil, err
	}
	canvas, err := gfx.New(surface)
	if err != nil {
		return nil, err
	}
	canvas.SetRotation(config.Rotation)

	d := &Display{
		Canvas:    canvas,
		conn:      conn,
		driver:    driver,
		queue:     queue.New(config.QueueSize),
		backlight: config.Backlight,
	}
	canvas.Attach(d.queue)
	if config.AutoFlush {
		canvas.OnEndWrite(func() { _ = d.Flush() })
	}
	if debug {
		log.Printf("display: %s %dx%d on %s", driver, width, height, conn)
	}
	return d, nil
}

func (d *Display) String() string {
	bounds := d.Surface().Bounds()
	return fmt.Sprintf("%s %dx%d", d.driver, bounds.Dx(), bounds.Dy())
}

// Driver returns the panel driver.
func (d *Display) Driver() Driver { return d.driver }

func (d *Display) enqueue(name string, task func(Conn) error) error {
	return d.queue.Enqueue(name, func() error { return task(d.conn) })
}

// Startup resets the panel, sends the init sequence and a blank frame and turns the display on.
// It waits for the bus.
func (d *Display) Startup(ctx context.Context) (err error) {
	if err = d.enqueue("reset", reset); err != nil {
		return
	}

	d.Surface().Clear()
	if err = d.enqueue("init", d.driver.Init); err != nil {
		return
	}
	if d.backlight != nil {
		if err = d.queue.Enqueue("backlight", func() error {
			return d.backlight.PWM(gpio.DutyMax, backlightRate)
		}); err != nil {
			return
		}
	}
	if err = d.FlushAll(); err != nil {
		return
	}
	if err = d.Show(true); err != nil {
		return
	}
	return d.Sync(ctx)
}

func reset(c Conn) (err error) {
	for _, level := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err = c.Reset(level); err != nil {
			return
		}
		sleep(resetDelay)
	}
	return
}

// Shutdown turns the display off, closes the bus and stops the queue.
func (d *Display) Shutdown(ctx context.Context) error {
	if err := d.Show(false); err != nil {
		_ = d.queue.Close()
		_ = d.conn.Close()
		return err
	}
	if err := d.queue.Enqueue("close", func() error { return d.conn.Close() }); err != nil {
		_ = d.queue.Close()
		_ = d.conn.Close()
		return err
	}
	err := d.Sync(ctx)
	if cerr := d.queue.Close(); err == nil {
		err = cerr
	}
	return err
}

// Flush sends the dirty window. It returns once the transfer is queued.
func (d *Display) Flush() error {
	r := d.TakeWindow()
	if r.Empty() {
		return nil
	}
	pix := d.Snapshot()
	if err := d.queue.Enqueue("flush", func() error {
		return d.driver.Flush(d.conn, pix, r)
	}); err != nil {
		d.Damage(r)
		return err
	}
	return nil
}

// FlushAll sends the whole surface.
func (d *Display) FlushAll() error {
	d.Invalidate()
	return d.Flush()
}

// Sync waits for all queued bus traffic.
func (d *Display) Sync(ctx context.Context) error {
	return d.queue.Sync(ctx)
}

// Err returns the first bus error, or else the error of the last text state update.
func (d *Display) Err() error {
	if err := d.queue.Err(); err != nil {
		return err
	}
	return d.Canvas.Err()
}

// Show toggles the display on or off.
func (d *Display) Show(on bool) error {
	return d.enqueue("show", func(c Conn) error { return d.driver.Show(c, on) })
}

// Invert toggles inverse video.
func (d *Display) Invert(on bool) error {
	return d.enqueue("invert", func(c Conn) error { return d.driver.Invert(c, on) })
}

// SetContrast adjusts the contrast level, or the backlight duty cycle.
func (d *Display) SetContrast(level uint8) error {
	if d.backlight == nil {
		return d.enqueue("contrast", func(c Conn) error { return d.driver.Contrast(c, level) })
	}
	duty := gpio.Duty(int64(gpio.DutyMax) * int64(level) / 0xFF)
	return d.queue.Enqueue("backlight", func() error {
		if debug {
			log.Printf("display: backlight duty cycle to %s at %s", duty, backlightRate)
		}
		return d.backlight.PWM(duty, backlightRate)
	})
}
