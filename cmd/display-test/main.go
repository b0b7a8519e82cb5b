package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/gfx"
	"github.com/BeatGlow/gfx/display"
	"github.com/BeatGlow/gfx/font"
	"github.com/BeatGlow/gfx/framebuffer"
	"github.com/BeatGlow/gfx/preview"
)

func main() {
	var (
		configFile string
		setup      = display.DefaultSetup
		rotate     string
		fontName   string
		imageFile  string
		previewing bool
		fbDevice   string
		frames     int
		interval   time.Duration
	)
	pflag.StringVarP(&configFile, "config", "c", "", "YAML display configuration file")
	pflag.IntVar(&setup.Width, "width", 0, "Display width (0 = driver default)")
	pflag.IntVar(&setup.Height, "height", 0, "Display height (0 = driver default)")
	pflag.StringVarP(&rotate, "rotate", "r", "", "Display rotation (0, 90, 180, 270)")
	pflag.IntVar(&setup.I2C.Device, "i2c-dev", display.DefaultI2CConfig.Device, "I²C device number (-1 = use first available)")
	pflag.Uint8Var(&setup.I2C.Addr, "i2c-addr", display.DefaultI2CConfig.Addr, "I²C device address")
	pflag.IntVar(&setup.SPI.Bus, "spi-bus", 0, "SPI bus")
	pflag.IntVar(&setup.SPI.Device, "spi-dev", 0, "SPI device")
	pflag.Uint32Var(&setup.SPI.SpeedHz, "spi-speed", 0, "SPI speed in Hz (0 = driver default)")
	pflag.StringVar(&setup.Pins.Reset, "reset", display.DefaultResetPin, "Reset GPIO pin")
	pflag.StringVar(&setup.Pins.DC, "dc", display.DefaultDCPin, "Data/Command GPIO pin (DC)")
	pflag.StringVar(&setup.Pins.Backlight, "bl", "", "Backlight GPIO pin")
	pflag.StringVarP(&fontName, "font", "f", "classic", "Text font name")
	pflag.StringVarP(&imageFile, "image", "i", "", "Image to show on gray scale and color displays")
	pflag.BoolVarP(&previewing, "preview", "p", false, "Preview in the terminal instead of on a display")
	pflag.StringVar(&fbDevice, "fb", "", "Draw on a framebuffer device, such as /dev/fb0")
	pflag.IntVarP(&frames, "frames", "n", 0, "Number of frames to draw (0 = until interrupted)")
	pflag.DurationVar(&interval, "interval", 50*time.Millisecond, "Time between frames")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [<bus> <driver>]\n\nFlags:\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDrivers: %v\n", display.DriverNames())
	}
	pflag.Parse()

	if configFile != "" {
		loaded, err := display.LoadConfigFile(configFile)
		if err != nil {
			fatal(err)
		}
		setup = *loaded
	}
	switch pflag.NArg() {
	case 0:
	case 2:
		setup.Bus, setup.Driver = pflag.Arg(0), pflag.Arg(1)
	default:
		pflag.Usage()
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("rotate") {
		var err error
		if setup.Rotation, err = gfx.ParseRotation(rotate); err != nil {
			fatal(err)
		}
	}
	fmt.Printf("using rotation: %s\n", setup.Rotation)

	f, err := font.Standard().Lookup(fontName)
	if err != nil {
		fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case previewing:
		err = runPreview(ctx, &setup, f, imageFile, frames, interval)
	case fbDevice != "":
		err = runFramebuffer(ctx, fbDevice, setup.Rotation, f, imageFile, frames, interval)
	default:
		err = run(ctx, &setup, f, imageFile, frames, interval)
	}
	if err != nil && err != context.Canceled {
		fatal(err)
	}
}

func run(ctx context.Context, setup *display.Setup, f font.Font, imageFile string, frames int, interval time.Duration) (err error) {
	if _, err = host.Init(); err != nil {
		return
	}

	d, err := setup.Open()
	if err != nil {
		return
	}
	fmt.Printf("using display: %s\n", d)

	if err = d.Startup(ctx); err != nil {
		return
	}
	defer func() {
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if serr := d.Shutdown(shutdown); err == nil {
			err = serr
		}
	}()

	demo, err := newDemo(d.Canvas, f, imageFile)
	if err != nil {
		return
	}
	return loop(ctx, frames, interval, func() error {
		demo.frame()
		return d.Flush()
	})
}

func runPreview(ctx context.Context, setup *display.Setup, f font.Font, imageFile string, frames int, interval time.Duration) (err error) {
	driver, err := display.NewDriver(setup.Driver)
	if err != nil {
		return
	}
	width, height := driver.DefaultSize()
	if setup.Width > 0 {
		width = setup.Width
	}
	if setup.Height > 0 {
		height = setup.Height
	}
	surface, err := driver.Surface(width, height)
	if err != nil {
		return
	}
	c, err := gfx.New(surface)
	if err != nil {
		return
	}
	c.SetRotation(setup.Rotation)

	term, err := preview.New()
	if err != nil {
		return
	}
	defer term.Close()

	demo, err := newDemo(c, f, imageFile)
	if err != nil {
		return
	}
	go func() {
		// Any key stops the preview.
		if term.Wait(ctx) == nil {
			stopPreview(term)
		}
	}()
	return loop(ctx, frames, interval, func() error {
		demo.frame()
		if c.TakeWindow().Empty() {
			return nil
		}
		term.Draw(c)
		return nil
	})
}

func runFramebuffer(ctx context.Context, name string, rotation gfx.Rotation, f font.Font, imageFile string, frames int, interval time.Duration) (err error) {
	fb, err := framebuffer.Open(name)
	if err != nil {
		return
	}
	defer fb.Close()
	fmt.Printf("using display: %s\n", fb)

	c, err := fb.NewCanvas()
	if err != nil {
		return
	}
	c.SetRotation(rotation)

	demo, err := newDemo(c, f, imageFile)
	if err != nil {
		return
	}
	return loop(ctx, frames, interval, func() error {
		demo.frame()
		fb.Draw(c)
		return nil
	})
}

func loop(ctx context.Context, frames int, interval time.Duration, frame func() error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for n := 0; frames == 0 || n < frames; n++ {
		if err := frame(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

func stopPreview(term *preview.Terminal) {
	term.Close()
	os.Exit(0)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
