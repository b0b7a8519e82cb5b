package gfx

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/BeatGlow/gfx/draw"
	"github.com/BeatGlow/gfx/pixel"
	"github.com/BeatGlow/gfx/queue"
)

// Canvas draws onto a pixel surface in logical (rotated) coordinates and tracks the
// dirty window in surface coordinates.
//
// A Canvas is not safe for concurrent use, only the committed text state may be read
// from other goroutines.
type Canvas struct {
	surface  pixel.Surface
	rotation Rotation
	width    int // logical
	height   int // logical
	window   Window

	alpha     uint8
	penWidth  float64
	antialias bool

	depth      int
	onEndWrite func()

	text  TextState
	queue *queue.Queue

	mu        sync.Mutex
	committed TextState
	err       error
}

// New returns a canvas drawing onto surface.
func New(surface pixel.Surface) (*Canvas, error) {
	if surface == nil || surface.Bounds().Empty() {
		return nil, fmt.Errorf("gfx: empty surface: %w", ErrInvalidSize)
	}
	c := &Canvas{
		surface:  surface,
		alpha:    0xFF,
		penWidth: 1,
		text:     defaultTextState(),
	}
	c.committed = c.text
	c.resize()
	c.window.Full(c.physicalSize())
	return c, nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("gfx: %dx%d: %w", w, h, ErrInvalidSize)
	}
	return nil
}

// NewMono returns a 1-bit canvas with horizontally packed rows.
func NewMono(w, h int) (*Canvas, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return New(pixel.NewMonoImage(w, h))
}

// NewMonoVertical returns a 1-bit canvas with the page layout of OLED controllers.
func NewMonoVertical(w, h int) (*Canvas, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return New(pixel.NewMonoVerticalLSBImage(w, h))
}

// NewGray4 returns a 4-bit gray scale canvas.
func NewGray4(w, h int) (*Canvas, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return New(pixel.NewGray4Image(w, h))
}

// NewGray8 returns an 8-bit gray scale canvas.
func NewGray8(w, h int) (*Canvas, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return New(pixel.NewGray8Image(w, h))
}

// NewRGB565 returns a 16-bit 5-6-5 color canvas.
func NewRGB565(w, h int) (*Canvas, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return New(pixel.NewRGB565Image(w, h))
}

func (c *Canvas) physicalSize() (int, int) {
	size := c.surface.Bounds().Size()
	return size.X, size.Y
}

func (c *Canvas) resize() {
	w, h := c.physicalSize()
	if c.rotation.Swapped() {
		w, h = h, w
	}
	c.width, c.height = w, h
}

// Surface returns the pixel surface.
func (c *Canvas) Surface() pixel.Surface { return c.surface }

// Width is the logical width.
func (c *Canvas) Width() int { return c.width }

// Height is the logical height.
func (c *Canvas) Height() int { return c.height }

// Rotation returns the pixel rotation.
func (c *Canvas) Rotation() Rotation { return c.rotation }

// SetRotation adjusts the pixel rotation, the surface contents are left untouched.
func (c *Canvas) SetRotation(r Rotation) {
	c.rotation = r % 4
	c.resize()
	if debug {
		log.Printf("gfx: rotation %s, logical size %dx%d", c.rotation, c.width, c.height)
	}
}

// Bounds is the logical bounding box.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) ColorModel() color.Model {
	return c.surface.ColorModel()
}

// At returns the color at logical (x, y).
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.Transparent
	}
	return pixel.SampleColor(c.surface.Depth(), c.GetPixel(x, y))
}

// Set the color at logical (x, y).
func (c *Canvas) Set(x, y int, col color.Color) {
	c.DrawPixel(x, y, pixel.ColorSample(c.surface.Depth(), col))
}

// SetAlpha sets the opacity of all following writes on 16-bit surfaces. Other surfaces
// skip writes with an opacity below one half.
func (c *Canvas) SetAlpha(alpha float64) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("gfx: alpha %g: %w", alpha, ErrInvalidAlpha)
	}
	c.alpha = uint8(255 * alpha)
	return nil
}

// Alpha returns the opacity in [0, 1].
func (c *Canvas) Alpha() float64 {
	return float64(c.alpha) / 255
}

// SetPenWidth sets the width used by [Canvas.Line].
func (c *Canvas) SetPenWidth(width float64) error {
	if width <= 0 {
		return fmt.Errorf("gfx: pen width %g: %w", width, ErrInvalidPenWidth)
	}
	c.penWidth = width
	return nil
}

// PenWidth returns the pen width.
func (c *Canvas) PenWidth() float64 { return c.penWidth }

// SetAntialias toggles antialiased lines.
func (c *Canvas) SetAntialias(enable bool) { c.antialias = enable }

// Antialias checks if lines are antialiased.
func (c *Canvas) Antialias() bool { return c.antialias }

// Attach a queue, text state setters are then echoed through it.
func (c *Canvas) Attach(q *queue.Queue) { c.queue = q }

// OnEndWrite registers a function that is called every time the outermost write batch ends.
func (c *Canvas) OnEndWrite(fn func()) { c.onEndWrite = fn }

// StartWrite opens a write batch, batches nest.
func (c *Canvas) StartWrite() {
	if c.surface == nil {
		panic(ErrUnsupported)
	}
	c.depth++
}

// EndWrite closes a write batch.
func (c *Canvas) EndWrite() {
	if c.depth == 0 {
		return
	}
	if c.depth--; c.depth == 0 && c.onEndWrite != nil {
		c.onEndWrite()
	}
}

// Window returns the dirty window.
func (c *Canvas) Window() Window { return c.window }

// TakeWindow returns the dirty rectangle in surface coordinates and resets the window.
func (c *Canvas) TakeWindow() image.Rectangle {
	r := c.window.Rect()
	c.window.Reset(c.physicalSize())
	return r
}

// Damage marks the surface rectangle r dirty again, for example after a failed transfer.
func (c *Canvas) Damage(r image.Rectangle) {
	r = r.Intersect(c.surface.Bounds())
	if r.Empty() {
		return
	}
	c.window.Mark(r.Min.X, r.Min.Y)
	c.window.Mark(r.Max.X-1, r.Max.Y-1)
}

// Invalidate marks the whole surface dirty.
func (c *Canvas) Invalidate() {
	c.window.Full(c.physicalSize())
}

// Snapshot returns a copy of the surface bytes in bus order.
func (c *Canvas) Snapshot() []byte {
	return c.surface.Snapshot()
}

// GetPixel returns the sample at logical (x, y), 0 when out of bounds.
func (c *Canvas) GetPixel(x, y int) uint16 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	w, h := c.physicalSize()
	px, py := c.rotation.toPhysical(x, y, w, h)
	return c.surface.Sample(px, py)
}

// DrawPixel draws a single pixel.
func (c *Canvas) DrawPixel(x, y int, v uint16) {
	c.StartWrite()
	c.writePixel(x, y, v, c.alpha)
	c.EndWrite()
}

// DrawPixelAlpha draws a single pixel with alpha in place of the canvas alpha.
func (c *Canvas) DrawPixelAlpha(x, y int, v uint16, alpha uint8) {
	c.StartWrite()
	c.writePixel(x, y, v, alpha)
	c.EndWrite()
}

// coverage scales antialiasing coverage by the canvas alpha.
type coverage struct {
	*Canvas
}

func (c coverage) DrawPixelAlpha(x, y int, v uint16, alpha uint8) {
	c.Canvas.DrawPixelAlpha(x, y, v, uint8(uint16(alpha)*uint16(c.alpha)/0xFF))
}

func (c *Canvas) opaque(alpha uint8) bool {
	return alpha == 0xFF || (c.surface.Depth() != 16 && alpha >= 0x80)
}

func (c *Canvas) writePixel(x, y int, v uint16, alpha uint8) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	if alpha == 0 || (c.surface.Depth() != 16 && alpha < 0x80) {
		return
	}
	w, h := c.physicalSize()
	px, py := c.rotation.toPhysical(x, y, w, h)
	if !c.opaque(alpha) {
		v = pixel.Blend565(v, c.surface.Sample(px, py), alpha)
	}
	c.surface.SetSample(px, py, v)
	c.window.Mark(px, py)
}

// FastHLine draws a horizontal run of w pixels, a negative w runs to the left.
func (c *Canvas) FastHLine(x, y, w int, v uint16) {
	c.StartWrite()
	c.hline(x, y, w, v)
	c.EndWrite()
}

// FastVLine draws a vertical run of h pixels, a negative h runs upwards.
func (c *Canvas) FastVLine(x, y, h int, v uint16) {
	c.StartWrite()
	c.vline(x, y, h, v)
	c.EndWrite()
}

func (c *Canvas) hline(x, y, l int, v uint16) {
	if y < 0 || y >= c.height {
		return
	}
	var ok bool
	if x, l, ok = pixel.ClipRun(x, l, c.width); !ok {
		return
	}
	if !c.opaque(c.alpha) {
		for i := 0; i < l; i++ {
			c.writePixel(x+i, y, v, c.alpha)
		}
		return
	}

	w, h := c.physicalSize()
	switch c.rotation {
	case NoRotation:
		c.physicalHLine(x, y, l, v)
	case Rotate90:
		c.physicalVLine(w-1-y, x, l, v)
	case Rotate180:
		c.physicalHLine(w-1-x-(l-1), h-1-y, l, v)
	case Rotate270:
		c.physicalVLine(y, h-1-x-(l-1), l, v)
	}
}

func (c *Canvas) vline(x, y, l int, v uint16) {
	if x < 0 || x >= c.width {
		return
	}
	var ok bool
	if y, l, ok = pixel.ClipRun(y, l, c.height); !ok {
		return
	}
	if !c.opaque(c.alpha) {
		for i := 0; i < l; i++ {
			c.writePixel(x, y+i, v, c.alpha)
		}
		return
	}

	w, h := c.physicalSize()
	switch c.rotation {
	case NoRotation:
		c.physicalVLine(x, y, l, v)
	case Rotate90:
		c.physicalHLine(w-1-y-(l-1), x, l, v)
	case Rotate180:
		c.physicalVLine(w-1-x, h-1-y-(l-1), l, v)
	case Rotate270:
		c.physicalHLine(y, h-1-x, l, v)
	}
}

func (c *Canvas) physicalHLine(x, y, l int, v uint16) {
	c.surface.HLine(x, y, l, v)
	c.window.Mark(x, y)
	c.window.Mark(x+l-1, y)
}

func (c *Canvas) physicalVLine(x, y, l int, v uint16) {
	c.surface.VLine(x, y, l, v)
	c.window.Mark(x, y)
	c.window.Mark(x, y+l-1)
}

// FillRect fills the w by h rectangle at (x, y).
func (c *Canvas) FillRect(x, y, w, h int, v uint16) {
	if w < 0 {
		w = -w
		x -= w - 1
	}
	if h < 0 {
		h = -h
		y -= h - 1
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(c.Bounds())

	c.StartWrite()
	for j := r.Min.Y; j < r.Max.Y; j++ {
		c.hline(r.Min.X, j, r.Dx(), v)
	}
	c.EndWrite()
}

// FillScreen fills the canvas with a single sample.
func (c *Canvas) FillScreen(v uint16) {
	c.StartWrite()
	if c.opaque(c.alpha) {
		c.surface.FillSamples(v)
		c.window.Full(c.physicalSize())
	} else {
		c.FillRect(0, 0, c.width, c.height, v)
	}
	c.EndWrite()
}

// Clear the surface and mark it dirty.
func (c *Canvas) Clear() {
	c.StartWrite()
	c.surface.Clear()
	c.window.Full(c.physicalSize())
	c.EndWrite()
}

// Interface checks.
var (
	_ draw.Image        = (*Canvas)(nil)
	_ draw.Pixeler      = (*Canvas)(nil)
	_ draw.HLiner       = (*Canvas)(nil)
	_ draw.VLiner       = (*Canvas)(nil)
	_ draw.RectFiller   = (*Canvas)(nil)
	_ draw.Batcher      = (*Canvas)(nil)
	_ draw.AlphaPixeler = (*Canvas)(nil)
)
