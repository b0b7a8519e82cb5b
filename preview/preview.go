// Package preview shows canvases in a terminal.
//
// Every terminal cell holds two pixels: the upper half block is drawn in the color of the top
// pixel on a background of the bottom pixel.
package preview

import (
	"context"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const upperHalfBlock = '▀'

// Terminal is a preview on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	owned  bool
	origin image.Point
}

// New opens the controlling terminal.
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err = s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return &Terminal{screen: s, owned: true}, nil
}

// NewScreen previews on an initialized screen.
func NewScreen(s tcell.Screen) *Terminal {
	return &Terminal{screen: s}
}

// Screen returns the underlying screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Close restores the terminal if it was opened by New.
func (t *Terminal) Close() {
	if t.owned {
		t.screen.Fini()
	}
}

// Size is the number of pixels that fit on the screen.
func (t *Terminal) Size() image.Point {
	w, h := t.screen.Size()
	return image.Pt(w, h*2)
}

// SetOrigin moves the preview to cell (x, y).
func (t *Terminal) SetOrigin(x, y int) {
	t.origin = image.Pt(x, y)
}

// Draw renders img and shows the screen, pixels outside of the screen are cut off.
func (t *Terminal) Draw(img image.Image) {
	var (
		b    = img.Bounds()
		w, h = t.screen.Size()
	)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := t.origin.Y + (y-b.Min.Y)/2
		if row >= h {
			break
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			col := t.origin.X + x - b.Min.X
			if col >= w {
				break
			}
			bottom := color.Color(color.Black)
			if y+1 < b.Max.Y {
				bottom = img.At(x, y+1)
			}
			style := tcell.StyleDefault.
				Foreground(rgb(img.At(x, y))).
				Background(rgb(bottom))
			t.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Wait blocks until a key is pressed or ctx is done.
func (t *Terminal) Wait(ctx context.Context) error {
	var (
		keys = make(chan struct{})
		stop = make(chan struct{})
	)
	go func() {
		defer close(keys)
		for {
			switch ev := t.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				return
			case *tcell.EventInterrupt:
				if ev.Data() == stop {
					return
				}
			}
		}
	}()
	select {
	case <-keys:
		return nil
	case <-ctx.Done():
		if t.screen.PostEvent(tcell.NewEventInterrupt(stop)) == nil {
			<-keys
		}
		return ctx.Err()
	}
}
