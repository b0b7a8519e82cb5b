package gfx

import (
	"fmt"
	"image"

	"github.com/BeatGlow/gfx/font"
)

// TextState is the text cursor and style of a canvas.
type TextState struct {
	// CursorX and CursorY are the pen position, for glyph fonts the pen sits on the baseline.
	CursorX, CursorY int

	// Font used for text, never nil.
	Font font.Font

	// SizeX and SizeY are the magnification factors.
	SizeX, SizeY int

	// Color is the text sample, Bg the background sample. The background is transparent
	// when it equals Color.
	Color, Bg uint16

	// Wrap moves the pen to the next line when a character would cross the right edge.
	Wrap bool

	// CP437 uses the full code page 437 table for the builtin font.
	CP437 bool
}

func defaultTextState() TextState {
	return TextState{
		Font:  font.Classic,
		SizeX: 1,
		SizeY: 1,
		Color: 0xFFFF,
		Bg:    0xFFFF,
		Wrap:  true,
	}
}

// commit echoes the text state through the queue, so that tasks queued after a setter
// observe it in order.
func (c *Canvas) commit() {
	state := c.text
	if c.queue == nil {
		c.mu.Lock()
		c.committed = state
		c.mu.Unlock()
		return
	}
	err := c.queue.Enqueue("text state", func() error {
		c.mu.Lock()
		if c.committed != state {
			c.committed = state
		}
		c.mu.Unlock()
		return nil
	})
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
	}
}

// Err returns the last error of echoing the text state through the attached queue.
func (c *Canvas) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Committed returns the text state as seen by the queue.
func (c *Canvas) Committed() TextState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

// TextState returns the current text state.
func (c *Canvas) TextState() TextState { return c.text }

// Cursor returns the pen position.
func (c *Canvas) Cursor() (x, y int) { return c.text.CursorX, c.text.CursorY }

// SetCursor moves the pen.
func (c *Canvas) SetCursor(x, y int) {
	c.text.CursorX, c.text.CursorY = x, y
	c.commit()
}

// SetTextSize sets the magnification, factors below 1 are taken as 1.
func (c *Canvas) SetTextSize(sx, sy int) {
	c.text.SizeX, c.text.SizeY = max(sx, 1), max(sy, 1)
	c.commit()
}

// SetTextColor sets the text color with a transparent background.
func (c *Canvas) SetTextColor(v uint16) {
	c.text.Color, c.text.Bg = v, v
	c.commit()
}

// SetTextColorBg sets the text and background color.
func (c *Canvas) SetTextColorBg(v, bg uint16) {
	c.text.Color, c.text.Bg = v, bg
	c.commit()
}

// SetTextWrap toggles wrapping at the right edge.
func (c *Canvas) SetTextWrap(wrap bool) {
	c.text.Wrap = wrap
	c.commit()
}

// CP437 toggles the full code page 437 table for the builtin font.
func (c *Canvas) CP437(enable bool) {
	c.text.CP437 = enable
	c.commit()
}

// SetFont selects the text font, nil selects the builtin font.
func (c *Canvas) SetFont(f font.Font) {
	if f == nil {
		f = font.Classic
	}
	c.text.Font = f
	c.commit()
}

// placement is the layout of a single character.
type placement struct {
	at   image.Point     // origin after wrapping
	next image.Point     // pen after the character
	box  image.Rectangle // covered pixels
	draw bool
}

// place lays out ch at pen (x, y). Drawing and measuring both go through here.
func (c *Canvas) place(s *TextState, ch byte, x, y int) (p placement) {
	var (
		sx, sy = s.SizeX, s.SizeY
		line   int
	)
	switch f := s.Font.(type) {
	case *font.GlyphFont:
		line = int(f.YAdvance)
	case *font.PackFont:
		line = f.Height
	default:
		line = font.BuiltinLine
	}

	switch ch {
	case '\n':
		p.next = image.Pt(0, y+sy*line)
		return
	case '\r':
		p.next = image.Pt(x, y)
		return
	}

	switch f := s.Font.(type) {
	case *font.GlyphFont:
		if !f.Has(ch) {
			p.next = image.Pt(x, y)
			return
		}
		g := f.Glyph(ch)
		var (
			gw, gh = int(g.Width), int(g.Height)
			xo, yo = int(g.XOffset), int(g.YOffset)
		)
		if gw > 0 && gh > 0 {
			if s.Wrap && x+sx*(xo+gw) > c.width {
				x, y = 0, y+sy*line
			}
			p.draw = true
			p.box = image.Rect(x+xo*sx, y+yo*sy, x+(xo+gw)*sx, y+(yo+gh)*sy)
		}
		p.at = image.Pt(x, y)
		p.next = image.Pt(x+int(g.XAdvance)*sx, y)

	case *font.PackFont:
		if s.Wrap && x+sx*f.Width > c.width {
			x, y = 0, y+sy*line
		}
		p.draw = f.Glyph(ch) != nil
		p.box = image.Rect(x, y, x+sx*f.Width, y+sy*f.Height)
		p.at = image.Pt(x, y)
		p.next = image.Pt(x+sx*f.Width, y)

	default:
		if s.Wrap && x+sx*font.BuiltinAdvance > c.width {
			x, y = 0, y+sy*line
		}
		p.draw = true
		p.box = image.Rect(x, y, x+sx*font.BuiltinAdvance, y+sy*font.BuiltinLine)
		p.at = image.Pt(x, y)
		p.next = image.Pt(x+sx*font.BuiltinAdvance, y)
	}
	return
}

// WriteByte draws ch at the cursor and advances it.
func (c *Canvas) WriteByte(ch byte) error {
	c.StartWrite()
	c.writeByte(ch)
	c.EndWrite()
	return nil
}

func (c *Canvas) writeByte(ch byte) {
	s := &c.text
	p := c.place(s, ch, s.CursorX, s.CursorY)
	if p.draw {
		c.drawChar(s.Font, p.at.X, p.at.Y, ch, s.Color, s.Bg, s.SizeX, s.SizeY, s.CP437)
	}
	s.CursorX, s.CursorY = p.next.X, p.next.Y
}

// Write draws text at the cursor, it implements io.Writer.
func (c *Canvas) Write(p []byte) (int, error) {
	c.StartWrite()
	for _, ch := range p {
		c.writeByte(ch)
	}
	c.EndWrite()
	return len(p), nil
}

// WriteString draws s at the cursor.
func (c *Canvas) WriteString(s string) (int, error) {
	c.StartWrite()
	for i := 0; i < len(s); i++ {
		c.writeByte(s[i])
	}
	c.EndWrite()
	return len(s), nil
}

// Print formats using the default formats and draws the result at the cursor.
func (c *Canvas) Print(a ...any) {
	_, _ = fmt.Fprint(c, a...)
}

// Println is like Print but adds spaces between operands and a newline.
func (c *Canvas) Println(a ...any) {
	_, _ = fmt.Fprintln(c, a...)
}

// Printf formats according to a format specifier and draws the result at the cursor.
func (c *Canvas) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c, format, a...)
}

// DrawChar draws ch with the current font at (x, y), the cursor is left untouched.
func (c *Canvas) DrawChar(x, y int, ch byte, v, bg uint16, sx, sy int) {
	c.drawChar(c.text.Font, x, y, ch, v, bg, max(sx, 1), max(sy, 1), c.text.CP437)
}

func (c *Canvas) drawChar(f font.Font, x, y int, ch byte, v, bg uint16, sx, sy int, cp437 bool) {
	c.StartWrite()
	defer c.EndWrite()

	switch f := f.(type) {
	case *font.GlyphFont:
		c.drawGlyph(f, x, y, ch, v, sx, sy)
	case *font.PackFont:
		c.drawPack(f, x, y, ch, v, bg, sx, sy)
	case *font.Builtin:
		c.drawBuiltin(f, x, y, ch, v, bg, sx, sy, cp437)
	default:
		c.drawBuiltin(font.Classic, x, y, ch, v, bg, sx, sy, cp437)
	}
}

// dot draws a font pixel, magnified to sx by sy.
func (c *Canvas) dot(x, y, sx, sy int, v uint16) {
	if sx == 1 && sy == 1 {
		c.writePixel(x, y, v, c.alpha)
		return
	}
	c.FillRect(x, y, sx, sy, v)
}

func (c *Canvas) drawBuiltin(f *font.Builtin, x, y int, ch byte, v, bg uint16, sx, sy int, cp437 bool) {
	if x >= c.width || y >= c.height || x+font.BuiltinAdvance*sx-1 < 0 || y+font.BuiltinLine*sy-1 < 0 {
		return
	}

	// The classic table has a duplicate at 176, skip it unless the full table is requested.
	if !cp437 && ch >= 176 {
		ch++
	}

	for i, line := range f.Glyph(ch) {
		for j := 0; j < font.BuiltinLine; j, line = j+1, line>>1 {
			if line&1 != 0 {
				c.dot(x+i*sx, y+j*sy, sx, sy, v)
			} else if bg != v {
				c.dot(x+i*sx, y+j*sy, sx, sy, bg)
			}
		}
	}

	// Spacing column.
	if bg != v {
		if sx == 1 && sy == 1 {
			c.vline(x+font.BuiltinWidth, y, font.BuiltinLine, bg)
		} else {
			c.FillRect(x+font.BuiltinWidth*sx, y, sx, font.BuiltinLine*sy, bg)
		}
	}
}

func (c *Canvas) drawGlyph(f *font.GlyphFont, x, y int, ch byte, v uint16, sx, sy int) {
	if !f.Has(ch) {
		return
	}
	var (
		g      = f.Glyph(ch)
		o      = g.BitmapOffset
		gw, gh = int(g.Width), int(g.Height)
		xo, yo = int(g.XOffset), int(g.YOffset)
		bits   byte
		bit    byte
	)
	for yy := 0; yy < gh; yy++ {
		for xx := 0; xx < gw; xx++ {
			if bit&7 == 0 {
				if o >= len(f.Bitmap) {
					return
				}
				bits = f.Bitmap[o]
				o++
			}
			bit++
			if bits&0x80 != 0 {
				c.dot(x+(xo+xx)*sx, y+(yo+yy)*sy, sx, sy, v)
			}
			bits <<= 1
		}
	}
}

func (c *Canvas) drawPack(f *font.PackFont, x, y int, ch byte, v, bg uint16, sx, sy int) {
	if x >= c.width || y >= c.height || x+f.Width*sx-1 < 0 || y+f.Height*sy-1 < 0 {
		return
	}
	columns := f.Glyph(ch)
	if columns == nil {
		return
	}
	for i, line := range columns {
		for j := 0; j < f.Height; j++ {
			if j < 8 && line>>uint(j)&1 != 0 {
				c.dot(x+i*sx, y+j*sy, sx, sy, v)
			} else if bg != v {
				c.dot(x+i*sx, y+j*sy, sx, sy, bg)
			}
		}
	}
}

// TextBounds returns the pixels covered by s when written at (x, y) with the current text
// state. Nothing is drawn. If no character covers any pixel the empty rectangle at (x, y) is
// returned.
func (c *Canvas) TextBounds(s string, x, y int) image.Rectangle {
	var (
		state  = c.text
		bounds image.Rectangle
		found  bool
		pen    = image.Pt(x, y)
	)
	for i := 0; i < len(s); i++ {
		p := c.place(&state, s[i], pen.X, pen.Y)
		if !p.box.Empty() {
			if found {
				bounds = bounds.Union(p.box)
			} else {
				bounds, found = p.box, true
			}
		}
		pen = p.next
	}
	if !found {
		return image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x, y)}
	}
	return bounds
}

// CharBounds returns the pixels covered by ch at pen (x, y) and the pen position after it.
func (c *Canvas) CharBounds(ch byte, x, y int) (image.Rectangle, image.Point) {
	p := c.place(&c.text, ch, x, y)
	return p.box, p.next
}
