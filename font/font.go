// Package font holds the bitmap fonts that canvases render text with.
//
// A [Font] is one of three formats:
//   - [*Builtin], the classic 5x7 fixed font in a 6x8 cell;
//   - [*GlyphFont], a proportional font with per glyph metrics;
//   - [*PackFont], a fixed font with column bytes and a character lookup string.
package font

import "strings"

// Font is a bitmap font. The set of implementations is closed, renderers select on the
// concrete type.
type Font interface {
	font()
}

// Builtin is a fixed 5x7 font stored column-major, 5 bytes per character with bit 0 as
// the top row. Characters are drawn in a 6x8 cell.
type Builtin struct {
	glyphs *[256 * 5]byte
}

// Classic is the builtin font.
var Classic = &Builtin{glyphs: &classicGlyphs}

// Builtin cell metrics.
const (
	BuiltinWidth   = 5
	BuiltinHeight  = 7
	BuiltinAdvance = 6
	BuiltinLine    = 8
)

func (*Builtin) font() {}

// Glyph returns the columns of character c.
func (f *Builtin) Glyph(c byte) []byte {
	o := int(c) * BuiltinWidth
	return f.glyphs[o : o+BuiltinWidth]
}

// Pack converts the characters in lookup to a [PackFont].
func (f *Builtin) Pack(lookup string) *PackFont {
	data := make([]byte, 0, len(lookup)*BuiltinWidth)
	for i := 0; i < len(lookup); i++ {
		data = append(data, f.Glyph(lookup[i])...)
	}
	return &PackFont{
		Width:  BuiltinWidth,
		Height: BuiltinLine,
		Data:   data,
		Lookup: lookup,
	}
}

// Glyph describes a single character of a [GlyphFont].
type Glyph struct {
	// BitmapOffset is the offset of the first byte in GlyphFont.Bitmap.
	BitmapOffset int

	// Width and Height of the bitmap in pixels.
	Width, Height uint8

	// XAdvance is the distance to advance the cursor.
	XAdvance uint8

	// XOffset and YOffset are the distance from the cursor to the upper left corner,
	// the cursor sits on the baseline.
	XOffset, YOffset int8
}

// GlyphFont is a proportional font with glyphs for the characters First to Last.
//
// Glyph bitmaps are packed MSB first without any row padding.
type GlyphFont struct {
	Bitmap      []byte
	Glyphs      []Glyph
	First, Last byte
	YAdvance    uint8
}

func (*GlyphFont) font() {}

// Has checks if c has a glyph.
func (f *GlyphFont) Has(c byte) bool {
	return c >= f.First && c <= f.Last && int(c-f.First) < len(f.Glyphs)
}

// Glyph returns the glyph of c, c must be in range.
func (f *GlyphFont) Glyph(c byte) Glyph {
	return f.Glyphs[c-f.First]
}

// PackFont is a fixed font where every character is Width column bytes, bit j of a column
// is row j. Lookup lists the characters in the order they appear in Data.
type PackFont struct {
	Width  int
	Height int
	Data   []byte
	Lookup string
}

func (*PackFont) font() {}

// Glyph returns the columns of c, or nil if the font has no such character.
func (f *PackFont) Glyph(c byte) []byte {
	i := strings.IndexByte(f.Lookup, c)
	if i < 0 {
		return nil
	}
	o := i * f.Width
	if o+f.Width > len(f.Data) {
		return nil
	}
	return f.Data[o : o+f.Width]
}

// Interface checks.
var (
	_ Font = (*Builtin)(nil)
	_ Font = (*GlyphFont)(nil)
	_ Font = (*PackFont)(nil)
)
