package font

import (
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterizes the characters first to last of face into a [GlyphFont]. Mask pixels
// with at least half coverage are set.
func FromFace(face xfont.Face, first, last byte) *GlyphFont {
	f := &GlyphFont{
		First:    first,
		Last:     last,
		YAdvance: uint8(face.Metrics().Height.Round()),
	}
	for c := int(first); c <= int(last); c++ {
		dr, mask, mp, advance, ok := face.Glyph(fixed.Point26_6{}, rune(c))
		if !ok {
			f.Glyphs = append(f.Glyphs, Glyph{BitmapOffset: len(f.Bitmap)})
			continue
		}

		g := Glyph{
			BitmapOffset: len(f.Bitmap),
			Width:        uint8(dr.Dx()),
			Height:       uint8(dr.Dy()),
			XAdvance:     uint8(advance.Round()),
			XOffset:      int8(dr.Min.X),
			YOffset:      int8(dr.Min.Y),
		}

		var bits, n byte
		for y := 0; y < dr.Dy(); y++ {
			for x := 0; x < dr.Dx(); x++ {
				bits <<= 1
				if _, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA(); a >= 0x8000 {
					bits |= 1
				}
				if n++; n == 8 {
					f.Bitmap = append(f.Bitmap, bits)
					bits, n = 0, 0
				}
			}
		}
		if n > 0 {
			f.Bitmap = append(f.Bitmap, bits<<(8-n))
		}

		f.Glyphs = append(f.Glyphs, g)
	}
	return f
}

var basic7x13 = sync.OnceValue(func() *GlyphFont {
	return FromFace(basicfont.Face7x13, 0x20, 0x7E)
})

// Basic7x13 is the printable ASCII range of [basicfont.Face7x13].
func Basic7x13() *GlyphFont {
	return basic7x13()
}
