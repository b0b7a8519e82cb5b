package font

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestClassic(t *testing.T) {
	if v, want := Classic.Glyph('A'), []byte{0x7C, 0x12, 0x11, 0x12, 0x7C}; !bytes.Equal(v, want) {
		t.Errorf("expected glyph A to be %#02x, got %#02x", want, v)
	}
	if v := Classic.Glyph(' '); !bytes.Equal(v, make([]byte, 5)) {
		t.Errorf("expected space to be blank, got %#02x", v)
	}
	if v := Classic.Glyph(0xFF); len(v) != BuiltinWidth {
		t.Errorf("expected %d columns for the last character, got %d", BuiltinWidth, len(v))
	}
}

func TestPackFont(t *testing.T) {
	f := Classic.Pack("AB")
	if f.Width != 5 || f.Height != 8 {
		t.Errorf("expected 5x8 cells, got %dx%d", f.Width, f.Height)
	}
	if v := f.Glyph('B'); !bytes.Equal(v, Classic.Glyph('B')) {
		t.Errorf("expected glyph B to match the builtin font, got %#02x", v)
	}
	if v := f.Glyph('C'); v != nil {
		t.Errorf("expected no glyph for C, got %#02x", v)
	}
}

func TestGlyphFont(t *testing.T) {
	if !TomThumb.Has('~') || TomThumb.Has(0x7F) || TomThumb.Has(0x1F) {
		t.Error("expected TomThumb to cover 0x20-0x7E")
	}
	g := TomThumb.Glyph('!')
	if g.Width != 1 || g.Height != 5 || g.XAdvance != 2 || g.YOffset != -5 {
		t.Errorf("unexpected glyph metrics %+v", g)
	}
}

func TestFromFace(t *testing.T) {
	f := Basic7x13()
	if f.First != 0x20 || f.Last != 0x7E || len(f.Glyphs) != 95 {
		t.Fatalf("expected 95 glyphs for 0x20-0x7E, got %d (%#02x-%#02x)", len(f.Glyphs), f.First, f.Last)
	}
	if f.YAdvance != 13 {
		t.Errorf("expected line height 13, got %d", f.YAdvance)
	}
	g := f.Glyph('M')
	if g.Width != 6 || g.Height != 13 || g.XAdvance != 7 || g.XOffset != 0 || g.YOffset != -11 {
		t.Errorf("unexpected glyph metrics %+v", g)
	}
	if len(f.Bitmap) != 95*10 {
		t.Errorf("expected 10 bytes per glyph, got %d bytes", len(f.Bitmap))
	}
	var ink int
	for _, b := range f.Bitmap[g.BitmapOffset : g.BitmapOffset+10] {
		for ; b != 0; b &= b - 1 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("expected glyph M to have pixels set")
	}
	for _, b := range f.Bitmap[:10] {
		if b != 0 {
			t.Fatalf("expected space to be blank, got %#02x", f.Bitmap[:10])
		}
	}
	if Basic7x13() != f {
		t.Error("expected the converted font to be cached")
	}
}

func TestRegistry(t *testing.T) {
	r := Standard()
	if v, want := r.Names(), []string{"TomThumb", "basic7x13", "classic", "oled5x8"}; !reflect.DeepEqual(v, want) {
		t.Errorf("expected names %q, got %q", want, v)
	}

	f, err := r.Lookup("classic")
	if err != nil {
		t.Fatal(err)
	}
	if f != Font(Classic) {
		t.Errorf("expected classic font, got %T", f)
	}

	if _, err = r.Lookup("comic"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	r.Register("comic", TomThumb)
	if f, _ = r.Lookup("comic"); f != Font(TomThumb) {
		t.Errorf("expected registered font, got %T", f)
	}

	if v := NewRegistry().Names(); len(v) != 0 {
		t.Errorf("expected empty registry, got %q", v)
	}
}
