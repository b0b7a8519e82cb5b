package gfx

import (
	"fmt"
	"strings"
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// ParseRotation parses a rotation in degrees ("90", "180°") or quarter turns ("1", "r2").
func ParseRotation(s string) (Rotation, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "°") {
	case "", "0", "r0", "none":
		return NoRotation, nil
	case "90", "1", "r1", "cw":
		return Rotate90, nil
	case "180", "2", "r2", "flip":
		return Rotate180, nil
	case "270", "3", "r3", "ccw":
		return Rotate270, nil
	default:
		return NoRotation, fmt.Errorf("gfx: invalid rotation %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rotation) UnmarshalText(text []byte) (err error) {
	*r, err = ParseRotation(string(text))
	return
}

// MarshalText implements encoding.TextMarshaler.
func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(strings.TrimSuffix(r.String(), "°")), nil
}

// Swapped checks if the rotation exchanges width and height.
func (r Rotation) Swapped() bool {
	return r%4 == Rotate90 || r%4 == Rotate270
}

// toPhysical maps logical (x, y) to the surface for a w by h physical surface.
func (r Rotation) toPhysical(x, y, w, h int) (int, int) {
	switch r % 4 {
	case Rotate90:
		return w - 1 - y, x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case Rotate270:
		return y, h - 1 - x
	default:
		return x, y
	}
}

// toLogical is the inverse of toPhysical.
func (r Rotation) toLogical(x, y, w, h int) (int, int) {
	switch r % 4 {
	case Rotate90:
		return y, w - 1 - x
	case Rotate180:
		return w - 1 - x, h - 1 - y
	case Rotate270:
		return h - 1 - y, x
	default:
		return x, y
	}
}
