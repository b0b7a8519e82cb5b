package gfx

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrInvalidSize     = errors.New("gfx: invalid size")
	ErrInvalidAlpha    = errors.New("gfx: alpha out of range [0, 1]")
	ErrInvalidPenWidth = errors.New("gfx: pen width must be > 0")
	ErrUnsupported     = errors.New("gfx: canvas has no surface")
)
