package gfx

import "image"

// Window is the dirty rectangle of a canvas in surface coordinates, both corners inclusive.
//
// A reset window is inverted (X1 > X2) so that the first Mark collapses it onto the pixel.
type Window struct {
	X1, Y1, X2, Y2 int
}

// Reset empties a window for a w by h surface.
func (w *Window) Reset(width, height int) {
	w.X1, w.Y1, w.X2, w.Y2 = width, height, -1, -1
}

// Full marks all of a w by h surface.
func (w *Window) Full(width, height int) {
	w.X1, w.Y1, w.X2, w.Y2 = 0, 0, width-1, height-1
}

// Mark grows the window to include (x, y).
func (w *Window) Mark(x, y int) {
	w.X1 = min(w.X1, x)
	w.Y1 = min(w.Y1, y)
	w.X2 = max(w.X2, x)
	w.Y2 = max(w.Y2, y)
}

// Empty checks if nothing was marked.
func (w Window) Empty() bool {
	return w.X1 > w.X2 || w.Y1 > w.Y2
}

// Rect returns the window as a half-open rectangle, or the zero rectangle when empty.
func (w Window) Rect() image.Rectangle {
	if w.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(w.X1, w.Y1, w.X2+1, w.Y2+1)
}
