// Package gfx implements a drawing canvas for small OLED and LCD panels.
//
// A [Canvas] wraps a packed [pixel.Surface] and draws in logical coordinates, mapping every
// write through the canvas [Rotation] after clipping. Pixels written to the surface grow the
// dirty [Window], which display drivers consume to transfer only what changed.
//
// Text is drawn with one of the [font.Font] variants, or with TrueType fonts through
// [Canvas.DrawString].
package gfx
