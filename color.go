package vg

import "github.com/agg-go/vgcanvas/internal/paintsrc"

// Color is a straight (non-premultiplied) RGBA color, each channel in
// [0,1]. Out-of-range inputs are clamped at the point of use, never
// rejected.
type Color struct {
	R, G, B, A float64
}

// RGB constructs an opaque color.
func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// RGBA constructs a color with explicit alpha.
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

func (c Color) internal() paintsrc.Color {
	return paintsrc.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Clamped returns c with every channel clamped into [0,1], matching what
// a color getter reports back after a prior clamped set.
func (c Color) Clamped() Color {
	ic := c.internal().Clamped()
	return Color{ic.R, ic.G, ic.B, ic.A}
}
