// Package paintsrc evaluates paint (solid color, gradient, texture) into
// rows of premultiplied ARGB32 source pixels for the compositor.
// Based on internal/span (span_gradient,
// span_image_filter) generator family, collapsed to the three paint kinds
// this core supports and reworked around plain per-row evaluator funcs
// instead of AGG's generator/interpolator template stack.
package paintsrc

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/config"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// Color is a straight (non-premultiplied) RGBA color in [0,1] per channel.
type Color struct {
	R, G, B, A float64
}

// Clamped returns c with every channel clamped to [0,1].
func (c Color) Clamped() Color {
	return Color{basics.Clamp01(c.R), basics.Clamp01(c.G), basics.Clamp01(c.B), basics.Clamp01(c.A)}
}

// Premultiply converts a straight color to a premultiplied ARGB32 word,
// truncating (not rounding) each channel product, matching the reference
// behavior scenario 2 depends on.
func (c Color) Premultiply() uint32 {
	c = c.Clamped()
	a := byte(c.A * 255)
	r := byte(c.R * c.A * 255)
	g := byte(c.G * c.A * 255)
	b := byte(c.B * c.A * 255)
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Stop is one gradient color stop.
type Stop struct {
	Offset float64
	Color  Color
}

// Kind tags which paint variant is active.
type Kind uint8

const (
	KindSolid Kind = iota
	KindLinearGradient
	KindRadialGradient
	KindTexture
)

// TextureSampler provides bilinear-sampleable premultiplied texture
// pixels; implemented by internal/surface.Surface for the canvas's own
// texture paints.
type TextureSampler interface {
	Width() int
	Height() int
	AtPremultiplied(x, y int) uint32
}

// Paint is the tagged paint variant.
type Paint struct {
	Kind Kind

	// Solid
	Solid Color

	// Gradient (linear: P1,P2; radial: C1,R1 (focal) and C2,R2 (outer))
	Stops  []Stop
	Spread basics.SpreadMethod
	P1, P2 geom.Point // linear endpoints
	C1     geom.Point // radial focal center
	R1     float64    // radial focal radius
	C2     geom.Point // radial outer center
	R2     float64    // radial outer radius

	// Texture
	Texture     TextureSampler
	TextureType basics.TextureType

	// LocalMatrix maps paint space to user space.
	LocalMatrix geom.Matrix

	Opacity float64 // paint-level opacity in [0,1]
}

// lut is a 256-entry premultiplied gradient lookup table.
type lut [config.GradientLUTSize]uint32

func buildLUT(stops []Stop, opacity float64) lut {
	var t lut
	if len(stops) == 0 {
		return t // all zero -> transparent
	}
	n := config.GradientLUTSize
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1)
		t[i] = sampleStops(stops, pos, opacity)
	}
	return t
}

func sampleStops(stops []Stop, pos, opacity float64) uint32 {
	if pos <= stops[0].Offset {
		return applyOpacity(stops[0].Color, opacity).Premultiply()
	}
	last := stops[len(stops)-1]
	if pos >= last.Offset {
		return applyOpacity(last.Color, opacity).Premultiply()
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if pos <= b.Offset {
			span := b.Offset - a.Offset
			k := 0.5
			if span > 0 {
				k = (pos - a.Offset) / span
			}
			return applyOpacity(lerpColor(a.Color, b.Color, k), opacity).Premultiply()
		}
	}
	return applyOpacity(last.Color, opacity).Premultiply()
}

func applyOpacity(c Color, opacity float64) Color {
	c.A *= opacity
	return c
}

func lerpColor(a, b Color, k float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*k,
		G: a.G + (b.G-a.G)*k,
		B: a.B + (b.B-a.B)*k,
		A: a.A + (b.A-a.A)*k,
	}
}

// Evaluator is the paint, baked into a fast per-row form: the LUT (if any)
// and the inverse of canvas_matrix∘paint.local_matrix.
type Evaluator struct {
	paint   *Paint
	lut     lut
	hasLUT  bool
	inverse geom.Matrix
	ok      bool // false if the combined matrix is non-invertible
}

// NewEvaluator bakes a Paint against the canvas's current transform
//").
func NewEvaluator(p *Paint, canvasMatrix geom.Matrix) *Evaluator {
	e := &Evaluator{paint: p}
	combined := canvasMatrix.Mul(p.LocalMatrix)
	inv, ok := combined.Invert()
	e.inverse = inv
	e.ok = ok
	if p.Kind == KindLinearGradient || p.Kind == KindRadialGradient {
		e.lut = buildLUT(p.Stops, clampOpacity(p.Opacity))
		e.hasLUT = len(p.Stops) > 0
	}
	return e
}

func clampOpacity(o float64) float64 { return basics.Clamp01(o) }

// Row fills out[0:length] with premultiplied ARGB32 pixels for the
// horizontal run starting at (x,y), satisfying
// internal/blend.Source.
func (e *Evaluator) Row(x, y, length int32, out []uint32) {
	switch e.paint.Kind {
	case KindSolid:
		e.rowSolid(out[:length])
	case KindLinearGradient:
		e.rowLinear(x, y, out[:length])
	case KindRadialGradient:
		e.rowRadial(x, y, out[:length])
	case KindTexture:
		e.rowTexture(x, y, out[:length])
	}
}

func (e *Evaluator) rowSolid(out []uint32) {
	c := applyOpacity(e.paint.Solid, clampOpacity(e.paint.Opacity))
	v := c.Premultiply()
	for i := range out {
		out[i] = v
	}
}

// transparent spans (non-invertible matrix, zero stops) are represented
// as the zero ARGB32 word.
func fillTransparent(out []uint32) {
	for i := range out {
		out[i] = 0
	}
}

func (e *Evaluator) rowLinear(x, y int32, out []uint32) {
	if !e.ok || !e.hasLUT {
		fillTransparent(out)
		return
	}
	p1, p2 := e.paint.P1, e.paint.P2
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	denom := dx*dx + dy*dy
	if denom == 0 {
		fillTransparent(out)
		return
	}
	for i := range out {
		px, py := e.inverse.Apply(float64(x)+float64(i)+0.5, float64(y)+0.5)
		t := ((px-float64(p1.X))*dx + (py-float64(p1.Y))*dy) / denom
		t = applySpread(t, e.paint.Spread)
		out[i] = e.lut[lutIndex(t)]
	}
}

// rowRadial implements the SVG 1.1 two-circle radial formulation:
// the parameter is the positive root of a quadratic derived from
// the focal circle (fx,fy,fr) and the outer circle (cx,cy,cr).
func (e *Evaluator) rowRadial(x, y int32, out []uint32) {
	if !e.ok || !e.hasLUT {
		fillTransparent(out)
		return
	}
	cx, cy, cr := float64(e.paint.C2.X), float64(e.paint.C2.Y), e.paint.R2
	fx, fy, fr := float64(e.paint.C1.X), float64(e.paint.C1.Y), e.paint.R1
	if cr == 0 && fr == 0 {
		fillTransparent(out) // degenerate radial gradient: no valid cone
		return
	}
	dcx, dcy, dcr := cx-fx, cy-fy, cr-fr
	a := dcx*dcx + dcy*dcy - dcr*dcr

	for i := range out {
		px, py := e.inverse.Apply(float64(x)+float64(i)+0.5, float64(y)+0.5)
		pdx, pdy := px-fx, py-fy

		b := 2 * (pdx*dcx + pdy*dcy + fr*dcr)
		c := pdx*pdx + pdy*pdy - fr*fr

		var t float64
		has := false
		if math.Abs(a) < 1e-12 {
			if b != 0 {
				t = -c / b
				has = fr+t*dcr >= 0
			}
		} else {
			disc := b*b - 4*a*c
			if disc >= 0 {
				sq := math.Sqrt(disc)
				t1 := (-b + sq) / (2 * a)
				t2 := (-b - sq) / (2 * a)
				t = math.Max(t1, t2)
				has = fr+t*dcr >= 0
			}
		}
		if !has {
			out[i] = 0
			continue
		}
		t = applySpread(t, e.paint.Spread)
		out[i] = e.lut[lutIndex(t)]
	}
}

func (e *Evaluator) rowTexture(x, y int32, out []uint32) {
	if !e.ok || e.paint.Texture == nil {
		fillTransparent(out)
		return
	}
	op := clampOpacity(e.paint.Opacity)
	w, h := e.paint.Texture.Width(), e.paint.Texture.Height()
	for i := range out {
		px, py := e.inverse.Apply(float64(x)+float64(i)+0.5, float64(y)+0.5)
		// sample at pixel centers: subtract 0.5 to align bilinear taps.
		sx, sy := px-0.5, py-0.5
		v, ok := sampleBilinear(e.paint.Texture, w, h, sx, sy, e.paint.TextureType)
		if !ok {
			out[i] = 0
			continue
		}
		out[i] = scaleAlpha(v, op)
	}
}

func scaleAlpha(argb uint32, opacity float64) uint32 {
	if opacity >= 1 {
		return argb
	}
	a := byte(argb >> 24)
	r := byte(argb >> 16)
	g := byte(argb >> 8)
	b := byte(argb)
	f := byte(basics.Clamp01(opacity) * 255)
	return uint32(basics.Div255(uint32(a)*uint32(f)))<<24 |
		uint32(basics.Div255(uint32(r)*uint32(f)))<<16 |
		uint32(basics.Div255(uint32(g)*uint32(f)))<<8 |
		uint32(basics.Div255(uint32(b)*uint32(f)))
}

func lutIndex(t float64) int {
	n := config.GradientLUTSize
	idx := int(t * float64(n-1))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// applySpread maps a gradient parameter outside [0,1] back into range,
// per the given spread method.
func applySpread(t float64, spread basics.SpreadMethod) float64 {
	switch spread {
	case basics.SpreadRepeat:
		t -= math.Floor(t)
		return t
	case basics.SpreadReflect:
		period := 2.0
		m := math.Mod(t, period)
		if m < 0 {
			m += period
		}
		if m > 1 {
			return period - m
		}
		return m
	default: // pad
		return basics.Clamp01(t)
	}
}
