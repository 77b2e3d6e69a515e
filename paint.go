package vg

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
	"github.com/agg-go/vgcanvas/internal/paintsrc"
	"github.com/agg-go/vgcanvas/internal/refcount"
	"github.com/agg-go/vgcanvas/internal/surface"
)

type SpreadMethod int

const (
	SpreadPad SpreadMethod = iota
	SpreadRepeat
	SpreadReflect
)

func (s SpreadMethod) internal() basics.SpreadMethod {
	switch s {
	case SpreadRepeat:
		return basics.SpreadRepeat
	case SpreadReflect:
		return basics.SpreadReflect
	default:
		return basics.SpreadPad
	}
}

type TextureType int

const (
	TexturePlain TextureType = iota
	TextureTiled
)

func (t TextureType) internal() basics.TextureType {
	if t == TextureTiled {
		return basics.TextureTiled
	}
	return basics.TexturePlain
}

// GradientStop is one color stop of a gradient paint.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Paint is a shared-ownership paint handle: solid color, linear/radial
// gradient, or texture.
type Paint struct {
	box *refcount.Box[paintsrc.Paint]
}

func newPaint(p paintsrc.Paint) *Paint {
	return &Paint{box: refcount.New(p, nil)}
}

func (p *Paint) Reference() *Paint {
	if p == nil {
		return nil
	}
	p.box.Reference()
	return p
}

func (p *Paint) Destroy() {
	if p == nil {
		return
	}
	p.box.Destroy()
}

func (p *Paint) store() *paintsrc.Paint { return p.box.Value() }

// NewSolidPaint builds an opaque/translucent solid color paint.
func NewSolidPaint(c Color) *Paint {
	return newPaint(paintsrc.Paint{
		Kind:        paintsrc.KindSolid,
		Solid:       c.internal(),
		LocalMatrix: geom.Identity(),
		Opacity:     1,
	})
}

// SetRGB sets an opaque color.
func (p *Paint) SetRGB(r, g, b float64) { p.setColor(RGB(r, g, b)) }

// SetRGBA sets a color with explicit alpha.
func (p *Paint) SetRGBA(r, g, b, a float64) { p.setColor(RGBA(r, g, b, a)) }

func (p *Paint) setColor(c Color) {
	store := p.store()
	store.Kind = paintsrc.KindSolid
	store.Solid = c.internal()
}

// Color returns the paint's solid color, clamped.
func (p *Paint) Color() Color {
	s := p.store().Solid
	return Color{s.R, s.G, s.B, s.A}.Clamped()
}

// NewLinearGradientPaint builds a linear gradient paint from p1 to p2
// with the given color stops and spread method.
func NewLinearGradientPaint(x1, y1, x2, y2 float64, stops []GradientStop, spread SpreadMethod) *Paint {
	return newPaint(paintsrc.Paint{
		Kind:        paintsrc.KindLinearGradient,
		Stops:       toInternalStops(stops),
		Spread:      spread.internal(),
		P1:          geom.Point{X: float32(x1), Y: float32(y1)},
		P2:          geom.Point{X: float32(x2), Y: float32(y2)},
		LocalMatrix: geom.Identity(),
		Opacity:     1,
	})
}

// NewRadialGradientPaint builds an SVG 1.1 two-circle radial gradient
// paint: a focal circle (fx,fy,fr) and an outer circle (cx,cy,cr).
func NewRadialGradientPaint(fx, fy, fr, cx, cy, cr float64, stops []GradientStop, spread SpreadMethod) *Paint {
	return newPaint(paintsrc.Paint{
		Kind:        paintsrc.KindRadialGradient,
		Stops:       toInternalStops(stops),
		Spread:      spread.internal(),
		C1:          geom.Point{X: float32(fx), Y: float32(fy)},
		R1:          fr,
		C2:          geom.Point{X: float32(cx), Y: float32(cy)},
		R2:          cr,
		LocalMatrix: geom.Identity(),
		Opacity:     1,
	})
}

// NewTexturePaint builds a texture paint sampling src, per textureType.
func NewTexturePaint(src *Surface, textureType TextureType) *Paint {
	return newPaint(paintsrc.Paint{
		Kind:        paintsrc.KindTexture,
		Texture:     surface.TextureView{S: src.surf()},
		TextureType: textureType.internal(),
		LocalMatrix: geom.Identity(),
		Opacity:     1,
	})
}

// SetLocalMatrix sets the paint's own matrix, composed with the canvas's
// current transform at draw time.
func (p *Paint) SetLocalMatrix(m Matrix) {
	p.store().LocalMatrix = *m.toGeom()
}

// SetOpacity sets the paint-level opacity in [0,1].
func (p *Paint) SetOpacity(o float64) {
	p.store().Opacity = basics.Clamp01(o)
}

func toInternalStops(stops []GradientStop) []paintsrc.Stop {
	out := make([]paintsrc.Stop, len(stops))
	for i, s := range stops {
		out[i] = paintsrc.Stop{Offset: basics.Clamp01(s.Offset), Color: s.Color.internal()}
	}
	return out
}
