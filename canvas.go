package vg

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/blend"
	"github.com/agg-go/vgcanvas/internal/geom"
	"github.com/agg-go/vgcanvas/internal/paintsrc"
	"github.com/agg-go/vgcanvas/internal/pathstore"
	"github.com/agg-go/vgcanvas/internal/raster"
	"github.com/agg-go/vgcanvas/internal/refcount"
)

type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (f FillRule) internal() basics.FillRule {
	if f == EvenOdd {
		return basics.EvenOdd
	}
	return basics.NonZero
}

// Operator is a Porter-Duff compositing operator. This core
// supports exactly the four named here.
type Operator int

const (
	OpSrc Operator = iota
	OpSrcOver
	OpDstIn
	OpDstOut
)

func (o Operator) internal() basics.Operator {
	switch o {
	case OpDstIn:
		return basics.OpDstIn
	case OpDstOut:
		return basics.OpDstOut
	case OpSrc:
		return basics.OpSrc
	default:
		return basics.OpSrcOver
	}
}

// state is one frame of the canvas's save/restore stack: paint
// reference incremented on save, clip spans copied, dash array copied.
// A single paint slot serves both fill_preserve and stroke_preserve,
// matching plutovg_state_t's one state->paint.
type state struct {
	paint     *Paint
	stroke    StrokeStyle
	dash      Dash
	fillRule  FillRule
	op        Operator
	opacity   float64
	matrix    geom.Matrix
	clipping  bool
	clipSpans raster.SpanBuffer
}

func (s state) clone() state {
	c := s
	c.paint = s.paint.Reference()
	c.dash = Dash{Offset: s.dash.Offset, Array: append([]float64(nil), s.dash.Array...)}
	c.clipSpans = raster.SpanBuffer{Spans: append([]raster.Span(nil), s.clipSpans.Spans...)}
	return c
}

func (s *state) release() {
	s.paint.Destroy()
}

// Canvas is the shared-ownership drawing context over a target surface:
// a stack of drawing states plus an accumulated current path.
type Canvas struct {
	box *refcount.Box[canvasCore]
}

type canvasCore struct {
	surface *Surface
	path    *pathstore.Path
	cur     state
	stack   []state
}

// NewCanvas creates a canvas drawing into surf, with default state: opaque
// black fill, SRC_OVER, full opacity, identity transform, no clip.
func NewCanvas(surf *Surface) *Canvas {
	core := canvasCore{
		surface: surf.Reference(),
		path:    pathstore.New(),
		cur: state{
			paint:    NewSolidPaint(RGB(0, 0, 0)),
			stroke:   DefaultStrokeStyle(),
			fillRule: NonZero,
			op:       OpSrcOver,
			opacity:  1,
			matrix:   geom.Identity(),
		},
	}
	return &Canvas{box: refcount.New(core, func(c *canvasCore) {
		c.cur.release()
		for i := range c.stack {
			c.stack[i].release()
		}
		c.surface.Destroy()
	})}
}

func (c *Canvas) Reference() *Canvas {
	if c == nil {
		return nil
	}
	c.box.Reference()
	return c
}

func (c *Canvas) Destroy() {
	if c == nil {
		return
	}
	c.box.Destroy()
}

func (c *Canvas) core() *canvasCore { return c.box.Value() }

// Save pushes a deep copy of the current state.
func (c *Canvas) Save() {
	core := c.core()
	core.stack = append(core.stack, core.cur.clone())
}

// Restore pops the state stack, releasing refs. A no-op if the stack is
// empty (the last frame can never be popped).
func (c *Canvas) Restore() {
	core := c.core()
	n := len(core.stack)
	if n == 0 {
		return
	}
	core.cur.release()
	core.cur = core.stack[n-1]
	core.stack = core.stack[:n-1]
}

// Surface returns the canvas's target surface (borrowed; does not
// increment its ref count).
func (c *Canvas) Surface() *Surface { return c.core().surface }

// --- path state: the canvas keeps its own path store directly, since
// current-path mutation is part of the canvas's own state,
// not via a borrowed Path handle ---

func (c *Canvas) MoveTo(x, y float64) { c.core().path.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.core().path.LineTo(x, y) }
func (c *Canvas) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	c.core().path.CubicTo(x1, y1, x2, y2, x3, y3)
}
func (c *Canvas) QuadTo(x1, y1, x2, y2 float64) { c.core().path.QuadTo(x1, y1, x2, y2) }
func (c *Canvas) ClosePath()                    { c.core().path.Close() }
func (c *Canvas) ResetPath()                     { c.core().path.Reset() }

func (c *Canvas) Rect(x, y, w, h float64)        { c.core().path.AddRect(x, y, w, h) }
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) { c.core().path.AddEllipse(cx, cy, rx, ry) }
func (c *Canvas) Circle(cx, cy, r float64)       { c.core().path.AddCircle(cx, cy, r) }
func (c *Canvas) RoundRect(x, y, w, h, rx, ry float64) {
	c.core().path.AddRoundRect(x, y, w, h, rx, ry)
}
func (c *Canvas) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	c.core().path.AddArc(cx, cy, r, a0, a1, ccw)
}

// AddPath appends an already-built path's contents to the canvas's
// current path, transformed by m (identity if nil).
func (c *Canvas) AddPath(p *Path, m *Matrix) {
	mm := Identity()
	if m != nil {
		mm = *m
	}
	c.core().path.AddPath(p.store(), mm.toGeom())
}

// --- paint / style state ---

// SetPaint sets the canvas's one paint, shared by FillPreserve and
// StrokePreserve alike, matching plutovg_canvas_set_paint.
func (c *Canvas) SetPaint(p *Paint) {
	core := c.core()
	core.cur.paint.Destroy()
	core.cur.paint = p.Reference()
}

// SetSolid sets the paint to an opaque/translucent solid color, folding
// plutovg's set_source_rgb/set_source_rgba convenience setters into one
// call, matching agg2d.go's FillColor naming.
func (c *Canvas) SetSolid(col Color) { c.SetPaint(NewSolidPaint(col)) }

// SetSolidRGBA is SetSolid from raw channels.
func (c *Canvas) SetSolidRGBA(r, g, b, a float64) { c.SetSolid(RGBA(r, g, b, a)) }

// SetTexture sets the paint to a texture sampled from src,
// matching plutovg's set_source_surface.
func (c *Canvas) SetTexture(src *Surface, textureType TextureType) {
	c.SetPaint(NewTexturePaint(src, textureType))
}

func (c *Canvas) SetFillRule(r FillRule)       { c.core().cur.fillRule = r }
func (c *Canvas) SetOperator(op Operator)      { c.core().cur.op = op }
func (c *Canvas) SetOpacity(o float64)         { c.core().cur.opacity = basics.Clamp01(o) }
func (c *Canvas) SetStrokeStyle(s StrokeStyle) { c.core().cur.stroke = s }
func (c *Canvas) SetDash(d Dash) {
	c.core().cur.dash = Dash{Offset: d.Offset, Array: append([]float64(nil), d.Array...)}
}

// --- transform state: translate/scale/rotate/shear/transform premultiply
// on the left; set_matrix replaces; reset_matrix is identity ---

func (c *Canvas) Translate(tx, ty float64) { c.mutateMatrix(func(m geom.Matrix) geom.Matrix { return m.Translate(tx, ty) }) }
func (c *Canvas) Scale(sx, sy float64)     { c.mutateMatrix(func(m geom.Matrix) geom.Matrix { return m.Scale(sx, sy) }) }
func (c *Canvas) Rotate(angle float64)     { c.mutateMatrix(func(m geom.Matrix) geom.Matrix { return m.Rotate(angle) }) }
func (c *Canvas) Shear(shx, shy float64)   { c.mutateMatrix(func(m geom.Matrix) geom.Matrix { return m.ShearBy(shx, shy) }) }
func (c *Canvas) TransformBy(m Matrix) {
	c.mutateMatrix(func(cur geom.Matrix) geom.Matrix { return cur.Mul(*m.toGeom()) })
}
func (c *Canvas) SetMatrix(m Matrix) { c.core().cur.matrix = *m.toGeom() }
func (c *Canvas) ResetMatrix()       { c.core().cur.matrix = geom.Identity() }
func (c *Canvas) GetMatrix() Matrix  { return fromGeom(c.core().cur.matrix) }

func (c *Canvas) mutateMatrix(f func(geom.Matrix) geom.Matrix) {
	core := c.core()
	core.cur.matrix = f(core.cur.matrix)
}

// --- draw verbs ---

// Fill builds spans from the current path, intersects with clip coverage
// if clipping, composites with the current paint, then resets the path.
func (c *Canvas) Fill() {
	c.FillPreserve()
	c.core().path.Reset()
}

// FillPreserve is Fill without resetting the current path.
func (c *Canvas) FillPreserve() {
	core := c.core()
	if core.path.Empty() {
		return
	}
	spans := raster.Fill(core.path, core.cur.matrix, clipBoxFor(core.surface), core.cur.fillRule.internal())
	c.compositeSpans(spans, core.cur.paint)
}

// Stroke builds the stroke outline from the current path, fills it, then
// resets the path.
func (c *Canvas) Stroke() {
	c.StrokePreserve()
	c.core().path.Reset()
}

// StrokePreserve is Stroke without resetting the current path.
func (c *Canvas) StrokePreserve() {
	core := c.core()
	if core.path.Empty() || core.cur.stroke.Width <= 0 {
		return
	}
	outline := strokeOutline(core.path, core.cur.stroke, core.cur.dash)
	spans := raster.Fill(outline, core.cur.matrix, clipBoxFor(core.surface), basics.NonZero)
	c.compositeSpans(spans, core.cur.paint)
}

// Clip rasterizes the current path and intersects it with any existing
// clip spans (or adopts it outright on the first clip), then resets the
// path.
func (c *Canvas) Clip() {
	core := c.core()
	if core.path.Empty() {
		core.path.Reset()
		return
	}
	spans := raster.Fill(core.path, core.cur.matrix, clipBoxFor(core.surface), core.cur.fillRule.internal())
	if core.cur.clipping {
		core.cur.clipSpans = raster.Intersect(core.cur.clipSpans, spans)
	} else {
		core.cur.clipSpans = spans
		core.cur.clipping = true
	}
	core.path.Reset()
}

// ResetClip clears the clip state: subsequent draws are unclipped again.
func (c *Canvas) ResetClip() {
	core := c.core()
	core.cur.clipping = false
	core.cur.clipSpans = raster.SpanBuffer{}
}

// Paint fills the entire clip region (or the whole surface, if unclipped)
// with the current paint.
func (c *Canvas) Paint() {
	core := c.core()
	var spans raster.SpanBuffer
	if core.cur.clipping {
		spans = core.cur.clipSpans
	} else {
		spans = raster.RectFill(0, 0, int32(core.surface.Width()), int32(core.surface.Height()))
	}
	c.composite(spans, core.cur.paint)
}

// compositeSpans intersects spans (already run through raster.Fill against
// the surface's hard bounds) with the canvas's soft clip region, if any,
// then composites.
func (c *Canvas) compositeSpans(spans raster.SpanBuffer, p *Paint) {
	core := c.core()
	if core.cur.clipping {
		spans = raster.Intersect(spans, core.cur.clipSpans)
	}
	c.composite(spans, p)
}

// composite blends spans (already clipped by the caller) with p.
func (c *Canvas) composite(spans raster.SpanBuffer, p *Paint) {
	core := c.core()
	if spans.Empty() {
		return
	}
	ev := paintsrc.NewEvaluator(p.store(), core.cur.matrix)
	opacity := uint8(basics.Clamp01(core.cur.opacity)*255 + 0.5)
	blend.Composite(core.surface.surf(), spans, ev, core.cur.op.internal(), opacity)
}

func clipBoxFor(s *Surface) raster.ClipBox {
	return raster.ClipBox{X0: 0, Y0: 0, X1: int32(s.Width()), Y1: int32(s.Height())}
}
