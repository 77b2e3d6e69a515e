package vg

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
	"github.com/agg-go/vgcanvas/internal/pathstore"
	"github.com/agg-go/vgcanvas/internal/refcount"
	"github.com/agg-go/vgcanvas/internal/svgpath"
)

// Path is a shared-ownership path handle. The zero value is
// not usable; construct with NewPath.
type Path struct {
	box *refcount.Box[pathstore.Path]
}

// NewPath creates an empty path with reference count 1.
func NewPath() *Path {
	return &Path{box: refcount.New(*pathstore.New(), nil)}
}

// Reference increments the ref count and returns the same handle
//. Safe on a nil Path.
func (p *Path) Reference() *Path {
	if p == nil {
		return nil
	}
	p.box.Reference()
	return p
}

// Destroy decrements the ref count, freeing on reaching zero. Safe on a
// nil Path.
func (p *Path) Destroy() {
	if p == nil {
		return
	}
	p.box.Destroy()
}

func (p *Path) store() *pathstore.Path {
	return p.box.Value()
}

// Clone returns a new independent path (ref count 1) with the same
// contents, not a reference to the same handle.
func (p *Path) Clone() *Path {
	return &Path{box: refcount.New(*p.store().Clone(), nil)}
}

func (p *Path) MoveTo(x, y float64)                    { p.store().MoveTo(x, y) }
func (p *Path) LineTo(x, y float64)                    { p.store().LineTo(x, y) }
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) { p.store().CubicTo(x1, y1, x2, y2, x3, y3) }
func (p *Path) QuadTo(x1, y1, x2, y2 float64)          { p.store().QuadTo(x1, y1, x2, y2) }
func (p *Path) Close()                                 { p.store().Close() }
func (p *Path) Reset()                                 { p.store().Reset() }
func (p *Path) Empty() bool                            { return p.store().Empty() }

// CurrentPoint returns the path's current point, if any.
func (p *Path) CurrentPoint() (x, y float64, ok bool) {
	pt, has := p.store().CurrentPoint()
	return float64(pt.X), float64(pt.Y), has
}

func (p *Path) AddRect(x, y, w, h float64)             { p.store().AddRect(x, y, w, h) }
func (p *Path) AddEllipse(cx, cy, rx, ry float64)      { p.store().AddEllipse(cx, cy, rx, ry) }
func (p *Path) AddCircle(cx, cy, r float64)            { p.store().AddCircle(cx, cy, r) }
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) { p.store().AddRoundRect(x, y, w, h, rx, ry) }
func (p *Path) AddArc(cx, cy, r, a0, a1 float64, ccw bool) {
	p.store().AddArc(cx, cy, r, a0, a1, ccw)
}

// ArcTo appends an SVG elliptical-arc segment from the current point to
// (x, y), per the arc_to(rx,ry,phi,large,sweep,x,y) path operation.
func (p *Path) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	p.store().ArcTo(rx, ry, phiDeg, largeArc, sweep, x, y)
}

// AddPath appends src's commands to p, transformed by m (identity if nil).
func (p *Path) AddPath(src *Path, m *Matrix) {
	mm := Identity()
	if m != nil {
		mm = *m
	}
	p.store().AddPath(src.store(), mm.toGeom())
}

// Transform applies m to every point already in the path, in place.
func (p *Path) Transform(m Matrix) {
	p.store().Transform(*m.toGeom())
}

// Extents returns the bounding box (x, y, w, h) of the flattened path. The
// flattened length that the path store also computes is not returned.
func (p *Path) Extents() (x, y, w, h float64) {
	r, _ := p.store().Extents()
	return float64(r.X), float64(r.Y), float64(r.W), float64(r.H)
}

// Traverse invokes fn once per command in the path's own (unflattened)
// command stream: MoveTo/LineTo/Close carry one point, CubicTo three.
func (p *Path) Traverse(fn func(cmd basics.PathCommand, pts []geom.Point)) {
	p.store().Traverse(fn)
}

// TraverseFlatten invokes fn once per vertex of the flattened path: every
// CubicTo is replaced by a run of LineTo calls approximating the curve.
func (p *Path) TraverseFlatten(fn func(cmd basics.PathCommand, x, y float64)) {
	p.store().TraverseFlatten(fn)
}

// TraverseDashed invokes fn with the flattened path's segments broken into
// "on" runs of a dash cycle, per the traverse_dashed(offset, dashes, fn)
// path operation: an offset into the cycle, plus the alternating on/off
// length array (doubled if given an odd length).
func (p *Path) TraverseDashed(offset float64, dashes []float64, fn func(cmd basics.PathCommand, pts []geom.Point)) {
	p.store().TraverseDashed(offset, dashes, fn)
}

// ParsePath builds a path from SVG 1.1 path-data text (the "M10 10 L20 20"
// grammar), per the parse(svg_d) path operation.
func ParsePath(d string) (*Path, error) {
	store, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}
	return &Path{box: refcount.New(*store, nil)}, nil
}
