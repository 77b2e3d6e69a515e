// Package pathstore implements the path model: a compact
// command+point stream with builders, shape helpers, affine transform,
// traversal, cubic flattening and dashing. Based on
// internal/path/path_storage.go (PathStorageStl) and internal/basics/path.go
// (command semantics), restructured around a four-command model.
package pathstore

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/config"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// Element is one command header plus its associated points. Unused point
// slots are zero. This is the Go-idiomatic equivalent of a
// "header {command,length} followed by length-1 points" byte stream: a
// slice of fixed-size structs instead of a packed byte buffer, chosen
// because the core never needs to serialize the stream across a process
// boundary (that's the job of the out-of-scope C-handle API).
type Element struct {
	Cmd basics.PathCommand
	P1  geom.Point // endpoint for MoveTo/LineTo/Close; first control point for CubicTo
	P2  geom.Point // second control point for CubicTo
	P3  geom.Point // endpoint for CubicTo
}

// Path is the mutable path store. Paths are shared via
// internal/refcount.Box in the public facade; Path itself assumes exclusive
// mutation, matching lifecycle note.
type Path struct {
	elems       []Element
	startX      float32 // anchor of the most recent MoveTo, for I1/I3
	startY      float32
	curX        float32
	curY        float32
	hasCurrent  bool
	numContours int
	numPoints   int
	numCurves   int
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// Reset clears the path back to empty.
func (p *Path) Reset() {
	p.elems = p.elems[:0]
	p.hasCurrent = false
	p.numContours, p.numPoints, p.numCurves = 0, 0, 0
}

// Reserve hints at the number of elements the caller expects to add.
func (p *Path) Reserve(n int) {
	if cap(p.elems) < n {
		grown := make([]Element, len(p.elems), n)
		copy(grown, p.elems)
		p.elems = grown
	}
}

// Elements exposes the raw element stream (read-only use expected).
func (p *Path) Elements() []Element { return p.elems }

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool { return len(p.elems) == 0 }

// NumContours, NumPoints, NumCurves expose the invariant-I4 counters.
func (p *Path) NumContours() int { return p.numContours }
func (p *Path) NumPoints() int   { return p.numPoints }
func (p *Path) NumCurves() int   { return p.numCurves }

// CurrentPoint returns the pen position and whether one has been set.
func (p *Path) CurrentPoint() (geom.Point, bool) {
	return geom.Point{X: p.curX, Y: p.curY}, p.hasCurrent
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.elems = append(p.elems, Element{Cmd: basics.MoveTo, P1: geom.Point{X: float32(x), Y: float32(y)}})
	p.startX, p.startY = float32(x), float32(y)
	p.curX, p.curY = float32(x), float32(y)
	p.hasCurrent = true
	p.numContours++
	p.numPoints++
}

// ensureStart applies invariant I1: a LineTo/CubicTo with no prior MoveTo
// implicitly moves to the origin first.
func (p *Path) ensureStart() {
	if !p.hasCurrent {
		p.MoveTo(0, 0)
	}
}

// LineTo appends a line edge to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.ensureStart()
	p.elems = append(p.elems, Element{Cmd: basics.LineTo, P1: geom.Point{X: float32(x), Y: float32(y)}})
	p.curX, p.curY = float32(x), float32(y)
	p.numPoints++
}

// CubicTo appends a cubic Bézier edge with two control points and an endpoint.
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ensureStart()
	p.elems = append(p.elems, Element{
		Cmd: basics.CubicTo,
		P1:  geom.Point{X: float32(x1), Y: float32(y1)},
		P2:  geom.Point{X: float32(x2), Y: float32(y2)},
		P3:  geom.Point{X: float32(x3), Y: float32(y3)},
	})
	p.curX, p.curY = float32(x3), float32(y3)
	p.numPoints += 3
	p.numCurves++
}

// QuadTo stores a quadratic Bézier as an equivalent cubic via degree
// elevation: (P0+2*P1)/3, (P2+2*P1)/3.
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.ensureStart()
	x0, y0 := float64(p.curX), float64(p.curY)
	c1x := (x0 + 2*x1) / 3
	c1y := (y0 + 2*y1) / 3
	c2x := (x2 + 2*x1) / 3
	c2y := (y2 + 2*y1) / 3
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Close closes the current subpath back to its MoveTo anchor: a no-op on an empty path; the stored Close point equals the most
// recent MoveTo anchor so callers can treat Close as a line unconditionally.
func (p *Path) Close() {
	if len(p.elems) == 0 {
		return
	}
	p.elems = append(p.elems, Element{Cmd: basics.Close, P1: geom.Point{X: p.startX, Y: p.startY}})
	p.curX, p.curY = p.startX, p.startY
	p.numPoints++
}

// AddPath appends src's elements, optionally transformed by m, matching
// the add_path(src, matrix?) operation.
func (p *Path) AddPath(src *Path, m *geom.Matrix) {
	p.Reserve(len(p.elems) + len(src.elems))
	for _, e := range src.elems {
		ne := e
		if m != nil {
			ne.P1 = m.ApplyPoint(e.P1)
			if e.Cmd == basics.CubicTo {
				ne.P2 = m.ApplyPoint(e.P2)
				ne.P3 = m.ApplyPoint(e.P3)
			}
		}
		p.elems = append(p.elems, ne)
		switch e.Cmd {
		case basics.MoveTo:
			p.numContours++
			p.numPoints++
			p.startX, p.startY = ne.P1.X, ne.P1.Y
			p.curX, p.curY = ne.P1.X, ne.P1.Y
			p.hasCurrent = true
		case basics.LineTo:
			p.numPoints++
			p.curX, p.curY = ne.P1.X, ne.P1.Y
		case basics.CubicTo:
			p.numPoints += 3
			p.numCurves++
			p.curX, p.curY = ne.P3.X, ne.P3.Y
		case basics.Close:
			p.numPoints++
			p.curX, p.curY = ne.P1.X, ne.P1.Y
		}
	}
}

// Transform applies m to every point in the path, in place.
func (p *Path) Transform(m geom.Matrix) {
	for i := range p.elems {
		e := &p.elems[i]
		e.P1 = m.ApplyPoint(e.P1)
		if e.Cmd == basics.CubicTo {
			e.P2 = m.ApplyPoint(e.P2)
			e.P3 = m.ApplyPoint(e.P3)
		}
	}
	sp := m.ApplyPoint(geom.Point{X: p.startX, Y: p.startY})
	p.startX, p.startY = sp.X, sp.Y
	if p.hasCurrent {
		cp := m.ApplyPoint(geom.Point{X: p.curX, Y: p.curY})
		p.curX, p.curY = cp.X, cp.Y
	}
}

// Clone returns a deep, independent copy of the path.
func (p *Path) Clone() *Path {
	n := &Path{
		elems:       append([]Element(nil), p.elems...),
		startX:      p.startX,
		startY:      p.startY,
		curX:        p.curX,
		curY:        p.curY,
		hasCurrent:  p.hasCurrent,
		numContours: p.numContours,
		numPoints:   p.numPoints,
		numCurves:   p.numCurves,
	}
	return n
}

// Traverse invokes fn for every raw element of the path (no flattening),
// matching the original's plutovg_path_traverse callback form.
func (p *Path) Traverse(fn func(cmd basics.PathCommand, pts []geom.Point)) {
	for _, e := range p.elems {
		switch e.Cmd {
		case basics.CubicTo:
			fn(e.Cmd, []geom.Point{e.P1, e.P2, e.P3})
		default:
			fn(e.Cmd, []geom.Point{e.P1})
		}
	}
}

// Extents computes the path's bounding rect and total flattened polyline
// length.
func (p *Path) Extents() (geom.Rect, float64) {
	flat := p.CloneFlatten()
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		length       float64
		havePt       bool
		lastX, lastY float64
	)
	for _, e := range flat.elems {
		switch e.Cmd {
		case basics.MoveTo:
			x, y := float64(e.P1.X), float64(e.P1.Y)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			lastX, lastY = x, y
			havePt = true
		case basics.LineTo, basics.Close:
			x, y := float64(e.P1.X), float64(e.P1.Y)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			if havePt {
				length += math.Hypot(x-lastX, y-lastY)
			}
			lastX, lastY = x, y
		}
	}
	if !havePt {
		return geom.Rect{}, 0
	}
	return geom.Rect{X: float32(minX), Y: float32(minY), W: float32(maxX - minX), H: float32(maxY - minY)}, length
}

// maxFlattenDepth is the package-local name for config.MaxFlattenDepth;
// flattenCubic reads config.MaxFlattenDepth directly.
const maxFlattenDepth = config.MaxFlattenDepth
