package stroker

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
	"github.com/agg-go/vgcanvas/internal/pathstore"
)

// Style is the stroke style of width, cap, join, miter limit, and
// an optional dash pattern.
type Style struct {
	Width      float64
	Cap        basics.LineCap
	Join       basics.LineJoin
	MiterLimit float64
	Dash       *pathstore.Dash
}

const dedupeEpsilon = basics.VertexDistEpsilon

// Generate converts path+style into a filled outline path. The
// stroker never mutates path. Degenerate stroke (width <= 0) is a no-op,
// returning an empty path.
func Generate(path *pathstore.Path, style Style) *pathstore.Path {
	out := pathstore.New()
	if style.Width <= 0 {
		return out
	}

	var flattened *pathstore.Path
	if style.Dash != nil && style.Dash.Valid() {
		flattened = path.CloneDashed(*style.Dash)
	} else {
		flattened = path.CloneFlatten()
	}

	poly := flattened.Polylines()
	ms := newMathStroke(style.Width, style.MiterLimit, style.Cap, style.Join)

	for i, chain := range poly.Chains {
		verts := toVertices(chain)
		verts, closed := dedupe(verts, poly.Closed[i])
		if closed {
			if len(verts) < 3 {
				continue
			}
			strokeClosed(out, ms, verts)
		} else {
			if len(verts) < 2 {
				continue
			}
			strokeOpen(out, ms, verts)
		}
	}
	return out
}

func toVertices(pts []geom.Point) []vertex {
	out := make([]vertex, len(pts))
	for i, p := range pts {
		out[i] = vertex{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// dedupe removes consecutive coincident vertices (and the closing
// duplicate a closed chain's last point makes of its first), computing the
// Dist field used by calcCap/calcJoin.
func dedupe(verts []vertex, closed bool) ([]vertex, bool) {
	if len(verts) == 0 {
		return verts, closed
	}
	out := verts[:1]
	for i := 1; i < len(verts); i++ {
		prev := out[len(out)-1]
		d := calcDistance(prev.X, prev.Y, verts[i].X, verts[i].Y)
		if d <= dedupeEpsilon {
			continue
		}
		out = append(out, verts[i])
	}
	if closed && len(out) > 1 {
		first := out[0]
		last := out[len(out)-1]
		if calcDistance(first.X, first.Y, last.X, last.Y) <= dedupeEpsilon {
			out = out[:len(out)-1]
		}
	}
	for i := range out {
		next := out[(i+1)%len(out)]
		if i == len(out)-1 && !closed {
			out[i].Dist = 0
			continue
		}
		out[i].Dist = calcDistance(out[i].X, out[i].Y, next.X, next.Y)
	}
	if len(out) < 3 {
		closed = false
	}
	return out, closed
}

func emitRing(out *pathstore.Path, pts []vertex) {
	if len(pts) == 0 {
		return
	}
	out.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		out.LineTo(p.X, p.Y)
	}
	out.Close()
}

// strokeOpen emits a single closed contour: start cap, forward joins, end
// cap, reverse joins.
func strokeOpen(out *pathstore.Path, ms *mathStroke, v []vertex) {
	n := len(v)
	var ring []vertex
	c := &consumer{}

	ms.calcCap(c, v[0], v[1], v[0].Dist)
	ring = append(ring, c.pts...)

	for i := 1; i < n-1; i++ {
		ms.calcJoin(c, v[i-1], v[i], v[i+1], v[i-1].Dist, v[i].Dist)
		ring = append(ring, c.pts...)
	}

	ms.calcCap(c, v[n-1], v[n-2], v[n-2].Dist)
	ring = append(ring, c.pts...)

	for i := n - 2; i >= 1; i-- {
		ms.calcJoin(c, v[i+1], v[i], v[i-1], v[i].Dist, v[i-1].Dist)
		ring = append(ring, c.pts...)
	}

	emitRing(out, ring)
}

// strokeClosed emits two separate closed contours: the outer ring walking
// forward, the inner ring walking backward.
func strokeClosed(out *pathstore.Path, ms *mathStroke, v []vertex) {
	n := len(v)
	c := &consumer{}

	var outer []vertex
	for i := 0; i < n; i++ {
		prev := v[(i-1+n)%n]
		next := v[(i+1)%n]
		ms.calcJoin(c, prev, v[i], next, prev.Dist, v[i].Dist)
		outer = append(outer, c.pts...)
	}
	emitRing(out, outer)

	var inner []vertex
	for i := n - 1; i >= 0; i-- {
		next := v[(i+1)%n]
		prev := v[(i-1+n)%n]
		ms.calcJoin(c, next, v[i], prev, v[i].Dist, prev.Dist)
		inner = append(inner, c.pts...)
	}
	emitRing(out, inner)
}
