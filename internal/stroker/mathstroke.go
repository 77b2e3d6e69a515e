// Package stroker converts a path + stroke style into a filled outline path
//. Based directly on internal/basics/math_stroke.go
// (MathStroke: CalcCap, CalcJoin, calcMiter, calcArc) and
// internal/vcgen/stroke.go's two-pass (outer forward / inner reverse)
// contour-assembly state machine, adapted to consume a flattened/dashed
// pathstore.Path instead of AGG's generic vertex-source pipeline.
package stroker

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/basics"
)

// vertex is a 2D point annotated with the distance to the next vertex in
// its chain, matching VertexDist.
type vertex struct {
	X, Y, Dist float64
}

func calcDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func calcIntersection(ax, ay, bx, by, cx, cy, dx, dy float64) (float64, float64, bool) {
	num := (dy-cy)*(bx-ax) - (dx-cx)*(by-ay)
	if num == 0 {
		return 0, 0, false
	}
	den := (dx-cx)*(by-ay) - (dy-cy)*(bx-ax)
	if den == 0 {
		return 0, 0, false
	}
	r := ((ay-cy)*(dx-cx) - (ax-cx)*(dy-cy)) / den
	x := ax + r*(bx-ax)
	y := ay + r*(by-ay)
	return x, y, true
}

func crossProduct(x1, y1, x2, y2, x3, y3 float64) float64 {
	return (x3-x1)*(y2-y1) - (y3-y1)*(x2-x1)
}

// consumer collects generated outline vertices for one cap/join event.
type consumer struct {
	pts []vertex
}

func (c *consumer) add(x, y float64) { c.pts = append(c.pts, vertex{X: x, Y: y}) }
func (c *consumer) reset()           { c.pts = c.pts[:0] }

// mathStroke mirrors MathStroke: precomputed half-width,
// cap/join style and miter limit, plus the cap/join geometry routines.
type mathStroke struct {
	width       float64 // half-width (signed)
	widthAbs    float64
	widthEps    float64
	widthSign   float64
	miterLimit  float64
	approxScale float64
	cap         basics.LineCap
	join        basics.LineJoin
}

func newMathStroke(fullWidth, miterLimit float64, cap basics.LineCap, join basics.LineJoin) *mathStroke {
	w := fullWidth * 0.5
	ms := &mathStroke{
		width:       w,
		miterLimit:  miterLimit,
		approxScale: 1.0,
		cap:         cap,
		join:        join,
	}
	if w < 0 {
		ms.widthAbs = -w
		ms.widthSign = -1
	} else {
		ms.widthAbs = w
		ms.widthSign = 1
	}
	ms.widthEps = w / 1024.0
	return ms
}

// calcArc appends a polygonal approximation of the circular arc of radius
// width around (x,y) from the direction (dx1,dy1) to (dx2,dy2). Grounded on
// MathStroke.calcArc: the stroker's round joins/caps are emitted as line
// segments (adaptive angular step) because the outline feeds straight into
// the rasterizer's own flattening, not re-edited as a cubic path.
func (ms *mathStroke) calcArc(c *consumer, x, y, dx1, dy1, dx2, dy2 float64) {
	a1 := math.Atan2(dy1*ms.widthSign, dx1*ms.widthSign)
	a2 := math.Atan2(dy2*ms.widthSign, dx2*ms.widthSign)
	da := math.Acos(ms.widthAbs/(ms.widthAbs+0.125/ms.approxScale)) * 2

	c.add(x+dx1, y+dy1)
	if ms.widthSign > 0 {
		if a1 > a2 {
			a2 += 2 * math.Pi
		}
		n := int((a2 - a1) / da)
		da = (a2 - a1) / float64(n+1)
		a1 += da
		for i := 0; i < n; i++ {
			c.add(x+math.Cos(a1)*ms.width, y+math.Sin(a1)*ms.width)
			a1 += da
		}
	} else {
		if a1 < a2 {
			a2 -= 2 * math.Pi
		}
		n := int((a1 - a2) / da)
		da = (a1 - a2) / float64(n+1)
		a1 -= da
		for i := 0; i < n; i++ {
			c.add(x+math.Cos(a1)*ms.width, y+math.Sin(a1)*ms.width)
			a1 -= da
		}
	}
	c.add(x+dx2, y+dy2)
}

func (ms *mathStroke) calcMiter(c *consumer, v0, v1, v2 vertex, dx1, dy1, dx2, dy2 float64, join basics.LineJoin, mlimit, dbevel float64) {
	xi, yi := v1.X, v1.Y
	di := 1.0
	lim := ms.widthAbs * mlimit
	miterLimitExceeded := true
	intersectionFailed := true

	ix, iy, ok := calcIntersection(v0.X+dx1, v0.Y-dy1, v1.X+dx1, v1.Y-dy1, v1.X+dx2, v1.Y-dy2, v2.X+dx2, v2.Y-dy2)
	if ok {
		xi, yi = ix, iy
		di = calcDistance(v1.X, v1.Y, xi, yi)
		if di <= lim {
			c.add(xi, yi)
			miterLimitExceeded = false
		}
		intersectionFailed = false
	} else {
		x2 := v1.X + dx1
		y2 := v1.Y - dy1
		if (crossProduct(v0.X, v0.Y, v1.X, v1.Y, x2, y2) < 0) == (crossProduct(v1.X, v1.Y, v2.X, v2.Y, x2, y2) < 0) {
			c.add(v1.X+dx1, v1.Y-dy1)
			miterLimitExceeded = false
		}
	}

	if miterLimitExceeded {
		switch join {
		case basics.JoinRound:
			ms.calcArc(c, v1.X, v1.Y, dx1, -dy1, dx2, -dy2)
		default: // bevel fallback
			if intersectionFailed {
				mlimit *= ms.widthSign
				c.add(v1.X+dx1+dy1*mlimit, v1.Y-dy1+dx1*mlimit)
				c.add(v1.X+dx2-dy2*mlimit, v1.Y-dy2-dx2*mlimit)
			} else {
				x1 := v1.X + dx1
				y1 := v1.Y - dy1
				x2 := v1.X + dx2
				y2 := v1.Y - dy2
				di = (lim - dbevel) / (di - dbevel)
				c.add(x1+(xi-x1)*di, y1+(yi-y1)*di)
				c.add(x2+(xi-x2)*di, y2+(yi-y2)*di)
			}
		}
	}
}

// calcCap computes the start/end cap outline at v0, with v1 the adjacent
// interior vertex and length the distance between them.
func (ms *mathStroke) calcCap(c *consumer, v0, v1 vertex, length float64) {
	c.reset()

	dx1 := (v1.Y - v0.Y) / length
	dy1 := (v1.X - v0.X) / length
	var dx2, dy2 float64

	dx1 *= ms.width
	dy1 *= ms.width

	if ms.cap != basics.CapRound {
		if ms.cap == basics.CapSquare {
			dx2 = dy1 * ms.widthSign
			dy2 = dx1 * ms.widthSign
		}
		c.add(v0.X+dx1-dx2, v0.Y-dy1-dy2)
		c.add(v0.X-dx1-dx2, v0.Y+dy1-dy2)
	} else {
		da := math.Acos(ms.widthAbs/(ms.widthAbs+0.125/ms.approxScale)) * 2
		n := int(math.Pi / da)
		da = math.Pi / float64(n+1)

		c.add(v0.X+dx1, v0.Y-dy1)
		if ms.widthSign > 0 {
			a1 := math.Atan2(dy1, -dx1)
			a1 += da
			for i := 0; i < n; i++ {
				c.add(v0.X+math.Cos(a1)*ms.width, v0.Y+math.Sin(a1)*ms.width)
				a1 += da
			}
		} else {
			a1 := math.Atan2(-dy1, dx1)
			a1 -= da
			for i := 0; i < n; i++ {
				c.add(v0.X+math.Cos(a1)*ms.width, v0.Y+math.Sin(a1)*ms.width)
				a1 -= da
			}
		}
		c.add(v0.X-dx1, v0.Y+dy1)
	}
}

// calcJoin computes the interior-join outline at v1, between segments
// (v0->v1) and (v1->v2) with lengths len1, len2.
func (ms *mathStroke) calcJoin(c *consumer, v0, v1, v2 vertex, len1, len2 float64) {
	dx1 := ms.width * (v1.Y - v0.Y) / len1
	dy1 := ms.width * (v1.X - v0.X) / len1
	dx2 := ms.width * (v2.Y - v1.Y) / len2
	dy2 := ms.width * (v2.X - v1.X) / len2

	c.reset()

	cp := crossProduct(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if cp != 0 && (cp > 0) == (ms.width > 0) {
		// Inner join: simple bevel is sufficient since the rasterizer's
		// winding rule discards the self-overlap.
		c.add(v1.X+dx1, v1.Y-dy1)
		c.add(v1.X, v1.Y)
		c.add(v1.X+dx2, v1.Y-dy2)
		return
	}

	dx := (dx1 + dx2) / 2
	dy := (dy1 + dy2) / 2
	dbevel := math.Sqrt(dx*dx + dy*dy)

	if ms.join == basics.JoinRound || ms.join == basics.JoinBevel {
		if ms.approxScale*(ms.widthAbs-dbevel) < ms.widthEps {
			ix, iy, ok := calcIntersection(v0.X+dx1, v0.Y-dy1, v1.X+dx1, v1.Y-dy1, v1.X+dx2, v1.Y-dy2, v2.X+dx2, v2.Y-dy2)
			if ok {
				c.add(ix, iy)
			} else {
				c.add(v1.X+dx1, v1.Y-dy1)
			}
			return
		}
	}

	switch ms.join {
	case basics.JoinMiter:
		ms.calcMiter(c, v0, v1, v2, dx1, dy1, dx2, dy2, ms.join, ms.miterLimit, dbevel)
	case basics.JoinRound:
		ms.calcArc(c, v1.X, v1.Y, dx1, -dy1, dx2, -dy2)
	default: // bevel
		c.add(v1.X+dx1, v1.Y-dy1)
		c.add(v1.X+dx2, v1.Y-dy2)
	}
}
