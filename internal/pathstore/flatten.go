package pathstore

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/config"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// cubicFrame is one bounded-recursion stack frame for flattenCubic,
// replacing the reference unbounded Go-stack recursion
// (internal/curves/curves.go's recursiveBezier) with an explicit depth-32
// frame array.
type cubicFrame struct {
	x1, y1, x2, y2, x3, y3, x4, y4 float64
	level                          int
}

// flattenCubic subdivides the cubic (x1,y1)-(x2,y2)-(x3,y3)-(x4,y4) into
// line segments, appending each endpoint via emit. Uses the exact flatness
// test from d < threshold*L with
//
//	L = |x4-x1| + |y4-y1| (or 1 if degenerate)
//	d = |(x4-x1)(y1-y2) - (y4-y1)(x1-x2)| + |(x4-x1)(y1-y3) - (y4-y1)(x1-x3)|
func flattenCubic(x1, y1, x2, y2, x3, y3, x4, y4 float64, emit func(x, y float64)) {
	var stack [config.MaxFlattenDepth * 2]cubicFrame
	sp := 0
	stack[sp] = cubicFrame{x1, y1, x2, y2, x3, y3, x4, y4, 0}
	sp++

	for sp > 0 {
		sp--
		f := stack[sp]

		if f.level >= config.MaxFlattenDepth-1 {
			emit(f.x4, f.y4)
			continue
		}

		dx := f.x4 - f.x1
		dy := f.y4 - f.y1
		l := abs(dx) + abs(dy)
		if l == 0 {
			l = 1
		}
		d := abs((f.x4-f.x1)*(f.y1-f.y2)-(f.y4-f.y1)*(f.x1-f.x2)) +
			abs((f.x4-f.x1)*(f.y1-f.y3)-(f.y4-f.y1)*(f.x1-f.x3))

		if d < config.FlattenThreshold*l {
			emit(f.x4, f.y4)
			continue
		}

		// De Casteljau split at t=0.5.
		x12 := (f.x1 + f.x2) / 2
		y12 := (f.y1 + f.y2) / 2
		x23 := (f.x2 + f.x3) / 2
		y23 := (f.y2 + f.y3) / 2
		x34 := (f.x3 + f.x4) / 2
		y34 := (f.y3 + f.y4) / 2
		x123 := (x12 + x23) / 2
		y123 := (y12 + y23) / 2
		x234 := (x23 + x34) / 2
		y234 := (y23 + y34) / 2
		x1234 := (x123 + x234) / 2
		y1234 := (y123 + y234) / 2

		// Push second half first so the first half pops (and thus emits)
		// before it, preserving left-to-right emission order.
		stack[sp] = cubicFrame{x1234, y1234, x234, y234, x34, y34, f.x4, f.y4, f.level + 1}
		sp++
		stack[sp] = cubicFrame{f.x1, f.y1, x12, y12, x123, y123, x1234, y1234, f.level + 1}
		sp++
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TraverseFlatten invokes fn for every vertex of the flattened path: every
// MoveTo/Close passes through unchanged, every LineTo passes through, and
// every CubicTo is replaced by a run of LineTo calls.
func (p *Path) TraverseFlatten(fn func(cmd basics.PathCommand, x, y float64)) {
	var curX, curY float64
	for _, e := range p.elems {
		switch e.Cmd {
		case basics.MoveTo:
			curX, curY = float64(e.P1.X), float64(e.P1.Y)
			fn(basics.MoveTo, curX, curY)
		case basics.LineTo:
			curX, curY = float64(e.P1.X), float64(e.P1.Y)
			fn(basics.LineTo, curX, curY)
		case basics.Close:
			curX, curY = float64(e.P1.X), float64(e.P1.Y)
			fn(basics.Close, curX, curY)
		case basics.CubicTo:
			x1, y1 := curX, curY
			x4, y4 := float64(e.P3.X), float64(e.P3.Y)
			flattenCubic(x1, y1, float64(e.P1.X), float64(e.P1.Y), float64(e.P2.X), float64(e.P2.Y), x4, y4,
				func(x, y float64) { fn(basics.LineTo, x, y) })
			curX, curY = x4, y4
		}
	}
}

// CloneFlatten returns a new path containing only MoveTo/LineTo/Close
// commands, with every cubic subdivided into line segments.
func (p *Path) CloneFlatten() *Path {
	out := New()
	p.TraverseFlatten(func(cmd basics.PathCommand, x, y float64) {
		switch cmd {
		case basics.MoveTo:
			out.MoveTo(x, y)
		case basics.LineTo:
			out.LineTo(x, y)
		case basics.Close:
			out.Close()
		}
	})
	return out
}

// FlattenedPolylines groups the flattened path into per-subpath vertex
// chains plus whether each subpath is closed, the shape consumed by the
// stroker.
type FlattenedPolylines struct {
	Chains [][]geom.Point
	Closed []bool
}

// Polylines flattens the path and returns it as vertex chains.
func (p *Path) Polylines() FlattenedPolylines {
	var out FlattenedPolylines
	var cur []geom.Point
	closeCur := func(closed bool) {
		if len(cur) > 0 {
			out.Chains = append(out.Chains, cur)
			out.Closed = append(out.Closed, closed)
			cur = nil
		}
	}
	p.TraverseFlatten(func(cmd basics.PathCommand, x, y float64) {
		switch cmd {
		case basics.MoveTo:
			closeCur(false)
			cur = append(cur, geom.Point{X: float32(x), Y: float32(y)})
		case basics.LineTo:
			cur = append(cur, geom.Point{X: float32(x), Y: float32(y)})
		case basics.Close:
			cur = append(cur, geom.Point{X: float32(x), Y: float32(y)})
			closeCur(true)
		}
	})
	closeCur(false)
	return out
}
