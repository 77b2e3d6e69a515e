package raster

import "github.com/agg-go/vgcanvas/internal/geom"

// clipPolygon clips a closed contour against an axis-aligned rectangle
// using Sutherland-Hodgman, one edge of the rectangle at a time. A
// rectangle is convex, so this is exact regardless of the subject
// contour's winding or self-intersection.
func clipPolygon(pts []geom.Point, box ClipBox) []geom.Point {
	if len(pts) < 2 {
		return nil
	}
	out := pts
	out = clipEdge(out, func(p geom.Point) bool { return p.X >= float32(box.X0) },
		func(a, b geom.Point) geom.Point { return intersectVertical(a, b, float32(box.X0)) })
	out = clipEdge(out, func(p geom.Point) bool { return p.X <= float32(box.X1) },
		func(a, b geom.Point) geom.Point { return intersectVertical(a, b, float32(box.X1)) })
	out = clipEdge(out, func(p geom.Point) bool { return p.Y >= float32(box.Y0) },
		func(a, b geom.Point) geom.Point { return intersectHorizontal(a, b, float32(box.Y0)) })
	out = clipEdge(out, func(p geom.Point) bool { return p.Y <= float32(box.Y1) },
		func(a, b geom.Point) geom.Point { return intersectHorizontal(a, b, float32(box.Y1)) })
	return out
}

func clipEdge(pts []geom.Point, inside func(geom.Point) bool, cross func(a, b geom.Point) geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	var out []geom.Point
	prev := pts[len(pts)-1]
	prevIn := inside(prev)
	for _, cur := range pts {
		curIn := inside(cur)
		if curIn {
			if !prevIn {
				out = append(out, cross(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, cross(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func intersectVertical(a, b geom.Point, x float32) geom.Point {
	if a.X == b.X {
		return geom.Point{X: x, Y: a.Y}
	}
	t := (x - a.X) / (b.X - a.X)
	return geom.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func intersectHorizontal(a, b geom.Point, y float32) geom.Point {
	if a.Y == b.Y {
		return geom.Point{X: a.X, Y: y}
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Point{X: a.X + t*(b.X-a.X), Y: y}
}
