package raster

import (
	"math"
	"sort"

	"golang.org/x/image/math/fixed"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// subpixelShift/Scale size the fixed-point subpixel grid the cell
// accumulator works in. golang.org/x/image/math/fixed.Int26_6 already uses
// 6 fractional bits, so a rasterizer coordinate and a fixed.Int26_6 value
// are the same bit pattern, so no extra scaling step is needed when
// converting from the flattened path's float64 points.
const (
	subpixelShift = 6
	subpixelScale = 1 << subpixelShift
	subpixelMask  = subpixelScale - 1
)

// aaShift/Scale size the output coverage range: 8-bit.
const (
	aaShift = 8
	aaScale = 1 << aaShift
	aaMask  = aaScale - 1
)

type yRange struct {
	start, count int32
}

// Rasterizer accumulates one or more closed polygons (already flattened to
// line segments) clipped to a clip rect, and sweeps them into sorted Spans
// honoring a fill rule. Based on
// RasterizerCellsAASimple + RasterizerScanlineAA pair, collapsed into one
// type since this package has no styled/generic-conversion variant to
// share the cell generator with.
type Rasterizer struct {
	cells  []cell
	curr   cell
	sorted bool

	minX, minY, maxX, maxY int32
	sortedY                []yRange // indexed by y - minY

	Clip     ClipBox
	FillRule basics.FillRule

	startX, startY fixed.Int26_6
	curX, curY     fixed.Int26_6
	hasStart       bool
}

// ClipBox is an integer-pixel clip rectangle").
type ClipBox struct {
	X0, Y0, X1, Y1 int32
}

func ClipBoxFromRect(r geom.Rect) ClipBox {
	return ClipBox{
		X0: int32(math.Floor(float64(r.X))),
		Y0: int32(math.Floor(float64(r.Y))),
		X1: int32(math.Ceil(float64(r.X + r.W))),
		Y1: int32(math.Ceil(float64(r.Y + r.H))),
	}
}

func New() *Rasterizer {
	r := &Rasterizer{}
	r.Reset()
	return r
}

func (r *Rasterizer) Reset() {
	r.cells = r.cells[:0]
	r.curr.clear()
	r.sorted = false
	r.minX, r.minY = math.MaxInt32, math.MaxInt32
	r.maxX, r.maxY = math.MinInt32, math.MinInt32
	r.hasStart = false
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * subpixelScale))
}

// AddPolygon clips pts (a single closed contour, in surface pixel space)
// against r.Clip and feeds the resulting edges into the cell accumulator.
// Clipping a whole contour against the rectangle up front (rather than
// per-edge inside the cell generator, as a cell-based clipper does) keeps
// this package free of AGG's dedicated clipping-line-sink machinery while
// still producing exact AA coverage at the clip boundary, since the
// clipped contour's boundary edges are real polygon edges.
func (r *Rasterizer) AddPolygon(pts []geom.Point) {
	clipped := clipPolygon(pts, r.Clip)
	if len(clipped) < 2 {
		return
	}
	r.moveTo(toFixed(float64(clipped[0].X)), toFixed(float64(clipped[0].Y)))
	for _, p := range clipped[1:] {
		r.lineTo(toFixed(float64(p.X)), toFixed(float64(p.Y)))
	}
	r.closePolygon()
}

func (r *Rasterizer) moveTo(x, y fixed.Int26_6) {
	r.closePolygon()
	r.startX, r.startY = x, y
	r.curX, r.curY = x, y
	r.hasStart = true
	r.setCurrCell(int32(x)>>subpixelShift, int32(y)>>subpixelShift)
}

func (r *Rasterizer) lineTo(x, y fixed.Int26_6) {
	r.line(r.curX, r.curY, x, y)
	r.curX, r.curY = x, y
}

func (r *Rasterizer) closePolygon() {
	if r.hasStart && (r.curX != r.startX || r.curY != r.startY) {
		r.line(r.curX, r.curY, r.startX, r.startY)
		r.curX, r.curY = r.startX, r.startY
	}
}

// line is the classic AGG cell-rasterization line routine: it walks the
// segment scanline by scanline, calling renderHLine for the x-span crossed
// within each scanline.
func (r *Rasterizer) line(x1, y1, x2, y2 fixed.Int26_6) {
	ix1, iy1 := int32(x1), int32(y1)
	ix2, iy2 := int32(x2), int32(y2)

	dy := iy2 - iy1
	if dy != 0 {
		if iy1 > iy2 {
			ix1, iy1, ix2, iy2 = ix2, iy2, ix1, iy1
			dy = -dy
		}
		r.renderLine(ix1, iy1, ix2, iy2, dy)
	}
	r.setCurrCell(ix2>>subpixelShift, iy2>>subpixelShift)
}

func (r *Rasterizer) renderLine(x1, y1, x2, y2, dy int32) {
	dx := x2 - x1
	ey1 := y1 >> subpixelShift
	ey2 := y2 >> subpixelShift
	fy1 := y1 & subpixelMask
	fy2 := y2 & subpixelMask

	if ey1 == ey2 {
		r.renderHLine(ey1, x1, fy1, x2, fy2)
		return
	}

	// xFromY interpolates the line's x coordinate at subpixel-row y.
	// Correct for dx == 0 too (constant x), so no vertical-line special
	// case is needed.
	xFromY := func(y int32) int32 {
		return x1 + int32((int64(dx)*int64(y-y1))/int64(dy))
	}

	firstY := (ey1 + 1) << subpixelShift
	xAtFirst := xFromY(firstY)
	r.renderHLine(ey1, x1, fy1, xAtFirst, subpixelScale)

	x1 = xAtFirst
	ey1++

	for ey1 != ey2 {
		nextY := (ey1 + 1) << subpixelShift
		xNext := xFromY(nextY)
		r.renderHLine(ey1, x1, 0, xNext, subpixelScale)
		x1 = xNext
		ey1++
	}

	r.renderHLine(ey2, x1, 0, x2, fy2)
}

// renderHLine renders the portion of a line within one scanline,
// accumulating area/cover into zero or more cells crossed horizontally
// (the full AGG multi-cell formulation, step 2).
func (r *Rasterizer) renderHLine(ey, x1, y1, x2, y2 int32) {
	ex1 := x1 >> subpixelShift
	ex2 := x2 >> subpixelShift
	fx1 := x1 & subpixelMask
	fx2 := x2 & subpixelMask

	if y1 == y2 {
		r.setCurrCell(ex2, ey)
		return
	}
	if ex1 == ex2 {
		delta := y2 - y1
		r.curr.cover += delta
		r.curr.area += (fx1 + fx2) * delta
		return
	}

	var p, first, delta, dx int32
	var incr int32 = 1
	dx = x2 - x1
	p = (subpixelScale - fx1) * (y2 - y1)
	first = subpixelScale
	if dx < 0 {
		incr = -1
		dx = -dx
		p = fx1 * (y2 - y1)
		first = 0
	}

	delta = p / dx
	mod := p % dx
	if mod < 0 {
		delta--
		mod += dx
	}

	r.curr.cover += delta
	r.curr.area += (fx1 + first) * delta

	ex1 += incr
	r.setCurrCell(ex1, ey)
	y1 += delta

	if ex1 != ex2 {
		p = subpixelScale * (y2 - y1 + delta)
		lift := p / dx
		rem := p % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		mod -= dx

		for ex1 != ex2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}
			r.curr.cover += delta
			r.curr.area += subpixelScale * delta
			y1 += delta
			ex1 += incr
			r.setCurrCell(ex1, ey)
		}
	}

	delta = y2 - y1
	r.curr.cover += delta
	r.curr.area += (fx2 + subpixelScale - first) * delta
}

func (r *Rasterizer) setCurrCell(x, y int32) {
	if r.curr.x != x || r.curr.y != y {
		r.addCurrCell()
		r.curr = cell{x: x, y: y}
	}
}

func (r *Rasterizer) addCurrCell() {
	if r.curr.area != 0 || r.curr.cover != 0 {
		r.cells = append(r.cells, r.curr)
		if r.curr.x < r.minX {
			r.minX = r.curr.x
		}
		if r.curr.x > r.maxX {
			r.maxX = r.curr.x
		}
		if r.curr.y < r.minY {
			r.minY = r.curr.y
		}
		if r.curr.y > r.maxY {
			r.maxY = r.curr.y
		}
	}
}

func (r *Rasterizer) sort() {
	if r.sorted {
		return
	}
	r.closePolygon()
	r.addCurrCell()
	r.curr.clear()

	sort.Slice(r.cells, func(i, j int) bool {
		if r.cells[i].y != r.cells[j].y {
			return r.cells[i].y < r.cells[j].y
		}
		return r.cells[i].x < r.cells[j].x
	})

	if len(r.cells) > 0 {
		span := int(r.maxY-r.minY) + 1
		r.sortedY = make([]yRange, span)
		for i := range r.cells {
			y := r.cells[i].y - r.minY
			r.sortedY[y].count++
		}
		start := int32(0)
		for i := range r.sortedY {
			r.sortedY[i].start = start
			start += r.sortedY[i].count
		}
	}
	r.sorted = true
}

// calculateAlpha converts a raw (cover<<...)-area accumulation into an
// 8-bit coverage value per the current fill rule.
func (r *Rasterizer) calculateAlpha(area int32) uint8 {
	cover := area >> (2*subpixelShift + 1 - aaShift)
	if cover < 0 {
		cover = -cover
	}
	if r.FillRule == basics.EvenOdd {
		cover &= (aaScale*2 - 1)
		if cover > aaScale {
			cover = aaScale*2 - cover
		}
	}
	if cover > aaMask {
		cover = aaMask
	}
	return uint8(cover)
}

// Sweep rasterizes the accumulated cells into a sorted SpanBuffer:
// per row, sweep cells left to right, emitting runs of
// constant coverage, coalescing adjacent spans of equal coverage.
func (r *Rasterizer) Sweep() SpanBuffer {
	r.sort()
	var buf SpanBuffer
	if len(r.cells) == 0 {
		return buf
	}

	for y := r.minY; y <= r.maxY; y++ {
		yr := r.sortedY[y-r.minY]
		if yr.count == 0 {
			continue
		}
		row := r.cells[yr.start : yr.start+yr.count]

		cover := int32(0)
		i := 0
		for i < len(row) {
			x := row[i].x
			area := row[i].area
			cover += row[i].cover
			i++
			for i < len(row) && row[i].x == x {
				area += row[i].area
				cover += row[i].cover
				i++
			}

			if area != 0 {
				alpha := r.calculateAlpha((cover << (subpixelShift + 1)) - area)
				if alpha != 0 {
					buf.appendRun(y, x, 1, alpha)
				}
				x++
			}

			if i < len(row) && row[i].x > x {
				alpha := r.calculateAlpha(cover << (subpixelShift + 1))
				if alpha != 0 {
					buf.appendRun(y, x, row[i].x-x, alpha)
				}
			}
		}
	}
	buf.coalesce()
	return buf
}
