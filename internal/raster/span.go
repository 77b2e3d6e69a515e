package raster

import (
	"sort"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// Span is a single horizontal pixel run with one coverage value.
type Span struct {
	Y, X, Len int32
	Coverage  uint8
}

// SpanBuffer is a lexicographically sorted (y, then x), coalesced,
// non-overlapping list of Spans.
type SpanBuffer struct {
	Spans []Span
}

func (b *SpanBuffer) appendRun(y, x, length int32, cov uint8) {
	if length <= 0 || cov == 0 {
		return
	}
	b.Spans = append(b.Spans, Span{Y: y, X: x, Len: length, Coverage: cov})
}

// coalesce merges adjacent same-row, same-coverage, touching spans and
// sorts the buffer into canonical (y, x) order.
func (b *SpanBuffer) coalesce() {
	if len(b.Spans) == 0 {
		return
	}
	sortSpans(b.Spans)
	out := b.Spans[:1]
	for _, s := range b.Spans[1:] {
		last := &out[len(out)-1]
		if last.Y == s.Y && last.Coverage == s.Coverage && last.X+last.Len == s.X {
			last.Len += s.Len
			continue
		}
		out = append(out, s)
	}
	b.Spans = out
}

func sortSpans(s []Span) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Y != s[j].Y {
			return s[i].Y < s[j].Y
		}
		return s[i].X < s[j].X
	})
}

// Reset empties the buffer, keeping its backing storage.
func (b *SpanBuffer) Reset() { b.Spans = b.Spans[:0] }

// Empty reports whether the buffer carries no coverage at all.
func (b *SpanBuffer) Empty() bool { return len(b.Spans) == 0 }

// BoundingRect returns the smallest integer pixel rect enclosing every
// span, or a zero Rect if the buffer is empty.
func (b *SpanBuffer) BoundingRect() geom.Rect {
	if len(b.Spans) == 0 {
		return geom.Rect{}
	}
	minX, minY := b.Spans[0].X, b.Spans[0].Y
	maxX, maxY := b.Spans[0].X+b.Spans[0].Len, b.Spans[0].Y+1
	for _, s := range b.Spans[1:] {
		if s.X < minX {
			minX = s.X
		}
		if s.X+s.Len > maxX {
			maxX = s.X + s.Len
		}
		if s.Y < minY {
			minY = s.Y
		}
		if s.Y+1 > maxY {
			maxY = s.Y + 1
		}
	}
	return geom.Rect{X: float32(minX), Y: float32(minY), W: float32(maxX - minX), H: float32(maxY - minY)}
}

// RectFill builds a SpanBuffer covering an integer pixel rect at full
// coverage, used to seed the canvas's default (unclipped) clip coverage.
func RectFill(x0, y0, x1, y1 int32) SpanBuffer {
	var buf SpanBuffer
	if x1 <= x0 || y1 <= y0 {
		return buf
	}
	for y := y0; y < y1; y++ {
		buf.Spans = append(buf.Spans, Span{Y: y, X: x0, Len: x1 - x0, Coverage: 255})
	}
	return buf
}

// Intersect combines two sorted span buffers, "Span buffer
// intersect": for every row present in both, emit spans over the
// intersection intervals with cov = (covA*covB + 127)/255, coalesced.
func Intersect(a, b SpanBuffer) SpanBuffer {
	var out SpanBuffer
	ai, bi := 0, 0
	for ai < len(a.Spans) && bi < len(b.Spans) {
		sa := a.Spans[ai]
		sb := b.Spans[bi]
		if sa.Y != sb.Y {
			if sa.Y < sb.Y {
				ai++
			} else {
				bi++
			}
			continue
		}
		x0 := basics.Max(sa.X, sb.X)
		x1 := basics.Min(sa.X+sa.Len, sb.X+sb.Len)
		if x0 < x1 {
			cov := uint8((uint32(sa.Coverage)*uint32(sb.Coverage) + 127) / 255)
			out.appendRun(sa.Y, x0, x1-x0, cov)
		}
		if sa.X+sa.Len < sb.X+sb.Len {
			ai++
		} else {
			bi++
		}
	}
	out.coalesce()
	return out
}
