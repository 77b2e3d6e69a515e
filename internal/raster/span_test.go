package raster

import "testing"

func TestRectFillCoversExactPixels(t *testing.T) {
	buf := RectFill(1, 2, 4, 3)
	if len(buf.Spans) != 1 {
		t.Fatalf("len(Spans) = %d, want 1", len(buf.Spans))
	}
	s := buf.Spans[0]
	if s.Y != 2 || s.X != 1 || s.Len != 3 || s.Coverage != 255 {
		t.Fatalf("span = %+v, want {Y:2 X:1 Len:3 Coverage:255}", s)
	}
}

func TestRectFillDegenerateIsEmpty(t *testing.T) {
	if !RectFill(5, 5, 5, 10).Empty() {
		t.Fatal("RectFill with x1==x0 is not Empty()")
	}
	if !RectFill(0, 0, -1, 1).Empty() {
		t.Fatal("RectFill with x1<x0 is not Empty()")
	}
}

func TestIntersectOverlapCoverageFormula(t *testing.T) {
	a := SpanBuffer{Spans: []Span{{Y: 0, X: 0, Len: 10, Coverage: 255}}}
	b := SpanBuffer{Spans: []Span{{Y: 0, X: 5, Len: 10, Coverage: 128}}}
	got := Intersect(a, b)
	if len(got.Spans) != 1 {
		t.Fatalf("len(Spans) = %d, want 1", len(got.Spans))
	}
	s := got.Spans[0]
	wantCov := uint8((255*128 + 127) / 255)
	if s.X != 5 || s.Len != 5 || s.Coverage != wantCov {
		t.Fatalf("span = %+v, want {X:5 Len:5 Coverage:%d}", s, wantCov)
	}
}

// Self-intersection is NOT an identity for partial coverage: a buffer
// intersected with itself lowers any coverage c strictly between 0 and 255
// to (c*c+127)/255, e.g. (128*128+127)/255 == 64, not 128. Composite call sites must never
// rely on Intersect(spans, spans) leaving spans unchanged.
func TestIntersectSelfIsNotIdentityForPartialCoverage(t *testing.T) {
	half := SpanBuffer{Spans: []Span{{Y: 0, X: 0, Len: 10, Coverage: 128}}}
	got := Intersect(half, half)
	if got.Spans[0].Coverage == 128 {
		t.Fatal("Intersect(half, half) preserved partial coverage, expected degradation")
	}
}

func TestIntersectFullCoverageSelfIsIdentity(t *testing.T) {
	full := SpanBuffer{Spans: []Span{{Y: 0, X: 0, Len: 10, Coverage: 255}}}
	got := Intersect(full, full)
	if got.Spans[0].Coverage != 255 || got.Spans[0].Len != 10 {
		t.Fatalf("Intersect(full, full) = %+v, want unchanged full span", got.Spans[0])
	}
}

func TestIntersectNoOverlapRowIsEmpty(t *testing.T) {
	a := SpanBuffer{Spans: []Span{{Y: 0, X: 0, Len: 5, Coverage: 255}}}
	b := SpanBuffer{Spans: []Span{{Y: 1, X: 0, Len: 5, Coverage: 255}}}
	if !Intersect(a, b).Empty() {
		t.Fatal("Intersect on disjoint rows is not Empty()")
	}
}

func TestBoundingRectOfMultipleSpans(t *testing.T) {
	buf := SpanBuffer{Spans: []Span{
		{Y: 0, X: 0, Len: 5, Coverage: 255},
		{Y: 3, X: 10, Len: 2, Coverage: 255},
	}}
	got := buf.BoundingRect()
	if got.X != 0 || got.Y != 0 || got.W != 12 || got.H != 4 {
		t.Fatalf("BoundingRect() = %+v, want {X:0 Y:0 W:12 H:4}", got)
	}
}
