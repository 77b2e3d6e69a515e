package svgpath

import (
	"testing"

	"github.com/agg-go/vgcanvas/internal/basics"
)

func TestParseMoveLineClose(t *testing.T) {
	p, err := Parse("M0 0 L10 0 L10 10 Z")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	elems := p.Elements()
	want := []basics.PathCommand{basics.MoveTo, basics.LineTo, basics.LineTo, basics.Close}
	if len(elems) != len(want) {
		t.Fatalf("len(Elements()) = %d, want %d", len(elems), len(want))
	}
	for i, e := range elems {
		if e.Cmd != want[i] {
			t.Fatalf("Elements()[%d].Cmd = %v, want %v", i, e.Cmd, want[i])
		}
	}
}

func TestParseRelativeCoordinatesAccumulate(t *testing.T) {
	p, err := Parse("m10 10 l5 0 l0 5")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cur, ok := p.CurrentPoint()
	if !ok {
		t.Fatal("CurrentPoint() ok = false")
	}
	if cur.X != 15 || cur.Y != 15 {
		t.Fatalf("CurrentPoint() = %+v, want {15 15}", cur)
	}
}

func TestParseImplicitCommandRepeat(t *testing.T) {
	p, err := Parse("M0 0 L10 0 10 10 0 10")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.NumPoints() != 4 {
		t.Fatalf("NumPoints() = %d, want 4 (one move + three implicit lines)", p.NumPoints())
	}
}

func TestParseCubicCurve(t *testing.T) {
	p, err := Parse("M0 0 C1 1 2 1 3 0")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	elems := p.Elements()
	last := elems[len(elems)-1]
	if last.Cmd != basics.CubicTo {
		t.Fatalf("last command = %v, want CubicTo", last.Cmd)
	}
	if last.P3.X != 3 || last.P3.Y != 0 {
		t.Fatalf("cubic endpoint = %+v, want {3 0}", last.P3)
	}
}

func TestParseArcFlagsWithoutSeparators(t *testing.T) {
	// SVG grammar allows flag digits to abut the next number with no
	// separator.
	_, err := Parse("M0 0 A30 50 0 1110 10")
	if err != nil {
		t.Fatalf("Parse() error = %v, want success for unseparated arc flags", err)
	}
}

func TestParseRejectsDataNotStartingWithCommand(t *testing.T) {
	_, err := Parse("10 10 L20 20")
	if err == nil {
		t.Fatal("Parse() error = nil, want error for missing leading command")
	}
}

func TestParseRejectsMalformedNumber(t *testing.T) {
	_, err := Parse("M0 0 L-- 0")
	if err == nil {
		t.Fatal("Parse() error = nil, want error for malformed number")
	}
}
