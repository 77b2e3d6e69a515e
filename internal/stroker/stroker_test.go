package stroker

import (
	"testing"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/pathstore"
)

func TestGenerateDegenerateWidthIsEmpty(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	out := Generate(p, Style{Width: 0})
	if !out.Empty() {
		t.Fatal("Generate() with Width<=0 produced a non-empty outline")
	}
}

func TestGenerateHorizontalLineProducesBandOfGivenWidth(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	out := Generate(p, Style{Width: 10, Cap: basics.CapButt, Join: basics.JoinMiter, MiterLimit: 4})
	if out.Empty() {
		t.Fatal("Generate() produced an empty outline for a straight line")
	}

	r, _ := out.Extents()
	if r.H < 9.9 || r.H > 10.1 {
		t.Fatalf("outline height = %v, want ~10 (stroke width)", r.H)
	}
	if r.W < 99.9 {
		t.Fatalf("outline width = %v, want >= 100 (butt cap adds no overhang)", r.W)
	}
}

func TestGenerateSquareCapExtendsBeyondEndpoints(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)

	out := Generate(p, Style{Width: 10, Cap: basics.CapSquare, Join: basics.JoinMiter, MiterLimit: 4})
	r, _ := out.Extents()
	if r.W <= 100 {
		t.Fatalf("square-cap outline width = %v, want > 100 (cap overhang of half the width each side)", r.W)
	}
}

func TestGenerateClosedTriangleProducesRing(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(5, 10)
	p.Close()

	out := Generate(p, Style{Width: 2, Cap: basics.CapButt, Join: basics.JoinRound, MiterLimit: 4})
	if out.Empty() {
		t.Fatal("Generate() produced an empty outline for a closed triangle")
	}
	if out.NumContours() < 2 {
		t.Fatalf("NumContours() = %d, want >= 2 (inner and outer ring)", out.NumContours())
	}
}
