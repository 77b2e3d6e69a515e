package paintsrc

import (
	"testing"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

func TestColorClampedClipsOutOfRange(t *testing.T) {
	c := Color{R: 1.5, G: -0.5, B: 0.5, A: 2}.Clamped()
	if c.R != 1 || c.G != 0 || c.B != 0.5 || c.A != 1 {
		t.Fatalf("Clamped() = %+v, want {1 0 0.5 1}", c)
	}
}

func TestColorPremultiplyOpaque(t *testing.T) {
	got := Color{R: 1, G: 0, B: 0, A: 1}.Premultiply()
	want := uint32(0xFF)<<24 | uint32(0xFF)<<16
	if got != want {
		t.Fatalf("Premultiply() = %#x, want %#x", got, want)
	}
}

func TestColorPremultiplyScalesRGBByAlpha(t *testing.T) {
	got := Color{R: 1, G: 1, B: 1, A: 0.5}.Premultiply()
	a := byte(got >> 24)
	r := byte(got >> 16)
	if a != 127 {
		t.Fatalf("alpha = %d, want 127", a)
	}
	if r != a {
		t.Fatalf("premultiplied R = %d, want equal to alpha %d for white", r, a)
	}
}

func TestSolidEvaluatorRowIsConstant(t *testing.T) {
	p := &Paint{Kind: KindSolid, Solid: Color{R: 0, G: 1, B: 0, A: 1}, Opacity: 1, LocalMatrix: geom.Identity()}
	e := NewEvaluator(p, geom.Identity())
	out := make([]uint32, 4)
	e.Row(0, 0, 4, out)
	for i, v := range out {
		if v != out[0] {
			t.Fatalf("out[%d] = %#x, want constant %#x", i, v, out[0])
		}
	}
	if byte(out[0]>>8) != 0xFF { // green channel
		t.Fatalf("solid green row = %#x, want green channel 0xFF", out[0])
	}
}

func TestLinearGradientEndpointsMatchStops(t *testing.T) {
	p := &Paint{
		Kind: KindLinearGradient,
		Stops: []Stop{
			{Offset: 0, Color: Color{R: 1, A: 1}},
			{Offset: 1, Color: Color{B: 1, A: 1}},
		},
		Spread:      basics.SpreadPad,
		P1:          geom.Point{X: 0, Y: 0},
		P2:          geom.Point{X: 10, Y: 0},
		Opacity:     1,
		LocalMatrix: geom.Identity(),
	}
	e := NewEvaluator(p, geom.Identity())

	out := make([]uint32, 1)
	e.Row(0, 0, 1, out) // near t=0: red
	if r := byte(out[0] >> 16); r < 200 {
		t.Fatalf("left edge R = %d, want near 255", r)
	}

	e.Row(10, 0, 1, out) // near t=1: blue
	if b := byte(out[0]); b < 200 {
		t.Fatalf("right edge B = %d, want near 255", b)
	}
}

// Monotonic-red check: sampling left to right along a
// red-to-transparent-red linear gradient should never increase the red
// channel's premultiplied alpha contribution as the gradient fades.
func TestLinearGradientRedChannelIsMonotonic(t *testing.T) {
	p := &Paint{
		Kind: KindLinearGradient,
		Stops: []Stop{
			{Offset: 0, Color: Color{R: 1, A: 1}},
			{Offset: 1, Color: Color{R: 1, A: 0}},
		},
		Spread:      basics.SpreadPad,
		P1:          geom.Point{X: 0, Y: 0},
		P2:          geom.Point{X: 100, Y: 0},
		Opacity:     1,
		LocalMatrix: geom.Identity(),
	}
	e := NewEvaluator(p, geom.Identity())

	out := make([]uint32, 100)
	e.Row(0, 0, 100, out)
	prevAlpha := byte(255)
	for i, v := range out {
		a := byte(v >> 24)
		if a > prevAlpha {
			t.Fatalf("out[%d] alpha = %d, increased from previous %d", i, a, prevAlpha)
		}
		prevAlpha = a
	}
}

func TestLinearGradientNonInvertibleMatrixIsTransparent(t *testing.T) {
	p := &Paint{
		Kind:        KindLinearGradient,
		Stops:       []Stop{{Offset: 0, Color: Color{R: 1, A: 1}}, {Offset: 1, Color: Color{B: 1, A: 1}}},
		P1:          geom.Point{X: 0, Y: 0},
		P2:          geom.Point{X: 10, Y: 0},
		Opacity:     1,
		LocalMatrix: geom.Matrix{}, // all-zero, singular
	}
	e := NewEvaluator(p, geom.Identity())
	out := make([]uint32, 1)
	e.Row(0, 0, 1, out)
	if out[0] != 0 {
		t.Fatalf("Row() with non-invertible matrix = %#x, want transparent 0", out[0])
	}
}

func TestApplySpreadPadClamps(t *testing.T) {
	if got := applySpread(-1, basics.SpreadPad); got != 0 {
		t.Fatalf("applySpread(-1, pad) = %v, want 0", got)
	}
	if got := applySpread(2, basics.SpreadPad); got != 1 {
		t.Fatalf("applySpread(2, pad) = %v, want 1", got)
	}
}

func TestApplySpreadRepeatWraps(t *testing.T) {
	got := applySpread(1.25, basics.SpreadRepeat)
	if got < 0.24 || got > 0.26 {
		t.Fatalf("applySpread(1.25, repeat) = %v, want ~0.25", got)
	}
}

func TestApplySpreadReflectMirrors(t *testing.T) {
	got := applySpread(1.25, basics.SpreadReflect)
	if got < 0.74 || got > 0.76 {
		t.Fatalf("applySpread(1.25, reflect) = %v, want ~0.75", got)
	}
}
