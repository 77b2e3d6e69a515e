package vg

import (
	"math"
	"testing"
)

// On a 4x1 transparent surface, fill rect (0,0,2,1) with SRC and opaque
// red. Expected words: 0xFFFF0000, 0xFFFF0000, 0x00000000, 0x00000000.
func TestScenarioSrcFillLeavesRestTransparent(t *testing.T) {
	surf := NewSurface(4, 1)
	c := NewCanvas(surf)
	c.SetOperator(OpSrc)
	c.SetSolidRGBA(1, 0, 0, 1)
	c.Rect(0, 0, 2, 1)
	c.Fill()

	want := []uint32{0xFFFF0000, 0xFFFF0000, 0x00000000, 0x00000000}
	for x, w := range want {
		if got := surf.At(x, 0); got != w {
			t.Fatalf("At(%d,0) = %#x, want %#x", x, got, w)
		}
	}
	c.Destroy()
	surf.Destroy()
}

// On a 2x1 surface initialized to opaque white, fill both pixels with
// SRC_OVER and (0,0,0,0.5). Expected: 0xFF808080 (+-1 per channel).
func TestScenarioSrcOverHalfOpacityBlackOverWhite(t *testing.T) {
	surf := NewSurface(2, 1)
	surf.Clear(RGBA(1, 1, 1, 1))
	c := NewCanvas(surf)
	c.SetOperator(OpSrcOver)
	c.SetSolidRGBA(0, 0, 0, 0.5)
	c.Rect(0, 0, 2, 1)
	c.Fill()

	within := func(got, want byte) bool {
		d := int(got) - int(want)
		if d < 0 {
			d = -d
		}
		return d <= 1
	}
	for x := 0; x < 2; x++ {
		got := surf.At(x, 0)
		a, r, g, b := byte(got>>24), byte(got>>16), byte(got>>8), byte(got)
		if !within(a, 0xFF) || !within(r, 0x80) || !within(g, 0x80) || !within(b, 0x80) {
			t.Fatalf("At(%d,0) = %#x, want ~0xFF808080", x, got)
		}
	}
	c.Destroy()
	surf.Destroy()
}

// Rotation(pi/2) applied to (1,0) yields (0,1) within 1e-6.
func TestScenarioRotationQuarterTurnMapsPoint(t *testing.T) {
	m := Rotation(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if math.Abs(x) > 1e-6 || math.Abs(y-1) > 1e-6 {
		t.Fatalf("Rotation(pi/2).Apply(1,0) = (%v,%v), want (0,1)", x, y)
	}
}

// set_rgb(2,-1,0.5) then get_color returns (1,0,0.5,1).
func TestScenarioSetRGBClampsOnRead(t *testing.T) {
	got := RGB(2, -1, 0.5).Clamped()
	want := Color{R: 1, G: 0, B: 0.5, A: 1}
	if got != want {
		t.Fatalf("RGB(2,-1,0.5).Clamped() = %+v, want %+v", got, want)
	}
}

// A linear gradient (0,0)->(10,0), stops (0->red),(1->blue), spread pad,
// rasterized over rect (0,0,10,1) with SRC: x=0 has R=255,B=0; x=9 has
// R near 0, B near 255; and column red values are monotonically
// non-increasing.
func TestScenarioLinearGradientMonotonicRed(t *testing.T) {
	surf := NewSurface(10, 1)
	c := NewCanvas(surf)
	c.SetOperator(OpSrc)
	grad := NewLinearGradientPaint(0, 0, 10, 0, []GradientStop{
		{Offset: 0, Color: RGBA(1, 0, 0, 1)},
		{Offset: 1, Color: RGBA(0, 0, 1, 1)},
	}, SpreadPad)
	c.SetPaint(grad)
	c.Rect(0, 0, 10, 1)
	c.Fill()
	grad.Destroy()

	first := surf.At(0, 0)
	if byte(first>>16) != 0xFF || byte(first) != 0 {
		t.Fatalf("At(0,0) = %#x, want R=255,B=0", first)
	}
	last := surf.At(9, 0)
	if byte(last>>16) > 40 || byte(last) < 200 {
		t.Fatalf("At(9,0) = %#x, want R near 0, B near 255", last)
	}

	prevR := byte(255)
	for x := 0; x < 10; x++ {
		r := byte(surf.At(x, 0) >> 16)
		if r > prevR {
			t.Fatalf("At(%d,0) red = %d, increased from previous %d", x, r, prevR)
		}
		prevR = r
	}
	c.Destroy()
	surf.Destroy()
}

func TestSaveRestoreRoundTripsState(t *testing.T) {
	surf := NewSurface(1, 1)
	c := NewCanvas(surf)
	c.Translate(5, 5)
	c.SetOpacity(0.5)

	c.Save()
	c.Translate(10, 10)
	c.SetOpacity(0.1)
	c.Restore()

	if got := c.GetMatrix(); got != Translation(5, 5) {
		t.Fatalf("GetMatrix() after Restore() = %+v, want Translation(5,5)", got)
	}
	c.Destroy()
	surf.Destroy()
}

func TestClipRestrictsSubsequentFill(t *testing.T) {
	surf := NewSurface(4, 1)
	c := NewCanvas(surf)
	c.Rect(0, 0, 2, 1)
	c.Clip()

	c.SetOperator(OpSrc)
	c.SetSolidRGBA(1, 1, 1, 1)
	c.Rect(0, 0, 4, 1)
	c.Fill()

	if surf.At(0, 0) == 0 || surf.At(1, 0) == 0 {
		t.Fatal("clipped region was not painted")
	}
	if surf.At(2, 0) != 0 || surf.At(3, 0) != 0 {
		t.Fatal("fill leaked outside the clip region")
	}
	c.Destroy()
	surf.Destroy()
}

func TestResetClipUnclipsSubsequentDraws(t *testing.T) {
	surf := NewSurface(2, 1)
	c := NewCanvas(surf)
	c.Rect(0, 0, 1, 1)
	c.Clip()
	c.ResetClip()

	c.SetOperator(OpSrc)
	c.SetSolidRGBA(1, 1, 1, 1)
	c.Rect(0, 0, 2, 1)
	c.Fill()

	if surf.At(1, 0) == 0 {
		t.Fatal("fill after ResetClip() did not reach pixel outside the old clip")
	}
	c.Destroy()
	surf.Destroy()
}

// Paint() fills the whole clip region (or surface) with the current
// paint, including partial coverage at clip edges correctly (regression
// for span self-intersection, since Paint's clip spans must not be
// re-intersected with themselves).
func TestPaintFillsClipRegionExactlyOnce(t *testing.T) {
	surf := NewSurface(4, 1)
	surf.Clear(RGBA(0, 0, 0, 0))
	c := NewCanvas(surf)
	c.Rect(0, 0, 2, 1)
	c.Clip()

	c.SetOperator(OpSrc)
	c.SetSolidRGBA(1, 0, 0, 1)
	c.Paint()

	if surf.At(0, 0) != 0xFFFF0000 || surf.At(1, 0) != 0xFFFF0000 {
		t.Fatalf("Paint() inside clip = %#x,%#x, want opaque red both", surf.At(0, 0), surf.At(1, 0))
	}
	if surf.At(2, 0) != 0 {
		t.Fatalf("Paint() leaked outside clip: At(2,0) = %#x", surf.At(2, 0))
	}
	c.Destroy()
	surf.Destroy()
}

func TestTransformCompositionalityTranslateEqualsMatrix(t *testing.T) {
	direct := Identity().Translate(3, 4)
	viaMatrix := Translation(3, 4)
	if direct != viaMatrix {
		t.Fatalf("Identity().Translate(3,4) = %+v, want %+v", direct, viaMatrix)
	}
}

func TestStrokeProducesVisibleOutline(t *testing.T) {
	surf := NewSurface(20, 20)
	c := NewCanvas(surf)
	c.SetOperator(OpSrc)
	c.SetSolidRGBA(1, 1, 1, 1)
	c.SetStrokeStyle(StrokeStyle{Width: 2, Cap: CapButt, Join: JoinMiter, MiterLimit: 4})
	c.MoveTo(2, 10)
	c.LineTo(18, 10)
	c.Stroke()

	if surf.At(10, 10) == 0 {
		t.Fatal("Stroke() produced no visible pixels along the stroked line")
	}
	c.Destroy()
	surf.Destroy()
}
