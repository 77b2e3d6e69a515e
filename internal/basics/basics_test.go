package basics

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1}, {math.NaN(), 0},
	}
	for _, c := range cases {
		got := Clamp01(c.in)
		if math.IsNaN(c.want) {
			continue
		}
		if got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Fatal("Min(3,5) != 3")
	}
	if Max(3, 5) != 5 {
		t.Fatal("Max(3,5) != 5")
	}
	if Clamp(10, 0, 5) != 5 {
		t.Fatal("Clamp(10,0,5) != 5")
	}
	if Clamp(-10, 0, 5) != 0 {
		t.Fatal("Clamp(-10,0,5) != 0")
	}
	if Clamp(3, 0, 5) != 3 {
		t.Fatal("Clamp(3,0,5) != 3")
	}
}

func TestDiv255Endpoints(t *testing.T) {
	if Div255(0) != 0 {
		t.Fatalf("Div255(0) = %d, want 0", Div255(0))
	}
	if Div255(255*255) != 255 {
		t.Fatalf("Div255(255*255) = %d, want 255", Div255(255*255))
	}
}

func TestPathCommandNumPoints(t *testing.T) {
	if MoveTo.NumPoints() != 1 || LineTo.NumPoints() != 1 || Close.NumPoints() != 1 {
		t.Fatal("MoveTo/LineTo/Close should each carry 1 point")
	}
	if CubicTo.NumPoints() != 3 {
		t.Fatalf("CubicTo.NumPoints() = %d, want 3", CubicTo.NumPoints())
	}
}
