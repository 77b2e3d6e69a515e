package pathstore

import "testing"

func TestAddRectExtents(t *testing.T) {
	p := New()
	p.AddRect(1, 2, 10, 5)
	r, _ := p.Extents()
	if r.X != 1 || r.Y != 2 || r.W != 10 || r.H != 5 {
		t.Fatalf("Extents() = %+v, want {X:1 Y:2 W:10 H:5}", r)
	}
}

func TestAddCircleIsClosed(t *testing.T) {
	p := New()
	p.AddCircle(0, 0, 5)
	if p.NumContours() != 1 {
		t.Fatalf("NumContours() = %d, want 1", p.NumContours())
	}
	r, _ := p.Extents()
	if r.W < 9.9 || r.W > 10.1 || r.H < 9.9 || r.H > 10.1 {
		t.Fatalf("circle extents = %+v, want ~10x10", r)
	}
}

func TestAddRoundRectWithZeroRadiusDegeneratesToRect(t *testing.T) {
	p := New()
	p.AddRoundRect(0, 0, 20, 10, 0, 0)
	r, _ := p.Extents()
	if r.W != 20 || r.H != 10 {
		t.Fatalf("Extents() = %+v, want {W:20 H:10}", r)
	}
}

func TestAddArcFullCircleClosesContour(t *testing.T) {
	p := New()
	p.AddArc(0, 0, 3, 0, 2*3.141592653589793, false)
	if p.Empty() {
		t.Fatal("AddArc() produced an empty path")
	}
	cur, _ := p.CurrentPoint()
	if cur.X < 3-1e-4 || cur.X > 3+1e-4 || cur.Y < -1e-4 || cur.Y > 1e-4 {
		t.Fatalf("CurrentPoint() after full-circle AddArc = %+v, want back at start {3 0}", cur)
	}
}
