package geom

import "testing"

func TestRectEmpty(t *testing.T) {
	if (Rect{W: 1, H: 1}).Empty() {
		t.Fatal("1x1 rect reported Empty()")
	}
	if !(Rect{W: 0, H: 1}).Empty() {
		t.Fatal("zero-width rect not reported Empty()")
	}
	if !(Rect{W: 1, H: -1}).Empty() {
		t.Fatal("negative-height rect not reported Empty()")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	b := Rect{X: 5, Y: -1, W: 1, H: 1}
	got := a.Union(b)
	want := Rect{X: 0, Y: -1, W: 6, H: 3}
	if got != want {
		t.Fatalf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectUnionWithEmptyIsIdentity(t *testing.T) {
	a := Rect{X: 1, Y: 2, W: 3, H: 4}
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("Union(empty) = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Fatalf("empty.Union(a) = %+v, want %+v", got, a)
	}
}
