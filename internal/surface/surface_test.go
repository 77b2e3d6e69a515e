package surface

import "testing"

func TestNewIsFullyTransparent(t *testing.T) {
	s := New(4, 4)
	if s.At(0, 0) != 0 || s.At(3, 3) != 0 {
		t.Fatal("New() surface is not fully transparent")
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	s := New(2, 2)
	s.Set(1, 0, 0xFF112233)
	if got := s.At(1, 0); got != 0xFF112233 {
		t.Fatalf("At(1,0) = %#x, want %#x", got, uint32(0xFF112233))
	}
	if got := s.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %#x, want 0 (unaffected)", got)
	}
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	s := New(2, 2)
	s.Set(-1, 0, 0xFFFFFFFF)
	s.Set(0, 5, 0xFFFFFFFF)
	if got := s.At(-1, 0); got != 0 {
		t.Fatalf("At(-1,0) = %#x, want 0", got)
	}
	if got := s.At(0, 5); got != 0 {
		t.Fatalf("At(0,5) = %#x, want 0", got)
	}
}

func TestNewForDataBorrowsWithoutCopying(t *testing.T) {
	pix := make([]byte, 4*4)
	s := NewForData(2, 2, 8, pix)
	if !s.Borrowed() {
		t.Fatal("NewForData() Borrowed() = false, want true")
	}
	s.Set(0, 0, 0xFF00FF00)
	if pix[0] != 0x00 || pix[1] != 0xFF || pix[2] != 0x00 || pix[3] != 0xFF {
		t.Fatalf("underlying pix = %v, want writes to alias caller memory", pix[:4])
	}
}

func TestClearFillsWholeSurface(t *testing.T) {
	s := New(3, 3)
	s.Clear(0xFF112233)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := s.At(x, y); got != 0xFF112233 {
				t.Fatalf("At(%d,%d) = %#x, want %#x", x, y, got, uint32(0xFF112233))
			}
		}
	}
}

func TestRGBAToARGBOpaqueIsUnchanged(t *testing.T) {
	got := RGBAToARGB(10, 20, 30, 255)
	want := uint32(255)<<24 | uint32(10)<<16 | uint32(20)<<8 | uint32(30)
	if got != want {
		t.Fatalf("RGBAToARGB(10,20,30,255) = %#x, want %#x", got, want)
	}
}

func TestRGBAToARGBPremultipliesPartialAlpha(t *testing.T) {
	got := RGBAToARGB(255, 255, 255, 128)
	r := byte(got >> 16)
	if r >= 255 || r == 0 {
		t.Fatalf("premultiplied R channel = %d, want a partial value less than 255", r)
	}
}

func TestARGBToRGBARoundTripClampsToOriginal(t *testing.T) {
	premult := RGBAToARGB(200, 100, 50, 128)
	back := ARGBToRGBA(premult)
	// premultiply/unpremultiply at alpha=128 loses a bit of precision; the
	// result must stay within rounding distance of the original channels.
	within := func(got, want byte) bool {
		d := int(got) - int(want)
		if d < 0 {
			d = -d
		}
		return d <= 2
	}
	if !within(back[0], 200) || !within(back[1], 100) || !within(back[2], 50) || back[3] != 128 {
		t.Fatalf("round trip = %v, want near {200 100 50 128}", back)
	}
}
