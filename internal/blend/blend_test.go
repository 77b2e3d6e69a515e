package blend

import (
	"testing"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/raster"
	"github.com/agg-go/vgcanvas/internal/surface"
)

type solidSource struct{ argb uint32 }

func (s solidSource) Row(x, y, length int32, out []uint32) {
	for i := range out {
		out[i] = s.argb
	}
}

func TestCompositeSrcOverwritesDestination(t *testing.T) {
	dst := surface.New(2, 1)
	dst.Clear(0xFF00FF00) // opaque green

	spans := raster.SpanBuffer{Spans: []raster.Span{{Y: 0, X: 0, Len: 2, Coverage: 255}}}
	Composite(dst, spans, solidSource{argb: 0x80000000}, basics.OpSrc, 255)

	if got := dst.At(0, 0); got != 0x80000000 {
		t.Fatalf("At(0,0) = %#x, want %#x (SRC replaces regardless of destination)", got, 0x80000000)
	}
}

// Alpha-0x80 black over opaque white under SRC_OVER yields 0xFF7F7F7F:
// alpha stays opaque, and each RGB channel is Div255(255*(255-0x80)) = 0x7F.
func TestCompositeSrcOverHalfOpacityBlackOverWhite(t *testing.T) {
	dst := surface.New(1, 1)
	dst.Clear(0xFFFFFFFF)

	// premultiplied half-alpha black: alpha 0x80, rgb all zero.
	spans := raster.SpanBuffer{Spans: []raster.Span{{Y: 0, X: 0, Len: 1, Coverage: 255}}}
	Composite(dst, spans, solidSource{argb: 0x80000000}, basics.OpSrcOver, 255)

	got := dst.At(0, 0)
	if got != 0xFF7F7F7F {
		t.Fatalf("At(0,0) = %#x, want %#x", got, uint32(0xFF7F7F7F))
	}
}

func TestCompositeDstInKeepsDestinationScaledBySourceAlpha(t *testing.T) {
	dst := surface.New(1, 1)
	dst.Clear(0xFFFFFFFF)

	spans := raster.SpanBuffer{Spans: []raster.Span{{Y: 0, X: 0, Len: 1, Coverage: 255}}}
	Composite(dst, spans, solidSource{argb: 0x80000000}, basics.OpDstIn, 255)

	got := dst.At(0, 0)
	if got != 0x80808080 {
		t.Fatalf("At(0,0) = %#x, want %#x", got, uint32(0x80808080))
	}
}

func TestCompositeCoverageAttenuatesSource(t *testing.T) {
	dst := surface.New(1, 1)
	dst.Clear(0) // transparent

	spans := raster.SpanBuffer{Spans: []raster.Span{{Y: 0, X: 0, Len: 1, Coverage: 128}}}
	Composite(dst, spans, solidSource{argb: 0xFFFFFFFF}, basics.OpSrcOver, 255)

	got := dst.At(0, 0)
	if byte(got>>24) == 0xFF || byte(got>>24) == 0 {
		t.Fatalf("At(0,0) alpha = %#x, want a partial value attenuated by coverage", byte(got>>24))
	}
}

func TestCompositeSkipsSpansOutsideSurfaceBounds(t *testing.T) {
	dst := surface.New(1, 1)
	dst.Clear(0xFF000000)

	spans := raster.SpanBuffer{Spans: []raster.Span{{Y: 5, X: 0, Len: 1, Coverage: 255}}}
	Composite(dst, spans, solidSource{argb: 0xFFFFFFFF}, basics.OpSrc, 255)

	if got := dst.At(0, 0); got != 0xFF000000 {
		t.Fatalf("At(0,0) = %#x, want unchanged %#x", got, uint32(0xFF000000))
	}
}
