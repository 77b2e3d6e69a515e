// Package blend implements the Porter-Duff compositor loop:
// for each span, it reads a row of premultiplied ARGB source pixels from a
// paint evaluator and blends them into the destination surface, applying
// span coverage and global opacity multiplicatively. Grounded on the
// teacher's internal/blending.go (comp_op_* pixel formulas), narrowed to
// the four operators this core supports.
package blend

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/raster"
	"github.com/agg-go/vgcanvas/internal/surface"
)

// Source produces one row of len premultiplied ARGB32 source pixels
// starting at (x, y), e.g. a solid color, a gradient, or a texture
// evaluator.
type Source interface {
	Row(x, y, length int32, out []uint32)
}

// Composite blends spans: src supplies premultiplied ARGB
// source pixels, op selects the Porter-Duff formula, opacity is the
// global alpha multiplier in [0,255].
func Composite(dst *surface.Surface, spans raster.SpanBuffer, src Source, op basics.Operator, opacity uint8) {
	var row []uint32
	for _, sp := range spans.Spans {
		if int(sp.Y) < 0 || int(sp.Y) >= dst.Height {
			continue
		}
		if cap(row) < int(sp.Len) {
			row = make([]uint32, sp.Len)
		}
		row = row[:sp.Len]
		src.Row(sp.X, sp.Y, sp.Len, row)
		for i := int32(0); i < sp.Len; i++ {
			x := int(sp.X + i)
			if x < 0 || x >= dst.Width {
				continue
			}
			d := dst.At(x, int(sp.Y))
			s := applyCoverage(row[i], sp.Coverage, opacity)
			dst.Set(x, int(sp.Y), blendPixel(d, s, op))
		}
	}
}

// applyCoverage scales a premultiplied source pixel's alpha and RGB by
// span coverage and global opacity, both fast-divided by 255.
func applyCoverage(s uint32, cov, opacity uint8) uint32 {
	if cov == 255 && opacity == 255 {
		return s
	}
	a := byte(s >> 24)
	r := byte(s >> 16)
	g := byte(s >> 8)
	b := byte(s)
	a = mul255(mul255(a, cov), opacity)
	r = mul255(mul255(r, cov), opacity)
	g = mul255(mul255(g, cov), opacity)
	b = mul255(mul255(b, cov), opacity)
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func mul255(c, m byte) byte {
	return basics.Div255(uint32(c) * uint32(m))
}

// blendPixel applies one of the four supported Porter-Duff operators to a
// single premultiplied destination/source pixel pair.
func blendPixel(d, s uint32, op basics.Operator) uint32 {
	switch op {
	case basics.OpSrc:
		return s
	case basics.OpSrcOver:
		return blendChannels(d, s, 255-alphaOf(s))
	case basics.OpDstIn:
		return scaleChannels(d, alphaOf(s))
	case basics.OpDstOut:
		return scaleChannels(d, 255-alphaOf(s))
	}
	return s
}

func alphaOf(p uint32) byte { return byte(p >> 24) }

// blendChannels computes D = S + D*invAlphaS per channel (SRC_OVER).
func blendChannels(d, s uint32, invAlphaS byte) uint32 {
	da, dr, dg, db := byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	sa, sr, sg, sb := byte(s>>24), byte(s>>16), byte(s>>8), byte(s)
	a := sa + mul255(da, invAlphaS)
	r := sr + mul255(dr, invAlphaS)
	g := sg + mul255(dg, invAlphaS)
	b := sb + mul255(db, invAlphaS)
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// scaleChannels computes D = D*factor per channel (DST_IN / DST_OUT).
func scaleChannels(d uint32, factor byte) uint32 {
	a, r, g, b := byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	return uint32(mul255(a, factor))<<24 | uint32(mul255(r, factor))<<16 |
		uint32(mul255(g, factor))<<8 | uint32(mul255(b, factor))
}
