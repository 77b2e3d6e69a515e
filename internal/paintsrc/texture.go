package paintsrc

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/basics"
)

// sampleBilinear samples sampler at (x,y) in texture pixel space, blending
// the four nearest premultiplied source texels. Plain wrap
// clamps to the edge for the tap lookup but reports !ok (transparent) once
// the sample center itself falls outside the source rect; Tiled wraps
// coordinates modulo width/height.
func sampleBilinear(s TextureSampler, w, h int, x, y float64, wrap basics.TextureType) (uint32, bool) {
	if w <= 0 || h <= 0 {
		return 0, false
	}
	if wrap == basics.TexturePlain && (x < 0 || y < 0 || x >= float64(w) || y >= float64(h)) {
		return 0, false
	}

	fx := math.Floor(x)
	fy := math.Floor(y)
	tx := x - fx
	ty := y - fy
	x0 := int(fx)
	y0 := int(fy)

	c00 := texel(s, w, h, x0, y0, wrap)
	c10 := texel(s, w, h, x0+1, y0, wrap)
	c01 := texel(s, w, h, x0, y0+1, wrap)
	c11 := texel(s, w, h, x0+1, y0+1, wrap)

	return lerpARGB(lerpARGB(c00, c10, tx), lerpARGB(c01, c11, tx), ty), true
}

func texel(s TextureSampler, w, h, x, y int, wrap basics.TextureType) uint32 {
	if wrap == basics.TextureTiled {
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h
	} else {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
	}
	return s.AtPremultiplied(x, y)
}

func lerpARGB(a, b uint32, t float64) uint32 {
	af := byte(a >> 24)
	ar := byte(a >> 16)
	ag := byte(a >> 8)
	ab := byte(a)
	bf := byte(b >> 24)
	br := byte(b >> 16)
	bg := byte(b >> 8)
	bb := byte(b)

	af2 := lerpByte(af, bf, t)
	r := lerpByte(ar, br, t)
	g := lerpByte(ag, bg, t)
	bl := lerpByte(ab, bb, t)
	return uint32(af2)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
}

func lerpByte(a, b byte, t float64) byte {
	v := float64(a) + (float64(b)-float64(a))*t
	return byte(basics.Clamp01(v/255) * 255)
}
