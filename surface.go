package vg

import (
	"github.com/agg-go/vgcanvas/internal/refcount"
	"github.com/agg-go/vgcanvas/internal/surface"
)

// Surface is a shared-ownership handle over a premultiplied ARGB32 pixel
// plane. The zero value is not usable; construct with
// NewSurface or NewSurfaceForData.
type Surface struct {
	box *refcount.Box[surface.Surface]
}

func wrapSurface(s *surface.Surface) *Surface {
	return &Surface{box: refcount.New(*s, nil)}
}

// NewSurface allocates an owned, fully transparent width*height surface.
func NewSurface(width, height int) *Surface {
	return wrapSurface(surface.New(width, height))
}

// NewSurfaceForData wraps caller-owned pixel memory without copying
//. stride is in bytes.
func NewSurfaceForData(width, height, stride int, pix []byte) *Surface {
	return wrapSurface(surface.NewForData(width, height, stride, pix))
}

// Reference increments the ref count and returns the same handle. Safe on
// a nil Surface.
func (s *Surface) Reference() *Surface {
	if s == nil {
		return nil
	}
	s.box.Reference()
	return s
}

// Destroy decrements the ref count, freeing on reaching zero. Safe on a
// nil Surface.
func (s *Surface) Destroy() {
	if s == nil {
		return
	}
	s.box.Destroy()
}

func (s *Surface) surf() *surface.Surface { return s.box.Value() }

func (s *Surface) Width() int  { return s.surf().Width }
func (s *Surface) Height() int { return s.surf().Height }
func (s *Surface) Stride() int { return s.surf().Stride }

// Borrowed reports whether the surface wraps caller-owned memory rather
// than memory it allocated itself.
func (s *Surface) Borrowed() bool { return s.surf().Borrowed() }

// Pixels returns the raw premultiplied ARGB32 byte plane (B,G,R,A word
// order, row-major, Stride() bytes per row).
func (s *Surface) Pixels() []byte { return s.surf().Pix }

// At returns the premultiplied ARGB32 word at (x, y); 0 out of bounds.
func (s *Surface) At(x, y int) uint32 { return s.surf().At(x, y) }

// Set writes a premultiplied ARGB32 word at (x, y); a no-op out of bounds.
func (s *Surface) Set(x, y int, argb uint32) { s.surf().Set(x, y, argb) }

// Clear fills the whole surface with c.
func (s *Surface) Clear(c Color) {
	s.surf().Clear(c.internal().Premultiply())
}

// ARGBToRGBA un-premultiplies a premultiplied ARGB32 word into
// non-premultiplied RGBA byte order.
func ARGBToRGBA(argb uint32) [4]byte { return surface.ARGBToRGBA(argb) }

// RGBAToARGB premultiplies non-premultiplied RGBA bytes into a
// premultiplied ARGB32 word.
func RGBAToARGB(r, g, b, a byte) uint32 { return surface.RGBAToARGB(r, g, b, a) }
