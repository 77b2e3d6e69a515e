// Package font is the rendering core's font boundary. It does not parse font files itself; GlyphSource is the
// capability interface the canvas draws through, and TypesettingSource is
// the default implementation backed by github.com/go-text/typesetting.
// Based on internal/font/interfaces.go (capability-
// interface style) and glyph.go (FontMetrics field set), with the glyph
// outline shape itself grounded on gioui-gio's text/gotext.go Shape method,
// which is the one example in the pack that actually walks a go-text
// font.Face's GlyphData segments into a vector path.
package font

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// GlyphID identifies a glyph within a face's own numbering (not a Unicode
// code point).
type GlyphID uint32

// Metrics carries the face-wide measurements a text layer needs.
type Metrics struct {
	UnitsPerEm int
	Ascent     float64
	Descent    float64
	LineGap    float64
}

// GlyphExtents is a glyph's ink bounding box in font units. TypesettingSource
// computes it from the outline on every call and does not cache it.
type GlyphExtents struct {
	X, Y, W, H float64
}

// GlyphSource is the capability a loaded font face exposes to the rendering
// core: given a glyph ID it already resolved (shaping/cmap lookup is out of
// scope), yield the glyph's advance, ink extents, and outline.
type GlyphSource interface {
	Metrics() Metrics
	Advance(gid GlyphID) float64
	GlyphExtents(gid GlyphID) GlyphExtents

	// TraverseGlyphPath walks gid's outline in font units (1 unit = 1 /
	// Metrics().UnitsPerEm em), calling fn once per path command exactly
	// like pathstore.Path.Traverse: MoveTo/LineTo/Close carry one point,
	// CubicTo carries three. Quadratic contours are upcast to cubic
	// since pathstore has no quadratic command of its own.
	TraverseGlyphPath(gid GlyphID, fn func(cmd basics.PathCommand, pts []geom.Point)) bool
}

// quadToCubic degree-elevates a quadratic Bézier (p0, ctrl, p1) into the
// equivalent cubic's two control points, matching pathstore.Path.QuadTo's
// own formula so a glyph's quadratic contours and a user path's cubic
// contours end up identically flattened.
func quadToCubic(p0, ctrl, p1 geom.Point) (c1, c2 geom.Point) {
	c1 = geom.Point{
		X: p0.X + 2*(ctrl.X-p0.X)/3,
		Y: p0.Y + 2*(ctrl.Y-p0.Y)/3,
	}
	c2 = geom.Point{
		X: p1.X + 2*(ctrl.X-p1.X)/3,
		Y: p1.Y + 2*(ctrl.Y-p1.Y)/3,
	}
	return c1, c2
}
