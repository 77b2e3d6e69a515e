package vg

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/font"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// GlyphID and GlyphSource re-export the font boundary's capability
// interface at the facade level, so callers
// never import internal/font directly.
type GlyphID = font.GlyphID
type GlyphSource = font.GlyphSource
type FontMetrics = font.Metrics
type GlyphExtents = font.GlyphExtents

// NewTypesettingSource parses an SFNT (TrueType/OpenType) font into the
// default go-text-backed GlyphSource.
func NewTypesettingSource(sfntBytes []byte) (GlyphSource, error) {
	return font.ParseTypesettingSource(sfntBytes)
}

// AddGlyph appends gid's outline to the canvas's current path, scaled from
// font units to a size-em box and translated to (x, y), the same
// transform-then-flatten pipeline a shape helper produces, so Fill/Stroke
// work on glyph outlines exactly as they do on any other path.
func (c *Canvas) AddGlyph(src GlyphSource, gid GlyphID, x, y, size float64) {
	upem := src.Metrics().UnitsPerEm
	if upem <= 0 {
		return
	}
	scale := size / float64(upem)
	m := geom.Translation(x, y).Scale(scale, -scale)
	path := c.core().path
	hasOutline := src.TraverseGlyphPath(gid, func(cmd basics.PathCommand, pts []geom.Point) {
		mapped := make([]geom.Point, len(pts))
		for i, p := range pts {
			mapped[i] = m.ApplyPoint(p)
		}
		switch cmd {
		case basics.MoveTo:
			path.MoveTo(float64(mapped[0].X), float64(mapped[0].Y))
		case basics.LineTo:
			path.LineTo(float64(mapped[0].X), float64(mapped[0].Y))
		case basics.CubicTo:
			path.CubicTo(
				float64(mapped[0].X), float64(mapped[0].Y),
				float64(mapped[1].X), float64(mapped[1].Y),
				float64(mapped[2].X), float64(mapped[2].Y),
			)
		case basics.Close:
			path.Close()
		}
	})
	if hasOutline {
		path.Close()
	}
}
