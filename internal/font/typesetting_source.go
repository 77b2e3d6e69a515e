package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/opentype/api"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// TypesettingSource is the default GlyphSource, backed by a parsed
// go-text/typesetting face. Grounded
// on gioui-gio's font/opentype/opentype.go (Parse wraps gotext.ParseTTF)
// and text/gotext.go's Shape method for the segment-to-path walk.
type TypesettingSource struct {
	face gotext.Face
}

// ParseTypesettingSource parses an SFNT (TrueType/OpenType) font from src.
func ParseTypesettingSource(src []byte) (*TypesettingSource, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}
	return &TypesettingSource{face: face}, nil
}

func (s *TypesettingSource) Metrics() Metrics {
	upem := int(s.face.Upem())
	lm := s.face.LineMetrics()
	return Metrics{
		UnitsPerEm: upem,
		Ascent:     float64(lm.Ascent),
		Descent:    float64(lm.Descent),
		LineGap:    float64(lm.LineGap),
	}
}

func (s *TypesettingSource) Advance(gid GlyphID) float64 {
	return float64(s.face.HorizontalAdvance(gotext.GID(gid)))
}

// GlyphExtents computes gid's ink bounding box by walking its outline once;
// the "computed on first use, memoized" contract is the caller's
// responsibility (it owns the long-lived cache, §5/§9).
func (s *TypesettingSource) GlyphExtents(gid GlyphID) GlyphExtents {
	minX, minY := float64(0), float64(0)
	maxX, maxY := float64(0), float64(0)
	first := true
	s.TraverseGlyphPath(gid, func(_ basics.PathCommand, pts []geom.Point) {
		for _, p := range pts {
			x, y := float64(p.X), float64(p.Y)
			if first {
				minX, maxX, minY, maxY = x, x, y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	})
	if first {
		return GlyphExtents{}
	}
	return GlyphExtents{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// TraverseGlyphPath walks gid's outline, upcasting quadratic segments to
// cubic so the path stream matches pathstore's four-command model
//. Bitmap/SVG glyph data (api.GlyphBitmap / api.GlyphSVG) yields
// no path, matching the "unrecoverable conditions: none ... input
// conditions fall back" policy (§4.8): the call returns false instead of
// panicking.
func (s *TypesettingSource) TraverseGlyphPath(gid GlyphID, fn func(cmd basics.PathCommand, pts []geom.Point)) bool {
	data := s.face.GlyphData(gotext.GID(gid))
	outline, ok := data.(api.GlyphOutline)
	if !ok {
		return false
	}

	var cur geom.Point
	for _, seg := range outline.Segments {
		switch seg.Op {
		case api.SegmentOpMoveTo:
			p := geom.Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			fn(basics.MoveTo, []geom.Point{p})
			cur = p
		case api.SegmentOpLineTo:
			p := geom.Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			fn(basics.LineTo, []geom.Point{p})
			cur = p
		case api.SegmentOpQuadTo:
			ctrl := geom.Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			end := geom.Point{X: seg.Args[1].X, Y: seg.Args[1].Y}
			c1, c2 := quadToCubic(cur, ctrl, end)
			fn(basics.CubicTo, []geom.Point{c1, c2, end})
			cur = end
		case api.SegmentOpCubeTo:
			c1 := geom.Point{X: seg.Args[0].X, Y: seg.Args[0].Y}
			c2 := geom.Point{X: seg.Args[1].X, Y: seg.Args[1].Y}
			end := geom.Point{X: seg.Args[2].X, Y: seg.Args[2].Y}
			fn(basics.CubicTo, []geom.Point{c1, c2, end})
			cur = end
		}
	}
	return true
}
