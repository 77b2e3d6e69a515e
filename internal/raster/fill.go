package raster

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
	"github.com/agg-go/vgcanvas/internal/pathstore"
)

// Fill transforms path by m, flattens it, and rasterizes it into a sorted
// span buffer honoring fillRule and clip -> spans").
func Fill(path *pathstore.Path, m geom.Matrix, clip ClipBox, fillRule basics.FillRule) SpanBuffer {
	transformed := path.Clone()
	transformed.Transform(m)
	flat := transformed.CloneFlatten()
	poly := flat.Polylines()

	r := New()
	r.Clip = clip
	r.FillRule = fillRule
	for _, chain := range poly.Chains {
		r.AddPolygon(chain)
	}
	return r.Sweep()
}
