// Package config holds the compile-time tunables shared across the
// rendering core. The teacher (AGG) scatters these as magic numbers at each
// call site (e.g. agg2d.go's NewRasterizerScanlineAA(1024)); we collect them
// here so every package names where its constant comes from.
package config

const (
	// MaxFlattenDepth bounds the recursive-bisection stack used to flatten
	// cubic Béziers into line segments.
	MaxFlattenDepth = 32

	// FlattenThreshold is the flatness tolerance factor applied to the
	// chord length of a cubic segment.
	FlattenThreshold = 0.25

	// GradientLUTSize is the number of premultiplied entries precomputed
	// per gradient draw.
	GradientLUTSize = 256

	// MaxDashes mirrors vcgen_dash's MaxDashes cap. The dasher in
	// internal/pathstore does not read it: dash arrays are not truncated.
	MaxDashes = 32

	// RasterCellBlockSize mirrors agg2d.go's NewRasterizerScanlineAA(1024)
	// cell-block size. internal/raster does not read it: its cell
	// accumulator is a plain slice grown by append.
	RasterCellBlockSize = 1024

	// Kappa is the cubic-Bézier control-point distance that best
	// approximates a 90-degree circular arc: 4*(sqrt(2)-1)/3.
	Kappa = 0.55228474983079339840
)
