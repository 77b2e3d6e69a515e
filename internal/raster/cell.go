// Package raster implements the scanline analytical-coverage rasterizer:
// it walks a flattened, clipped polygon and produces a sorted
// span buffer with 8-bit coverage. Based on
// internal/rasterizer/cells_aa_simple.go and scanline_aa.go (the AGG
// cell-based area/cover accumulation algorithm), adapted to a single
// concrete (non-generic, non-styled) cell type and a growable slice instead
// of the reference fixed-size cell block pool: Go's append already gives
// amortized O(1) growth, so the block-pool indirection buys nothing here.
package raster

import "math"

// cell is one (x,y) subpixel-column accumulator: area is the signed
// double-area of the polygon-edge/cell-box intersection, cover is the
// signed vertical subpixel extent crossed within the cell. Mirrors the reference CellAA.
type cell struct {
	x, y  int32
	cover int32
	area  int32
}

func (c *cell) clear() {
	c.x, c.y = math.MaxInt32, math.MaxInt32
	c.cover, c.area = 0, 0
}
