package pathstore

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/geom"
)

// Dash mirrors Dash value: an offset plus a cycle of alternating
// on/off lengths. An empty Array disables dashing.
type Dash struct {
	Offset float64
	Array  []float64
}

// cycle returns the canonical (possibly doubled) dash array and its sum,
// resolving the Open Question in an odd-length array is doubled
// and the doubled array becomes the canonical cycle buffer used both for
// iteration and for the offset-phase computation.
func (d Dash) cycle() ([]float64, float64) {
	arr := d.Array
	if len(arr)%2 != 0 {
		arr = append(append([]float64(nil), arr...), arr...)
	}
	sum := 0.0
	for _, v := range arr {
		sum += v
	}
	return arr, sum
}

// Valid reports whether the dash pattern actually dashes anything: an
// empty array, or one whose lengths sum to zero or are all non-positive,
// is treated as "disabled".
func (d Dash) Valid() bool {
	if len(d.Array) == 0 {
		return false
	}
	_, sum := d.cycle()
	return sum > 0
}

// CloneDashed returns a new path with the flattened path's segments
// dashed according to d. Built on top of TraverseDashed, the callback-form
// operation; this just collects the callback's commands into a new Path.
func (p *Path) CloneDashed(d Dash) *Path {
	if !d.Valid() {
		return p.CloneFlatten()
	}
	out := New()
	p.TraverseDashed(d.Offset, d.Array, func(cmd basics.PathCommand, pts []geom.Point) {
		switch cmd {
		case basics.MoveTo:
			out.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		case basics.LineTo:
			out.LineTo(float64(pts[0].X), float64(pts[0].Y))
		case basics.Close:
			out.Close()
		}
	})
	return out
}

// TraverseDashed walks the flattened path's segments dashed according to
// offset and dashes, invoking fn once per MoveTo/LineTo/Close emitted by
// the dash cycle, without building an intermediate Path. An invalid dash
// array (Dash{Array: dashes}.Valid() == false) traverses the plain
// flattened path instead, matching plutovg's "disabled" dashing fallback.
// Grounded on the internal/vcgen/dash.go cycle/phase state machine.
func (p *Path) TraverseDashed(offset float64, dashes []float64, fn func(cmd basics.PathCommand, pts []geom.Point)) {
	d := Dash{Offset: offset, Array: dashes}
	if !d.Valid() {
		p.TraverseFlatten(func(cmd basics.PathCommand, x, y float64) {
			switch cmd {
			case basics.MoveTo:
				fn(basics.MoveTo, []geom.Point{{X: float32(x), Y: float32(y)}})
			case basics.LineTo:
				fn(basics.LineTo, []geom.Point{{X: float32(x), Y: float32(y)}})
			case basics.Close:
				fn(basics.Close, []geom.Point{{X: float32(x), Y: float32(y)}})
			}
		})
		return
	}
	arr, sum := d.cycle()
	phaseIdx, phaseRemain := dashPhaseAt(arr, sum, d.Offset)

	poly := p.Polylines()
	for ci, chain := range poly.Chains {
		if len(chain) < 2 {
			continue
		}
		idx := phaseIdx
		remain := phaseRemain
		on := idx%2 == 0
		started := false
		emitMove := func(x, y float32) {
			fn(basics.MoveTo, []geom.Point{{X: x, Y: y}})
			started = true
		}
		emitLine := func(x, y float32) {
			if !started {
				fn(basics.MoveTo, []geom.Point{{X: x, Y: y}})
				started = true
				return
			}
			fn(basics.LineTo, []geom.Point{{X: x, Y: y}})
		}
		if on {
			emitMove(chain[0].X, chain[0].Y)
		}
		for i := 0; i+1 < len(chain); i++ {
			x0, y0 := float64(chain[i].X), float64(chain[i].Y)
			x1, y1 := float64(chain[i+1].X), float64(chain[i+1].Y)
			segLen := math.Hypot(x1-x0, y1-y0)
			pos := 0.0
			for pos < segLen {
				step := remain
				if pos+step > segLen {
					step = segLen - pos
				}
				pos += step
				remain -= step
				t := pos / segLen
				if segLen == 0 {
					t = 1
				}
				px := x0 + (x1-x0)*t
				py := y0 + (y1-y0)*t
				if on {
					emitLine(float32(px), float32(py))
				}
				if remain <= 1e-12 {
					idx = (idx + 1) % len(arr)
					remain = arr[idx]
					on = !on
					if on {
						started = false
						emitMove(float32(px), float32(py))
					}
				}
			}
		}
		if poly.Closed[ci] {
			last := chain[len(chain)-1]
			fn(basics.Close, []geom.Point{{X: last.X, Y: last.Y}})
		}
	}
}

// dashPhaseAt pre-advances the dash cycle by offset mod sum, so the first
// emitted segment already reflects the requested phase shift.
func dashPhaseAt(arr []float64, sum, offset float64) (idx int, remain float64) {
	if sum <= 0 {
		return 0, arr[0]
	}
	off := math.Mod(offset, sum)
	if off < 0 {
		off += sum
	}
	idx = 0
	remain = arr[0]
	for off > 0 {
		if off < remain {
			remain -= off
			off = 0
		} else {
			off -= remain
			idx = (idx + 1) % len(arr)
			remain = arr[idx]
		}
	}
	return idx, remain
}
