package vg

import (
	"github.com/agg-go/vgcanvas/internal/basics"
	"github.com/agg-go/vgcanvas/internal/pathstore"
	"github.com/agg-go/vgcanvas/internal/stroker"
)

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle is a canvas's current stroke parameters.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStrokeStyle matches the reference agg2d.go construction defaults.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
}

// Dash is an offset plus an alternating on/off length cycle
//. A nil or empty Array disables dashing.
type Dash struct {
	Offset float64
	Array  []float64
}

func (d StrokeStyle) internalCap() basics.LineCap {
	switch d.Cap {
	case CapRound:
		return basics.CapRound
	case CapSquare:
		return basics.CapSquare
	default:
		return basics.CapButt
	}
}

func (d StrokeStyle) internalJoin() basics.LineJoin {
	switch d.Join {
	case JoinRound:
		return basics.JoinRound
	case JoinBevel:
		return basics.JoinBevel
	default:
		return basics.JoinMiter
	}
}

func (d Dash) internal() *pathstore.Dash {
	if len(d.Array) == 0 {
		return nil
	}
	return &pathstore.Dash{Offset: d.Offset, Array: append([]float64(nil), d.Array...)}
}

// strokeOutline runs the stroker, returning the filled outline path for
// path under style+dash.
func strokeOutline(path *pathstore.Path, style StrokeStyle, dash Dash) *pathstore.Path {
	return stroker.Generate(path, stroker.Style{
		Width:      style.Width,
		Cap:        style.internalCap(),
		Join:       style.internalJoin(),
		MiterLimit: style.MiterLimit,
		Dash:       dash.internal(),
	})
}
