// Package basics provides the small shared vocabulary used across the
// rendering core: path command tags, fill rules, compositing operators and
// a couple of numeric epsilons. Based on
// internal/basics/path.go (command enum) and internal/basics/constants.go.
package basics

import (
	"math"

	"golang.org/x/exp/constraints"
)

// PathCommand tags one element of a path's command stream.
type PathCommand uint8

const (
	MoveTo PathCommand = iota
	LineTo
	CubicTo
	Close
)

// NumPoints returns how many explicit points follow a command header.
func (c PathCommand) NumPoints() int {
	switch c {
	case MoveTo, LineTo, Close:
		return 1
	case CubicTo:
		return 3
	}
	return 0
}

// FillRule selects the winding test the rasterizer applies.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// Operator is the Porter-Duff compositing operator.
type Operator uint8

const (
	OpSrc Operator = iota
	OpSrcOver
	OpDstIn
	OpDstOut
)

// SpreadMethod controls how a gradient parameter outside [0,1] is mapped
// back into range.
type SpreadMethod uint8

const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// TextureType selects plain (clamped, transparent outside) vs tiled
// (wrapped) texture sampling.
type TextureType uint8

const (
	TexturePlain TextureType = iota
	TextureTiled
)

// LineCap is the stroke end-cap style.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the stroke corner-join style.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Epsilon is a general-purpose float comparison tolerance. The matrix
// invert/round-trip tests pass the same 1e-9 as a literal.
const Epsilon = 1e-9

// VertexDistEpsilon mirrors math_stroke.go threshold below
// which two consecutive vertices are considered coincident.
const VertexDistEpsilon = 1e-14

// Clamp01 clamps a float64 to [0,1], matching numeric-input
// clamping policy (colors, gradient stop offsets).
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Min returns the lesser of a and b, shared by the rasterizer's sorted-cell
// pass and the span-buffer intersection algebra.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(hi, v))
}

// Div255 performs the fast 8-bit divide-by-255 used throughout the
// compositor and paint evaluators: (x + (x>>8) + 0x80) >> 8.
func Div255(x uint32) uint8 {
	x = x + (x >> 8) + 0x80
	return uint8(x >> 8)
}
