package vg

import "github.com/agg-go/vgcanvas/internal/geom"

// Matrix is a 2D affine transform, (x',y') = (a*x + c*y + e, b*x + d*y + f).
type Matrix struct {
	A, B, C, D, E, F float64
}

func Identity() Matrix                { return fromGeom(geom.Identity()) }
func Translation(tx, ty float64) Matrix { return fromGeom(geom.Translation(tx, ty)) }
func Scaling(sx, sy float64) Matrix     { return fromGeom(geom.Scaling(sx, sy)) }
func Rotation(angle float64) Matrix     { return fromGeom(geom.Rotation(angle)) }
func Shearing(shx, shy float64) Matrix  { return fromGeom(geom.Shear(shx, shy)) }

func fromGeom(m geom.Matrix) Matrix {
	return Matrix{m.A, m.B, m.C, m.D, m.E, m.F}
}

func (m Matrix) toGeom() *geom.Matrix {
	return &geom.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func (m Matrix) Translate(tx, ty float64) Matrix { return fromGeom(m.toGeom().Translate(tx, ty)) }
func (m Matrix) Scale(sx, sy float64) Matrix     { return fromGeom(m.toGeom().Scale(sx, sy)) }
func (m Matrix) Rotate(angle float64) Matrix     { return fromGeom(m.toGeom().Rotate(angle)) }
func (m Matrix) ShearBy(shx, shy float64) Matrix { return fromGeom(m.toGeom().ShearBy(shx, shy)) }

// Mul composes m∘n: (m.Mul(n)).Apply(p) == m.Apply(n.Apply(p)).
func (m Matrix) Mul(n Matrix) Matrix {
	return fromGeom(m.toGeom().Mul(*n.toGeom()))
}

func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.toGeom().Apply(x, y)
}

// Invert returns m's inverse and whether m was invertible.
func (m Matrix) Invert() (Matrix, bool) {
	inv, ok := m.toGeom().Invert()
	return fromGeom(inv), ok
}
