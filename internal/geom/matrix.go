package geom

import "math"

// Matrix is the affine transform `(x',y') = (a*x + c*y + e, b*x + d*y + f)`
//. Composition follows `(L.Mul(R)).Apply(p) == L.Apply(R.Apply(p))`,
// matching TransAffine.Multiply convention in
// internal/transform/affine.go.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a pure-translation matrix.
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scaling returns a pure-scale matrix.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a pure-rotation matrix (radians), grounded on
// TransAffine.Rotate's angle convention.
func Rotation(angle float64) Matrix {
	ca, sa := math.Cos(angle), math.Sin(angle)
	return Matrix{A: ca, B: sa, C: -sa, D: ca}
}

// Shear returns a pure-shear matrix.
func Shear(shx, shy float64) Matrix {
	return Matrix{A: 1, B: shy, C: shx, D: 1}
}

// Translate left-multiplies a translation onto m: the translation happens
// first from the user's point of view. Equivalent to
// m.Mul(Translation(tx,ty)).
func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Mul(Translation(tx, ty))
}

// Scale left-multiplies a scale onto m.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Scaling(sx, sy))
}

// Rotate left-multiplies a rotation onto m.
func (m Matrix) Rotate(angle float64) Matrix {
	return m.Mul(Rotation(angle))
}

// ShearBy left-multiplies a shear onto m.
func (m Matrix) ShearBy(shx, shy float64) Matrix {
	return m.Mul(Shear(shx, shy))
}

// Mul composes m (left) with n (right): (m.Mul(n)).Apply(p) == m.Apply(n.Apply(p)).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps a point through the matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyPoint is the Point-typed convenience form of Apply.
func (m Matrix) ApplyPoint(p Point) Point {
	x, y := m.Apply(float64(p.X), float64(p.Y))
	return Point{X: float32(x), Y: float32(y)}
}

// ApplyRect maps the four corners of r and returns their bounding box.
func (m Matrix) ApplyRect(r Rect) Rect {
	xs := [4]float64{}
	ys := [4]float64{}
	corners := [4][2]float64{
		{float64(r.X), float64(r.Y)},
		{float64(r.X + r.W), float64(r.Y)},
		{float64(r.X + r.W), float64(r.Y + r.H)},
		{float64(r.X), float64(r.Y + r.H)},
	}
	for i, c := range corners {
		xs[i], ys[i] = m.Apply(c[0], c[1])
	}
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	return Rect{
		X: float32(minX), Y: float32(minY),
		W: float32(maxX - minX), H: float32(maxY - minY),
	}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invertible reports whether the matrix has a non-zero determinant.
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Invert returns the inverse matrix and true, or the identity and false if
// the matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity(), false
	}
	inv := 1.0 / det
	a := m.D * inv
	b := -m.B * inv
	c := -m.C * inv
	d := m.A * inv
	e := -(m.E*a + m.F*c)
	f := -(m.E*b + m.F*d)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, true
}

// IsIdentity reports whether the matrix is the identity within Epsilon.
func (m Matrix) IsIdentity(eps float64) bool {
	return approxEq(m.A, 1, eps) && approxEq(m.B, 0, eps) &&
		approxEq(m.C, 0, eps) && approxEq(m.D, 1, eps) &&
		approxEq(m.E, 0, eps) && approxEq(m.F, 0, eps)
}

func approxEq(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
