package pathstore

import (
	"math"

	"github.com/agg-go/vgcanvas/internal/config"
)

// AddRect appends a rectangle as five lines + close.
func (p *Path) AddRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.LineTo(x, y)
	p.Close()
}

// AddEllipse appends a full ellipse built from four kappa-cubics, clockwise
// from the rightmost point, closed back to its start.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	k := config.Kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ry*k, cx+rx*k, cy+ry, cx, cy+ry)
	p.CubicTo(cx-rx*k, cy+ry, cx-rx, cy+ry*k, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ry*k, cx-rx*k, cy-ry, cx, cy-ry)
	p.CubicTo(cx+rx*k, cy-ry, cx+rx, cy-ry*k, cx+rx, cy)
	p.Close()
}

// AddCircle appends a full circle via AddEllipse.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

// AddRoundRect appends a rectangle with circularly rounded corners of
// radius (rx,ry), built from kappa-cubics at each corner.
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx <= 0 || ry <= 0 {
		p.AddRect(x, y, w, h)
		return
	}
	k := config.Kappa
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+rx*k, y, x+w, y+ry-ry*k, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+ry*k, x+w-rx+rx*k, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-rx*k, y+h, x, y+h-ry+ry*k, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-ry*k, x+rx-rx*k, y, x+rx, y)
	p.Close()
}

// AddArc emits ceil(|a1-a0|/(pi/2)) cubic segments approximating a circular
// arc of radius r around (cx,cy), from angle a0 to a1, in the direction
// given by ccw. The first command is MoveTo if the path is
// empty, else LineTo to the arc's start point. A degenerate arc (a0==a1)
// emits no cubic: only that MoveTo/LineTo to the start point, which is
// also its end point.
func (p *Path) AddArc(cx, cy, r, a0, a1 float64, ccw bool) {
	delta := a1 - a0
	if ccw {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}
	if delta == 0 {
		sx, sy := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
		p.moveOrLineTo(sx, sy)
		return
	}

	segAngle := math.Pi / 2
	numSegs := int(math.Ceil(math.Abs(delta) / segAngle))
	if numSegs < 1 {
		numSegs = 1
	}
	step := delta / float64(numSegs)

	sx, sy := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	p.moveOrLineTo(sx, sy)

	kappaFactor := (step / segAngle) * config.Kappa
	a := a0
	for i := 0; i < numSegs; i++ {
		na := a + step
		x1, y1 := cx+r*math.Cos(a), cy+r*math.Sin(a)
		x4, y4 := cx+r*math.Cos(na), cy+r*math.Sin(na)
		tx1, ty1 := -math.Sin(a), math.Cos(a)
		tx2, ty2 := -math.Sin(na), math.Cos(na)
		mag := r * kappaFactor
		x2 := x1 + tx1*mag
		y2 := y1 + ty1*mag
		x3 := x4 - tx2*mag
		y3 := y4 - ty2*mag
		p.CubicTo(x2, y2, x3, y3, x4, y4)
		a = na
	}
}

func (p *Path) moveOrLineTo(x, y float64) {
	if p.Empty() {
		p.MoveTo(x, y)
	} else {
		p.LineTo(x, y)
	}
}

// ArcTo implements the SVG elliptical-arc command semantics: rotate by phi,
// scale to a unit circle, split into 1-4 cubic segments per 90 degrees,
// then map back through the ellipse's own transform.
func (p *Path) ArcTo(rx, ry, phiDeg float64, largeArc, sweep bool, x, y float64) {
	x0, y0 := float64(p.curX), float64(p.curY)
	if !p.hasCurrent {
		x0, y0 = 0, 0
	}
	if rx == 0 || ry == 0 {
		p.LineTo(x, y)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	phi := phiDeg * math.Pi / 180

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx2, dy2 := (x0-x)/2, (y0-y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = sign * math.Sqrt(num/den)
	}
	cxp := co * (rx * y1p / ry)
	cyp := co * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clampUnit(dot / lenProd))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	numSegs := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if numSegs < 1 {
		numSegs = 1
	}
	step := dTheta / float64(numSegs)
	kappaFactor := (step / (math.Pi / 2)) * config.Kappa

	t := theta1
	for i := 0; i < numSegs; i++ {
		nt := t + step
		// Unit-circle tangent/point, then map through rotate+scale.
		ux1, uy1 := math.Cos(t), math.Sin(t)
		ux4, uy4 := math.Cos(nt), math.Sin(nt)
		tx1, ty1 := -math.Sin(t), math.Cos(t)
		tx2, ty2 := -math.Sin(nt), math.Cos(nt)

		mapPt := func(ux, uy float64) (float64, float64) {
			ex := rx * ux
			ey := ry * uy
			return cosPhi*ex - sinPhi*ey + cx, sinPhi*ex + cosPhi*ey + cy
		}
		mapVec := func(vx, vy float64) (float64, float64) {
			ex := rx * vx
			ey := ry * vy
			return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
		}

		x1, y1 := mapPt(ux1, uy1)
		x4, y4 := mapPt(ux4, uy4)
		dtx1, dty1 := mapVec(tx1, ty1)
		dtx2, dty2 := mapVec(tx2, ty2)

		x2 := x1 + dtx1*kappaFactor
		y2 := y1 + dty1*kappaFactor
		x3 := x4 - dtx2*kappaFactor
		y3 := y4 - dty2*kappaFactor

		p.CubicTo(x2, y2, x3, y3, x4, y4)
		t = nt
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
