package svgpath

import (
	"log/slog"
	"math"
)

// ellipseToCenter converts the endpoint parameterization of an elliptical arc to its center parameterization. It returns the center, the radii scaled up when they are too small to span from start to end, the start angle theta0 and the signed sweep angle delta, all angles in radians. Rotation phi is in radians. See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func ellipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale radii up when the ellipse cannot reach from start to end
	lambda := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	// U and V are the start and end points on the unit circle
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta0 := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta0, delta
}

// ellipsePos returns the point on the ellipse with radii rx and ry, rotation phi and center (cx,cy) at angle theta.
func ellipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDeriv returns the derivative of ellipsePos with respect to theta.
func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// arcSpans returns the number of equal spans of at most maxAngle needed for a sweep of delta.
func arcSpans(delta, maxAngle float64) int {
	ratio := math.Abs(delta) / maxAngle
	if math.Abs(ratio-math.Round(ratio)) < 1e-7 {
		// don't add a span for rounding errors, such as 240 degrees in 120 degree spans
		ratio = math.Round(ratio)
	}
	n := int(math.Ceil(ratio))
	if n < 1 {
		n = 1
	}
	return n
}

// appendArc appends to dst the cubic Béziers that approximate the arc from start, with each Bézier spanning at most maxAngle radians. Degenerate arcs, with a zero radius or coinciding endpoints, are appended as a single line.
func appendArc(dst []Primitive, start Point, arc ArcTo, maxAngle float64) []Primitive {
	end := Point{arc.X, arc.Y}
	if arc.RX == 0.0 || arc.RY == 0.0 || start == end {
		Logger().Debug("degenerate arc replaced by line", slog.Any("arc", arc), slog.Any("start", start))
		return append(dst, LineTo{X: end.X, Y: end.Y})
	}

	phi := arc.Rot * math.Pi / 180.0
	cx, cy, rx, ry, theta0, delta := ellipseToCenter(start.X, start.Y, arc.RX, arc.RY, phi, arc.Large, arc.Sweep, end.X, end.Y)
	if !isFinite(cx) || !isFinite(cy) || !isFinite(rx) || !isFinite(ry) || !isFinite(theta0) || !isFinite(delta) {
		Logger().Debug("degenerate arc replaced by line", slog.Any("arc", arc), slog.Any("start", start))
		return append(dst, LineTo{X: end.X, Y: end.Y})
	}

	n := arcSpans(delta, maxAngle)
	arm := 4.0 / 3.0 * math.Tan(delta/float64(n)/4.0)

	p0, t0 := start, theta0
	for i := 1; i <= n; i++ {
		t1 := theta0 + delta*float64(i)/float64(n)
		p3 := end
		if i < n {
			p3 = ellipsePos(rx, ry, phi, cx, cy, t1)
		}
		p1 := p0.Add(ellipseDeriv(rx, ry, phi, t0).Mul(arm))
		p2 := p3.Sub(ellipseDeriv(rx, ry, phi, t1).Mul(arm))
		dst = append(dst, CubeTo{
			CPX1: p1.X, CPY1: p1.Y,
			CPX2: p2.X, CPY2: p2.Y,
			X: p3.X, Y: p3.Y,
		})
		p0, t0 = p3, t1
	}
	return dst
}

// ArcToCubes returns the cubic Béziers, or a single line for degenerate arcs, that approximate the absolute arc starting at start. The arc's Rel flag is ignored.
func ArcToCubes(start Point, arc ArcTo, opts ...Option) []Primitive {
	o := newOptions(opts)
	return appendArc(nil, start, arc, o.maxArcAngle)
}
