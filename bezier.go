package svgpath

// quadraticToCubicBezier raises the quadratic Bézier p0,p1,p2 to the cubic Bézier p0,q1,q2,p2 that traces the same curve.
func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	q1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3.0))
	q2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3.0))
	return q1, q2
}

// smoothControl returns the implicit control point of a smooth Bézier starting at pos, given the trailing control point cp of the previous Bézier.
func smoothControl(cp, pos Point) Point {
	return cp.Reflect(pos)
}
