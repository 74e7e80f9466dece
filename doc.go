/*
Package svgpath converts SVG path data into four absolute primitives: MoveTo, LineTo, CubeTo and Close.

Relative commands are made absolute, horizontal and vertical lines become lines, smooth Béziers get their reflected control points, quadratic Béziers are raised to cubic Béziers and elliptical arcs are approximated by cubic Béziers that each span at most DefaultMaxArcAngle degrees. The result can be drawn by anything that supports moves, lines, cubic Béziers and closes, see Emitter.

	p, err := svgpath.ParseSVGPath("M0 0L10 0A5 5 0 0 1 20 10z")
	if err != nil {
		panic(err)
	}
	for prim := range p.Flatten() {
		fmt.Println(prim)
	}
*/
package svgpath
