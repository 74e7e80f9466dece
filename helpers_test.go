package svgpath

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

const tolerance = 1e-9

func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 2.0*t + t*t)
	p1 = p1.Mul(2.0*t - 2.0*t*t)
	p2 = p2.Mul(t * t)
	return p0.Add(p1).Add(p2)
}

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func nearPoint(p, q Point, eps float64) bool {
	return near(p.X, q.X, eps) && near(p.Y, q.Y, eps)
}

// nearPrimitive returns true if a and b are the same kind of primitive with coordinates within eps.
func nearPrimitive(a, b Primitive, eps float64) bool {
	switch pa := a.(type) {
	case MoveTo:
		pb, ok := b.(MoveTo)
		return ok && pa.Rel == pb.Rel && near(pa.X, pb.X, eps) && near(pa.Y, pb.Y, eps)
	case LineTo:
		pb, ok := b.(LineTo)
		return ok && pa.Rel == pb.Rel && near(pa.X, pb.X, eps) && near(pa.Y, pb.Y, eps)
	case CubeTo:
		pb, ok := b.(CubeTo)
		return ok && pa.Rel == pb.Rel &&
			near(pa.CPX1, pb.CPX1, eps) && near(pa.CPY1, pb.CPY1, eps) &&
			near(pa.CPX2, pb.CPX2, eps) && near(pa.CPY2, pb.CPY2, eps) &&
			near(pa.X, pb.X, eps) && near(pa.Y, pb.Y, eps)
	case Close:
		_, ok := b.(Close)
		return ok
	}
	return false
}

func testPrimitives(t *testing.T, got, want []Primitive) {
	t.Helper()
	if len(got) != len(want) {
		test.Fail(t, fmt.Sprintf("%v != %v", got, want))
		return
	}
	for i := range got {
		if !nearPrimitive(got[i], want[i], tolerance) {
			test.Fail(t, fmt.Sprintf("primitive %d: %v != %v", i, got[i], want[i]))
		}
	}
}

func randomPoint(r *rand.Rand) Point {
	return Point{r.NormFloat64() * 10.0, r.NormFloat64() * 10.0}
}

func RandomPath(r *rand.Rand, n int) Path {
	p := Path{}
	for i := 0; i < n; i++ {
		a, b, c := randomPoint(r), randomPoint(r), randomPoint(r)
		rel := r.IntN(2) == 0
		switch r.IntN(10) {
		case 0:
			p = append(p, MoveTo{X: a.X, Y: a.Y, Rel: rel})
		case 1:
			p = append(p, LineTo{X: a.X, Y: a.Y, Rel: rel})
		case 2:
			p = append(p, HLineTo{X: a.X, Rel: rel})
		case 3:
			p = append(p, VLineTo{Y: a.Y, Rel: rel})
		case 4:
			p = append(p, CubeTo{CPX1: a.X, CPY1: a.Y, CPX2: b.X, CPY2: b.Y, X: c.X, Y: c.Y, Rel: rel})
		case 5:
			p = append(p, SmoothCubeTo{CPX2: b.X, CPY2: b.Y, X: c.X, Y: c.Y, Rel: rel})
		case 6:
			p = append(p, QuadTo{CPX: a.X, CPY: a.Y, X: c.X, Y: c.Y, Rel: rel})
		case 7:
			p = append(p, SmoothQuadTo{X: c.X, Y: c.Y, Rel: rel})
		case 8:
			p = append(p, ArcTo{RX: a.X, RY: a.Y, Rot: b.X * 10.0, Large: r.IntN(2) == 0, Sweep: r.IntN(2) == 0, X: c.X, Y: c.Y, Rel: rel})
		case 9:
			p = append(p, Close{})
		}
	}
	return p
}

func primitiveEnd(prim Primitive, start Point) Point {
	switch p := prim.(type) {
	case MoveTo:
		return Point{p.X, p.Y}
	case LineTo:
		return Point{p.X, p.Y}
	case CubeTo:
		return Point{p.X, p.Y}
	}
	return start
}
