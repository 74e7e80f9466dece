package svgpath

import "fmt"

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Reflect mirrors P through Q, ie. it returns 2Q-P.
func (p Point) Reflect(q Point) Point {
	return Point{2.0*q.X - p.X, 2.0*q.Y - p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Scale(2,2).Translate(20,0) will first translate 20 points horizontally and then scale.
type Matrix [2][3]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

func (m Matrix) Scale(x, y float64) Matrix {
	if Equal(x, 0.0) && Equal(y, 0.0) {
		panic("cannot scale affine transformation matrix to zero in x and y")
	}
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}
