package svgpath

import (
	"fmt"
	"iter"
)

// Flattener converts path commands one at a time into primitives. It keeps the current point, the subpath start and the control points needed to resolve smooth Béziers. The zero value is not usable, use NewFlattener.
type Flattener struct {
	opts   options
	pos    Point   // current point
	start  Point   // start of the current subpath
	quadCP Point   // control point of the last SmoothQuadTo
	prev   Command // previous input command in absolute form
	moved  bool    // a subpath has been started
	buf    []Primitive
}

// NewFlattener returns a Flattener at the origin.
func NewFlattener(opts ...Option) *Flattener {
	return &Flattener{
		opts: newOptions(opts),
		buf:  make([]Primitive, 0, 4),
	}
}

// Pos returns the current point.
func (f *Flattener) Pos() Point {
	return f.pos
}

// Start returns the start of the current subpath.
func (f *Flattener) Start() Point {
	return f.start
}

// Push converts cmd into zero or more absolute primitives. Relative commands are resolved against the current point, and a first command other than MoveTo is preceded by a MoveTo to the current point. The returned slice is only valid until the next call to Push. It panics with an error wrapping ErrUnsupportedCommand if cmd is nil.
func (f *Flattener) Push(cmd Command) []Primitive {
	cmd = toAbsolute(cmd, f.pos)
	f.buf = f.buf[:0]
	if _, ok := cmd.(MoveTo); !ok && !f.moved && cmd != nil {
		// drawing without a preceding move starts a subpath at the current point
		f.buf = append(f.buf, MoveTo{X: f.pos.X, Y: f.pos.Y})
	}
	f.moved = true
	switch c := cmd.(type) {
	case MoveTo:
		f.buf = append(f.buf, c)
	case LineTo:
		f.buf = append(f.buf, c)
	case HLineTo:
		f.buf = append(f.buf, LineTo{X: c.X, Y: f.pos.Y})
	case VLineTo:
		f.buf = append(f.buf, LineTo{X: f.pos.X, Y: c.Y})
	case CubeTo:
		f.buf = append(f.buf, c)
	case SmoothCubeTo:
		cp1 := f.pos
		switch p := f.prev.(type) {
		case CubeTo:
			cp1 = smoothControl(Point{p.CPX2, p.CPY2}, f.pos)
		case SmoothCubeTo:
			cp1 = smoothControl(Point{p.CPX2, p.CPY2}, f.pos)
		}
		f.buf = append(f.buf, CubeTo{
			CPX1: cp1.X, CPY1: cp1.Y,
			CPX2: c.CPX2, CPY2: c.CPY2,
			X: c.X, Y: c.Y,
		})
	case QuadTo:
		end := Point{c.X, c.Y}
		cp1, cp2 := quadraticToCubicBezier(f.pos, Point{c.CPX, c.CPY}, end)
		f.buf = append(f.buf, CubeTo{
			CPX1: cp1.X, CPY1: cp1.Y,
			CPX2: cp2.X, CPY2: cp2.Y,
			X: end.X, Y: end.Y,
		})
	case SmoothQuadTo:
		cp := f.pos
		switch p := f.prev.(type) {
		case QuadTo:
			cp = smoothControl(Point{p.CPX, p.CPY}, f.pos)
		case SmoothQuadTo:
			cp = smoothControl(f.quadCP, f.pos)
		}
		f.quadCP = cp

		end := Point{c.X, c.Y}
		cp1, cp2 := quadraticToCubicBezier(f.pos, cp, end)
		f.buf = append(f.buf, CubeTo{
			CPX1: cp1.X, CPY1: cp1.Y,
			CPX2: cp2.X, CPY2: cp2.Y,
			X: end.X, Y: end.Y,
		})
	case ArcTo:
		f.buf = appendArc(f.buf, f.pos, c, f.opts.maxArcAngle)
	case Close:
		if _, ok := f.prev.(Close); !ok {
			f.buf = append(f.buf, c)
		}
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedCommand, cmd))
	}

	if 0 < len(f.buf) {
		switch p := f.buf[len(f.buf)-1].(type) {
		case MoveTo:
			f.pos = Point{p.X, p.Y}
			f.start = f.pos
		case LineTo:
			f.pos = Point{p.X, p.Y}
		case CubeTo:
			f.pos = Point{p.X, p.Y}
		case Close:
			f.pos = f.start
		}
	}
	f.prev = cmd
	return f.buf
}

////////////////////////////////////////////////////////////////

// Scanner iterates over the primitives of a path, one Scan at a time. It cannot be restarted.
type Scanner struct {
	f   *Flattener
	p   Path
	i   int
	out []Primitive
	j   int
	cur Primitive
}

// Scanner converts p to absolute coordinates in place and returns a scanner over its primitives.
func (p Path) Scanner(opts ...Option) *Scanner {
	p.ToAbsolute()
	return &Scanner{
		f: NewFlattener(opts...),
		p: p,
	}
}

// Scan advances to the next primitive and returns false when the path is exhausted.
func (s *Scanner) Scan() bool {
	for s.j == len(s.out) {
		if len(s.p) <= s.i {
			s.cur = nil
			return false
		}
		s.out = s.f.Push(s.p[s.i])
		s.i++
		s.j = 0
	}
	s.cur = s.out[s.j]
	s.j++
	return true
}

func (s *Scanner) stop() {
	s.i, s.out, s.j, s.cur = len(s.p), nil, 0, nil
}

// Primitive returns the current primitive. It is nil before the first call to Scan and after Scan returns false.
func (s *Scanner) Primitive() Primitive {
	return s.cur
}

// Flatten converts p to absolute coordinates in place and returns the sequence of its primitives. The sequence is computed lazily and can be ranged over only once, ranging again yields nothing.
func (p Path) Flatten(opts ...Option) iter.Seq[Primitive] {
	s := p.Scanner(opts...)
	return func(yield func(Primitive) bool) {
		for s.Scan() {
			if !yield(s.Primitive()) {
				s.stop()
				return
			}
		}
	}
}

// Primitives converts p to absolute coordinates in place and returns all of its primitives.
func (p Path) Primitives(opts ...Option) []Primitive {
	prims := make([]Primitive, 0, len(p))
	for prim := range p.Flatten(opts...) {
		prims = append(prims, prim)
	}
	return prims
}
