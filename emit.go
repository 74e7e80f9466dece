package svgpath

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Emitter receives the primitives of a path, typically a drawing context or a path builder.
type Emitter interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Close()
}

// Emit sends every primitive of seq to e.
func Emit(e Emitter, seq iter.Seq[Primitive]) {
	for prim := range seq {
		switch p := prim.(type) {
		case MoveTo:
			e.MoveTo(p.X, p.Y)
		case LineTo:
			e.LineTo(p.X, p.Y)
		case CubeTo:
			e.CubeTo(p.CPX1, p.CPY1, p.CPX2, p.CPY2, p.X, p.Y)
		case Close:
			e.Close()
		}
	}
}

////////////////////////////////////////////////////////////////

// SVGWriter writes primitives as SVG path data, formatting numbers with Precision significant digits.
type SVGWriter struct {
	w   io.Writer
	err error
}

// NewSVGWriter returns an SVGWriter that writes to w.
func NewSVGWriter(w io.Writer) *SVGWriter {
	return &SVGWriter{w: w}
}

func (w *SVGWriter) write(cmd Command) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, cmd.String())
	}
}

func (w *SVGWriter) MoveTo(x, y float64) {
	w.write(MoveTo{X: x, Y: y})
}

func (w *SVGWriter) LineTo(x, y float64) {
	w.write(LineTo{X: x, Y: y})
}

func (w *SVGWriter) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	w.write(CubeTo{CPX1: cpx1, CPY1: cpy1, CPX2: cpx2, CPY2: cpy2, X: x, Y: y})
}

func (w *SVGWriter) Close() {
	w.write(Close{})
}

// Err returns the first error encountered while writing.
func (w *SVGWriter) Err() error {
	return w.err
}

// ToSVG returns the primitives of seq as SVG path data.
func ToSVG(seq iter.Seq[Primitive]) string {
	sb := strings.Builder{}
	Emit(NewSVGWriter(&sb), seq)
	return sb.String()
}

////////////////////////////////////////////////////////////////

// GoWriter writes primitives as Go statements that call the methods of the Emitter named by its identifier, such as
//
//	p.MoveTo(0, 0)
//	p.CubeTo(1, 2, 3, 4, 5, 6)
//	p.Close()
//
// Numbers are written so that they evaluate to exactly the same float64.
type GoWriter struct {
	w     io.Writer
	ident string
	err   error
}

// NewGoWriter returns a GoWriter that writes calls on ident to w.
func NewGoWriter(w io.Writer, ident string) *GoWriter {
	return &GoWriter{
		w:     w,
		ident: ident,
	}
}

func (w *GoWriter) call(method string, args ...float64) {
	if w.err != nil {
		return
	}
	sb := strings.Builder{}
	for i, arg := range args {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(gofloat(arg))
	}
	_, w.err = fmt.Fprintf(w.w, "%s.%s(%s)\n", w.ident, method, sb.String())
}

func (w *GoWriter) MoveTo(x, y float64) {
	w.call("MoveTo", x, y)
}

func (w *GoWriter) LineTo(x, y float64) {
	w.call("LineTo", x, y)
}

func (w *GoWriter) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	w.call("CubeTo", cpx1, cpy1, cpx2, cpy2, x, y)
}

func (w *GoWriter) Close() {
	w.call("Close")
}

// Err returns the first error encountered while writing.
func (w *GoWriter) Err() error {
	return w.err
}
