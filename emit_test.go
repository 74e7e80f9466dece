package svgpath

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

type recorder struct {
	calls []string
}

func (r *recorder) MoveTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("MoveTo(%g,%g)", x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("LineTo(%g,%g)", x, y))
}

func (r *recorder) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.calls = append(r.calls, fmt.Sprintf("CubeTo(%g,%g,%g,%g,%g,%g)", cpx1, cpy1, cpx2, cpy2, x, y))
}

func (r *recorder) Close() {
	r.calls = append(r.calls, "Close()")
}

func TestEmit(t *testing.T) {
	r := &recorder{}
	Emit(r, MustParseSVGPath("M1 2h3v4q-3 0 -3 -3zz").Flatten())
	test.T(t, strings.Join(r.calls, " "), "MoveTo(1,2) LineTo(4,2) LineTo(4,6) CubeTo(2,6,1,5,1,3) Close()")
}

func TestToSVG(t *testing.T) {
	var tts = []struct {
		orig string
		svg  string
	}{
		{"", ""},
		{"M0 0H10V10h-10z", "M0 0L10 0L10 10L0 10z"},
		{"M0 0Q3 3 6 0", "M0 0C2 2 4 2 6 0"},
		{"m.5.5", "M.5 .5"},
		{"M0 0Q1 1 2 0", "M0 0C.66666667 .66666667 1.3333333 .66666667 2 0"},
		{"M1 0A1 1 0 0 1 0 1z", "M1 0C1 .55228475 .55228475 1 0 1z"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			test.String(t, ToSVG(MustParseSVGPath(tt.orig).Flatten()), tt.svg)
		})
	}
}

func TestPrecision(t *testing.T) {
	defer func(prec int) { Precision = prec }(Precision)
	Precision = 3
	test.String(t, ToSVG(MustParseSVGPath("M0 0Q1 1 2 0").Flatten()), "M0 0C.667 .667 1.33 .667 2 0")
}

func TestGoWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewGoWriter(buf, "p")
	Emit(w, MustParseSVGPath("M0 0L1.5 2C1 2 3 4 5 6zM0.1 1e21").Flatten())
	test.Error(t, w.Err())
	test.String(t, buf.String(), `p.MoveTo(0, 0)
p.LineTo(1.5, 2)
p.CubeTo(1, 2, 3, 4, 5, 6)
p.Close()
p.MoveTo(0.1, 1e+21)
`)
}

type errorWriter struct {
	n int
}

func (w *errorWriter) Write(b []byte) (int, error) {
	w.n++
	return 0, errors.New("write error")
}

func TestWriterErrors(t *testing.T) {
	ew := &errorWriter{}
	sw := NewSVGWriter(ew)
	Emit(sw, MustParseSVGPath("M0 0L1 1z").Flatten())
	test.That(t, sw.Err() != nil)
	test.T(t, ew.n, 1)

	ew = &errorWriter{}
	gw := NewGoWriter(ew, "p")
	Emit(gw, MustParseSVGPath("M0 0L1 1z").Flatten())
	test.That(t, gw.Err() != nil)
	test.T(t, ew.n, 1)
}
