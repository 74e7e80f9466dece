package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Epsilon is the tolerance used by Equal.
const Epsilon = 1e-10

// Precision is the number of significant digits used when writing SVG path data.
var Precision = 8

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// gofloat formats f as a Go expression that evaluates to exactly f.
func gofloat(f float64) string {
	if math.IsNaN(f) {
		return "math.NaN()"
	} else if math.IsInf(f, 1) {
		return "math.Inf(1)"
	} else if math.IsInf(f, -1) {
		return "math.Inf(-1)"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
