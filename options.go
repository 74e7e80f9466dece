package svgpath

import "math"

// DefaultMaxArcAngle is the largest angle in degrees that a single cubic Bézier spans when approximating an elliptical arc. A span of 120 degrees deviates at most 0.00155 times the radius from the true ellipse, measured in the frame where the ellipse is a unit circle.
const DefaultMaxArcAngle = 120.0

// Option configures a Flattener.
//
// Example:
//
//	// Tessellate arcs with quarter-turn spans
//	f := svgpath.NewFlattener(svgpath.WithMaxArcAngle(90))
type Option func(*options)

type options struct {
	maxArcAngle float64 // in radians
}

func defaultOptions() options {
	return options{
		maxArcAngle: DefaultMaxArcAngle * math.Pi / 180.0,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxArcAngle sets the largest angle in degrees that one cubic Bézier may span when tessellating arcs. Angles outside (0,180] are ignored and the default is kept.
func WithMaxArcAngle(deg float64) Option {
	return func(o *options) {
		if 0.0 < deg && deg <= 180.0 {
			o.maxArcAngle = deg * math.Pi / 180.0
		}
	}
}
