package svgpath

import "strings"

// Command is a single path data instruction. It is implemented exactly by MoveTo, LineTo, HLineTo, VLineTo, CubeTo, SmoothCubeTo, QuadTo, SmoothQuadTo, ArcTo and Close. Commands with Rel set have coordinates relative to the current point.
type Command interface {
	isCommand()
	String() string
}

// Primitive is a canonical command, implemented exactly by MoveTo, LineTo, CubeTo and Close. Primitives produced by a Flattener are always absolute.
type Primitive interface {
	Command
	isPrimitive()
}

// MoveTo starts a new subpath at (X,Y).
type MoveTo struct {
	X, Y float64
	Rel  bool
}

// LineTo draws a straight line to (X,Y).
type LineTo struct {
	X, Y float64
	Rel  bool
}

// HLineTo draws a horizontal line to X.
type HLineTo struct {
	X   float64
	Rel bool
}

// VLineTo draws a vertical line to Y.
type VLineTo struct {
	Y   float64
	Rel bool
}

// CubeTo draws a cubic Bézier with control points (CPX1,CPY1) and (CPX2,CPY2) to (X,Y).
type CubeTo struct {
	CPX1, CPY1 float64
	CPX2, CPY2 float64
	X, Y       float64
	Rel        bool
}

// SmoothCubeTo draws a cubic Bézier whose first control point is the reflection of the previous cubic's second control point.
type SmoothCubeTo struct {
	CPX2, CPY2 float64
	X, Y       float64
	Rel        bool
}

// QuadTo draws a quadratic Bézier with control point (CPX,CPY) to (X,Y).
type QuadTo struct {
	CPX, CPY float64
	X, Y     float64
	Rel      bool
}

// SmoothQuadTo draws a quadratic Bézier whose control point is the reflection of the previous quadratic's control point.
type SmoothQuadTo struct {
	X, Y float64
	Rel  bool
}

// ArcTo draws an elliptical arc with radii RX and RY to (X,Y). Rot is the rotation of the ellipse's x-axis in degrees, Large and Sweep select one of the four possible arcs.
type ArcTo struct {
	RX, RY       float64
	Rot          float64
	Large, Sweep bool
	X, Y         float64
	Rel          bool
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isCommand()       {}
func (LineTo) isCommand()       {}
func (HLineTo) isCommand()      {}
func (VLineTo) isCommand()      {}
func (CubeTo) isCommand()       {}
func (SmoothCubeTo) isCommand() {}
func (QuadTo) isCommand()       {}
func (SmoothQuadTo) isCommand() {}
func (ArcTo) isCommand()        {}
func (Close) isCommand()        {}

func (MoveTo) isPrimitive() {}
func (LineTo) isPrimitive() {}
func (CubeTo) isPrimitive() {}
func (Close) isPrimitive()  {}

func letter(cmd byte, rel bool) string {
	if rel {
		cmd += 'a' - 'A'
	}
	return string(cmd)
}

func nums(cmd byte, rel bool, fs ...float64) string {
	sb := strings.Builder{}
	sb.WriteString(letter(cmd, rel))
	for i, f := range fs {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(f).String())
	}
	return sb.String()
}

func (c MoveTo) String() string  { return nums('M', c.Rel, c.X, c.Y) }
func (c LineTo) String() string  { return nums('L', c.Rel, c.X, c.Y) }
func (c HLineTo) String() string { return nums('H', c.Rel, c.X) }
func (c VLineTo) String() string { return nums('V', c.Rel, c.Y) }

func (c CubeTo) String() string {
	return nums('C', c.Rel, c.CPX1, c.CPY1, c.CPX2, c.CPY2, c.X, c.Y)
}

func (c SmoothCubeTo) String() string {
	return nums('S', c.Rel, c.CPX2, c.CPY2, c.X, c.Y)
}

func (c QuadTo) String() string {
	return nums('Q', c.Rel, c.CPX, c.CPY, c.X, c.Y)
}

func (c SmoothQuadTo) String() string {
	return nums('T', c.Rel, c.X, c.Y)
}

func (c ArcTo) String() string {
	return letter('A', c.Rel) + num(c.RX).String() + " " + num(c.RY).String() + " " + num(c.Rot).String() + " " + flag(c.Large) + " " + flag(c.Sweep) + " " + num(c.X).String() + " " + num(c.Y).String()
}

func (Close) String() string { return "z" }

////////////////////////////////////////////////////////////////

// Path is an ordered list of path data commands. Each command is interpreted relative to the state left by the commands before it.
type Path []Command

// String returns the path as SVG path data, keeping relative commands relative.
func (p Path) String() string {
	sb := strings.Builder{}
	for _, cmd := range p {
		sb.WriteString(cmd.String())
	}
	return sb.String()
}
