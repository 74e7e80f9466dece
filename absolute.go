package svgpath

// ToAbsolute rewrites all relative commands of p to absolute commands in place. Relative coordinates are offsets from the current point at the start of each command, and Close moves the current point back to the start of the subpath. The number and order of commands is preserved, and a path without relative commands is left unchanged.
func (p Path) ToAbsolute() {
	var pos, start Point
	for i, cmd := range p {
		cmd = toAbsolute(cmd, pos)
		p[i] = cmd
		pos, start = advance(cmd, pos, start)
	}
}

// toAbsolute returns cmd with its coordinates made absolute with respect to the current point pos.
func toAbsolute(cmd Command, pos Point) Command {
	switch c := cmd.(type) {
	case MoveTo:
		if c.Rel {
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case LineTo:
		if c.Rel {
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case HLineTo:
		if c.Rel {
			c.X, c.Rel = c.X+pos.X, false
		}
		return c
	case VLineTo:
		if c.Rel {
			c.Y, c.Rel = c.Y+pos.Y, false
		}
		return c
	case CubeTo:
		if c.Rel {
			c.CPX1, c.CPY1 = c.CPX1+pos.X, c.CPY1+pos.Y
			c.CPX2, c.CPY2 = c.CPX2+pos.X, c.CPY2+pos.Y
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case SmoothCubeTo:
		if c.Rel {
			c.CPX2, c.CPY2 = c.CPX2+pos.X, c.CPY2+pos.Y
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case QuadTo:
		if c.Rel {
			c.CPX, c.CPY = c.CPX+pos.X, c.CPY+pos.Y
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case SmoothQuadTo:
		if c.Rel {
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	case ArcTo:
		if c.Rel {
			c.X, c.Y, c.Rel = c.X+pos.X, c.Y+pos.Y, false
		}
		return c
	}
	return cmd
}

// advance returns the current point and subpath start after the absolute command cmd.
func advance(cmd Command, pos, start Point) (Point, Point) {
	switch c := cmd.(type) {
	case MoveTo:
		pos = Point{c.X, c.Y}
		start = pos
	case LineTo:
		pos = Point{c.X, c.Y}
	case HLineTo:
		pos.X = c.X
	case VLineTo:
		pos.Y = c.Y
	case CubeTo:
		pos = Point{c.X, c.Y}
	case SmoothCubeTo:
		pos = Point{c.X, c.Y}
	case QuadTo:
		pos = Point{c.X, c.Y}
	case SmoothQuadTo:
		pos = Point{c.X, c.Y}
	case ArcTo:
		pos = Point{c.X, c.Y}
	case Close:
		pos = start
	}
	return pos, start
}
