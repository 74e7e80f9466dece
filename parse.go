package svgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

func isNumStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

// cmdLen returns the number of arguments of the command letter cmd, or -1 if it is not a path command.
func cmdLen(cmd byte) int {
	switch cmd {
	case 'Z', 'z':
		return 0
	case 'H', 'h', 'V', 'v':
		return 1
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'S', 's', 'Q', 'q':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	}
	return -1
}

// parseFlag parses an arc flag, which is a single 0 or 1 that need not be separated from the next argument.
func parseFlag(path []byte) (bool, int, bool) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return path[i] == '1', i + 1, true
	}
	return false, i, false
}

// ParseSVGPath parses SVG path data into commands. Non-empty path data must start with a moveto. Lower case commands are relative, repeated argument sets repeat the command, and argument sets following a move are lines. Errors wrap ErrBadPath and report the 1-based byte position. See https://www.w3.org/TR/SVG/paths.html#PathDataBNF
func ParseSVGPath(s string) (Path, error) {
	path := []byte(s)
	p := Path{}

	var prevCmd byte
	var f [7]float64
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if isNumStart(path[i]) {
			if prevCmd == 0 {
				return nil, fmt.Errorf("%w: path should start with command", ErrBadPath)
			} else if prevCmd == 'Z' || prevCmd == 'z' {
				return nil, fmt.Errorf("%w: no numbers should follow command '%c' at position %d", ErrBadPath, prevCmd, i+1)
			}
		} else {
			cmd = path[i]
			if cmdLen(cmd) == -1 {
				if prevCmd == 0 {
					return nil, fmt.Errorf("%w: path should start with command", ErrBadPath)
				}
				return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrBadPath, cmd, i+1)
			} else if prevCmd == 0 && cmd != 'M' && cmd != 'm' {
				return nil, fmt.Errorf("%w: path should start with a moveto", ErrBadPath)
			}
			i++
		}

		n := cmdLen(cmd)
		var large, sweep bool
		for j := 0; j < n; j++ {
			if (cmd == 'A' || cmd == 'a') && (j == 3 || j == 4) {
				flag, m, ok := parseFlag(path[i:])
				if !ok {
					return nil, fmt.Errorf("%w: largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", ErrBadPath, cmd, i+m+1)
				}
				if j == 3 {
					large = flag
				} else {
					sweep = flag
				}
				i += m
				continue
			}

			m := skipCommaWhitespace(path[i:])
			num, k := strconv.ParseFloat(path[i+m:])
			if k == 0 {
				return nil, fmt.Errorf("%w: %d numbers should follow command '%c' at position %d", ErrBadPath, n, cmd, i+m+1)
			}
			f[j] = num
			i += m + k
		}

		rel := 'a' <= cmd
		switch cmd {
		case 'M', 'm':
			p = append(p, MoveTo{X: f[0], Y: f[1], Rel: rel})
		case 'L', 'l':
			p = append(p, LineTo{X: f[0], Y: f[1], Rel: rel})
		case 'H', 'h':
			p = append(p, HLineTo{X: f[0], Rel: rel})
		case 'V', 'v':
			p = append(p, VLineTo{Y: f[0], Rel: rel})
		case 'C', 'c':
			p = append(p, CubeTo{CPX1: f[0], CPY1: f[1], CPX2: f[2], CPY2: f[3], X: f[4], Y: f[5], Rel: rel})
		case 'S', 's':
			p = append(p, SmoothCubeTo{CPX2: f[0], CPY2: f[1], X: f[2], Y: f[3], Rel: rel})
		case 'Q', 'q':
			p = append(p, QuadTo{CPX: f[0], CPY: f[1], X: f[2], Y: f[3], Rel: rel})
		case 'T', 't':
			p = append(p, SmoothQuadTo{X: f[0], Y: f[1], Rel: rel})
		case 'A', 'a':
			p = append(p, ArcTo{RX: f[0], RY: f[1], Rot: f[2], Large: large, Sweep: sweep, X: f[5], Y: f[6], Rel: rel})
		case 'Z', 'z':
			p = append(p, Close{})
		}

		// argument sets after a move are implicit lines
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return p, nil
}

// MustParseSVGPath parses SVG path data and panics on error.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}
