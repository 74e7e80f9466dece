package svgpath

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Element is a path element of an SVG document.
type Element struct {
	ID   string
	Path Path
}

// SVGError is returned for malformed path data in an SVG document.
type SVGError struct {
	ID           string // id of the path element
	Line, Column int    // start of the d attribute value
	Err          error
}

func (e *SVGError) Error() string {
	return fmt.Sprintf("%v on line %d and column %d", e.Err, e.Line, e.Column)
}

func (e *SVGError) Unwrap() error {
	return e.Err
}

// ParseSVG reads an SVG document and returns its path elements in document order, including namespaced elements such as svg:path. A path element without a d attribute has an empty path. The first malformed path data is returned as an *SVGError that wraps ErrBadPath, positioned at the start of the d attribute value.
func ParseSVG(r io.Reader) ([]Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	elems := []Element{}
	l := xml.NewLexer(z)
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return elems, l.Err()
			}
			return elems, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			dOffset := z.Offset()
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				offset := z.Offset() - len(val)
				if 1 < len(val) && (val[0] == '"' || val[0] == '\'') && val[0] == val[len(val)-1] {
					val = val[1 : len(val)-1]
					offset++
				}
				name := string(l.Text())
				if name == "d" {
					dOffset = offset
				}
				attrs[name] = string(val)
			}

			tag := data[1:]
			if i := bytes.IndexByte(tag, ':'); i != -1 {
				tag = tag[i+1:]
			}
			if string(tag) != "path" {
				continue
			}
			p, err := ParseSVGPath(attrs["d"])
			if err != nil {
				line, col, _ := parse.Position(bytes.NewReader(z.Bytes()), dOffset)
				return elems, &SVGError{
					ID:     attrs["id"],
					Line:   line,
					Column: col,
					Err:    err,
				}
			}
			elems = append(elems, Element{
				ID:   attrs["id"],
				Path: p,
			})
		}
	}
}
