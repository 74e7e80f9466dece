package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgpath"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type Flatten struct {
	Format      string  `short:"f" default:"svg" desc:"Output format: svg, go or list"`
	Ident       string  `default:"p" desc:"Identifier of the path builder in Go output"`
	MaxArcAngle float64 `name:"max-arc-angle" default:"120" desc:"Largest angle in degrees spanned by one cubic Bézier of an arc"`
	Precision   int     `default:"8" desc:"Significant digits of SVG output"`
	Verbose     bool    `short:"v" desc:"Log degenerate geometry to stderr"`
	Input       string  `index:"0" desc:"Path data, or - for standard input"`
}

type Extract struct {
	Format      string  `short:"f" default:"svg" desc:"Output format: svg, go or list"`
	Ident       string  `default:"p" desc:"Identifier of the path builder in Go output"`
	MaxArcAngle float64 `name:"max-arc-angle" default:"120" desc:"Largest angle in degrees spanned by one cubic Bézier of an arc"`
	Precision   int     `default:"8" desc:"Significant digits of SVG output"`
	Verbose     bool    `short:"v" desc:"Log degenerate geometry to stderr"`
	Input       string  `index:"0" desc:"SVG file, or - for standard input"`
}

type Preview struct {
	Width       int     `short:"W" default:"256" desc:"Image width in pixels"`
	Height      int     `short:"H" default:"256" desc:"Image height in pixels"`
	Scale       float64 `short:"s" default:"1" desc:"Pixels per path unit"`
	MaxArcAngle float64 `name:"max-arc-angle" default:"120" desc:"Largest angle in degrees spanned by one cubic Bézier of an arc"`
	Verbose     bool    `short:"v" desc:"Log degenerate geometry to stderr"`
	Output      string  `short:"o" desc:"Output PNG file"`
	Input       string  `index:"0" desc:"Path data, or - for standard input"`
}

func main() {
	root := argp.NewCmd(&Flatten{}, "Convert SVG path data to absolute moves, lines, cubic Béziers and closes")
	root.AddCmd(&Extract{}, "extract", "Convert the path elements of an SVG file")
	root.AddCmd(&Preview{}, "preview", "Rasterize path data to a PNG image")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		svgpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func readInput(input string) (string, error) {
	if input != "-" {
		return input, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func write(w io.Writer, format, ident string, p svgpath.Path, opts ...svgpath.Option) error {
	switch format {
	case "svg":
		sw := svgpath.NewSVGWriter(w)
		svgpath.Emit(sw, p.Flatten(opts...))
		if sw.Err() != nil {
			return sw.Err()
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "go":
		gw := svgpath.NewGoWriter(w, ident)
		svgpath.Emit(gw, p.Flatten(opts...))
		return gw.Err()
	case "list":
		for prim := range p.Flatten(opts...) {
			if _, err := fmt.Fprintln(w, prim); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}

func (cmd *Flatten) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)
	svgpath.Precision = cmd.Precision

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	p, err := svgpath.ParseSVGPath(data)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	if err := write(w, cmd.Format, cmd.Ident, p, svgpath.WithMaxArcAngle(cmd.MaxArcAngle)); err != nil {
		return err
	}
	return w.Flush()
}

func (cmd *Extract) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setVerbose(cmd.Verbose)
	svgpath.Precision = cmd.Precision

	r := io.Reader(os.Stdin)
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	elems, err := svgpath.ParseSVG(r)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for i, elem := range elems {
		id := elem.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i)
		}
		prefix := "// %s\n"
		if cmd.Format == "svg" {
			prefix = "%s: "
		}
		if _, err := fmt.Fprintf(w, prefix, id); err != nil {
			return err
		}
		if err := write(w, cmd.Format, cmd.Ident, elem.Path, svgpath.WithMaxArcAngle(cmd.MaxArcAngle)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (cmd *Preview) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	} else if cmd.Width <= 0 || cmd.Height <= 0 || 8192 < cmd.Width || 8192 < cmd.Height {
		return fmt.Errorf("image size must be between 1 and 8192 pixels")
	} else if cmd.Scale <= 0.0 {
		return fmt.Errorf("scale must be positive")
	}
	setVerbose(cmd.Verbose)

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}
	p, err := svgpath.ParseSVGPath(data)
	if err != nil {
		return err
	}

	rect := image.Rect(0, 0, cmd.Width, cmd.Height)
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, image.NewUniform(color.White), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(cmd.Width, cmd.Height)
	m := svgpath.Identity.Scale(cmd.Scale, cmd.Scale)
	svgpath.Emit(svgpath.NewRasterizerEmitter(ras, m), p.Flatten(svgpath.WithMaxArcAngle(cmd.MaxArcAngle)))
	ras.Draw(img, rect, image.NewUniform(color.Black), image.Point{})

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
