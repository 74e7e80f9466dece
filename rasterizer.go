package svgpath

import (
	"image"
	"iter"

	"golang.org/x/image/vector"
)

// RasterizerEmitter sends primitives to a vector.Rasterizer, transforming coordinates by a matrix. Closing a subpath moves the pen back to its start.
type RasterizerEmitter struct {
	ras *vector.Rasterizer
	m   Matrix
}

// NewRasterizerEmitter returns an Emitter that adds the path to ras after transforming it by m, such as Identity.Scale(dpm, dpm) to convert from path units to pixels.
func NewRasterizerEmitter(ras *vector.Rasterizer, m Matrix) *RasterizerEmitter {
	return &RasterizerEmitter{
		ras: ras,
		m:   m,
	}
}

func (r *RasterizerEmitter) MoveTo(x, y float64) {
	p := r.m.Dot(Point{x, y})
	r.ras.MoveTo(float32(p.X), float32(p.Y))
}

func (r *RasterizerEmitter) LineTo(x, y float64) {
	p := r.m.Dot(Point{x, y})
	r.ras.LineTo(float32(p.X), float32(p.Y))
}

func (r *RasterizerEmitter) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	cp1 := r.m.Dot(Point{cpx1, cpy1})
	cp2 := r.m.Dot(Point{cpx2, cpy2})
	p := r.m.Dot(Point{x, y})
	r.ras.CubeTo(float32(cp1.X), float32(cp1.Y), float32(cp2.X), float32(cp2.Y), float32(p.X), float32(p.Y))
}

func (r *RasterizerEmitter) Close() {
	r.ras.ClosePath()
}

// Rasterize fills the primitives of seq with the non-zero winding rule onto a new w by h coverage mask, transforming coordinates by m.
func Rasterize(seq iter.Seq[Primitive], w, h int, m Matrix) *image.Alpha {
	ras := vector.NewRasterizer(w, h)
	Emit(NewRasterizerEmitter(ras, m), seq)

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}
