// Package render rasterizes convolution cycles into images for visual
// inspection. It is a diagnostic surface: geometry is flattened to float64
// and drawn with golang.org/x/image/vector, so none of the exactness
// guarantees of the core carry over here.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/offset"
	"github.com/gogpu/offset/arc"
	"github.com/gogpu/offset/exact"
)

// flatTolerance is the maximum chord deviation, in device pixels, used when
// flattening arcs.
const flatTolerance = 0.25

// Renderer draws filled contours into an RGBA image. World coordinates are
// mapped to device pixels by x' = tx + scale*x, y' = ty - scale*y (the
// vertical flip keeps counterclockwise world contours counterclockwise on
// screen).
type Renderer struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	scale float64
	tx    float64
	ty    float64
}

// New creates a renderer with the given canvas size and world-to-device
// transform.
func New(width, height int, scale, tx, ty float64) *Renderer {
	return &Renderer{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:   &vector.Rasterizer{},
		scale: scale,
		tx:    tx,
		ty:    ty,
	}
}

// Image returns the canvas.
func (r *Renderer) Image() *image.RGBA { return r.img }

// FillBackground floods the whole canvas with c.
func (r *Renderer) FillBackground(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Renderer) device(p exact.Point) (x, y float32) {
	px, py := p.Float64s()
	return float32(r.tx + r.scale*px), float32(r.ty - r.scale*py)
}

// FillPolygon fills the contour pgn with c.
func (r *Renderer) FillPolygon(pgn offset.Polygon, c color.Color) {
	if len(pgn) < 3 {
		return
	}
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	x, y := r.device(pgn[0])
	r.ras.MoveTo(x, y)
	for _, p := range pgn[1:] {
		x, y = r.device(p)
		r.ras.LineTo(x, y)
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// FillCycle fills the region outlined by one convolution cycle. curves must
// be the cycle's curves in emission order. Cycles of non-convex polygons may
// self-intersect; the filled region is then only an approximation of the
// offset area, which is acceptable for a diagnostic overlay.
func (r *Renderer) FillCycle(curves []offset.LabeledCurve, c color.Color) {
	if len(curves) == 0 {
		return
	}
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
	x, y := r.device(curves[0].Curve.Source())
	r.ras.MoveTo(x, y)
	for _, lc := range curves {
		switch g := lc.Curve.(type) {
		case arc.XArc:
			r.flattenArc(g)
		default:
			x, y = r.device(lc.Curve.Target())
			r.ras.LineTo(x, y)
		}
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// flattenArc approximates a counterclockwise arc piece with line segments
// whose chords deviate from the circle by at most flatTolerance pixels.
func (r *Renderer) flattenArc(a arc.XArc) {
	cx, cy := a.Center.Float64s()
	radius, _ := a.Radius.Float64()
	sx, sy := a.P0.Float64s()
	tx, ty := a.P1.Float64s()

	a0 := math.Atan2(sy-cy, sx-cx)
	a1 := math.Atan2(ty-cy, tx-cx)
	da := a1 - a0
	for da < 0 {
		da += 2 * math.Pi
	}
	// An x-monotone piece spans at most half the circle; anything larger is
	// a rounding artifact on a near-degenerate arc.
	if da > 1.5*math.Pi {
		x, y := r.device(a.P1)
		r.ras.LineTo(x, y)
		return
	}

	step := math.Pi / 4
	if dev := radius * r.scale; dev > flatTolerance {
		step = 2 * math.Acos(1-flatTolerance/dev)
	}
	n := int(math.Ceil(da / step))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := a0 + da*float64(i)/float64(n)
		px := cx + radius*math.Cos(t)
		py := cy + radius*math.Sin(t)
		r.ras.LineTo(float32(r.tx+r.scale*px), float32(r.ty-r.scale*py))
	}
}
