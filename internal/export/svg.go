package export

import (
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/lelongg/geo-rand/internal/scene"
)

const (
	polygonStyle = "fill:rgb(124,158,217);fill-opacity:0.6;stroke:rgb(36,49,65);stroke-width:1"
	lineStyle    = "fill:none;stroke:rgb(36,49,65);stroke-width:1"
	pointStyle   = "fill:rgb(124,58,237)"
)

// frame maps data coordinates onto an image of the requested pixel
// width, flipping y so that y-up data renders upright. The bounding
// box is padded by 5% so strokes at the edge stay visible.
type frame struct {
	bbox  scene.BBox
	scale float64
	w, h  float64
}

func newFrame(d scene.Data, width float64) frame {
	bb := d.BBox
	padX := (bb.MaxX - bb.MinX) * 0.05
	padY := (bb.MaxY - bb.MinY) * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	bb.MinX -= padX
	bb.MaxX += padX
	bb.MinY -= padY
	bb.MaxY += padY
	scale := width / (bb.MaxX - bb.MinX)
	return frame{bbox: bb, scale: scale, w: width, h: (bb.MaxY - bb.MinY) * scale}
}

func (f frame) project(pt [2]float64) (float64, float64) {
	return (pt[0] - f.bbox.MinX) * f.scale, f.h - (pt[1]-f.bbox.MinY)*f.scale
}

// SVG renders the fixture as an SVG document of the given pixel width;
// the height follows the bounding box aspect ratio.
func SVG(w io.Writer, d scene.Data, width float64) error {
	if width <= 0 {
		width = 800
	}
	f := newFrame(d, width)
	canvas := svg.New(w)
	canvas.Start(f.w, f.h)
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			xs := make([]float64, len(ring))
			ys := make([]float64, len(ring))
			for i, pt := range ring {
				xs[i], ys[i] = f.project(pt)
			}
			canvas.Polygon(xs, ys, polygonStyle)
		}
	}
	for _, ls := range d.Lines {
		if len(ls) == 0 {
			continue
		}
		xs := make([]float64, len(ls))
		ys := make([]float64, len(ls))
		for i, pt := range ls {
			xs[i], ys[i] = f.project(pt)
		}
		canvas.Polyline(xs, ys, lineStyle)
	}
	for _, pt := range d.Points {
		x, y := f.project(pt)
		canvas.Circle(x, y, 2, pointStyle)
	}
	canvas.End()
	return nil
}
