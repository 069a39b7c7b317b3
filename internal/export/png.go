package export

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/lelongg/geo-rand/internal/scene"
)

// PNG rasterises the fixture into a PNG of the given pixel width; the
// height follows the bounding box aspect ratio. Polygon interiors are
// filled with the even-odd rule so holes stay empty, then the edges
// are stroked.
func PNG(w io.Writer, d scene.Data, width int) error {
	if width <= 0 {
		width = 800
	}
	f := newFrame(d, float64(width))
	dc := gg.NewContext(width, int(f.h))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFillRuleEvenOdd()

	for _, poly := range d.Polygons {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}
			x, y := f.project(ring[0])
			dc.MoveTo(x, y)
			for _, pt := range ring[1:] {
				x, y = f.project(pt)
				dc.LineTo(x, y)
			}
			dc.ClosePath()
		}
		dc.SetRGBA(0.49, 0.62, 0.85, 0.6)
		dc.FillPreserve()
		dc.SetRGB(0.14, 0.19, 0.25)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	for _, ls := range d.Lines {
		for i := 1; i < len(ls); i++ {
			x0, y0 := f.project(ls[i-1])
			x1, y1 := f.project(ls[i])
			dc.DrawLine(x0, y0, x1, y1)
		}
		dc.SetRGB(0.14, 0.19, 0.25)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	dc.SetRGB(0.49, 0.23, 0.93)
	for _, pt := range d.Points {
		x, y := f.project(pt)
		dc.DrawCircle(x, y, 2)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
