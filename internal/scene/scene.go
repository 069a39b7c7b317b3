// Package scene flattens simplefeatures geometries into the minimal
// point/line/polygon container the terminal renderer and the exporters
// consume.
package scene

import (
	"errors"

	"github.com/peterstace/simplefeatures/geom"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}

func (d *Data) empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

func (d *Data) grow(x, y float64) {
	if d.empty() {
		d.BBox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < d.BBox.MinX {
		d.BBox.MinX = x
	}
	if y < d.BBox.MinY {
		d.BBox.MinY = y
	}
	if x > d.BBox.MaxX {
		d.BBox.MaxX = x
	}
	if y > d.BBox.MaxY {
		d.BBox.MaxY = y
	}
}

func (d *Data) addPoint(pt [2]float64) {
	d.grow(pt[0], pt[1])
	d.Points = append(d.Points, pt)
}

func (d *Data) addLine(ls [][2]float64) {
	for _, p := range ls {
		d.grow(p[0], p[1])
	}
	d.Lines = append(d.Lines, ls)
}

func (d *Data) addPolygon(poly [][][2]float64) {
	for _, ring := range poly {
		for _, p := range ring {
			d.grow(p[0], p[1])
		}
	}
	d.Polygons = append(d.Polygons, poly)
}

// seqPoints flattens a coordinate sequence into point tuples.
func seqPoints(seq geom.Sequence) [][2]float64 {
	pts := make([][2]float64, seq.Length())
	for i := range pts {
		xy := seq.GetXY(i)
		pts[i] = [2]float64{xy.X, xy.Y}
	}
	return pts
}

func polygonRings(p geom.Polygon) [][][2]float64 {
	rings := make([][][2]float64, 0, p.NumInteriorRings()+1)
	rings = append(rings, seqPoints(p.ExteriorRing().Coordinates()))
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, seqPoints(p.InteriorRingN(i).Coordinates()))
	}
	return rings
}

// FromMultiPolygon flattens a multipolygon into render data.
func FromMultiPolygon(mp geom.MultiPolygon) Data {
	var d Data
	for i := 0; i < mp.NumPolygons(); i++ {
		d.addPolygon(polygonRings(mp.PolygonN(i)))
	}
	return d
}

// FromGeometry flattens any geometry into render data. An error is
// returned when the geometry holds no coordinates at all.
func FromGeometry(g geom.Geometry) (Data, error) {
	var d Data
	d.add(g)
	if d.empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func (d *Data) add(g geom.Geometry) {
	switch g.Type() {
	case geom.TypePoint:
		if xy, ok := g.MustAsPoint().XY(); ok {
			d.addPoint([2]float64{xy.X, xy.Y})
		}
	case geom.TypeMultiPoint:
		mp := g.MustAsMultiPoint()
		for i := 0; i < mp.NumPoints(); i++ {
			if xy, ok := mp.PointN(i).XY(); ok {
				d.addPoint([2]float64{xy.X, xy.Y})
			}
		}
	case geom.TypeLineString:
		d.addLine(seqPoints(g.MustAsLineString().Coordinates()))
	case geom.TypeMultiLineString:
		mls := g.MustAsMultiLineString()
		for i := 0; i < mls.NumLineStrings(); i++ {
			d.addLine(seqPoints(mls.LineStringN(i).Coordinates()))
		}
	case geom.TypePolygon:
		d.addPolygon(polygonRings(g.MustAsPolygon()))
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		for i := 0; i < mp.NumPolygons(); i++ {
			d.addPolygon(polygonRings(mp.PolygonN(i)))
		}
	case geom.TypeGeometryCollection:
		gc := g.MustAsGeometryCollection()
		for i := 0; i < gc.NumGeometries(); i++ {
			d.add(gc.GeometryN(i))
		}
	}
}
