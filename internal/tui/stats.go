package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/peterstace/simplefeatures/geom"
)

// refreshStats rebuilds the per-polygon stats table for the current
// fixture.
func (m *Model) refreshStats() {
	rows := polygonStats(m.geo)
	if len(rows) == 0 {
		m.showStats = false
		m.status = "no polygons to describe"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "vertices", Width: 8},
		{Title: "area", Width: 10},
		{Title: "width", Width: 10},
		{Title: "height", Width: 10},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// polygonStats returns one row per polygon: vertex count, area and
// bounding box extent.
func polygonStats(g geom.Geometry) []table.Row {
	var polys []geom.Polygon
	switch g.Type() {
	case geom.TypePolygon:
		polys = []geom.Polygon{g.MustAsPolygon()}
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		for i := 0; i < mp.NumPolygons(); i++ {
			polys = append(polys, mp.PolygonN(i))
		}
	default:
		return nil
	}

	rows := make([]table.Row, 0, len(polys))
	for i, p := range polys {
		seq := p.ExteriorRing().Coordinates()
		if seq.Length() == 0 {
			continue
		}
		first := seq.GetXY(0)
		minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
		for j := 1; j < seq.Length(); j++ {
			xy := seq.GetXY(j)
			if xy.X < minX {
				minX = xy.X
			}
			if xy.Y < minY {
				minY = xy.Y
			}
			if xy.X > maxX {
				maxX = xy.X
			}
			if xy.Y > maxY {
				maxY = xy.Y
			}
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", seq.Length()-1),
			fmt.Sprintf("%.2f", p.Area()),
			fmt.Sprintf("%.2f", maxX-minX),
			fmt.Sprintf("%.2f", maxY-minY),
		})
	}
	return rows
}
