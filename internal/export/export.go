// Package export writes generated fixtures as WKT, GeoJSON, SVG or
// PNG.
package export

import (
	"io"

	"github.com/peterstace/simplefeatures/geom"
)

// WKT writes the geometry as well-known text.
func WKT(w io.Writer, g geom.Geometry) error {
	_, err := io.WriteString(w, g.AsText())
	return err
}

// GeoJSON writes the geometry as a GeoJSON geometry document.
func GeoJSON(w io.Writer, g geom.Geometry) error {
	raw, err := g.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}
