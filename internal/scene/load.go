package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterstace/simplefeatures/geom"
)

// ParseWKT parses a WKT string into render data. Validation is skipped
// so that fixtures with self-intersecting rings still load.
func ParseWKT(wkt string) (geom.Geometry, Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return geom.Geometry{}, Data{}, errors.New("empty wkt")
	}
	g, err := geom.UnmarshalWKT(s, geom.NoValidate{})
	if err != nil {
		return geom.Geometry{}, Data{}, err
	}
	d, err := FromGeometry(g)
	return g, d, err
}

// ParseGeoJSON parses a GeoJSON geometry document into render data.
func ParseGeoJSON(raw []byte) (geom.Geometry, Data, error) {
	g, err := geom.UnmarshalGeoJSON(raw, geom.NoValidate{})
	if err != nil {
		return geom.Geometry{}, Data{}, err
	}
	d, err := FromGeometry(g)
	return g, d, err
}

// LoadFile loads a saved fixture (.wkt, .geojson or .json) into render
// data.
func LoadFile(path string) (geom.Geometry, Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return geom.Geometry{}, Data{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wkt":
		return ParseWKT(string(raw))
	case ".geojson", ".json":
		return ParseGeoJSON(raw)
	}
	return geom.Geometry{}, Data{}, errors.New("unsupported file: " + filepath.Ext(path))
}
