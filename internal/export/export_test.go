package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/lelongg/geo-rand/internal/scene"
)

func squareData(t *testing.T) (geom.Geometry, scene.Data) {
	t.Helper()
	g, err := geom.UnmarshalWKT("MULTIPOLYGON(((0 0,30 0,30 30,0 30,0 0)))", geom.NoValidate{})
	if err != nil {
		t.Fatal(err)
	}
	d, err := scene.FromGeometry(g)
	if err != nil {
		t.Fatal(err)
	}
	return g, d
}

func TestWKT(t *testing.T) {
	g, _ := squareData(t)
	var buf bytes.Buffer
	if err := WKT(&buf, g); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "MULTIPOLYGON") {
		t.Errorf("output = %q, want MULTIPOLYGON prefix", buf.String())
	}
}

func TestGeoJSON(t *testing.T) {
	g, _ := squareData(t)
	var buf bytes.Buffer
	if err := GeoJSON(&buf, g); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if doc.Type != "MultiPolygon" {
		t.Errorf("type = %q, want MultiPolygon", doc.Type)
	}
}

func TestNewFrame(t *testing.T) {
	_, d := squareData(t)
	// 30x30 data padded by 5% per side gives a 32x32 box, so a width
	// of 256 makes the scale an exact 8.
	f := newFrame(d, 256)
	if f.w != 256 || f.h != 256 {
		t.Errorf("frame = %vx%v, want 256x256", f.w, f.h)
	}
	if f.scale != 8 {
		t.Errorf("scale = %v, want 8", f.scale)
	}
	x, y := f.project([2]float64{0, 0})
	if x != 12 || y != 244 {
		t.Errorf("project origin = (%v,%v), want (12,244)", x, y)
	}
	x, y = f.project([2]float64{30, 30})
	if x != 252 || y != 4 {
		t.Errorf("project corner = (%v,%v), want (252,4)", x, y)
	}
}

func TestNewFrameDegenerateBBox(t *testing.T) {
	d := scene.Data{Points: [][2]float64{{5, 5}}, BBox: scene.BBox{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5}}
	f := newFrame(d, 100)
	if f.h <= 0 {
		t.Errorf("height = %v, want positive", f.h)
	}
}

func TestSVG(t *testing.T) {
	_, d := squareData(t)
	var buf bytes.Buffer
	if err := SVG(&buf, d, 256); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "<polygon", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPNG(t *testing.T) {
	_, d := squareData(t)
	var buf bytes.Buffer
	if err := PNG(&buf, d, 256); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not png: %v", err)
	}
	if cfg.Width != 256 || cfg.Height != 256 {
		t.Errorf("image = %dx%d, want 256x256", cfg.Width, cfg.Height)
	}
}
