package tui

import (
	"strings"
	"testing"

	"github.com/lelongg/geo-rand/internal/scene"
)

func testModel() Model {
	return Model{
		zoom: 1,
		data: scene.Data{
			Polygons: [][][][2]float64{{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}}},
			BBox:     scene.BBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
		},
	}
}

func TestScreenXYCorners(t *testing.T) {
	m := testModel()
	w, h := 80, 24

	sx, sy, ok := m.screenXY(0, 0, w, h)
	if !ok || sx != 0 || sy != h-1 {
		t.Errorf("bottom left = (%d,%d,%v), want (0,%d,true)", sx, sy, ok, h-1)
	}
	sx, sy, ok = m.screenXY(100, 100, w, h)
	if !ok || sx != w-1 || sy != 0 {
		t.Errorf("top right = (%d,%d,%v), want (%d,0,true)", sx, sy, ok, w-1)
	}
}

func TestScreenXYPan(t *testing.T) {
	m := testModel()
	m.offsetX = 5
	m.offsetY = -2
	sx, sy, ok := m.screenXY(0, 0, 80, 24)
	if !ok || sx != 5 || sy != 21 {
		t.Errorf("panned origin = (%d,%d,%v), want (5,21,true)", sx, sy, ok)
	}
}

func TestScreenXYDegenerateBBox(t *testing.T) {
	m := Model{zoom: 1}
	if _, _, ok := m.screenXY(0, 0, 80, 24); ok {
		t.Error("expected no projection for empty bbox")
	}
}

func TestCellToXYRoundTrip(t *testing.T) {
	m := testModel()
	w, h := 80, 24

	x, y, ok := m.cellToXY(0, h-1, w, h)
	if !ok || x != 0 || y != 0 {
		t.Errorf("bottom left = (%v,%v,%v), want (0,0,true)", x, y, ok)
	}
	x, y, ok = m.cellToXY(w-1, 0, w, h)
	if !ok || x != 100 || y != 100 {
		t.Errorf("top right = (%v,%v,%v), want (100,100,true)", x, y, ok)
	}
}

func TestCellToXYZoom(t *testing.T) {
	m := testModel()
	m.zoom = 2
	x, y, ok := m.cellToXY(0, 23, 80, 24)
	if !ok {
		t.Fatal("projection failed")
	}
	// at 2x zoom the viewport covers the central half of the bbox
	if x != 25 || y != 25 {
		t.Errorf("zoomed corner = (%v,%v), want (25,25)", x, y)
	}
}

func TestVerticesVisitsAll(t *testing.T) {
	m := testModel()
	m.data.Points = [][2]float64{{1, 1}}
	m.data.Lines = [][][2]float64{{{0, 0}, {2, 2}}}
	var n int
	m.vertices(func(x, y float64) { n++ })
	// 1 point + 2 line vertices + 5 ring vertices
	if n != 8 {
		t.Errorf("visited %d vertices, want 8", n)
	}
}

func TestRenderCanvasDrawsSomething(t *testing.T) {
	m := testModel()
	out := m.renderCanvas(40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("canvas rows = %d, want 12", len(lines))
	}
	if !strings.ContainsFunc(out, func(r rune) bool { return r >= 0x2800 && r <= 0x28FF }) {
		t.Error("canvas contains no braille cells")
	}
}

func TestRenderCanvasFill(t *testing.T) {
	m := testModel()
	m.showFill = true
	filled := 0
	for _, r := range m.renderCanvas(40, 12) {
		if r >= 0x2800 && r <= 0x28FF {
			filled++
		}
	}
	m.showFill = false
	outline := 0
	for _, r := range m.renderCanvas(40, 12) {
		if r >= 0x2800 && r <= 0x28FF {
			outline++
		}
	}
	if filled <= outline {
		t.Errorf("filled cells = %d, outline cells = %d, want more when filling", filled, outline)
	}
}
