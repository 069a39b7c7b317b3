package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/lelongg/geo-rand/internal/export"
	"github.com/lelongg/geo-rand/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir lists saved fixture files in the working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".wkt" || ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
}

// loadPath loads a saved fixture into the model.
func (m *Model) loadPath(p string) {
	g, d, err := scene.LoadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.geo, m.data = g, d
	m.selPath = p
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  counts: pts=%d ls=%d poly=%d", len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))
	if m.showStats {
		m.refreshStats()
	}
}

// saveFixture writes the current fixture next to the working directory
// as fixture-<seed>.<format>.
func (m *Model) saveFixture(format string) {
	name := fmt.Sprintf("fixture-%d.%s", m.seed, format)
	f, err := os.Create(filepath.Join(m.cwd, name))
	if err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	defer f.Close()
	switch format {
	case "wkt":
		err = export.WKT(f, m.geo)
	case "geojson":
		err = export.GeoJSON(f, m.geo)
	case "svg":
		err = export.SVG(f, m.data, 800)
	default:
		m.status = "save: unsupported format " + format
		return
	}
	if err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	m.status = "saved " + name
	m.refreshDir()
}
