package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	georand "github.com/lelongg/geo-rand"
	"github.com/lelongg/geo-rand/internal/export"
	"github.com/lelongg/geo-rand/internal/scene"
	"github.com/lelongg/geo-rand/internal/tui"
)

func main() {
	var (
		polygons   = flag.Int("polygons", 60, "target number of polygons")
		vertices   = flag.Int("vertices", 7, "exclusive upper bound on vertices per polygon (must be > 3)")
		collisions = flag.Int("collisions", 100, "collision retry budget; -1 disables the intersection check")
		seed       = flag.Uint64("seed", 0, "rng seed")
		minX       = flag.Float64("min-x", 0, "region min x")
		minY       = flag.Float64("min-y", 0, "region min y")
		maxX       = flag.Float64("max-x", 100, "region max x")
		maxY       = flag.Float64("max-y", 100, "region max y")
		out        = flag.String("o", "", "write the fixture to this file (.wkt, .geojson, .json, .svg, .png) instead of opening the viewer")
	)
	flag.Parse()

	params := georand.Parameters{
		MaxPolygonsCount:        *polygons,
		MaxPolygonVerticesCount: *vertices,
		MinX:                    *minX,
		MinY:                    *minY,
		MaxX:                    *maxX,
		MaxY:                    *maxY,
	}
	if *collisions >= 0 {
		params.MaxCollisionsCount = collisions
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		m := tui.New(params, *seed)
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	rng := rand.New(rand.NewPCG(*seed, 0))
	mp, err := georand.MultiPolygon(rng, &params)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".wkt":
		err = export.WKT(f, mp.AsGeometry())
	case ".geojson", ".json":
		err = export.GeoJSON(f, mp.AsGeometry())
	case ".svg":
		err = export.SVG(f, scene.FromMultiPolygon(mp), 800)
	case ".png":
		err = export.PNG(f, scene.FromMultiPolygon(mp), 800)
	default:
		log.Fatalf("unsupported output format: %s", filepath.Ext(*out))
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d polygons to %s\n", mp.NumPolygons(), *out)
}
