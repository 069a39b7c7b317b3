package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellToXY converts a map cell coordinate back to data coordinates
// using the fixture bbox, zoom and pan.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := bb.MinX + nx*(bb.MaxX-bb.MinX)
	y := bb.MinY + ny*(bb.MaxY-bb.MinY)
	return x, y, true
}

// renderCanvas draws the current fixture into a wxh cell viewport
// using the braille microgrid: optional even-odd fill per polygon,
// then the ring edges, lines and free points on top.
func (m Model) renderCanvas(w, h int) string {
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	br := newBrailleBuf(w, h)

	for _, poly := range m.data.Polygons {
		// project rings to micro coords
		var rings [][][2]int
		for _, ring := range poly {
			var mic [][2]int
			for _, p := range ring {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				mic = append(mic, [2]int{mx, my})
			}
			if len(mic) >= 3 {
				rings = append(rings, mic)
			}
		}
		if len(rings) == 0 {
			continue
		}
		if m.showFill {
			br.fillRings(rings)
		}
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				br.drawLine(a[0], a[1], b[0], b[1])
			}
		}
	}

	for _, ls := range m.data.Lines {
		var prev *[2]int
		for _, p := range ls {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			if prev != nil {
				br.drawLine(prev[0], prev[1], mx, my)
			}
			prev = &[2]int{mx, my}
		}
	}

	for _, p := range m.data.Points {
		mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
		if !ok {
			continue
		}
		br.setPixel(mx, my)
	}

	// composite the braille overlay onto the blank canvas
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// hover highlight: mark the nearest vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				mark := hoverStyle.Render("◯")
				lines[cy] = string(r[:cx]) + mark + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps data coordinates into the 2x4 microgrid per cell
// for braille rendering.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps data coordinates to screen cell coordinates
// considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	bb := m.data.BBox
	if !(bb.MaxX > bb.MinX && bb.MaxY > bb.MinY) {
		return 0, 0, false
	}
	nx := (x - bb.MinX) / (bb.MaxX - bb.MinX)
	ny := (y - bb.MinY) / (bb.MaxY - bb.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// vertices visits every vertex of the fixture.
func (m Model) vertices(visit func(x, y float64)) {
	for _, p := range m.data.Points {
		visit(p[0], p[1])
	}
	for _, ls := range m.data.Lines {
		for _, p := range ls {
			visit(p[0], p[1])
		}
	}
	for _, poly := range m.data.Polygons {
		for _, ring := range poly {
			for _, p := range ring {
				visit(p[0], p[1])
			}
		}
	}
}

// inspectNearest finds the vertex closest to the viewport center.
func (m Model) inspectNearest() (x, y float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best [2]float64
	m.vertices(func(vx, vy float64) {
		sx, sy, ok2 := m.screenXY(vx, vy, w, h)
		if !ok2 {
			return
		}
		dx := sx - cx
		dy := sy - cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = [2]float64{vx, vy}
		}
	})
	if bestD == 1<<31-1 {
		return 0, 0, false
	}
	return best[0], best[1], true
}

var hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
