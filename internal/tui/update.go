package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lelongg/geo-rand/internal/scene"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; will be refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				g, d, err := scene.ParseWKT(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.geo, m.data = g, d
				m.selPath = ""
				m.zoom = 1.0
				m.offsetX, m.offsetY = 0, 0
				m.status = fmt.Sprintf("rendered WKT  counts: pts=%d ls=%d poly=%d",
					len(m.data.Points), len(m.data.Lines), len(m.data.Polygons))
				m.pasteMode = false
				m.ta.Blur()
				if m.showStats {
					m.refreshStats()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.seed++
			m.regenerate()
		case "R":
			m.seed = uint64(time.Now().UnixNano())
			m.regenerate()
		case "n":
			if m.params.MaxPolygonsCount > 0 {
				m.params.MaxPolygonsCount--
				m.regenerate()
			}
		case "N":
			m.params.MaxPolygonsCount++
			m.regenerate()
		case "v":
			if m.params.MaxPolygonVerticesCount > 4 {
				m.params.MaxPolygonVerticesCount--
				m.regenerate()
			}
		case "V":
			m.params.MaxPolygonVerticesCount++
			m.regenerate()
		case "c":
			if m.params.MaxCollisionsCount == nil {
				budget := 100
				m.params.MaxCollisionsCount = &budget
			} else {
				m.params.MaxCollisionsCount = nil
			}
			m.regenerate()
		case "f":
			m.showFill = !m.showFill
			m.status = fmt.Sprintf("fill: %v", m.showFill)
		case "s":
			m.saveFixture("wkt")
		case "S":
			m.saveFixture("svg")
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "i":
			x, y, ok := m.inspectNearest()
			if ok {
				source := fmt.Sprintf("seed %d", m.seed)
				if m.selPath != "" {
					source = m.selPath
				}
				meta := []string{
					fmt.Sprintf("source: %s", source),
					fmt.Sprintf("bbox: [%.3f, %.3f, %.3f, %.3f]",
						m.data.BBox.MinX, m.data.BBox.MinY, m.data.BBox.MaxX, m.data.BBox.MaxY),
					fmt.Sprintf("counts: pts=%d ls=%d poly=%d",
						len(m.data.Points), len(m.data.Lines), len(m.data.Polygons)),
					fmt.Sprintf("nearest vertex: x=%.4f y=%.4f", x, y),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no vertex nearby"
				m.status = m.inspectPopup
			}
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// track hover over the map area; layout must match View
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = 28
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)

		if m.showSidebar {
			m.l.SetSize(28-2, contentHeight-2)
		}

		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			m.hoverCellX = cx - mapOriginX
			m.hoverCellY = cy - mapOriginY
			if x, y, ok := m.cellToXY(m.hoverCellX, m.hoverCellY, mapWidth, mapHeight); ok {
				m.hoverHasPos = true
				m.hoverX = x
				m.hoverY = y
			} else {
				m.hoverHasPos = false
			}
			// snap to the nearest fixture vertex in micro coords
			hxMic := m.hoverCellX * 2
			hyMic := m.hoverCellY * 4
			best := 1<<31 - 1
			bx, by := hxMic, hyMic
			m.vertices(func(vx, vy float64) {
				mx, my, ok := m.screenXYMicro(vx, vy, mapWidth, mapHeight)
				if !ok {
					return
				}
				dx := mx - hxMic
				dy := my - hyMic
				if d := dx*dx + dy*dy; d < best {
					best = d
					bx, by = mx, my
				}
			})
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
