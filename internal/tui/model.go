package tui

import (
	"fmt"
	"math/rand/v2"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterstace/simplefeatures/geom"

	georand "github.com/lelongg/geo-rand"
	"github.com/lelongg/geo-rand/internal/scene"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// generation state
	params georand.Parameters
	seed   uint64

	// current fixture
	geo     geom.Geometry
	data    scene.Data
	selPath string // non-empty when the fixture was loaded from a file

	// fixture file explorer
	cwd   string
	l     list.Model
	items []list.Item

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// fill toggle for polygon interiors
	showFill bool

	// per-polygon stats table
	showStats bool
	tbl       table.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasPos bool
	hoverX      float64
	hoverY      float64
}

// New builds a model that generates its first fixture from the given
// parameters and seed.
func New(params georand.Parameters, seed uint64) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		showFill:    true,
		params:      params,
		seed:        seed,
	}
	m.cwd, _ = os.Getwd()
	// fixture list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Fixtures"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POLYGON, MULTIPOLYGON, ...). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stats table setup (rows are rebuilt per fixture)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	m.regenerate()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// regenerate rebuilds the fixture from the current seed and parameters.
func (m *Model) regenerate() {
	rng := rand.New(rand.NewPCG(m.seed, 0))
	mp, err := georand.MultiPolygon(rng, &m.params)
	if err != nil {
		m.status = "generate error: " + err.Error()
		return
	}
	m.geo = mp.AsGeometry()
	m.data = scene.FromMultiPolygon(mp)
	m.selPath = ""
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("seed=%d  polygons=%d/%d  vertices<%d  budget=%s",
		m.seed, mp.NumPolygons(), m.params.MaxPolygonsCount,
		m.params.MaxPolygonVerticesCount, budgetLabel(m.params.MaxCollisionsCount))
	if m.showStats {
		m.refreshStats()
	}
}

func budgetLabel(budget *int) string {
	if budget == nil {
		return "off"
	}
	return fmt.Sprintf("%d", *budget)
}
