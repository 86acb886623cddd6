// Package viewer is an interactive terminal view of a scene's painter's
// order. Arrow keys orbit the view direction and the order table is
// re-sorted from the same tree on every change.
package viewer

import (
	"fmt"
	"math"

	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chazu/planesplit/internal/report"
	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/scene"
	"github.com/chazu/planesplit/pkg/splitter"
)

// Step is the orbit increment per key press, in degrees.
const Step = 15.0

// Model is the bubbletea model for orbiting a sorted scene. The tree is
// built once in New; orbiting only re-sorts it.
type Model struct {
	width  int
	height int

	sc    *scene.Scene
	split *splitter.BspSplitter
	input int

	// view direction as yaw around z and pitch from the xy plane, degrees
	yaw, pitch         float64
	homeYaw, homePitch float64

	summary report.Summary
	tbl     table.Model
	status  string
	help    bool
}

// New builds the tree for sc once and sorts it for the scene's view.
func New(sc *scene.Scene) Model {
	m := Model{
		sc:     sc,
		split:  splitter.New(),
		input:  len(sc.Polygons),
		status: fmt.Sprintf("%d objects, %d polygons", sc.Objects(), len(sc.Polygons)),
		help:   true,
	}
	for _, p := range sc.Polygons {
		m.split.Add(p)
	}
	m.yaw, m.pitch = anglesOf(sc.View)
	m.homeYaw, m.homePitch = m.yaw, m.pitch

	cols := make([]table.Column, len(report.Headers))
	for i, h := range report.Headers {
		cols[i] = table.Column{Title: h, Width: columnWidths[i]}
	}
	m.tbl = table.New(table.WithColumns(cols), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.resort()
	return m
}

var columnWidths = []int{4, 16, 6, 20, 8, 20, 8}

func (m Model) Init() tea.Cmd { return nil }

// ViewDir returns the current look direction.
func (m Model) ViewDir() geom.Vec {
	return dirOf(m.yaw, m.pitch)
}

// Rows returns the table rows of the current order.
func (m Model) Rows() []table.Row {
	return m.tbl.Rows()
}

// resort orders the stored tree for the current direction.
func (m *Model) resort() {
	view := m.ViewDir()
	sorted := m.split.Sort(view)
	m.summary = report.NewSummary(view, m.input, sorted, m.split.Depth())

	entries := report.Entries(m.sc, sorted)
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row(e.Cells())
	}
	m.tbl.SetRows(rows)
}

func (m *Model) orbit(dYaw, dPitch float64) {
	m.yaw = math.Mod(m.yaw+dYaw+360, 360)
	m.pitch = math.Max(-90, math.Min(90, m.pitch+dPitch))
	m.resort()
	m.status = fmt.Sprintf("yaw %.0f°  pitch %.0f°", m.yaw, m.pitch)
}

// anglesOf converts a direction into yaw and pitch in degrees.
func anglesOf(v geom.Vec) (yaw, pitch float64) {
	l := v.Length()
	if l == 0 {
		return 0, -90
	}
	yaw = math.Atan2(v.Y, v.X) * 180 / math.Pi
	if yaw < 0 {
		yaw += 360
	}
	pitch = math.Asin(math.Max(-1, math.Min(1, v.Z/l))) * 180 / math.Pi
	return yaw, pitch
}

// dirOf is the unit direction for yaw and pitch in degrees.
func dirOf(yaw, pitch float64) geom.Vec {
	y, p := yaw*math.Pi/180, pitch*math.Pi/180
	return geom.Vec{
		X: math.Cos(p) * math.Cos(y),
		Y: math.Cos(p) * math.Sin(y),
		Z: math.Sin(p),
	}
}
