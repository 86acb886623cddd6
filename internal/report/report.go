// Package report turns a sorted polygon list into rows for the command
// line tools: a styled table for terminals and JSON for scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/scene"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Entry is one polygon in painter's order.
type Entry struct {
	Index    int         `json:"index"`
	Object   string      `json:"object"`
	Anchor   int         `json:"anchor"`
	Normal   geom.Vec    `json:"normal"`
	Offset   float64     `json:"offset"`
	Centroid geom.Vec    `json:"centroid"`
	Area     float64     `json:"area"`
	Points   [4]geom.Vec `json:"points"`
}

// Summary describes one sort.
type Summary struct {
	View      geom.Vec `json:"view"`
	Inputs    int      `json:"inputs"`
	Polygons  int      `json:"polygons"`
	Fragments int      `json:"fragments"` // extra polygons created by splits
	Depth     int      `json:"depth"`
}

// Entries labels sorted polygons with their object names.
func Entries(sc *scene.Scene, sorted []geom.Polygon) []Entry {
	out := make([]Entry, len(sorted))
	for i, p := range sorted {
		out[i] = Entry{
			Index:    i,
			Object:   sc.Name(p.Anchor),
			Anchor:   p.Anchor,
			Normal:   p.Normal,
			Offset:   p.Offset,
			Centroid: p.Centroid(),
			Area:     p.Area(),
			Points:   p.Points,
		}
	}
	return out
}

// NewSummary describes sorting inputs polygons into sorted at depth.
func NewSummary(view geom.Vec, inputs int, sorted []geom.Polygon, depth int) Summary {
	return Summary{
		View:      view,
		Inputs:    inputs,
		Polygons:  len(sorted),
		Fragments: len(sorted) - inputs,
		Depth:     depth,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("view %s: %d polygons from %d inputs, %d split fragments, tree depth %d",
		FormatVec(s.View), s.Polygons, s.Inputs, s.Fragments, s.Depth)
}

// WriteJSON writes the summary and entries as one indented document.
func WriteJSON(w io.Writer, s Summary, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	doc := struct {
		Summary
		Order []Entry `json:"order"`
	}{s, entries}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

// Headers are the table columns shared by the CLI and the viewer.
var Headers = []string{"#", "object", "anchor", "normal", "offset", "centroid", "area"}

// Cells formats e as table cells matching Headers.
func (e Entry) Cells() []string {
	return []string{
		fmt.Sprintf("%d", e.Index),
		e.Object,
		fmt.Sprintf("%d", e.Anchor),
		FormatVec(e.Normal),
		fmt.Sprintf("%.3f", e.Offset),
		FormatVec(e.Centroid),
		fmt.Sprintf("%.3f", e.Area),
	}
}

// FormatVec prints v with two decimals per component.
func FormatVec(v geom.Vec) string {
	return fmt.Sprintf("(%.2f %.2f %.2f)", v.X, v.Y, v.Z)
}

// Table renders entries as a bordered table, far polygons first.
func Table(entries []Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return objectStyle
			default:
				return cellStyle
			}
		})
	for _, e := range entries {
		t.Row(e.Cells()...)
	}
	return t.Render()
}

// Title renders the summary line above the table.
func Title(s Summary) string {
	return titleStyle.Render(s.String())
}
