package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/scene"
	"github.com/chazu/planesplit/pkg/splitter"
)

func sortedPair(t *testing.T) (*scene.Scene, []geom.Polygon) {
	t.Helper()
	sc := scene.New()
	sc.Add("low", geom.FromRect(0, 0, 1, 1, 0))
	high, err := geom.FromPoints(
		geom.Vec{Z: 1}, geom.Vec{X: 1, Z: 1}, geom.Vec{X: 1, Y: 1, Z: 1}, geom.Vec{Y: 1, Z: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	sc.Add("high", high)
	return sc, splitter.New().Solve(sc.Polygons, geom.Vec{Z: 1})
}

func TestEntries(t *testing.T) {
	sc, sorted := sortedPair(t)
	entries := Entries(sc, sorted)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Object != "high" || entries[1].Object != "low" {
		t.Errorf("objects = [%s %s], want [high low]", entries[0].Object, entries[1].Object)
	}
	for i, e := range entries {
		if e.Index != i {
			t.Errorf("entry %d index = %d", i, e.Index)
		}
		if e.Area != 1 {
			t.Errorf("entry %d area = %f, want 1", i, e.Area)
		}
		if cells := e.Cells(); len(cells) != len(Headers) {
			t.Errorf("entry %d has %d cells for %d headers", i, len(cells), len(Headers))
		}
	}
}

func TestSummary(t *testing.T) {
	_, sorted := sortedPair(t)
	s := NewSummary(geom.Vec{Z: 1}, 1, sorted, 2)
	if s.Fragments != 1 || s.Polygons != 2 {
		t.Errorf("summary = %+v, want 2 polygons and 1 fragment", s)
	}
	if !strings.Contains(s.String(), "tree depth 2") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestWriteJSON(t *testing.T) {
	sc, sorted := sortedPair(t)
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewSummary(sc.View, 2, sorted, 2), Entries(sc, sorted)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc struct {
		Polygons int `json:"polygons"`
		Order    []struct {
			Object string `json:"object"`
			Anchor int    `json:"anchor"`
		} `json:"order"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc.Polygons != 2 || len(doc.Order) != 2 || doc.Order[0].Object != "high" || doc.Order[0].Anchor != 1 {
		t.Errorf("decoded %+v", doc)
	}
}

func TestTable(t *testing.T) {
	sc, sorted := sortedPair(t)
	out := Table(Entries(sc, sorted))
	for _, want := range []string{"object", "high", "low"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "high") > strings.Index(out, "low") {
		t.Errorf("table lists low before high:\n%s", out)
	}
}
