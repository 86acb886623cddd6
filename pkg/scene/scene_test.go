package scene_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/scene"
)

func TestAddAssignsAnchors(t *testing.T) {
	sc := scene.New()
	a := geom.FromRect(0, 0, 1, 1, 42)
	b := geom.FromRect(2, 0, 1, 1, 42)

	if got := sc.Add("left", a); got != 0 {
		t.Errorf("first anchor = %d, want 0", got)
	}
	if got := sc.Add("pair", a, b); got != 1 {
		t.Errorf("second anchor = %d, want 1", got)
	}
	want := []int{0, 1, 1}
	for i, p := range sc.Polygons {
		if p.Anchor != want[i] {
			t.Errorf("polygon %d anchor = %d, want %d", i, p.Anchor, want[i])
		}
	}
	if sc.Name(1) != "pair" {
		t.Errorf("Name(1) = %q, want pair", sc.Name(1))
	}
	if sc.Name(7) != "#7" {
		t.Errorf("Name(7) = %q, want #7", sc.Name(7))
	}
}

func TestSetView(t *testing.T) {
	sc := scene.New()
	if err := sc.SetView(geom.Vec{}); !errors.Is(err, scene.ErrZeroView) {
		t.Errorf("SetView(zero) error = %v, want ErrZeroView", err)
	}
	if sc.View != scene.DefaultView {
		t.Errorf("rejected view changed the scene to %v", sc.View)
	}
	if err := sc.SetView(geom.Vec{X: 1}); err != nil || sc.View != (geom.Vec{X: 1}) {
		t.Errorf("SetView(+x) = %v, view %v", err, sc.View)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	eng := scene.NewEngine()

	sc, err := scene.Load(write("room.yaml", roomYAML), eng)
	if err != nil {
		t.Fatalf("Load(yaml): %v", err)
	}
	if len(sc.Polygons) != 4 {
		t.Errorf("yaml scene has %d polygons, want 4", len(sc.Polygons))
	}

	sc, err = scene.Load(write("pair.zy", `
(quad "low" (vec3 0 0 0) (vec3 1 0 0) (vec3 1 1 0) (vec3 0 1 0))
(quad "high" (vec3 0 0 1) (vec3 1 0 1) (vec3 1 1 1) (vec3 0 1 1))
`), eng)
	if err != nil {
		t.Fatalf("Load(zy): %v", err)
	}
	if sc.Objects() != 2 {
		t.Errorf("source scene has %d objects, want 2", sc.Objects())
	}

	if _, err := scene.Load(write("broken.zy", `(quad "x"`), eng); err == nil {
		t.Error("Load(broken source) succeeded")
	}
	if _, err := scene.Load(filepath.Join(dir, "missing.yaml"), eng); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
