package scene

import (
	"math"
	"testing"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/splitter"
)

func mustEvaluate(t *testing.T, eng *Engine, source string) *Scene {
	t.Helper()
	sc, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return sc
}

func TestQuadTriRect(t *testing.T) {
	eng := NewEngine()
	source := `
; a floor, a wall and a roof triangle
(def origin (vec3 0 0 0))
(quad "floor" origin (vec3 4 0 0) (vec3 4 4 0) (vec3 0 4 0))
(rect "back-wall" :origin (vec3 0 4 0) :u (vec3 4 0 0) :v (vec3 0 0 3))
(tri "gable" (vec3 0 4 3) (vec3 4 4 3) (vec3 2 4 5))
`
	sc := mustEvaluate(t, eng, source)
	if len(sc.Polygons) != 3 {
		t.Fatalf("got %d polygons, want 3", len(sc.Polygons))
	}
	wantNames := []string{"floor", "back-wall", "gable"}
	for i, p := range sc.Polygons {
		if p.Anchor != i {
			t.Errorf("polygon %d anchor = %d, want %d", i, p.Anchor, i)
		}
		if got := sc.Name(p.Anchor); got != wantNames[i] {
			t.Errorf("Name(%d) = %q, want %q", p.Anchor, got, wantNames[i])
		}
		if !p.IsValid() {
			t.Errorf("polygon %q is not valid", wantNames[i])
		}
	}
	if n := sc.Polygons[0].Normal; math.Abs(n.Z-1) > 1e-9 {
		t.Errorf("floor normal = %v, want +z", n)
	}
	if gable := sc.Polygons[2]; gable.Points[3] != gable.Points[2] {
		t.Errorf("triangle should repeat its last point, got %v", gable.Points)
	}
}

func TestView(t *testing.T) {
	eng := NewEngine()
	sc := mustEvaluate(t, eng, `(view (vec3 1 2 3))`)
	if sc.View != (geom.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("View = %v, want (1 2 3)", sc.View)
	}

	sc = mustEvaluate(t, eng, `(view [0 1 0])`)
	if sc.View != (geom.Vec{Y: 1}) {
		t.Errorf("View from array = %v, want (0 1 0)", sc.View)
	}
}

func TestBoxPlacement(t *testing.T) {
	eng := NewEngine()
	sc := mustEvaluate(t, eng, `(box "crate" :size (vec3 2 2 2) :at (vec3 10 0 0))`)
	if len(sc.Polygons) != 6 {
		t.Fatalf("got %d faces, want 6", len(sc.Polygons))
	}
	for _, p := range sc.Polygons {
		if p.Anchor != 0 {
			t.Errorf("face anchor = %d, want 0", p.Anchor)
		}
		for _, pt := range p.Points {
			if pt.X < 10-1e-9 || pt.X > 12+1e-9 {
				t.Fatalf("point %v outside the placed box", pt)
			}
		}
	}
}

func TestBoxRotate(t *testing.T) {
	eng := NewEngine()
	sc := mustEvaluate(t, eng, `(box "beam" :size (vec3 4 1 1) :rotate (vec3 0 0 90))`)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range sc.Polygons {
		for _, pt := range p.Points {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if math.Abs((maxX-minX)-1) > 1e-6 || math.Abs((maxY-minY)-4) > 1e-6 {
		t.Errorf("rotated extents = (%f, %f), want (1, 4)", maxX-minX, maxY-minY)
	}
}

func TestMeshedSolids(t *testing.T) {
	eng := NewEngineWithOptions(Options{MeshCells: 8})
	source := `
(box "meshed" :size (vec3 2 2 2) :mesh true)
(cylinder "post" :height 4 :radius 1 :at (vec3 5 0 0))
`
	sc := mustEvaluate(t, eng, source)
	if sc.Objects() != 2 {
		t.Fatalf("got %d objects, want 2", sc.Objects())
	}
	counts := map[int]int{}
	for _, p := range sc.Polygons {
		counts[p.Anchor]++
	}
	if counts[0] < 12 || counts[1] == 0 {
		t.Errorf("polygon counts per anchor = %v", counts)
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"degenerate quad", `(quad "line" (vec3 0 0 0) (vec3 1 0 0) (vec3 2 0 0) (vec3 3 0 0))`},
		{"quad missing point", `(quad "q" (vec3 0 0 0) (vec3 1 0 0) (vec3 1 1 0))`},
		{"quad without name", `(quad (vec3 0 0 0) (vec3 1 0 0) (vec3 1 1 0) (vec3 0 1 0))`},
		{"vec3 arity", `(vec3 1 2)`},
		{"vec3 non-number", `(vec3 1 2 "three")`},
		{"zero view", `(view (vec3 0 0 0))`},
		{"cylinder missing radius", `(cylinder "c" :height 2)`},
		{"cylinder negative height", `(cylinder "c" :height -2 :radius 1)`},
		{"box bad size", `(box "b" :size 3)`},
	}
	eng := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, evalErrs, err := eng.Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if sc != nil {
				t.Error("expected nil scene")
			}
			if len(evalErrs) == 0 {
				t.Error("expected eval errors")
			}
		})
	}
}

func TestSceneSortsFloorUnderBox(t *testing.T) {
	eng := NewEngine()
	source := `
(quad "floor" (vec3 -5 -5 0) (vec3 5 -5 0) (vec3 5 5 0) (vec3 -5 5 0))
(box "crate" :size (vec3 1 1 1) :at (vec3 0 0 1))
(view (vec3 0 0 -1))
`
	sc := mustEvaluate(t, eng, source)
	if len(sc.Polygons) != 7 {
		t.Fatalf("got %d polygons, want 7", len(sc.Polygons))
	}

	s := splitter.New()
	got := s.Solve(sc.Polygons, sc.View)
	if len(got) != 7 {
		t.Fatalf("sorted %d polygons, want 7 (nothing straddles)", len(got))
	}
	// Looking down, the floor is farthest and is painted first.
	if name := sc.Name(got[0].Anchor); name != "floor" {
		t.Errorf("first painted object = %q, want floor", name)
	}
}
