package kernel

import (
	"errors"
	"testing"

	"github.com/chazu/planesplit/pkg/geom"
)

// stubSolid is a box-shaped Solid described only by its bounds.
type stubSolid struct {
	minBB, maxBB [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return s.minBB, s.maxBB
}

// stubKernel tessellates every solid into its bounding box faces.
type stubKernel struct{}

func (k *stubKernel) Box(x, y, z float64) Solid {
	return &stubSolid{maxBB: [3]float64{x, y, z}}
}

func (k *stubKernel) Cylinder(height, radius float64) Solid {
	return &stubSolid{
		minBB: [3]float64{-radius, -radius, -height / 2},
		maxBB: [3]float64{radius, radius, height / 2},
	}
}

func (k *stubKernel) Translate(s Solid, x, y, z float64) Solid {
	min, max := s.BoundingBox()
	d := [3]float64{x, y, z}
	for i := range d {
		min[i] += d[i]
		max[i] += d[i]
	}
	return &stubSolid{minBB: min, maxBB: max}
}

func (k *stubKernel) Rotate(s Solid, _, _, _ float64) Solid { return s }

func (k *stubKernel) ToPolygons(s Solid, anchor int) ([]geom.Polygon, error) {
	min, max := s.BoundingBox()
	size := geom.Vec{X: max[0] - min[0], Y: max[1] - min[1], Z: max[2] - min[2]}
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, ErrEmptySolid
	}
	return geom.Box(size, anchor)
}

// Compile-time checks that the stubs implement the interfaces.
var _ Solid = (*stubSolid)(nil)
var _ Kernel = (*stubKernel)(nil)

func TestStubKernelBoxBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s := k.Translate(k.Box(10, 20, 30), 1, 2, 3)
	min, max := s.BoundingBox()
	if min != [3]float64{1, 2, 3} {
		t.Errorf("Box min = %v, want [1 2 3]", min)
	}
	if max != [3]float64{11, 22, 33} {
		t.Errorf("Box max = %v, want [11 22 33]", max)
	}
}

func TestStubKernelToPolygons(t *testing.T) {
	var k Kernel = &stubKernel{}
	polys, err := k.ToPolygons(k.Box(1, 1, 1), 7)
	if err != nil {
		t.Fatalf("ToPolygons() error = %v", err)
	}
	if len(polys) != 6 {
		t.Fatalf("ToPolygons() returned %d polygons, want 6", len(polys))
	}
	for _, p := range polys {
		if p.Anchor != 7 {
			t.Errorf("polygon anchor = %d, want 7", p.Anchor)
		}
	}

	_, err = k.ToPolygons(k.Box(0, 1, 1), 0)
	if !errors.Is(err, ErrEmptySolid) {
		t.Errorf("ToPolygons(flat box) error = %v, want ErrEmptySolid", err)
	}
}
