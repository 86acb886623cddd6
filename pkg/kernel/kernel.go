// Package kernel defines the solid modeling interface used to turn
// primitive solids into polygons for sorting. Implementations (sdfx)
// tessellate their surfaces into triangle polygons that share one anchor
// per solid.
package kernel

import (
	"errors"

	"github.com/chazu/planesplit/pkg/geom"
)

// ErrEmptySolid is returned when tessellating a solid yields no surface.
var ErrEmptySolid = errors.New("kernel: solid has no surface")

// Solid is an opaque handle to a kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel builds and tessellates solids.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// ToPolygons tessellates the surface of s. Every polygon carries
	// anchor.
	ToPolygons(s Solid, anchor int) ([]geom.Polygon, error)
}
