// Package scene builds polygon soups for sorting. Scenes are described
// either in a small Lisp dialect evaluated by zygomys or as YAML files
// listing polygons directly.
//
// Every named object in a scene owns one anchor. All polygons of an
// object, and every fragment the splitter later cuts from them, carry
// that anchor, so sorted output can be traced back to the object.
package scene

import (
	"fmt"

	"github.com/chazu/planesplit/pkg/geom"
)

// Scene is a set of named objects made of planar polygons.
type Scene struct {
	Polygons []geom.Polygon
	Names    []string // indexed by anchor
	View     geom.Vec // camera look direction
}

// New returns an empty scene looking along DefaultView.
func New() *Scene {
	return &Scene{View: DefaultView}
}

// Add registers an object and returns its anchor. The anchor is written
// into every polygon.
func (s *Scene) Add(name string, polys ...geom.Polygon) int {
	anchor := len(s.Names)
	s.Names = append(s.Names, name)
	for _, p := range polys {
		p.Anchor = anchor
		s.Polygons = append(s.Polygons, p)
	}
	return anchor
}

// Name returns the name of the object owning anchor.
func (s *Scene) Name(anchor int) string {
	if anchor < 0 || anchor >= len(s.Names) {
		return fmt.Sprintf("#%d", anchor)
	}
	return s.Names[anchor]
}

// Objects returns the number of named objects.
func (s *Scene) Objects() int {
	return len(s.Names)
}

// SetView sets the camera look direction. A zero vector is rejected.
func (s *Scene) SetView(v geom.Vec) error {
	if v.Length() < geom.Epsilon {
		return fmt.Errorf("%w: %v", ErrZeroView, v)
	}
	s.View = v
	return nil
}
