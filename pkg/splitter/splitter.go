// Package splitter orders polygons for painter's-algorithm rendering.
//
// A Splitter accumulates polygons once per scene and can then be queried
// for any number of view directions. Splitters are not safe for
// concurrent use.
package splitter

import (
	"github.com/chazu/planesplit/pkg/bsp"
	"github.com/chazu/planesplit/pkg/geom"
)

// Splitter orders a set of polygons for a view direction, splitting
// polygons where no consistent order exists otherwise.
type Splitter interface {
	// Reset discards all polygons.
	Reset()
	// Add takes ownership of poly. It may be stored as several fragments.
	Add(poly geom.Polygon)
	// Sort returns every stored polygon and fragment in back-to-front
	// order for a camera looking along view. The result is only valid
	// until the next call to Sort, Add or Reset.
	Sort(view geom.Vec) []geom.Polygon
	// Solve replaces the stored polygons with polys and sorts them.
	Solve(polys []geom.Polygon, view geom.Vec) []geom.Polygon
}

// Compile-time interface check.
var _ Splitter = (*BspSplitter)(nil)

// BspSplitter implements Splitter with a BSP tree.
type BspSplitter struct {
	tree   *bsp.Node[geom.Polygon]
	result []geom.Polygon
}

// New returns an empty BspSplitter.
func New() *BspSplitter {
	return &BspSplitter{tree: bsp.New[geom.Polygon]()}
}

// Reset discards all polygons. The result buffer is kept for reuse.
func (s *BspSplitter) Reset() {
	s.tree = bsp.New[geom.Polygon]()
}

// Add inserts poly into the tree.
func (s *BspSplitter) Add(poly geom.Polygon) {
	s.tree.Insert(poly)
}

// Sort walks the tree with a probe polygon facing view. view is the
// direction the camera looks in, not the direction toward the viewer, so
// the polygon farthest along view comes first. The probe has no extent;
// only its normal takes part in the walk.
func (s *BspSplitter) Sort(view geom.Vec) []geom.Polygon {
	probe := geom.Polygon{Normal: view}
	s.result = s.result[:0]
	s.tree.Order(probe, &s.result)
	return s.result
}

// Solve resets the splitter, adds polys and sorts for view.
func (s *BspSplitter) Solve(polys []geom.Polygon, view geom.Vec) []geom.Polygon {
	s.Reset()
	for _, p := range polys {
		s.Add(p)
	}
	return s.Sort(view)
}

// Len returns the number of stored polygons, split fragments included.
func (s *BspSplitter) Len() int {
	return s.tree.Len()
}

// Depth returns the depth of the underlying tree.
func (s *BspSplitter) Depth() int {
	return s.tree.Depth()
}
