package geom

import "github.com/chazu/planesplit/pkg/bsp"

var _ bsp.Plane[Polygon] = Polygon{}

// Cut classifies other against the plane of p. Coplanar polygons at zero
// distance are siblings. Polygons the plane does not cross go wholesale
// to one side. Only a genuine intersection line splits other, and each
// piece is then re-classified by its own distance sum.
func (p Polygon) Cut(other Polygon) bsp.PlaneCut[Polygon] {
	dist := p.SignedDistanceSumTo(other)
	inter := p.Intersect(other)

	switch inter.Kind {
	case Coplanar:
		if approxZero(dist) {
			return bsp.Sibling(other)
		}
		// Near-parallel planes at a distance fall through to the
		// wholesale classification.
	case Inside:
		extra := other.Split(inter.Line)
		var front, back []Polygon
		for _, piece := range append([]Polygon{other}, extra...) {
			if p.SignedDistanceSumTo(piece) > 0 {
				front = append(front, piece)
			} else {
				back = append(back, piece)
			}
		}
		return bsp.Cut(front, back)
	}

	if dist > 0 {
		return bsp.Cut([]Polygon{other}, nil)
	}
	return bsp.Cut(nil, []Polygon{other})
}

// IsAligned reports whether the normals of p and other point into the
// same half-space.
func (p Polygon) IsAligned(other Polygon) bool {
	return p.Normal.Dot(other.Normal) > 0
}
