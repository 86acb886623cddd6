package geom

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// Polygon is a convex planar quadrilateral. Triangles repeat their last
// point. All points lie on the plane Normal·p = Offset.
type Polygon struct {
	Points [4]Vec  `json:"points"`
	Normal Vec     `json:"normal"`
	Offset float64 `json:"offset"`
	Anchor int     `json:"anchor"` // ties split fragments to their source
}

// FromPoints builds a polygon from four points in winding order. The
// normal follows the right-hand rule over that winding.
func FromPoints(p0, p1, p2, p3 Vec, anchor int) (Polygon, error) {
	n := p2.Sub(p0).Cross(p3.Sub(p1))
	if n.Length() < degenerateLength {
		return Polygon{}, fmt.Errorf("%w: points %v %v %v %v", ErrDegenerate, p0, p1, p2, p3)
	}
	n = n.Normalize()
	return Polygon{
		Points: [4]Vec{p0, p1, p2, p3},
		Normal: n,
		Offset: n.Dot(p0),
		Anchor: anchor,
	}, nil
}

// NewTriangle builds a triangle polygon.
func NewTriangle(a, b, c Vec, anchor int) (Polygon, error) {
	return FromPoints(a, b, c, c, anchor)
}

// SignedDistanceTo returns the distance of point from the polygon's
// plane, positive on the side the normal points to.
func (p Polygon) SignedDistanceTo(point Vec) float64 {
	return p.Normal.Dot(point) - p.Offset
}

// SignedDistanceSumTo sums the signed distances of other's points from
// the plane of p.
func (p Polygon) SignedDistanceSumTo(other Polygon) float64 {
	var sum float64
	for _, pt := range other.Points {
		sum += p.SignedDistanceTo(pt)
	}
	return sum
}

// IsValid reports whether all points lie on the plane and the outline
// turns the same way at every corner.
func (p Polygon) IsValid() bool {
	for _, pt := range p.Points {
		if !approxZero(p.SignedDistanceTo(pt)) {
			return false
		}
	}
	var edges [4]Vec
	for i := range p.Points {
		edges[i] = p.Points[(i+1)%4].Sub(p.Points[i])
	}
	ref := edges[3].Cross(edges[0])
	for i := 0; i < 3; i++ {
		if edges[i].Cross(edges[i+1]).Dot(ref) < 0 {
			return false
		}
	}
	return true
}

// Area returns the polygon's area.
func (p Polygon) Area() float64 {
	d := p.Points[2].Sub(p.Points[0]).Cross(p.Points[3].Sub(p.Points[1]))
	return d.Length() / 2
}

// Centroid returns the average of the polygon's points.
func (p Polygon) Centroid() Vec {
	var c Vec
	for _, pt := range p.Points {
		c = c.Add(pt)
	}
	return c.MulScalar(0.25)
}

// Transform applies m to every point and recomputes the plane.
func (p Polygon) Transform(m sdf.M44) (Polygon, error) {
	var pts [4]Vec
	for i, pt := range p.Points {
		pts[i] = m.MulPosition(pt)
	}
	return FromPoints(pts[0], pts[1], pts[2], pts[3], p.Anchor)
}

func (p Polygon) String() string {
	return fmt.Sprintf("polygon#%d n=(%.3g %.3g %.3g) d=%.3g",
		p.Anchor, p.Normal.X, p.Normal.Y, p.Normal.Z, p.Offset)
}
