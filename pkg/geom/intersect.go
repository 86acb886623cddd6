package geom

// IntersectionKind classifies how the planes of two polygons meet.
type IntersectionKind int

const (
	Coplanar IntersectionKind = iota // planes are the same up to tolerance
	Outside                          // one polygon lies wholly on one side of the other's plane
	Inside                           // the common line crosses both polygons' planes within their extent
)

func (k IntersectionKind) String() string {
	switch k {
	case Coplanar:
		return "coplanar"
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	default:
		return "unknown"
	}
}

// Intersection is the result of Polygon.Intersect. Line is set only for
// Inside.
type Intersection struct {
	Kind IntersectionKind
	Line Line
}

// Intersect classifies other against p. When neither polygon lies
// strictly on one side of the other's plane and the planes are not
// parallel, the returned line is common to both planes.
func (p Polygon) Intersect(other Polygon) Intersection {
	if p.outside(other) || other.outside(p) {
		return Intersection{Kind: Outside}
	}
	cross := p.Normal.Cross(other.Normal)
	if cross.Dot(cross) < Epsilon {
		return Intersection{Kind: Coplanar}
	}
	// Write the origin as a*n1 + b*n2 and solve n1·x = d1, n2·x = d2.
	w := p.Normal.Dot(other.Normal)
	factor := 1 / (1 - w*w)
	a := (p.Offset - other.Offset*w) * factor
	b := (other.Offset - p.Offset*w) * factor
	return Intersection{
		Kind: Inside,
		Line: Line{
			Origin: p.Normal.MulScalar(a).Add(other.Normal.MulScalar(b)),
			Dir:    cross.Normalize(),
		},
	}
}

// outside reports whether every point of other lies strictly on the same
// side of p's plane.
func (p Polygon) outside(other Polygon) bool {
	d0 := p.SignedDistanceTo(other.Points[0])
	for _, pt := range other.Points[1:] {
		if p.SignedDistanceTo(pt)*d0 <= 0 {
			return false
		}
	}
	return true
}
