package geom

// Line is an infinite line through Origin along the unit vector Dir.
type Line struct {
	Origin Vec
	Dir    Vec
}

// IsValid reports whether Dir has unit length.
func (l Line) IsValid() bool {
	return approxZero(l.Dir.Dot(l.Dir) - 1)
}

// Matches reports whether l and other describe the same line.
func (l Line) Matches(other Line) bool {
	diff := l.Origin.Sub(other.Origin)
	c1 := l.Dir.Cross(other.Dir)
	c2 := l.Dir.Cross(diff)
	return approxZero(c1.Dot(c1)) && approxZero(c2.Dot(c2))
}

// intersectEdge returns the parameter t at which the segment
// start + t*(end-start) meets the line, assuming both lie in one plane.
// It reports false when the segment runs parallel to the line.
func (l Line) intersectEdge(start, end Vec) (float64, bool) {
	edge := end.Sub(start)
	origin := l.Origin.Sub(start)
	// Project both onto the plane orthogonal to the line and solve there.
	pr := origin.Sub(l.Dir.MulScalar(l.Dir.Dot(origin)))
	pb := edge.Sub(l.Dir.MulScalar(l.Dir.Dot(edge)))
	denom := pb.Dot(pb)
	if approxZero(denom) {
		return 0, false
	}
	return pr.Dot(pb) / denom, true
}
