package geom

// Split cuts p along line. p is rewritten in place as the first piece
// and the remaining zero to two pieces are returned. All pieces keep p's
// plane and anchor and have non-zero area. A line outside p's plane, one
// that meets the outline in fewer than two edge points, or one that only
// grazes a vertex leaves p untouched.
func (p *Polygon) Split(line Line) []Polygon {
	if !approxZero(p.Normal.Dot(line.Dir)) || !approxZero(p.SignedDistanceTo(line.Origin)) {
		return nil
	}

	// cuts[i] is where the line crosses the edge Points[i] -> Points[i+1].
	// A vertex belongs to the edge it starts; the tolerance window keeps
	// rounding from counting it on both of its edges.
	var cuts [4]Vec
	var hit [4]bool
	for i := range p.Points {
		a, b := p.Points[i], p.Points[(i+1)%4]
		t, ok := line.intersectEdge(a, b)
		if ok && t >= -Epsilon && t < 1-Epsilon {
			cuts[i] = a.Add(b.Sub(a).MulScalar(t))
			hit[i] = true
		}
	}

	first, second := -1, -1
	for i, h := range hit {
		if !h {
			continue
		}
		if first < 0 {
			first = i
		} else {
			second = i
			break
		}
	}
	if second < 0 {
		return nil
	}

	a, b := cuts[first], cuts[second]
	pts := p.Points
	at := func(i int) Vec { return pts[(first+i)%4] }

	var outlines [][4]Vec
	switch second - first {
	case 2:
		// Opposite edges: two quads.
		outlines = [][4]Vec{
			{at(0), a, b, at(3)},
			{a, at(1), at(2), b},
		}
	case 1:
		// Adjacent edges around corner first+1: cut that corner off and
		// split the remaining pentagon into a quad and a triangle.
		outlines = [][4]Vec{
			{a, at(1), b, b},
			{b, at(2), at(3), at(0)},
			{at(0), a, b, b},
		}
	case 3:
		// Edges 0 and 3 meet at corner 0.
		outlines = [][4]Vec{
			{at(0), a, b, b},
			{at(1), at(2), at(3), b},
			{a, at(1), b, b},
		}
	}

	// A line entering through a vertex leaves slivers with no area.
	var pieces []Polygon
	for _, q := range outlines {
		piece := Polygon{Points: compact(q), Normal: p.Normal, Offset: p.Offset, Anchor: p.Anchor}
		if piece.Area() >= Epsilon {
			pieces = append(pieces, piece)
		}
	}
	if len(pieces) < 2 {
		return nil
	}
	*p = pieces[0]
	return pieces[1:]
}

// compact drops repeated consecutive points from q, wrapping around, and
// pads the result by repeating its last point.
func compact(q [4]Vec) [4]Vec {
	var out [4]Vec
	n := 0
	for _, pt := range q {
		if n > 0 && samePoint(out[n-1], pt) {
			continue
		}
		out[n] = pt
		n++
	}
	for n > 1 && samePoint(out[n-1], out[0]) {
		n--
	}
	for i := n; i < 4; i++ {
		out[i] = out[n-1]
	}
	return out
}

func samePoint(a, b Vec) bool {
	return a.Sub(b).Length() < Epsilon
}
