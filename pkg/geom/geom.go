// Package geom provides the planar polygon primitives used to build a
// painter's order: signed distances to planes, plane/plane intersection,
// splitting a polygon by a line and the BSP cut rule built on them.
//
// Vectors are sdfx v3.Vec values so that polygons can be produced
// directly from sdfx solids and transformed by sdfx matrices.
package geom

import (
	"errors"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec is a point or direction in 3D space.
type Vec = v3.Vec

// Epsilon is the tolerance of every approximate comparison in this
// package. Distances, dot products and squared cross lengths below it
// are treated as zero.
const Epsilon = 1e-6

// degenerateLength bounds the diagonal cross product of a polygon with
// no usable area.
const degenerateLength = 1e-12

// ErrDegenerate is returned when points do not span a plane.
var ErrDegenerate = errors.New("geom: degenerate polygon")

func approxZero(v float64) bool {
	return math.Abs(v) < Epsilon
}
