package geom

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// FromRect returns the rectangle [x, x+w] x [y, y+h] in the z=0 plane,
// facing +z.
func FromRect(x, y, w, h float64, anchor int) Polygon {
	return Polygon{
		Points: [4]Vec{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		},
		Normal: Vec{Z: 1},
		Anchor: anchor,
	}
}

// FromTransformedRect returns FromRect moved into place by m.
func FromTransformedRect(x, y, w, h float64, m sdf.M44, anchor int) (Polygon, error) {
	return FromRect(x, y, w, h, anchor).Transform(m)
}

// Box returns the six outward facing faces of an axis-aligned box with
// its minimum corner at the origin.
func Box(size Vec, anchor int) ([]Polygon, error) {
	x, y, z := Vec{X: size.X}, Vec{Y: size.Y}, Vec{Z: size.Z}
	faces := []struct{ origin, u, v Vec }{
		{Vec{}, y, x}, // -z
		{z, x, y},     // +z
		{Vec{}, x, z}, // -y
		{y, z, x},     // +y
		{Vec{}, z, y}, // -x
		{x, y, z},     // +x
	}
	polys := make([]Polygon, 0, len(faces))
	for _, f := range faces {
		p, err := FromPoints(f.origin, f.origin.Add(f.u), f.origin.Add(f.u).Add(f.v), f.origin.Add(f.v), anchor)
		if err != nil {
			return nil, fmt.Errorf("geom: box %v: %w", size, err)
		}
		polys = append(polys, p)
	}
	return polys, nil
}
