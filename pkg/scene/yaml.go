package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/chazu/planesplit/pkg/geom"
	"gopkg.in/yaml.v3"
)

// yamlScene is the file form of a scene:
//
//	view: [0, 0, -1]
//	polygons:
//	  - name: floor
//	    points: [[0, 0, 0], [4, 0, 0], [4, 4, 0], [0, 4, 0]]
type yamlScene struct {
	View     []float64     `yaml:"view,omitempty"`
	Polygons []yamlPolygon `yaml:"polygons"`
}

type yamlPolygon struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

// LoadYAML reads a scene listing polygons by their points. Entries have
// three or four points and entries sharing a name form one object. A
// missing view falls back to DefaultView. An empty document is an empty
// scene.
func LoadYAML(r io.Reader) (*Scene, error) {
	var doc yamlScene
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decode yaml: %w", err)
	}

	sc := New()
	if doc.View != nil {
		v, err := toVec(doc.View)
		if err != nil {
			return nil, fmt.Errorf("%w: view: %v", ErrInvalidScene, err)
		}
		if err := sc.SetView(v); err != nil {
			return nil, err
		}
	}

	var order []string
	objects := make(map[string][]geom.Polygon)
	for i, yp := range doc.Polygons {
		name := yp.Name
		if name == "" {
			name = fmt.Sprintf("polygon-%d", i)
		}
		if n := len(yp.Points); n != 3 && n != 4 {
			return nil, fmt.Errorf("%w: %s: want 3 or 4 points, got %d", ErrInvalidScene, name, n)
		}
		var pts [4]geom.Vec
		for j, raw := range yp.Points {
			v, err := toVec(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: point %d: %v", ErrInvalidScene, name, j, err)
			}
			pts[j] = v
		}
		if len(yp.Points) == 3 {
			pts[3] = pts[2]
		}
		p, err := geom.FromPoints(pts[0], pts[1], pts[2], pts[3], 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScene, name, err)
		}
		if _, ok := objects[name]; !ok {
			order = append(order, name)
		}
		objects[name] = append(objects[name], p)
	}
	for _, name := range order {
		sc.Add(name, objects[name]...)
	}
	return sc, nil
}

// WriteYAML writes sc in the form read by LoadYAML, one entry per
// polygon.
func WriteYAML(w io.Writer, sc *Scene) error {
	doc := yamlScene{View: []float64{sc.View.X, sc.View.Y, sc.View.Z}}
	for _, p := range sc.Polygons {
		yp := yamlPolygon{Name: sc.Name(p.Anchor)}
		n := 4
		if p.Points[3] == p.Points[2] {
			n = 3
		}
		for _, pt := range p.Points[:n] {
			yp.Points = append(yp.Points, []float64{pt.X, pt.Y, pt.Z})
		}
		doc.Polygons = append(doc.Polygons, yp)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("scene: encode yaml: %w", err)
	}
	return enc.Close()
}

func toVec(raw []float64) (geom.Vec, error) {
	if len(raw) != 3 {
		return geom.Vec{}, fmt.Errorf("want 3 coordinates, got %d", len(raw))
	}
	return geom.Vec{X: raw[0], Y: raw[1], Z: raw[2]}, nil
}
