package scene

import (
	"fmt"
	"strings"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/kernel"
	"github.com/chazu/planesplit/pkg/kernel/sdfx"
	"github.com/deadsy/sdfx/sdf"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a geom.Vec.
type sexpVec3 struct {
	vec geom.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpObject is returned by every builtin that adds an object.
type sexpObject struct {
	name   string
	anchor int
	polys  int
}

func (o *sexpObject) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(object %q #%d %d polygons)", o.name, o.anchor, o.polys)
}
func (o *sexpObject) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// vec returns keyword name as a vector, or def when it is absent.
func (a kwArgs) vec(name string, def geom.Vec) (geom.Vec, error) {
	v, ok := a.kw[name]
	if !ok {
		return def, nil
	}
	out, err := toVec3(v)
	if err != nil {
		return geom.Vec{}, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// float returns keyword name as a number. Required keywords must be present.
func (a kwArgs) float(name string, required bool, def float64) (float64, error) {
	v, ok := a.kw[name]
	if !ok {
		if required {
			return 0, fmt.Errorf("missing :%s", name)
		}
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool accepts booleans only; nil is false.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return false, nil
		}
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 accepts a vec3 value or a list or array of three numbers.
func toVec3(s zygo.Sexp) (geom.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	items, err := sexpListToSlice(s)
	if err != nil || len(items) != 3 {
		return geom.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
	}
	var xyz [3]float64
	for i, item := range items {
		if xyz[i], err = toFloat64(item); err != nil {
			return geom.Vec{}, err
		}
	}
	return geom.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// objectName reads the leading name argument shared by every object builtin.
func objectName(fn string, pa kwArgs) (string, error) {
	if len(pa.positional) == 0 {
		return "", fmt.Errorf("%s: missing name", fn)
	}
	name, err := toString(pa.positional[0])
	if err != nil {
		return "", fmt.Errorf("%s: name: %w", fn, err)
	}
	return name, nil
}

// placement builds the transform for :at and :rotate (Euler degrees).
func placement(pa kwArgs) (sdf.M44, error) {
	at, err := pa.vec("at", geom.Vec{})
	if err != nil {
		return sdf.M44{}, err
	}
	rot, err := pa.vec("rotate", geom.Vec{})
	if err != nil {
		return sdf.M44{}, err
	}
	return sdf.Translate3d(at).Mul(sdfx.EulerRotation(rot.X, rot.Y, rot.Z)), nil
}

// solid rotates then moves s by :rotate and :at and tessellates it.
func solid(k kernel.Kernel, s kernel.Solid, pa kwArgs) ([]geom.Polygon, error) {
	at, err := pa.vec("at", geom.Vec{})
	if err != nil {
		return nil, err
	}
	rot, err := pa.vec("rotate", geom.Vec{})
	if err != nil {
		return nil, err
	}
	s = k.Translate(k.Rotate(s, rot.X, rot.Y, rot.Z), at.X, at.Y, at.Z)
	return k.ToPolygons(s, 0)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene builtins into a zygomys environment.
// The builtins add objects to sc and tessellate solids with k.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *Scene, k kernel.Kernel) {
	add := func(name string, polys []geom.Polygon) zygo.Sexp {
		anchor := sc.Add(name, polys...)
		return &sexpObject{name: name, anchor: anchor, polys: len(polys)}
	}

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3: expected 3 arguments, got %d", len(args))
		}
		var xyz [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			xyz[i] = f
		}
		return &sexpVec3{vec: geom.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
	})

	// (quad "name" p0 p1 p2 p3) and (tri "name" a b c)
	points := func(fn string, n int) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			objName, err := objectName(fn, pa)
			if err != nil {
				return zygo.SexpNull, err
			}
			if len(pa.positional) != n+1 {
				return zygo.SexpNull, fmt.Errorf("%s: expected %d points, got %d", fn, n, len(pa.positional)-1)
			}
			var pts [4]geom.Vec
			for i, a := range pa.positional[1:] {
				if pts[i], err = toVec3(a); err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: point %d: %w", fn, i, err)
				}
			}
			if n == 3 {
				pts[3] = pts[2]
			}
			p, err := geom.FromPoints(pts[0], pts[1], pts[2], pts[3], 0)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s %q: %w", fn, objName, err)
			}
			return add(objName, []geom.Polygon{p}), nil
		}
	}
	env.AddFunction("quad", points("quad", 4))
	env.AddFunction("tri", points("tri", 3))

	// (rect "name" :origin o :u u :v v)
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		objName, err := objectName("rect", pa)
		if err != nil {
			return zygo.SexpNull, err
		}
		origin, err := pa.vec("origin", geom.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		u, err := pa.vec("u", geom.Vec{X: 1})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		v, err := pa.vec("v", geom.Vec{Y: 1})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect: %w", err)
		}
		p, err := geom.FromPoints(origin, origin.Add(u), origin.Add(u).Add(v), origin.Add(v), 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rect %q: %w", objName, err)
		}
		return add(objName, []geom.Polygon{p}), nil
	})

	// (box "name" :size (vec3 2 3 4) :at p :rotate r :mesh false)
	// Without :mesh the six faces are exact; with it the box goes through
	// the kernel like any other solid.
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		objName, err := objectName("box", pa)
		if err != nil {
			return zygo.SexpNull, err
		}
		size, err := pa.vec("size", geom.Vec{X: 1, Y: 1, Z: 1})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		mesh := false
		if v, ok := pa.kw["mesh"]; ok {
			if mesh, err = toBool(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("box: mesh: %w", err)
			}
		}
		if mesh {
			polys, err := solid(k, k.Box(size.X, size.Y, size.Z), pa)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box %q: %w", objName, err)
			}
			return add(objName, polys), nil
		}

		m, err := placement(pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		faces, err := geom.Box(size, 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box %q: %w", objName, err)
		}
		for i, f := range faces {
			if faces[i], err = f.Transform(m); err != nil {
				return zygo.SexpNull, fmt.Errorf("box %q: %w", objName, err)
			}
		}
		return add(objName, faces), nil
	})

	// (cylinder "name" :height 4 :radius 1 :at p :rotate r)
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		objName, err := objectName("cylinder", pa)
		if err != nil {
			return zygo.SexpNull, err
		}
		h, err := pa.float("height", true, 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		r, err := pa.float("radius", true, 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		if h <= 0 || r <= 0 {
			return zygo.SexpNull, fmt.Errorf("cylinder %q: height and radius must be positive", objName)
		}
		polys, err := solid(k, k.Cylinder(h, r), pa)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder %q: %w", objName, err)
		}
		return add(objName, polys), nil
	})

	// (view (vec3 0 0 -1))
	env.AddFunction("view", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("view: expected 1 argument, got %d", len(args))
		}
		v, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("view: %w", err)
		}
		if err := sc.SetView(v); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec3{vec: v}, nil
	})
}
