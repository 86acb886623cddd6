package scene

import (
	"errors"
	"time"

	"github.com/chazu/planesplit/pkg/geom"
	"github.com/chazu/planesplit/pkg/kernel/sdfx"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// DefaultView looks down the z axis.
var DefaultView = geom.Vec{Z: -1}

var (
	// ErrZeroView is returned for a view direction without length.
	ErrZeroView = errors.New("scene: zero view direction")
	// ErrInvalidScene is returned for scene files that do not describe
	// valid polygons.
	ErrInvalidScene = errors.New("scene: invalid scene")
)

// Options configures scene evaluation.
type Options struct {
	// MeshCells is the marching cubes resolution for tessellated solids.
	MeshCells int
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// View is the view direction of scenes that do not set one.
	View geom.Vec
}

// DefaultOptions returns the options used by NewEngine.
func DefaultOptions() Options {
	return Options{
		MeshCells: sdfx.DefaultMeshCells,
		Timeout:   EvalTimeout,
		View:      DefaultView,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MeshCells < 1 {
		o.MeshCells = d.MeshCells
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.View.Length() < geom.Epsilon {
		o.View = d.View
	}
	return o
}
