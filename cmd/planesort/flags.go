package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chazu/planesplit/pkg/geom"
)

// vecFlag is a flag.Value holding an "x,y,z" vector.
type vecFlag struct {
	vec geom.Vec
	set bool
}

var _ flag.Value = (*vecFlag)(nil)

func (f *vecFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.vec.X, f.vec.Y, f.vec.Z)
}

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		xyz[i] = v
	}
	f.vec = geom.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	f.set = true
	return nil
}

// defineVecFlag registers a vector flag with an optional shorthand.
func defineVecFlag(fs *flag.FlagSet, name, shortHand, usage string) *vecFlag {
	var output vecFlag
	fs.Var(&output, name, usage)
	if shortHand != name && shortHand != "" {
		fs.Var(&output, shortHand, usage+" (shorthand for "+name+")")
	}
	return &output
}

type options struct {
	view    *vecFlag
	json    bool
	cells   int
	timeout time.Duration
}

func parseFlags(fs *flag.FlagSet, args []string) (options, []string, error) {
	var o options
	o.view = defineVecFlag(fs, "view", "v", "camera look direction x,y,z (default: the scene's view)")
	fs.BoolVar(&o.json, "json", false, "print the order as JSON")
	fs.IntVar(&o.cells, "cells", 0, "marching cubes resolution for solids (default 16)")
	fs.DurationVar(&o.timeout, "timeout", 0, "scene evaluation time limit (default 5s)")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	return o, fs.Args(), nil
}
