// Command planesort prints the painter's order of a scene: the order in
// which its polygons must be drawn, farthest first, for a view direction.
//
//	planesort [-view x,y,z] [-json] [-cells n] scene.zy|scene.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/planesplit/internal/report"
	"github.com/chazu/planesplit/pkg/scene"
	"github.com/chazu/planesplit/pkg/splitter"
	"github.com/golang/glog"
)

func main() {
	// glog registers its flags on the default set.
	opts, args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	defer glog.Flush()

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: planesort [flags] scene.zy|scene.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(opts, args[0], os.Stdout); err != nil {
		glog.Exitf("planesort: %v", err)
	}
}

func run(opts options, path string, w io.Writer) error {
	so := scene.Options{MeshCells: opts.cells, Timeout: opts.timeout}

	glog.Infof("loading %s", path)
	sc, err := scene.Load(path, scene.NewEngineWithOptions(so))
	if err != nil {
		return err
	}
	glog.Infof("loaded %d objects, %d polygons", sc.Objects(), len(sc.Polygons))

	if opts.view != nil && opts.view.set {
		if err := sc.SetView(opts.view.vec); err != nil {
			return fmt.Errorf("-view: %w", err)
		}
	}
	view := sc.View

	s := splitter.New()
	sorted := s.Solve(sc.Polygons, view)
	summary := report.NewSummary(view, len(sc.Polygons), sorted, s.Depth())
	glog.Info(summary)
	if glog.V(1) {
		for i, p := range sorted {
			glog.Infof("%d: %s %v", i, sc.Name(p.Anchor), p)
		}
	}

	entries := report.Entries(sc, sorted)
	if opts.json {
		return report.WriteJSON(w, summary, entries)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", report.Title(summary), report.Table(entries))
	return err
}
