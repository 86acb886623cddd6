// Command planeview shows a scene's painter's order in the terminal and
// re-sorts it as the view direction is orbited with the arrow keys.
//
//	planeview [-cells n] scene.zy|scene.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/chazu/planesplit/internal/viewer"
	"github.com/chazu/planesplit/pkg/scene"
)

func main() {
	cells := flag.Int("cells", 0, "marching cubes resolution for solids (default 16)")
	timeout := flag.Duration("timeout", 0, "scene evaluation time limit (default 5s)")
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: planeview [flags] scene.zy|scene.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	eng := scene.NewEngineWithOptions(scene.Options{MeshCells: *cells, Timeout: *timeout})
	sc, err := scene.Load(flag.Arg(0), eng)
	if err != nil {
		glog.Exitf("planeview: %v", err)
	}
	glog.Infof("loaded %s: %d objects, %d polygons", flag.Arg(0), sc.Objects(), len(sc.Polygons))

	if _, err := tea.NewProgram(viewer.New(sc), tea.WithAltScreen()).Run(); err != nil {
		glog.Exitf("planeview: %v", err)
	}
}
