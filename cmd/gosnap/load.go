package main

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/mesh"
	"github.com/philipparndt/gosnap/pkg/snap"
	"github.com/philipparndt/gosnap/pkg/stl"
)

// loadMesh parses an STL file and indexes its facets
func loadMesh(filename string) (*stl.Model, *mesh.Mesh, error) {
	model, err := stl.Parse(filename)
	if err != nil {
		return nil, nil, err
	}

	m, err := mesh.FromVertices(model.Vertices(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to index %s: %w", filename, err)
	}
	return model, m, nil
}

// newDetector builds a detector from the --config file, if any
func newDetector() (*snap.Detector, error) {
	if configFile == "" {
		return snap.NewDetector()
	}

	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := snap.LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	return snap.NewDetector(snap.WithConfig(cfg))
}

// formatVector formats a 3D vector
func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

func printSnapPoints(w io.Writer, triangle int, points []snap.SnapPoint) {
	fmt.Fprintf(w, "Snap points for triangle #%d\n", triangle)
	fmt.Fprintln(w, "====================")
	if len(points) == 0 {
		fmt.Fprintln(w, "No snap points found.")
		return
	}

	fmt.Fprintf(w, "%-6s %-15s %-35s\n", "Index", "Kind", "Position")
	fmt.Fprintln(w, "----------------------------------------------------------")
	for i, p := range points {
		fmt.Fprintf(w, "%-6d %-15s %-35s\n", i+1, p.Kind, formatVector(p.Position))
	}
}
