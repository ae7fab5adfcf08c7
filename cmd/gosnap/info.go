package main

import (
	"fmt"

	"github.com/philipparndt/gosnap/pkg/analysis"
	"github.com/spf13/cobra"
)

const longestEdgeCount = 3

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display mesh statistics relevant to snapping",
	Long:  "Show triangle and vertex counts, including how many distinct positions remain after merging coincident vertices.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, m, err := loadMesh(filename)
	if err != nil {
		return err
	}
	bbox := m.BoundingBox()
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	if model.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Mesh:")
	fmt.Fprintf(w, "  Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(w, "  Raw vertices: %d\n", len(m.Vertices))
	fmt.Fprintf(w, "  Distinct vertices: %d\n", m.CanonicalCount())
	fmt.Fprintf(w, "  Surface Area: %.6f square units\n\n", model.SurfaceArea())

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", formatVector(bbox.Min))
	fmt.Fprintf(w, "  Max: %s\n", formatVector(bbox.Max))
	fmt.Fprintf(w, "  Diagonal: %.6f units\n\n", bbox.Diagonal())

	edges := analysis.AnalyzeEdges(m)
	fmt.Fprintln(w, "Edges:")
	fmt.Fprintf(w, "  Distinct: %d\n", edges.EdgeCount)
	fmt.Fprintf(w, "  Open: %d\n", edges.OpenEdges)
	fmt.Fprintf(w, "  Shared by two faces: %d\n", edges.ManifoldEdges)
	fmt.Fprintf(w, "  Non-manifold: %d\n", edges.NonManifold)
	if edges.Degenerate > 0 {
		fmt.Fprintf(w, "  Degenerate triangles: %d\n", edges.Degenerate)
	}
	if edges.EdgeCount > 0 {
		fmt.Fprintf(w, "  Length: min %.6f, max %.6f, avg %.6f\n", edges.MinEdgeLength, edges.MaxEdgeLength, edges.AvgEdgeLength)
	}
	if edges.Closed() {
		fmt.Fprintln(w, "  Mesh is closed")
	}

	longest := edges.LongestEdges(longestEdgeCount)
	if len(longest) > 0 {
		fmt.Fprintln(w, "\nLongest Edges:")
		for i, e := range longest {
			fmt.Fprintf(w, "  %d. %.6f units %s -> %s (%d faces)\n",
				i+1, e.Length, formatVector(m.Position(e.Edge.A)), formatVector(m.Position(e.Edge.B)), e.Faces)
		}
	}
	return nil
}
