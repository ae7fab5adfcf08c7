package main

import (
	"fmt"
	"math"

	"github.com/philipparndt/gosnap/pkg/geometry"
	"github.com/philipparndt/gosnap/pkg/snap"
	"github.com/philipparndt/gosnap/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	closestTriangle int
	cursorX         float64
	cursorY         float64
	canvasWidth     float64
	canvasHeight    float64
	snapRadius      float64
	pixelBuffer     float64
	cameraYaw       float64
	cameraPitch     float64
	cameraZoom      float64
)

var closestCmd = &cobra.Command{
	Use:   "closest [file]",
	Short: "Pick the snap point nearest to a cursor position",
	Long: `Detect the snap points of the face under a triangle, project them with an
orbit camera framing the model, and print the one closest to the cursor.`,
	Args: cobra.ExactArgs(1),
	RunE: runClosest,
}

func init() {
	f := closestCmd.Flags()
	f.IntVarP(&closestTriangle, "triangle", "t", 0, "Index of the hit triangle")
	f.Float64Var(&cursorX, "x", 0, "Cursor x in pixels")
	f.Float64Var(&cursorY, "y", 0, "Cursor y in pixels")
	f.Float64Var(&canvasWidth, "width", 1280, "Canvas width in pixels")
	f.Float64Var(&canvasHeight, "height", 720, "Canvas height in pixels")
	f.Float64Var(&snapRadius, "radius", 10, "Snap radius in pixels")
	f.Float64Var(&pixelBuffer, "buffer", snap.DefaultPixelBuffer, "Extra pixels added to the snap radius")
	f.Float64Var(&cameraYaw, "yaw", 0, "Camera yaw in degrees")
	f.Float64Var(&cameraPitch, "pitch", 0, "Camera pitch in degrees")
	f.Float64Var(&cameraZoom, "zoom", 0, "Relative zoom, e.g. -0.5 halves the camera distance")
	rootCmd.AddCommand(closestCmd)
}

func runClosest(cmd *cobra.Command, args []string) error {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", canvasWidth, canvasHeight)
	}

	_, m, err := loadMesh(args[0])
	if err != nil {
		return err
	}
	detector, err := newDetector()
	if err != nil {
		return err
	}
	points, err := detector.Detect(m, closestTriangle)
	if err != nil {
		return err
	}

	camera := viewer.NewCamera(m.BoundingBox())
	camera.Rotate(cameraPitch*math.Pi/180, cameraYaw*math.Pi/180)
	if cameraZoom != 0 {
		camera.Zoom(cameraZoom)
	}

	cursor := geometry.NewVector2(cursorX, cursorY)
	ndc := snap.PixelToNDC(cursor, canvasWidth, canvasHeight)
	proj := camera.Projector(canvasWidth, canvasHeight)
	w := cmd.OutOrStdout()

	best, ok := snap.SelectClosest(points, ndc, proj, canvasWidth, canvasHeight, snapRadius, pixelBuffer)
	if !ok {
		fmt.Fprintf(w, "No snap point within %.1f px of (%.1f, %.1f)\n", snapRadius+pixelBuffer, cursorX, cursorY)
		return nil
	}

	x, y, _ := camera.Project(best.Position, canvasWidth, canvasHeight)
	pixel := geometry.NewVector2(x, y)
	fmt.Fprintf(w, "Closest snap point: %s %s\n", best.Kind, formatVector(best.Position))
	fmt.Fprintf(w, "  Screen: (%.1f, %.1f), %.2f px from cursor\n", pixel.X, pixel.Y, pixel.Distance(cursor))
	return nil
}
