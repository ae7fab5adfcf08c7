package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gosnap/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	snapTriangle int
	snapWatch    bool
)

var snapCmd = &cobra.Command{
	Use:   "snap [file]",
	Short: "List the snap points of the face under a triangle",
	Long: `Grow the flat region around the given triangle and print its snap points.

With --watch the file is reloaded and the points reprinted whenever it changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnap,
}

func init() {
	snapCmd.Flags().IntVarP(&snapTriangle, "triangle", "t", 0, "Index of the hit triangle")
	snapCmd.Flags().BoolVarP(&snapWatch, "watch", "w", false, "Reprint when the file changes")
	rootCmd.AddCommand(snapCmd)
}

func runSnap(cmd *cobra.Command, args []string) error {
	filename := args[0]
	w := cmd.OutOrStdout()

	if err := reportSnap(w, filename, snapTriangle); err != nil {
		return err
	}
	if !snapWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSnap(ctx, w, filename, snapTriangle)
}

func reportSnap(w io.Writer, filename string, triangle int) error {
	_, m, err := loadMesh(filename)
	if err != nil {
		return err
	}
	detector, err := newDetector()
	if err != nil {
		return err
	}

	points, err := detector.Detect(m, triangle)
	if err != nil {
		return err
	}
	printSnapPoints(w, triangle, points)
	return nil
}

func watchSnap(ctx context.Context, w io.Writer, filename string, triangle int) error {
	fw, err := watcher.New(300*time.Millisecond, newLogger())
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{filename}, func(string) {
		fmt.Fprintln(w)
		if err := reportSnap(w, filename, triangle); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", filename)
	if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
