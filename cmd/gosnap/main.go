package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gosnap/pkg/snap"
	"github.com/philipparndt/gosnap/version"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "gosnap",
	Short: "Find snap points on STL meshes",
	Long: `gosnap inspects the flat face under a triangle of an STL mesh and reports
the points an interactive editor would snap the cursor to: corners, edge
midpoints and the face centroid, or the center and cardinal points of a
circular face.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			snap.SetLogger(newLogger())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log detection decisions to stderr")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML file overriding detection thresholds")
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
