package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"wayfinder/config"
	"wayfinder/internal/infra/routing/loader"
	"wayfinder/internal/infra/routing/navgraph"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "navgraph",
	Short:         "Inspect indoor navigation building data",
	Long:          `navgraph validates a building data directory, queries routes over its graph and renders QR anchor markers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultRoutingConfig()

	rootCmd.PersistentFlags().String("dir", "./data/building", "Building data directory")
	rootCmd.PersistentFlags().Float64("max-snap", defaults.MaxSnapDistance, "Maximum snapping distance in meters")
	rootCmd.PersistentFlags().Float64("floor-tolerance", defaults.FloorTolerance, "Maximum height difference when snapping, in meters")
	rootCmd.PersistentFlags().Float64("cell-size", defaults.GridCellSize, "Spatial index cell size in meters")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log engine activity to stderr")
}

// loadBuilding reads every data file of the directory named by --dir and
// builds the graph engine over it
func loadBuilding(cmd *cobra.Command) (*loader.BuildingData, *navgraph.Engine, error) {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	maxSnap, _ := flags.GetFloat64("max-snap")
	floorTolerance, _ := flags.GetFloat64("floor-tolerance")
	cellSize, _ := flags.GetFloat64("cell-size")
	verbose, _ := flags.GetBool("verbose")

	var out io.Writer = io.Discard
	if verbose {
		out = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	data, err := loader.NewCSVLoader(dir).Load()
	if err != nil {
		return nil, nil, err
	}

	engine := navgraph.NewEngine(navgraph.EngineConfig{
		MaxSnapDistance: maxSnap,
		FloorTolerance:  floorTolerance,
		GridCellSize:    cellSize,
	}, logger)
	if err := engine.Load(data.Nodes, data.Edges); err != nil {
		return nil, nil, err
	}

	return data, engine, nil
}
