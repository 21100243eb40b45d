package main

import (
	"context"
	"fmt"
	"io"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/routing/loader"
	"wayfinder/internal/infra/routing/navgraph"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the building data for consistency",
	Long: `Loads every data file, compares row counts with metadata.json and checks that
each destination and anchor snaps onto the graph and can be reached.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, engine, err := loadBuilding(cmd)
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		metadata, err := loader.LoadMetadata(dir)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️  %v\n", err)
		}

		report := validateBuilding(cmd.Context(), data, metadata, engine)
		report.print(cmd.OutOrStdout())

		if len(report.problems) > 0 {
			return errors.Errorf("%d problem(s) found", len(report.problems))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Building data is valid")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type validationReport struct {
	stats    navgraph.Stats
	targets  int
	anchors  int
	problems []string
	warnings []string
}

func (r *validationReport) problemf(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func (r *validationReport) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *validationReport) print(w io.Writer) {
	fmt.Fprintf(w, "Nodes: %d  Edges: %d  Components: %d\n", r.stats.Nodes, r.stats.Edges, r.stats.Components)
	fmt.Fprintf(w, "Destination instances: %d  Anchors: %d\n", r.targets, r.anchors)

	for _, warning := range r.warnings {
		fmt.Fprintf(w, "⚠️  %s\n", warning)
	}
	for _, problem := range r.problems {
		fmt.Fprintf(w, "❌ %s\n", problem)
	}
}

// validateBuilding checks every destination and anchor against the graph.
// Each destination instance must be reachable from every anchor, since
// anchors are where users relocalize.
func validateBuilding(
	ctx context.Context,
	data *loader.BuildingData,
	metadata *loader.BuildingMetadata,
	engine *navgraph.Engine,
) *validationReport {
	report := &validationReport{
		stats:   engine.Stats(),
		targets: len(data.Targets),
		anchors: len(data.Anchors),
	}

	if metadata != nil {
		if err := metadata.Validate(); err != nil {
			report.problemf("metadata.json: %v", err)
		} else if err := metadata.CheckCounts(data); err != nil {
			report.problemf("metadata.json: %v", err)
		}
	}

	if report.stats.Components > 1 {
		report.warnf("graph has %d disconnected components", report.stats.Components)
	}

	for _, target := range data.Targets {
		if _, err := engine.FindNearestNode(target.Position); err != nil {
			report.problemf("destination %q at %s: %v", target.Name, target.Position, err)
		}
	}

	seen := make(map[string]bool, len(data.Anchors))
	for _, anchor := range data.Anchors {
		if seen[anchor.ID] {
			report.problemf("anchor %q is defined twice", anchor.ID)
		}
		seen[anchor.ID] = true

		if _, err := engine.FindNearestNode(anchor.Position); err != nil {
			report.problemf("anchor %q at %s: %v", anchor.ID, anchor.Position, err)

			continue
		}

		for _, target := range data.Targets {
			if !reachable(ctx, engine, anchor.Position, target) {
				report.warnf("destination %q at %s is unreachable from anchor %q", target.Name, target.Position, anchor.ID)
			}
		}
	}

	return report
}

func reachable(ctx context.Context, engine *navgraph.Engine, origin entity.Point, target entity.TargetInstance) bool {
	path, err := engine.Solve(ctx, origin, target.Position)

	return err == nil && !path.IsEmpty()
}
