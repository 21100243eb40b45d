package main

import (
	"fmt"
	"strconv"
	"strings"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/routing/loader"

	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route <from> <to>",
	Short: "Print the shortest path between two places",
	Long: `Each place is either "x,y,z" in building coordinates or a destination name.
A name with several instances routes to the closest one.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, engine, err := loadBuilding(cmd)
		if err != nil {
			return err
		}

		from, err := resolvePlace(data, args[0])
		if err != nil {
			return errors.Wrap(err, "from")
		}

		candidates, err := resolveDestination(data, args[1])
		if err != nil {
			return errors.Wrap(err, "to")
		}

		var best entity.Path
		bestName := ""
		for _, candidate := range candidates {
			path, err := engine.Solve(cmd.Context(), from, candidate.Position)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s at %s: %v\n", candidate.Name, candidate.Position, err)

				continue
			}
			if best == nil || path.Length() < best.Length() {
				best, bestName = path, candidate.Name
			}
		}

		if best == nil {
			return errors.New("no reachable destination")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Route to %s: %.2fm, %d waypoints\n", bestName, best.Length(), len(best))
		for i, waypoint := range best {
			fmt.Fprintf(out, "  %2d  %s\n", i, waypoint)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

// resolvePlace returns the point named by arg, the first instance for a name
func resolvePlace(data *loader.BuildingData, arg string) (entity.Point, error) {
	instances, err := resolveDestination(data, arg)
	if err != nil {
		return entity.Point{}, err
	}

	return instances[0].Position, nil
}

// resolveDestination parses arg as coordinates or looks it up by name
func resolveDestination(data *loader.BuildingData, arg string) ([]entity.TargetInstance, error) {
	if point, ok := parseCoordinates(arg); ok {
		return []entity.TargetInstance{{Name: arg, Position: point}}, nil
	}

	var instances []entity.TargetInstance
	for _, target := range data.Targets {
		if strings.EqualFold(target.Name, strings.TrimSpace(arg)) {
			instances = append(instances, target)
		}
	}
	for _, anchor := range data.Anchors {
		if anchor.ID == arg {
			instances = append(instances, entity.TargetInstance{Name: anchor.Label, Position: anchor.Position})
		}
	}

	if len(instances) == 0 {
		return nil, errors.Errorf("unknown place %q", arg)
	}

	return instances, nil
}

func parseCoordinates(arg string) (entity.Point, bool) {
	fields := strings.Split(arg, ",")
	if len(fields) != 3 {
		return entity.Point{}, false
	}

	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return entity.Point{}, false
		}
		coords[i] = value
	}

	return entity.Point{X: coords[0], Y: coords[1], Z: coords[2]}, true
}
