package usecase

import (
	"context"
	"time"

	"wayfinder/internal/domain/entity"
)

// RouteResult represents the result of a single path query
type RouteResult struct {
	Source      entity.Point `json:"source"`
	Target      entity.Point `json:"target"`
	Path        entity.Path  `json:"path,omitempty"`
	Distance    float64      `json:"distance"`     // Walking distance in meters
	IsReachable bool         `json:"is_reachable"` // Whether target is reachable over the walkable graph
}

// OneToManyResult represents the result of a one-to-many routing query
type OneToManyResult struct {
	Source   entity.Point   `json:"source"`
	Targets  []entity.Point `json:"targets"`
	Results  []RouteResult  `json:"results"`
	Duration time.Duration  `json:"duration"` // Total query execution time
}

// RoutingUsecase answers route previews outside the navigation session
type RoutingUsecase interface {
	// OneToMany calculates routes from one source to multiple targets.
	// Unreachable targets are marked, not reported as errors.
	OneToMany(ctx context.Context, source entity.Point, targets []entity.Point) (*OneToManyResult, error)

	// CalculateRoute calculates the walking route between two points
	CalculateRoute(ctx context.Context, source, target entity.Point) (*RouteResult, error)
}
