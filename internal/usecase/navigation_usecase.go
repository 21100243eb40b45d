package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// NavigationStatus is a point-in-time snapshot of the session
type NavigationStatus struct {
	SessionID    uuid.UUID              `json:"session_id"`
	Destination  string                 `json:"destination,omitempty"`
	Instance     *entity.TargetInstance `json:"instance,omitempty"`
	Path         entity.Path            `json:"path"`
	PathLength   float64                `json:"path_length"`
	Reachable    bool                   `json:"reachable"`
	LastPosition *entity.Point          `json:"last_position,omitempty"`
}

// NavigationUsecase defines the navigation session operations
type NavigationUsecase interface {
	// SelectDestination starts navigating to the closest of the given instances.
	// An empty instance set is rejected with ErrInvalidInstanceSet.
	SelectDestination(ctx context.Context, name string, instances []entity.TargetInstance) error

	// Clear stops navigation. Calling it with nothing selected is a no-op.
	Clear()

	// Tick advances the session with a fresh position sample
	Tick(ctx context.Context, userPosition entity.Point) error

	// Status returns a snapshot of the session state
	Status() NavigationStatus
}
