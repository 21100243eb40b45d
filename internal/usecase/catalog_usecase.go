package usecase

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// Destination groups the physical instances sharing one name
type Destination struct {
	Name      string                  `json:"name"`
	Instances []entity.TargetInstance `json:"instances"`
}

// CatalogUsecase defines destination lookup use cases
type CatalogUsecase interface {
	// ListDestinations returns every destination name with its instances, sorted by name
	ListDestinations(ctx context.Context) ([]Destination, error)

	// FindDestination resolves a name case-insensitively to its instance set
	FindDestination(ctx context.Context, name string) (*Destination, error)

	// Navigate resolves name through the catalog and selects it on the session
	Navigate(ctx context.Context, name string) (*Destination, error)
}
