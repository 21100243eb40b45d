// Package repository defines read access to the building data.
// These interfaces act as a contract between the application layer and the infrastructure layer.
package repository

import (
	"context"

	"wayfinder/internal/domain/entity"
)

// DestinationRepository defines read access to the building's destinations
type DestinationRepository interface {
	// ListInstances returns every destination instance of the building
	ListInstances(ctx context.Context) ([]entity.TargetInstance, error)

	// FindInstancesByName returns the instances whose name matches case-insensitively
	FindInstancesByName(ctx context.Context, name string) ([]entity.TargetInstance, error)
}
