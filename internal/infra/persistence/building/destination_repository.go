package building

import (
	"context"
	"strings"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/repository"
)

// destinationRepository implements the repository.DestinationRepository interface.
type destinationRepository struct {
	store *Store
}

// NewDestinationRepository is the constructor for destinationRepository.
func NewDestinationRepository(store *Store) repository.DestinationRepository {
	return &destinationRepository{store: store}
}

// ListInstances returns a copy of every destination instance.
func (repo *destinationRepository) ListInstances(_ context.Context) ([]entity.TargetInstance, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return append([]entity.TargetInstance(nil), repo.store.targets...), nil
}

// FindInstancesByName matches names case-insensitively; no match is an empty result.
func (repo *destinationRepository) FindInstancesByName(_ context.Context, name string) ([]entity.TargetInstance, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var instances []entity.TargetInstance
	for _, target := range repo.store.targets {
		if strings.EqualFold(target.Name, name) {
			instances = append(instances, target)
		}
	}

	return instances, nil
}
