package building

import (
	"context"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
)

// anchorRepository implements the repository.AnchorRepository interface.
type anchorRepository struct {
	store *Store
}

// NewAnchorRepository is the constructor for anchorRepository.
func NewAnchorRepository(store *Store) repository.AnchorRepository {
	return &anchorRepository{store: store}
}

func (repo *anchorRepository) ListAnchors(_ context.Context) ([]entity.Anchor, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return append([]entity.Anchor(nil), repo.store.anchors...), nil
}

// FindAnchorByID retrieves an anchor by its ID.
func (repo *anchorRepository) FindAnchorByID(_ context.Context, id string) (*entity.Anchor, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, anchor := range repo.store.anchors {
		if anchor.ID == id {
			found := anchor

			return &found, nil
		}
	}

	return nil, domainerrors.ErrAnchorNotFound.WithDetails(id)
}
