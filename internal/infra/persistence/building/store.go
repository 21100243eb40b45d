// Package building serves the static building data (destinations and QR
// anchors) from the CSV files of the building data directory.
package building

import (
	"log/slog"
	"sync"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/routing/loader"
)

// Store keeps the building's destinations and anchors in memory
type Store struct {
	mu      sync.RWMutex
	targets []entity.TargetInstance
	anchors []entity.Anchor
}

// NewStore loads targets.csv and anchors.csv from dataDir
func NewStore(dataDir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	csvLoader := loader.NewCSVLoader(dataDir)

	targets, err := csvLoader.LoadTargets()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load destinations")
	}

	anchors, err := csvLoader.LoadAnchors()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load anchors")
	}

	store := NewStoreFrom(targets, anchors)

	logger.Info("Building data loaded",
		slog.String("data_path", dataDir),
		slog.Int("destination_instances", len(targets)),
		slog.Int("anchors", len(anchors)),
	)

	return store, nil
}

// NewStoreFrom builds a store from in-memory data
func NewStoreFrom(targets []entity.TargetInstance, anchors []entity.Anchor) *Store {
	return &Store{
		targets: append([]entity.TargetInstance(nil), targets...),
		anchors: append([]entity.Anchor(nil), anchors...),
	}
}
