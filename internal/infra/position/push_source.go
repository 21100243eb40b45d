// Package position provides the position sources feeding the tick loop.
package position

import (
	"context"
	"math"
	"sync"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
)

// PushSource holds the latest position reported by the client.
type PushSource struct {
	mu        sync.RWMutex
	latest    entity.Point
	updatedAt time.Time
	has       bool
	now       func() time.Time
}

// NewPushSource creates a source with no position yet
func NewPushSource() *PushSource {
	return &PushSource{now: time.Now}
}

// CurrentPosition returns the latest pushed position, or
// ErrPositionUnavailable before the first update.
func (s *PushSource) CurrentPosition(_ context.Context) (entity.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.has {
		return entity.Point{}, domainerrors.ErrPositionUnavailable
	}

	return s.latest, nil
}

// UpdatePosition replaces the latest position
func (s *PushSource) UpdatePosition(_ context.Context, position entity.Point) error {
	if !isFinite(position) {
		return domainerrors.ErrValidationFailed.WithDetails("position must be finite")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = position
	s.updatedAt = s.now()
	s.has = true

	return nil
}

// UpdatedAt returns when the position was last pushed
func (s *PushSource) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}

func isFinite(p entity.Point) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

var (
	_ service.PositionSource = (*PushSource)(nil)
	_ service.PositionSink   = (*PushSource)(nil)
)
