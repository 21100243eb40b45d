package position

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSource(t *testing.T) {
	source := NewPushSource()
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return fixed }

	_, err := source.CurrentPosition(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrPositionUnavailable)

	require.NoError(t, source.UpdatePosition(ctx, entity.Point{X: 1, Z: 2}))
	require.NoError(t, source.UpdatePosition(ctx, entity.Point{X: 3, Z: 4}))

	position, err := source.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Point{X: 3, Z: 4}, position)
	assert.Equal(t, fixed, source.UpdatedAt())
}

func TestPushSource_RejectsNonFinite(t *testing.T) {
	source := NewPushSource()

	err := source.UpdatePosition(context.Background(), entity.Point{X: math.NaN()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = source.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrPositionUnavailable)
}

func TestTrackSource_Replay(t *testing.T) {
	ctx := context.Background()
	points := []entity.Point{{X: 0}, {X: 1}}

	t.Run("stops at the end", func(t *testing.T) {
		source, err := NewTrackSource(points, false)
		require.NoError(t, err)

		for _, want := range points {
			got, err := source.CurrentPosition(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		last, err := source.CurrentPosition(ctx)
		assert.ErrorIs(t, err, ErrTrackExhausted)
		assert.Equal(t, points[1], last)
	})

	t.Run("loops", func(t *testing.T) {
		source, err := NewTrackSource(points, true)
		require.NoError(t, err)

		var got []entity.Point
		for i := 0; i < 5; i++ {
			p, err := source.CurrentPosition(ctx)
			require.NoError(t, err)
			got = append(got, p)
		}
		assert.Equal(t, []entity.Point{{X: 0}, {X: 1}, {X: 0}, {X: 1}, {X: 0}}, got)
	})
}

func TestTrackSource_Empty(t *testing.T) {
	_, err := NewTrackSource(nil, true)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTrackSource_ReadOnly(t *testing.T) {
	source, err := NewTrackSource([]entity.Point{{}}, false)
	require.NoError(t, err)

	assert.ErrorIs(t, source.UpdatePosition(context.Background(), entity.Point{}), ErrReadOnlySource)
}

func TestLoadTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,z\n0,0,0\n0.5,0,0.1\n1,0,0.2\n"), 0o644))

	source, err := LoadTrack(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, source.Len())

	_, err = LoadTrack(filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.Error(t, err)
}

func TestLoadTrack_BadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y,z\n0,0\n"), 0o644))

	_, err := LoadTrack(path, false)
	require.Error(t, err)
}
