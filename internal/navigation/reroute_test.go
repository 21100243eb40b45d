package navigation

import (
	"context"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"
	mockSvc "wayfinder/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRerouteEngine(t *testing.T, oracle *distanceOracle, threshold float64) *RerouteEngine {
	t.Helper()

	engine, err := NewRerouteEngine(oracle, config.RerouteConfig{
		EvaluationInterval: 2 * time.Second,
		Threshold:          threshold,
		Workers:            2,
	})
	require.NoError(t, err)

	return engine
}

func TestNewRerouteEngine_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RerouteConfig
	}{
		{"zero interval", config.RerouteConfig{EvaluationInterval: 0, Threshold: 2}},
		{"negative threshold", config.RerouteConfig{EvaluationInterval: time.Second, Threshold: -1}},
		{"negative workers", config.RerouteConfig{EvaluationInterval: time.Second, Threshold: 1, Workers: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRerouteEngine(newDistanceOracle(nil), tt.cfg)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidConfig))
		})
	}
}

func TestRerouteEngine_SingleCandidateNeverSwitches(t *testing.T) {
	oracle := mockSvc.NewMockPathOracle(t)
	engine, err := NewRerouteEngine(oracle, config.RerouteConfig{EvaluationInterval: time.Second, Threshold: 0})
	require.NoError(t, err)

	current := instance("Restroom", 100)
	switched, err := engine.Evaluate(context.Background(), current, []entity.TargetInstance{current}, entity.Point{})

	require.NoError(t, err)
	assert.Nil(t, switched)
	oracle.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything, mock.Anything)
}

func TestRerouteEngine_Threshold(t *testing.T) {
	current := instance("Restroom", 1)
	other := instance("Restroom", 2)

	tests := []struct {
		name         string
		currentDist  float64
		otherDist    float64
		threshold    float64
		expectSwitch bool
	}{
		{"improvement above threshold", 40, 25, 2, true},
		{"improvement exactly at threshold", 27, 25, 2, false},
		{"improvement below threshold", 26, 25, 2, false},
		{"other is farther", 20, 25, 2, false},
		{"zero threshold any gain", 25.1, 25, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := newDistanceOracle(map[entity.Point]float64{
				current.Position: tt.currentDist,
				other.Position:   tt.otherDist,
			})
			engine := newTestRerouteEngine(t, oracle, tt.threshold)

			switched, err := engine.Evaluate(context.Background(), current, []entity.TargetInstance{current, other}, entity.Point{})
			require.NoError(t, err)

			if tt.expectSwitch {
				require.NotNil(t, switched)
				assert.True(t, switched.SameAs(other))
			} else {
				assert.Nil(t, switched)
			}
		})
	}
}

func TestRerouteEngine_UnreachableCurrentSwitches(t *testing.T) {
	current := instance("Restroom", 1)
	other := instance("Restroom", 2)
	oracle := newDistanceOracle(map[entity.Point]float64{other.Position: 30})
	engine := newTestRerouteEngine(t, oracle, 2)

	switched, err := engine.Evaluate(context.Background(), current, []entity.TargetInstance{current, other}, entity.Point{})

	require.NoError(t, err)
	require.NotNil(t, switched)
	assert.True(t, switched.SameAs(other))
}

func TestRerouteEngine_AllUnreachableKeepsCurrent(t *testing.T) {
	current := instance("Restroom", 1)
	other := instance("Restroom", 2)
	engine := newTestRerouteEngine(t, newDistanceOracle(nil), 2)

	switched, err := engine.Evaluate(context.Background(), current, []entity.TargetInstance{current, other}, entity.Point{})

	require.NoError(t, err)
	assert.Nil(t, switched)
}

func TestRerouteEngine_OracleErrorIsReturned(t *testing.T) {
	current := instance("Restroom", 1)
	other := instance("Restroom", 2)

	oracle := mockSvc.NewMockPathOracle(t)
	oracle.EXPECT().Solve(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("engine not ready"))
	engine, err := NewRerouteEngine(oracle, config.RerouteConfig{EvaluationInterval: time.Second, Threshold: 2})
	require.NoError(t, err)

	switched, err := engine.Evaluate(context.Background(), current, []entity.TargetInstance{current, other}, entity.Point{})

	assert.Error(t, err)
	assert.Nil(t, switched)
}

func TestRerouteEngine_BestPicksShortestPath(t *testing.T) {
	far := instance("Restroom", 1)
	near := instance("Restroom", 2)
	oracle := newDistanceOracle(map[entity.Point]float64{
		far.Position:  40,
		near.Position: 25,
	})
	engine := newTestRerouteEngine(t, oracle, 2)

	best, err := engine.Best(context.Background(), []entity.TargetInstance{far, near}, entity.Point{})

	require.NoError(t, err)
	assert.True(t, best.SameAs(near))
}

func TestRerouteEngine_BestFallsBackToStraightLine(t *testing.T) {
	far := instance("Restroom", 50)
	near := instance("Restroom", 5)
	engine := newTestRerouteEngine(t, newDistanceOracle(nil), 2)

	best, err := engine.Best(context.Background(), []entity.TargetInstance{far, near}, entity.Point{})

	require.NoError(t, err)
	assert.True(t, best.SameAs(near))
}

func TestRerouteEngine_BestRejectsEmptySet(t *testing.T) {
	engine := newTestRerouteEngine(t, newDistanceOracle(nil), 2)

	_, err := engine.Best(context.Background(), nil, entity.Point{})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInstanceSet))
}

func TestRerouteEngine_Due(t *testing.T) {
	engine := newTestRerouteEngine(t, newDistanceOracle(nil), 2)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	engine.MarkEvaluated(start)

	assert.False(t, engine.Due(start.Add(time.Second)))
	assert.True(t, engine.Due(start.Add(2*time.Second)))
}
