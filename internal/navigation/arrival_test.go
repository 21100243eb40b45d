package navigation

import (
	"testing"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArrivalMonitor(t *testing.T) *ArrivalMonitor {
	t.Helper()

	monitor, err := NewArrivalMonitor(config.ArrivalConfig{TriggerDistance: 1.5, MinDeparture: 3})
	require.NoError(t, err)

	return monitor
}

// walk feeds a straight walk along X towards a target at X=targetX and
// returns how many times arrival fired.
func walk(monitor *ArrivalMonitor, key string, targetX float64, xs ...float64) int {
	fired := 0
	for _, x := range xs {
		user := entity.Point{X: x}
		if monitor.OnTick(user.DistanceTo(entity.Point{X: targetX}), key, user) {
			fired++
		}
	}

	return fired
}

func TestNewArrivalMonitor_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ArrivalConfig
	}{
		{"zero trigger", config.ArrivalConfig{TriggerDistance: 0, MinDeparture: 1}},
		{"negative trigger", config.ArrivalConfig{TriggerDistance: -1, MinDeparture: 1}},
		{"negative departure", config.ArrivalConfig{TriggerDistance: 1, MinDeparture: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArrivalMonitor(tt.cfg)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidConfig))
		})
	}
}

func TestArrivalMonitor_FiresOnceWhenApproaching(t *testing.T) {
	monitor := newTestArrivalMonitor(t)

	fired := walk(monitor, "exit", 0, 20, 15, 10, 5, 1, 0.5, 0.2, 0.8, 1.2)

	assert.Equal(t, 1, fired)
}

func TestArrivalMonitor_NoFireBeforeDeparture(t *testing.T) {
	monitor := newTestArrivalMonitor(t)

	// Selected while standing 0.5m away and staying inside the zone.
	fired := walk(monitor, "exit", 0, 0.5, 0.4, 1.0, 0.1, 1.4, 0.5)

	assert.Zero(t, fired)
	assert.False(t, monitor.HasLeftOrigin())
}

func TestArrivalMonitor_AlreadyThereRequiresLeavingAndReturning(t *testing.T) {
	monitor := newTestArrivalMonitor(t)

	assert.Zero(t, walk(monitor, "exit", 0, 0.5, 0.5, 1.0))

	// Leave beyond minDeparture (3m from origin) and beyond 2x trigger.
	assert.Zero(t, walk(monitor, "exit", 0, 2.5, 3.6, 4.0))
	assert.True(t, monitor.HasLeftOrigin())

	assert.Equal(t, 1, walk(monitor, "exit", 0, 2.0, 1.2, 0.3))
}

func TestArrivalMonitor_RearmsAfterLeavingTwiceTrigger(t *testing.T) {
	monitor := newTestArrivalMonitor(t)

	assert.Equal(t, 1, walk(monitor, "exit", 0, 10, 5, 1))

	// Hovering between trigger and 2x trigger must not re-arm.
	assert.Zero(t, walk(monitor, "exit", 0, 2.5, 2.9, 1.0))

	// Beyond 2x trigger re-arms without a target change.
	assert.Equal(t, 1, walk(monitor, "exit", 0, 3.1, 1.0))
}

func TestArrivalMonitor_TargetChangeResets(t *testing.T) {
	monitor := newTestArrivalMonitor(t)

	assert.Equal(t, 1, walk(monitor, "a", 0, 10, 1))

	// New target far away: departure guard re-arms from the current spot.
	user := entity.Point{X: 1}
	assert.False(t, monitor.OnTick(20, "b", user))
	assert.Equal(t, "b", monitor.TargetKey())
	assert.False(t, monitor.HasLeftOrigin())
}

func TestArrivalMonitor_Reset(t *testing.T) {
	monitor := newTestArrivalMonitor(t)
	walk(monitor, "exit", 0, 10, 5)

	monitor.Reset()

	assert.Empty(t, monitor.TargetKey())
	assert.False(t, monitor.HasLeftOrigin())
}
