package navigation

import (
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectionConfig() config.DirectionConfig {
	return config.DirectionConfig{
		MinAheadDistance:   1,
		TurnLeftDegrees:    -40,
		TurnRightDegrees:   40,
		UTurnDegrees:       150,
		SampleInterval:     time.Second,
		MovementNoiseFloor: 0.2,
	}
}

func newTestInstructor(t *testing.T) *DirectionInstructor {
	t.Helper()

	instructor, err := NewDirectionInstructor(testDirectionConfig())
	require.NoError(t, err)

	return instructor
}

func TestNewDirectionInstructor_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.DirectionConfig)
	}{
		{"zero sample interval", func(cfg *config.DirectionConfig) { cfg.SampleInterval = 0 }},
		{"positive left threshold", func(cfg *config.DirectionConfig) { cfg.TurnLeftDegrees = 10 }},
		{"negative right threshold", func(cfg *config.DirectionConfig) { cfg.TurnRightDegrees = -10 }},
		{"u-turn below right threshold", func(cfg *config.DirectionConfig) { cfg.UTurnDegrees = 30 }},
		{"u-turn below left magnitude", func(cfg *config.DirectionConfig) { cfg.TurnLeftDegrees = -170 }},
		{"negative noise floor", func(cfg *config.DirectionConfig) { cfg.MovementNoiseFloor = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testDirectionConfig()
			tt.mutate(&cfg)

			_, err := NewDirectionInstructor(cfg)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidConfig))
		})
	}
}

func TestSignedAngle(t *testing.T) {
	forward := orb.Point{0, 1}

	assert.InDelta(t, 0.0, SignedAngle(forward, orb.Point{0, 5}), 1e-9)
	assert.InDelta(t, 90.0, SignedAngle(forward, orb.Point{1, 0}), 1e-9)
	assert.InDelta(t, -90.0, SignedAngle(forward, orb.Point{-1, 0}), 1e-9)
	assert.InDelta(t, 180.0, SignedAngle(forward, orb.Point{0, -1}), 1e-9)
}

func TestDirectionInstructor_Classify(t *testing.T) {
	instructor := newTestInstructor(t)

	tests := []struct {
		angle float64
		want  entity.Instruction
	}{
		{0, entity.InstructionStraight},
		{40, entity.InstructionStraight},
		{-40, entity.InstructionStraight},
		{41, entity.InstructionTurnRight},
		{90, entity.InstructionTurnRight},
		{-90, entity.InstructionTurnLeft},
		{150, entity.InstructionTurnRight},
		{170, entity.InstructionUTurn},
		{-170, entity.InstructionUTurn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, instructor.Classify(tt.angle), "angle %v", tt.angle)
	}
}

// heading walks the user one meter forward along +Z and evaluates against
// a path that continues towards target.
func heading(t *testing.T, target entity.Point) (entity.Instruction, bool) {
	t.Helper()

	instructor := newTestInstructor(t)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	user := entity.Point{Z: 1}

	_, ok := instructor.OnTick(entity.Path{{}, target}, entity.Point{}, start)
	require.False(t, ok, "first sample only records history")

	return instructor.OnTick(entity.Path{user, target}, user, start.Add(time.Second))
}

func TestDirectionInstructor_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		target entity.Point
		want   entity.Instruction
	}{
		{"collinear", entity.Point{Z: 10}, entity.InstructionStraight},
		{"ninety degrees right", entity.Point{X: 10, Z: 1}, entity.InstructionTurnRight},
		{"ninety degrees left", entity.Point{X: -10, Z: 1}, entity.InstructionTurnLeft},
		{"one seventy degrees", entity.Point{X: 1.7632698, Z: -9}, entity.InstructionUTurn},
		{"height is ignored", entity.Point{Y: 6, Z: 10}, entity.InstructionStraight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction, ok := heading(t, tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.want, instruction)
		})
	}
}

func TestDirectionInstructor_RateLimited(t *testing.T) {
	instructor := newTestInstructor(t)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	path := entity.Path{{}, {Z: 20}}

	instructor.OnTick(path, entity.Point{}, start)

	_, ok := instructor.OnTick(path, entity.Point{Z: 1}, start.Add(500*time.Millisecond))
	assert.False(t, ok, "inside the sample interval")

	// The skipped tick did not move the sample, so movement is measured from Z=0.
	instruction, ok := instructor.OnTick(path, entity.Point{Z: 1.1}, start.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, entity.InstructionStraight, instruction)
}

func TestDirectionInstructor_StationaryUserGetsNothing(t *testing.T) {
	instructor := newTestInstructor(t)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	path := entity.Path{{}, {X: 10}}

	instructor.OnTick(path, entity.Point{}, start)
	_, ok := instructor.OnTick(path, entity.Point{Z: 0.1}, start.Add(time.Second))

	assert.False(t, ok)
}

func TestDirectionInstructor_SkipsNearbyWaypoints(t *testing.T) {
	instructor := newTestInstructor(t)
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	instructor.OnTick(entity.Path{{}, {Z: 5}}, entity.Point{}, start)

	// The corner at Z=1.5 is within minAheadDistance; the turn after it counts.
	user := entity.Point{Z: 1}
	path := entity.Path{user, {Z: 1.5}, {X: 10, Z: 1.5}}
	instruction, ok := instructor.OnTick(path, user, start.Add(time.Second))

	require.True(t, ok)
	assert.Equal(t, entity.InstructionTurnRight, instruction)
}

func TestDirectionInstructor_DegeneratePath(t *testing.T) {
	instructor := newTestInstructor(t)

	_, ok := instructor.OnTick(entity.Path{{X: 1}}, entity.Point{X: 1}, time.Now())

	assert.False(t, ok)
}
