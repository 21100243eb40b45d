package navigation

import (
	"math"
	"time"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DirectionInstructor compares the user's realized heading with the bearing
// of the next waypoint and classifies the turn to take.
type DirectionInstructor struct {
	minAheadDistance   float64
	turnLeftDegrees    float64
	turnRightDegrees   float64
	uTurnDegrees       float64
	sampleInterval     time.Duration
	movementNoiseFloor float64

	hasSample           bool
	lastSampledPosition entity.Point
	lastSampleTime      time.Time
}

// NewDirectionInstructor validates cfg and returns an instructor with no
// movement history.
func NewDirectionInstructor(cfg config.DirectionConfig) (*DirectionInstructor, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.UTurnDegrees <= -cfg.TurnLeftDegrees {
		return nil, domainerrors.ErrInvalidConfig.WithDetails("uTurnDegrees must exceed the turn-left magnitude")
	}

	return &DirectionInstructor{
		minAheadDistance:   cfg.MinAheadDistance,
		turnLeftDegrees:    cfg.TurnLeftDegrees,
		turnRightDegrees:   cfg.TurnRightDegrees,
		uTurnDegrees:       cfg.UTurnDegrees,
		sampleInterval:     cfg.SampleInterval,
		movementNoiseFloor: cfg.MovementNoiseFloor,
	}, nil
}

// OnTick returns an instruction at most once per sample interval. It returns
// false while the user is effectively stationary, before a movement history
// exists, or when the path has no segment to follow.
func (d *DirectionInstructor) OnTick(path entity.Path, userPosition entity.Point, now time.Time) (entity.Instruction, bool) {
	if len(path) < 2 {
		return 0, false
	}

	if d.hasSample && now.Sub(d.lastSampleTime) < d.sampleInterval {
		return 0, false
	}

	previous, hadSample := d.lastSampledPosition, d.hasSample
	d.hasSample = true
	d.lastSampledPosition = userPosition
	d.lastSampleTime = now

	if !hadSample {
		return 0, false
	}

	if previous.HorizontalDistanceTo(userPosition) < d.movementNoiseFloor {
		return 0, false
	}

	waypoint := d.nextWaypoint(path, userPosition)
	movement := horizontalDelta(previous, userPosition)
	bearing := horizontalDelta(userPosition, waypoint)
	if planar.Distance(orb.Point{}, bearing) == 0 {
		return 0, false
	}

	return d.Classify(SignedAngle(movement, bearing)), true
}

// Classify maps a signed horizontal angle in degrees to an instruction.
// Positive angles turn right.
func (d *DirectionInstructor) Classify(angle float64) entity.Instruction {
	switch {
	case math.Abs(angle) > d.uTurnDegrees:
		return entity.InstructionUTurn
	case angle < d.turnLeftDegrees:
		return entity.InstructionTurnLeft
	case angle > d.turnRightDegrees:
		return entity.InstructionTurnRight
	default:
		return entity.InstructionStraight
	}
}

// Reset drops the movement history.
func (d *DirectionInstructor) Reset() {
	d.hasSample = false
	d.lastSampledPosition = entity.Point{}
	d.lastSampleTime = time.Time{}
}

// nextWaypoint is the first waypoint farther than minAheadDistance from the
// user, or the destination.
func (d *DirectionInstructor) nextWaypoint(path entity.Path, userPosition entity.Point) entity.Point {
	for _, waypoint := range path[1:] {
		if waypoint.HorizontalDistanceTo(userPosition) > d.minAheadDistance {
			return waypoint
		}
	}

	return path[len(path)-1]
}

func horizontalDelta(from, to entity.Point) orb.Point {
	return orb.Point{to.X - from.X, to.Z - from.Z}
}

// SignedAngle returns the angle in degrees from heading to bearing on the
// floor plane (X right, Z forward), positive clockwise seen from above.
func SignedAngle(heading, bearing orb.Point) float64 {
	cross := heading[0]*bearing[1] - heading[1]*bearing[0]
	dot := heading[0]*bearing[0] + heading[1]*bearing[1]

	return -math.Atan2(cross, dot) * 180 / math.Pi
}
