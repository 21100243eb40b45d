package navigation

import (
	"wayfinder/config"
	"wayfinder/internal/domain/entity"
)

// ArrivalMonitor decides once per visit whether the user has arrived at the
// current target. One monitor exists per output channel.
//
// Arrival requires a transition into the trigger zone: the user must first
// move minDeparture away from where the target was selected, and selecting a
// target while already inside the zone latches it as fired.
type ArrivalMonitor struct {
	triggerDistance float64
	minDeparture    float64

	targetKey     string
	hasFired      bool
	hasLeftOrigin bool
	origin        entity.Point
}

// NewArrivalMonitor validates cfg and returns a monitor with no target.
func NewArrivalMonitor(cfg config.ArrivalConfig) (*ArrivalMonitor, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &ArrivalMonitor{
		triggerDistance: cfg.TriggerDistance,
		minDeparture:    cfg.MinDeparture,
	}, nil
}

// OnTick advances the state machine and reports whether arrival fires now.
func (m *ArrivalMonitor) OnTick(distanceToTarget float64, targetKey string, userPosition entity.Point) bool {
	if targetKey != m.targetKey {
		m.targetKey = targetKey
		m.hasLeftOrigin = false
		m.origin = userPosition
		m.hasFired = distanceToTarget <= m.triggerDistance
	}

	if !m.hasLeftOrigin && m.origin.DistanceTo(userPosition) > m.minDeparture {
		m.hasLeftOrigin = true
	}

	fired := false
	if m.hasLeftOrigin && distanceToTarget <= m.triggerDistance && !m.hasFired {
		m.hasFired = true
		fired = true
	}

	// Re-arm for another visit to the same target.
	if distanceToTarget > 2*m.triggerDistance {
		m.hasFired = false
	}

	return fired
}

// Reset forgets the tracked target. The next tick re-arms the departure guard
// from the position it reports.
func (m *ArrivalMonitor) Reset() {
	m.targetKey = ""
	m.hasFired = false
	m.hasLeftOrigin = false
	m.origin = entity.Point{}
}

// TargetKey returns the key of the tracked target, empty after Reset.
func (m *ArrivalMonitor) TargetKey() string {
	return m.targetKey
}

// HasLeftOrigin reports whether the departure guard has been satisfied.
func (m *ArrivalMonitor) HasLeftOrigin() bool {
	return m.hasLeftOrigin
}
