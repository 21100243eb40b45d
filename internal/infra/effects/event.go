// Package effects contains the EffectPorts implementations: structured
// logging, fan-out, the mute gate and the event broadcaster used by the
// stream endpoint.
package effects

import (
	"time"

	"wayfinder/internal/domain/entity"
)

// EventType names a session side effect
type EventType string

const (
	EventArrivalSound     EventType = "arrival_sound"
	EventArrivalVibration EventType = "arrival_vibration"
	EventArrivalDialog    EventType = "arrival_dialog"
	EventDirection        EventType = "direction"
	EventReroute          EventType = "reroute"
)

// Event is the wire form of an effect pushed to stream subscribers
type Event struct {
	Type        EventType           `json:"type"`
	Target      string              `json:"target,omitempty"`
	Instruction *entity.Instruction `json:"instruction,omitempty"`
	At          time.Time           `json:"at"`
}
