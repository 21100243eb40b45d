package service

import (
	"wayfinder/internal/domain/entity"
)

// EffectPorts receives the session's user-facing effects. Calls are
// fire-and-forget: implementations must not block the tick for long and the
// session never observes a result.
type EffectPorts interface {
	OnArrivalSound(targetName string)
	OnArrivalVibration(targetName string)
	OnArrivalDialog(targetName string)
	OnDirectionInstruction(instruction entity.Instruction)
	OnReroute(newTargetName string)
}

// MuteState reports the user's feedback preferences. Effect ports consult it;
// the session never does.
type MuteState interface {
	SoundMuted() bool
	VibrationMuted() bool
}
