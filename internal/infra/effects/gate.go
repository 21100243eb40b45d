package effects

import (
	"sync/atomic"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// Gate drops sound and vibration effects while the matching mute flag is
// set. Dialogs, directions and reroutes always pass.
type Gate struct {
	next service.EffectPorts
	mute service.MuteState
}

// NewGate wraps next with the mute checks of mute
func NewGate(next service.EffectPorts, mute service.MuteState) *Gate {
	return &Gate{next: next, mute: mute}
}

func (g *Gate) OnArrivalSound(targetName string) {
	if g.mute.SoundMuted() {
		return
	}
	g.next.OnArrivalSound(targetName)
}

func (g *Gate) OnArrivalVibration(targetName string) {
	if g.mute.VibrationMuted() {
		return
	}
	g.next.OnArrivalVibration(targetName)
}

func (g *Gate) OnArrivalDialog(targetName string) {
	g.next.OnArrivalDialog(targetName)
}

func (g *Gate) OnDirectionInstruction(instruction entity.Instruction) {
	g.next.OnDirectionInstruction(instruction)
}

func (g *Gate) OnReroute(newTargetName string) {
	g.next.OnReroute(newTargetName)
}

// MuteSettings is a MuteState the client toggles at runtime
type MuteSettings struct {
	sound     atomic.Bool
	vibration atomic.Bool
}

// NewMuteSettings starts with everything audible
func NewMuteSettings() *MuteSettings {
	return &MuteSettings{}
}

func (m *MuteSettings) SoundMuted() bool     { return m.sound.Load() }
func (m *MuteSettings) VibrationMuted() bool { return m.vibration.Load() }

// SetSoundMuted updates the sound flag
func (m *MuteSettings) SetSoundMuted(muted bool) { m.sound.Store(muted) }

// SetVibrationMuted updates the vibration flag
func (m *MuteSettings) SetVibrationMuted(muted bool) { m.vibration.Store(muted) }

var (
	_ service.EffectPorts = (*Gate)(nil)
	_ service.MuteState   = (*MuteSettings)(nil)
)
