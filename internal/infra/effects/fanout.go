package effects

import (
	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// Fanout forwards every effect to each port in order
type Fanout []service.EffectPorts

func (f Fanout) OnArrivalSound(targetName string) {
	for _, port := range f {
		port.OnArrivalSound(targetName)
	}
}

func (f Fanout) OnArrivalVibration(targetName string) {
	for _, port := range f {
		port.OnArrivalVibration(targetName)
	}
}

func (f Fanout) OnArrivalDialog(targetName string) {
	for _, port := range f {
		port.OnArrivalDialog(targetName)
	}
}

func (f Fanout) OnDirectionInstruction(instruction entity.Instruction) {
	for _, port := range f {
		port.OnDirectionInstruction(instruction)
	}
}

func (f Fanout) OnReroute(newTargetName string) {
	for _, port := range f {
		port.OnReroute(newTargetName)
	}
}

var _ service.EffectPorts = Fanout(nil)
