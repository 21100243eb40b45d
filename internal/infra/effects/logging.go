package effects

import (
	"log/slog"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/domain/service"
)

// LogPorts records every effect as a log line
type LogPorts struct {
	logger *slog.Logger
}

// NewLogPorts creates a logging effect sink
func NewLogPorts(logger *slog.Logger) *LogPorts {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogPorts{logger: logger.With(slog.String("component", "effects"))}
}

func (p *LogPorts) OnArrivalSound(targetName string) {
	p.logger.Info("Arrival sound", slog.String("target", targetName))
}

func (p *LogPorts) OnArrivalVibration(targetName string) {
	p.logger.Info("Arrival vibration", slog.String("target", targetName))
}

func (p *LogPorts) OnArrivalDialog(targetName string) {
	p.logger.Info("Arrival dialog", slog.String("target", targetName))
}

func (p *LogPorts) OnDirectionInstruction(instruction entity.Instruction) {
	p.logger.Debug("Direction instruction", slog.String("instruction", instruction.String()))
}

func (p *LogPorts) OnReroute(newTargetName string) {
	p.logger.Info("Reroute", slog.String("target", newTargetName))
}

var _ service.EffectPorts = (*LogPorts)(nil)
