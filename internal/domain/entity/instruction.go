package entity

import (
	"fmt"
	"strings"
)

// Instruction is a turn instruction derived from the user's heading versus
// the bearing of the next waypoint.
type Instruction int

const (
	InstructionStraight Instruction = iota + 1
	InstructionTurnLeft
	InstructionTurnRight
	InstructionUTurn
)

func (i Instruction) String() string {
	switch i {
	case InstructionStraight:
		return "straight"
	case InstructionTurnLeft:
		return "turn_left"
	case InstructionTurnRight:
		return "turn_right"
	case InstructionUTurn:
		return "u_turn"
	default:
		return fmt.Sprintf("Instruction(%d)", int(i))
	}
}

// MarshalText renders the instruction by name in JSON payloads.
func (i Instruction) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (i *Instruction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "straight":
		*i = InstructionStraight
	case "turn_left":
		*i = InstructionTurnLeft
	case "turn_right":
		*i = InstructionTurnRight
	case "u_turn":
		*i = InstructionUTurn
	default:
		return fmt.Errorf("unknown instruction: %q", text)
	}

	return nil
}
