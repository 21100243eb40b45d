package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Length(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want float64
	}{
		{"empty", nil, 0},
		{"single point", Path{{X: 1, Y: 0, Z: 1}}, 0},
		{"straight segment", Path{{X: 0}, {X: 3, Z: 4}}, 5},
		{"with stairs", Path{{X: 0}, {X: 3}, {X: 3, Y: 4}}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.path.Length(), 1e-9)
		})
	}
}

func TestPoint_HorizontalDistanceIgnoresHeight(t *testing.T) {
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 3, Y: 10, Z: 4}

	assert.InDelta(t, 5.0, a.HorizontalDistanceTo(b), 1e-9)
	assert.Greater(t, a.DistanceTo(b), 10.0)
}

func TestTargetInstance_Key(t *testing.T) {
	first := TargetInstance{Name: "Restroom", Position: Point{X: 1, Z: 2}}
	second := TargetInstance{Name: "Restroom", Position: Point{X: 1, Y: 4, Z: 2}}

	assert.False(t, first.SameAs(second))
	assert.True(t, first.SameAs(TargetInstance{Name: "Restroom", Position: Point{X: 1, Z: 2}}))
	assert.Equal(t, "Restroom@1.000,0.000,2.000", first.Key())
}

func TestInstruction_TextRoundTrip(t *testing.T) {
	var parsed Instruction
	text, err := InstructionTurnLeft.MarshalText()
	assert.NoError(t, err)
	assert.NoError(t, parsed.UnmarshalText(text))
	assert.Equal(t, InstructionTurnLeft, parsed)

	assert.Error(t, parsed.UnmarshalText([]byte("sideways")))
}
