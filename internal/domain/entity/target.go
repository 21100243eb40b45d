package entity

import (
	"strconv"
	"strings"
)

// TargetInstance is one physical occurrence of a named destination. Several
// instances may share a name, e.g. one restroom per floor.
type TargetInstance struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
}

// Key identifies the instance. Two instances with the same name at different
// positions have different keys.
func (t TargetInstance) Key() string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte('@')
	b.WriteString(strconv.FormatFloat(t.Position.X, 'f', 3, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(t.Position.Y, 'f', 3, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(t.Position.Z, 'f', 3, 64))

	return b.String()
}

// SameAs compares instance identity.
func (t TargetInstance) SameAs(other TargetInstance) bool {
	return t.Key() == other.Key()
}
