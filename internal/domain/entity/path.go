package entity

import (
	"github.com/paulmach/orb"
)

// Path is an ordered polyline over the navigable surface, from the user's
// position to a destination. Paths are never mutated in place.
//
// An empty path means the destination is unreachable or no destination is
// set. A single point means the user is already at the destination.
type Path []Point

// IsEmpty reports whether the path carries no waypoints at all.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Length is the sum of consecutive segment distances. Paths with fewer than
// two points have zero length.
func (p Path) Length() float64 {
	if len(p) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i-1].DistanceTo(p[i])
	}

	return total
}

// Destination returns the last waypoint.
func (p Path) Destination() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}

	return p[len(p)-1], true
}

// Horizontal projects the path onto the floor plane.
func (p Path) Horizontal() orb.LineString {
	line := make(orb.LineString, 0, len(p))
	for _, point := range p {
		line = append(line, point.Horizontal())
	}

	return line
}
