package entity

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position in the building's local navigation frame, in meters.
// Y is the vertical axis; X and Z span the floor plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns the point as a gonum vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// PointFromVec converts a gonum vector back into a Point.
func PointFromVec(v r3.Vec) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// DistanceTo returns the straight-line distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return r3.Norm(r3.Sub(q.Vec(), p.Vec()))
}

// Horizontal projects the point onto the floor plane (X, Z).
func (p Point) Horizontal() orb.Point {
	return orb.Point{p.X, p.Z}
}

// HorizontalDistanceTo ignores the vertical component.
func (p Point) HorizontalDistanceTo(q Point) float64 {
	return planar.Distance(p.Horizontal(), q.Horizontal())
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
}
