package domain

import "math"

// Location is a point on the simulated map.
type Location struct {
	Name string
	X    float64
	Y    float64
}

// DistanceTo returns the straight-line distance to another location.
func (l Location) DistanceTo(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}
