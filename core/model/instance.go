package model

import "math"

// Point is a node location in the unit square.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ProblemInstance holds the static attributes of one VRPTW sample.
// Node 0 is always the depot; its time window spans the full horizon.
type ProblemInstance struct {
	Coords  []Point   `json:"coords"`
	TWStart []float64 `json:"tw_start"` // normalized window open, per node
	TWEnd   []float64 `json:"tw_end"`   // normalized window close, per node
}

// Len returns the number of nodes including the depot.
func (p ProblemInstance) Len() int { return len(p.Coords) }

// NumCustomers returns the number of non-depot nodes.
func (p ProblemInstance) NumCustomers() int {
	if len(p.Coords) == 0 {
		return 0
	}
	return len(p.Coords) - 1
}
