package simulator

import (
	"github.com/routesim/vrptw/core/model"
	"github.com/routesim/vrptw/core/routing"
)

// Policy picks the next node for one sample. Implementations receive the
// static instance, the current state, the travel-time matrix, the combined
// legality mask and the node the vehicle currently sits at. The second
// return value is false when the policy finds no legal node.
type Policy interface {
	Choose(inst model.ProblemInstance, state model.DynamicState, tm model.TimeMatrix, mask routing.Mask, current int) (int, bool)
}

// GreedyPolicy picks the legal customer with the smallest travel time from
// the current node, falling back to the depot when no customer is legal.
type GreedyPolicy struct{}

// Choose implements Policy.
func (GreedyPolicy) Choose(_ model.ProblemInstance, _ model.DynamicState, tm model.TimeMatrix, mask routing.Mask, current int) (int, bool) {
	best := -1
	var bestTime float64
	for j := 1; j < len(mask); j++ {
		if !mask[j] {
			continue
		}
		t := tm.At(current, j)
		if best == -1 || t < bestTime {
			best, bestTime = j, t
		}
	}
	if best >= 0 {
		return best, true
	}
	if len(mask) > 0 && mask[0] {
		return 0, true
	}
	return 0, false
}
