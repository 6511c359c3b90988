package routing

import (
	"github.com/routesim/vrptw/core/model"
)

// Mask marks which nodes are legal next choices for a sample.
type Mask []bool

// And returns the element-wise conjunction of m and other.
func (m Mask) And(other Mask) Mask {
	out := make(Mask, len(m))
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}

// None reports whether no node is legal. An all-zero capacity mask is the
// terminal signal for an episode.
func (m Mask) None() bool {
	for _, ok := range m {
		if ok {
			return false
		}
	}
	return true
}

// Count returns the number of legal nodes.
func (m Mask) Count() int {
	n := 0
	for _, ok := range m {
		if ok {
			n++
		}
	}
	return n
}

// CapacityMask returns the nodes that are legal next choices under the
// load and demand constraints. prevChosen is the node picked at the
// previous step and drives the depot-revisit policy.
//
// Rules, in order:
//  1. Every demand slot zero (depot sentinel included): all-zero mask,
//     the episode is done.
//  2. A node is a candidate iff its demand is nonzero and strictly less
//     than the current load.
//  3. The depot is forced legal after a customer visit and forbidden
//     right after a depot visit, so the vehicle never idles at the depot.
//  4. An empty vehicle, or no customer demand left, forces a depot-only
//     mask regardless of rule 3.
func CapacityMask(state model.DynamicState, prevChosen int) Mask {
	n := len(state.Demand)
	mask := make(Mask, n)

	if state.AllServed() {
		return mask
	}

	for i, d := range state.Demand {
		mask[i] = d != 0 && d < state.Load
	}

	mask[0] = prevChosen != 0

	if state.Load == 0 || state.RemainingDemand() == 0 {
		mask[0] = true
		for i := 1; i < n; i++ {
			mask[i] = false
		}
	}
	return mask
}

// TimeWindowMask returns, for every node, whether it can still be reached
// before its window closes when departing node current at the state's
// elapsed time.
func TimeWindowMask(inst model.ProblemInstance, state model.DynamicState, tm model.TimeMatrix, current int) Mask {
	checkNode(tm.Len(), current)
	n := inst.Len()
	mask := make(Mask, n)
	for j := 0; j < n; j++ {
		mask[j] = inst.TWEnd[j] >= state.Time+tm.At(current, j)
	}
	return mask
}
