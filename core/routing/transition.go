package routing

import (
	"fmt"
	"math"

	"github.com/routesim/vrptw/core/model"
)

// NextState applies a visit to node chosen, coming from node prev, and
// returns the resulting state. The input state is never mutated.
//
// Visiting a customer settles load against demand (exactly one of the two
// clamps below is active per visit), then advances the clock: travel time,
// a wait until the window opens when the vehicle is early, and the fixed
// service time, capped at the end of the horizon.
//
// Visiting the depot refills the vehicle and resets the clock.
//
// An index outside the instance is a caller bug and panics.
func NextState(inst model.ProblemInstance, tm model.TimeMatrix, state model.DynamicState, chosen, prev int, serviceTime float64) model.DynamicState {
	n := len(state.Demand)
	checkNode(n, chosen)
	checkNode(n, prev)

	next := state.Clone()
	if chosen == 0 {
		next.Load = 1
		next.Demand[0] = 0
		next.Time = 0
		return next
	}

	load := state.Load
	demand := state.Demand[chosen]
	next.Load = math.Max(load-demand, 0)
	next.Demand[chosen] = math.Max(demand-load, 0)
	next.Demand[0] = next.Load - 1

	arrival := state.Time + tm.At(prev, chosen)
	if arrival < inst.TWStart[chosen] {
		arrival = inst.TWStart[chosen]
	}
	next.Time = math.Min(arrival+serviceTime, 1)
	return next
}

func checkNode(n, idx int) {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("routing: node index %d out of range [0,%d)", idx, n))
	}
}
