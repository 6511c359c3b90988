package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routesim/vrptw/core/model"
)

func TestNextStateCustomerSettlement(t *testing.T) {
	inst, tm := testInstance()

	cases := []struct {
		name       string
		load       float64
		demand     float64
		wantLoad   float64
		wantDemand float64
	}{
		{"demand fits", 0.75, 0.25, 0.5, 0},
		{"demand drains load", 0.25, 0.75, 0, 0.5},
		{"exact match", 0.5, 0.5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := model.DynamicState{Load: tc.load, Demand: []float64{tc.load - 1, tc.demand, 0.1, 0.1}}
			next := NextState(inst, tm, state, 1, 0, 0)

			require.Equal(t, tc.wantLoad, next.Load)
			require.Equal(t, tc.wantDemand, next.Demand[1])
			require.Equal(t, next.Load-1, next.Demand[0], "depot sentinel tracks load")
			// Exactly one of the two clamps can leave a remainder.
			require.False(t, next.Load > 0 && next.Demand[1] > 0)
		})
	}
}

func TestNextStateTimeAdvance(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 1, Demand: []float64{0, 0.2, 0.2, 0.2}, Time: 0.3}
	next := NextState(inst, tm, state, 2, 1, 0.05)

	// Travel from node 1 to node 2 takes 0.5; no wait, window opened at 0.2.
	require.InDelta(t, 0.85, next.Time, 1e-12)
	require.GreaterOrEqual(t, next.Time, state.Time, "time never decreases on a customer visit")
}

func TestNextStateWaitsForWindowOpen(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 1, Demand: []float64{0, 0.2, 0.2, 0.2}}
	next := NextState(inst, tm, state, 2, 0, 0.05)

	// Arrival at 0.4 is past the 0.2 window open: no wait.
	require.InDelta(t, 0.45, next.Time, 1e-12)

	early := NextState(inst, tm, model.DynamicState{Load: 1, Demand: []float64{0, 0.2, 0.2, 0.2}}, 2, 2, 0.05)
	// Zero travel from node 2 to itself: arrival 0 is lifted to the 0.2 open.
	require.InDelta(t, 0.25, early.Time, 1e-12)
}

func TestNextStateHorizonCap(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 1, Demand: []float64{0, 0.2, 0.2, 0.2}, Time: 0.99}
	next := NextState(inst, tm, state, 3, 0, 0.1)

	require.Equal(t, 1.0, next.Time, "vehicle time is capped at the horizon end")
}

func TestNextStateDepotReset(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 0.15, Demand: []float64{-0.85, 0.4, 0, 0.2}, Time: 0.7}
	next := NextState(inst, tm, state, 0, 3, 0.05)

	require.Equal(t, 1.0, next.Load)
	require.Equal(t, 0.0, next.Demand[0])
	require.Equal(t, 0.0, next.Time)
	require.Equal(t, state.Demand[1], next.Demand[1], "customer demand untouched by a refill")
	require.Equal(t, state.Demand[3], next.Demand[3])
}

func TestNextStateDoesNotMutateInput(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 0.6, Demand: []float64{-0.4, 0.3, 0.2, 0.1}, Time: 0.2}
	before := state.Clone()

	_ = NextState(inst, tm, state, 1, 0, 0.05)
	_ = NextState(inst, tm, state, 0, 1, 0.05)

	require.Equal(t, before, state)
}

func TestNextStateOutOfRangePanics(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 1, Demand: []float64{0, 0.2, 0.2, 0.2}}

	require.Panics(t, func() { NextState(inst, tm, state, 4, 0, 0) })
	require.Panics(t, func() { NextState(inst, tm, state, -1, 0, 0) })
	require.Panics(t, func() { NextState(inst, tm, state, 1, 9, 0) })
}

func TestNextStateNoNaN(t *testing.T) {
	inst, tm := testInstance()
	state := model.DynamicState{Load: 0, Demand: []float64{-1, 0.2, 0.2, 0.2}, Time: 0.5}
	next := NextState(inst, tm, state, 1, 2, 0.05)

	require.False(t, math.IsNaN(next.Load) || math.IsNaN(next.Time))
	require.Equal(t, 0.0, next.Load)
	require.Equal(t, 0.2, next.Demand[1], "an empty vehicle cannot serve demand")
}
