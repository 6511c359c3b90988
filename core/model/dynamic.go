package model

// DynamicState is the mutable routing state of one sample.
//
// Demand[0] is not a real demand: while the vehicle is en route it mirrors
// Load-1 so that the depot stays a masked candidate, and it is reset to 0 on
// a depot visit. Load carries the authoritative value.
type DynamicState struct {
	Load   float64   `json:"load"`   // remaining capacity fraction in [0,1]
	Demand []float64 `json:"demand"` // remaining demand fraction per node
	Time   float64   `json:"time"`   // normalized elapsed vehicle time in [0,1]
}

// NewDynamicState returns the initial state for an instance: full load,
// zero elapsed time and the given per-node demands. demands[0] must be 0.
func NewDynamicState(demands []float64) DynamicState {
	d := make([]float64, len(demands))
	copy(d, demands)
	return DynamicState{Load: 1, Demand: d}
}

// Clone returns an independent copy of the state.
func (s DynamicState) Clone() DynamicState {
	d := make([]float64, len(s.Demand))
	copy(d, s.Demand)
	return DynamicState{Load: s.Load, Demand: d, Time: s.Time}
}

// AllServed reports whether every demand slot, the depot sentinel included,
// is exactly zero. This is the terminal condition of an episode.
func (s DynamicState) AllServed() bool {
	for _, d := range s.Demand {
		if d != 0 {
			return false
		}
	}
	return true
}

// RemainingDemand sums the unmet demand over all customers.
func (s DynamicState) RemainingDemand() float64 {
	var sum float64
	for _, d := range s.Demand[1:] {
		sum += d
	}
	return sum
}
