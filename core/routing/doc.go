// Package routing implements the deterministic VRPTW environment engine.
//
// It operates on one sample at a time: batches are collections of
// independent states, so callers iterate samples and each may terminate on
// its own step.
//
// Key operations:
//   - CapacityMask: legal next nodes under load/demand constraints,
//     including the depot-revisit policy and forced depot return.
//   - TimeWindowMask: nodes still reachable before their window closes.
//   - NextState: functional state transition after a node is visited.
//   - TourCost: depot-anchored Euclidean length of a finished tour.
//
// The two masks are computed independently; combining them (logical AND)
// is the caller's decision-policy concern.
package routing
