package routing

import "github.com/routesim/vrptw/core/model"

// TourCost returns the total Euclidean length of the tour described by the
// chosen node indices, anchored at the depot on both ends. Consecutive
// depot visits contribute zero length, so redundant depot entries are
// cost-neutral.
func TourCost(coords []model.Point, tour []int) float64 {
	if len(coords) == 0 {
		return 0
	}
	prev := coords[0]
	var total float64
	for _, idx := range tour {
		checkNode(len(coords), idx)
		total += prev.DistanceTo(coords[idx])
		prev = coords[idx]
	}
	total += prev.DistanceTo(coords[0])
	return total
}
