package model

import "gonum.org/v1/gonum/mat"

// TimeMatrix holds pairwise travel times between all nodes of an instance.
// It is symmetric with a zero diagonal by construction.
type TimeMatrix struct {
	m *mat.SymDense
}

// NewTimeMatrix computes travel times as Euclidean distance divided by speed.
// Speed must be positive.
func NewTimeMatrix(coords []Point, speed float64) TimeMatrix {
	n := len(coords)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, coords[i].DistanceTo(coords[j])/speed)
		}
	}
	return TimeMatrix{m: m}
}

// At returns the travel time between nodes i and j.
func (t TimeMatrix) At(i, j int) float64 { return t.m.At(i, j) }

// Len returns the number of nodes covered by the matrix.
func (t TimeMatrix) Len() int {
	if t.m == nil {
		return 0
	}
	return t.m.SymmetricDim()
}

// Row copies the travel times from node i to every node into dst.
// A nil dst allocates a new slice.
func (t TimeMatrix) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, t.m)
}
