package model

import (
	"math"
	"math/rand"
	"testing"
)

func TestTimeMatrixSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	coords := make([]Point, 12)
	for i := range coords {
		coords[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	tm := NewTimeMatrix(coords, 0.7)

	if tm.Len() != len(coords) {
		t.Fatalf("matrix len = %d, want %d", tm.Len(), len(coords))
	}
	for i := 0; i < tm.Len(); i++ {
		if tm.At(i, i) != 0 {
			t.Fatalf("diagonal [%d][%d] = %f, want 0", i, i, tm.At(i, i))
		}
		for j := 0; j < tm.Len(); j++ {
			if tm.At(i, j) != tm.At(j, i) {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
			if tm.At(i, j) < 0 {
				t.Fatalf("negative travel time at (%d,%d)", i, j)
			}
		}
	}
}

func TestTimeMatrixSpeedScaling(t *testing.T) {
	coords := []Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
	tm := NewTimeMatrix(coords, 2)
	if math.Abs(tm.At(0, 1)-2.5) > 1e-12 {
		t.Fatalf("travel time = %f, want 2.5", tm.At(0, 1))
	}
}

func TestTimeMatrixRow(t *testing.T) {
	coords := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tm := NewTimeMatrix(coords, 1)
	row := tm.Row(nil, 0)
	if len(row) != 3 || row[0] != 0 || row[1] != 1 || row[2] != 1 {
		t.Fatalf("unexpected row: %v", row)
	}
}
