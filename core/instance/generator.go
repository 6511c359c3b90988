// Package instance samples VRPTW problem instances: node coordinates in the
// unit square, integer time windows normalized to the horizon, and integer
// demands normalized to the vehicle capacity.
package instance

import (
	"math/rand"

	"github.com/routesim/vrptw/core/model"
)

// Sample bundles the static inputs and the initial state of one episode.
type Sample struct {
	Instance model.ProblemInstance `json:"instance"`
	Matrix   model.TimeMatrix      `json:"-"`
	State    model.DynamicState    `json:"state"`
}

// Generator draws problem instances from a seeded random stream.
type Generator struct {
	cfg Config
	rng *rand.Rand

	serviceTime float64
	speed       float64
}

// New validates cfg and returns a Generator. A zero seed is replaced by a
// randomly drawn one.
func New(cfg Config) (*Generator, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		// Both scalars are expressed in normalized horizon units: service
		// time shrinks by the horizon, speed grows by it.
		serviceTime: cfg.ServiceTime / cfg.Horizon(),
		speed:       cfg.VehicleSpeed * cfg.Horizon(),
	}, nil
}

// ServiceTime returns the normalized per-visit service duration.
func (g *Generator) ServiceTime() float64 { return g.serviceTime }

// Speed returns the horizon-scaled vehicle speed.
func (g *Generator) Speed() float64 { return g.speed }

// Sample draws one problem instance with its travel-time matrix and
// initial dynamic state.
func (g *Generator) Sample() Sample {
	cfg := g.cfg
	n := cfg.NumNodes + 1
	horizon := cfg.Horizon()

	coords := make([]model.Point, n)
	for i := range coords {
		coords[i] = model.Point{X: g.rng.Float64(), Y: g.rng.Float64()}
	}

	twStart := make([]float64, n)
	twEnd := make([]float64, n)
	for i := 1; i < n; i++ {
		start := cfg.TWFrom + g.rng.Intn(cfg.TWTo-cfg.MaxTW-cfg.TWFrom+1)
		span := cfg.MinTW + g.rng.Intn(cfg.MaxTW-cfg.MinTW+1)
		twStart[i] = float64(start) / horizon
		twEnd[i] = float64(start+span) / horizon
	}
	// Depot is serviceable over the whole horizon.
	twStart[0] = 0
	twEnd[0] = 1

	demands := make([]float64, n)
	for i := 1; i < n; i++ {
		demands[i] = float64(1+g.rng.Intn(cfg.MaxDemand)) / float64(cfg.MaxLoad)
	}

	inst := model.ProblemInstance{Coords: coords, TWStart: twStart, TWEnd: twEnd}
	return Sample{
		Instance: inst,
		Matrix:   model.NewTimeMatrix(coords, g.speed),
		State:    model.NewDynamicState(demands),
	}
}

// Batch draws cfg.NumSamples independent samples.
func (g *Generator) Batch() []Sample {
	out := make([]Sample, g.cfg.NumSamples)
	for i := range out {
		out[i] = g.Sample()
	}
	return out
}
