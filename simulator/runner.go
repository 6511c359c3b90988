// Package simulator rolls out batches of routing episodes against the
// environment engine. Samples are independent: each episode terminates on
// its own step and finished samples are not stepped further.
package simulator

import (
	"time"

	"github.com/google/uuid"

	"github.com/routesim/vrptw/core/instance"
	"github.com/routesim/vrptw/core/routing"
	"github.com/routesim/vrptw/infra/logger"
	"github.com/routesim/vrptw/infra/metrics"
)

// Config holds the episode runner parameters.
type Config struct {
	// MaxSteps caps the decision steps per episode; 0 derives 8*(N+1)
	// from the instance size.
	MaxSteps int `json:"max_steps"`
}

// Result describes one finished episode.
type Result struct {
	EpisodeID   string
	Sample      int
	Tour        []int
	Steps       int
	DepotVisits int
	Cost        float64
	// Feasible is false when the episode hit the step cap or had to
	// service a node after its window closed.
	Feasible bool
	Duration time.Duration
}

// Runner drives a policy through whole episodes and reports the results to
// a metrics sink.
type Runner struct {
	cfg         Config
	policy      Policy
	serviceTime float64
	log         logger.Logger
	sink        metrics.Sink
}

// NewRunner creates a Runner. A nil policy defaults to GreedyPolicy, a nil
// sink discards metrics.
func NewRunner(cfg Config, policy Policy, serviceTime float64, log logger.Logger, sink metrics.Sink) *Runner {
	if policy == nil {
		policy = GreedyPolicy{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Runner{cfg: cfg, policy: policy, serviceTime: serviceTime, log: log, sink: sink}
}

// Run rolls out every sample of the batch to termination and records the
// episode results.
func (r *Runner) Run(batch []instance.Sample) []Result {
	results := make([]Result, len(batch))
	for i, s := range batch {
		results[i] = r.runEpisode(i, s)
		r.log.Debugw("episode finished", map[string]any{
			"sample":   i,
			"steps":    results[i].Steps,
			"cost":     results[i].Cost,
			"feasible": results[i].Feasible,
		})
	}
	recs := make([]metrics.EpisodeResult, len(results))
	for i, res := range results {
		recs[i] = metrics.EpisodeResult{
			EpisodeID:   res.EpisodeID,
			Sample:      res.Sample,
			Steps:       res.Steps,
			DepotVisits: res.DepotVisits,
			Cost:        res.Cost,
			Feasible:    res.Feasible,
			Duration:    res.Duration,
		}
	}
	if err := r.sink.RecordEpisodeResult(recs); err != nil {
		r.log.Errorf("record episodes: %v", err)
	}
	return results
}

func (r *Runner) runEpisode(sampleIdx int, s instance.Sample) Result {
	begin := time.Now()
	inst, tm := s.Instance, s.Matrix
	maxSteps := r.cfg.MaxSteps
	if maxSteps == 0 {
		maxSteps = 8 * inst.Len()
	}

	state := s.State.Clone()
	prev := 0
	res := Result{
		EpisodeID: uuid.NewString(),
		Sample:    sampleIdx,
		Feasible:  true,
	}

	for {
		capacity := routing.CapacityMask(state, prev)
		if capacity.None() {
			break // all demand served and vehicle home
		}
		if res.Steps >= maxSteps {
			r.log.Warnf("sample %d: step cap %d hit, marking infeasible", sampleIdx, maxSteps)
			res.Feasible = false
			break
		}

		mask := capacity.And(routing.TimeWindowMask(inst, state, tm, prev))
		if mask.None() {
			// Every capacity-legal node closed its window. The baseline
			// serves late instead of deadlocking, and the episode is
			// reported infeasible.
			r.log.Debugw("all windows closed, serving late", map[string]any{
				"sample":         sampleIdx,
				"capacity_legal": capacity.Count(),
			})
			mask = capacity
			res.Feasible = false
		}

		chosen, ok := r.policy.Choose(inst, state, tm, mask, prev)
		if !ok {
			res.Feasible = false
			break
		}

		state = routing.NextState(inst, tm, state, chosen, prev, r.serviceTime)
		res.Tour = append(res.Tour, chosen)
		if chosen == 0 {
			res.DepotVisits++
		}
		prev = chosen
		res.Steps++
	}

	res.Cost = routing.TourCost(inst.Coords, res.Tour)
	res.Duration = time.Since(begin)
	return res
}
