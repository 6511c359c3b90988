package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records episode results in Prometheus metrics.
type PromSink struct {
	episodes *prometheus.CounterVec
	cost     *prometheus.HistogramVec
	steps    *prometheus.HistogramVec
}

// NewPromSink registers episode metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	episodes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routing_episodes_total",
		Help: "Total number of finished routing episodes",
	}, []string{"feasible"})
	cost := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routing_tour_cost",
		Help:    "Euclidean tour cost of finished episodes",
		Buckets: prometheus.LinearBuckets(0, 2, 12),
	}, []string{"feasible"})
	steps := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routing_episode_steps",
		Help:    "Decision steps taken per episode",
		Buckets: prometheus.ExponentialBuckets(4, 2, 8),
	}, []string{"feasible"})

	if err := reg.Register(episodes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			episodes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(cost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cost = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(steps); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			steps = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{episodes: episodes, cost: cost, steps: steps}, nil
}

// RecordEpisodeResult updates the counters and histograms for each episode.
func (s *PromSink) RecordEpisodeResult(res []EpisodeResult) error {
	for _, r := range res {
		feasible := strconv.FormatBool(r.Feasible)
		s.episodes.WithLabelValues(feasible).Inc()
		s.cost.WithLabelValues(feasible).Observe(r.Cost)
		s.steps.WithLabelValues(feasible).Observe(float64(r.Steps))
	}
	return nil
}
