package metrics

import "time"

// EpisodeResult represents one finished routing episode to be recorded.
type EpisodeResult struct {
	EpisodeID   string
	Sample      int
	Steps       int
	DepotVisits int
	Cost        float64
	Feasible    bool
	Duration    time.Duration
}

// Sink records episode results for observability purposes.
type Sink interface {
	RecordEpisodeResult(results []EpisodeResult) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEpisodeResult([]EpisodeResult) error { return nil }
