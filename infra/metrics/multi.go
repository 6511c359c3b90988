package metrics

// MultiSink fans episode results out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordEpisodeResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordEpisodeResult(res []EpisodeResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordEpisodeResult(res); err != nil {
			return err
		}
	}
	return nil
}
