package metrics

import "fmt"

// SinkConfig selects and parameterizes one metrics sink.
type SinkConfig struct {
	// Type is one of "nop", "prometheus" or "influx".
	Type string `json:"type"`

	InfluxURL    string `json:"influx_url"`
	InfluxToken  string `json:"influx_token"`
	InfluxOrg    string `json:"influx_org"`
	InfluxBucket string `json:"influx_bucket"`
}

// Config holds the metrics section of the configuration.
type Config struct {
	Sinks []SinkConfig `json:"sinks"`
	// PromAddr, when set, exposes /metrics on this address during a run.
	PromAddr string `json:"prom_addr"`
}

// Validate checks the sink list.
func (c Config) Validate() error {
	for _, s := range c.Sinks {
		switch s.Type {
		case "nop", "prometheus":
		case "influx":
			if s.InfluxURL == "" {
				return fmt.Errorf("influx sink requires influx_url")
			}
		default:
			return fmt.Errorf("unknown sink type %s", s.Type)
		}
	}
	return nil
}

// NewSink builds the configured sink. Several sinks are fanned out through a
// MultiSink; an empty list yields a NopSink.
func NewSink(cfg Config) (Sink, error) {
	var sinks []Sink
	for _, sc := range cfg.Sinks {
		switch sc.Type {
		case "nop":
			sinks = append(sinks, NopSink{})
		case "prometheus":
			s, err := NewPromSink(nil)
			if err != nil {
				return nil, fmt.Errorf("prom sink: %w", err)
			}
			sinks = append(sinks, s)
		case "influx":
			sinks = append(sinks, NewInfluxSinkWithFallback(sc))
		default:
			return nil, fmt.Errorf("unknown sink type %s", sc.Type)
		}
	}
	switch len(sinks) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
