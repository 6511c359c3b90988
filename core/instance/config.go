package instance

import "fmt"

// Config holds the instance generator parameters. Windows and demands are
// drawn as integers in problem units, then normalized: times by the horizon
// tw_to-tw_from, demands by max_load.
type Config struct {
	// NumSamples is the batch size produced by Batch.
	NumSamples int `json:"num_samples"`
	// NumNodes is the number of customers; the depot is added on top.
	NumNodes int `json:"num_nodes"`
	// MaxLoad is the vehicle capacity in demand units.
	MaxLoad int `json:"max_load"`
	// MaxDemand bounds the per-customer demand draw [1, MaxDemand].
	MaxDemand int `json:"max_demand"`
	// MinTW and MaxTW bound the window span draw.
	MinTW int `json:"min_tw"`
	MaxTW int `json:"max_tw"`
	// TWFrom and TWTo delimit the planning horizon.
	TWFrom int `json:"tw_from"`
	TWTo   int `json:"tw_to"`
	// ServiceTime is the fixed per-visit service duration in horizon units.
	ServiceTime float64 `json:"service_time"`
	// VehicleSpeed is the travel speed before horizon scaling.
	VehicleSpeed float64 `json:"vehicle_speed"`
	// Seed selects the random stream; 0 draws a seed.
	Seed int64 `json:"seed"`
}

// SetDefaults applies the canonical problem parameters.
func (c *Config) SetDefaults() {
	if c.NumSamples == 0 {
		c.NumSamples = 64
	}
	if c.NumNodes == 0 {
		c.NumNodes = 10
	}
	if c.MaxLoad == 0 {
		c.MaxLoad = 20
	}
	if c.MaxDemand == 0 {
		c.MaxDemand = 9
	}
	if c.MinTW == 0 {
		c.MinTW = 2
	}
	if c.MaxTW == 0 {
		c.MaxTW = 8
	}
	if c.TWTo == 0 {
		c.TWTo = 48
	}
	if c.VehicleSpeed == 0 {
		c.VehicleSpeed = 0.7
	}
}

// Validate checks the generator contract.
func (c Config) Validate() error {
	if c.NumSamples < 1 {
		return fmt.Errorf("num_samples %d must be positive", c.NumSamples)
	}
	if c.NumNodes < 1 {
		return fmt.Errorf("num_nodes %d must be positive", c.NumNodes)
	}
	if c.MaxLoad < c.MaxDemand {
		return fmt.Errorf("max_load %d must be >= max_demand %d", c.MaxLoad, c.MaxDemand)
	}
	if c.MaxTW < c.MinTW {
		return fmt.Errorf("max_tw %d must be >= min_tw %d", c.MaxTW, c.MinTW)
	}
	if c.TWTo < c.TWFrom {
		return fmt.Errorf("tw_to %d must be >= tw_from %d", c.TWTo, c.TWFrom)
	}
	if c.TWTo-c.TWFrom < c.MaxTW {
		return fmt.Errorf("horizon %d too short for max_tw %d", c.TWTo-c.TWFrom, c.MaxTW)
	}
	if c.MinTW < 0 {
		return fmt.Errorf("min_tw %d must be non-negative", c.MinTW)
	}
	if c.MaxDemand < 1 {
		return fmt.Errorf("max_demand %d must be positive", c.MaxDemand)
	}
	if c.VehicleSpeed <= 0 {
		return fmt.Errorf("vehicle_speed %f must be positive", c.VehicleSpeed)
	}
	if c.ServiceTime < 0 {
		return fmt.Errorf("service_time %f must be non-negative", c.ServiceTime)
	}
	return nil
}

// Horizon returns the planning horizon length in problem units.
func (c Config) Horizon() float64 { return float64(c.TWTo - c.TWFrom) }
