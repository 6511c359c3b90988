package instance

import (
	"math"
	"testing"
)

func TestNewRejectsBadBounds(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"load below demand", func(c *Config) { c.MaxLoad = 5 }},
		{"window bounds inverted", func(c *Config) { c.MinTW = 9 }},
		{"horizon inverted", func(c *Config) { c.TWFrom = 60 }},
		{"negative speed", func(c *Config) { c.VehicleSpeed = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Seed: 1}
			cfg.SetDefaults()
			tc.mut(&cfg)
			if _, err := New(cfg); err == nil {
				t.Fatal("expected configuration error")
			}
		})
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := Config{Seed: 42, NumSamples: 3, NumNodes: 8}
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sa, sb := a.Sample(), b.Sample()
	for i := range sa.Instance.Coords {
		if sa.Instance.Coords[i] != sb.Instance.Coords[i] {
			t.Fatalf("coords diverge at node %d", i)
		}
		if sa.State.Demand[i] != sb.State.Demand[i] {
			t.Fatalf("demands diverge at node %d", i)
		}
	}
}

func TestSampleInvariants(t *testing.T) {
	cfg := Config{Seed: 7, NumNodes: 15}
	g, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := g.Sample()
	inst := s.Instance

	if inst.Len() != 16 {
		t.Fatalf("node count = %d, want 16", inst.Len())
	}
	if inst.TWStart[0] != 0 || inst.TWEnd[0] != 1 {
		t.Fatalf("depot window = [%f,%f], want [0,1]", inst.TWStart[0], inst.TWEnd[0])
	}
	if s.State.Demand[0] != 0 {
		t.Fatalf("depot demand = %f, want 0", s.State.Demand[0])
	}
	if s.State.Load != 1 || s.State.Time != 0 {
		t.Fatalf("initial state load=%f time=%f", s.State.Load, s.State.Time)
	}
	maxDemand := float64(9) / float64(20)
	for i := 1; i < inst.Len(); i++ {
		p := inst.Coords[i]
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Fatalf("node %d outside unit square: %+v", i, p)
		}
		if inst.TWEnd[i] < inst.TWStart[i] {
			t.Fatalf("node %d window inverted: [%f,%f]", i, inst.TWStart[i], inst.TWEnd[i])
		}
		if inst.TWStart[i] < 0 || inst.TWEnd[i] > 1 {
			t.Fatalf("node %d window outside horizon: [%f,%f]", i, inst.TWStart[i], inst.TWEnd[i])
		}
		d := s.State.Demand[i]
		if d <= 0 || d > maxDemand {
			t.Fatalf("node %d demand %f outside (0,%f]", i, d, maxDemand)
		}
	}
}

func TestBatchSize(t *testing.T) {
	g, err := New(Config{Seed: 3, NumSamples: 5, NumNodes: 4})
	if err != nil {
		t.Fatal(err)
	}
	batch := g.Batch()
	if len(batch) != 5 {
		t.Fatalf("batch size = %d, want 5", len(batch))
	}
	if batch[0].Matrix.Len() != 5 {
		t.Fatalf("matrix len = %d, want 5", batch[0].Matrix.Len())
	}
}

func TestNormalizedScalars(t *testing.T) {
	g, err := New(Config{Seed: 1, ServiceTime: 12})
	if err != nil {
		t.Fatal(err)
	}
	if g.ServiceTime() != 0.25 {
		t.Fatalf("service time = %f, want 0.25", g.ServiceTime())
	}
	if math.Abs(g.Speed()-33.6) > 1e-12 {
		t.Fatalf("speed = %f, want 33.6", g.Speed())
	}
}
