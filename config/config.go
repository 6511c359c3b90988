package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/routesim/vrptw/core/instance"
	"github.com/routesim/vrptw/infra/metrics"
	"github.com/routesim/vrptw/simulator"
)

// Config is the root configuration of the tool.
type Config struct {
	Generator  instance.Config  `json:"generator"`
	Simulation simulator.Config `json:"simulation"`
	Metrics    metrics.Config   `json:"metrics"`
}

// Load reads the configuration file at path (YAML or JSON by extension),
// applies VRP_ environment overrides, then defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("VRP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "vrp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Generator.SetDefaults()
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
