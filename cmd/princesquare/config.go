package main

import (
	"flag"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/henkberendsen/PRINCE/internal/square"
)

// Config holds everything an attack run needs, loadable from an optional
// YAML file and otherwise filled in from command-line flags. Following
// cmd/sneller's layering, flags always take precedence over a loaded file
// when the flag was explicitly set on the command line.
type Config struct {
	Rounds        int    `json:"rounds"`
	K0            uint64 `json:"k0"`
	K1            uint64 `json:"k1"`
	MaxBaseValues int    `json:"maxBaseValues"`
	TracePath     string `json:"tracePath"`
	Source        string `json:"source"`
}

// loadConfig reads path as YAML if non-empty, otherwise returns a Config
// seeded purely from flag defaults.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Rounds:        dashrounds,
		K0:            dashkey0,
		K1:            dashkey1,
		MaxBaseValues: dashcap,
		TracePath:     dashtrace,
		Source:        dashsource,
	}
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlagOverrides lets an explicitly-passed flag win over a value
// loaded from a config file, mirroring the precedence cmd/sneller gives
// -token over environment defaults.
func (c *Config) applyFlagOverrides() {
	seen := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	if seen["rounds"] {
		c.Rounds = dashrounds
	}
	if seen["k0"] {
		c.K0 = dashkey0
	}
	if seen["k1"] {
		c.K1 = dashkey1
	}
	if seen["max-base-values"] {
		c.MaxBaseValues = dashcap
	}
	if seen["trace"] {
		c.TracePath = dashtrace
	}
	if seen["source"] {
		c.Source = dashsource
	}
}

func (c *Config) buildSource() (square.BaseValueSource, error) {
	switch c.Source {
	case "", "counter":
		return square.NewCounterSource()
	case "siphash":
		return square.NewSipHashSource()
	case "chacha20":
		return square.NewChaCha20Source()
	default:
		return nil, fmt.Errorf("unknown base-value source %q", c.Source)
	}
}
