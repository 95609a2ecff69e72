package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version   string              `yaml:"version"`
	Defaults  DefaultConfig       `yaml:"defaults"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// DefaultConfig holds values applied when the matching flag is not set.
// Zero values leave the built-in flag default in place.
type DefaultConfig struct {
	Head        *int   `yaml:"head"`
	DiskSize    int    `yaml:"disk_size"`
	Direction   string `yaml:"direction"`
	StepSize    int    `yaml:"step_size"`
	MaxRequests int    `yaml:"max_requests"`
}

// Scenario is a named, reproducible scheduling input.
type Scenario struct {
	Description string `yaml:"description,omitempty"`
	Policy      string `yaml:"policy,omitempty"`
	Head        *int   `yaml:"head,omitempty"` // pointer: track 0 is a valid head
	Requests    []int  `yaml:"requests"`
	Direction   string `yaml:"direction,omitempty"`
	DiskSize    int    `yaml:"disk_size,omitempty"`
	StepSize    int    `yaml:"step_size,omitempty"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return &cfg, nil
}

// GetScenario returns the named scenario, or an error listing the known names.
func (c *Config) GetScenario(name string) (*Scenario, error) {
	if sc, ok := c.Scenarios[name]; ok {
		return &sc, nil
	}
	return nil, fmt.Errorf("unknown scenario %q; available: %v", name, c.ScenarioNames())
}

// ScenarioNames returns the scenario names in sorted order.
func (c *Config) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
