package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// GeneratorConfig configures random request generation.
// Zero counts fall back to the defaults (8 to 17 requests).
type GeneratorConfig struct {
	Seed     int64
	MinCount int // minimum number of requests (inclusive)
	MaxCount int // maximum number of requests (inclusive)
	DiskSize int // tracks are drawn from [0, DiskSize-2]
}

const (
	DefaultMinCount = 8
	DefaultMaxCount = 17
)

// Generator produces reproducible random request sets.
type Generator struct {
	cfg GeneratorConfig
	rng *PartitionedRNG
}

// NewGenerator validates cfg and creates a Generator.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if cfg.MinCount == 0 && cfg.MaxCount == 0 {
		cfg.MinCount, cfg.MaxCount = DefaultMinCount, DefaultMaxCount
	}
	if cfg.MinCount < 0 || cfg.MaxCount < cfg.MinCount {
		return nil, fmt.Errorf("invalid request count range [%d, %d]", cfg.MinCount, cfg.MaxCount)
	}
	if cfg.DiskSize < 2 {
		return nil, fmt.Errorf("disk size must be at least 2, got %d", cfg.DiskSize)
	}
	return &Generator{cfg: cfg, rng: NewPartitionedRNG(NewSimulationKey(cfg.Seed))}, nil
}

// Requests draws a request set. The count is uniform over [MinCount, MaxCount]
// and each track is uniform over [0, DiskSize-2], leaving the last track free
// for the sweep boundary.
func (g *Generator) Requests() []int {
	rng := g.rng.ForSubsystem(SubsystemRequests)
	count := g.cfg.MinCount + rng.Intn(g.cfg.MaxCount-g.cfg.MinCount+1)
	reqs := make([]int, count)
	for i := range reqs {
		reqs[i] = rng.Intn(g.cfg.DiskSize - 1)
	}
	logrus.Debugf("generated %d requests (seed %d)", count, g.cfg.Seed)
	return reqs
}

// Head draws a head position uniform over [0, DiskSize-1].
func (g *Generator) Head() int {
	return g.rng.ForSubsystem(SubsystemHead).Intn(g.cfg.DiskSize)
}

// Generate is shorthand for NewGenerator(cfg) followed by Requests.
func Generate(cfg GeneratorConfig) ([]int, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return g.Requests(), nil
}
