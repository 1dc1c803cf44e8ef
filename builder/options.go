// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Default partition prefixes.
const (
	DefaultLeftPrefix  = "L"
	DefaultRightPrefix = "R"
)

// BuilderOption customizes a builder call.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng         *rand.Rand
	weightFn    WeightFn
	leftPrefix  string
	rightPrefix string
	density     float64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:    DefaultWeightFn,
		leftPrefix:  DefaultLeftPrefix,
		rightPrefix: DefaultRightPrefix,
		density:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the ID prefixes; empty values keep the defaults.
func WithPartitionPrefix(left, right string) BuilderOption {
	if left != "" && left == right {
		panic(fmt.Sprintf("builder: WithPartitionPrefix(%q, %q): prefixes must differ", left, right))
	}

	return func(c *builderConfig) {
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}

// WithDensity keeps each off-diagonal edge with probability p ∈ [0,1].
// Panics outside that range.
func WithDensity(p float64) BuilderOption {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("builder: WithDensity(%g): want 0 ≤ p ≤ 1", p))
	}

	return func(c *builderConfig) { c.density = p }
}
