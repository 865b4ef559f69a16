// SPDX-License-Identifier: MIT

package dataset

import "math/rand"

// Deterministic defaults.
const (
	// DefaultMaxValue bounds generated values to [0, DefaultMaxValue).
	DefaultMaxValue = 1000

	// DefaultDistinct is the number of distinct keys used by FewUnique.
	DefaultDistinct = 4

	// DefaultTeeth is the number of ramps produced by Sawtooth.
	DefaultTeeth = 4
)

// Option customizes a Build call.
type Option func(*config)

// config is resolved once per Build call and passed by value.
type config struct {
	rng      *rand.Rand
	maxValue int
	distinct int
	teeth    int
}

// newConfig applies opts over deterministic defaults (later options win).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,
		maxValue: DefaultMaxValue,
		distinct: DefaultDistinct,
		teeth:    DefaultTeeth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed seeds the generator; 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand shares an explicit generator across Build calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithMaxValue bounds generated values to [0, maxValue).
// Panics if maxValue < 1.
func WithMaxValue(maxValue int) Option {
	if maxValue < 1 {
		panic("dataset: WithMaxValue(maxValue<1)")
	}

	return func(c *config) {
		c.maxValue = maxValue
	}
}

// WithDistinct sets how many distinct keys FewUnique draws from.
// Panics if k < 1.
func WithDistinct(k int) Option {
	if k < 1 {
		panic("dataset: WithDistinct(k<1)")
	}

	return func(c *config) {
		c.distinct = k
	}
}

// WithTeeth sets the number of ascending ramps in Sawtooth.
// Panics if k < 1.
func WithTeeth(k int) Option {
	if k < 1 {
		panic("dataset: WithTeeth(k<1)")
	}

	return func(c *config) {
		c.teeth = k
	}
}
