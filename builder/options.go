// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the builderConfig seen by every constructor of a
// BuildDataset call.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPrefix sets the id prefixes for people and movies.
// Empty values fall back to the defaults "p" and "m".
func WithPrefix(person, movie string) BuilderOption {
	return func(c *builderConfig) {
		c.personPrefix, c.moviePrefix = person, movie
	}
}
