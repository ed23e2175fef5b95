// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • personPrefix = "p"  → "p0","p1",...
//   • moviePrefix  = "m"  → "m0","m1",...
//   • rng          = nil  (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/degrees/core"
)

const (
	defaultPersonPrefix = "p"
	defaultMoviePrefix  = "m"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	personPrefix string
	moviePrefix  string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier) and
// resolves empty prefixes to defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		personPrefix: defaultPersonPrefix,
		moviePrefix:  defaultMoviePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.personPrefix == "" {
		cfg.personPrefix = defaultPersonPrefix
	}
	if cfg.moviePrefix == "" {
		cfg.moviePrefix = defaultMoviePrefix
	}

	return cfg
}

// person renders the id of the i-th person.
func (c builderConfig) person(i int) core.PersonID {
	return core.PersonID(c.personPrefix + strconv.Itoa(i))
}

// movie renders the id of the i-th movie.
func (c builderConfig) movie(i int) core.MovieID {
	return core.MovieID(c.moviePrefix + strconv.Itoa(i))
}
