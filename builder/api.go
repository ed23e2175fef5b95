// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildDataset(bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the Dataset.
//   - All public constructors are declared in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical datasets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Constructor adds a deterministic block of people, movies and cast links to
// b using the resolved builderConfig. Constructors validate their parameters
// before touching b and return sentinel errors instead of panicking.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildDataset resolves bopts, applies every constructor in order to a fresh
// core.Builder and returns the frozen Dataset. Constructor errors are wrapped
// with "BuildDataset: %w" and returned immediately.
func BuildDataset(bopts []BuilderOption, cons ...Constructor) (*core.Dataset, error) {
	b := core.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildDataset: %w", err)
		}
	}

	return b.Build(), nil
}

// MustBuild is BuildDataset for fixtures whose parameters are known good.
// It panics on error and is meant for tests, examples and benchmarks.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Dataset {
	ds, err := BuildDataset(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return ds
}
