// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_random_cast.go - implementation of RandomCast(people, movies, cast).
//
// Model:
//   - Each movie independently draws `cast` distinct people uniformly at
//     random (partial Fisher–Yates over the population).
//
// Contract:
//   - people ≥ 1, movies ≥ 1, cast ≥ 1 (else ErrTooFewPeople).
//   - cast ≤ people (else ErrCastTooLarge).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Movies are drawn in ascending index order from the configured RNG, so a
//     fixed seed yields a fixed dataset.
//
// Complexity: O(people + movies·cast).

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const methodRandomCast = "RandomCast"

// RandomCast returns a Constructor that samples a random filmography.
func RandomCast(people, movies, cast int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if people < 1 || movies < 1 || cast < 1 {
			return fmt.Errorf("%s: people=%d movies=%d cast=%d must be ≥ 1: %w",
				methodRandomCast, people, movies, cast, ErrTooFewPeople)
		}
		if cast > people {
			return fmt.Errorf("%s: cast=%d > people=%d: %w", methodRandomCast, cast, people, ErrCastTooLarge)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomCast, ErrNeedRandSource)
		}
		if err := addPeople(methodRandomCast, b, cfg, people); err != nil {
			return err
		}

		pool := make([]int, people)
		for i := range pool {
			pool[i] = i
		}
		picked := make([]core.PersonID, cast)
		for m := 0; m < movies; m++ {
			// partial shuffle: the first `cast` slots become the sample
			for k := 0; k < cast; k++ {
				j := k + cfg.rng.Intn(people-k)
				pool[k], pool[j] = pool[j], pool[k]
				picked[k] = cfg.person(pool[k])
			}
			if err := addMovie(methodRandomCast, b, cfg.movie(m), picked...); err != nil {
				return err
			}
		}

		return nil
	}
}
