// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewPeople).
//   - Hub p0; movie m(i-1) casts p0 and p(i) for i=1..n-1.
//   - Any two leaves are exactly two degrees apart.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub co-starring with n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewPeople)
		}
		if err := addPeople(methodStar, b, cfg, n); err != nil {
			return err
		}
		hub := cfg.person(0)
		for i := 1; i < n; i++ {
			if err := addMovie(methodStar, b, cfg.movie(i-1), hub, cfg.person(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
