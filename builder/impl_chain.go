// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewPeople).
//   - People p0..p(n-1); movie m(i) casts exactly p(i) and p(i+1).
//   - Distance between p0 and p(n-1) is n-1.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a co-star chain of n people.
func Chain(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewPeople)
		}
		if err := addPeople(methodChain, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addMovie(methodChain, b, cfg.movie(i), cfg.person(i), cfg.person(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
