// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_ensemble.go - implementation of Ensemble(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewPeople).
//   - One movie m0 whose cast is p0..p(n-1): a clique where every pair is
//     one degree apart over the same movie.
//
// Complexity: O(n) rows, O(n²) implicit edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodEnsemble   = "Ensemble"
	minEnsembleNodes = 1
)

// Ensemble returns a Constructor that casts n people in a single movie.
func Ensemble(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minEnsembleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEnsemble, n, minEnsembleNodes, ErrTooFewPeople)
		}
		if err := addPeople(methodEnsemble, b, cfg, n); err != nil {
			return err
		}
		cast := make([]core.PersonID, n)
		for i := range cast {
			cast[i] = cfg.person(i)
		}

		return addMovie(methodEnsemble, b, cfg.movie(0), cast...)
	}
}
