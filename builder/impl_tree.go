// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_tree.go - implementation of Tree(depth, fanout) constructor.
//
// Contract:
//   - depth ≥ 1, fanout ≥ 1 (else ErrTooFewPeople).
//   - People are numbered in breadth-first order: p0 is the root and the
//     children of p(i) are p(i*fanout+1) .. p(i*fanout+fanout).
//   - The link between p(c) and its parent is movie m(c-1).
//   - Total people: Σ_{k=0..depth} fanout^k; last person is the last leaf.
//
// Complexity: O(fanout^depth).

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodTree = "Tree"
	minTreeDim = 1
)

// TreeSize returns the number of people Tree(depth, fanout) creates.
func TreeSize(depth, fanout int) int {
	total, level := 0, 1
	for k := 0; k <= depth; k++ {
		total += level
		level *= fanout
	}

	return total
}

// Tree returns a Constructor that builds a complete fanout-ary tree of people.
func Tree(depth, fanout int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if depth < minTreeDim || fanout < minTreeDim {
			return fmt.Errorf("%s: depth=%d fanout=%d < min=%d: %w",
				methodTree, depth, fanout, minTreeDim, ErrTooFewPeople)
		}
		n := TreeSize(depth, fanout)
		if err := addPeople(methodTree, b, cfg, n); err != nil {
			return err
		}
		for c := 1; c < n; c++ {
			parent := (c - 1) / fanout
			if err := addMovie(methodTree, b, cfg.movie(c-1), cfg.person(parent), cfg.person(c)); err != nil {
				return err
			}
		}

		return nil
	}
}
