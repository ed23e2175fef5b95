// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Path accessors and the round-trip check shared by every strategy's tests.

package core

import "fmt"

// Degrees returns the number of connecting-movie steps in the path.
func (p Path) Degrees() int { return len(p) }

// People returns the people visited after the source, in order.
func (p Path) People() []PersonID {
	out := make([]PersonID, len(p))
	for i, e := range p {
		out[i] = e.Person
	}

	return out
}

// Verify walks p from source over view and checks that every step is a real
// co-starring edge, that the walk ends exactly on target and that no person
// is visited twice. It returns nil for a valid path and an error wrapping
// ErrBrokenPath otherwise.
//
// Complexity: O(Σ deg(step)) since each step scans the current person's neighbors.
func (p Path) Verify(view GraphView, source, target PersonID) error {
	seen := map[PersonID]struct{}{source: {}}
	cur := source
	for i, step := range p {
		if !hasEdge(view, cur, step) {
			return fmt.Errorf("step %d: %q and %q do not share %q: %w",
				i, cur, step.Person, step.Movie, ErrBrokenPath)
		}
		if _, dup := seen[step.Person]; dup {
			return fmt.Errorf("step %d: %q revisited: %w", i, step.Person, ErrBrokenPath)
		}
		seen[step.Person] = struct{}{}
		cur = step.Person
	}
	if cur != target {
		return fmt.Errorf("walk ends at %q, want %q: %w", cur, target, ErrBrokenPath)
	}

	return nil
}

func hasEdge(view GraphView, from PersonID, step Edge) bool {
	for _, e := range view.Neighbors(from) {
		if e == step {
			return true
		}
	}

	return false
}
