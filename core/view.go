// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: The read-only graph contract every search strategy consumes.
// Determinism:
//   - Implementations choose their own edge order; searches stay correct for
//     any order, only tie-breaking among equal-length paths depends on it.

package core

// GraphView exposes the implicit co-star graph: people are vertices and each
// shared movie is an undirected, unweighted edge.
//
// Implementations must be pure functions of immutable data so that any number
// of searches can query one view concurrently.
type GraphView interface {
	// Neighbors returns every (movie, co-star) pair for person.
	// Behavior for unknown ids is implementation-defined; *Dataset returns nil.
	Neighbors(person PersonID) []Edge

	// HasPerson reports whether person is a vertex of the view.
	HasPerson(person PersonID) bool
}

// compile-time check
var _ GraphView = (*Dataset)(nil)
