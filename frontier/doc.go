// Package frontier provides the expandable node sets that drive the
// uninformed searches, plus the node arena they draw from.
//
// What
//
//   - Arena: append-only storage of search nodes. A node records its state
//     (a person), the index of the node that discovered it and the movie
//     that connects the two. Parent links are integer indices, so a search
//     tree is a flat slice instead of a web of back-pointers.
//   - Queue: FIFO frontier; breadth-first order, shortest paths first.
//   - Stack: LIFO frontier; depth-first order.
//
// Both frontiers pair their ordered slice with a membership set so that
// Contains(state) is O(1) instead of a scan.
//
// Why
//
//	Searches skip a neighbor that is already explored or already waiting in
//	the frontier. That test runs once per edge considered, so it must not
//	cost O(|frontier|).
//
// Invariants
//
//   - Arena parent indices are always smaller than the child's own index;
//     walking parents therefore terminates at a root.
//   - A frontier holds each state at most once as long as callers test
//     Contains before Add, which every search in this module does.
//
// Errors
//
//   - ErrEmptyFrontier from Remove on an empty frontier.
package frontier
