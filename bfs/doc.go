// Package bfs provides breadth-first shortest-path search over the implicit
// co-star graph exposed by a core.GraphView.
//
// What
//
//   - ShortestPath(view, source, target) returns the shortest chain of
//     (movie, person) steps linking two people, or Found == false.
//   - Nodes live in a frontier.Arena; the frontier is a frontier.Queue whose
//     membership set makes the "already scheduled?" test O(1).
//   - Each neighbor is skipped when it is explored or already in the
//     frontier, so every person is expanded at most once.
//   - The goal test runs when a child is generated, not when it is expanded,
//     which saves a full layer of expansions on success.
//   - Result.Stats counts nodes expanded and edges considered.
//
// Why
//
//   - Unweighted edges make FIFO order sufficient for optimality: the first
//     time the target is generated, it is at minimal depth.
//
// Determinism
//
//	Tie-breaking among equally short paths follows the view's neighbor
//	order. core.Dataset sorts its neighbors, so results over a Dataset are
//	reproducible; other views may yield any of the shortest paths.
//
// Complexity (V = people reached, E = edges considered)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the arena, queue and explored set
//
// Usage
//
//	res, err := bfs.ShortestPath(ds, "158", "102")
//	if err != nil {
//		// ErrViewNil, ErrEndpointNotFound, ErrOptionViolation or ctx.Err()
//	}
//	if !res.Found {
//		// not connected
//	}
//
//	// With options:
//	res, err = bfs.ShortestPath(ds, src, dst,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(6),
//		bfs.WithOnExpand(func(id core.PersonID, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrViewNil           if the view is nil.
//   - ErrEndpointNotFound  if source or target is not a person of the view.
//   - ErrOptionViolation   if an option is invalid (negative MaxDepth).
//   - ctx.Err()            if the context is cancelled during the search.
package bfs
