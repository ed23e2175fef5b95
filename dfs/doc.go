// SPDX-License-Identifier: MIT

// Package dfs implements depth-first path finding over the implicit co-star
// graph of a core.GraphView.
//
// What:
//
//   - FindPath(view, source, target) returns *a* chain of (movie, person)
//     steps linking two people, or Found == false when none exists.
//   - Same skeleton as bfs.ShortestPath, but the frontier is a
//     frontier.Stack, so the most recently discovered person is expanded
//     first. The path found is valid but not necessarily shortest.
//   - Supports:
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering (skipped edges are counted)
//   - A visit hook whose error aborts the search
//
// Why:
//
//	Depth-first order reaches far-away people with a frontier that stays
//	small on bushy graphs. It is also the natural contrast to breadth-first
//	order when comparing strategies on the same dataset.
//
// Key Types:
//
//   - Option / DFSOptions: Ctx, OnVisit, MaxDepth, FilterEdge
//   - DFSResult: Path, Found, Order (expansion order), SkippedEdges, Stats
//
// Complexity:
//
//   - Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrViewNil            view is nil
//   - ErrEndpointNotFound   source or target not in the view
//   - context.Canceled      search cancelled via context
//   - hook errors           propagated from OnVisit
package dfs
