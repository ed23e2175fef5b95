// SPDX-License-Identifier: MIT

// Package bidir implements bidirectional breadth-first search between two
// people of a core.GraphView.
//
// What
//
//   - ShortestPath(view, source, target) grows one search tree from each end
//     and stops as soon as the two trees touch.
//   - Each round expands one complete layer of the side whose frontier is
//     strictly smaller; ties go to the forward side.
//   - The layer is snapshotted before expansion, so people discovered during
//     a round wait for that side's next round.
//   - Every discovery is recorded in the side's ParentMap. A newly recorded
//     person already present in the other side's map is the meeting point,
//     and the search stops without expanding it.
//   - The path is stitched from both parent maps: forward links are walked
//     back to the source and reversed, then backward links are walked to the
//     target emitting (movie, parent) at each hop.
//   - Stats reports per-side expansions, edges considered and layers.
//
// Why
//
//	A BFS to distance d touches about b^d people; two searches that meet in
//	the middle touch about 2·b^(d/2). Expanding the smaller side keeps both
//	trees balanced even when one endpoint sits in a dense neighborhood.
//
// Correctness
//
//	Parent maps double as visited sets, and an intersection is detected the
//	moment it appears, so before the meeting the two maps are disjoint. With
//	full layers on each side, the first meeting therefore closes a path of
//	minimal length.
//
// Complexity (b = branching factor, d = distance)
//
//   - Time:   O(b^(d/2)) neighbor lookups in the typical case, O(V + E) worst case
//   - Memory: O(V) for the two parent maps
//
// Usage
//
//	res, err := bidir.ShortestPath(ds, src, dst, bidir.WithContext(ctx))
//	if err != nil { ... }
//	fmt.Println(res.Found, res.Stats.NodesExpanded())
package bidir
