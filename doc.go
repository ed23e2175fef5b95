// SPDX-License-Identifier: MIT

// Package degrees finds the "degrees of separation" between two people of a
// filmography: the shortest chain of movies in which each consecutive pair of
// people starred together.
//
// What is degrees?
//
//	An in-memory search toolkit over an implicit co-star graph:
//		• Data model: people, movies and cast links frozen into a read-only Dataset
//		• Frontiers: arena-backed FIFO queue and LIFO stack
//		• Searches: BFS, bidirectional BFS, depth-first reachability
//		• Instrumentation: per-direction expansions, edges considered, elapsed time
//		• Surfaces: the degrees CLI and an HTTP API with Prometheus metrics
//
// Why a bidirectional search?
//
//   - The co-star graph branches fast: a few hundred co-stars per hop is common
//   - Two frontiers of depth d/2 touch far fewer people than one of depth d
//   - Both directions return the same distance as plain BFS
//
// Packages:
//
//	core/       Dataset, Builder, Edge/Path types and path verification
//	frontier/   parent-pointer arena with queue and stack frontiers
//	bfs/        unidirectional breadth-first search (goal test on generation)
//	bidir/      bidirectional breadth-first search and path stitching
//	dfs/        depth-first search for reachability (no shortest-path promise)
//	builder/    deterministic synthetic datasets for tests and benchmarks
//	loader/     people.csv, movies.csv and stars.csv ingestion
//	resolver/   name to id resolution with interactive disambiguation
//	present/    human-readable narrative and metrics output
//	engine/     strategy selection, tracing, metrics and batch execution
//	config/     YAML + environment configuration
//	logging/    slog construction
//	server/     gin HTTP API
//	cmd/degrees the command-line tool
//
// Quick start:
//
//	ds, _, err := loader.Load(ctx, "small")
//	eng, err := engine.New(ds)
//	out, err := eng.Search(ctx, "102", "129")
//	present.Narrative(os.Stdout, ds, "102", out.Path)
//
// Complexity:
//
//	BFS visits O(P + S) in the worst case for P people and S cast links;
//	bidirectional BFS expands roughly 2·b^(d/2) people instead of b^d.
package degrees
