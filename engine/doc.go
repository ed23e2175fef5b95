// SPDX-License-Identifier: MIT

// Package engine runs named search strategies over a loaded dataset.
//
// It is the single entry point shared by the command line and the HTTP
// server: endpoints are validated once, the chosen strategy runs, and every
// run is logged, counted in Prometheus metrics and wrapped in a tracing span.
//
//	eng, err := engine.New(ds, engine.WithStrategy(engine.StrategyBFS))
//	out, err := eng.Search(ctx, "102", "129")
//	fmt.Println(out.Found, out.Path.Degrees(), out.RunID)
//
// Batch runs independent queries concurrently. Searches share nothing but
// the immutable dataset, so no locking is involved.
package engine
