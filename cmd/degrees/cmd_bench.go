// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/present"
)

type benchFlags struct {
	people int
	movies int
	cast   int
	seed   int64
	pairs  int
}

// benchRow totals one strategy's work over every pair.
type benchRow struct {
	strategy engine.Strategy
	found    int
	degrees  int
	expanded int
	edges    int
	elapsed  time.Duration
}

func newBenchCmd(a *app) *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare search strategies on a synthetic dataset",
		Long: `Bench builds a random dataset (every movie casts --cast people drawn from
--people), picks --pairs random endpoints and runs each strategy on the same
pairs. Shortest-path strategies must agree on every distance; a mismatch is
reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.people, "people", 2000, "number of people")
	fl.IntVar(&f.movies, "movies", 1500, "number of movies")
	fl.IntVar(&f.cast, "cast", 3, "cast size per movie")
	fl.Int64Var(&f.seed, "seed", 1, "random seed for the dataset and the pairs")
	fl.IntVar(&f.pairs, "pairs", 100, "number of searches per strategy")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, f *benchFlags) error {
	if f.pairs < 1 {
		return fmt.Errorf("--pairs must be at least 1, got %d", f.pairs)
	}
	ds, err := builder.BuildDataset(
		[]builder.BuilderOption{builder.WithSeed(f.seed)},
		builder.RandomCast(f.people, f.movies, f.cast),
	)
	if err != nil {
		return err
	}
	eng, err := engine.New(ds, engine.WithLogger(a.logger))
	if err != nil {
		return err
	}

	ids := ds.PersonIDs()
	rng := rand.New(rand.NewSource(f.seed))
	queries := make([]engine.Query, f.pairs)
	for i := range queries {
		queries[i] = engine.Query{Source: ids[rng.Intn(len(ids))], Target: ids[rng.Intn(len(ids))]}
	}

	var rows []benchRow
	shortest := make(map[int]int) // query index -> degrees, -1 when not found
	for _, s := range engine.Strategies() {
		row := benchRow{strategy: s}
		for i, q := range queries {
			o, err := eng.SearchWith(cmd.Context(), s, q.Source, q.Target)
			if err != nil {
				return err
			}
			row.expanded += o.Stats.NodesExpanded()
			row.edges += o.Stats.EdgesConsidered()
			row.elapsed += o.Stats.Duration
			d := -1
			if o.Found {
				row.found++
				d = o.Path.Degrees()
				row.degrees += d
			}
			if !s.Shortest() {
				continue
			}
			if want, ok := shortest[i]; ok && want != d {
				return fmt.Errorf("%s: %s -> %s is %d degrees, expected %d", s, q.Source, q.Target, d, want)
			}
			shortest[i] = d
		}
		rows = append(rows, row)
	}

	return writeBench(cmd, ds, f, rows)
}

func writeBench(cmd *cobra.Command, ds *core.Dataset, f *benchFlags, rows []benchRow) error {
	out := cmd.OutOrStdout()
	st := present.NewStyler(out)

	fmt.Fprintln(out, st.Heading(fmt.Sprintf("%d people, %d movies, %d cast links, %d pairs",
		ds.NumPeople(), ds.NumMovies(), ds.NumStars(), f.pairs)))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tfound\tdegrees\texpanded\tedges\ttime_ms")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.3f\n",
			r.strategy, r.found, r.degrees, r.expanded, r.edges,
			float64(r.elapsed.Microseconds())/1000)
	}

	return tw.Flush()
}
