// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/loader"
	"github.com/katalvlaran/degrees/present"
	"github.com/katalvlaran/degrees/resolver"
)

type searchFlags struct {
	metrics bool
	json    bool
}

// searchReport is the --json rendering of one search.
type searchReport struct {
	*engine.Outcome
	Degrees int           `json:"degrees"`
	Hops    []present.Hop `json:"hops"`
}

func newSearchCmd(a *app) *cobra.Command {
	f := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search [SOURCE] [TARGET]",
		Short: "Find the chain of movies between two people",
		Long: `Search loads the dataset and prints the shortest chain of co-starring
movies from SOURCE to TARGET. Names missing from the command line are read
from standard input; when several people share a name, their ids are listed
and one must be picked.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, f, args)
		},
	}
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "print per-direction search counters (also METRICS=1)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the outcome as JSON")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, f *searchFlags, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	st := present.NewStyler(out)

	if !f.json {
		fmt.Fprintln(out, st.Muted("Loading data..."))
	}
	ds, _, err := loader.Load(ctx, a.cfg.DataDir, loader.WithLogger(a.logger))
	if err != nil {
		return err
	}
	if !f.json {
		fmt.Fprintln(out, st.Muted("Data loaded."))
	}

	prompt := resolver.NewTerminalPrompter(cmd.InOrStdin(), out)
	res := resolver.New(ds, prompt)

	source, err := a.person(prompt, res, args, 0)
	if err != nil {
		return err
	}
	target, err := a.person(prompt, res, args, 1)
	if err != nil {
		return err
	}

	eng, err := engine.New(ds, engine.WithStrategy(engine.Strategy(a.cfg.Strategy)), engine.WithLogger(a.logger))
	if err != nil {
		return err
	}
	outcome, err := eng.Search(ctx, source, target)
	if err != nil {
		return err
	}

	if f.json {
		return writeSearchJSON(out, ds, outcome)
	}
	if f.metrics || a.cfg.Metrics {
		if source == target {
			err = present.SameEndpointMetrics(out)
		} else {
			err = present.Metrics(out, outcome.Stats)
		}
		if err != nil {
			return err
		}
	}

	return present.Narrative(out, ds, source, outcome.Path)
}

// person resolves args[i], or asks for a name when it was not given.
func (a *app) person(prompt *resolver.TerminalPrompter, res *resolver.Resolver, args []string, i int) (core.PersonID, error) {
	var name string
	if i < len(args) {
		name = args[i]
	} else {
		line, err := prompt.Ask("Name: ")
		if err != nil {
			return "", fmt.Errorf("read name: %w", err)
		}
		name = line
	}

	return res.Resolve(name)
}

func writeSearchJSON(w io.Writer, ds *core.Dataset, o *engine.Outcome) error {
	rep := searchReport{Outcome: o, Degrees: -1}
	if o.Found {
		rep.Degrees = o.Path.Degrees()
		rep.Hops = present.Describe(ds, o.Source, o.Path)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
