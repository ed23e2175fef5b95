// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/loader"
)

var errBadPairsFile = errors.New("pairs file needs two columns: source_id,target_id")

func newBatchCmd(a *app) *cobra.Command {
	var parallelism int
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run many searches from a CSV file of id pairs",
		Long: `Batch reads source_id,target_id pairs (an optional header row is skipped)
and writes one JSON outcome per line, in input order. Pairs with unknown ids
are reported in their outcome's error field and do not stop the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("parallelism") {
				a.cfg.Batch.Parallelism = parallelism
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			return a.runBatch(cmd, args[0])
		},
	}
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 4, "searches run at once")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, file string) error {
	queries, err := readPairs(file)
	if err != nil {
		return err
	}

	ds, _, err := loader.Load(cmd.Context(), a.cfg.DataDir, loader.WithLogger(a.logger))
	if err != nil {
		return err
	}
	eng, err := engine.New(ds, engine.WithStrategy(engine.Strategy(a.cfg.Strategy)), engine.WithLogger(a.logger))
	if err != nil {
		return err
	}
	outcomes, err := eng.Batch(cmd.Context(), queries, a.cfg.Batch.Parallelism)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, o := range outcomes {
		if err := enc.Encode(o); err != nil {
			return err
		}
	}

	return nil
}

func readPairs(file string) ([]engine.Query, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var queries []engine.Query
	for first := true; ; first = false {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if len(rec) < 2 {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%s:%d: %w", file, line, errBadPairsFile)
		}
		if first && strings.EqualFold(strings.TrimPrefix(rec[0], "\ufeff"), "source_id") {
			continue
		}
		queries = append(queries, engine.Query{
			Source: core.PersonID(strings.TrimSpace(rec[0])),
			Target: core.PersonID(strings.TrimSpace(rec[1])),
		})
	}

	return queries, nil
}
