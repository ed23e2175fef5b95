// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/logging"
)

// app carries the configuration shared by every subcommand. It is filled in
// by the root command's PersistentPreRunE.
type app struct {
	cfg    config.Config
	logger *slog.Logger

	// flag values; empty means "keep the configured value"
	cfgPath  string
	dataDir  string
	strategy string
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "degrees",
		Short: "Degrees of separation between actors",
		Long: `Degrees loads a filmography (people.csv, movies.csv, stars.csv) and finds
the shortest chain of movies linking two people: two people are one degree
apart when they starred in the same movie.

Settings come from --config (YAML), then DEGREES_DATA, DEGREES_STRATEGY,
DEGREES_LOG_LEVEL and METRICS=1, then command-line flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&a.dataDir, "data", "d", "", "directory holding people.csv, movies.csv and stars.csv (default \"large\")")
	pf.StringVarP(&a.strategy, "strategy", "s", "", "search strategy: bfs, bidirectional or dfs (default \"bidirectional\")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default \"warn\")")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(newSearchCmd(a), newBatchCmd(a), newServeCmd(a), newBenchCmd(a))

	return root
}

// setup resolves the final configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.strategy != "" {
		s, err := engine.ParseStrategy(a.strategy)
		if err != nil {
			return err
		}
		cfg.Strategy = string(s)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Output:  cmd.ErrOrStderr(),
		Service: "degrees",
	})

	return nil
}

