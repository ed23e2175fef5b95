// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/loader"
	"github.com/katalvlaran/degrees/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve searches over HTTP",
		Long: `Serve loads the dataset once and answers searches on:

  GET  /v1/health
  GET  /v1/path?source=ID&target=ID[&strategy=bfs]
  POST /v1/paths
  GET  /metrics

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}

			ds, rep, err := loader.Load(cmd.Context(), a.cfg.DataDir, loader.WithLogger(a.logger))
			if err != nil {
				return err
			}
			eng, err := engine.New(ds, engine.WithStrategy(engine.Strategy(a.cfg.Strategy)), engine.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("serving",
				"addr", a.cfg.Server.Addr,
				"people", rep.People,
				"movies", rep.Movies,
				"strategy", a.cfg.Strategy)

			return server.New(a.cfg.Server, a.cfg.Batch, eng, a.logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default \":8080\")")

	return cmd
}
