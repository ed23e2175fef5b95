// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degrees/core"
)

// Query is one source/target pair of a batch.
type Query struct {
	Source core.PersonID `json:"source"`
	Target core.PersonID `json:"target"`
}

// Batch runs queries with the default strategy, at most parallelism at a
// time (values below 1 mean 1). Outcomes are returned in query order.
//
// A query with an unknown endpoint does not stop the batch: its Outcome
// carries the error text and Found == false. Cancellation of ctx does, and
// is returned as the error.
func (e *Engine) Batch(ctx context.Context, queries []Query, parallelism int) ([]*Outcome, error) {
	if parallelism < 1 {
		parallelism = 1
	}
	outs := make([]*Outcome, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, q := range queries {
		g.Go(func() error {
			out, err := e.Search(gctx, q.Source, q.Target)
			switch {
			case err == nil:
				outs[i] = out
			case errors.Is(err, ErrInvalidEndpoint):
				outs[i] = &Outcome{Strategy: e.strategy, Source: q.Source, Target: q.Target, Error: err.Error()}
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("batch complete", slog.Int("queries", len(queries)), slog.Int("parallelism", parallelism))

	return outs, nil
}
