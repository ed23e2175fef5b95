// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/bidir"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/dfs"
	"github.com/katalvlaran/degrees/logging"
)

var (
	// ErrUnknownStrategy is returned for a strategy name the engine lacks.
	ErrUnknownStrategy = errors.New("engine: unknown strategy")

	// ErrInvalidEndpoint is returned when source or target is not in the
	// dataset. It always also wraps core.ErrPersonNotFound.
	ErrInvalidEndpoint = errors.New("engine: invalid endpoint")

	// ErrNilDataset is returned by New for a nil dataset.
	ErrNilDataset = errors.New("engine: dataset is nil")
)

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy sets the strategy used by Search.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine dispatches searches. It is safe for concurrent use.
type Engine struct {
	ds       *core.Dataset
	strategy Strategy
	logger   *slog.Logger
}

// Outcome is the result of one search run.
//
// Stats uses the bidirectional layout for every strategy; unidirectional
// strategies only fill Forward.
type Outcome struct {
	RunID    string        `json:"run_id"`
	Strategy Strategy      `json:"strategy"`
	Source   core.PersonID `json:"source"`
	Target   core.PersonID `json:"target"`
	Path     core.Path     `json:"path"`
	Found    bool          `json:"found"`
	Stats    bidir.Stats   `json:"stats"`
	// Error is set only for failed entries of a Batch.
	Error string `json:"error,omitempty"`
}

// New returns an Engine over ds.
func New(ds *core.Dataset, opts ...Option) (*Engine, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	e := &Engine{ds: ds, strategy: DefaultStrategy, logger: logging.OrDefault(nil)}
	for _, opt := range opts {
		opt(e)
	}
	s, err := ParseStrategy(string(e.strategy))
	if err != nil {
		return nil, err
	}
	e.strategy = s

	return e, nil
}

// Dataset returns the dataset the engine searches.
func (e *Engine) Dataset() *core.Dataset { return e.ds }

// Strategy returns the default strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Using returns a copy of the engine whose default strategy is s.
// The empty strategy keeps the current one.
func (e *Engine) Using(s Strategy) (*Engine, error) {
	if s == "" {
		return e, nil
	}
	parsed, err := ParseStrategy(string(s))
	if err != nil {
		return nil, err
	}
	c := *e
	c.strategy = parsed

	return &c, nil
}

// Search runs the default strategy from source to target.
func (e *Engine) Search(ctx context.Context, source, target core.PersonID) (*Outcome, error) {
	return e.SearchWith(ctx, e.strategy, source, target)
}

// SearchWith runs strategy s from source to target.
//
// Not being connected is not an error: the Outcome reports Found == false.
// Errors: ErrUnknownStrategy, ErrInvalidEndpoint, or the context's error.
func (e *Engine) SearchWith(ctx context.Context, s Strategy, source, target core.PersonID) (*Outcome, error) {
	s, err := ParseStrategy(string(s))
	if err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("degrees").Start(ctx, "degrees.search")
	defer span.End()

	out := &Outcome{RunID: uuid.NewString(), Strategy: s, Source: source, Target: target}
	span.SetAttributes(
		attribute.String("run_id", out.RunID),
		attribute.String("strategy", string(s)),
		attribute.String("source", string(source)),
		attribute.String("target", string(target)),
	)
	log := e.logger.With(slog.String("run_id", out.RunID), slog.String("strategy", string(s)))

	if err := e.validate(source, target); err != nil {
		searchesTotal.WithLabelValues(string(s), resultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid endpoint")
		log.Warn("search rejected", slog.String("error", err.Error()))
		return nil, err
	}

	start := time.Now()
	err = e.run(ctx, s, out)
	elapsed := time.Since(start)
	if err != nil {
		searchesTotal.WithLabelValues(string(s), resultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		log.Warn("search failed", slog.String("error", err.Error()), slog.Duration("took", elapsed))
		return nil, fmt.Errorf("engine: %s search: %w", s, err)
	}

	result := resultNotFound
	if out.Found {
		result = resultFound
	}
	searchesTotal.WithLabelValues(string(s), result).Inc()
	searchDuration.WithLabelValues(string(s)).Observe(elapsed.Seconds())
	nodesExpanded.WithLabelValues(string(s)).Observe(float64(out.Stats.NodesExpanded()))

	span.SetAttributes(
		attribute.Bool("found", out.Found),
		attribute.Int("degrees", out.Path.Degrees()),
		attribute.Int("nodes_expanded", out.Stats.NodesExpanded()),
		attribute.Int("edges_considered", out.Stats.EdgesConsidered()),
	)
	span.SetStatus(codes.Ok, result)
	log.Info("search complete",
		slog.String("source", string(source)),
		slog.String("target", string(target)),
		slog.Bool("found", out.Found),
		slog.Int("degrees", out.Path.Degrees()),
		slog.Int("nodes_expanded", out.Stats.NodesExpanded()),
		slog.Duration("took", elapsed))

	return out, nil
}

func (e *Engine) validate(source, target core.PersonID) error {
	if !e.ds.HasPerson(source) {
		return fmt.Errorf("%w: source %q: %w", ErrInvalidEndpoint, source, core.ErrPersonNotFound)
	}
	if !e.ds.HasPerson(target) {
		return fmt.Errorf("%w: target %q: %w", ErrInvalidEndpoint, target, core.ErrPersonNotFound)
	}

	return nil
}

// run executes one strategy and copies its result into out.
func (e *Engine) run(ctx context.Context, s Strategy, out *Outcome) error {
	switch s {
	case StrategyBFS:
		res, err := bfs.ShortestPath(e.ds, out.Source, out.Target, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		out.Path, out.Found = res.Path, res.Found
		out.Stats.Forward = bidir.SideStats{
			NodesExpanded:   res.Stats.NodesExpanded,
			EdgesConsidered: res.Stats.EdgesConsidered,
		}
		out.Stats.Duration = res.Stats.Duration

	case StrategyDFS:
		res, err := dfs.FindPath(e.ds, out.Source, out.Target, dfs.WithContext(ctx))
		if err != nil {
			return err
		}
		out.Path, out.Found = res.Path, res.Found
		out.Stats.Forward = bidir.SideStats{
			NodesExpanded:   res.Stats.NodesExpanded,
			EdgesConsidered: res.Stats.EdgesConsidered,
		}
		out.Stats.Duration = res.Stats.Duration

	default:
		res, err := bidir.ShortestPath(e.ds, out.Source, out.Target, bidir.WithContext(ctx))
		if err != nil {
			return err
		}
		out.Path, out.Found, out.Stats = res.Path, res.Found, res.Stats
	}

	return nil
}
