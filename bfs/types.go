// SPDX-License-Identifier: MIT
// Package bfs provides tunable options, results and error definitions
// for breadth-first shortest-path search over a core.GraphView.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("bfs: view is nil")

	// ErrEndpointNotFound is returned when source or target is not in the view.
	ErrEndpointNotFound = errors.New("bfs: endpoint not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per expansion.
	Ctx context.Context

	// OnExpand is called each time a node is taken from the frontier and
	// marked explored. Receives the person and its depth from the source.
	OnExpand func(id core.PersonID, depth int)

	// MaxDepth, if > 0, stops generating children of nodes at this depth,
	// so only paths of at most MaxDepth steps can be found.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(core.PersonID, int) {},
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(id core.PersonID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth bounds the length of paths the search may return.
//
//	d > 0: only paths of at most d steps
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Stats reports how much work a search did. Diagnostic only.
type Stats struct {
	NodesExpanded   int
	EdgesConsidered int
	Duration        time.Duration
}

// Result holds the outcome of a search:
//   - Found: whether target was reached.
//   - Path: the steps from source (exclusive) to target (inclusive); nil
//     when not found, empty when source == target.
//   - Expanded: people in the order they were taken from the frontier.
type Result struct {
	Path     core.Path
	Found    bool
	Expanded []core.PersonID
	Stats    Stats
}
