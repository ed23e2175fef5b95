// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first path finding,
// including cancellation, a visit hook, depth limiting and edge filtering.
package dfs

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/degrees/core"
)

var (
	// ErrViewNil is returned when a nil view is passed to FindPath.
	ErrViewNil = errors.New("dfs: view is nil")

	// ErrEndpointNotFound indicates that source or target is not a person of
	// the view.
	ErrEndpointNotFound = errors.New("dfs: endpoint not found")
)

// Option configures optional behavior of FindPath.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a depth-first search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; checked before every expansion.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a person is taken from the stack.
	// Returning an error aborts the search with that error.
	OnVisit func(id core.PersonID, depth int) error

	// MaxDepth, if non-negative, stops generating children of people at that
	// depth. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each candidate edge.
	// Return false to skip it; skipped edges are counted in SkippedEdges.
	FilterEdge func(from core.PersonID, e core.Edge) bool
}

// DefaultOptions returns DFSOptions with a background context, no hook,
// no depth limit and no filtering.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:        context.Background(),
		OnVisit:    nil,
		MaxDepth:   -1,
		FilterEdge: nil,
	}
}

// WithContext sets the context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(id core.PersonID, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits the length of paths the search may return.
// A limit of 0 expands only the source.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge installs an edge filter.
func WithFilterEdge(fn func(from core.PersonID, e core.Edge) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// Stats reports how much work a search did.
type Stats struct {
	NodesExpanded   int
	EdgesConsidered int
	Duration        time.Duration
}

// DFSResult captures the outcome of a depth-first search.
type DFSResult struct {
	// Path from source (exclusive) to target (inclusive); nil when not found.
	Path core.Path

	// Found reports whether target was reached.
	Found bool

	// Order records people in the sequence they were taken from the stack.
	Order []core.PersonID

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int

	Stats Stats
}
