// SPDX-License-Identifier: MIT

package bidir

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors.
var (
	// ErrViewNil is returned if a nil view is passed.
	ErrViewNil = errors.New("bidir: view is nil")

	// ErrEndpointNotFound is returned when source or target is not in the view.
	ErrEndpointNotFound = errors.New("bidir: endpoint not found")
)

// Side names one of the two search directions.
type Side int

const (
	// Forward grows from the source.
	Forward Side = iota
	// Backward grows from the target.
	Backward
)

// String returns "forward" or "backward".
func (s Side) String() string {
	if s == Backward {
		return "backward"
	}
	return "forward"
}

// Option configures a search.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Ctx is checked before every layer and every expansion.
	Ctx context.Context

	// OnLayer is called before a side expands a layer, with the side, the
	// side's layer index (0 for the root layer) and the layer size.
	OnLayer func(side Side, layer, size int)

	// OnExpand is called each time a side expands a person, with the index
	// of the layer the person belongs to.
	OnExpand func(side Side, id core.PersonID, layer int)
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnLayer:  func(Side, int, int) {},
		OnExpand: func(Side, core.PersonID, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLayer registers a per-layer callback.
func WithOnLayer(fn func(side Side, layer, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithOnExpand registers a per-person callback.
func WithOnExpand(fn func(side Side, id core.PersonID, layer int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// SideStats counts the work done by one direction.
type SideStats struct {
	NodesExpanded   int `json:"nodes_expanded"`
	EdgesConsidered int `json:"edges_considered"`
	Layers          int `json:"layers"`
}

// Stats is the instrumentation of one search.
type Stats struct {
	Forward  SideStats     `json:"forward"`
	Backward SideStats     `json:"backward"`
	Duration time.Duration `json:"duration"`
	// Meeting is the person where the two trees touched; empty if not found.
	Meeting core.PersonID `json:"meeting,omitempty"`
}

// NodesExpanded returns the expansions of both sides combined.
func (s Stats) NodesExpanded() int {
	return s.Forward.NodesExpanded + s.Backward.NodesExpanded
}

// EdgesConsidered returns the edges considered by both sides combined.
func (s Stats) EdgesConsidered() int {
	return s.Forward.EdgesConsidered + s.Backward.EdgesConsidered
}

// Result is the outcome of a search. Path is nil when Found is false and
// empty when source == target.
type Result struct {
	Path  core.Path
	Found bool
	Stats Stats
}
