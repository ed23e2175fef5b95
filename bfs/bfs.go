// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first shortest-path search over a core.GraphView.
//
// The search expands people in increasing distance from the source and tests
// for the target as soon as a child is generated, so the first hit is a
// shortest chain of co-starring movies.
package bfs

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/frontier"
)

// walker encapsulates mutable search state for one run.
type walker struct {
	view     core.GraphView
	opts     Options
	ctx      context.Context
	target   core.PersonID
	arena    *frontier.Arena
	queue    *frontier.Queue
	depth    []int // depth[i] is the depth of arena node i
	explored map[core.PersonID]struct{}
	res      *Result
}

// ShortestPath finds a shortest chain of co-starring edges from source to
// target.
//
// Returns a Result with Found == false (and a nil error) when the two people
// are not connected. source == target yields an empty path without any
// expansion. Errors: ErrViewNil, ErrEndpointNotFound, ErrOptionViolation, or
// the context's error if it is cancelled mid-search.
//
// Among several shortest paths, the one returned depends on the view's
// neighbor order.
func ShortestPath(view core.GraphView, source, target core.PersonID, opts ...Option) (*Result, error) {
	if view == nil {
		return nil, ErrViewNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, id := range [...]core.PersonID{source, target} {
		if !view.HasPerson(id) {
			return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, id)
		}
	}

	start := time.Now()
	if source == target {
		return &Result{Path: core.Path{}, Found: true, Stats: Stats{Duration: time.Since(start)}}, nil
	}

	arena := frontier.NewArena(64)
	w := &walker{
		view:     view,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		arena:    arena,
		queue:    frontier.NewQueue(arena),
		explored: make(map[core.PersonID]struct{}),
		res:      &Result{},
	}
	w.add(arena.Root(source), 0)

	err := w.loop()
	w.res.Stats.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// add records a node's depth and schedules it.
func (w *walker) add(i, d int) {
	w.depth = append(w.depth, d)
	w.queue.Add(i)
}

// loop expands nodes until the target is generated, the frontier empties,
// or the context is cancelled.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		i, err := w.queue.Remove()
		if err != nil {
			return err
		}
		if w.expand(i) {
			return nil
		}
	}

	return nil
}

// expand marks node i explored and generates its children.
// Returns true once the target has been generated.
func (w *walker) expand(i int) bool {
	n := w.arena.Node(i)
	d := w.depth[i]
	w.explored[n.State] = struct{}{}
	w.res.Expanded = append(w.res.Expanded, n.State)
	w.res.Stats.NodesExpanded++
	w.opts.OnExpand(n.State, d)

	if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
		return false
	}

	for _, e := range w.view.Neighbors(n.State) {
		w.res.Stats.EdgesConsidered++
		if _, seen := w.explored[e.Person]; seen || w.queue.Contains(e.Person) {
			continue
		}

		child := w.arena.Child(i, e.Person, e.Movie)
		if e.Person == w.target {
			w.res.Found = true
			w.res.Path = w.arena.PathTo(child)
			return true
		}
		w.add(child, d+1)
	}

	return false
}
