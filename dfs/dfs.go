// SPDX-License-Identifier: MIT

// Package dfs implements depth-first path finding over a core.GraphView.
//
// Features:
//   - Iterative: an explicit frontier.Stack replaces recursion, so deep
//     chains cannot exhaust the goroutine stack.
//   - Goal test on generation, as in bfs.
//   - Context cancellation, visit hook, depth limit, edge filter.
package dfs

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/frontier"
)

// dfsWalker holds the mutable state of one search.
type dfsWalker struct {
	view     core.GraphView
	opts     DFSOptions
	ctx      context.Context
	target   core.PersonID
	arena    *frontier.Arena
	stack    *frontier.Stack
	depth    []int // depth[i] is the depth of arena node i
	explored map[core.PersonID]struct{}
	res      *DFSResult
}

// FindPath searches depth-first from source for target.
//
// The returned path is valid but may be longer than the shortest one.
// source == target yields an empty path without any expansion.
// Returns DFSResult or an error if aborted by the context or the hook.
func FindPath(view core.GraphView, source, target core.PersonID, opts ...Option) (*DFSResult, error) {
	if view == nil {
		return nil, ErrViewNil
	}
	start := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, id := range [...]core.PersonID{source, target} {
		if !view.HasPerson(id) {
			return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, id)
		}
	}
	if source == target {
		return &DFSResult{Path: core.Path{}, Found: true, Stats: Stats{Duration: time.Since(start)}}, nil
	}

	arena := frontier.NewArena(64)
	w := &dfsWalker{
		view:     view,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		arena:    arena,
		stack:    frontier.NewStack(arena),
		explored: make(map[core.PersonID]struct{}),
		res:      &DFSResult{},
	}
	w.push(arena.Root(source), 0)

	if err := w.run(); err != nil {
		return nil, err
	}
	w.res.Stats.Duration = time.Since(start)

	return w.res, nil
}

func (w *dfsWalker) push(i, d int) {
	w.depth = append(w.depth, d)
	w.stack.Add(i)
}

// run pops people until the target is generated or the stack is empty.
func (w *dfsWalker) run() error {
	for !w.stack.Empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		i, err := w.stack.Remove()
		if err != nil {
			return err
		}
		done, err := w.visit(i)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// visit expands node i. Returns true once the target has been generated.
func (w *dfsWalker) visit(i int) (bool, error) {
	n := w.arena.Node(i)
	d := w.depth[i]
	w.explored[n.State] = struct{}{}
	w.res.Order = append(w.res.Order, n.State)
	w.res.Stats.NodesExpanded++

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.State, d); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", n.State, err)
		}
	}
	if w.opts.MaxDepth >= 0 && d >= w.opts.MaxDepth {
		return false, nil
	}

	for _, e := range w.view.Neighbors(n.State) {
		w.res.Stats.EdgesConsidered++
		if _, seen := w.explored[e.Person]; seen || w.stack.Contains(e.Person) {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(n.State, e) {
			w.res.SkippedEdges++
			continue
		}

		child := w.arena.Child(i, e.Person, e.Movie)
		if e.Person == w.target {
			w.res.Found = true
			w.res.Path = w.arena.PathTo(child)
			return true, nil
		}
		w.push(child, d+1)
	}

	return false, nil
}
