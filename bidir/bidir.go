// SPDX-License-Identifier: MIT

package bidir

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/degrees/core"
)

// side is the mutable state of one search direction.
type side struct {
	which   Side
	layer   []core.PersonID
	parents ParentMap
	stats   *SideStats
}

// search holds both directions for one run.
type search struct {
	view core.GraphView
	opts Options
	ctx  context.Context
	fwd  side
	bwd  side
	res  *Result
}

// ShortestPath finds a shortest chain of co-starring edges between source
// and target by searching from both ends.
//
// Returns Found == false with a nil error when the people are not connected.
// source == target yields an empty path and no expansions. Errors:
// ErrViewNil, ErrEndpointNotFound, or the context's error on cancellation.
func ShortestPath(view core.GraphView, source, target core.PersonID, opts ...Option) (*Result, error) {
	if view == nil {
		return nil, ErrViewNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, id := range [...]core.PersonID{source, target} {
		if !view.HasPerson(id) {
			return nil, fmt.Errorf("%w: %q", ErrEndpointNotFound, id)
		}
	}

	start := time.Now()
	res := &Result{}
	if source == target {
		res.Path, res.Found = core.Path{}, true
		res.Stats.Meeting = source
		res.Stats.Duration = time.Since(start)
		return res, nil
	}

	s := &search{
		view: view,
		opts: o,
		ctx:  o.Ctx,
		fwd:  side{which: Forward, layer: []core.PersonID{source}, parents: newParentMap(source), stats: &res.Stats.Forward},
		bwd:  side{which: Backward, layer: []core.PersonID{target}, parents: newParentMap(target), stats: &res.Stats.Backward},
		res:  res,
	}

	err := s.loop()
	res.Stats.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// loop alternates layers until the trees meet or one side runs dry.
func (s *search) loop() error {
	for len(s.fwd.layer) > 0 && len(s.bwd.layer) > 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		cur, other := &s.fwd, &s.bwd
		if len(s.bwd.layer) < len(s.fwd.layer) {
			cur, other = &s.bwd, &s.fwd
		}

		meet, found, err := s.expandLayer(cur, other)
		if err != nil {
			return err
		}
		if found {
			s.res.Found = true
			s.res.Stats.Meeting = meet
			s.res.Path = stitch(meet, s.fwd.parents, s.bwd.parents)
			return nil
		}
	}

	return nil
}

// expandLayer expands every person of cur's current layer and replaces the
// layer with the people discovered. It stops at the first person that the
// other side has already reached.
func (s *search) expandLayer(cur, other *side) (core.PersonID, bool, error) {
	layer, idx := cur.layer, cur.stats.Layers
	cur.layer = nil
	s.opts.OnLayer(cur.which, idx, len(layer))
	cur.stats.Layers++

	for _, u := range layer {
		if err := s.ctx.Err(); err != nil {
			return "", false, err
		}
		cur.stats.NodesExpanded++
		s.opts.OnExpand(cur.which, u, idx)

		for _, e := range s.view.Neighbors(u) {
			cur.stats.EdgesConsidered++
			if cur.parents.Has(e.Person) {
				continue
			}
			cur.parents[e.Person] = Link{Parent: u, Movie: e.Movie}
			if other.parents.Has(e.Person) {
				return e.Person, true, nil
			}
			cur.layer = append(cur.layer, e.Person)
		}
	}

	return "", false, nil
}
