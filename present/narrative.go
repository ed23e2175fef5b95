// SPDX-License-Identifier: MIT

package present

import (
	"fmt"
	"io"

	"github.com/katalvlaran/degrees/bidir"
	"github.com/katalvlaran/degrees/core"
)

// Hop is one step of a path with its display data resolved.
type Hop struct {
	Index    int           `json:"index"`
	From     core.PersonID `json:"from"`
	FromName string        `json:"from_name"`
	To       core.PersonID `json:"to"`
	ToName   string        `json:"to_name"`
	Movie    core.MovieID  `json:"movie"`
	Title    string        `json:"title"`
	Year     string        `json:"year,omitempty"`
}

// Describe resolves names and titles for every step of path, starting at
// source. Unknown ids fall back to the id itself. A nil or empty path
// yields an empty, non-nil slice.
func Describe(ds *core.Dataset, source core.PersonID, path core.Path) []Hop {
	hops := make([]Hop, 0, len(path))
	prev := source
	for i, step := range path {
		h := Hop{
			Index:    i + 1,
			From:     prev,
			FromName: personName(ds, prev),
			To:       step.Person,
			ToName:   personName(ds, step.Person),
			Movie:    step.Movie,
			Title:    string(step.Movie),
		}
		if m, ok := ds.Movie(step.Movie); ok {
			h.Title, h.Year = m.Title, m.Year
		}
		hops = append(hops, h)
		prev = step.Person
	}

	return hops
}

func personName(ds *core.Dataset, id core.PersonID) string {
	if p, ok := ds.Person(id); ok && p.Name != "" {
		return p.Name
	}
	return string(id)
}

// Narrative writes the human-readable answer for path:
//
//	2 degrees of separation.
//	1: Kevin Bacon and Tom Hanks starred in Apollo 13
//	2: Tom Hanks and Tom Cruise starred in A Few Good Men
//
// A nil path prints "Not connected.".
func Narrative(w io.Writer, ds *core.Dataset, source core.PersonID, path core.Path) error {
	st := NewStyler(w)
	ew := &errWriter{w: w}

	if path == nil {
		ew.printf("%s\n", st.Failure("Not connected."))
		return ew.err
	}

	ew.printf("%s\n", st.Heading(fmt.Sprintf("%d degrees of separation.", len(path))))
	for _, h := range Describe(ds, source, path) {
		ew.printf("%d: %s and %s starred in %s\n",
			h.Index, st.Person(h.FromName), st.Person(h.ToName), st.Movie(h.Title))
	}

	return ew.err
}

// Metrics writes the [metrics] block for one search.
func Metrics(w io.Writer, stats bidir.Stats) error {
	st := NewStyler(w)
	ew := &errWriter{w: w}

	ew.printf("\n%s\n", st.Heading("[metrics]"))
	ew.printf("nodes_expanded_fwd: %d\n", stats.Forward.NodesExpanded)
	ew.printf("nodes_expanded_bwd: %d\n", stats.Backward.NodesExpanded)
	ew.printf("edges_considered:   %d\n", stats.EdgesConsidered())
	ew.printf("time_ms:            %.3f\n", float64(stats.Duration.Microseconds())/1000)

	return ew.err
}

// SameEndpointMetrics writes the one-line metrics note used when source and
// target are the same person and no search ran.
func SameEndpointMetrics(w io.Writer) error {
	_, err := fmt.Fprintln(w, NewStyler(w).Heading("[metrics]")+" source == target → 0 degrees")
	return err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
