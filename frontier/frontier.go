// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: FIFO and LIFO frontiers over arena indices.
// Concurrency:
//   - A frontier belongs to one search and is not safe for concurrent use.

package frontier

import (
	"errors"

	"github.com/katalvlaran/degrees/core"
)

// ErrEmptyFrontier is returned by Remove when nothing is left to expand.
var ErrEmptyFrontier = errors.New("frontier: empty frontier")

// Frontier is the set of discovered but not yet expanded nodes.
// Implementations differ only in which node Remove hands out next.
type Frontier interface {
	// Add schedules the arena node at index i for expansion.
	Add(i int)
	// Remove takes the next node index per the frontier's order.
	Remove() (int, error)
	// Empty reports whether nothing is scheduled.
	Empty() bool
	// Len returns the number of scheduled nodes.
	Len() int
	// Contains reports whether a node with the given state is scheduled.
	Contains(state core.PersonID) bool
}

// members counts scheduled nodes per state. A count rather than a flag keeps
// Contains exact even if a caller schedules one state twice.
type members map[core.PersonID]int

func (m members) add(s core.PersonID) { m[s]++ }

func (m members) remove(s core.PersonID) {
	if m[s] <= 1 {
		delete(m, s)
		return
	}
	m[s]--
}

// Queue is a FIFO frontier backed by a slice and a membership set.
type Queue struct {
	arena *Arena
	items []int
	head  int
	in    members
}

// NewQueue returns an empty FIFO frontier over arena.
func NewQueue(arena *Arena) *Queue {
	return &Queue{arena: arena, in: make(members)}
}

// Add appends node i to the back of the queue. O(1) amortized.
func (q *Queue) Add(i int) {
	q.items = append(q.items, i)
	q.in.add(q.arena.State(i))
}

// Remove pops the oldest node. O(1) amortized.
func (q *Queue) Remove() (int, error) {
	if q.Empty() {
		return 0, ErrEmptyFrontier
	}
	i := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	q.in.remove(q.arena.State(i))

	return i, nil
}

// Empty reports whether the queue has no pending nodes.
func (q *Queue) Empty() bool { return q.head == len(q.items) }

// Len returns the number of pending nodes.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Contains reports whether state is pending. O(1).
func (q *Queue) Contains(state core.PersonID) bool {
	_, ok := q.in[state]
	return ok
}

// Stack is a LIFO frontier backed by a slice and a membership set.
type Stack struct {
	arena *Arena
	items []int
	in    members
}

// NewStack returns an empty LIFO frontier over arena.
func NewStack(arena *Arena) *Stack {
	return &Stack{arena: arena, in: make(members)}
}

// Add pushes node i. O(1) amortized.
func (s *Stack) Add(i int) {
	s.items = append(s.items, i)
	s.in.add(s.arena.State(i))
}

// Remove pops the most recently added node. O(1).
func (s *Stack) Remove() (int, error) {
	if s.Empty() {
		return 0, ErrEmptyFrontier
	}
	last := len(s.items) - 1
	i := s.items[last]
	s.items = s.items[:last]
	s.in.remove(s.arena.State(i))

	return i, nil
}

// Empty reports whether the stack has no pending nodes.
func (s *Stack) Empty() bool { return len(s.items) == 0 }

// Len returns the number of pending nodes.
func (s *Stack) Len() int { return len(s.items) }

// Contains reports whether state is pending. O(1).
func (s *Stack) Contains(state core.PersonID) bool {
	_, ok := s.in[state]
	return ok
}

// compile-time checks
var (
	_ Frontier = (*Queue)(nil)
	_ Frontier = (*Stack)(nil)
)
