// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Arena of search-tree nodes linked to their parents by index.
// Policy:
//   - A child is appended only after its parent; parent indices always point backward.
//   - PathTo walks the links to the root and returns the steps in forward order.

package frontier

import "github.com/katalvlaran/degrees/core"

// NoParent is the Parent index of a root node.
const NoParent = -1

// Node is one discovered state in a search tree.
// The root has Parent == NoParent and an empty Action.
type Node struct {
	State  core.PersonID
	Parent int
	Action core.MovieID
}

// Arena owns every Node created by one search run.
// It is append-only; indices handed out stay valid for the arena's lifetime.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena with room for sizeHint nodes.
func NewArena(sizeHint int) *Arena {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Arena{nodes: make([]Node, 0, sizeHint)}
}

// Root appends a root node for state and returns its index.
func (a *Arena) Root(state core.PersonID) int {
	a.nodes = append(a.nodes, Node{State: state, Parent: NoParent})
	return len(a.nodes) - 1
}

// Child appends a node discovered from parent over action and returns its index.
// parent must be an index previously returned by this arena.
func (a *Arena) Child(parent int, state core.PersonID, action core.MovieID) int {
	_ = a.nodes[parent] // out-of-range parents are programmer errors
	a.nodes = append(a.nodes, Node{State: state, Parent: parent, Action: action})
	return len(a.nodes) - 1
}

// Node returns the node stored at index i.
func (a *Arena) Node(i int) Node { return a.nodes[i] }

// State returns the state of the node at index i.
func (a *Arena) State(i int) core.PersonID { return a.nodes[i].State }

// Len returns the number of nodes created so far.
func (a *Arena) Len() int { return len(a.nodes) }

// PathTo walks parent links from node i back to its root and returns the
// (movie, person) steps in root-to-i order. The root itself is excluded, so
// PathTo(root) is an empty, non-nil Path.
//
// Complexity: O(depth(i)).
func (a *Arena) PathTo(i int) core.Path {
	path := core.Path{}
	for cur := a.nodes[i]; cur.Parent != NoParent; cur = a.nodes[cur.Parent] {
		path = append(path, core.Edge{Movie: cur.Action, Person: cur.State})
	}
	// reverse to get root → i
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
