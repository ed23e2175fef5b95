// SPDX-License-Identifier: MIT

package bidir

import "github.com/katalvlaran/degrees/core"

// Link records how a person was reached on one side: through Movie from
// Parent. Root marks the side's own starting person, which has no parent.
type Link struct {
	Parent core.PersonID
	Movie  core.MovieID
	Root   bool
}

// ParentMap holds the links discovered by one side. Its keys are that side's
// visited set.
type ParentMap map[core.PersonID]Link

func newParentMap(root core.PersonID) ParentMap {
	return ParentMap{root: {Root: true}}
}

// Has reports whether id has been reached on this side.
func (pm ParentMap) Has(id core.PersonID) bool {
	_, ok := pm[id]
	return ok
}

// stitch joins the two trees at meet into a path from the forward root to
// the backward root.
//
// Forward links point toward the source, so they are collected from meet
// outward and reversed. Backward links point toward the target; each hop
// meet → parent is emitted as (movie, parent) directly.
func stitch(meet core.PersonID, fwd, bwd ParentMap) core.Path {
	path := core.Path{}
	for cur := meet; !fwd[cur].Root; {
		l := fwd[cur]
		path = append(path, core.Edge{Movie: l.Movie, Person: cur})
		cur = l.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for cur := meet; !bwd[cur].Root; {
		l := bwd[cur]
		path = append(path, core.Edge{Movie: l.Movie, Person: l.Parent})
		cur = l.Parent
	}

	return path
}
