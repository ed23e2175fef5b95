// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// smallDataset:
//
//	102 ─112384─ 158 ─104257─ 129
//	200 (no movies)
func smallDataset(t testing.TB) *core.Dataset {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddPerson("102", "Kevin Bacon", "1958"))
	require.NoError(t, b.AddPerson("158", "Tom Hanks", "1956"))
	require.NoError(t, b.AddPerson("129", "Tom Cruise", "1962"))
	require.NoError(t, b.AddPerson("200", "Emma Watson", "1990"))
	require.NoError(t, b.AddMovie("112384", "Apollo 13", "1995"))
	require.NoError(t, b.AddMovie("104257", "A Few Good Men", "1992"))
	require.NoError(t, b.AddStar("102", "112384"))
	require.NoError(t, b.AddStar("158", "112384"))
	require.NoError(t, b.AddStar("158", "104257"))
	require.NoError(t, b.AddStar("129", "104257"))

	return b.Build()
}

// distances is a plain reference BFS used to cross-check path lengths.
func distances(view core.GraphView, source core.PersonID) map[core.PersonID]int {
	dist := map[core.PersonID]int{source: 0}
	queue := []core.PersonID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range view.Neighbors(u) {
			if _, ok := dist[e.Person]; !ok {
				dist[e.Person] = dist[u] + 1
				queue = append(queue, e.Person)
			}
		}
	}

	return dist
}

func TestShortestPath_Errors(t *testing.T) {
	ds := smallDataset(t)

	_, err := bfs.ShortestPath(nil, "102", "129")
	assert.ErrorIs(t, err, bfs.ErrViewNil)

	_, err = bfs.ShortestPath(ds, "ghost", "129")
	assert.ErrorIs(t, err, bfs.ErrEndpointNotFound)

	_, err = bfs.ShortestPath(ds, "102", "ghost")
	assert.ErrorIs(t, err, bfs.ErrEndpointNotFound)

	_, err = bfs.ShortestPath(ds, "102", "129", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestShortestPath_SamePerson(t *testing.T) {
	res, err := bfs.ShortestPath(smallDataset(t), "102", "102")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Stats.NodesExpanded)
}

func TestShortestPath_SmallDataset(t *testing.T) {
	ds := smallDataset(t)

	tests := []struct {
		source, target core.PersonID
		want           core.Path
	}{
		{"158", "102", core.Path{{Movie: "112384", Person: "102"}}},
		{"102", "158", core.Path{{Movie: "112384", Person: "158"}}},
		{"102", "129", core.Path{{Movie: "112384", Person: "158"}, {Movie: "104257", Person: "129"}}},
		{"129", "102", core.Path{{Movie: "104257", Person: "158"}, {Movie: "112384", Person: "102"}}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s->%s", tc.source, tc.target), func(t *testing.T) {
			res, err := bfs.ShortestPath(ds, tc.source, tc.target)
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, tc.want, res.Path)
			assert.NoError(t, res.Path.Verify(ds, tc.source, tc.target))
		})
	}
}

func TestShortestPath_GoalTestOnGeneration(t *testing.T) {
	// 158 is expanded once and 102 is recognised while its neighbors are generated.
	res, err := bfs.ShortestPath(smallDataset(t), "158", "102")
	require.NoError(t, err)
	assert.Equal(t, []core.PersonID{"158"}, res.Expanded)
	assert.Equal(t, 1, res.Stats.NodesExpanded)
}

func TestShortestPath_NotConnected(t *testing.T) {
	res, err := bfs.ShortestPath(smallDataset(t), "102", "200")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.ElementsMatch(t, []core.PersonID{"102", "158", "129"}, res.Expanded)
}

func TestShortestPath_MaxDepth(t *testing.T) {
	ds := builder.MustBuild(nil, builder.Chain(5))

	res, err := bfs.ShortestPath(ds, "p0", "p4", bfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = bfs.ShortestPath(ds, "p0", "p4", bfs.WithMaxDepth(4))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Path.Degrees())
}

func TestShortestPath_OnExpandDepths(t *testing.T) {
	ds := builder.MustBuild(nil, builder.Chain(5))

	var got []int
	res, err := bfs.ShortestPath(ds, "p0", "p4", bfs.WithOnExpand(func(_ core.PersonID, d int) {
		got = append(got, d)
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
	assert.Equal(t, []core.PersonID{"p0", "p1", "p2", "p3"}, res.Expanded)
}

func TestShortestPath_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.ShortestPath(smallDataset(t), "102", "129", bfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestShortestPath_MatchesReferenceDistances(t *testing.T) {
	ds := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomCast(120, 60, 3))
	ids := ds.PersonIDs()
	source := ids[0]
	dist := distances(ds, source)

	for _, target := range ids[1:40] {
		res, err := bfs.ShortestPath(ds, source, target)
		require.NoError(t, err)

		want, reachable := dist[target]
		require.Equal(t, reachable, res.Found, "target %s", target)
		if !reachable {
			continue
		}
		assert.Equal(t, want, res.Path.Degrees(), "target %s", target)
		assert.NoError(t, res.Path.Verify(ds, source, target))

		seen := make(map[core.PersonID]struct{}, len(res.Expanded))
		for _, id := range res.Expanded {
			_, dup := seen[id]
			require.False(t, dup, "%s expanded twice", id)
			seen[id] = struct{}{}
		}
	}
}

func TestShortestPath_ConcurrentReaders(t *testing.T) {
	ds := builder.MustBuild(nil, builder.Tree(4, 3))
	last := core.PersonID(fmt.Sprintf("p%d", builder.TreeSize(4, 3)-1))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.ShortestPath(ds, "p0", last)
			if err != nil {
				errs <- err
				return
			}
			if !res.Found || res.Path.Degrees() != 4 {
				errs <- fmt.Errorf("unexpected result %+v", res.Path)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
