// SPDX-License-Identifier: MIT
package bidir_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/bidir"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// BenchmarkShortestPath_Tree compares both searches from the root of a bushy
// tree to its last leaf.
func BenchmarkShortestPath_Tree(b *testing.B) {
	const depth, fanout = 7, 4
	ds := builder.MustBuild(nil, builder.Tree(depth, fanout))
	leaf := core.PersonID(fmt.Sprintf("p%d", builder.TreeSize(depth, fanout)-1))

	b.Run("bidir", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bidir.ShortestPath(ds, "p0", leaf)
		}
	})
	b.Run("bfs", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.ShortestPath(ds, "p0", leaf)
		}
	})
}

// BenchmarkShortestPath_Random measures searches on a seeded random filmography.
func BenchmarkShortestPath_Random(b *testing.B) {
	ds := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomCast(2000, 1500, 4))
	ids := ds.PersonIDs()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bidir.ShortestPath(ds, ids[i%len(ids)], ids[(i*7+1)%len(ids)])
	}
}
