// SPDX-License-Identifier: MIT
package present_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bidir"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/present"
)

func smallDataset(t *testing.T) *core.Dataset {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddPerson("102", "Kevin Bacon", "1958"))
	require.NoError(t, b.AddPerson("158", "Tom Hanks", "1956"))
	require.NoError(t, b.AddPerson("129", "Tom Cruise", "1962"))
	require.NoError(t, b.AddMovie("112384", "Apollo 13", "1995"))
	require.NoError(t, b.AddMovie("104257", "A Few Good Men", "1992"))
	require.NoError(t, b.AddStar("102", "112384"))
	require.NoError(t, b.AddStar("158", "112384"))
	require.NoError(t, b.AddStar("158", "104257"))
	require.NoError(t, b.AddStar("129", "104257"))

	return b.Build()
}

func TestNarrative(t *testing.T) {
	ds := smallDataset(t)
	path := core.Path{{Movie: "112384", Person: "158"}, {Movie: "104257", Person: "129"}}

	var buf bytes.Buffer
	require.NoError(t, present.Narrative(&buf, ds, "102", path))
	assert.Equal(t, "2 degrees of separation.\n"+
		"1: Kevin Bacon and Tom Hanks starred in Apollo 13\n"+
		"2: Tom Hanks and Tom Cruise starred in A Few Good Men\n", buf.String())
}

func TestNarrative_EdgeCases(t *testing.T) {
	ds := smallDataset(t)

	var buf bytes.Buffer
	require.NoError(t, present.Narrative(&buf, ds, "102", nil))
	assert.Equal(t, "Not connected.\n", buf.String())

	buf.Reset()
	require.NoError(t, present.Narrative(&buf, ds, "102", core.Path{}))
	assert.Equal(t, "0 degrees of separation.\n", buf.String())
}

func TestDescribe_FallsBackToIDs(t *testing.T) {
	ds := smallDataset(t)
	hops := present.Describe(ds, "102", core.Path{{Movie: "999", Person: "ghost"}})

	require.Len(t, hops, 1)
	assert.Equal(t, present.Hop{
		Index: 1, From: "102", FromName: "Kevin Bacon",
		To: "ghost", ToName: "ghost", Movie: "999", Title: "999",
	}, hops[0])

	assert.NotNil(t, present.Describe(ds, "102", nil))
}

func TestMetrics(t *testing.T) {
	stats := bidir.Stats{
		Forward:  bidir.SideStats{NodesExpanded: 3, EdgesConsidered: 10},
		Backward: bidir.SideStats{NodesExpanded: 2, EdgesConsidered: 5},
		Duration: 1500 * time.Microsecond,
	}

	var buf bytes.Buffer
	require.NoError(t, present.Metrics(&buf, stats))
	assert.Equal(t, "\n[metrics]\n"+
		"nodes_expanded_fwd: 3\n"+
		"nodes_expanded_bwd: 2\n"+
		"edges_considered:   15\n"+
		"time_ms:            1.500\n", buf.String())

	buf.Reset()
	require.NoError(t, present.SameEndpointMetrics(&buf))
	assert.Equal(t, "[metrics] source == target → 0 degrees\n", buf.String())
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestNarrative_StopsAtFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	err := present.Narrative(w, smallDataset(t), "102", core.Path{{Movie: "112384", Person: "158"}})
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.n)
}

func TestStyler_PlainForBuffers(t *testing.T) {
	st := present.NewStyler(&bytes.Buffer{})
	assert.False(t, st.Enabled())
	assert.Equal(t, "Apollo 13", st.Movie("Apollo 13"))
	assert.Equal(t, "Loading data...", st.Muted("Loading data..."))
	assert.Equal(t, "[metrics]", present.Styler{}.Heading("[metrics]"))
	assert.False(t, present.IsTerminal(&bytes.Buffer{}))
}
