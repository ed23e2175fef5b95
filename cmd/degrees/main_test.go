// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/resolver"
)

// Tom Cruise -(A Few Good Men)- Kevin Bacon -(Apollo 13)- Tom Hanks (158).
// Emma Watson only shares a movie with nobody.
var fixture = map[string]string{
	"people.csv": `id,name,birth
102,Kevin Bacon,1958
129,Tom Cruise,1962
158,Tom Hanks,1956
1697,Tom Hanks,1990
200,Emma Watson,1990
`,
	"movies.csv": `id,title,year
104257,A Few Good Men,1992
112384,Apollo 13,1995
300,Harry Potter,2001
`,
	"stars.csv": `person_id,movie_id
102,104257
129,104257
102,112384
158,112384
200,300
`,
}

func writeData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range fixture {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	return dir
}

// run executes the CLI with a clean environment and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runEnv(t, nil, stdin, args...)
}

// runEnv is run with env set on top of the clean environment.
func runEnv(t *testing.T, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvData, config.EnvStrategy, config.EnvLogLevel, config.EnvMetrics} {
		t.Setenv(k, env[k])
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

func TestSearch_Narrative(t *testing.T) {
	dir := writeData(t)

	out, err := run(t, "158\n", "search", "Tom Cruise", "Tom Hanks", "-d", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Loading data...\nData loaded.\n")
	assert.Contains(t, out, "Which 'Tom Hanks'?")
	assert.Contains(t, out, "ID: 1697, Name: Tom Hanks, Birth: 1990")
	assert.True(t, strings.HasSuffix(out,
		"2 degrees of separation.\n"+
			"1: Tom Cruise and Kevin Bacon starred in A Few Good Men\n"+
			"2: Kevin Bacon and Tom Hanks starred in Apollo 13\n"), out)
}

func TestSearch_PromptsForNames(t *testing.T) {
	dir := writeData(t)

	for _, s := range engine.Strategies() {
		t.Run(string(s), func(t *testing.T) {
			out, err := run(t, "Kevin Bacon\ntom cruise\n", "search", "-d", dir, "-s", string(s))
			require.NoError(t, err)
			assert.Equal(t, 2, strings.Count(out, "Name: "))
			assert.Contains(t, out, "1 degrees of separation.\n1: Kevin Bacon and Tom Cruise starred in A Few Good Men\n")
		})
	}
}

func TestSearch_NotConnected(t *testing.T) {
	dir := writeData(t)

	out, err := run(t, "", "search", "Kevin Bacon", "Emma Watson", "-d", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Not connected.\n"), out)
}

func TestSearch_Metrics(t *testing.T) {
	dir := writeData(t)

	out, err := run(t, "", "search", "Kevin Bacon", "Tom Cruise", "-d", dir, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "\n[metrics]\nnodes_expanded_fwd: ")
	assert.Contains(t, out, "edges_considered:   ")
	assert.Less(t, strings.Index(out, "[metrics]"), strings.Index(out, "degrees of separation"))

	out, err = run(t, "", "search", "Kevin Bacon", "Kevin Bacon", "-d", dir, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "[metrics] source == target → 0 degrees\n0 degrees of separation.\n")
}

func TestSearch_JSON(t *testing.T) {
	dir := writeData(t)

	out, err := run(t, "", "search", "Tom Cruise", "Kevin Bacon", "-d", dir, "--json", "-s", "bfs")
	require.NoError(t, err)
	assert.NotContains(t, out, "Loading data")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["found"])
	assert.Equal(t, "bfs", got["strategy"])
	assert.EqualValues(t, 1, got["degrees"])
	assert.Len(t, got["hops"], 1)
	assert.NotEmpty(t, got["run_id"])
}

func TestSearch_Errors(t *testing.T) {
	dir := writeData(t)

	_, err := run(t, "", "search", "Nobody", "Kevin Bacon", "-d", dir)
	assert.ErrorIs(t, err, resolver.ErrUnknownName)

	_, err = run(t, "", "search", "Kevin Bacon", "Tom Cruise", "-d", dir, "-s", "astar")
	assert.ErrorIs(t, err, engine.ErrUnknownStrategy)

	_, err = run(t, "", "search", "Kevin Bacon", "Tom Cruise", "-d", filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = run(t, "", "search", "Kevin Bacon", "-d", dir)
	assert.Error(t, err, "second name cannot be read from empty input")
}

func TestStrategyFromEnv(t *testing.T) {
	dir := writeData(t)

	out, err := runEnv(t, map[string]string{config.EnvStrategy: "bidir"}, "",
		"search", "Tom Cruise", "Kevin Bacon", "-d", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"strategy": "bidirectional"`)

	// the flag wins over an invalid environment value
	out, err = runEnv(t, map[string]string{config.EnvStrategy: "astar"}, "",
		"search", "Tom Cruise", "Kevin Bacon", "-d", dir, "--json", "--strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, `"strategy": "bfs"`)

	_, err = runEnv(t, map[string]string{config.EnvStrategy: "astar"}, "",
		"search", "Tom Cruise", "Kevin Bacon", "-d", dir)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigFile(t *testing.T) {
	dir := writeData(t)
	cfgPath := filepath.Join(t.TempDir(), "degrees.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dir: "+dir+"\nmetrics: true\n"), 0o600))

	out, err := run(t, "", "--config", cfgPath, "search", "Kevin Bacon", "Tom Hanks")
	require.Error(t, err, "ambiguous name with no answer on stdin")

	out, err = run(t, "", "--config", cfgPath, "search", "Kevin Bacon", "Tom Cruise")
	require.NoError(t, err)
	assert.Contains(t, out, "[metrics]")

	require.NoError(t, os.WriteFile(cfgPath, []byte("data_dri: x\n"), 0o600))
	_, err = run(t, "", "--config", cfgPath, "search", "a", "b")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := writeData(t)
	pairs := filepath.Join(t.TempDir(), "pairs.csv")
	require.NoError(t, os.WriteFile(pairs, []byte("source_id,target_id\n129,158\n102,999\n102,200\n"), 0o600))

	out, err := run(t, "", "batch", pairs, "-d", dir, "-p", "2")
	require.NoError(t, err)

	var got []engine.Outcome
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var o engine.Outcome
		require.NoError(t, json.Unmarshal(sc.Bytes(), &o))
		got = append(got, o)
	}
	require.Len(t, got, 3)

	assert.True(t, got[0].Found)
	assert.Equal(t, 2, got[0].Path.Degrees())
	assert.NotEmpty(t, got[1].Error)
	assert.False(t, got[2].Found)
	assert.Empty(t, got[2].Error)
}

func TestBatch_BadFile(t *testing.T) {
	dir := writeData(t)
	pairs := filepath.Join(t.TempDir(), "pairs.csv")
	require.NoError(t, os.WriteFile(pairs, []byte("129\n"), 0o600))

	_, err := run(t, "", "batch", pairs, "-d", dir)
	assert.ErrorIs(t, err, errBadPairsFile)

	_, err = run(t, "", "batch", pairs, "-d", dir, "-p", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBench(t *testing.T) {
	out, err := run(t, "", "bench", "--people", "60", "--movies", "40", "--cast", "3", "--pairs", "15", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "60 people, 40 movies")
	for _, s := range engine.Strategies() {
		assert.Contains(t, out, string(s))
	}

	_, err = run(t, "", "bench", "--pairs", "0")
	assert.Error(t, err)
}
