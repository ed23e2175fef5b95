// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "large", cfg.DataDir)
	assert.Equal(t, "bidirectional", cfg.Strategy)
	assert.False(t, cfg.Metrics)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
data_dir: small
strategy: bfs
server:
  addr: 127.0.0.1:9000
  read_timeout: 2s
batch:
  parallelism: 8
`)
	t.Setenv(config.EnvData, "")
	t.Setenv(config.EnvStrategy, "")
	t.Setenv(config.EnvMetrics, "")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "small", cfg.DataDir)
	assert.Equal(t, "bfs", cfg.Strategy)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	// untouched keys keep their defaults
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 8, cfg.Batch.Parallelism)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	t.Setenv(config.EnvData, "")
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default().DataDir, cfg.DataDir)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "data_dirr: typo\n"))
	assert.Error(t, err)

	t.Setenv(config.EnvStrategy, "")
	cfg, err := config.Load(writeFile(t, "strategy: astar\n"))
	require.NoError(t, err, "Load leaves validation to the caller")
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestLoad_StrategyAliases(t *testing.T) {
	t.Setenv(config.EnvData, "")

	t.Setenv(config.EnvStrategy, "bidir")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "bidirectional", cfg.Strategy)
	require.NoError(t, cfg.Validate())

	t.Setenv(config.EnvStrategy, "")
	cfg, err = config.Load(writeFile(t, "strategy: BIDIR\n"))
	require.NoError(t, err)
	assert.Equal(t, "bidirectional", cfg.Strategy)
	require.NoError(t, cfg.Validate())
}

func TestLoad_LaterOverrideFixesBadEnv(t *testing.T) {
	t.Setenv(config.EnvData, "")
	t.Setenv(config.EnvStrategy, "astar")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	// what a --strategy flag does after Load
	cfg.Strategy = "bfs"
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvData:     "/srv/imdb",
		config.EnvStrategy: "DFS",
		config.EnvMetrics:  "1",
		config.EnvLogLevel: "Debug",
	}
	cfg := config.Default()
	config.ApplyEnv(&cfg, func(k string) string { return env[k] })

	assert.Equal(t, "/srv/imdb", cfg.DataDir)
	assert.Equal(t, "dfs", cfg.Strategy)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())

	env[config.EnvMetrics] = "0"
	config.ApplyEnv(&cfg, func(k string) string { return env[k] })
	assert.False(t, cfg.Metrics)
}

func TestValidate_Rules(t *testing.T) {
	tests := map[string]func(*config.Config){
		"EmptyData":       func(c *config.Config) { c.DataDir = "" },
		"BadStrategy":     func(c *config.Config) { c.Strategy = "greedy" },
		"BadLevel":        func(c *config.Config) { c.Log.Level = "loud" },
		"NoAddr":          func(c *config.Config) { c.Server.Addr = "" },
		"NegativeTimeout": func(c *config.Config) { c.Server.ReadTimeout = -time.Second },
		"ZeroParallelism": func(c *config.Config) { c.Batch.Parallelism = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
