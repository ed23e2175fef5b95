// SPDX-License-Identifier: MIT

// Package config loads the settings shared by every degrees command.
//
// Priority: command-line flags > environment > YAML file > Default().
// Flags are applied by the caller after Load returns, and the caller
// validates the merged result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/degrees/engine"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvData     = "DEGREES_DATA"
	EnvStrategy = "DEGREES_STRATEGY"
	EnvLogLevel = "DEGREES_LOG_LEVEL"
	EnvMetrics  = "METRICS"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	validate *validator.Validate
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strategy", validateStrategy)
}

// validateStrategy accepts every name engine.ParseStrategy accepts.
func validateStrategy(fl validator.FieldLevel) bool {
	_, err := engine.ParseStrategy(fl.Field().String())
	return err == nil
}

// canonicalStrategy maps aliases and casing to the engine's name for s.
// Unknown names are returned unchanged for Validate to report.
func canonicalStrategy(s string) string {
	if st, err := engine.ParseStrategy(s); err == nil {
		return string(st)
	}

	return s
}

// Config is the full configuration tree.
type Config struct {
	// DataDir holds people.csv, movies.csv and stars.csv.
	DataDir string `yaml:"data_dir" validate:"required"`

	// Strategy is the default search strategy.
	Strategy string `yaml:"strategy" validate:"strategy"`

	// Metrics prints the search counters after each result.
	Metrics bool `yaml:"metrics"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig selects log verbosity and format.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

// ServerConfig configures `degrees serve`.
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
}

// BatchConfig bounds concurrent searches.
type BatchConfig struct {
	Parallelism int `yaml:"parallelism" validate:"gte=1,lte=256"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		DataDir:  "large",
		Strategy: "bidirectional",
		Log:      LogConfig{Level: "warn"},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Batch: BatchConfig{Parallelism: 4},
	}
}

// Load returns Default() overlaid with the YAML file at path (if path is
// not empty) and then with the process environment. Strategy aliases are
// canonicalized. The result is not validated: callers apply their flags
// first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg, os.Getenv)

	return cfg, nil
}

// decode rejects unknown keys so typos surface instead of silently keeping
// defaults. An empty document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.Strategy = canonicalStrategy(cfg.Strategy)

	return nil
}

// ApplyEnv overlays environment variables read through getenv.
// METRICS=1 enables metrics, any other non-empty value disables them.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvData); v != "" {
		cfg.DataDir = v
	}
	if v := getenv(EnvStrategy); v != "" {
		cfg.Strategy = canonicalStrategy(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := getenv(EnvMetrics); v != "" {
		on, err := strconv.ParseBool(v)
		cfg.Metrics = err == nil && on
	}
}

// Validate checks struct tags and wraps failures in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
