// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config types, defaults, loading and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrParse wraps YAML decoding failures and malformed environment values.
	ErrParse = errors.New("config: cannot parse configuration")
)

// Topology kinds.
const (
	KindStar     = "star"
	KindLine     = "line"
	KindRing     = "ring"
	KindGrid     = "grid"
	KindComplete = "complete"
)

// Strategy names.
const (
	StrategyAuto = "auto"
	StrategyStar = "star"
	StrategyPath = "path"
)

// Config is the full run configuration.
//
// Thread Safety: safe to read concurrently; not safe to modify after loading.
type Config struct {
	Topology TopologyConfig `yaml:"topology"`
	Search   SearchConfig   `yaml:"search"`
	Verify   VerifyConfig   `yaml:"verify"`
	Log      LogConfig      `yaml:"log"`
}

// TopologyConfig describes the physical connectivity graph.
type TopologyConfig struct {
	Kind   string `yaml:"kind" validate:"oneof=star line ring grid complete"`
	Qubits int    `yaml:"qubits" validate:"gte=2,lte=64"`
	Center int    `yaml:"center" validate:"gte=0,ltfield=Qubits"`
	Rows   int    `yaml:"rows" validate:"gte=0"`
	Cols   int    `yaml:"cols" validate:"gte=0"`
}

// SearchConfig controls the multi-trial mapping search.
type SearchConfig struct {
	Iterations int    `yaml:"iterations" validate:"gte=1,lte=100000"`
	Seed       int64  `yaml:"seed"`
	Workers    int    `yaml:"workers" validate:"gte=1,lte=256"`
	Strategy   string `yaml:"strategy" validate:"oneof=auto star path"`
}

// VerifyConfig controls the equivalence check.
type VerifyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Tolerance float64 `yaml:"tolerance" validate:"gte=0,lt=1"`
	MaxQubits int     `yaml:"max_qubits" validate:"gte=1,lte=20"`
}

// LogConfig sets the minimum log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns a 5-qubit star centered on qubit 0, 20 sequential search
// trials and verification enabled.
func Default() Config {
	return Config{
		Topology: TopologyConfig{Kind: KindStar, Qubits: 5, Center: 0},
		Search:   SearchConfig{Iterations: 20, Seed: 1, Workers: 1, Strategy: StrategyAuto},
		Verify:   VerifyConfig{Enabled: true, Tolerance: 1e-6, MaxQubits: 10},
		Log:      LogConfig{Level: "info"},
	}
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(topologyStructLevel, TopologyConfig{})
}

// topologyStructLevel enforces rows·cols == qubits for grids.
func topologyStructLevel(sl validator.StructLevel) {
	t := sl.Current().Interface().(TopologyConfig)
	if t.Kind == KindGrid && t.Rows*t.Cols != t.Qubits {
		sl.ReportError(t.Rows, "Rows", "rows", "gridshape", "")
	}
}

// Validate checks every field.
//
// Errors: ErrInvalidConfig wrapping the validator's field report.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
//
// Errors: ErrParse, ErrInvalidConfig.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and QMAP_* environment variables, then validates.
//
// Errors: file read errors, ErrParse, ErrInvalidConfig.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(data, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: yaml: %v", ErrParse, err)
	}
	return nil
}

// applyEnv overrides fields from QMAP_* variables. Unlike silent fallbacks,
// a malformed number is an error.
func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := os.Getenv(key)
		if v == "" {
			return nil
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrParse, key, v)
		}
		*dst = i
		return nil
	}

	str("QMAP_TOPOLOGY", &cfg.Topology.Kind)
	str("QMAP_STRATEGY", &cfg.Search.Strategy)
	str("QMAP_LOG_LEVEL", &cfg.Log.Level)

	ints := []struct {
		key string
		dst *int
	}{
		{"QMAP_QUBITS", &cfg.Topology.Qubits},
		{"QMAP_CENTER", &cfg.Topology.Center},
		{"QMAP_ROWS", &cfg.Topology.Rows},
		{"QMAP_COLS", &cfg.Topology.Cols},
		{"QMAP_ITERATIONS", &cfg.Search.Iterations},
		{"QMAP_WORKERS", &cfg.Search.Workers},
		{"QMAP_MAX_QUBITS", &cfg.Verify.MaxQubits},
	}
	for _, it := range ints {
		if err := num(it.key, it.dst); err != nil {
			return err
		}
	}

	if v := os.Getenv("QMAP_SEED"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: QMAP_SEED=%q", ErrParse, v)
		}
		cfg.Search.Seed = s
	}
	if v := os.Getenv("QMAP_TOLERANCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: QMAP_TOLERANCE=%q", ErrParse, v)
		}
		cfg.Verify.Tolerance = f
	}
	if v := os.Getenv("QMAP_VERIFY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: QMAP_VERIFY=%q", ErrParse, v)
		}
		cfg.Verify.Enabled = b
	}
	return nil
}
