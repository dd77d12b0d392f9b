// SPDX-License-Identifier: MIT
// Package: qmap/builder
//
// config.go : internal configuration for circuit fixtures.
//
// Deterministic defaults:
//   • rng            = nil  (RandomCircuit requires WithSeed/WithRand)
//   • singleGates    = H, X, Z, S, T
//   • twoQubitGate   = CNOT
//   • twoQubitRatio  = 0.5

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qmap/core"
)

// BuilderOption mutates the fixture configuration before use.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng           *rand.Rand
	singleGates   []string
	twoQubitGate  string
	twoQubitRatio float64
	err           error
}

const defaultTwoQubitRatio = 0.5

var defaultSingleGates = []string{core.GateH, core.GateX, core.GateZ, core.GateS, core.GateT}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		singleGates:   defaultSingleGates,
		twoQubitGate:  core.GateCNOT,
		twoQubitRatio: defaultTwoQubitRatio,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so fixtures are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSingleQubitGates replaces the pool of single-qubit gate names.
// An empty pool is recorded as ErrOptionViolation.
func WithSingleQubitGates(names ...string) BuilderOption {
	return func(c *builderConfig) {
		if len(names) == 0 {
			c.err = fmt.Errorf("WithSingleQubitGates: empty pool: %w", ErrOptionViolation)
			return
		}
		c.singleGates = append([]string(nil), names...)
	}
}

// WithTwoQubitGate sets the two-qubit gate used by RandomCircuit (default CNOT).
func WithTwoQubitGate(name string) BuilderOption {
	return func(c *builderConfig) {
		if name == "" {
			c.err = fmt.Errorf("WithTwoQubitGate: empty name: %w", ErrOptionViolation)
			return
		}
		c.twoQubitGate = name
	}
}

// WithTwoQubitRatio sets the probability that a drawn operation is two-qubit.
// Values outside [0,1] are recorded as ErrOptionViolation.
func WithTwoQubitRatio(p float64) BuilderOption {
	return func(c *builderConfig) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("WithTwoQubitRatio(%g): %w", p, ErrOptionViolation)
			return
		}
		c.twoQubitRatio = p
	}
}
