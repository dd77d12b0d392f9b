// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Turn a validated Config into library values.

package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/routing"
	"github.com/katalvlaran/qmap/verify"
)

// Connectivity builds the configured topology.
//
// Errors: builder errors (e.g. builder.ErrTooFewQubits for a 1-qubit star).
func (c Config) Connectivity() (*core.Connectivity, error) {
	t := c.Topology
	var cons builder.Constructor
	switch t.Kind {
	case KindStar:
		cons = builder.Star(t.Center)
	case KindLine:
		cons = builder.Line()
	case KindRing:
		cons = builder.Ring()
	case KindGrid:
		cons = builder.Grid(t.Rows, t.Cols)
	case KindComplete:
		cons = builder.Complete()
	default:
		return nil, fmt.Errorf("Config.Connectivity: kind %q: %w", t.Kind, ErrInvalidConfig)
	}
	return builder.BuildTopology(t.Qubits, cons)
}

// Strategy returns the configured swap strategy; nil selects automatically.
func (c Config) Strategy() routing.Strategy {
	switch c.Search.Strategy {
	case StrategyStar:
		return routing.StarStrategy{}
	case StrategyPath:
		return routing.PathStrategy{}
	default:
		return nil
	}
}

// SearchOptions returns the routing options for this configuration.
func (c Config) SearchOptions(logger *slog.Logger) []routing.Option {
	return []routing.Option{
		routing.WithStrategy(c.Strategy()),
		routing.WithSeed(c.Search.Seed),
		routing.WithWorkers(c.Search.Workers),
		routing.WithLogger(logger),
	}
}

// VerifyOptions returns the equivalence-check options.
func (c Config) VerifyOptions() []verify.Option {
	return []verify.Option{verify.WithMaxQubits(c.Verify.MaxQubits)}
}

// LogLevel maps Log.Level onto slog; unknown values read as info.
func (c Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel()}))
}
