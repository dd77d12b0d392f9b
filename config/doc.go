// Package config loads the settings of a mapping run.
//
// Precedence, lowest first: Default() → YAML file → QMAP_* environment
// variables. The merged result is validated with struct tags
// (go-playground/validator) plus a cross-field rule for grid topologies.
//
// Example file:
//
//	topology:
//	  kind: star
//	  qubits: 5
//	  center: 2
//	search:
//	  iterations: 50
//	  seed: 7
//	  workers: 4
//	  strategy: auto
//	verify:
//	  enabled: true
//	  tolerance: 1.0e-6
//	  max_qubits: 10
//	log:
//	  level: info
//
// Environment overrides: QMAP_TOPOLOGY, QMAP_QUBITS, QMAP_CENTER, QMAP_ROWS,
// QMAP_COLS, QMAP_ITERATIONS, QMAP_SEED, QMAP_WORKERS, QMAP_STRATEGY,
// QMAP_VERIFY, QMAP_TOLERANCE, QMAP_MAX_QUBITS, QMAP_LOG_LEVEL.
package config
