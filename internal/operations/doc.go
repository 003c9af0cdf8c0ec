// Package operations composes discovery, scanning, aggregation and rewriting
// into the runs the CLI exposes: centralizing package versions for a whole
// solution tree and scaffolding the solution-level files.
package operations
