// Package sliders defines the canonical slider schema and the numeric
// transforms built on top of it.
//
// The Registry is the single source of truth for which raw catalog keys map
// to which canonical slider and for each slider's valid domain. It is
// constructed once at startup from the static definition table in
// definitions.go, validated for alias disjointness, and never mutated
// afterwards, so concurrent readers need no locking.
//
// Normalize and Denormalize convert raw slider values to bounded [-1, 1]
// training targets and back. Denormalize snaps to the slider's step grid, so
// values already on the grid round-trip exactly while off-grid values land on
// the nearest grid point.
package sliders
