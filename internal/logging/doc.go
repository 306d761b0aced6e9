// Package logging assembles the structured slog loggers used across devset
// commands.
//
// It centralizes level and output plumbing for the console and JSON handlers
// and provides a no-op logger for tests and wiring code that cannot fail.
// Prefer these constructors over hand-rolled slog setup so every component
// emits log lines with the same shape.
package logging
