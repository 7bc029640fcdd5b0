// Package logging assembles the structured slog loggers used by the Loom
// CLI.
//
// It owns level and format plumbing for the text and JSON handlers and
// exposes a no-op logger for tests and wiring code that cannot fail. Prefer
// these constructors over hand-rolled slog setup so every command emits log
// lines with the same shape.
package logging
