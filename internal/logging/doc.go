// Package logging assembles structured slog loggers and formatting helpers used
// across marquee.
//
// It owns the console/JSON handlers, routes output to stderr and an optional
// rotating log file, tags every record with the invocation's session ID, and
// exposes typed attribute helpers plus a no-op logger for tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
