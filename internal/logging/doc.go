// Package logging assembles structured slog loggers and formatting helpers used
// across eplotdb.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code can tag every line of
// a rebuild with its run identifier. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
package logging
