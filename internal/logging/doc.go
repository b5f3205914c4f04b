// Package logging assembles structured slog loggers and formatting helpers used
// across wordoverlap commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and tags every record of one CLI invocation with a session ID so
// log lines can be matched to history entries. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs go to stderr (and optionally a log file) so command results written to
// stdout stay machine-readable.
package logging
