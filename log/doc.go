// Package log provides leveled, structured logging built on log/slog.
//
// It adds a trace level below debug, selectable text and JSON output, an
// optional colorized text handler, and a package-level default logger that
// writes to stderr. Loggers are immutable values: configuration changes via
// [Logger.Wrap] and attribute binding via [Logger.With] both return new
// loggers.
package log
