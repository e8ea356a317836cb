// Package lang implements the tcalc expression language: a small grammar
// over absolute points in time and relative durations.
//
// An expression mixes ISO-8601 datetimes, decimal Unix timestamps, the
// keyword now, and duration literals (1d, 2h, 30s), combined with the binary
// operators + and -, parentheses, and the builtin truncation functions
// full_day and full_hour:
//
//	now + 1d - 2m - 1s
//	now - (1d + 2m)
//	full_day(now) + (2000-01-01T00:00:00Z - 1234567890.000) + 1d - 2h - 3s
//
// The pipeline is conventional: [Lex] produces a flat token sequence,
// [Parse] builds an abstract syntax tree by recursive descent, and
// [Evaluate] reduces the tree to a single [Value] holding either an instant
// or a duration, enforcing which operand kinds are legal under each
// operator. Evaluation is a pure function of the tree and the supplied
// current time; the package performs no I/O and keeps no state between
// calls.
//
// Errors are typed by phase: [LexError], [SyntaxError] and
// [UnknownFunctionError], and [TypeError]. Each carries the byte offset of
// the offending input so callers can point at the failure.
package lang
