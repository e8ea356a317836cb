package lang

import (
	"strconv"
	"time"
)

// ValueKind discriminates the two value variants.
//
// Every evaluated sub-expression reduces to exactly one of these; a bare
// number never survives evaluation on its own.
type ValueKind int

const (
	// Instant is an absolute point in time, stored as whole seconds since
	// the Unix epoch, normalized to UTC.
	Instant ValueKind = iota
	// Duration is a signed elapsed-time offset in seconds, with no calendar
	// (month/year) semantics.
	Duration
)

func (k ValueKind) String() string {
	switch k {
	case Instant:
		return "instant"
	case Duration:
		return "duration"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating an expression or any of its subtrees:
// either an instant or a duration, both with one-second resolution.
type Value struct {
	Kind ValueKind
	sec  int64
}

// InstantOf returns an instant Value for the given time, truncated to whole
// seconds.
func InstantOf(t time.Time) Value {
	return Value{Kind: Instant, sec: t.Unix()}
}

// DurationOf returns a duration Value holding the given number of seconds.
func DurationOf(seconds int64) Value {
	return Value{Kind: Duration, sec: seconds}
}

func instantAt(seconds int64) Value {
	return Value{Kind: Instant, sec: seconds}
}

// Seconds returns the underlying second count: seconds since the Unix epoch
// for an instant, or the signed offset for a duration.
func (v Value) Seconds() int64 { return v.sec }

// Time returns the instant as a UTC time.Time. It is only meaningful when
// Kind is Instant.
func (v Value) Time() time.Time { return time.Unix(v.sec, 0).UTC() }

// String renders the value for debugging and test failure messages.
func (v Value) String() string {
	if v.Kind == Instant {
		return "instant(" + v.Time().Format(time.RFC3339) + ")"
	}

	return "duration(" + strconv.FormatInt(v.sec, 10) + "s)"
}
