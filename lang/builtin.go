package lang

import (
	"maps"
	"slices"
	"time"

	"github.com/sahilm/fuzzy"
)

// builtins maps function names to their implementations. Every builtin
// takes a single evaluated argument and the byte offset of the call site
// for error reporting.
var builtins = map[string]func(arg Value, pos int) (Value, error){
	"full_day":  fullDay,
	"full_hour": fullHour,
}

// BuiltinNames returns the sorted names of all builtin functions.
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// suggestBuiltin returns the builtin name closest to the given misspelling,
// or the empty string when nothing matches.
func suggestBuiltin(name string) string {
	matches := fuzzy.Find(name, BuiltinNames())
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// fullDay truncates an instant to 00:00:00 UTC of its UTC calendar date.
func fullDay(arg Value, pos int) (Value, error) {
	if arg.Kind != Instant {
		return Value{}, &TypeError{Func: "full_day", Arg: arg.Kind, Pos: pos}
	}

	t := arg.Time()

	return InstantOf(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}

// fullHour truncates an instant to the start of its UTC hour.
func fullHour(arg Value, pos int) (Value, error) {
	if arg.Kind != Instant {
		return Value{}, &TypeError{Func: "full_hour", Arg: arg.Kind, Pos: pos}
	}

	t := arg.Time()

	return InstantOf(time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)), nil
}
