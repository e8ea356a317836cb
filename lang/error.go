package lang

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// LexError reports input that matches no token grammar: an unrecognized
// character or a malformed literal.
type LexError struct {
	Pos int
	Msg string
}

func lexErrorf(pos int, format string, args ...any) *LexError {
	return &LexError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Pos, e.Msg)
}

// LogValue implements slog.LogValuer for structured logging.
func (e *LexError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Msg),
		slog.Int("offset", e.Pos),
	)
}

// SyntaxError reports a grammar violation: an unexpected token, unbalanced
// parentheses, trailing tokens after a complete expression, or empty input.
type SyntaxError struct {
	Expected string
	Found    Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf(
		"syntax error at offset %d: expected %s, found %s",
		e.Found.Pos, e.Expected, e.Found,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (e *SyntaxError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("expected", e.Expected),
		slog.String("found", e.Found.String()),
		slog.Int("offset", e.Found.Pos),
	)
}

// UnknownFunctionError reports an identifier used as a call target that is
// not a recognized builtin. Suggestion, when non-empty, is the closest
// builtin name by fuzzy match.
type UnknownFunctionError struct {
	Name       string
	Pos        int
	Suggestion string
}

func (e *UnknownFunctionError) Error() string {
	msg := fmt.Sprintf("unknown function %q at offset %d", e.Name, e.Pos)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

// LogValue implements slog.LogValuer for structured logging.
func (e *UnknownFunctionError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("function", e.Name),
		slog.Int("offset", e.Pos),
	}
	if e.Suggestion != "" {
		attrs = append(attrs, slog.String("suggestion", e.Suggestion))
	}

	return slog.GroupValue(attrs...)
}

// TypeError reports an operand-kind combination that no operator or builtin
// accepts. Func is empty for operator errors; for function errors Op, Left,
// and Right are unset and Arg holds the offending argument kind.
type TypeError struct {
	Op    TokenKind
	Left  ValueKind
	Right ValueKind

	Func string
	Arg  ValueKind

	Pos int
}

func (e *TypeError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf(
			"type error at offset %d: %s requires an instant argument, got %s",
			e.Pos, e.Func, e.Arg,
		)
	}

	return fmt.Sprintf(
		"type error at offset %d: cannot apply %s to %s and %s",
		e.Pos, e.Op, e.Left, e.Right,
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (e *TypeError) LogValue() slog.Value {
	if e.Func != "" {
		return slog.GroupValue(
			slog.String("function", e.Func),
			slog.String("argument", e.Arg.String()),
			slog.Int("offset", e.Pos),
		)
	}

	return slog.GroupValue(
		slog.String("operator", e.Op.String()),
		slog.String("left", e.Left.String()),
		slog.String("right", e.Right.String()),
		slog.Int("offset", e.Pos),
	)
}

// ErrorOffset returns the byte offset carried by a lang error, if any.
func ErrorOffset(err error) (int, bool) {
	switch e := err.(type) {
	case *LexError:
		return e.Pos, true
	case *SyntaxError:
		return e.Found.Pos, true
	case *UnknownFunctionError:
		return e.Pos, true
	case *TypeError:
		return e.Pos, true
	default:
		return 0, false
	}
}

// Snippet renders the input with a caret marking the offset carried by err,
// for single actionable messages at the command boundary:
//
//	now + )
//	      ^
//
// It returns the empty string when err carries no offset.
func Snippet(input string, err error) string {
	offset, ok := ErrorOffset(err)
	if !ok {
		return ""
	}

	if offset > len(input) {
		offset = len(input)
	}

	// The caret column is counted in runes so multi-byte characters before
	// the offset do not push it out of alignment.
	column := utf8.RuneCountInString(input[:offset])

	var buf strings.Builder

	buf.WriteString(input)
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", column))
	buf.WriteByte('^')

	return buf.String()
}
