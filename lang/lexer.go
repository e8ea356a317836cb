package lang

import (
	"time"
	"unicode/utf8"
)

// Lex tokenizes an expression into a flat token sequence ending with a
// TokenEOF entry. It fails with a *LexError when a character sequence
// matches no token grammar or when a datetime literal is not well-formed.
func Lex(input string) ([]Token, error) {
	var tokens []Token

	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++

			continue
		}

		switch {
		case ch == '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Literal: "+", Pos: i})
			i++

		case ch == '-':
			tokens = append(tokens, Token{Kind: TokenMinus, Literal: "-", Pos: i})
			i++

		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Literal: "(", Pos: i})
			i++

		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Literal: ")", Pos: i})
			i++

		case isDigit(ch):
			tok, next, err := lexNumber(input, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
			i = next

		case isWordStart(ch):
			start := i
			for i < len(input) && isWordContinue(input[i]) {
				i++
			}

			word := input[start:i]

			kind := TokenIdent
			if word == keywordNow {
				kind = TokenNow
			}

			tokens = append(tokens, Token{Kind: kind, Literal: word, Pos: start})

		default:
			r, _ := utf8.DecodeRuneInString(input[i:])

			return nil, lexErrorf(i, "unrecognized character %q", r)
		}
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Pos: len(input)})

	return tokens, nil
}

// keywordNow is matched case-sensitively; "Now" or "NOW" lex as identifiers.
const keywordNow = "now"

// lexNumber scans a token beginning with a digit and classifies it:
//
//   - digits immediately followed by a d/h/m/s unit letter are a duration
//     magnitude;
//   - exactly four digits immediately followed by "-<digit>" must complete
//     a full ISO-8601 datetime literal, or lexing fails (so a bare calendar
//     date like 2024-01-01 is rejected rather than misparsed as timestamp
//     arithmetic);
//   - any other digit run, with an optional fractional part, is a decimal
//     Unix timestamp literal.
func lexNumber(input string, start int) (Token, int, error) {
	i := start
	for i < len(input) && isDigit(input[i]) {
		i++
	}

	if i < len(input) && isUnitLetter(input[i]) {
		i++

		return Token{Kind: TokenDuration, Literal: input[start:i], Pos: start}, i, nil
	}

	if i-start == 4 && i+1 < len(input) && input[i] == '-' && isDigit(input[i+1]) {
		return lexDateTime(input, start)
	}

	// Optional fractional part of a timestamp literal.
	if i < len(input) && input[i] == '.' {
		i++
		if i >= len(input) || !isDigit(input[i]) {
			return Token{}, 0, lexErrorf(start, "malformed numeric literal %q", input[start:i])
		}

		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}

	return Token{Kind: TokenTimestamp, Literal: input[start:i], Pos: start}, i, nil
}

// lexDateTime scans a complete datetime literal of the form
// YYYY-MM-DDTHH:MM:SS with an optional fractional second part and a
// mandatory Z or ±HH:MM offset. The leading YYYY- has already been sighted
// by the caller.
func lexDateTime(input string, start int) (Token, int, error) {
	i := start

	fail := func() (Token, int, error) {
		return Token{}, 0, lexErrorf(start, "malformed datetime literal %q", input[start:i])
	}

	digits := func(n int) bool {
		if i+n > len(input) {
			return false
		}
		for k := range n {
			if !isDigit(input[i+k]) {
				return false
			}
		}
		i += n

		return true
	}

	lit := func(c byte) bool {
		if i < len(input) && input[i] == c {
			i++

			return true
		}

		return false
	}

	// Date and time components.
	if !digits(4) || !lit('-') || !digits(2) || !lit('-') || !digits(2) ||
		!lit('T') || !digits(2) || !lit(':') || !digits(2) || !lit(':') || !digits(2) {
		return fail()
	}

	// Optional fractional seconds.
	if lit('.') {
		if !digits(1) {
			return fail()
		}

		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}

	// UTC offset: Z or ±HH:MM.
	if !lit('Z') {
		if (!lit('+') && !lit('-')) || !digits(2) || !lit(':') || !digits(2) {
			return fail()
		}
	}

	raw := input[start:i]

	// The shape is right; reject out-of-range components (month 13, hour 25)
	// here so the parser never sees an unconvertible literal.
	if _, err := time.Parse(time.RFC3339, raw); err != nil {
		return Token{}, 0, lexErrorf(start, "invalid datetime literal %q", raw)
	}

	return Token{Kind: TokenDateTime, Literal: raw, Pos: start}, i, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isUnitLetter(ch byte) bool {
	return ch == 'd' || ch == 'h' || ch == 'm' || ch == 's'
}

func isWordStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isWordContinue(ch byte) bool {
	return isWordStart(ch) || isDigit(ch)
}
