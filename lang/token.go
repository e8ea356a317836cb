package lang

import "fmt"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenPlus
	TokenMinus
	TokenLParen
	TokenRParen
	TokenIdent
	TokenNow
	TokenDateTime  // ISO-8601 datetime literal, raw text
	TokenTimestamp // decimal Unix timestamp literal, raw text
	TokenDuration  // integer magnitude with a d/h/m/s unit suffix, raw text
)

// String returns the kind as it should appear in error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenIdent:
		return "identifier"
	case TokenNow:
		return "'now'"
	case TokenDateTime:
		return "datetime literal"
	case TokenTimestamp:
		return "timestamp literal"
	case TokenDuration:
		return "duration literal"
	default:
		return "unknown token"
	}
}

// Token is a single lexical unit together with its byte offset in the input.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     int // byte offset in the input
}

func (t Token) String() string {
	if t.Literal == "" {
		return t.Kind.String()
	}

	return fmt.Sprintf("%s %q", t.Kind, t.Literal)
}
