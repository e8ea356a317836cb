package lang

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Parser holds the cursor state over a token sequence. The grammar has
// bounded lookahead (one token) at every decision point, so the parser is a
// plain set of mutually recursive functions over that cursor:
//
//	expr         := term (('+'|'-') term)*
//	term         := literal | 'now' | '(' expr ')' | functionCall
//	functionCall := identifier '(' expr ')'
//
// Binary '+' and '-' are left-associative on a single precedence level.
type Parser struct {
	tokens []Token
	pos    int
}

// ParseString lexes and parses an expression in one step.
func ParseString(input string) (Node, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse parses a token sequence into an AST. It fails with a *SyntaxError
// on empty input, an unexpected token, unbalanced parentheses, or trailing
// tokens after a complete expression, and with an *UnknownFunctionError for
// an unrecognized call target.
func Parse(tokens []Token) (Node, error) {
	p := &Parser{tokens: tokens}

	if p.peek().Kind == TokenEOF {
		return nil, &SyntaxError{Expected: "an expression", Found: p.peek()}
	}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, &SyntaxError{Expected: "'+', '-', or end of input", Found: tok}
	}

	return node, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}

	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return t
}

// parseExpr: term ( ("+" | "-") term )*
func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == TokenPlus || p.peek().Kind == TokenMinus {
		op := p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op.Kind, Left: left, Right: right, Pos: op.Pos}
	}

	return left, nil
}

// parseTerm: literal | "now" | "(" expr ")" | functionCall
func (p *Parser) parseTerm() (Node, error) {
	tok := p.peek()

	switch tok.Kind {
	case TokenDateTime:
		p.advance()

		return datetimeLiteral(tok)

	case TokenTimestamp:
		p.advance()

		return timestampLiteral(tok)

	case TokenDuration:
		p.advance()

		return durationLiteral(tok)

	case TokenNow:
		p.advance()

		return &NowExpr{Pos: tok.Pos}, nil

	case TokenLParen:
		p.advance()

		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.peek().Kind != TokenRParen {
			return nil, &SyntaxError{Expected: "')'", Found: p.peek()}
		}

		p.advance()

		return expr, nil

	case TokenIdent:
		return p.parseFuncCall()

	default:
		return nil, &SyntaxError{
			Expected: "a literal, 'now', a function call, or '('",
			Found:    tok,
		}
	}
}

// parseFuncCall: identifier "(" expr ")"
func (p *Parser) parseFuncCall() (Node, error) {
	name := p.advance()

	if _, ok := builtins[name.Literal]; !ok {
		return nil, &UnknownFunctionError{
			Name:       name.Literal,
			Pos:        name.Pos,
			Suggestion: suggestBuiltin(name.Literal),
		}
	}

	if p.peek().Kind != TokenLParen {
		return nil, &SyntaxError{
			Expected: "'(' after function name " + strconv.Quote(name.Literal),
			Found:    p.peek(),
		}
	}

	p.advance()

	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != TokenRParen {
		return nil, &SyntaxError{Expected: "')'", Found: p.peek()}
	}

	p.advance()

	return &FuncCall{Name: name.Literal, Arg: arg, Pos: name.Pos}, nil
}

// datetimeLiteral converts a datetime token into a Literal node. The lexer
// has already validated the literal, so a conversion failure here indicates
// a lexer bug and is still reported rather than swallowed.
func datetimeLiteral(tok Token) (Node, error) {
	t, err := time.Parse(time.RFC3339, tok.Literal)
	if err != nil {
		return nil, lexErrorf(tok.Pos, "invalid datetime literal %q", tok.Literal)
	}

	return &Literal{Val: InstantOf(t), Pos: tok.Pos}, nil
}

// timestampLiteral converts a decimal Unix timestamp token into a Literal
// node. The fractional part, if any, is discarded: the value model has
// one-second resolution.
func timestampLiteral(tok Token) (Node, error) {
	whole, _, _ := strings.Cut(tok.Literal, ".")

	sec, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return nil, lexErrorf(tok.Pos, "invalid timestamp literal %q", tok.Literal)
	}

	return &Literal{Val: instantAt(sec), Pos: tok.Pos}, nil
}

// Seconds per duration unit letter.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// durationLiteral converts a magnitude+unit token like "42d" into a Literal
// node holding the equivalent number of seconds.
func durationLiteral(tok Token) (Node, error) {
	lit := tok.Literal
	unit := lit[len(lit)-1]

	mag, err := strconv.ParseInt(lit[:len(lit)-1], 10, 64)
	if err != nil {
		return nil, lexErrorf(tok.Pos, "invalid duration literal %q", lit)
	}

	var scale int64

	switch unit {
	case 'd':
		scale = secondsPerDay
	case 'h':
		scale = secondsPerHour
	case 'm':
		scale = secondsPerMinute
	case 's':
		scale = 1
	default:
		return nil, lexErrorf(tok.Pos, "invalid duration unit %q", string(unit))
	}

	// mag * scale must not wrap around int64.
	if mag > math.MaxInt64/scale {
		return nil, lexErrorf(tok.Pos, "invalid duration literal %q", lit)
	}

	return &Literal{Val: DurationOf(mag * scale), Pos: tok.Pos}, nil
}
