package lang

import (
	"errors"
	"testing"
)

func TestParseString_Structure(t *testing.T) {
	t.Parallel()

	node, err := ParseString("now + 1d")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	bin, ok := node.(*BinaryExpr)
	if !ok {
		t.Fatalf("expected *BinaryExpr, got %T", node)
	}

	if bin.Op != TokenPlus {
		t.Errorf("expected %s, got %s", TokenPlus, bin.Op)
	}

	if _, ok := bin.Left.(*NowExpr); !ok {
		t.Errorf("expected *NowExpr left operand, got %T", bin.Left)
	}

	lit, ok := bin.Right.(*Literal)
	if !ok {
		t.Fatalf("expected *Literal right operand, got %T", bin.Right)
	}

	if lit.Val.Kind != Duration || lit.Val.Seconds() != secondsPerDay {
		t.Errorf("expected 1d duration literal, got %s", lit.Val)
	}
}

func TestParseString_LeftAssociative(t *testing.T) {
	t.Parallel()

	// 1d + 2h - 3m must parse as (1d + 2h) - 3m.
	node, err := ParseString("1d + 2h - 3m")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	outer, ok := node.(*BinaryExpr)
	if !ok || outer.Op != TokenMinus {
		t.Fatalf("expected '-' at root, got %T", node)
	}

	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Op != TokenPlus {
		t.Fatalf("expected '+' as left subtree, got %T", outer.Left)
	}
}

func TestParseString_GroupingOverridesAssociativity(t *testing.T) {
	t.Parallel()

	node, err := ParseString("1d - (2h + 3m)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	outer, ok := node.(*BinaryExpr)
	if !ok || outer.Op != TokenMinus {
		t.Fatalf("expected '-' at root, got %T", node)
	}

	right, ok := outer.Right.(*BinaryExpr)
	if !ok || right.Op != TokenPlus {
		t.Fatalf("expected grouped '+' as right subtree, got %T", outer.Right)
	}
}

func TestParseString_Literals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  ValueKind
		sec   int64
	}{
		{
			name:  "datetime literal",
			input: "2009-02-13T23:31:30Z",
			kind:  Instant,
			sec:   1234567890,
		},
		{
			name:  "datetime with offset",
			input: "2009-02-14T01:31:30+02:00",
			kind:  Instant,
			sec:   1234567890,
		},
		{
			name:  "timestamp literal",
			input: "1234567890",
			kind:  Instant,
			sec:   1234567890,
		},
		{
			name:  "fractional timestamp truncates",
			input: "1234567890.999",
			kind:  Instant,
			sec:   1234567890,
		},
		{
			name:  "days",
			input: "2d",
			kind:  Duration,
			sec:   2 * secondsPerDay,
		},
		{
			name:  "hours",
			input: "3h",
			kind:  Duration,
			sec:   3 * secondsPerHour,
		},
		{
			name:  "minutes",
			input: "90m",
			kind:  Duration,
			sec:   90 * secondsPerMinute,
		},
		{
			name:  "seconds",
			input: "42s",
			kind:  Duration,
			sec:   42,
		},
		{
			name:  "zero duration",
			input: "0s",
			kind:  Duration,
			sec:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			lit, ok := node.(*Literal)
			if !ok {
				t.Fatalf("expected *Literal, got %T", node)
			}

			if lit.Val.Kind != tt.kind || lit.Val.Seconds() != tt.sec {
				t.Errorf("expected %s of %d seconds, got %s", tt.kind, tt.sec, lit.Val)
			}
		})
	}
}

func TestParseString_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   ",
		},
		{
			name:  "trailing term",
			input: "1d 2m",
		},
		{
			name:  "unbalanced open paren",
			input: "(now + 1d",
		},
		{
			name:  "unbalanced close paren",
			input: "now + 1d)",
		},
		{
			name:  "operator without operand",
			input: "now +",
		},
		{
			name:  "leading operator",
			input: "+ now",
		},
		{
			name:  "empty parens",
			input: "()",
		},
		{
			name:  "function without parens",
			input: "full_day now",
		},
		{
			name:  "function missing close paren",
			input: "full_day(now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("expected syntax error for %q", tt.input)
			}

			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseString_DurationOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "days overflow",
			input:   "106751991167301d",
			wantErr: true,
		},
		{
			name:    "seconds overflow",
			input:   "9223372036854775808s",
			wantErr: true,
		},
		{
			name:  "largest valid seconds",
			input: "9223372036854775807s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			node, err := ParseString(tt.input)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if got := node.(*Literal).Val.Seconds(); got != 9223372036854775807 {
					t.Errorf("expected max seconds, got %d", got)
				}

				return
			}

			if err == nil {
				t.Fatal("expected error")
			}

			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *LexError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseString_UnknownFunction(t *testing.T) {
	t.Parallel()

	_, err := ParseString("fullday(now)")
	if err == nil {
		t.Fatal("expected unknown function error")
	}

	var unkErr *UnknownFunctionError
	if !errors.As(err, &unkErr) {
		t.Fatalf("expected *UnknownFunctionError, got %T: %v", err, err)
	}

	if unkErr.Name != "fullday" {
		t.Errorf("expected name 'fullday', got %q", unkErr.Name)
	}

	if unkErr.Suggestion != "full_day" {
		t.Errorf("expected suggestion 'full_day', got %q", unkErr.Suggestion)
	}
}

func TestParseString_NestedCalls(t *testing.T) {
	t.Parallel()

	node, err := ParseString("full_hour(full_day(now) + 1h)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	call, ok := node.(*FuncCall)
	if !ok || call.Name != "full_hour" {
		t.Fatalf("expected full_hour call at root, got %T", node)
	}

	if _, ok := call.Arg.(*BinaryExpr); !ok {
		t.Errorf("expected binary argument, got %T", call.Arg)
	}
}

func TestErrorOffset(t *testing.T) {
	t.Parallel()

	_, err := ParseString("now + bogus(1d)")
	if err == nil {
		t.Fatal("expected error")
	}

	offset, ok := ErrorOffset(err)
	if !ok {
		t.Fatalf("expected an offset from %v", err)
	}

	if offset != 6 {
		t.Errorf("expected offset 6, got %d", offset)
	}
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	input := "now + )"

	_, err := ParseString(input)
	if err == nil {
		t.Fatal("expected error")
	}

	want := "now + )\n      ^"
	if got := Snippet(input, err); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSnippet_MultibyteInput(t *testing.T) {
	t.Parallel()

	// "héllo" is 6 bytes but 5 runes; the caret lands under the paren only
	// when the column is counted in runes.
	input := "héllo + )"
	err := &SyntaxError{
		Expected: "')'",
		Found:    Token{Kind: TokenRParen, Literal: ")", Pos: 9},
	}

	want := "héllo + )\n        ^"
	if got := Snippet(input, err); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
