package lang

import (
	"fmt"
	"time"
)

// Evaluate reduces an expression tree to a single Value by post-order
// traversal, applying the type rules below at every operator and builtin.
//
// The now argument is captured once, truncated to whole seconds, so every
// occurrence of now in the expression denotes the same instant and
// evaluation is deterministic given a fixed now. The function performs no
// I/O and touches no shared state.
//
// Type rules for '+' and '-':
//
//	duration + duration = duration
//	duration - duration = duration
//	instant  + duration = instant
//	instant  - duration = instant
//	duration + instant  = instant
//	instant  - instant  = duration
//	instant  + instant    illegal
//	duration - instant    illegal
//
// Violations are reported as *TypeError.
func Evaluate(root Node, now time.Time) (Value, error) {
	return eval(root, InstantOf(now))
}

func eval(node Node, now Value) (Value, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Val, nil

	case *NowExpr:
		return now, nil

	case *BinaryExpr:
		left, err := eval(n.Left, now)
		if err != nil {
			return Value{}, err
		}

		right, err := eval(n.Right, now)
		if err != nil {
			return Value{}, err
		}

		return applyBinary(n.Op, left, right, n.Pos)

	case *FuncCall:
		arg, err := eval(n.Arg, now)
		if err != nil {
			return Value{}, err
		}

		fn, ok := builtins[n.Name]
		if !ok {
			// The parser rejects unknown names before evaluation.
			return Value{}, &UnknownFunctionError{Name: n.Name, Pos: n.Pos}
		}

		return fn(arg, n.Pos)

	default:
		return Value{}, fmt.Errorf("unhandled node type %T", node)
	}
}

// applyBinary enforces the operator type rules. The switch enumerates all
// four kind combinations so that adding a Value variant forces a review of
// every rule.
func applyBinary(op TokenKind, left, right Value, pos int) (Value, error) {
	typeErr := func() (Value, error) {
		return Value{}, &TypeError{Op: op, Left: left.Kind, Right: right.Kind, Pos: pos}
	}

	switch {
	case left.Kind == Duration && right.Kind == Duration:
		if op == TokenPlus {
			return DurationOf(left.sec + right.sec), nil
		}

		return DurationOf(left.sec - right.sec), nil

	case left.Kind == Instant && right.Kind == Duration:
		if op == TokenPlus {
			return instantAt(left.sec + right.sec), nil
		}

		return instantAt(left.sec - right.sec), nil

	case left.Kind == Duration && right.Kind == Instant:
		if op == TokenPlus {
			return instantAt(left.sec + right.sec), nil
		}

		// duration - instant has no meaning.
		return typeErr()

	case left.Kind == Instant && right.Kind == Instant:
		if op == TokenMinus {
			return DurationOf(left.sec - right.sec), nil
		}

		// instant + instant has no meaning.
		return typeErr()

	default:
		return typeErr()
	}
}
