package lang

// Node is the interface all AST nodes implement. The tree is strictly
// owned: each composite node exclusively owns its children, and a tree is
// built once per input and consumed by a single evaluation.
type Node interface {
	nodeTag()
}

// Literal is a value fully determined by the source text alone: a parsed
// datetime, a decimal Unix timestamp, or a duration magnitude.
type Literal struct {
	Val Value
	Pos int // byte offset of the literal in the input
}

// NowExpr resolves to the current time at evaluation, not at parse time.
type NowExpr struct {
	Pos int
}

// BinaryExpr applies '+' or '-' (TokenPlus or TokenMinus) to two
// subexpressions.
type BinaryExpr struct {
	Op    TokenKind
	Left  Node
	Right Node
	Pos   int // byte offset of the operator
}

// FuncCall applies a builtin function to its single argument.
type FuncCall struct {
	Name string
	Arg  Node
	Pos  int // byte offset of the function name
}

func (*Literal) nodeTag()    {}
func (*NowExpr) nodeTag()    {}
func (*BinaryExpr) nodeTag() {}
func (*FuncCall) nodeTag()   {}
