// ast.go — the closed node set produced by the parser.
//
// Every syntactic construct is one concrete node type. Expressions produce
// a Value when evaluated; statements execute for effect. Nodes own their
// children outright: the parser builds a strict tree with no sharing.
// Evaluation lives in interp.go and dispatches over this set with a type
// switch, so adding a node kind without teaching the evaluator about it is
// a compile-visible change, not a silent fallthrough.
package slang

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is any AST element. String renders the compact s-expression debug
// form that the driver prints after a successful parse.
type Node interface {
	fmt.Stringer
}

// Expr nodes produce a Value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt nodes execute for effect.
type Stmt interface {
	Node
	stmtNode()
}

// BinOp identifies a binary operator node.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpXor
	OpLess
	OpGreater
	OpEqual
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpEqual:
		return "=="
	default:
		return "?"
	}
}

// IndexMode records which base form an index suffix was attached to. The
// operand contract differs per mode: a text-literal base requires text, a
// list-literal base requires only an integer index, and a variable base
// requires the variable to hold a list. Chained suffixes inherit the mode
// of their base.
type IndexMode int

const (
	TextIndex IndexMode = iota
	ListIndex
	VarIndex
)

// ───────────────────────────── expressions ─────────────────────────────

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// TextLit is a double-quoted string literal (quotes already stripped).
type TextLit struct {
	Value string
}

// VarRef reads a variable from the environment. It is also the only bare
// assignable location.
type VarRef struct {
	Name string
}

// NotExpr is the unary boolean negation. Per the grammar it consumes the
// entire boolean tier to its right.
type NotExpr struct {
	Operand Expr
}

// BinaryExpr covers all binary operators. Both operands are always
// evaluated; and/or do not short-circuit.
type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// IndexExpr is a postfix "[index]" suffix on a text literal, list literal,
// or variable. An IndexExpr whose Base chain is rooted at a VarRef is an
// assignable location.
type IndexExpr struct {
	Mode  IndexMode
	Base  Expr
	Index Expr
}

// EmptyListExpr is the literal "[]".
type EmptyListExpr struct{}

// SingleListExpr is the literal "[e]" with exactly one element.
type SingleListExpr struct {
	Elem Expr
}

// ListJoinExpr accumulates a multi-element list literal one comma at a
// time: "[a,b,c]" parses as join(join(a,b),c). Whether the left operand is
// spliced or nested is decided at evaluation time by comparing value
// depths (see Interpreter.joinLists).
type ListJoinExpr struct {
	Left  Expr
	Right Expr
}

func (*IntLit) exprNode()         {}
func (*TextLit) exprNode()        {}
func (*VarRef) exprNode()         {}
func (*NotExpr) exprNode()        {}
func (*BinaryExpr) exprNode()     {}
func (*IndexExpr) exprNode()      {}
func (*EmptyListExpr) exprNode()  {}
func (*SingleListExpr) exprNode() {}
func (*ListJoinExpr) exprNode()   {}

func (e *IntLit) String() string  { return "(int " + strconv.FormatInt(e.Value, 10) + ")" }
func (e *TextLit) String() string { return "(text " + strconv.Quote(e.Value) + ")" }
func (e *VarRef) String() string  { return "(var " + e.Name + ")" }
func (e *NotExpr) String() string { return "(not " + e.Operand.String() + ")" }
func (e *BinaryExpr) String() string {
	return "(" + e.Op.String() + " " + e.Left.String() + " " + e.Right.String() + ")"
}
func (e *IndexExpr) String() string {
	return "(idx " + e.Base.String() + " " + e.Index.String() + ")"
}
func (e *EmptyListExpr) String() string  { return "(list)" }
func (e *SingleListExpr) String() string { return "(list " + e.Elem.String() + ")" }
func (e *ListJoinExpr) String() string {
	return "(join " + e.Left.String() + " " + e.Right.String() + ")"
}

// ───────────────────────────── statements ──────────────────────────────

// BlockStmt executes its statements strictly in written order. A block may
// be empty. The parser also uses it as the program root.
type BlockStmt struct {
	Stmts []Stmt
}

// AssignStmt writes the evaluated right-hand value into the location named
// by Target. Target validity is a runtime contract, not a parse-time one.
type AssignStmt struct {
	Target Expr
	Value  Expr
}

// PrintStmt writes the operand's literal representation plus a newline.
type PrintStmt struct {
	Operand Expr
}

// IfStmt branches on the truthiness of Cond. Else is nil for a plain if.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt re-evaluates Cond before every iteration and runs Body while
// it is truthy. There is no iteration guard.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// FuncDefStmt is the call-shaped definition form "name(param) body". It
// registers Body under the name and immediately executes it once against
// the same environment. Param is parsed but never evaluated.
type FuncDefStmt struct {
	Name  Expr
	Param Expr
	Body  Stmt
}

func (*BlockStmt) stmtNode()   {}
func (*AssignStmt) stmtNode()  {}
func (*PrintStmt) stmtNode()   {}
func (*IfStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()   {}
func (*FuncDefStmt) stmtNode() {}

func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("(block")
	for _, st := range s.Stmts {
		b.WriteByte(' ')
		b.WriteString(st.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (s *AssignStmt) String() string {
	return "(assign " + s.Target.String() + " " + s.Value.String() + ")"
}
func (s *PrintStmt) String() string { return "(print " + s.Operand.String() + ")" }
func (s *IfStmt) String() string {
	if s.Else == nil {
		return "(if " + s.Cond.String() + " " + s.Then.String() + ")"
	}
	return "(if-else " + s.Cond.String() + " " + s.Then.String() + " " + s.Else.String() + ")"
}
func (s *WhileStmt) String() string {
	return "(while " + s.Cond.String() + " " + s.Body.String() + ")"
}
func (s *FuncDefStmt) String() string {
	return "(fundef " + s.Name.String() + " " + s.Param.String() + " " + s.Body.String() + ")"
}
