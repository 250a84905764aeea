// interp.go — the tree-walking evaluator.
//
// The evaluator walks the AST directly: Eval produces a Value for
// expression nodes, Exec runs statement nodes for effect. Dispatch is a
// type switch over the closed node set in ast.go. All operands are
// evaluated eagerly before their operator's contract is enforced; and/or
// never short-circuit. Faults are explicit error returns (*SemanticError),
// and the first fault unwinds the whole run.
package slang

import (
	"fmt"
	"io"
	"os"
)

// Interpreter executes one program against its own environment and
// function registry. Instances are not safe for concurrent use; hosts
// running scripts concurrently must give each run its own Interpreter.
type Interpreter struct {
	Global *Env
	Funcs  *Registry
	Out    io.Writer
}

// NewInterpreter returns an interpreter with an empty environment,
// printing to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		Global: NewEnv(),
		Funcs:  NewRegistry(),
		Out:    os.Stdout,
	}
}

// RunSource parses src and executes it.
func (ip *Interpreter) RunSource(src string) error {
	root, err := Parse(src)
	if err != nil {
		return err
	}
	return ip.Exec(root)
}

func semErr(format string, args ...interface{}) error {
	return &SemanticError{Msg: fmt.Sprintf(format, args...)}
}

// truthy implements the nonzero test: a value is false iff it is the
// Integer 0. Text and lists are always truthy.
func truthy(v Value) bool {
	return !(v.Tag == VTInt && v.AsInt() == 0)
}

// JoinLists is the depth-directed join behind multi-element list
// literals: when the left operand is strictly deeper than the right, its
// elements are spliced into the result, otherwise it is appended as one
// element; the right operand is always appended as one element. Same-depth
// chains therefore accumulate left to right, while a deeper left operand
// flattens. This heuristic is load-bearing for nested list literals and
// must not be "fixed" to a conventional append.
func JoinLists(left, right Value) Value {
	var out []Value
	if left.Depth() > right.Depth() {
		out = append(out, left.AsList()...)
	} else {
		out = append(out, left)
	}
	return List(append(out, right))
}

// ───────────────────────────── statements ─────────────────────────────

// Exec executes a statement node for effect.
func (ip *Interpreter) Exec(s Stmt) error {
	switch st := s.(type) {
	case *BlockStmt:
		for _, sub := range st.Stmts {
			if err := ip.Exec(sub); err != nil {
				return err
			}
		}
		return nil

	case *AssignStmt:
		v, err := ip.Eval(st.Value)
		if err != nil {
			return err
		}
		return ip.assign(st.Target, v)

	case *PrintStmt:
		v, err := ip.Eval(st.Operand)
		if err != nil {
			return err
		}
		_, werr := fmt.Fprintln(ip.Out, v.String())
		return werr

	case *IfStmt:
		cond, err := ip.Eval(st.Cond)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return ip.Exec(st.Then)
		}
		if st.Else != nil {
			return ip.Exec(st.Else)
		}
		return nil

	case *WhileStmt:
		for {
			cond, err := ip.Eval(st.Cond)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := ip.Exec(st.Body); err != nil {
				return err
			}
		}

	case *FuncDefStmt:
		// The definition registers the body by name and then runs it once
		// against the same environment. The parameter is parsed but never
		// evaluated, and nothing ever reads the registry back; this is the
		// half-built construct the language ships with.
		name, ok := st.Name.(*VarRef)
		if !ok {
			return semErr("function name is not an assignable location")
		}
		ip.Funcs.Define(name.Name, st.Body)
		return ip.Exec(st.Body)

	default:
		return semErr("unknown statement node %T", s)
	}
}

// assign writes v into the location denoted by target: a bare variable, or
// an index chain rooted at a variable. Everything else is a contract
// violation surfaced at execution time.
func (ip *Interpreter) assign(target Expr, v Value) error {
	switch t := target.(type) {
	case *VarRef:
		ip.Global.Define(t.Name, v)
		return nil

	case *IndexExpr:
		iv, err := ip.Eval(t.Index)
		if err != nil {
			return err
		}
		if iv.Tag != VTInt {
			return semErr("index must be an integer, got %s", iv.Tag)
		}
		idx := iv.AsInt()

		if base, ok := t.Base.(*VarRef); ok {
			container, found := ip.Global.Get(base.Name)
			if !found {
				return semErr("undefined variable %q", base.Name)
			}
			switch container.Tag {
			case VTList:
				cells := container.AsList()
				if idx < 0 || idx >= int64(len(cells)) {
					return semErr("list index %d out of range (length %d)", idx, len(cells))
				}
				cells[idx] = v
				return nil
			case VTText:
				if v.Tag != VTText {
					return semErr("cannot assign %s into a text cell", v.Tag)
				}
				s := container.AsText()
				if idx < 0 || idx >= int64(len(s)) {
					return semErr("text index %d out of range (length %d)", idx, len(s))
				}
				ip.Global.Define(base.Name, Text(s[:idx]+v.AsText()+s[idx+1:]))
				return nil
			default:
				return semErr("cannot index-assign into %s", container.Tag)
			}
		}

		// Nested chain: the inner indexes must resolve to a list, whose
		// cells share backing with the stored value, so writing the cell
		// mutates in place.
		container, err := ip.Eval(t.Base)
		if err != nil {
			return err
		}
		if container.Tag != VTList {
			return semErr("cannot index-assign into %s", container.Tag)
		}
		cells := container.AsList()
		if idx < 0 || idx >= int64(len(cells)) {
			return semErr("list index %d out of range (length %d)", idx, len(cells))
		}
		cells[idx] = v
		return nil

	default:
		return semErr("assignment target is not an assignable location")
	}
}

// ───────────────────────────── expressions ─────────────────────────────

// Eval evaluates an expression node to a Value.
func (ip *Interpreter) Eval(e Expr) (Value, error) {
	switch ex := e.(type) {
	case *IntLit:
		return Int(ex.Value), nil

	case *TextLit:
		return Text(ex.Value), nil

	case *VarRef:
		v, ok := ip.Global.Get(ex.Name)
		if !ok {
			return Value{}, semErr("undefined variable %q", ex.Name)
		}
		return v, nil

	case *NotExpr:
		v, err := ip.Eval(ex.Operand)
		if err != nil {
			return Value{}, err
		}
		if v.Tag != VTInt {
			return Value{}, semErr("operand of 'not' must be an integer, got %s", v.Tag)
		}
		if v.AsInt() == 0 {
			return Int(1), nil
		}
		return Int(0), nil

	case *BinaryExpr:
		left, err := ip.Eval(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.Eval(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return ip.binop(ex.Op, left, right)

	case *IndexExpr:
		return ip.index(ex)

	case *EmptyListExpr:
		return List([]Value{}), nil

	case *SingleListExpr:
		v, err := ip.Eval(ex.Elem)
		if err != nil {
			return Value{}, err
		}
		return List([]Value{v}), nil

	case *ListJoinExpr:
		left, err := ip.Eval(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := ip.Eval(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return JoinLists(left, right), nil

	default:
		return Value{}, semErr("unknown expression node %T", e)
	}
}

func (ip *Interpreter) binop(op BinOp, left, right Value) (Value, error) {
	switch op {
	case OpAdd:
		if left.Tag == VTInt && right.Tag == VTInt {
			return Int(left.AsInt() + right.AsInt()), nil
		}
		if left.Tag == VTText && right.Tag == VTText {
			return Text(left.AsText() + right.AsText()), nil
		}
		return Value{}, semErr("operands of '+' must both be integers or both be text, got %s and %s",
			left.Tag, right.Tag)

	case OpSub, OpMul, OpDiv, OpAnd, OpOr, OpXor, OpLess, OpGreater, OpEqual:
		if left.Tag != VTInt {
			return Value{}, semErr("left operand of '%s' must be an integer, got %s", op, left.Tag)
		}
		if right.Tag != VTInt {
			return Value{}, semErr("right operand of '%s' must be an integer, got %s", op, right.Tag)
		}
		a, b := left.AsInt(), right.AsInt()
		switch op {
		case OpSub:
			return Int(a - b), nil
		case OpMul:
			return Int(a * b), nil
		case OpDiv:
			if b == 0 {
				return Value{}, semErr("division by zero")
			}
			// Go's integer division already truncates toward zero.
			return Int(a / b), nil
		case OpAnd:
			return boolInt(a != 0 && b != 0), nil
		case OpOr:
			return boolInt(a != 0 || b != 0), nil
		case OpXor:
			return Int(a ^ b), nil
		case OpLess:
			return boolInt(a < b), nil
		case OpGreater:
			return boolInt(a > b), nil
		default: // OpEqual
			return boolInt(a == b), nil
		}

	default:
		return Value{}, semErr("unknown operator '%s'", op)
	}
}

func boolInt(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// index evaluates one "[index]" suffix. The contract depends on the mode
// the parser recorded from the base form:
//
//	TextIndex — base must be text, index an integer; yields one character.
//	ListIndex — index must be an integer; the base came from a list
//	            literal, but chained suffixes may surface text elements,
//	            which are indexed as text.
//	VarIndex  — the indexed value must be a list.
//
// All out-of-range indexes (including negative) are semantic faults.
func (ip *Interpreter) index(ex *IndexExpr) (Value, error) {
	base, err := ip.Eval(ex.Base)
	if err != nil {
		return Value{}, err
	}
	iv, err := ip.Eval(ex.Index)
	if err != nil {
		return Value{}, err
	}
	if iv.Tag != VTInt {
		return Value{}, semErr("index must be an integer, got %s", iv.Tag)
	}
	idx := iv.AsInt()

	switch ex.Mode {
	case TextIndex:
		if base.Tag != VTText {
			return Value{}, semErr("cannot index %s as text", base.Tag)
		}
		return textAt(base.AsText(), idx)

	case ListIndex:
		switch base.Tag {
		case VTList:
			return listAt(base.AsList(), idx)
		case VTText:
			return textAt(base.AsText(), idx)
		default:
			return Value{}, semErr("cannot index into %s", base.Tag)
		}

	case VarIndex:
		if base.Tag != VTList {
			return Value{}, semErr("indexed variable must hold a list, got %s", base.Tag)
		}
		return listAt(base.AsList(), idx)

	default:
		return Value{}, semErr("unknown index mode")
	}
}

func textAt(s string, idx int64) (Value, error) {
	if idx < 0 || idx >= int64(len(s)) {
		return Value{}, semErr("text index %d out of range (length %d)", idx, len(s))
	}
	return Text(s[idx : idx+1]), nil
}

func listAt(cells []Value, idx int64) (Value, error) {
	if idx < 0 || idx >= int64(len(cells)) {
		return Value{}, semErr("list index %d out of range (length %d)", idx, len(cells))
	}
	return cells[idx], nil
}
