// interp_test.go
package slang

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// runProg parses and executes src against a fresh interpreter, returning
// the printed output and the execution error.
func runProg(t *testing.T, src string) (string, error) {
	t.Helper()
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	ip := NewInterpreter()
	var buf bytes.Buffer
	ip.Out = &buf
	execErr := ip.Exec(root)
	return buf.String(), execErr
}

func wantOutput(t *testing.T, src string, lines ...string) {
	t.Helper()
	out, err := runProg(t, src)
	if err != nil {
		t.Fatalf("exec error for %q: %v", src, err)
	}
	want := ""
	if len(lines) > 0 {
		want = strings.Join(lines, "\n") + "\n"
	}
	if out != want {
		t.Fatalf("\nsource: %s\nwant output:\n%q\ngot output:\n%q", src, want, out)
	}
}

func wantSemanticFault(t *testing.T, src string) *SemanticError {
	t.Helper()
	_, err := runProg(t, src)
	var se *SemanticError
	if !errors.As(err, &se) {
		t.Fatalf("source %q: want *SemanticError, got %v", src, err)
	}
	if !IsSemanticFault(err) {
		t.Fatalf("semantic error not classified as semantic fault")
	}
	return se
}

// ───────────────────────── arithmetic & logic ─────────────────────────

func Test_Interp_DivisionTruncatesTowardZero(t *testing.T) {
	wantOutput(t, `print(7 / 2);`, "3")
	wantOutput(t, `print((0 - 7) / 2);`, "-3")
	wantOutput(t, `print(7 / (0 - 2));`, "-3")
	wantOutput(t, `print(6 / 3);`, "2")
}

func Test_Interp_DivisionByZero(t *testing.T) {
	wantSemanticFault(t, `print(1 / 0);`)
}

func Test_Interp_LogicOperatorsReturnZeroOrOne(t *testing.T) {
	wantOutput(t, `print(2 and 3);`, "1")
	wantOutput(t, `print(0 and 3);`, "0")
	wantOutput(t, `print(0 or 5);`, "1")
	wantOutput(t, `print(0 or 0);`, "0")
	wantOutput(t, `print(not 0);`, "1")
	wantOutput(t, `print(not 7);`, "0")
	wantOutput(t, `print(1 < 2);`, "1")
	wantOutput(t, `print(2 > 2);`, "0")
	wantOutput(t, `print(3 == 3);`, "1")
}

func Test_Interp_XorIsBitwise(t *testing.T) {
	wantOutput(t, `print(6 xor 3);`, "5")
	wantOutput(t, `print(1 xor 1);`, "0")
}

func Test_Interp_AndOrDoNotShortCircuit(t *testing.T) {
	// the right operand is evaluated even when the left decides the result
	wantSemanticFault(t, `print(0 and 1 / 0);`)
	wantSemanticFault(t, `print(1 or 1 / 0);`)
}

func Test_Interp_AddContract(t *testing.T) {
	wantOutput(t, `print(2 + 3);`, "5")
	wantOutput(t, `print("ab" + "cd");`, `"abcd"`)
	wantSemanticFault(t, `x = 1 + "a";`)
	wantSemanticFault(t, `x = "a" + 1;`)
	wantSemanticFault(t, `x = [1] + [2];`)
}

func Test_Interp_ArithmeticOperandContracts(t *testing.T) {
	wantSemanticFault(t, `x = "a" - "b";`)
	wantSemanticFault(t, `x = [1] * 2;`)
	wantSemanticFault(t, `x = "a" < "b";`)
	wantSemanticFault(t, `x = not "a";`)
	wantSemanticFault(t, `x = "a" xor 1;`)
}

// ───────────────────────── environment ─────────────────────────

func Test_Interp_AssignThenReadRoundTrip(t *testing.T) {
	wantOutput(t, `x = 1 + 2 * 3; print(x);`, "7")
	wantOutput(t, `l = [[2,5],[3,3]]; m = l; print(m);`, "[[2, 5], [3, 3]]")
}

func Test_Interp_UndefinedVariable(t *testing.T) {
	wantSemanticFault(t, `print(y);`)
}

func Test_Interp_AssignmentTargetContract(t *testing.T) {
	wantSemanticFault(t, `1 = 2;`)
	wantSemanticFault(t, `not x = 1;`)
	wantSemanticFault(t, `"a"[0] = "b";`)
}

// ───────────────────────── lists ─────────────────────────

func Test_Interp_ListConstructionLeftToRight(t *testing.T) {
	wantOutput(t, `print([]);`, "[]")
	wantOutput(t, `print([1]);`, "[1]")
	wantOutput(t, `print([1,2,3]);`, "[1, 2, 3]")
}

func Test_Interp_ListDepthJoinPolicy(t *testing.T) {
	// depth 1 left vs depth 0 right: the left operand's elements splice
	wantOutput(t, `print([[1],2]);`, "[1, 2]")
	// equal depths: both operands stay as elements
	wantOutput(t, `print([[2,5],[3,3]]);`, "[[2, 5], [3, 3]]")
	// depth 0 left vs depth 1 right: the left operand nests
	wantOutput(t, `print([2,[1]]);`, "[2, [1]]")
}

func Test_Interp_ListIndexing(t *testing.T) {
	wantOutput(t, `l = [1,2,3]; print(l[1]);`, "2")
	wantOutput(t, `l = [[2,5],[3,3]]; print(l[0][1]);`, "5")
	wantOutput(t, `print([10,20][0]);`, "10")
}

func Test_Interp_IndexOutOfRangeIsSemanticFault(t *testing.T) {
	wantSemanticFault(t, `l = [1,2,3]; print(l[3]);`)
	wantSemanticFault(t, `l = [1]; print(l[0 - 1]);`)
	wantSemanticFault(t, `print([1][5]);`)
	wantSemanticFault(t, `print("ab"[2]);`)
}

func Test_Interp_IndexContracts(t *testing.T) {
	wantSemanticFault(t, `l = [1,2]; print(l["a"]);`)
	wantSemanticFault(t, `x = 5; print(x[0]);`)
	// a variable index requires the variable to hold a list, even for text
	wantSemanticFault(t, `s = "ab"; print(s[0]);`)
}

func Test_Interp_IndexedCellMutation(t *testing.T) {
	wantOutput(t, `l = [1,2,3]; l[0] = 9; print(l);`, "[9, 2, 3]")
	wantOutput(t, `m = [[1,2],[3,4]]; m[1][0] = 9; print(m);`, "[[1, 2], [9, 4]]")
}

func Test_Interp_TextCellMutation(t *testing.T) {
	wantOutput(t, `s = "abc"; s[1] = "X"; print(s);`, `"aXc"`)
	wantSemanticFault(t, `s = "abc"; s[5] = "X";`)
	wantSemanticFault(t, `s = "abc"; s[0] = 1;`)
}

// ───────────────────────── strings ─────────────────────────

func Test_Interp_StringLiteralIndexing(t *testing.T) {
	wantOutput(t, `print("abc"[1]);`, `"b"`)
	wantOutput(t, `print("abc"[0][0]);`, `"a"`)
}

// ───────────────────────── control flow ─────────────────────────

func Test_Interp_IfBranchesOnTruthiness(t *testing.T) {
	wantOutput(t, `if (1) print(1);`, "1")
	wantOutput(t, `if (0) print(1);`)
	wantOutput(t, `if (2 > 1) print(1); else print(2);`, "1")
	wantOutput(t, `if (0) print(1); else print(2);`, "2")
	// any non-Integer value is truthy
	wantOutput(t, `if ("a") print(1);`, "1")
	wantOutput(t, `if ([]) print(1);`, "1")
}

func Test_Interp_WhileLoop(t *testing.T) {
	wantOutput(t, `i = 0; while (i < 3) { print(i); i = i + 1; }`, "0", "1", "2")
	wantOutput(t, `while (0) print(1);`)
}

func Test_Interp_BlockExecutesInOrder(t *testing.T) {
	wantOutput(t, `{ print(1); print(2); } print(3);`, "1", "2", "3")
	wantOutput(t, `{}`)
}

// ───────────────────────── function definitions ─────────────────────────

func Test_Interp_FunctionDefRegistersAndRunsBodyOnce(t *testing.T) {
	src := `x = 1; f(x) { print(42); }`
	root, err := Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	ip := NewInterpreter()
	var buf bytes.Buffer
	ip.Out = &buf
	if err := ip.Exec(root); err != nil {
		t.Fatalf("exec error: %v", err)
	}
	if got := buf.String(); got != "42\n" {
		t.Fatalf("body did not run exactly once: output %q", got)
	}
	if _, ok := ip.Funcs.Get("f"); !ok {
		t.Fatalf("function body was not registered")
	}
	// the registry is separate from the variable environment
	if v, ok := ip.Global.Get("x"); !ok || v.AsInt() != 1 {
		t.Fatalf("variable environment disturbed: %v %v", v, ok)
	}
}

func Test_Interp_FunctionBodySharesEnvironment(t *testing.T) {
	wantOutput(t, `x = 1; f(p) { x = x + 1; } print(x);`, "2")
}

func Test_Interp_FunctionParameterIsNeverEvaluated(t *testing.T) {
	// "y" is undefined, but the parameter expression is only parsed
	wantOutput(t, `f(y) { print(1); }`, "1")
}

func Test_Interp_FunctionNameMustBeAssignable(t *testing.T) {
	wantSemanticFault(t, `1(x) { print(1); }`)
}

// ───────────────────────── end to end ─────────────────────────

func Test_Interp_EndToEndScenarios(t *testing.T) {
	wantOutput(t, `x = 5; y = 3; print(x + y);`, "8")
	wantOutput(t, `x = "ab" + "cd"; print(x);`, `"abcd"`)
	wantOutput(t, `l = [1,2,3]; l[0] = 9; print(l);`, "[9, 2, 3]")
}

func Test_Interp_FaultPaths(t *testing.T) {
	_, err := Parse(`x = ;`)
	if !IsSyntaxFault(err) {
		t.Fatalf("want syntax fault, got %v", err)
	}
	wantSemanticFault(t, `x = 1 + "a";`)
}

func Test_Interp_FirstFaultTerminatesEvaluation(t *testing.T) {
	out, err := runProg(t, `print(1); x = 1 / 0; print(2);`)
	if !IsSemanticFault(err) {
		t.Fatalf("want semantic fault, got %v", err)
	}
	if out != "1\n" {
		t.Fatalf("statements after the fault ran: %q", out)
	}
}

func Test_Interp_RunSource(t *testing.T) {
	ip := NewInterpreter()
	var buf bytes.Buffer
	ip.Out = &buf
	if err := ip.RunSource(`x = 2; print(x * x);`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if buf.String() != "4\n" {
		t.Fatalf("output: %q", buf.String())
	}
	// state persists across RunSource calls on the same interpreter
	if err := ip.RunSource(`print(x);`); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if buf.String() != "4\n2\n" {
		t.Fatalf("output: %q", buf.String())
	}
}
