package nabeelscript

import (
	"bytes"
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func runSrc(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	ip := NewInterpreter()
	ip.Out = &out
	if err := ip.RunSource(src); err != nil {
		t.Fatalf("RunSource error: %v\nsource:\n%s", err, src)
	}
	return out.String()
}

func wantOutput(t *testing.T, src, want string) {
	t.Helper()
	got := runSrc(t, src)
	if got != want {
		t.Fatalf("\nsource:\n%s\nwant output:\n%q\ngot output:\n%q", src, want, got)
	}
}

// runFail executes src expecting a runtime error; it returns the error and
// whatever was printed before the failure.
func runFail(t *testing.T, src string) (*RuntimeError, string) {
	t.Helper()
	var out bytes.Buffer
	ip := NewInterpreter()
	ip.Out = &out
	err := ip.RunSource(src)
	if err == nil {
		t.Fatalf("expected runtime error\nsource:\n%s\noutput:\n%s", src, out.String())
	}
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
	return re, out.String()
}

func wantFail(t *testing.T, src string, kind ErrKind, substr string) *RuntimeError {
	t.Helper()
	re, _ := runFail(t, src)
	if re.Kind != kind {
		t.Fatalf("want %s, got %s (%v)", kind.header(), re.Kind.header(), re)
	}
	if !strings.Contains(re.Msg, substr) {
		t.Fatalf("error %q does not contain %q", re.Msg, substr)
	}
	return re
}

func evalExprSrc(t *testing.T, exprSrc string) Value {
	t.Helper()
	prog, err := Parse("x = " + exprSrc + ";")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ip := NewInterpreter()
	v, err := ip.EvalExpr(prog[0].(*AssignStmt).Expr)
	if err != nil {
		t.Fatalf("EvalExpr error for %q: %v", exprSrc, err)
	}
	return v
}

func wantNum(t *testing.T, v Value, f float64) {
	t.Helper()
	if v.Tag != VTNum || v.Data.(float64) != f {
		t.Fatalf("want num %g, got %#v", f, v)
	}
}

func wantBool(t *testing.T, v Value, b bool) {
	t.Helper()
	if v.Tag != VTBool || v.Data.(bool) != b {
		t.Fatalf("want bool %v, got %#v", b, v)
	}
}

func wantStr(t *testing.T, v Value, s string) {
	t.Helper()
	if v.Tag != VTStr || v.Data.(string) != s {
		t.Fatalf("want str %q, got %#v", s, v)
	}
}

// --- tests -----------------------------------------------------------------

func Test_Interpreter_PrecedenceResults(t *testing.T) {
	wantNum(t, evalExprSrc(t, "1 + 2 * 3"), 7)
	wantNum(t, evalExprSrc(t, "(1 + 2) * 3"), 9)
	wantNum(t, evalExprSrc(t, "10 - 4 - 3"), 3)
	wantNum(t, evalExprSrc(t, "20 / 4 / 5"), 1)
}

func Test_Interpreter_AssignmentThenReference(t *testing.T) {
	wantOutput(t, `x = 10; y = 20; print x + y;`, "30\n")
}

func Test_Interpreter_LastAssignmentWins(t *testing.T) {
	wantOutput(t, `x = 1; x = 2; x = x + 1; print x;`, "3\n")
}

func Test_Interpreter_ComparisonChaining(t *testing.T) {
	wantOutput(t, `x = 15; y = 20; print x < y && y > 10;`, "true\n")
}

func Test_Interpreter_Comparisons(t *testing.T) {
	wantBool(t, evalExprSrc(t, "3 < 4"), true)
	wantBool(t, evalExprSrc(t, "4 <= 4"), true)
	wantBool(t, evalExprSrc(t, "3 > 4"), false)
	wantBool(t, evalExprSrc(t, "4 >= 5"), false)
}

func Test_Interpreter_UnaryOperators(t *testing.T) {
	wantBool(t, evalExprSrc(t, "!true"), false)
	wantBool(t, evalExprSrc(t, "!!true"), true)
	wantNum(t, evalExprSrc(t, "-3"), -3)
	wantNum(t, evalExprSrc(t, "-(1 + 2)"), -3)
	wantFail(t, `print !1;`, ErrType, `"!" requires a Boolean`)
	wantFail(t, `print -"x";`, ErrType, `"-" requires a Number`)
}

func Test_Interpreter_ShortCircuit_AndSkipsRight(t *testing.T) {
	// The right side divides by zero; short-circuit must skip it.
	wantOutput(t, `print false && (1/0 == 0);`, "false\n")
	wantOutput(t, `print true || (1/0 == 0);`, "true\n")
}

func Test_Interpreter_ShortCircuit_RightStillTypeChecked(t *testing.T) {
	wantFail(t, `print true && 1;`, ErrType, "Boolean operands")
	wantFail(t, `print false || "x";`, ErrType, "Boolean operands")
}

func Test_Interpreter_LogicalRequiresBooleans(t *testing.T) {
	wantFail(t, `print 1 && true;`, ErrType, "Boolean operands")
}

func Test_Interpreter_StringConcatenation(t *testing.T) {
	wantStr(t, evalExprSrc(t, `"Hello, " + "world"`), "Hello, world")
	wantFail(t, `print "n = " + 1;`, ErrType, "two Numbers or two Strings")
	wantFail(t, `print 1 + "s";`, ErrType, "two Numbers or two Strings")
}

func Test_Interpreter_ArithmeticTypeErrors(t *testing.T) {
	wantFail(t, `print true * 2;`, ErrType, "Number operands")
	wantFail(t, `print "a" - "b";`, ErrType, "Number operands")
	wantFail(t, `print [1] < [2];`, ErrType, "Number operands")
}

func Test_Interpreter_DivisionByZero(t *testing.T) {
	re, out := runFail(t, `print 10 / 0;`)
	if re.Kind != ErrRuntime || !strings.Contains(re.Msg, "division by zero") {
		t.Fatalf("want division by zero, got %v", re)
	}
	if out != "" {
		t.Fatalf("no numeric result may be printed, got %q", out)
	}
}

func Test_Interpreter_FailFast_KeepsEarlierOutput(t *testing.T) {
	re, out := runFail(t, "print 1;\nprint 2;\nprint 1 / 0;\nprint 3;")
	if out != "1\n2\n" {
		t.Fatalf("output before the failure must remain, got %q", out)
	}
	if re.Line != 3 {
		t.Fatalf("error should point at line 3, got line %d", re.Line)
	}
}

func Test_Interpreter_UndefinedVariable(t *testing.T) {
	re := wantFail(t, `print z;`, ErrName, "undefined variable: z")
	if re.Line != 1 {
		t.Fatalf("want line 1, got %d", re.Line)
	}
}

func Test_Interpreter_Equality_Structural(t *testing.T) {
	wantBool(t, evalExprSrc(t, `1 == 1`), true)
	wantBool(t, evalExprSrc(t, `1 != 2`), true)
	wantBool(t, evalExprSrc(t, `"a" == "a"`), true)
	wantBool(t, evalExprSrc(t, `true == true`), true)
	wantBool(t, evalExprSrc(t, `[1, 2] == [1, 2]`), true)
	wantBool(t, evalExprSrc(t, `[1, [2, "x"]] == [1, [2, "x"]]`), true)
	wantBool(t, evalExprSrc(t, `[1, 2] == [1, 3]`), false)
	wantBool(t, evalExprSrc(t, `[1, 2] == [1, 2, 3]`), false)
}

func Test_Interpreter_Equality_CrossTypeIsFalseNotError(t *testing.T) {
	wantBool(t, evalExprSrc(t, `1 == "1"`), false)
	wantBool(t, evalExprSrc(t, `true == 1`), false)
	wantBool(t, evalExprSrc(t, `[1] == 1`), false)
	wantBool(t, evalExprSrc(t, `1 != "1"`), true)
}

func Test_Interpreter_ArrayLiteral_EvaluatesLeftToRight(t *testing.T) {
	wantOutput(t, `x = 1; a = [x, x + 1, x + 2]; print a;`, "[1, 2, 3]\n")
}

func Test_Interpreter_ArrayIndexing(t *testing.T) {
	wantOutput(t, `arr = [1, 2, 3, 4, 5]; print arr[2];`, "3\n")
	wantOutput(t, `arr = [[1, 2], [3, 4]]; print arr[1][0];`, "3\n")
	wantOutput(t, `arr = ["a", "b"]; print arr[1 - 1];`, "a\n")
}

func Test_Interpreter_IndexErrors(t *testing.T) {
	wantFail(t, `a = [1, 2]; print a[2];`, ErrIndex, "out of bounds")
	wantFail(t, `a = [1, 2]; print a[-1];`, ErrIndex, "out of bounds")
	wantFail(t, `a = [1, 2]; print a[0.5];`, ErrIndex, "must be an integer")
	wantFail(t, `a = [1, 2]; print a["0"];`, ErrType, "index must be a Number")
	wantFail(t, `s = "abc"; print s[0];`, ErrType, "only Arrays can be indexed")
}

func Test_Interpreter_EnvironmentIsolation(t *testing.T) {
	// Two interpreters never share state.
	ip1 := NewInterpreter()
	ip1.Out = &bytes.Buffer{}
	if err := ip1.RunSource(`x = 1;`); err != nil {
		t.Fatalf("run 1: %v", err)
	}
	ip2 := NewInterpreter()
	ip2.Out = &bytes.Buffer{}
	err := ip2.RunSource(`print x;`)
	if err == nil {
		t.Fatalf("x must be undefined in a fresh interpreter")
	}
}

func Test_Interpreter_PersistentAcrossRuns(t *testing.T) {
	// The same instance keeps its environment (REPL behavior).
	var out bytes.Buffer
	ip := NewInterpreter()
	ip.Out = &out
	if err := ip.RunSource(`x = 41;`); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := ip.RunSource(`print x + 1;`); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if out.String() != "42\n" {
		t.Fatalf("want 42, got %q", out.String())
	}
}

func Test_Interpreter_RuntimeErrorPosition(t *testing.T) {
	re, _ := runFail(t, "x = 1;\ny = x / 0;")
	if re.Line != 2 {
		t.Fatalf("want line 2, got %d", re.Line)
	}
	// Col is 1-based and points at the operator.
	if re.Col != 7 {
		t.Fatalf("want col 7, got %d", re.Col)
	}
}
