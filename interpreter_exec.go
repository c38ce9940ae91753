// interpreter_exec.go — PRIVATE: the tree-walking evaluator.
//
// Runtime failures are signalled by panicking with a private rtErr value and
// recovered at the protect() boundary, where they become *RuntimeError. Always
// use failAt to raise errors inside the evaluator so positions and kinds stay
// consistent. Expression evaluation is one exhaustive type switch per node
// kind; unsupported operand combinations fail explicitly rather than falling
// through to a default.
package nabeelscript

import "fmt"

////////////////////////////////////////////////////////////////////////////////
//                         PRIVATE PANIC / ERROR HELPERS
////////////////////////////////////////////////////////////////////////////////

type rtErr struct {
	kind ErrKind
	msg  string
	line int
	col  int
}

// failAt raises a runtime error at the given node position (converted to a
// 1-based column). Never returns.
func failAt(kind ErrKind, at Pos, format string, args ...interface{}) {
	panic(rtErr{kind: kind, msg: fmt.Sprintf(format, args...), line: at.Line, col: at.Col + 1})
}

// protect runs fn and converts an rtErr panic into a *RuntimeError.
// Other panics (programming errors) propagate.
func (ip *Interpreter) protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			err = &RuntimeError{Kind: sig.kind, Line: sig.line, Col: sig.col, Msg: sig.msg}
		}
	}()
	fn()
	return nil
}

////////////////////////////////////////////////////////////////////////////////
//                                  STATEMENTS
////////////////////////////////////////////////////////////////////////////////

func (ip *Interpreter) exec(s Stmt) {
	switch st := s.(type) {
	case *AssignStmt:
		ip.Globals.Define(st.Name, ip.eval(st.Expr))
	case *PrintStmt:
		fmt.Fprintln(ip.Out, FormatValue(ip.eval(st.Expr)))
	default:
		panic(fmt.Sprintf("exec: unhandled statement %T", s))
	}
}

////////////////////////////////////////////////////////////////////////////////
//                                 EXPRESSIONS
////////////////////////////////////////////////////////////////////////////////

func (ip *Interpreter) eval(e Expr) Value {
	switch ex := e.(type) {
	case *NumberLit:
		return Num(ex.Value)
	case *StringLit:
		return Str(ex.Value)
	case *BoolLit:
		return Bool(ex.Value)

	case *ArrayLit:
		xs := make([]Value, len(ex.Elems))
		for i, el := range ex.Elems {
			xs[i] = ip.eval(el)
		}
		return Arr(xs)

	case *VarRef:
		v, err := ip.Globals.Get(ex.Name)
		if err != nil {
			failAt(ErrName, ex.At, "undefined variable: %s", ex.Name)
		}
		return v

	case *UnaryExpr:
		return ip.evalUnary(ex)
	case *BinaryExpr:
		return ip.evalBinary(ex)
	case *IndexExpr:
		return ip.evalIndex(ex)
	case *CallExpr:
		return ip.evalCall(ex)
	}
	panic(fmt.Sprintf("eval: unhandled expression %T", e))
}

func (ip *Interpreter) evalUnary(ex *UnaryExpr) Value {
	v := ip.eval(ex.Operand)
	switch ex.Op {
	case BANG:
		if v.Tag != VTBool {
			failAt(ErrType, ex.At, "operator \"!\" requires a Boolean operand, got %s", TypeName(v))
		}
		return Bool(!v.Data.(bool))
	case MINUS:
		if v.Tag != VTNum {
			failAt(ErrType, ex.At, "unary \"-\" requires a Number operand, got %s", TypeName(v))
		}
		return Num(-v.Data.(float64))
	}
	panic(fmt.Sprintf("evalUnary: unhandled operator %v", ex.Op))
}

func (ip *Interpreter) evalBinary(ex *BinaryExpr) Value {
	// Logical operators short-circuit: the right operand must not be
	// evaluated when the left already decides the result.
	switch ex.Op {
	case AND, OR:
		left := ip.eval(ex.Left)
		if left.Tag != VTBool {
			failAt(ErrType, ex.At, "operator %q requires Boolean operands, got %s", opText(ex.Op), TypeName(left))
		}
		l := left.Data.(bool)
		if ex.Op == AND && !l {
			return Bool(false)
		}
		if ex.Op == OR && l {
			return Bool(true)
		}
		right := ip.eval(ex.Right)
		if right.Tag != VTBool {
			failAt(ErrType, ex.At, "operator %q requires Boolean operands, got %s", opText(ex.Op), TypeName(right))
		}
		return Bool(right.Data.(bool))
	}

	left := ip.eval(ex.Left)
	right := ip.eval(ex.Right)

	switch ex.Op {
	case EQ:
		return Bool(valueEqual(left, right))
	case NEQ:
		return Bool(!valueEqual(left, right))

	case PLUS:
		// "+" is Number addition, plus String concatenation as the one
		// deliberate overload. Any other combination is a type error.
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.Data.(float64) + right.Data.(float64))
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.Data.(string) + right.Data.(string))
		}
		failAt(ErrType, ex.At, "operator \"+\" requires two Numbers or two Strings, got %s and %s",
			TypeName(left), TypeName(right))

	case MINUS, MULT, DIV:
		a := ip.numOperand(ex, left)
		b := ip.numOperand(ex, right)
		switch ex.Op {
		case MINUS:
			return Num(a - b)
		case MULT:
			return Num(a * b)
		default:
			if b == 0 {
				failAt(ErrRuntime, ex.At, "division by zero")
			}
			return Num(a / b)
		}

	case LESS, LESS_EQ, GREATER, GREATER_EQ:
		a := ip.numOperand(ex, left)
		b := ip.numOperand(ex, right)
		switch ex.Op {
		case LESS:
			return Bool(a < b)
		case LESS_EQ:
			return Bool(a <= b)
		case GREATER:
			return Bool(a > b)
		default:
			return Bool(a >= b)
		}
	}
	panic(fmt.Sprintf("evalBinary: unhandled operator %v", ex.Op))
}

func (ip *Interpreter) numOperand(ex *BinaryExpr, v Value) float64 {
	if v.Tag != VTNum {
		failAt(ErrType, ex.At, "operator %q requires Number operands, got %s", opText(ex.Op), TypeName(v))
	}
	return v.Data.(float64)
}

func (ip *Interpreter) evalIndex(ex *IndexExpr) Value {
	base := ip.eval(ex.Base)
	if base.Tag != VTArray {
		failAt(ErrType, ex.At, "only Arrays can be indexed, got %s", TypeName(base))
	}
	idx := ip.eval(ex.Index)
	if idx.Tag != VTNum {
		failAt(ErrType, ex.At, "array index must be a Number, got %s", TypeName(idx))
	}
	f := idx.Data.(float64)
	if f != float64(int(f)) {
		failAt(ErrIndex, ex.At, "array index must be an integer, got %s", FormatValue(idx))
	}
	i := int(f)
	xs := base.Data.([]Value)
	if i < 0 || i >= len(xs) {
		failAt(ErrIndex, ex.At, "array index %d out of bounds (length %d)", i, len(xs))
	}
	return xs[i]
}

func (ip *Interpreter) evalCall(ex *CallExpr) Value {
	spec, ok := builtins[ex.Name]
	if !ok {
		failAt(ErrName, ex.At, "unknown function: %s", ex.Name)
	}
	if len(ex.Args) != spec.arity {
		failAt(ErrType, ex.At, "%s expects %d argument(s), got %d", ex.Name, spec.arity, len(ex.Args))
	}
	args := make([]Value, len(ex.Args))
	for i, a := range ex.Args {
		args[i] = ip.eval(a)
	}
	return spec.impl(ex, args)
}

////////////////////////////////////////////////////////////////////////////////
//                                   HELPERS
////////////////////////////////////////////////////////////////////////////////

// valueEqual is structural equality: same tag, same payload, arrays
// elementwise. Cross-type comparisons are false, never an error.
func valueEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTNum:
		return a.Data.(float64) == b.Data.(float64)
	case VTStr:
		return a.Data.(string) == b.Data.(string)
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTArray:
		ax := a.Data.([]Value)
		bx := b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !valueEqual(ax[i], bx[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func opText(t TokenType) string {
	switch t {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case MULT:
		return "*"
	case DIV:
		return "/"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LESS:
		return "<"
	case LESS_EQ:
		return "<="
	case GREATER:
		return ">"
	case GREATER_EQ:
		return ">="
	case AND:
		return "&&"
	case OR:
		return "||"
	case BANG:
		return "!"
	default:
		return "?"
	}
}
