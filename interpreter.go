// interpreter.go — public API surface of the NabeelScript runtime.
//
// OVERVIEW
// ========
// This file exposes the public surface of the interpreter: the runtime value
// model (`Value`, `ValueTag`, constructors `Num/Str/Bool/Arr`), the variable
// environment (`Env`), the `Interpreter` entry points, and the structured
// `*RuntimeError` returned by all Run*/Eval* methods.
//
// EXECUTION MODEL
// ---------------
// A NabeelScript program is a flat sequence of statements executed top to
// bottom against a single mutable environment — the language has no nested
// scopes, functions, or control flow. `print` statements write their rendered
// value plus '\n' to the interpreter's Out writer; assignments mutate the
// environment. Execution is fully synchronous and fail-fast: the first
// runtime error aborts the run, leaving previously printed output in place.
//
// The environment is owned by the Interpreter instance, never shared across
// instances, so independent runs (tests, REPL sessions) cannot interfere.
//
// ERRORS
// ------
// Run*/Eval* methods return nil on success or a typed error: *LexError and
// *ParseError from the front end, *RuntimeError from evaluation. RuntimeError
// carries a Kind (type, name, index, runtime) that selects the user-facing
// header, and a 1-based (Line, Col) pointing at the failing construct.
// errors.go can wrap any of these with a caret-annotated source snippet.
//
// DEPENDENCIES (OTHER FILES)
//   - lexer.go / parser.go: front end producing the []Stmt program.
//   - interpreter_exec.go (private): the tree-walking evaluator.
//   - builtins.go: the split/join/count registry.
//   - printer.go: FormatValue, the single rendering rule for print and join.
package nabeelscript

import (
	"fmt"
	"io"
	"os"
	"sort"
)

////////////////////////////////////////////////////////////////////////////////
//                              PUBLIC TYPES & CTORS
////////////////////////////////////////////////////////////////////////////////

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries.
type ValueTag int

const (
	VTNum   ValueTag = iota // float64
	VTStr                   // string
	VTBool                  // bool
	VTArray                 // []Value (heterogeneous)
)

// Value is the universal runtime carrier used by the evaluator and the
// built-ins. Values are transient: they have no identity and are compared
// and copied structurally.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// String renders a debug representation (strings quoted, unlike FormatValue).
func (v Value) String() string {
	switch v.Tag {
	case VTStr:
		return quoteString(v.Data.(string))
	case VTArray:
		return fmt.Sprintf("<array len=%d>", len(v.Data.([]Value)))
	default:
		return FormatValue(v)
	}
}

// Primitive constructors for convenience.
func Num(f float64) Value  { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value   { return Value{Tag: VTStr, Data: s} }
func Bool(b bool) Value    { return Value{Tag: VTBool, Data: b} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// TypeName returns the user-facing name of a value's kind, as used in
// type-error messages.
func TypeName(v Value) string {
	switch v.Tag {
	case VTNum:
		return "Number"
	case VTStr:
		return "String"
	case VTBool:
		return "Boolean"
	case VTArray:
		return "Array"
	default:
		return "<unknown>"
	}
}

// Env is the single flat variable scope of one program run: a name→Value
// mapping with last-assignment-wins semantics. There is no parent chain
// because the language has no nested scopes.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env { return &Env{table: make(map[string]Value)} }

// Define binds name to v, overwriting any previous binding.
func (e *Env) Define(name string, v Value) { e.table[name] = v }

// Get retrieves the binding for name or returns an error.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	return Value{}, fmt.Errorf("undefined variable: %s", name)
}

// Names returns all bound names in sorted order (REPL completion).
func (e *Env) Names() []string {
	out := make([]string, 0, len(e.table))
	for k := range e.table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ErrKind discriminates runtime error categories; it selects the header used
// in user-facing messages.
type ErrKind int

const (
	ErrRuntime ErrKind = iota // division by zero and other evaluation failures
	ErrType                   // operator or built-in applied to a wrong value kind
	ErrName                   // undefined variable, unknown built-in
	ErrIndex                  // index out of bounds, negative, or fractional
)

func (k ErrKind) header() string {
	switch k {
	case ErrType:
		return "TYPE ERROR"
	case ErrName:
		return "NAME ERROR"
	case ErrIndex:
		return "INDEX ERROR"
	default:
		return "RUNTIME ERROR"
	}
}

// RuntimeError represents an execution-time failure with a source location.
// Line and Col are 1-based.
type RuntimeError struct {
	Kind ErrKind
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind.header(), e.Line, e.Col, e.Msg)
}

////////////////////////////////////////////////////////////////////////////////
//                               PUBLIC INTERPRETER
////////////////////////////////////////////////////////////////////////////////

// Interpreter executes NabeelScript programs.
//
// Fields:
//   - Globals — the program environment, persistent across Run* calls on the
//     same instance (the REPL relies on this).
//   - Out — sink for `print` output; defaults to os.Stdout.
type Interpreter struct {
	Globals *Env
	Out     io.Writer
}

// NewInterpreter returns a ready interpreter with an empty environment,
// printing to stdout.
func NewInterpreter() *Interpreter {
	return &Interpreter{Globals: NewEnv(), Out: os.Stdout}
}

// RunSource lexes, parses, and executes a complete source string.
// Returns nil, or the first *LexError/*ParseError/*RuntimeError encountered.
func (ip *Interpreter) RunSource(src string) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return ip.RunProgram(prog)
}

// RunProgram executes a parsed program statement by statement, fail-fast.
func (ip *Interpreter) RunProgram(prog []Stmt) error {
	return ip.protect(func() {
		for _, s := range prog {
			ip.exec(s)
		}
	})
}

// EvalExpr evaluates a single expression against the interpreter's
// environment (testing and embedding hook).
func (ip *Interpreter) EvalExpr(e Expr) (v Value, err error) {
	err = ip.protect(func() { v = ip.eval(e) })
	return v, err
}

//// END_OF_PUBLIC
