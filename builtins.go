// builtins.go — registry of NabeelScript's built-in functions.
//
// Built-ins are invoked with call syntax (`split("a b", " ")`) and have a
// fixed name, arity, and operand contract. Arity is checked by the evaluator
// before arguments are evaluated; operand kinds are checked here. Failures
// are type errors naming the built-in.
package nabeelscript

import (
	"sort"
	"strings"
)

type builtinImpl func(call *CallExpr, args []Value) Value

type builtinSpec struct {
	name  string
	arity int
	impl  builtinImpl
}

var builtins = map[string]builtinSpec{}

func register(name string, arity int, impl builtinImpl) {
	builtins[name] = builtinSpec{name: name, arity: arity, impl: impl}
}

// BuiltinNames returns the registered built-in names in sorted order
// (REPL completion).
func BuiltinNames() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	registerCoreBuiltins()
}

func registerCoreBuiltins() {
	// split(text, sep) -> [String]: split text on every occurrence of sep.
	register("split", 2, func(call *CallExpr, args []Value) Value {
		if args[0].Tag != VTStr || args[1].Tag != VTStr {
			failAt(ErrType, call.At, "split expects (String, String), got (%s, %s)",
				TypeName(args[0]), TypeName(args[1]))
		}
		parts := strings.Split(args[0].Data.(string), args[1].Data.(string))
		out := make([]Value, len(parts))
		for i := range parts {
			out[i] = Str(parts[i])
		}
		return Arr(out)
	})

	// join(array, sep) -> String: render each element with the print
	// rendering and interleave sep.
	register("join", 2, func(call *CallExpr, args []Value) Value {
		if args[0].Tag != VTArray || args[1].Tag != VTStr {
			failAt(ErrType, call.At, "join expects (Array, String), got (%s, %s)",
				TypeName(args[0]), TypeName(args[1]))
		}
		xs := args[0].Data.([]Value)
		strs := make([]string, len(xs))
		for i := range xs {
			strs[i] = FormatValue(xs[i])
		}
		return Str(strings.Join(strs, args[1].Data.(string)))
	})

	// count(str_or_array) -> Number: characters of a String (runes, so
	// multi-byte text counts per character), elements of an Array.
	register("count", 1, func(call *CallExpr, args []Value) Value {
		switch args[0].Tag {
		case VTStr:
			return Num(float64(len([]rune(args[0].Data.(string)))))
		case VTArray:
			return Num(float64(len(args[0].Data.([]Value))))
		}
		failAt(ErrType, call.At, "count expects a String or an Array, got %s", TypeName(args[0]))
		return Value{}
	})
}
