package nabeelscript

import "testing"

func Test_Builtins_Split(t *testing.T) {
	wantOutput(t, `print split("Hello world", " ");`, "[Hello, world]\n")
	wantOutput(t, `print split("Hello world", " ")[1];`, "world\n")
	wantOutput(t, `print split("a,b,c", ",");`, "[a, b, c]\n")
	// No separator match: single-element array.
	wantOutput(t, `print split("abc", "-");`, "[abc]\n")
	// Empty separator splits into characters.
	wantOutput(t, `print split("ab", "");`, "[a, b]\n")
}

func Test_Builtins_Join(t *testing.T) {
	wantOutput(t, `print join(["a", "b", "c"], "-");`, "a-b-c\n")
	wantOutput(t, `print join([1, 2, 3], ", ");`, "1, 2, 3\n")
	wantOutput(t, `print join([], "-");`, "\n")
	// Elements use the print rendering, including nested arrays.
	wantOutput(t, `print join([true, [1, 2]], "|");`, "true|[1, 2]\n")
}

func Test_Builtins_SplitJoinRoundTrip(t *testing.T) {
	wantOutput(t, `print join(split("a b c", " "), " ");`, "a b c\n")
}

func Test_Builtins_Count(t *testing.T) {
	wantOutput(t, `print count("hello");`, "5\n")
	wantOutput(t, `print count("");`, "0\n")
	wantOutput(t, `print count([1, 2, 3]);`, "3\n")
	wantOutput(t, `print count([]);`, "0\n")
	// Runes, not bytes.
	wantOutput(t, `print count("héllo");`, "5\n")
}

func Test_Builtins_ArityErrors(t *testing.T) {
	wantFail(t, `print split("a b");`, ErrType, "split expects 2 argument(s), got 1")
	wantFail(t, `print join(["a"]);`, ErrType, "join expects 2 argument(s), got 1")
	wantFail(t, `print count();`, ErrType, "count expects 1 argument(s), got 0")
	wantFail(t, `print count("a", "b");`, ErrType, "count expects 1 argument(s), got 2")
}

func Test_Builtins_OperandTypeErrors(t *testing.T) {
	wantFail(t, `print split(1, " ");`, ErrType, "split expects (String, String), got (Number, String)")
	wantFail(t, `print split("a", 1);`, ErrType, "split expects (String, String), got (String, Number)")
	wantFail(t, `print join("ab", "-");`, ErrType, "join expects (Array, String), got (String, String)")
	wantFail(t, `print join([1], 2);`, ErrType, "join expects (Array, String), got (Array, Number)")
	wantFail(t, `print count(1);`, ErrType, "count expects a String or an Array, got Number")
	wantFail(t, `print count(true);`, ErrType, "count expects a String or an Array, got Boolean")
}

func Test_Builtins_UnknownFunction(t *testing.T) {
	wantFail(t, `print length("abc");`, ErrName, "unknown function: length")
}

func Test_Builtins_ArgumentsEvaluatedAfterArityCheck(t *testing.T) {
	// Arity is checked first, so a bad argument expression never runs.
	wantFail(t, `print count(1/0, 2);`, ErrType, "count expects 1 argument(s)")
}

func Test_Builtins_Names(t *testing.T) {
	names := BuiltinNames()
	want := []string{"count", "join", "split"}
	if len(names) != len(want) {
		t.Fatalf("want %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("want %v, got %v", want, names)
		}
	}
}
