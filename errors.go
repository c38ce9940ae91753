// errors.go — user-facing error wrapping and caret-snippet rendering.
//
// WrapErrorWithName turns the interpreter's diagnostics (*LexError,
// *ParseError, *RuntimeError) into readable snippets with a caret pointing at
// the offending column:
//
//	PARSE ERROR in demo.nb at 2:9: expected ';' after assignment, found ")"
//
//	   1 | x = 10;
//	   2 | y = (x )
//	     |         ^
//	   3 | print y;
//
// The snippet shows up to one line of context before and after, numbers the
// lines, and places the caret under the 1-based column. Any other error kind
// is returned unchanged. Lex/parse columns are stored 0-based and rendered
// 1-based; RuntimeError columns are already 1-based.
package nabeelscript

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src. Non-diagnostic errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName is WrapErrorWithSource with a source name ("in <name>")
// included in the header when non-empty.
func WrapErrorWithName(err error, srcName string, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, "LEXICAL ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, "PARSE ERROR", srcName, e.Line, e.Col+1, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", snippet(src, e.Kind.header(), srcName, e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

// snippet builds the header plus caret block. Coordinates are 1-based and
// clamped to the source bounds so rendering never panics on short input.
func snippet(src, header, name string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
