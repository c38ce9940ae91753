// printer.go — textual rendering of runtime values.
//
// FormatValue is the single rendering rule shared by `print` and `join`:
//   - Number: no decimal point when the value is integral, shortest float
//     form otherwise.
//   - Boolean: "true" / "false".
//   - String: raw characters, no quotes.
//   - Array: "[a, b, c]" with elements rendered recursively by the same rule.
package nabeelscript

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders v for program output.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return formatNumber(v.Data.(float64))
	case VTStr:
		return v.Data.(string)
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTArray:
		xs := v.Data.([]Value)
		parts := make([]string, len(xs))
		for i := range xs {
			parts[i] = FormatValue(xs[i])
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<unknown>"
	}
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
