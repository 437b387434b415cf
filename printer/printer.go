// Package printer stringifies type terms using the surface grammar
// consumed by the parser: base names verbatim, unknowns as u<id>, and
// right-associative arrows with parentheses only where needed to
// preserve that associativity on re-parse.
package printer

import (
	"strconv"
	"strings"

	"minihm/types"
)

// Print returns the deterministic surface-syntax spelling of t.
func Print(t types.Type) string {
	var sb strings.Builder
	print(&sb, t, false)
	return sb.String()
}

// print writes t to sb. When arg is true, t is being printed as the
// argument position of an enclosing Func, so a Func-shaped t is
// parenthesized to preserve right-associative reading on re-parse.
func print(sb *strings.Builder, t types.Type, arg bool) {
	switch t := t.(type) {
	case *types.Base:
		sb.WriteString(t.Name)

	case *types.Unknown:
		sb.WriteByte('u')
		sb.WriteString(strconv.Itoa(t.ID))

	case *types.Func:
		if arg {
			sb.WriteByte('(')
		}
		print(sb, t.Arg, true)
		sb.WriteString(" -> ")
		print(sb, t.Result, false)
		if arg {
			sb.WriteByte(')')
		}

	default:
		sb.WriteString("<invalid type>")
	}
}
