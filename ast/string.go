package ast

import (
	"fmt"
	"strings"
)

// String renders the expression as pattern text. Re-parsing the result of a
// parsed tree yields a structurally equal tree; assertions beyond the line
// anchors only arise in hand-built trees and render as their conventional
// escapes.

func (AnyCharNotNL) String() string { return "." }

func (e EmptyMatch) String() string {
	switch e.Assert {
	case AssertBeginLine:
		return "^"
	case AssertEndLine:
		return "$"
	case AssertBeginText:
		return `\A`
	case AssertEndText:
		return `\z`
	case AssertWordBoundary:
		return `\b`
	case AssertNotWordBoundary:
		return `\B`
	}
	return ""
}

func (e Literal) String() string { return escapeByte(e.Byte) }

func (e ByteClass) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, r := range e.Set.Ranges() {
		sb.WriteString(classByte(r.Lo))
		if r.Lo != r.Hi {
			sb.WriteByte('-')
			sb.WriteString(classByte(r.Hi))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (e Capture) String() string { return "(" + e.Expr.String() + ")" }

func (e Repeat) String() string {
	var suffix string
	switch {
	case e.Min == 0 && e.Max == 1:
		suffix = "?"
	case e.Min == 0 && e.Max == Unbounded:
		suffix = "*"
	case e.Min == 1 && e.Max == Unbounded:
		suffix = "+"
	case e.Max == Unbounded:
		suffix = fmt.Sprintf("{%d,}", e.Min)
	case e.Min == e.Max:
		suffix = fmt.Sprintf("{%d}", e.Min)
	default:
		suffix = fmt.Sprintf("{%d,%d}", e.Min, e.Max)
	}
	if !e.Greedy {
		suffix += "?"
	}
	return e.Expr.String() + suffix
}

func (e Concat) String() string {
	var sb strings.Builder
	for _, child := range e.Exprs {
		sb.WriteString(child.String())
	}
	return sb.String()
}

func (e Alternate) String() string {
	parts := make([]string, 0, len(e.Exprs))
	for _, child := range e.Exprs {
		parts = append(parts, child.String())
	}
	return strings.Join(parts, "|")
}

const metachars = `\.+*?()|[]{}^$`

var controlEscapes = map[byte]string{
	0x07: `\a`,
	0x09: `\t`,
	0x0A: `\n`,
	0x0B: `\v`,
	0x0C: `\f`,
	0x0D: `\r`,
}

func escapeByte(b byte) string {
	if strings.IndexByte(metachars, b) >= 0 {
		return `\` + string(b)
	}
	if esc, ok := controlEscapes[b]; ok {
		return esc
	}
	if b >= 0x20 && b <= 0x7E {
		return string(b)
	}
	return fmt.Sprintf(`\x%02x`, b)
}

// classByte renders one range endpoint inside a bracket expression. A dash
// is rendered as a hex escape so it can never read as a range operator.
func classByte(b byte) string {
	switch b {
	case '\\', ']', '^', '[':
		return `\` + string(b)
	case '-':
		return `\x2d`
	}
	if esc, ok := controlEscapes[b]; ok {
		return esc
	}
	if b >= 0x20 && b <= 0x7E {
		return string(b)
	}
	return fmt.Sprintf(`\x%02x`, b)
}
