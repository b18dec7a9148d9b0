// Package codegen renders a parsed pattern as Go source: a var holding the
// tree as an ast composite literal, ready to hand to a compiler stage
// without re-parsing at runtime.
package codegen

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/rex/ast"
)

type TemplateData struct {
	CommandLine  string
	PackageName  string
	VarName      string
	Pattern      string
	ExprLiteral  string
	UsesInterval bool
}

// MakeTemplateData assembles everything the source template needs for one
// parsed pattern.
func MakeTemplateData(cmdline, pkg, name, pattern string, expr ast.Expr) TemplateData {
	usesInterval := false
	ast.Walk(expr, func(e ast.Expr) bool {
		if _, ok := e.(ast.ByteClass); ok {
			usesInterval = true
		}
		return true
	})
	return TemplateData{
		CommandLine:  cmdline,
		PackageName:  pkg,
		VarName:      GoVarName(name),
		Pattern:      pattern,
		ExprLiteral:  ExprLiteral(expr),
		UsesInterval: usesInterval,
	}
}

// GoVarName derives an exported Go identifier for the generated var.
func GoVarName(name string) string {
	return strcase.ToCamel(name)
}

var tmpl = template.Must(template.New("pattern").Parse(`// Code generated by rex gen{{if .CommandLine}} ({{.CommandLine}}){{end}}. DO NOT EDIT.

package {{.PackageName}}

import (
	"github.com/arr-ai/rex/ast"
{{- if .UsesInterval}}
	"github.com/arr-ai/rex/interval"
{{- end}}
)

// {{.VarName}} is the syntax tree of the pattern {{printf "%q" .Pattern}}.
var {{.VarName}} ast.Expr = {{.ExprLiteral}}
`))

// Write renders the generated source for data to w.
func Write(w io.Writer, data TemplateData) error {
	return tmpl.Execute(w, data)
}

// ExprLiteral renders expr as a Go composite literal.
func ExprLiteral(expr ast.Expr) string {
	var sb strings.Builder
	writeExpr(&sb, expr, 0)
	return sb.String()
}

func writeExpr(sb *strings.Builder, expr ast.Expr, depth int) {
	ind := strings.Repeat("\t", depth)
	switch e := expr.(type) {
	case ast.AnyCharNotNL:
		sb.WriteString("ast.AnyCharNotNL{}")
	case ast.EmptyMatch:
		fmt.Fprintf(sb, "ast.EmptyMatch{Assert: ast.Assert%s}", e.Assert)
	case ast.Literal:
		fmt.Fprintf(sb, "ast.Literal{Byte: %#x}", e.Byte)
	case ast.ByteClass:
		sb.WriteString("ast.ByteClass{Set: interval.Of(")
		for i, r := range e.Set.Ranges() {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "interval.Range{Lo: %#x, Hi: %#x}", r.Lo, r.Hi)
		}
		sb.WriteString(")}")
	case ast.Capture:
		fmt.Fprintf(sb, "ast.Capture{\n%s\tIndex: %d,\n%s\tExpr: ", ind, e.Index, ind)
		writeExpr(sb, e.Expr, depth+1)
		fmt.Fprintf(sb, ",\n%s}", ind)
	case ast.Repeat:
		max := fmt.Sprintf("%d", e.Max)
		if e.Max == ast.Unbounded {
			max = "ast.Unbounded"
		}
		fmt.Fprintf(sb, "ast.Repeat{\n%s\tMin: %d, Max: %s, Greedy: %v,\n%s\tExpr: ", ind, e.Min, max, e.Greedy, ind)
		writeExpr(sb, e.Expr, depth+1)
		fmt.Fprintf(sb, ",\n%s}", ind)
	case ast.Concat:
		writeExprList(sb, "ast.Concat", e.Exprs, depth)
	case ast.Alternate:
		writeExprList(sb, "ast.Alternate", e.Exprs, depth)
	}
}

func writeExprList(sb *strings.Builder, name string, exprs []ast.Expr, depth int) {
	ind := strings.Repeat("\t", depth)
	fmt.Fprintf(sb, "%s{Exprs: []ast.Expr{\n", name)
	for _, child := range exprs {
		sb.WriteString(ind + "\t")
		writeExpr(sb, child, depth+1)
		sb.WriteString(",\n")
	}
	sb.WriteString(ind + "}}")
}
