package ast

import (
	"fmt"

	"github.com/arr-ai/rex/gotree"
)

// BuildTreeView renders the expression as an indented tree for diagnostics.
func BuildTreeView(rootname string, root Expr) string {
	tree := gotree.New(rootname)
	tree.AddTree(fromExpr(root))
	return tree.Print()
}

func fromExpr(expr Expr) gotree.Tree {
	switch e := expr.(type) {
	case AnyCharNotNL:
		return gotree.New("AnyCharNotNL")
	case EmptyMatch:
		return gotree.New(fmt.Sprintf("EmptyMatch(%s)", e.Assert))
	case Literal:
		return gotree.New(fmt.Sprintf("Literal(%s)", escapeByte(e.Byte)))
	case ByteClass:
		return gotree.New(fmt.Sprintf("ByteClass%s", e.Set))
	case Capture:
		tree := gotree.New(fmt.Sprintf("Capture(%d)", e.Index))
		tree.AddTree(fromExpr(e.Expr))
		return tree
	case Repeat:
		max := "∞"
		if e.Max != Unbounded {
			max = fmt.Sprintf("%d", e.Max)
		}
		greed := "greedy"
		if !e.Greedy {
			greed = "lazy"
		}
		tree := gotree.New(fmt.Sprintf("Repeat{%d,%s %s}", e.Min, max, greed))
		tree.AddTree(fromExpr(e.Expr))
		return tree
	case Concat:
		tree := gotree.New("Concat")
		for _, child := range e.Exprs {
			tree.AddTree(fromExpr(child))
		}
		return tree
	case Alternate:
		tree := gotree.New("Alternate")
		for _, child := range e.Exprs {
			tree.AddTree(fromExpr(child))
		}
		return tree
	}
	return gotree.New(fmt.Sprintf("%T", expr))
}
