// Package ast defines the abstract syntax tree produced by parsing a regex
// pattern. Expr is a closed sum type: the parser is the only producer, and
// downstream compilers dispatch over the fixed set of variants.
package ast

import (
	"fmt"

	"github.com/arr-ai/rex/interval"
)

// Assertion identifies a zero-width match condition.
type Assertion int

const (
	AssertNone Assertion = iota
	AssertBeginLine
	AssertEndLine
	AssertBeginText
	AssertEndText
	AssertWordBoundary
	AssertNotWordBoundary
)

func (a Assertion) String() string {
	switch a {
	case AssertNone:
		return "None"
	case AssertBeginLine:
		return "BeginLine"
	case AssertEndLine:
		return "EndLine"
	case AssertBeginText:
		return "BeginText"
	case AssertEndText:
		return "EndText"
	case AssertWordBoundary:
		return "WordBoundary"
	case AssertNotWordBoundary:
		return "NotWordBoundary"
	}
	return fmt.Sprintf("Assertion(%d)", int(a))
}

// Unbounded marks a Repeat with no upper bound.
const Unbounded = -1

// Expr is one node of a pattern tree. Each node exclusively owns its
// children; a parsed tree contains no sharing and no cycles.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// AnyCharNotNL matches any byte except newline.
type AnyCharNotNL struct{}

// EmptyMatch matches the empty string, optionally constrained by a
// zero-width assertion.
type EmptyMatch struct {
	Assert Assertion
}

// Literal matches exactly one byte value.
type Literal struct {
	Byte byte
}

// ByteClass matches one byte drawn from a normalized range set.
type ByteClass struct {
	Set interval.Set
}

// Capture is a capturing group. Indices are assigned left to right at parse
// time, starting at 1, and never reused.
type Capture struct {
	Index int
	Expr  Expr
}

// Repeat matches its operand between Min and Max times. Max == Unbounded
// means no upper limit. A non-greedy repeat prefers the shortest match.
type Repeat struct {
	Expr   Expr
	Min    int
	Max    int
	Greedy bool
}

// Concat matches its children in sequence. A well-formed tree never holds a
// Concat of fewer than two children.
type Concat struct {
	Exprs []Expr
}

// Alternate tries its children in order, preferring the leftmost.
type Alternate struct {
	Exprs []Expr
}

func (AnyCharNotNL) isExpr() {}
func (EmptyMatch) isExpr()   {}
func (Literal) isExpr()      {}
func (ByteClass) isExpr()    {}
func (Capture) isExpr()      {}
func (Repeat) isExpr()       {}
func (Concat) isExpr()       {}
func (Alternate) isExpr()    {}

var (
	_ Expr = AnyCharNotNL{}
	_ Expr = EmptyMatch{}
	_ Expr = Literal{}
	_ Expr = ByteClass{}
	_ Expr = Capture{}
	_ Expr = Repeat{}
	_ Expr = Concat{}
	_ Expr = Alternate{}
)

// Walk visits expr and every descendant in pre-order. If fn returns false
// the children of the current node are skipped.
func Walk(expr Expr, fn func(Expr) bool) {
	if !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case Capture:
		Walk(e.Expr, fn)
	case Repeat:
		Walk(e.Expr, fn)
	case Concat:
		for _, child := range e.Exprs {
			Walk(child, fn)
		}
	case Alternate:
		for _, child := range e.Exprs {
			Walk(child, fn)
		}
	}
}

// MaxCaptureIndex returns the highest capture index in the tree, or 0 if it
// has no capturing groups.
func MaxCaptureIndex(expr Expr) int {
	max := 0
	Walk(expr, func(e Expr) bool {
		if c, ok := e.(Capture); ok && c.Index > max {
			max = c.Index
		}
		return true
	})
	return max
}
