// Package parser converts a regex pattern into an abstract syntax tree.
//
// The grammar is handled by a single pass over the pattern bytes with an
// explicit working stack of finished nodes and structural markers, so group
// nesting depth is bounded by available memory rather than by the call
// stack. One Parse call owns all of its state; independent patterns may be
// parsed concurrently.
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/arr-ai/rex/ast"
)

// Parse converts pattern to its AST, or fails with a *ParseError carrying
// one of the closed set of error kinds.
func Parse(pattern string) (ast.Expr, error) {
	p := &parser{s: NewScanner(pattern)}
	expr, err := p.parse()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

type parser struct {
	s        *Scanner
	stack    []entry
	captures int // capture indices assigned left to right, starting at 1
}

// entry is one working-stack slot: either a finished node, or a structural
// marker for an open group or alternation boundary. Markers never appear in
// a returned tree.
type entry struct {
	expr ast.Expr

	marker      bool
	capturing   bool // marker opens a capturing group
	capIndex    int
	alternation bool // marker is an alternation separator

	// fromRepeat marks a node produced directly by a repeat operator, so
	// that bare quantifiers cannot chain without an intervening group.
	fromRepeat bool
}

func (p *parser) parse() (ast.Expr, *ParseError) {
	for {
		c, ok := p.s.Next()
		if !ok {
			break
		}
		logrus.Tracef("parse: %q at %d, stack depth %d", c, p.s.Offset()-1, len(p.stack))
		var err *ParseError
		switch c {
		case '.':
			p.push(ast.AnyCharNotNL{})
		case '^':
			p.push(ast.EmptyMatch{Assert: ast.AssertBeginLine})
		case '$':
			p.push(ast.EmptyMatch{Assert: ast.AssertEndLine})
		case '(':
			p.captures++
			p.stack = append(p.stack, entry{marker: true, capturing: true, capIndex: p.captures})
		case ')':
			err = p.closeGroup()
		case '|':
			err = p.alternate()
		case '*':
			err = p.applyRepeat(0, ast.Unbounded)
		case '+':
			err = p.applyRepeat(1, ast.Unbounded)
		case '?':
			err = p.applyRepeat(0, 1)
		case '{':
			err = p.applyBraceRepeat()
		case '[':
			var class ast.Expr
			if class, err = p.parseClass(); err == nil {
				p.push(class)
			}
		case '\\':
			var b byte
			if b, err = p.parseEscape(); err == nil {
				p.push(ast.Literal{Byte: b})
			}
		default:
			p.push(ast.Literal{Byte: c})
		}
		if err != nil {
			return nil, err
		}
	}
	return p.finish()
}

func (p *parser) push(e ast.Expr) {
	p.stack = append(p.stack, entry{expr: e})
}

func (p *parser) errorAt(kind ErrorKind) *ParseError {
	return newParseError(kind, p.s)
}

// reduceConcat folds the finished entries above the nearest marker into one
// node. ok is false when there was nothing to fold.
func (p *parser) reduceConcat() (node ast.Expr, ok bool) {
	i := len(p.stack)
	for i > 0 && !p.stack[i-1].marker {
		i--
	}
	run := p.stack[i:]
	switch len(run) {
	case 0:
		return nil, false
	case 1:
		node = run[0].expr
	default:
		exprs := make([]ast.Expr, 0, len(run))
		for _, e := range run {
			exprs = append(exprs, e.expr)
		}
		node = ast.Concat{Exprs: exprs}
	}
	p.stack = p.stack[:i]
	return node, true
}

// alternate handles '|': fold the current run into one branch and leave an
// alternation marker above it.
func (p *parser) alternate() *ParseError {
	node, ok := p.reduceConcat()
	if !ok {
		return p.errorAt(EmptyAlternate)
	}
	p.push(node)
	p.stack = append(p.stack, entry{marker: true, alternation: true})
	return nil
}

// reduceLevel folds everything since the nearest group boundary into a
// single node: the current run, plus any alternation branches accumulated
// at this level. An empty run terminating an alternation branch is an
// error; an empty run on its own collapses to EmptyMatch.
func (p *parser) reduceLevel() (ast.Expr, *ParseError) {
	node, ok := p.reduceConcat()
	if !ok {
		if p.topIsAlternation() {
			return nil, p.errorAt(EmptyAlternate)
		}
		node = ast.EmptyMatch{Assert: ast.AssertNone}
	}
	if !p.topIsAlternation() {
		return node, nil
	}
	branches := []ast.Expr{node}
	for p.topIsAlternation() {
		p.stack = p.stack[:len(p.stack)-1] // the alternation marker
		branch := p.stack[len(p.stack)-1]  // the folded branch beneath it
		p.stack = p.stack[:len(p.stack)-1]
		branches = append([]ast.Expr{branch.expr}, branches...)
	}
	logrus.Tracef("reduce: %d alternation branch(es)", len(branches))
	return ast.Alternate{Exprs: branches}, nil
}

func (p *parser) topIsAlternation() bool {
	n := len(p.stack)
	return n > 0 && p.stack[n-1].marker && p.stack[n-1].alternation
}

// closeGroup handles ')': reduce the level, pop the matching group marker
// and wrap the result in a capture.
func (p *parser) closeGroup() *ParseError {
	if !p.hasOpenGroup() {
		return p.errorAt(UnopenedParentheses)
	}
	node, err := p.reduceLevel()
	if err != nil {
		return err
	}
	m := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.push(ast.Capture{Index: m.capIndex, Expr: node})
	return nil
}

func (p *parser) hasOpenGroup() bool {
	for _, e := range p.stack {
		if e.marker && e.capturing {
			return true
		}
	}
	return false
}

// finish performs the end-of-input reduction. The stack must fully reduce
// to one node; a leftover entry can only be an unclosed group marker.
func (p *parser) finish() (ast.Expr, *ParseError) {
	node, err := p.reduceLevel()
	if err != nil {
		return nil, err
	}
	if len(p.stack) != 0 {
		return nil, p.errorAt(UnclosedParentheses)
	}
	return node, nil
}

// applyRepeat handles '*', '+', '?' and a decoded brace count. A trailing
// '?' flips the quantifier from greedy to lazy rather than reading as a
// second repeat.
func (p *parser) applyRepeat(min, max int) *ParseError {
	greedy := !p.s.Eat('?')
	return p.pushRepeat(min, max, greedy)
}

func (p *parser) applyBraceRepeat() *ParseError {
	min, max, err := p.parseRepeatCount()
	if err != nil {
		return err
	}
	return p.applyRepeat(min, max)
}

// pushRepeat replaces the top finished entry with a repeat of it. The top
// entry must exist, not be a marker, and not itself have just been produced
// by a repeat: bare quantifiers do not chain, though a repeat applied to an
// explicitly grouped repeat is legal because the group reduction clears the
// flag.
func (p *parser) pushRepeat(min, max int, greedy bool) *ParseError {
	top := len(p.stack) - 1
	if top < 0 || p.stack[top].marker || p.stack[top].fromRepeat {
		return p.errorAt(MissingRepeatOperand)
	}
	p.stack[top] = entry{
		expr:       ast.Repeat{Expr: p.stack[top].expr, Min: min, Max: max, Greedy: greedy},
		fromRepeat: true,
	}
	return nil
}
