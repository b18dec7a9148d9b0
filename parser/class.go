package parser

import (
	"github.com/arr-ai/rex/ast"
	"github.com/arr-ai/rex/interval"
)

// parseClass parses a bracket expression; the '[' has been consumed.
//
// POSIX conventions apply: a ']' as the very first member (after '[' or
// '[^') is a literal, and a '-' immediately before the terminating ']' is a
// literal. Members are bytes, decoded escapes, or ranges with byte or
// decoded-escape endpoints.
func (p *parser) parseClass() (ast.Expr, *ParseError) {
	negate := p.s.Eat('^')
	set := interval.Set{}
	first := true
	for {
		c, ok := p.s.Peek()
		if !ok {
			return nil, p.errorAt(UnclosedBrackets)
		}
		if c == ']' && !first {
			p.s.Next()
			break
		}
		first = false
		lo, err := p.parseClassEndpoint()
		if err != nil {
			return nil, err
		}
		if d, ok := p.s.Peek(); ok && d == '-' {
			if e, ok := p.s.PeekAt(1); ok && e != ']' {
				p.s.Next() // '-'
				hi, err := p.parseClassEndpoint()
				if err != nil {
					return nil, err
				}
				set.Add(lo, hi)
				continue
			}
		}
		set.AddByte(lo)
	}
	set.Normalize()
	if negate {
		set.Complement()
	}
	return ast.ByteClass{Set: set}, nil
}

// parseClassEndpoint consumes one class member or range endpoint.
func (p *parser) parseClassEndpoint() (byte, *ParseError) {
	c, ok := p.s.Next()
	if !ok {
		return 0, p.errorAt(UnclosedBrackets)
	}
	if c == '\\' {
		return p.parseEscape()
	}
	return c, nil
}
