package parser

import "github.com/arr-ai/rex/ast"

// Brace repeat counts: '{' ws* number (',' ws* number?)? ws* '}', where ws
// is ASCII space or tab. The syntactic checks fire in a fixed order:
// a bound that cannot begin (InvalidRepeatArgument), then a missing or
// malformed terminator (UnclosedRepeat), then numeric limits
// (ExcessiveRepeatCount). Only a fully valid count is tested against its
// operand.

const maxRepeatCount = 0xFFFF

// parseRepeatCount decodes the count body; the '{' has been consumed.
// max is ast.Unbounded for the '{m,}' form.
func (p *parser) parseRepeatCount() (min, max int, err *ParseError) {
	p.skipCountSpace()
	min, ok := p.scanCountNumber()
	if !ok {
		return 0, 0, p.errorAt(InvalidRepeatArgument)
	}
	max = min
	p.skipCountSpace()
	if p.s.Eat(',') {
		p.skipCountSpace()
		if c, ok := p.s.Peek(); ok && isDigit(c) {
			max, _ = p.scanCountNumber()
			p.skipCountSpace()
		} else if ok && c != '}' {
			return 0, 0, p.errorAt(InvalidRepeatArgument)
		} else {
			max = ast.Unbounded
		}
	}
	if c, ok := p.s.Next(); !ok || c != '}' {
		return 0, 0, p.errorAt(UnclosedRepeat)
	}
	if min > maxRepeatCount || max > maxRepeatCount {
		return 0, 0, p.errorAt(ExcessiveRepeatCount)
	}
	if max != ast.Unbounded && min > max {
		return 0, 0, p.errorAt(InvalidRepeatArgument)
	}
	return min, max, nil
}

// scanCountNumber consumes a run of ASCII digits. Values beyond the repeat
// ceiling saturate so that arbitrarily long digit runs cannot overflow; the
// ceiling check itself happens once the count is terminated.
func (p *parser) scanCountNumber() (int, bool) {
	v := 0
	seen := false
	for {
		c, ok := p.s.Peek()
		if !ok || !isDigit(c) {
			break
		}
		p.s.Next()
		seen = true
		if v <= maxRepeatCount {
			v = v*10 + int(c-'0')
		}
	}
	return v, seen
}

func (p *parser) skipCountSpace() {
	for {
		c, ok := p.s.Peek()
		if !ok || (c != ' ' && c != '\t') {
			return
		}
		p.s.Next()
	}
}
