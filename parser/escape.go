package parser

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arr-ai/frozen"
)

// Escape decoding. The leading backslash has already been consumed when
// parseEscape is entered; the same decoder serves top-level atoms, class
// members and class range endpoints.

var controlEscapes = frozen.NewMap(
	frozen.KV(byte('a'), byte(0x07)),
	frozen.KV(byte('f'), byte(0x0C)),
	frozen.KV(byte('t'), byte(0x09)),
	frozen.KV(byte('n'), byte(0x0A)),
	frozen.KV(byte('r'), byte(0x0D)),
	frozen.KV(byte('v'), byte(0x0B)),
)

var punctEscapes = frozen.NewSet(
	byte('\\'), byte('.'), byte('+'), byte('*'), byte('?'),
	byte('('), byte(')'), byte('|'), byte('['), byte(']'),
	byte('{'), byte('}'), byte('^'), byte('$'),
)

func (p *parser) parseEscape() (byte, *ParseError) {
	c, ok := p.s.Next()
	if !ok {
		return 0, p.errorAt(OpenEscapeCode)
	}
	if c == 'x' {
		return p.parseHexEscape()
	}
	if isOctDigit(c) {
		// 1-3 octal digits, consumed greedily
		v := int(c - '0')
		for i := 0; i < 2; i++ {
			d, ok := p.s.Peek()
			if !ok || !isOctDigit(d) {
				break
			}
			p.s.Next()
			v = v*8 + int(d-'0')
		}
		return byte(v), nil
	}
	if v, has := controlEscapes.Get(c); has {
		return v, nil
	}
	if punctEscapes.Has(c) {
		return c, nil
	}
	return 0, p.errorAt(UnrecognizedEscapeCode)
}

// parseHexEscape decodes \xHH or \x{H+}; the 'x' has been consumed.
func (p *parser) parseHexEscape() (byte, *ParseError) {
	if p.s.Eat('{') {
		return p.parseHexCharCode()
	}
	v := 0
	for i := 0; i < 2; i++ {
		c, ok := p.s.Next()
		if !ok {
			return 0, p.errorAt(InvalidHexDigit)
		}
		d, isHex := hexDigit(c)
		if !isHex {
			return 0, p.errorAt(InvalidHexDigit)
		}
		v = v*16 + d
	}
	return byte(v), nil
}

// parseHexCharCode decodes the body of \x{H+}. The decoded value must be a
// Unicode scalar value, and the literal domain is a single byte, so
// anything above 0xFF is rejected as well.
func (p *parser) parseHexCharCode() (byte, *ParseError) {
	v := 0
	digits := 0
	for {
		c, ok := p.s.Peek()
		if !ok {
			return 0, p.errorAt(UnclosedHexCharacterCode)
		}
		if c == '}' {
			break
		}
		d, isHex := hexDigit(c)
		if !isHex {
			if digits == 0 {
				return 0, p.errorAt(InvalidHexDigit)
			}
			return 0, p.errorAt(UnclosedHexCharacterCode)
		}
		p.s.Next()
		digits++
		if v <= utf8.MaxRune {
			v = v*16 + d
		}
	}
	p.s.Next() // '}'
	switch {
	case digits == 0:
		return 0, p.errorAt(InvalidHexDigit)
	case v > utf8.MaxRune:
		return 0, p.errorAt(InvalidHexDigit)
	case utf16.IsSurrogate(rune(v)):
		return 0, p.errorAt(InvalidHexDigit)
	case v > 0xFF:
		// a valid scalar, but outside the byte-sized literal domain
		return 0, p.errorAt(InvalidHexDigit)
	}
	return byte(v), nil
}

func isOctDigit(c byte) bool { return '0' <= c && c <= '7' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
