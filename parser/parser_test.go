package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/rex/ast"
	"github.com/arr-ai/rex/interval"
)

func assertParsesAs(t *testing.T, expected ast.Expr, pattern string) bool {
	expr, err := Parse(pattern)
	return assert.NoError(t, err, "pattern %q", pattern) &&
		assert.Equal(t, expected, expr, "pattern %q", pattern)
}

func assertParseFails(t *testing.T, kind ErrorKind, pattern string) bool {
	_, err := Parse(pattern)
	if !assert.Error(t, err, "pattern %q", pattern) {
		return false
	}
	perr, ok := err.(*ParseError)
	return assert.True(t, ok, "pattern %q returned %T, not *ParseError", pattern, err) &&
		assert.Equal(t, kind, perr.Kind, "pattern %q: got %v, want %v", pattern, perr.Kind, kind)
}

func lit(b byte) ast.Expr { return ast.Literal{Byte: b} }

func cat(exprs ...ast.Expr) ast.Expr { return ast.Concat{Exprs: exprs} }

func alt(exprs ...ast.Expr) ast.Expr { return ast.Alternate{Exprs: exprs} }

func grp(index int, e ast.Expr) ast.Expr { return ast.Capture{Index: index, Expr: e} }

func rep(min, max int, greedy bool, e ast.Expr) ast.Expr {
	return ast.Repeat{Expr: e, Min: min, Max: max, Greedy: greedy}
}

func class(ranges ...interval.Range) ast.Expr {
	return ast.ByteClass{Set: interval.Of(ranges...)}
}

func TestParseEmptyPattern(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, ast.EmptyMatch{Assert: ast.AssertNone}, "")
}

func TestParseLiterals(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, lit('a'), "a")
	assertParsesAs(t, cat(lit('a'), lit('b')), "ab")
	assertParsesAs(t, cat(lit('a'), lit('b'), lit('c')), "abc")

	// stray ']' and '}' are ordinary literals
	assertParsesAs(t, lit(']'), "]")
	assertParsesAs(t, cat(lit('a'), lit('}')), "a}")
}

func TestParseDotAndAnchors(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, ast.AnyCharNotNL{}, ".")
	assertParsesAs(t, cat(
		ast.EmptyMatch{Assert: ast.AssertBeginLine},
		lit('a'),
		ast.EmptyMatch{Assert: ast.AssertEndLine},
	), "^a$")
}

func TestParseQuantifiers(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		pattern string
		want    ast.Expr
	}{
		{"a?", rep(0, 1, true, lit('a'))},
		{"a??", rep(0, 1, false, lit('a'))},
		{"a*", rep(0, ast.Unbounded, true, lit('a'))},
		{"a*?", rep(0, ast.Unbounded, false, lit('a'))},
		{"a+", rep(1, ast.Unbounded, true, lit('a'))},
		{"a+?", rep(1, ast.Unbounded, false, lit('a'))},
		{"a{5}", rep(5, 5, true, lit('a'))},
		{"a{5}?", rep(5, 5, false, lit('a'))},
		{"a{5,}", rep(5, ast.Unbounded, true, lit('a'))},
		{"a{5,8}", rep(5, 8, true, lit('a'))},
		{"a{5,8}?", rep(5, 8, false, lit('a'))},
		{"a{ 5 }", rep(5, 5, true, lit('a'))},
		{"a{\t5,\t8 }", rep(5, 8, true, lit('a'))},
		{"a{0,1}", rep(0, 1, true, lit('a'))},
	} {
		assertParsesAs(t, test.want, test.pattern)
	}
}

func TestParseQuantifierBinding(t *testing.T) {
	t.Parallel()

	// a repeat consumes only the immediately preceding atom
	assertParsesAs(t, cat(lit('a'), rep(0, ast.Unbounded, true, lit('b'))), "ab*")
	assertParsesAs(t, rep(0, ast.Unbounded, true, grp(1, cat(lit('a'), lit('b')))), "(ab)*")
}

func TestParseRepeatOfGroupedRepeat(t *testing.T) {
	t.Parallel()

	// bare quantifiers cannot chain, but a group reduction makes the
	// result repeatable again
	assertParsesAs(t,
		rep(0, ast.Unbounded, true, grp(1, rep(0, ast.Unbounded, true, lit('a')))),
		"(a*)*")
	assertParseFails(t, MissingRepeatOperand, "a**")
}

func TestParseAlternation(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, alt(lit('a'), lit('b')), "a|b")
	assertParsesAs(t, alt(lit('a'), lit('b'), lit('c')), "a|b|c")
	assertParsesAs(t, alt(cat(lit('a'), lit('b')), cat(lit('c'), lit('d'))), "ab|cd")
}

func TestParseGroups(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, grp(1, lit('a')), "(a)")
	assertParsesAs(t, grp(1, cat(lit('a'), lit('b'))), "(ab)")
	assertParsesAs(t, grp(1, ast.EmptyMatch{Assert: ast.AssertNone}), "()")
	assertParsesAs(t, grp(1, alt(lit('a'), lit('b'), lit('c'))), "(a|b|c)")
}

func TestParseNestedGroups(t *testing.T) {
	t.Parallel()
	assertParsesAs(t,
		grp(1, alt(
			cat(lit('a'), lit('b')),
			grp(2, alt(
				cat(lit('b'), lit('c')),
				grp(3, cat(lit('c'), lit('d'))),
			)),
		)),
		"(ab|(bc|(cd)))")
}

func TestParseCaptureIndexes(t *testing.T) {
	t.Parallel()

	expr, err := Parse("(a)(b)((c))")
	require.NoError(t, err)
	assert.Equal(t, cat(
		grp(1, lit('a')),
		grp(2, lit('b')),
		grp(3, grp(4, lit('c'))),
	), expr)
	assert.Equal(t, 4, ast.MaxCaptureIndex(expr))
}

func TestParseCharClasses(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		pattern string
		want    ast.Expr
	}{
		{"[a]", class(interval.Range{Lo: 'a', Hi: 'a'})},
		{"[^a]", class(interval.Range{Lo: 0, Hi: 96}, interval.Range{Lo: 98, Hi: 255})},
		{"[]]", class(interval.Range{Lo: ']', Hi: ']'})},
		{"[-]]", cat(class(interval.Range{Lo: '-', Hi: '-'}), lit(']'))},
		{"[a-c]", class(interval.Range{Lo: 'a', Hi: 'c'})},
		{"[a-]", class(interval.Range{Lo: '-', Hi: '-'}, interval.Range{Lo: 'a', Hi: 'a'})},
		{"[a-cx]", class(interval.Range{Lo: 'a', Hi: 'c'}, interval.Range{Lo: 'x', Hi: 'x'})},
		{"[a-cb-e]", class(interval.Range{Lo: 'a', Hi: 'e'})},
		{"[a-cd-e]", class(interval.Range{Lo: 'a', Hi: 'e'})},
		{"[z-a]", class(interval.Range{Lo: 'a', Hi: 'z'})},
		{"[\\n]", class(interval.Range{Lo: 0x0A, Hi: 0x0A})},
		{"[\\x41-\\x43]", class(interval.Range{Lo: 'A', Hi: 'C'})},
		{"[\\]a]", class(interval.Range{Lo: ']', Hi: ']'}, interval.Range{Lo: 'a', Hi: 'a'})},
		{"[^\\x00-\\xfe]", class(interval.Range{Lo: 0xFF, Hi: 0xFF})},
	} {
		assertParsesAs(t, test.want, test.pattern)
	}
}

func TestParseControlEscapes(t *testing.T) {
	t.Parallel()
	for pattern, b := range map[string]byte{
		`\a`: 0x07,
		`\f`: 0x0C,
		`\t`: 0x09,
		`\n`: 0x0A,
		`\r`: 0x0D,
		`\v`: 0x0B,
	} {
		assertParsesAs(t, lit(b), pattern)
	}
}

func TestParsePunctuationEscapes(t *testing.T) {
	t.Parallel()
	for _, c := range []byte(`\.+*?()|[]{}^$`) {
		assertParsesAs(t, lit(c), `\`+string(c))
	}
}

func TestParseOctalEscapes(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, lit(83), `\123`)
	assertParsesAs(t, cat(lit(83), lit('4')), `\1234`)
	assertParsesAs(t, lit(0), `\0`)
	assertParsesAs(t, lit(10), `\12`)
	assertParsesAs(t, cat(lit(0o12), lit('9')), `\129`)
}

func TestParseHexEscapes(t *testing.T) {
	t.Parallel()
	assertParsesAs(t, lit(83), `\x53`)
	assertParsesAs(t, lit(83), `\x{53}`)
	assertParsesAs(t, lit(0x53), `\x{0053}`)
	assertParsesAs(t, lit(0xFF), `\xff`)
	assertParsesAs(t, lit(0xFF), `\xFF`)
	assertParsesAs(t, cat(lit(0x53), lit('1')), `\x531`)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	for kind, patterns := range map[ErrorKind][]string{
		MissingRepeatOperand: {
			`*`, `+`, `?`, `a**`, `a*{5}`, `(*)`, `{5}`, `a*??`, `(a|*)`,
		},
		InvalidRepeatArgument: {
			`a{}`, `a{xyz}`, `a{xyz`, `a{12,xyz}`, `a{12,xyz`, `a{3,2}`,
		},
		UnclosedRepeat: {
			`a{5`, `a{12x}`, `a{1,12x}`, `a{5,`, `a{ 5`,
		},
		ExcessiveRepeatCount: {
			`a{999999999999}`, `a{1,999999}`, `a{999999,}`,
		},
		EmptyAlternate: {
			`|a`, `a|`, `a||b`, `(|a)`, `(a|)`, `|`,
		},
		UnopenedParentheses: {
			`)`, `a)b`, `(a))`,
		},
		UnclosedParentheses: {
			`(`, `(a|b`, `((a)`,
		},
		OpenEscapeCode: {
			`\`,
		},
		UnrecognizedEscapeCode: {
			`\m`, `\d`, `\w`, `[\A]`, `[a-\A]`,
		},
		InvalidHexDigit: {
			`\xZ1`, `\x5Z`, `\x5`, `\x`, `\x{}`, `\x{zz}`,
			`\x{D800}`, `\x{DFFF}`, `\x{110000}`, `\x{100}`, `\x{FFFFFFFFFF}`,
		},
		UnclosedHexCharacterCode: {
			`\x{53`, `\x{5z}`, `\x{`,
		},
		UnclosedBrackets: {
			`[`, `[^]`, `[]`, `[a`, `[a-`, `[\n`,
		},
	} {
		for _, pattern := range patterns {
			assertParseFails(t, kind, pattern)
		}
	}
}

func TestParseErrorReportsOffsetAndKind(t *testing.T) {
	t.Parallel()

	_, err := Parse("ab[cd")
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, UnclosedBrackets, perr.Kind)
	assert.Equal(t, "ab[cd", perr.Pattern)
	assert.Equal(t, len("ab[cd"), perr.Offset)
	assert.Contains(t, err.Error(), "UnclosedBrackets")
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{
		"",
		"a",
		"ab",
		".",
		"^a$",
		"a?",
		"a??",
		"a*",
		"a+?",
		"a{5}",
		"a{5,}",
		"a{5,8}?",
		"(a)",
		"()",
		"(a|b|c)",
		"(ab|(bc|(cd)))",
		"[a]",
		"[^a]",
		"[]]",
		"[-]]",
		"[a-c_0-9]",
		`\n`,
		`\.`,
		`\x00`,
		`\xff`,
		"(a*)*",
		"a|b*|(c)+",
	} {
		expr, err := Parse(pattern)
		if !assert.NoError(t, err, "pattern %q", pattern) {
			continue
		}
		printed := expr.String()
		again, err := Parse(printed)
		if !assert.NoError(t, err, "pattern %q reprinted as %q", pattern, printed) {
			continue
		}
		assert.Equal(t, expr, again, "pattern %q reprinted as %q", pattern, printed)
	}
}

func TestParseIsReusable(t *testing.T) {
	t.Parallel()

	// capture numbering restarts for every call
	for i := 0; i < 2; i++ {
		assertParsesAs(t, grp(1, lit('a')), "(a)")
	}
}

func TestParseDeeplyNestedGroups(t *testing.T) {
	t.Parallel()

	const depth = 10000
	pattern := ""
	for i := 0; i < depth; i++ {
		pattern += "("
	}
	pattern += "a"
	for i := 0; i < depth; i++ {
		pattern += ")"
	}
	expr, err := Parse(pattern)
	require.NoError(t, err)
	for i := 1; i <= depth; i++ {
		capture, ok := expr.(ast.Capture)
		require.True(t, ok, "depth %d", i)
		assert.Equal(t, i, capture.Index)
		expr = capture.Expr
	}
	assert.Equal(t, lit('a'), expr)
}
