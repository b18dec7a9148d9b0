package parser

import (
	"fmt"

	"github.com/arr-ai/rex/gotree"
)

// ErrorKind identifies one of the closed set of parse failures. Parsing
// stops at the first detected error; there is no recovery and no
// multi-error reporting.
type ErrorKind int

const (
	MissingRepeatOperand ErrorKind = iota
	InvalidRepeatArgument
	UnclosedRepeat
	ExcessiveRepeatCount
	EmptyAlternate
	UnopenedParentheses
	UnclosedParentheses
	OpenEscapeCode
	UnrecognizedEscapeCode
	InvalidHexDigit
	UnclosedHexCharacterCode
	UnclosedBrackets
)

var errorKindNames = map[ErrorKind]string{
	MissingRepeatOperand:     "MissingRepeatOperand",
	InvalidRepeatArgument:    "InvalidRepeatArgument",
	UnclosedRepeat:           "UnclosedRepeat",
	ExcessiveRepeatCount:     "ExcessiveRepeatCount",
	EmptyAlternate:           "EmptyAlternate",
	UnopenedParentheses:      "UnopenedParentheses",
	UnclosedParentheses:      "UnclosedParentheses",
	OpenEscapeCode:           "OpenEscapeCode",
	UnrecognizedEscapeCode:   "UnrecognizedEscapeCode",
	InvalidHexDigit:          "InvalidHexDigit",
	UnclosedHexCharacterCode: "UnclosedHexCharacterCode",
	UnclosedBrackets:         "UnclosedBrackets",
}

var errorKindMessages = map[ErrorKind]string{
	MissingRepeatOperand:     "repeat operator with nothing to repeat",
	InvalidRepeatArgument:    "invalid repeat count argument",
	UnclosedRepeat:           "repeat count not terminated by '}'",
	ExcessiveRepeatCount:     "repeat count too large",
	EmptyAlternate:           "alternation branch is empty",
	UnopenedParentheses:      "')' with no matching '('",
	UnclosedParentheses:      "'(' with no matching ')'",
	OpenEscapeCode:           "pattern ends in a bare '\\'",
	UnrecognizedEscapeCode:   "unrecognized escape code",
	InvalidHexDigit:          "invalid hex character code",
	UnclosedHexCharacterCode: "hex character code not terminated by '}'",
	UnclosedBrackets:         "character class not terminated by ']'",
}

func (k ErrorKind) String() string {
	if name, has := errorKindNames[k]; has {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) message() string {
	return errorKindMessages[k]
}

// ParseError is the single error type returned by Parse. Kind identifies
// the failure; Offset is the byte position the scan had reached.
type ParseError struct {
	Kind    ErrorKind
	Offset  int
	Pattern string
}

func newParseError(kind ErrorKind, s *Scanner) *ParseError {
	return &ParseError{
		Kind:    kind,
		Offset:  s.Offset(),
		Pattern: s.src,
	}
}

func (e *ParseError) Error() string {
	tree := gotree.New("parse failed")
	x := tree.Add(fmt.Sprintf("%s - %s", e.Kind, e.Kind.message()))
	x.Add(fmt.Sprintf("at offset %d: %s‸%s", e.Offset, e.Pattern[:e.Offset], e.Pattern[e.Offset:]))
	return "\n" + tree.Print()
}
