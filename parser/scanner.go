package parser

import "fmt"

// Scanner is a byte cursor over a pattern. The grammar only ever needs the
// current byte plus simple lookahead, so the scanner exposes no random
// access beyond PeekAt.
type Scanner struct {
	src    string // the entire pattern
	offset int    // position of the next unread byte
}

func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// EOF reports whether the input is exhausted.
func (s *Scanner) EOF() bool {
	return s.offset >= len(s.src)
}

// Peek returns the next byte without advancing.
func (s *Scanner) Peek() (byte, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the byte i positions past the cursor without advancing.
func (s *Scanner) PeekAt(i int) (byte, bool) {
	if s.offset+i >= len(s.src) {
		return 0, false
	}
	return s.src[s.offset+i], true
}

// Next returns the next byte and advances past it.
func (s *Scanner) Next() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.src[s.offset]
	s.offset++
	return b, true
}

// Eat advances past the next byte iff it equals b.
func (s *Scanner) Eat(b byte) bool {
	if c, ok := s.Peek(); ok && c == b {
		s.offset++
		return true
	}
	return false
}

// Offset is the position of the cursor within the original pattern.
func (s *Scanner) Offset() int {
	return s.offset
}

// Rest returns the unread remainder of the pattern.
func (s *Scanner) Rest() string {
	return s.src[s.offset:]
}

// Context renders the pattern with the cursor position marked.
func (s *Scanner) Context() string {
	return fmt.Sprintf("%s‸%s", s.src[:s.offset], s.src[s.offset:])
}
