// Package interval implements sets of byte values as sorted lists of
// inclusive ranges over [0, 255].
package interval

import (
	"fmt"
	"sort"
	"strings"
)

// Range is an inclusive span of byte values.
type Range struct {
	Lo, Hi byte
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%#x", r.Lo)
	}
	return fmt.Sprintf("%#x-%#x", r.Lo, r.Hi)
}

// Contains reports whether b falls within the range.
func (r Range) Contains(b byte) bool {
	return r.Lo <= b && b <= r.Hi
}

// Set is a set of byte values held as ranges. A normalized Set is sorted
// ascending by Lo with no overlapping or adjacent ranges.
type Set struct {
	ranges []Range
}

// Of builds a normalized Set from the given ranges.
func Of(ranges ...Range) Set {
	s := Set{}
	for _, r := range ranges {
		s.Add(r.Lo, r.Hi)
	}
	s.Normalize()
	return s
}

// Single builds a Set holding exactly one byte value.
func Single(b byte) Set {
	return Of(Range{b, b})
}

// Add appends the inclusive range [lo, hi] without normalizing. Reversed
// endpoints are swapped so that Lo <= Hi always holds.
func (s *Set) Add(lo, hi byte) {
	if lo > hi {
		lo, hi = hi, lo
	}
	s.ranges = append(s.ranges, Range{lo, hi})
}

// AddByte appends a singleton range without normalizing.
func (s *Set) AddByte(b byte) {
	s.Add(b, b)
}

// Normalize sorts the ranges by lower bound and coalesces overlapping and
// adjacent ranges into one.
func (s *Set) Normalize() {
	if len(s.ranges) < 2 {
		return
	}
	sort.Slice(s.ranges, func(i, j int) bool {
		a, b := s.ranges[i], s.ranges[j]
		if a.Lo != b.Lo {
			return a.Lo < b.Lo
		}
		return a.Hi < b.Hi
	})
	merged := s.ranges[:1]
	for _, r := range s.ranges[1:] {
		last := &merged[len(merged)-1]
		if int(r.Lo) <= int(last.Hi)+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	s.ranges = merged
}

// Complement replaces the set with its complement over [0, 255]. The
// receiver must be normalized.
func (s *Set) Complement() {
	out := make([]Range, 0, len(s.ranges)+1)
	next := 0
	for _, r := range s.ranges {
		if int(r.Lo) > next {
			out = append(out, Range{byte(next), byte(int(r.Lo) - 1)})
		}
		next = int(r.Hi) + 1
	}
	if next <= 0xFF {
		out = append(out, Range{byte(next), 0xFF})
	}
	s.ranges = out
}

// Contains reports whether the set holds b. The receiver must be normalized.
func (s Set) Contains(b byte) bool {
	i := sort.Search(len(s.ranges), func(i int) bool {
		return s.ranges[i].Hi >= b
	})
	return i < len(s.ranges) && s.ranges[i].Contains(b)
}

// Ranges returns the underlying ranges. Callers must not mutate the result.
func (s Set) Ranges() []Range {
	return s.ranges
}

// IsEmpty reports whether the set holds no values.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Equal reports whether two normalized sets hold the same values.
func (s Set) Equal(t Set) bool {
	if len(s.ranges) != len(t.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != t.ranges[i] {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
