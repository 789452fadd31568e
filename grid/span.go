// SPDX-License-Identifier: MIT

package grid

// span is the cursor pair shared by every iterator: lo is the next position
// drawn from the front, hi the next position drawn from the back (inclusive).
// The span is exhausted once lo > hi. hi never goes below zero: drawing the
// back at position 0 leaves hi at 0 and moves lo to 1 instead.
type span struct {
	lo, hi int
}

// newSpan covers positions [0, n). An empty span is {lo: 1, hi: 0}.
func newSpan(n int) span {
	if n <= 0 {
		return span{lo: 1, hi: 0}
	}

	return span{lo: 0, hi: n - 1}
}

// len returns the number of undrawn positions.
func (s span) len() int {
	if s.lo > s.hi {
		return 0
	}

	return s.hi - s.lo + 1
}

// front draws the lowest undrawn position.
func (s *span) front() (int, bool) {
	if s.lo > s.hi {
		return 0, false
	}
	i := s.lo
	s.lo++

	return i, true
}

// back draws the highest undrawn position.
func (s *span) back() (int, bool) {
	if s.lo > s.hi {
		return 0, false
	}
	i := s.hi
	if s.hi == 0 {
		s.lo = 1 // clamp at zero; lo > hi marks the span exhausted
	} else {
		s.hi--
	}

	return i, true
}
