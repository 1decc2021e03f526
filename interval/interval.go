package interval

import (
	"fmt"
	"strings"
)

// An Interval is a closed range of integers.
type Interval struct {
	Lo int
	Hi int
}

func (i Interval) len() int {
	return i.Hi - i.Lo + 1
}

// A Set is an ordered set of integers represented as a sequence of
// non-overlapping, non-adjacent intervals sorted in ascending order.
type Set struct {
	intervals []Interval
}

func NewSet() *Set {
	return &Set{}
}

// Of returns a set containing all values of the closed range [lo, hi].
func Of(lo, hi int) *Set {
	s := NewSet()
	s.AddRange(lo, hi)
	return s
}

func (s *Set) Add(v int) {
	s.AddRange(v, v)
}

// AddRange adds all values of the closed range [lo, hi] to the set,
// merging with existing intervals where they overlap or become adjacent.
// When lo > hi, the set is left unchanged.
func (s *Set) AddRange(lo, hi int) {
	if lo > hi {
		return
	}

	i := 0
	for i < len(s.intervals) && s.intervals[i].Hi+1 < lo {
		i++
	}
	j := i
	for j < len(s.intervals) && s.intervals[j].Lo <= hi+1 {
		if s.intervals[j].Lo < lo {
			lo = s.intervals[j].Lo
		}
		if s.intervals[j].Hi > hi {
			hi = s.intervals[j].Hi
		}
		j++
	}

	merged := make([]Interval, 0, len(s.intervals)-(j-i)+1)
	merged = append(merged, s.intervals[:i]...)
	merged = append(merged, Interval{Lo: lo, Hi: hi})
	merged = append(merged, s.intervals[j:]...)
	s.intervals = merged
}

func (s *Set) AddSet(o *Set) {
	if o == nil {
		return
	}
	for _, iv := range o.intervals {
		s.AddRange(iv.Lo, iv.Hi)
	}
}

func (s *Set) Contains(v int) bool {
	for _, iv := range s.intervals {
		if v < iv.Lo {
			return false
		}
		if v <= iv.Hi {
			return true
		}
	}
	return false
}

// Len returns the number of values the set contains.
func (s *Set) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.len()
	}
	return n
}

// Values returns all values of the set in ascending order.
func (s *Set) Values() []int {
	vs := make([]int, 0, s.Len())
	for _, iv := range s.intervals {
		for v := iv.Lo; v <= iv.Hi; v++ {
			vs = append(vs, v)
		}
	}
	return vs
}

// Intervals returns the intervals the set consists of in ascending order.
// The result must not be modified.
func (s *Set) Intervals() []Interval {
	return s.intervals
}

// Complement returns a new set containing all values of the closed range
// [lo, hi] that the receiver does not contain.
func (s *Set) Complement(lo, hi int) *Set {
	c := NewSet()
	next := lo
	for _, iv := range s.intervals {
		if iv.Hi < lo {
			continue
		}
		if iv.Lo > hi {
			break
		}
		if iv.Lo > next {
			c.AddRange(next, iv.Lo-1)
		}
		if iv.Hi+1 > next {
			next = iv.Hi + 1
		}
	}
	if next <= hi {
		c.AddRange(next, hi)
	}
	return c
}

// Equal reports whether two sets contain exactly the same values.
func (s *Set) Equal(o *Set) bool {
	if o == nil || len(s.intervals) != len(o.intervals) {
		return false
	}
	for i, iv := range s.intervals {
		if iv != o.intervals[i] {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		if iv.Lo == iv.Hi {
			fmt.Fprintf(&b, "%v", iv.Lo)
		} else {
			fmt.Fprintf(&b, "%v..%v", iv.Lo, iv.Hi)
		}
	}
	b.WriteString("}")
	return b.String()
}
