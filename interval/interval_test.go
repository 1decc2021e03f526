package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSet_AddRange(t *testing.T) {
	tests := []struct {
		caption string
		ranges  [][2]int
		values  []int
	}{
		{
			caption: "disjoint ranges stay separate",
			ranges:  [][2]int{{1, 2}, {5, 6}},
			values:  []int{1, 2, 5, 6},
		},
		{
			caption: "overlapping ranges merge",
			ranges:  [][2]int{{1, 4}, {3, 6}},
			values:  []int{1, 2, 3, 4, 5, 6},
		},
		{
			caption: "adjacent ranges merge",
			ranges:  [][2]int{{1, 2}, {3, 4}},
			values:  []int{1, 2, 3, 4},
		},
		{
			caption: "a range bridging two existing ranges merges all three",
			ranges:  [][2]int{{1, 2}, {7, 8}, {3, 6}},
			values:  []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			caption: "a contained range changes nothing",
			ranges:  [][2]int{{1, 8}, {3, 4}},
			values:  []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			caption: "an inverted range is ignored",
			ranges:  [][2]int{{5, 1}},
			values:  []int{},
		},
		{
			caption: "negative values are allowed",
			ranges:  [][2]int{{-2, -1}, {1, 1}},
			values:  []int{-2, -1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			s := NewSet()
			for _, r := range tt.ranges {
				s.AddRange(r[0], r[1])
			}
			if diff := cmp.Diff(tt.values, s.Values()); diff != "" {
				t.Fatalf("unexpected values (-want +got):\n%v", diff)
			}
			if s.Len() != len(tt.values) {
				t.Fatalf("unexpected length; want: %v, got: %v", len(tt.values), s.Len())
			}
		})
	}
}

func TestSet_Complement(t *testing.T) {
	tests := []struct {
		caption  string
		ranges   [][2]int
		universe [2]int
		values   []int
	}{
		{
			caption:  "a hole in the middle of the universe",
			ranges:   [][2]int{{3, 3}},
			universe: [2]int{1, 5},
			values:   []int{1, 2, 4, 5},
		},
		{
			caption:  "an empty set complements to the whole universe",
			ranges:   nil,
			universe: [2]int{1, 5},
			values:   []int{1, 2, 3, 4, 5},
		},
		{
			caption:  "a set covering the universe complements to nothing",
			ranges:   [][2]int{{0, 6}},
			universe: [2]int{1, 5},
			values:   []int{},
		},
		{
			caption:  "ranges outside the universe don't contribute",
			ranges:   [][2]int{{-3, 0}, {2, 3}, {9, 12}},
			universe: [2]int{1, 5},
			values:   []int{1, 4, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			s := NewSet()
			for _, r := range tt.ranges {
				s.AddRange(r[0], r[1])
			}
			c := s.Complement(tt.universe[0], tt.universe[1])
			if diff := cmp.Diff(tt.values, c.Values()); diff != "" {
				t.Fatalf("unexpected values (-want +got):\n%v", diff)
			}
		})
	}
}

func TestSet_Contains(t *testing.T) {
	s := Of(1, 3)
	s.Add(7)
	for _, v := range []int{1, 2, 3, 7} {
		if !s.Contains(v) {
			t.Fatalf("the set must contain %v", v)
		}
	}
	for _, v := range []int{0, 4, 6, 8, -1} {
		if s.Contains(v) {
			t.Fatalf("the set must not contain %v", v)
		}
	}
}

func TestSet_AddSet(t *testing.T) {
	s := Of(1, 2)
	o := Of(4, 5)
	o.Add(2)
	s.AddSet(o)
	if diff := cmp.Diff([]int{1, 2, 4, 5}, s.Values()); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%v", diff)
	}

	// A nil operand leaves the receiver unchanged.
	s.AddSet(nil)
	if s.Len() != 4 {
		t.Fatalf("unexpected length; want: %v, got: %v", 4, s.Len())
	}
}

func TestSet_Equal(t *testing.T) {
	a := Of(1, 3)
	b := NewSet()
	b.AddRange(1, 2)
	b.Add(3)
	if !a.Equal(b) {
		t.Fatalf("%v and %v must be equal", a, b)
	}
	b.Add(5)
	if a.Equal(b) {
		t.Fatalf("%v and %v must not be equal", a, b)
	}
	if a.Equal(nil) {
		t.Fatalf("%v must not be equal to a nil set", a)
	}
}

func TestSet_String(t *testing.T) {
	tests := []struct {
		caption string
		ranges  [][2]int
		want    string
	}{
		{
			caption: "an empty set",
			ranges:  nil,
			want:    "{}",
		},
		{
			caption: "single values and ranges",
			ranges:  [][2]int{{1, 1}, {3, 5}},
			want:    "{1, 3..5}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			s := NewSet()
			for _, r := range tt.ranges {
				s.AddRange(r[0], r[1])
			}
			if s.String() != tt.want {
				t.Fatalf("unexpected rendering; want: %v, got: %v", tt.want, s.String())
			}
		})
	}
}
