package atn

import (
	"testing"

	"github.com/nihei9/altana/interval"
)

func TestATN_AddState(t *testing.T) {
	a := New(5)

	s0 := NewState(0)
	if s0.Num() != -1 {
		t.Fatalf("a detached state must have no number; got: %v", s0.Num())
	}

	a.AddState(s0)
	s1 := a.AddState(NewRuleStopState(0))

	if s0.Num() != 0 || s1.Num() != 1 {
		t.Fatalf("unexpected state numbers; got: %v, %v", s0.Num(), s1.Num())
	}
	if a.StateCount() != 2 {
		t.Fatalf("unexpected state count; want: %v, got: %v", 2, a.StateCount())
	}
	if a.State(1) != s1 {
		t.Fatalf("State must resolve a number back to the same state")
	}
	if s0.IsRuleStop() || !s1.IsRuleStop() {
		t.Fatalf("only the rule-stop state must report itself as one")
	}
	if a.MaxTokenType() != 5 {
		t.Fatalf("unexpected max token type; want: %v, got: %v", 5, a.MaxTokenType())
	}
}

func TestTransition_IsEpsilon(t *testing.T) {
	target := NewState(0)
	follow := NewState(0)
	label := interval.Of(1, 2)

	tests := []struct {
		transition *Transition
		want       bool
	}{
		{transition: NewEpsilonTransition(target), want: true},
		{transition: NewRuleTransition(target, 1, follow), want: true},
		{transition: NewPredicateTransition(target, nil), want: true},
		{transition: NewWildcardTransition(target), want: false},
		{transition: NewSetTransition(target, label), want: false},
		{transition: NewNotSetTransition(target, label), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.transition.Kind().String(), func(t *testing.T) {
			if tt.transition.IsEpsilon() != tt.want {
				t.Fatalf("unexpected result; want: %v, got: %v", tt.want, !tt.want)
			}
			if tt.transition.Target() != target {
				t.Fatalf("unexpected target")
			}
		})
	}

	rt := NewRuleTransition(target, 1, follow)
	if rt.Rule() != 1 || rt.Follow() != follow {
		t.Fatalf("a rule transition must carry its rule index and follow state")
	}
}
