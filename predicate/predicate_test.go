package predicate

import "testing"

type fakeRecognizer struct {
	precedence int
}

func (r *fakeRecognizer) Precedence() int {
	return r.precedence
}

func TestPrecedence_Evaluate(t *testing.T) {
	tests := []struct {
		caption    string
		threshold  int
		precedence int
		want       bool
	}{
		{
			caption:    "the current precedence exceeds the threshold",
			threshold:  2,
			precedence: 3,
			want:       true,
		},
		{
			caption:    "the current precedence equals the threshold",
			threshold:  2,
			precedence: 2,
			want:       true,
		},
		{
			caption:    "the current precedence is below the threshold",
			threshold:  2,
			precedence: 1,
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p := NewPrecedence(tt.threshold)
			rec := &fakeRecognizer{precedence: tt.precedence}
			if p.Evaluate(rec) != tt.want {
				t.Fatalf("unexpected evaluation result; want: %v, got: %v", tt.want, !tt.want)
			}

			resolved, ok := p.EvaluatePrecedence(rec)
			if tt.want {
				if !ok {
					t.Fatalf("the predicate must resolve")
				}
				if resolved != True {
					t.Fatalf("a passing precedence predicate must resolve to the always-true predicate")
				}
			} else {
				if ok || resolved != nil {
					t.Fatalf("the predicate must fail outright")
				}
			}
		})
	}
}

func TestPrecedence_EqualityAndOrdering(t *testing.T) {
	a := NewPrecedence(2)
	b := NewPrecedence(2)
	c := NewPrecedence(5)

	if !a.Equal(b) {
		t.Fatalf("predicates with the same threshold must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal predicates must have the same hash")
	}
	if a.Equal(c) {
		t.Fatalf("predicates with different thresholds must not be equal")
	}
	if a.Equal(True) {
		t.Fatalf("predicates of different kinds must not be equal")
	}

	if Compare(a, c) >= 0 {
		t.Fatalf("the weaker predicate must order first")
	}
	if Compare(c, a) <= 0 {
		t.Fatalf("the stronger predicate must order last")
	}
	if Compare(a, b) != 0 {
		t.Fatalf("equal predicates must order the same")
	}
}

func TestPrecedence_String(t *testing.T) {
	p := NewPrecedence(3)
	if p.String() != "{3>=prec}?" {
		t.Fatalf("unexpected rendering; want: %v, got: %v", "{3>=prec}?", p.String())
	}
}

func TestTrue(t *testing.T) {
	rec := &fakeRecognizer{precedence: -100}
	if !True.Evaluate(rec) {
		t.Fatalf("the always-true predicate must evaluate to true")
	}
	resolved, ok := True.EvaluatePrecedence(rec)
	if !ok || resolved != True {
		t.Fatalf("the always-true predicate must resolve to itself")
	}
	if !True.Equal(True) {
		t.Fatalf("the always-true predicate must be equal to itself")
	}
}
