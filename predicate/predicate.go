package predicate

import "fmt"

// A Recognizer supplies the runtime information predicates are evaluated
// against. The lookahead engine never evaluates predicates itself; a parser
// does, during prediction.
type Recognizer interface {
	// Precedence returns the precedence level the recognizer is currently
	// parsing at.
	Precedence() int
}

// A Predicate is an evaluable condition attached to a predicate transition.
type Predicate interface {
	Evaluate(rec Recognizer) bool

	// EvaluatePrecedence resolves the predicate under the recognizer's
	// current precedence. It returns a replacement predicate and true when
	// the predicate can be reduced, or false when it fails outright.
	EvaluatePrecedence(rec Recognizer) (Predicate, bool)

	Hash() uint64
	Equal(other Predicate) bool
	String() string
}

// True is the always-true predicate. EvaluatePrecedence resolves a passing
// precedence predicate to this value.
var True Predicate = alwaysTrue{}

type alwaysTrue struct {
}

func (alwaysTrue) Evaluate(rec Recognizer) bool {
	return true
}

func (alwaysTrue) EvaluatePrecedence(rec Recognizer) (Predicate, bool) {
	return True, true
}

func (alwaysTrue) Hash() uint64 {
	return 1
}

func (alwaysTrue) Equal(other Predicate) bool {
	_, ok := other.(alwaysTrue)
	return ok
}

func (alwaysTrue) String() string {
	return "true"
}

// A Precedence predicate passes when the recognizer is parsing at a
// precedence level greater than or equal to its threshold. Precedence
// predicates guard the alternatives of precedence-climbing rules.
type Precedence struct {
	precedence int
}

func NewPrecedence(precedence int) *Precedence {
	return &Precedence{
		precedence: precedence,
	}
}

func (p *Precedence) Val() int {
	return p.precedence
}

func (p *Precedence) Evaluate(rec Recognizer) bool {
	return rec.Precedence() >= p.precedence
}

func (p *Precedence) EvaluatePrecedence(rec Recognizer) (Predicate, bool) {
	if rec.Precedence() >= p.precedence {
		return True, true
	}
	return nil, false
}

func (p *Precedence) Hash() uint64 {
	return uint64(p.precedence)*31 + 7
}

func (p *Precedence) Equal(other Predicate) bool {
	o, ok := other.(*Precedence)
	return ok && o.precedence == p.precedence
}

func (p *Precedence) String() string {
	return fmt.Sprintf("{%v>=prec}?", p.precedence)
}

// Compare orders two precedence predicates by threshold. It returns a
// negative value when a is the weaker predicate, zero when both thresholds
// are equal, and a positive value otherwise.
func Compare(a, b *Precedence) int {
	return a.precedence - b.precedence
}
