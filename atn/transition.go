package atn

import (
	"github.com/nihei9/altana/interval"
	"github.com/nihei9/altana/predicate"
)

type TransitionKind int

const (
	// TransitionEpsilon is consumable without reading an input symbol.
	TransitionEpsilon TransitionKind = iota

	// TransitionRule represents the invocation of another rule. It carries
	// the callee's rule index and the state to resume at after the callee
	// returns.
	TransitionRule

	// TransitionPredicate is an epsilon transition guarded by a semantic
	// predicate.
	TransitionPredicate

	// TransitionWildcard matches any legal user-defined token type.
	TransitionWildcard

	// TransitionSet matches any token type its label contains.
	TransitionSet

	// TransitionNotSet matches any legal user-defined token type its label
	// does not contain.
	TransitionNotSet
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionEpsilon:
		return "epsilon"
	case TransitionRule:
		return "rule"
	case TransitionPredicate:
		return "predicate"
	case TransitionWildcard:
		return "wildcard"
	case TransitionSet:
		return "set"
	case TransitionNotSet:
		return "not_set"
	}
	return "unknown"
}

// A Transition is a directed, possibly labeled edge between two states.
type Transition struct {
	kind   TransitionKind
	target *State
	rule   int
	follow *State
	pred   predicate.Predicate
	label  *interval.Set
}

func NewEpsilonTransition(target *State) *Transition {
	return &Transition{
		kind:   TransitionEpsilon,
		target: target,
	}
}

func NewRuleTransition(target *State, rule int, follow *State) *Transition {
	return &Transition{
		kind:   TransitionRule,
		target: target,
		rule:   rule,
		follow: follow,
	}
}

func NewPredicateTransition(target *State, pred predicate.Predicate) *Transition {
	return &Transition{
		kind:   TransitionPredicate,
		target: target,
		pred:   pred,
	}
}

func NewWildcardTransition(target *State) *Transition {
	return &Transition{
		kind:   TransitionWildcard,
		target: target,
	}
}

func NewSetTransition(target *State, label *interval.Set) *Transition {
	return &Transition{
		kind:   TransitionSet,
		target: target,
		label:  label,
	}
}

func NewNotSetTransition(target *State, label *interval.Set) *Transition {
	return &Transition{
		kind:   TransitionNotSet,
		target: target,
		label:  label,
	}
}

func (t *Transition) Kind() TransitionKind {
	return t.kind
}

func (t *Transition) Target() *State {
	return t.target
}

// Rule returns the callee's rule index. It is meaningful only for
// TransitionRule.
func (t *Transition) Rule() int {
	return t.rule
}

// Follow returns the state the caller resumes at after the callee returns.
// It is meaningful only for TransitionRule.
func (t *Transition) Follow() *State {
	return t.follow
}

// Pred returns the guarding predicate. It is meaningful only for
// TransitionPredicate.
func (t *Transition) Pred() predicate.Predicate {
	return t.pred
}

// Label returns the token set the transition matches. It is meaningful only
// for TransitionSet and TransitionNotSet.
func (t *Transition) Label() *interval.Set {
	return t.label
}

// IsEpsilon reports whether the transition is consumable without reading an
// input symbol.
func (t *Transition) IsEpsilon() bool {
	switch t.kind {
	case TransitionEpsilon, TransitionRule, TransitionPredicate:
		return true
	}
	return false
}
