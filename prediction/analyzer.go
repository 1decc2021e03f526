package prediction

import (
	"github.com/nihei9/altana/atn"
	"github.com/nihei9/altana/interval"
)

// HitPred marks an alternative whose lookahead analysis ran into a semantic
// predicate it was not allowed to evaluate. It reuses the invalid token
// type, so it never collides with a legal token type.
const HitPred = atn.TokenInvalid

// An Analyzer computes context-sensitive lookahead sets over an ATN. It
// holds no mutable state of its own; every query allocates its own guard
// collections, so a single Analyzer is safe to share between concurrently
// running queries.
type Analyzer struct {
	atn *atn.ATN
}

func NewAnalyzer(a *atn.ATN) *Analyzer {
	return &Analyzer{
		atn: a,
	}
}

// DecisionLookahead computes one lookahead set per outgoing transition of a
// decision state, each computed with an empty call-stack context and
// without evaluating predicates. When an alternative's set would be empty,
// or the alternative is reachable only through a predicate, its slot is nil:
// the caller must evaluate predicates before that alternative yields usable
// lookahead.
func (a *Analyzer) DecisionLookahead(s *atn.State) []*interval.Set {
	if s == nil {
		return nil
	}
	look := make([]*interval.Set, s.TransitionCount())
	for alt := 0; alt < s.TransitionCount(); alt++ {
		set := interval.NewSet()
		a.closure(s.Transition(alt).Target(), nil, Empty, set, newGuardSet(), &ruleSet{}, false, false)
		if set.Len() == 0 || set.Contains(HitPred) {
			continue
		}
		look[alt] = set
	}
	return look
}

// Lookahead computes the set of terminals that can follow state s. When
// stop is non-nil, the walk does not proceed past it. frame is the call
// stack of the running parse; a nil frame computes the stack-insensitive
// set, in which case reachable rule-stop states contribute TokenEpsilon
// instead of the caller's follow sets. Predicates are treated as
// always-true.
func (a *Analyzer) Lookahead(s, stop *atn.State, frame *CallFrame) *interval.Set {
	return a.LookaheadContext(s, stop, FromCallFrame(a.atn, frame))
}

// LookaheadContext is Lookahead for callers that already hold a converted
// context. When ctx is non-nil and the walk pops the stack empty,
// TokenEOF enters the result.
func (a *Analyzer) LookaheadContext(s, stop *atn.State, ctx *Context) *interval.Set {
	look := interval.NewSet()
	a.closure(s, stop, ctx, look, newGuardSet(), &ruleSet{}, true, ctx != nil)
	return look
}

// closure accumulates into look every terminal reachable from s without
// consuming input, simulating rule returns through ctx.
//
// guard bounds re-exploration of (state, context) pairs and called bounds
// rule-call recursion, which together make the walk terminate on any
// automaton, cyclic or left-recursive ones included. Both collections are
// restored on every exit path so sibling branches observe a consistent
// view.
//
// seeThruPreds selects predicate opacity: when true, predicate transitions
// are traversed as epsilon; when false, they contribute HitPred and end the
// branch. addEOF controls whether running off the bottom of a known stack
// contributes TokenEOF.
func (a *Analyzer) closure(s, stop *atn.State, ctx *Context, look *interval.Set, guard *guardSet, called *ruleSet, seeThruPreds, addEOF bool) {
	if !guard.tryVisit(s, ctx) {
		return
	}

	if s == stop {
		if ctx == nil {
			look.Add(atn.TokenEpsilon)
			return
		}
		if ctx.IsEmpty() && addEOF {
			look.Add(atn.TokenEOF)
			return
		}
	}

	if s.IsRuleStop() {
		if ctx == nil {
			look.Add(atn.TokenEpsilon)
			return
		}
		if ctx.IsEmpty() && addEOF {
			look.Add(atn.TokenEOF)
			return
		}
		if !ctx.IsEmpty() {
			// Returning from s's rule: re-entering it is legal for the
			// rest of this branch, so lift its in-progress mark and put it
			// back once every return alternative has been explored.
			removed := called.has(s.Rule())
			called.clear(s.Rule())
			defer func() {
				if removed {
					called.set(s.Rule())
				}
			}()
			for i := 0; i < ctx.Len(); i++ {
				ret := a.atn.State(ctx.ReturnState(i))
				a.closure(ret, stop, ctx.Parent(i), look, guard, called, seeThruPreds, addEOF)
			}
			return
		}
	}

	for i := 0; i < s.TransitionCount(); i++ {
		t := s.Transition(i)
		switch t.Kind() {
		case atn.TransitionRule:
			if called.has(t.Rule()) {
				// Left recursion or mutual recursion back into a rule this
				// path is already inside; following it could not consume
				// input before coming around again.
				continue
			}
			newCtx := New(ctx, t.Follow().Num())
			func() {
				called.set(t.Rule())
				defer called.clear(t.Rule())
				a.closure(t.Target(), stop, newCtx, look, guard, called, seeThruPreds, addEOF)
			}()
		case atn.TransitionPredicate:
			if seeThruPreds {
				a.closure(t.Target(), stop, ctx, look, guard, called, seeThruPreds, addEOF)
			} else {
				look.Add(HitPred)
			}
		case atn.TransitionEpsilon:
			a.closure(t.Target(), stop, ctx, look, guard, called, seeThruPreds, addEOF)
		case atn.TransitionWildcard:
			look.AddRange(atn.TokenMinUser, a.atn.MaxTokenType())
		case atn.TransitionSet:
			look.AddSet(t.Label())
		case atn.TransitionNotSet:
			look.AddSet(t.Label().Complement(atn.TokenMinUser, a.atn.MaxTokenType()))
		}
	}
}
