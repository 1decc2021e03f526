package prediction

import (
	"github.com/nihei9/altana/atn"
	"github.com/nihei9/altana/interval"
	"github.com/nihei9/altana/predicate"
)

// testATN builds small automata for scenario tests.
type testATN struct {
	network *atn.ATN
}

func newTestATN(maxTokenType int) *testATN {
	return &testATN{
		network: atn.New(maxTokenType),
	}
}

func (b *testATN) state(rule int) *atn.State {
	return b.network.AddState(atn.NewState(rule))
}

func (b *testATN) stop(rule int) *atn.State {
	return b.network.AddState(atn.NewRuleStopState(rule))
}

func eps(from, to *atn.State) {
	from.AddTransition(atn.NewEpsilonTransition(to))
}

func call(from, to *atn.State, rule int, follow *atn.State) {
	from.AddTransition(atn.NewRuleTransition(to, rule, follow))
}

func guarded(from, to *atn.State) {
	from.AddTransition(atn.NewPredicateTransition(to, predicate.NewPrecedence(0)))
}

func wild(from, to *atn.State) {
	from.AddTransition(atn.NewWildcardTransition(to))
}

func match(from, to *atn.State, toks ...int) {
	label := interval.NewSet()
	for _, tok := range toks {
		label.Add(tok)
	}
	from.AddTransition(atn.NewSetTransition(to, label))
}

func matchNot(from, to *atn.State, toks ...int) {
	label := interval.NewSet()
	for _, tok := range toks {
		label.Add(tok)
	}
	from.AddTransition(atn.NewNotSetTransition(to, label))
}
