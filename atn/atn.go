package atn

// An ATN is an augmented transition network compiled from a grammar: states
// connected by epsilon, rule-call, predicate, and token-labeled transitions.
// The lookahead engine consumes it read-only.
//
// An ATN is assumed well-formed: every transition target and every return
// state stored in a call-stack context must resolve via State. A dangling
// reference is a bug in the producer, not a runtime condition.
type ATN struct {
	states       []*State
	maxTokenType int
}

// New returns an empty ATN whose legal user-defined token types form the
// closed range [TokenMinUser, maxTokenType].
func New(maxTokenType int) *ATN {
	return &ATN{
		maxTokenType: maxTokenType,
	}
}

// AddState appends a state to the network, assigns its number, and returns
// the same state for convenience.
func (a *ATN) AddState(s *State) *State {
	s.num = len(a.states)
	a.states = append(a.states, s)
	return s
}

// State resolves a state number back to a state.
func (a *ATN) State(num int) *State {
	return a.states[num]
}

func (a *ATN) StateCount() int {
	return len(a.states)
}

// MaxTokenType returns the largest legal user-defined token type. Wildcard
// transitions and negated-set complements saturate the closed range
// [TokenMinUser, MaxTokenType].
func (a *ATN) MaxTokenType() int {
	return a.maxTokenType
}
