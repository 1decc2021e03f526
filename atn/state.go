package atn

// A State is a node of the automaton. A state belongs to exactly one rule
// and owns an ordered list of outgoing transitions.
type State struct {
	num         int
	rule        int
	ruleStop    bool
	transitions []*Transition
}

func NewState(rule int) *State {
	return &State{
		num:  -1,
		rule: rule,
	}
}

// NewRuleStopState returns the distinguished state representing normal
// return from a rule.
func NewRuleStopState(rule int) *State {
	s := NewState(rule)
	s.ruleStop = true
	return s
}

// Num returns the state number. A state acquires its number when it is
// added to an ATN; before that, Num returns -1.
func (s *State) Num() int {
	return s.num
}

// Rule returns the index of the rule the state belongs to.
func (s *State) Rule() int {
	return s.rule
}

func (s *State) IsRuleStop() bool {
	return s.ruleStop
}

func (s *State) AddTransition(t *Transition) {
	s.transitions = append(s.transitions, t)
}

func (s *State) TransitionCount() int {
	return len(s.transitions)
}

func (s *State) Transition(i int) *Transition {
	return s.transitions[i]
}
