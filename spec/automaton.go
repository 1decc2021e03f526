package spec

import (
	"fmt"

	"github.com/nihei9/altana/atn"
	"github.com/nihei9/altana/interval"
	"github.com/nihei9/altana/predicate"
)

// An Automaton is the portable description of an ATN. A generator writes it
// out as JSON; Build materializes it into the live network the lookahead
// engine consumes. State numbers are positions in States.
type Automaton struct {
	Name          string   `json:"name"`
	MaxTokenType  int      `json:"max_token_type"`
	TerminalNames []string `json:"terminal_names"`
	RuleNames     []string `json:"rule_names"`
	States        []*State `json:"states"`
}

type State struct {
	Rule        int           `json:"rule"`
	RuleStop    bool          `json:"rule_stop,omitempty"`
	Transitions []*Transition `json:"transitions"`
}

type Transition struct {
	Kind string `json:"kind"`

	Target int `json:"target"`

	// Rule and Follow describe rule transitions: the callee's rule index
	// and the state the caller resumes at.
	Rule   int `json:"rule,omitempty"`
	Follow int `json:"follow,omitempty"`

	// Precedence is the threshold of the precedence predicate guarding a
	// predicate transition.
	Precedence int `json:"precedence,omitempty"`

	// Label lists the token ranges a set or not_set transition matches.
	Label []*Range `json:"label,omitempty"`
}

type Range struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Build materializes the description into a live ATN. It validates every
// cross reference so that a malformed file surfaces here, not as a panic in
// the middle of a lookahead query.
func (a *Automaton) Build() (*atn.ATN, error) {
	network := atn.New(a.MaxTokenType)
	states := make([]*atn.State, len(a.States))
	for i, s := range a.States {
		err := a.validateRule(s.Rule)
		if err != nil {
			return nil, fmt.Errorf("state %v: %w", i, err)
		}
		if s.RuleStop {
			states[i] = atn.NewRuleStopState(s.Rule)
		} else {
			states[i] = atn.NewState(s.Rule)
		}
		network.AddState(states[i])
	}
	for i, s := range a.States {
		for j, t := range s.Transitions {
			if t.Target < 0 || t.Target >= len(states) {
				return nil, fmt.Errorf("transition %v of state %v has a dangling target; target: %v", j, i, t.Target)
			}
			target := states[t.Target]
			switch t.Kind {
			case "epsilon":
				states[i].AddTransition(atn.NewEpsilonTransition(target))
			case "rule":
				err := a.validateRule(t.Rule)
				if err != nil {
					return nil, fmt.Errorf("transition %v of state %v: %w", j, i, err)
				}
				if t.Follow < 0 || t.Follow >= len(states) {
					return nil, fmt.Errorf("transition %v of state %v has a dangling follow state; follow: %v", j, i, t.Follow)
				}
				states[i].AddTransition(atn.NewRuleTransition(target, t.Rule, states[t.Follow]))
			case "predicate":
				states[i].AddTransition(atn.NewPredicateTransition(target, predicate.NewPrecedence(t.Precedence)))
			case "wildcard":
				states[i].AddTransition(atn.NewWildcardTransition(target))
			case "set", "not_set":
				label := interval.NewSet()
				for _, r := range t.Label {
					label.AddRange(r.Lo, r.Hi)
				}
				if t.Kind == "set" {
					states[i].AddTransition(atn.NewSetTransition(target, label))
				} else {
					states[i].AddTransition(atn.NewNotSetTransition(target, label))
				}
			default:
				return nil, fmt.Errorf("transition %v of state %v has an unknown kind; kind: %v", j, i, t.Kind)
			}
		}
	}
	return network, nil
}

func (a *Automaton) validateRule(rule int) error {
	if rule < 0 || (len(a.RuleNames) > 0 && rule >= len(a.RuleNames)) {
		return fmt.Errorf("undefined rule; rule: %v", rule)
	}
	return nil
}

// TerminalName returns the display name of a token type, including the
// reserved ones.
func (a *Automaton) TerminalName(tok int) string {
	switch tok {
	case atn.TokenEOF:
		return "<eof>"
	case atn.TokenEpsilon:
		return "<epsilon>"
	}
	if tok >= 0 && tok < len(a.TerminalNames) && a.TerminalNames[tok] != "" {
		return a.TerminalNames[tok]
	}
	return fmt.Sprintf("t%v", tok)
}

// RuleName returns the display name of a rule index.
func (a *Automaton) RuleName(rule int) string {
	if rule >= 0 && rule < len(a.RuleNames) && a.RuleNames[rule] != "" {
		return a.RuleNames[rule]
	}
	return fmt.Sprintf("r%v", rule)
}
