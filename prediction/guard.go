package prediction

import (
	"github.com/nihei9/altana/atn"
)

// A config identifies one explored (state, alternative, context) triple.
// The alternative is zero for plain closure walks; equality is structural
// over all three fields.
type config struct {
	state *atn.State
	alt   int
	ctx   *Context
}

func (c *config) hashVal() uint64 {
	h := uint64(hashOffset)
	h = (h ^ uint64(uint32(c.state.Num()))) * hashPrime
	h = (h ^ uint64(uint32(c.alt))) * hashPrime
	if c.ctx != nil {
		h = (h ^ c.ctx.Hash()) * hashPrime
	}
	return h
}

func (c *config) equal(o *config) bool {
	if c.state != o.state || c.alt != o.alt {
		return false
	}
	if c.ctx == nil || o.ctx == nil {
		return c.ctx == o.ctx
	}
	return c.ctx.Equal(o.ctx)
}

// A guardSet records the configs a closure invocation has already expanded.
// Re-encountering a member means the walk has come around a cycle that
// consumed no input, and that branch terminates. A guard set lives only for
// the duration of one closure invocation.
type guardSet struct {
	buckets map[uint64][]*config
}

func newGuardSet() *guardSet {
	return &guardSet{
		buckets: map[uint64][]*config{},
	}
}

// tryVisit inserts the config for (state, ctx) if it is not yet a member
// and reports whether it was newly inserted.
func (s *guardSet) tryVisit(state *atn.State, ctx *Context) bool {
	cfg := &config{
		state: state,
		ctx:   ctx,
	}
	h := cfg.hashVal()
	for _, m := range s.buckets[h] {
		if m.equal(cfg) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], cfg)
	return true
}

// A ruleSet marks the rules in progress along the current exploration path.
// Entries are set when a rule-call transition is followed and cleared again
// when that branch of the recursion returns, so at any point only the rules
// on the active path are marked.
type ruleSet struct {
	rules []bool
}

func (s *ruleSet) has(rule int) bool {
	return rule >= 0 && rule < len(s.rules) && s.rules[rule]
}

func (s *ruleSet) set(rule int) {
	for rule >= len(s.rules) {
		s.rules = append(s.rules, false)
	}
	s.rules[rule] = true
}

func (s *ruleSet) clear(rule int) {
	if rule >= 0 && rule < len(s.rules) {
		s.rules[rule] = false
	}
}
