package prediction

import (
	"github.com/nihei9/altana/atn"
)

const (
	hashOffset = 14695981039346656037
	hashPrime  = 1099511628211
)

// A Context is an immutable snapshot of a rule-invocation stack used during
// lookahead computation. Unlike a CallFrame chain, a Context is shareable
// between queries and may fold multiple call sites into one node: each of
// its alternatives pairs a return state number with the parent context to
// resume with after popping.
//
// A nil *Context means "no stack information at all" and disables the
// stack-aware behaviors of the engine. That is different from Empty, which
// means "the stack is known and has nothing left to pop".
type Context struct {
	returnStates []int
	parents      []*Context
	hash         uint64
}

// Empty is the empty-stack context. It is the only context with zero
// alternatives, it is initialized once, and it is distinguished by identity:
// every empty-stack query must observe this exact value.
var Empty = newContext(nil, nil)

// New returns a context with a single return alternative on top of parent.
// parent may be nil, Empty, or any other context.
func New(parent *Context, returnState int) *Context {
	return newContext([]*Context{parent}, []int{returnState})
}

// NewMulti folds multiple call sites into a single context node. parents
// and returnStates must have the same non-zero length; alternative i pops to
// returnStates[i] and continues with parents[i].
func NewMulti(parents []*Context, returnStates []int) *Context {
	ps := make([]*Context, len(parents))
	copy(ps, parents)
	rs := make([]int, len(returnStates))
	copy(rs, returnStates)
	return newContext(ps, rs)
}

func newContext(parents []*Context, returnStates []int) *Context {
	c := &Context{
		returnStates: returnStates,
		parents:      parents,
	}
	c.hash = c.computeHash()
	return c
}

// computeHash folds the return states and the parents' cached hashes.
// Contexts are immutable, so the result is computed once at construction.
func (c *Context) computeHash() uint64 {
	h := uint64(hashOffset)
	for i, ret := range c.returnStates {
		h = (h ^ uint64(uint32(ret))) * hashPrime
		if p := c.parents[i]; p != nil {
			h = (h ^ p.hash) * hashPrime
		} else {
			h = (h ^ 0x9e3779b97f4a7c15) * hashPrime
		}
	}
	return h
}

// IsEmpty reports whether the context is the empty-stack singleton. The
// test is by identity, not by shape.
func (c *Context) IsEmpty() bool {
	return c == Empty
}

// Len returns the number of return alternatives.
func (c *Context) Len() int {
	return len(c.returnStates)
}

// ReturnState returns the state number alternative i pops to.
func (c *Context) ReturnState(i int) int {
	return c.returnStates[i]
}

// Parent returns the context that remains after popping alternative i. It
// may be nil when the producer had no information below this frame.
func (c *Context) Parent(i int) *Context {
	return c.parents[i]
}

func (c *Context) Hash() uint64 {
	return c.hash
}

// Equal reports structural equality: same alternatives, same return states,
// and identical (not merely equal) parents per alternative.
func (c *Context) Equal(o *Context) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil || c.hash != o.hash || len(c.returnStates) != len(o.returnStates) {
		return false
	}
	for i, ret := range c.returnStates {
		if ret != o.returnStates[i] || c.parents[i] != o.parents[i] {
			return false
		}
	}
	return true
}

// FromCallFrame converts a live call stack into a Context that mirrors the
// same chain of return states. Each frame's invoking state is translated to
// the follow state of the rule transition taken there; the chain terminates
// at Empty when the root frame is reached.
//
// A nil frame yields a nil context: the caller supplied no stack
// information. A root frame always yields the Empty singleton itself.
//
// The invoking state recorded in a non-root frame must be a state whose
// first transition is the rule transition that was taken.
func FromCallFrame(a *atn.ATN, frame *CallFrame) *Context {
	if frame == nil {
		return nil
	}
	if frame.parent == nil || frame.IsRoot() {
		return Empty
	}
	parent := FromCallFrame(a, frame.parent)
	invoking := a.State(frame.invokingState)
	t := invoking.Transition(0)
	return New(parent, t.Follow().Num())
}
