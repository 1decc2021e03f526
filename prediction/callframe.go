package prediction

// rootInvokingState marks the bottom of a call stack: the frame has no
// invoker.
const rootInvokingState = -1

// A CallFrame is one active rule invocation in a running parse. A parser
// pushes a frame when it enters a rule and discards it when the rule
// returns; following parent links from any frame reaches a root frame.
//
// Frames are never shared between concurrently running parses, but the
// lookahead engine may read a frame chain while its owning parse is paused
// mid-rule.
type CallFrame struct {
	parent        *CallFrame
	invokingState int
}

// NewRootFrame returns the bottom-of-stack frame of a fresh parse.
func NewRootFrame() *CallFrame {
	return &CallFrame{
		invokingState: rootInvokingState,
	}
}

// NewCallFrame returns the frame for a rule invoked while the parent's
// parse was at the state numbered invokingState.
func NewCallFrame(parent *CallFrame, invokingState int) *CallFrame {
	return &CallFrame{
		parent:        parent,
		invokingState: invokingState,
	}
}

func (f *CallFrame) Parent() *CallFrame {
	return f.parent
}

func (f *CallFrame) InvokingState() int {
	return f.invokingState
}

func (f *CallFrame) IsRoot() bool {
	return f.invokingState == rootInvokingState
}

// Depth returns the number of invocations on the stack, excluding the root
// frame.
func (f *CallFrame) Depth() int {
	d := 0
	for !f.IsRoot() {
		d++
		f = f.parent
	}
	return d
}
