package atn

// Reserved token values. User-defined token types start at TokenMinUser;
// the values below never collide with a legal token type.
const (
	// TokenInvalid is the type of a token the lexer could not recognize.
	// The lookahead engine reuses it as its predicate-hit marker.
	TokenInvalid = 0

	// TokenEOF represents the end of the input.
	TokenEOF = -1

	// TokenEpsilon represents "no token consumed". It appears in lookahead
	// sets computed without a call-stack context when a rule-stop state is
	// reachable.
	TokenEpsilon = -2

	// TokenMinUser is the smallest legal user-defined token type.
	TokenMinUser = 1
)
