package lexer

import "github.com/fetttttjoe/Compiler/types"

// nesting is the brace automaton: depth 0 is the top level, anything above is
// InBlock(depth). Only the brace that brings it back to the top level closes a body.
type nesting int

func (n *nesting) open() {
	*n++
}

// close returns the kind for a closing brace and whether it had a matching opener.
// An unmatched brace leaves the automaton at the top level.
func (n *nesting) close() (types.TokenKind, bool) {
	switch {
	case *n <= 0:
		*n = 0
		return types.RBRACKET, false
	case *n == 1:
		*n = 0
		return types.BODYCLOSED, true
	default:
		*n--
		return types.RBRACKET, true
	}
}
