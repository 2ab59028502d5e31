package ast

import (
	"fmt"

	"github.com/fetttttjoe/Compiler/types"
)

type Precedence int

const (
	_ Precedence = iota
	Lowest
	Sum     // + -
	Product // * /
	Braces  // (
)

var precedences = map[types.TokenKind]Precedence{
	types.PLUS:     Sum,
	types.MINUS:    Sum,
	types.ASTERISK: Product,
	types.SLASH:    Product,
	types.LPAREN:   Braces,
}

func PrecedenceOf(k types.TokenKind) Precedence {
	if p, ok := precedences[k]; ok {
		return p
	}
	return Lowest
}

func (p Precedence) String() string {
	switch p {
	case Lowest:
		return "Lowest"
	case Sum:
		return "Sum"
	case Product:
		return "Product"
	case Braces:
		return "Braces"
	}
	return fmt.Sprintf("Precedence(%d)", int(p))
}

// Fragment is one token of an assignment's right-hand side, tagged with the
// precedence class of the operator it represents.
type Fragment struct {
	Token      types.Token
	Precedence Precedence
}

func NewFragment(tok types.Token) Fragment {
	return Fragment{Token: tok, Precedence: PrecedenceOf(tok.Kind)}
}

func (f Fragment) String() string {
	return fmt.Sprintf("%s (%s)", f.Token.Text(), f.Precedence)
}
