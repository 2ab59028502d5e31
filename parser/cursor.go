package parser

import (
	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/types"
)

// Cursor is the read position over a borrowed token sequence. It only ever moves
// forward and steps over newlines and comments on its own.
//
// Running off the end panics with errors.UnexpectedEnd; Parse turns that into an error.
type Cursor struct {
	tokens []types.Token
	index  int
}

func NewCursor(tokens []types.Token) *Cursor {
	c := &Cursor{tokens: tokens}
	c.skipTrivia()
	return c
}

func trivia(t types.Token) bool {
	return t.Is(types.NEWLINE, types.COMMENT)
}

func (c *Cursor) skipTrivia() {
	for c.index < len(c.tokens) && trivia(c.tokens[c.index]) {
		c.index++
	}
}

// Pos is the index of the current token in the underlying sequence.
func (c *Cursor) Pos() int {
	return c.index
}

func (c *Cursor) end(while string) errors.UnexpectedEnd {
	e := errors.UnexpectedEnd{Index: c.index, While: while}
	if len(c.tokens) > 0 {
		e.Location = c.tokens[len(c.tokens)-1].Location
	}
	return e
}

func (c *Cursor) Peek() types.Token {
	if c.index >= len(c.tokens) {
		panic(c.end("reading a token"))
	}
	return c.tokens[c.index]
}

// PeekAt returns the n-th significant token after the current one, PeekAt(0) == Peek().
// Looking past the end yields the last token of the sequence.
func (c *Cursor) PeekAt(n int) types.Token {
	if c.index >= len(c.tokens) {
		panic(c.end("looking ahead"))
	}
	i := c.index
	for n > 0 && i < len(c.tokens)-1 {
		i++
		if !trivia(c.tokens[i]) {
			n--
		}
	}
	return c.tokens[i]
}

func (c *Cursor) Is(k ...types.TokenKind) bool {
	return c.Peek().Is(k...)
}

// Advance consumes the current token and returns it. Consuming the EOF token panics.
func (c *Cursor) Advance() types.Token {
	tok := c.Peek()
	if tok.Kind == types.EOF {
		panic(c.end("advancing past the end of input"))
	}
	c.index++
	c.skipTrivia()
	return tok
}

// Check verifies the kind of the current token without consuming it.
func (c *Cursor) Check(k ...types.TokenKind) types.Token {
	tok := c.Peek()
	if tok.Is(k...) {
		return tok
	}
	if tok.Kind == types.EOF {
		panic(c.end("expecting " + kindList(k)))
	}
	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{
			Expected: k[0],
			Got:      tok.Kind,
			Location: tok.Location,
		})
	}
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      tok.Kind,
		Location: tok.Location,
	})
}

// Expect consumes the current token if it is one of k.
func (c *Cursor) Expect(k ...types.TokenKind) types.Token {
	c.Check(k...)
	return c.Advance()
}

func kindList(k []types.TokenKind) string {
	s := ""
	for i, kind := range k {
		if i > 0 {
			s += " or "
		}
		s += kind.String()
	}
	return s
}
