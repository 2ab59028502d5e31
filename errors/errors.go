package errors

import (
	"fmt"

	"github.com/fetttttjoe/Compiler/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected a %s. %s", e.Got, e.Expected, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
}

// DuplicateField reports a name given twice in one field, parameter or
// struct literal list.
type DuplicateField struct {
	Name     string
	In       string
	Location types.Span
}

func (e DuplicateField) Error() string {
	return fmt.Sprintf("field %s specified more than once in %s. %s", e.Name, e.In, e.Location)
}

// ExpectedType is raised when a type name is required but something else is found.
type ExpectedType struct {
	Got      types.Token
	Index    int
	Location types.Span
}

func (e ExpectedType) Error() string {
	return fmt.Sprintf("expected a type name (int, float), got %s at token %d. %s", e.Got, e.Index, e.Location)
}

// UnexpectedEnd is raised when the builder needs a token past the end of the sequence.
type UnexpectedEnd struct {
	Index    int
	While    string
	Location types.Span
}

func (e UnexpectedEnd) Error() string {
	return fmt.Sprintf("unexpected end of input at token %d while %s. %s", e.Index, e.While, e.Location)
}

type UnexpectedTopLevel struct {
	Got      types.Token
	Index    int
	Location types.Span
}

func (e UnexpectedTopLevel) Error() string {
	return fmt.Sprintf("unexpected %s at top level (token %d), skipped. %s", e.Got, e.Index, e.Location)
}

type MalformedExpression struct {
	Target   string
	Reason   string
	Location types.Span
}

func (e MalformedExpression) Error() string {
	return fmt.Sprintf("right-hand side of %s is not an expression: %s. %s", e.Target, e.Reason, e.Location)
}

type UnmatchedBrace struct {
	Location types.Span
}

func (e UnmatchedBrace) Error() string {
	return fmt.Sprintf("closing brace without a matching opening brace. %s", e.Location)
}

type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q, treated as end of input. %s", e.Char, e.Location)
}

// Warning records a permissive decision the lexer made instead of failing.
type Warning struct {
	Message  string
	Location types.Span
}

func (w Warning) Error() string {
	return fmt.Sprintf("warning: %s. %s", w.Message, w.Location)
}
