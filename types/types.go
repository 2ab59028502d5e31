package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	// keywords
	FUN
	STRUCT
	VAR
	CONST
	RETURN

	// type names
	INTTYPE
	FLOATTYPE

	// punctuation
	COLON
	LBRACKET
	RBRACKET
	BODYCLOSED
	LPAREN
	RPAREN
	COMMA
	PERIOD
	SEMICOLON

	// operators
	EQUALS
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	BANG
	LESS
	GREATER
	AMPERSAND
	PIPE
	AND
	OR

	COMMENT
	NEWLINE

	IDENT
	INT
)

var kindNames = map[TokenKind]string{
	EOF:        "EOF",
	FUN:        "FUN",
	STRUCT:     "STRUCT",
	VAR:        "VAR",
	CONST:      "CONST",
	RETURN:     "RETURN",
	INTTYPE:    "INTTYPE",
	FLOATTYPE:  "FLOATTYPE",
	COLON:      "COLON",
	LBRACKET:   "LBRACKET",
	RBRACKET:   "RBRACKET",
	BODYCLOSED: "BODYCLOSED",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	COMMA:      "COMMA",
	PERIOD:     "PERIOD",
	SEMICOLON:  "SEMICOLON",
	EQUALS:     "EQUALS",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	ASTERISK:   "ASTERISK",
	SLASH:      "SLASH",
	PERCENT:    "PERCENT",
	BANG:       "BANG",
	LESS:       "LESS",
	GREATER:    "GREATER",
	AMPERSAND:  "AMPERSAND",
	PIPE:       "PIPE",
	AND:        "AND",
	OR:         "OR",
	COMMENT:    "COMMENT",
	NEWLINE:    "NEWLINE",
	IDENT:      "IDENT",
	INT:        "INT",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Symbol is the source spelling of fixed tokens, empty for IDENT, INT and the markers.
func (t TokenKind) Symbol() string {
	return symbols[t]
}

var symbols = map[TokenKind]string{
	FUN:        "fun",
	STRUCT:     "struct",
	VAR:        "var",
	CONST:      "const",
	RETURN:     "return",
	INTTYPE:    "int",
	FLOATTYPE:  "float",
	COLON:      ":",
	LBRACKET:   "{",
	RBRACKET:   "}",
	BODYCLOSED: "}",
	LPAREN:     "(",
	RPAREN:     ")",
	COMMA:      ",",
	PERIOD:     ".",
	SEMICOLON:  ";",
	EQUALS:     "=",
	PLUS:       "+",
	MINUS:      "-",
	ASTERISK:   "*",
	SLASH:      "/",
	PERCENT:    "%",
	BANG:       "!",
	LESS:       "<",
	GREATER:    ">",
	AMPERSAND:  "&",
	PIPE:       "|",
	AND:        "&&",
	OR:         "||",
	COMMENT:    "//",
	NEWLINE:    "\n",
}

// Keywords maps reserved words to their dedicated kinds.
var Keywords = map[string]TokenKind{
	"fun":    FUN,
	"struct": STRUCT,
	"var":    VAR,
	"const":  CONST,
	"return": RETURN,
	"int":    INTTYPE,
	"float":  FLOATTYPE,
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     TokenKind
	Location Span
	// Literal holds identifier text, integer digits or comment text.
	Literal string
	Int     int32
}

func (t Token) Is(k ...TokenKind) bool {
	for _, kind := range k {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// Text is the literal for value-carrying tokens and the spelling for everything else.
func (t Token) Text() string {
	switch t.Kind {
	case IDENT, INT, COMMENT:
		return t.Literal
	}
	return t.Kind.Symbol()
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, COMMENT:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	case INT:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	}
	return t.Kind.String()
}

// SameAs compares kind and payload, ignoring location.
func (t Token) SameAs(o Token) bool {
	return t.Kind == o.Kind && t.Literal == o.Literal && t.Int == o.Int
}
