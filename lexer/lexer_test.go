package lexer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/types"
)

func lex(t *testing.T, src string, options Options) ([]types.Token, *Lexer, error) {
	t.Helper()
	l := NewLexer(strings.NewReader(src), "test", options)
	tokens, err := l.Tokenize()
	return tokens, l, err
}

func mustLex(t *testing.T, src string) []types.Token {
	t.Helper()
	tokens, _, err := lex(t, src, Options{})
	if err != nil {
		t.Fatalf("lexing %q: %v", src, err)
	}
	return tokens
}

func kinds(tokens []types.Token) []types.TokenKind {
	var ret []types.TokenKind
	for _, tok := range tokens {
		ret = append(ret, tok.Kind)
	}
	return ret
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.TokenKind
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []types.TokenKind{types.EOF},
		},
		{
			name:  "Keywords",
			input: "fun struct var const return int float",
			expected: []types.TokenKind{
				types.FUN, types.STRUCT, types.VAR, types.CONST, types.RETURN,
				types.INTTYPE, types.FLOATTYPE, types.EOF,
			},
		},
		{
			name:  "Punctuation",
			input: ": ( ) , . ;",
			expected: []types.TokenKind{
				types.COLON, types.LPAREN, types.RPAREN, types.COMMA, types.PERIOD,
				types.SEMICOLON, types.EOF,
			},
		},
		{
			name:  "Operators",
			input: "= + - * / % ! < > & | && ||",
			expected: []types.TokenKind{
				types.EQUALS, types.PLUS, types.MINUS, types.ASTERISK, types.SLASH,
				types.PERCENT, types.BANG, types.LESS, types.GREATER, types.AMPERSAND,
				types.PIPE, types.AND, types.OR, types.EOF,
			},
		},
		{
			name:     "Doubled ampersand",
			input:    "&&",
			expected: []types.TokenKind{types.AND, types.EOF},
		},
		{
			name:     "Single ampersand before another character",
			input:    "&b",
			expected: []types.TokenKind{types.AMPERSAND, types.IDENT, types.EOF},
		},
		{
			name:     "Three ampersands",
			input:    "&&&",
			expected: []types.TokenKind{types.AND, types.AMPERSAND, types.EOF},
		},
		{
			name:     "Operators without spaces",
			input:    "a+b*c",
			expected: []types.TokenKind{types.IDENT, types.PLUS, types.IDENT, types.ASTERISK, types.IDENT, types.EOF},
		},
		{
			name:     "Newline is significant",
			input:    "a\nb",
			expected: []types.TokenKind{types.IDENT, types.NEWLINE, types.IDENT, types.EOF},
		},
		{
			name:     "Tabs and carriage returns are skipped",
			input:    "a\t\tb\r\n",
			expected: []types.TokenKind{types.IDENT, types.IDENT, types.NEWLINE, types.EOF},
		},
		{
			name:     "Keyword prefix is an identifier",
			input:    "funny structs",
			expected: []types.TokenKind{types.IDENT, types.IDENT, types.EOF},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := kinds(mustLex(t, test.input))
			if !reflect.DeepEqual(got, test.expected) {
				t.Fatalf("got %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tokens := mustLex(t, "a")
	if len(tokens) != 2 {
		t.Fatalf("expected identifier and EOF, got %s", repr.String(tokens))
	}
	if tokens[0].Kind != types.IDENT || tokens[0].Literal != "a" {
		t.Fatalf("expected IDENT(\"a\"), got %s", tokens[0])
	}
	if tokens[1].Kind != types.EOF {
		t.Fatalf("expected EOF, got %s", tokens[1])
	}

	tokens = mustLex(t, "snake_case2 x9")
	if tokens[0].Literal != "snake_case2" || tokens[1].Literal != "x9" {
		t.Fatalf("unexpected identifiers %s", repr.String(tokens))
	}
}

func TestIntegerLiteral(t *testing.T) {
	tokens := mustLex(t, "123")
	if len(tokens) != 2 || tokens[0].Kind != types.INT || tokens[0].Int != 123 {
		t.Fatalf("expected INT(123), got %s", repr.String(tokens))
	}
	if tokens[0].Literal != "123" {
		t.Fatalf("expected digits to be kept, got %q", tokens[0].Literal)
	}

	tokens = mustLex(t, "12ab")
	if got := kinds(tokens); !reflect.DeepEqual(got, []types.TokenKind{types.INT, types.IDENT, types.EOF}) {
		t.Fatalf("got %v", got)
	}
}

func TestIntegerOverflowDegradesToZero(t *testing.T) {
	tokens, l, err := lex(t, "99999999999", Options{})
	if err != nil {
		t.Fatalf("overflow must not fail: %v", err)
	}
	if tokens[0].Kind != types.INT || tokens[0].Int != 0 {
		t.Fatalf("expected INT(0), got %s", tokens[0])
	}
	if len(l.Warnings()) != 1 {
		t.Fatalf("expected one warning, got %s", repr.String(l.Warnings()))
	}
}

func TestBodyClosed(t *testing.T) {
	count := func(tokens []types.Token, k types.TokenKind) int {
		n := 0
		for _, tok := range tokens {
			if tok.Kind == k {
				n++
			}
		}
		return n
	}

	for n := 1; n <= 4; n++ {
		tokens := mustLex(t, strings.Repeat("{ } ", n))
		if got := count(tokens, types.BODYCLOSED); got != n {
			t.Fatalf("%d pairs: got %d BODYCLOSED", n, got)
		}
		if got := count(tokens, types.RBRACKET); got != 0 {
			t.Fatalf("%d pairs: got %d RBRACKET", n, got)
		}
	}

	tokens := mustLex(t, "{ { } { { } } } {}")
	expected := []types.TokenKind{
		types.LBRACKET,
		types.LBRACKET, types.RBRACKET,
		types.LBRACKET, types.LBRACKET, types.RBRACKET, types.RBRACKET,
		types.BODYCLOSED,
		types.LBRACKET, types.BODYCLOSED,
		types.EOF,
	}
	if got := kinds(tokens); !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
}

func TestUnmatchedBrace(t *testing.T) {
	tokens, l, err := lex(t, "} a", Options{})
	if err == nil {
		t.Fatalf("expected an error for an unmatched brace")
	}
	if _, ok := tracerr.Unwrap(err).(errors.UnmatchedBrace); !ok {
		t.Fatalf("expected UnmatchedBrace, got %#v", tracerr.Unwrap(err))
	}
	if got := kinds(tokens); !reflect.DeepEqual(got, []types.TokenKind{types.RBRACKET, types.IDENT, types.EOF}) {
		t.Fatalf("got %v", got)
	}
	if l.Depth() != 0 {
		t.Fatalf("depth went to %d", l.Depth())
	}
}

func TestDepth(t *testing.T) {
	l := NewLexer(strings.NewReader("{{}"), "test", Options{})
	l.Next()
	l.Next()
	if l.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", l.Depth())
	}
	if tok := l.Next(); tok.Kind != types.RBRACKET {
		t.Fatalf("expected RBRACKET, got %s", tok)
	}
	if l.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", l.Depth())
	}
}

func TestComment(t *testing.T) {
	tokens := mustLex(t, "a // b + c\nd")
	expected := []types.TokenKind{types.IDENT, types.COMMENT, types.NEWLINE, types.IDENT, types.EOF}
	if got := kinds(tokens); !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	if tokens[1].Literal != " b + c" {
		t.Fatalf("unexpected comment text %q", tokens[1].Literal)
	}

	tokens = mustLex(t, "a / b")
	if tokens[1].Kind != types.SLASH {
		t.Fatalf("expected SLASH, got %s", tokens[1])
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tokens, l, err := lex(t, "a @ b", Options{})
	if err != nil {
		t.Fatalf("unexpected character must not fail outside strict mode: %v", err)
	}
	if got := kinds(tokens); !reflect.DeepEqual(got, []types.TokenKind{types.IDENT, types.EOF}) {
		t.Fatalf("got %v", got)
	}
	if len(l.Warnings()) != 1 {
		t.Fatalf("expected one warning, got %d", len(l.Warnings()))
	}
	if tok := l.Next(); tok.Kind != types.EOF {
		t.Fatalf("lexer resumed after end of input: %s", tok)
	}

	_, _, err = lex(t, "a @ b", Options{Strict: true})
	if _, ok := tracerr.Unwrap(err).(errors.UnexpectedCharacter); !ok {
		t.Fatalf("expected UnexpectedCharacter in strict mode, got %v", err)
	}
}

func TestStrictWhitespace(t *testing.T) {
	tokens, _, err := lex(t, "a\tb", Options{Strict: true})
	if got := kinds(tokens); !reflect.DeepEqual(got, []types.TokenKind{types.IDENT, types.EOF}) {
		t.Fatalf("got %v", got)
	}
	e, ok := tracerr.Unwrap(err).(errors.UnexpectedCharacter)
	if !ok || e.Char != '\t' {
		t.Fatalf("expected a tab to be rejected in strict mode, got %v", err)
	}

	tokens = mustLex(t, "a\tb")
	if got := kinds(tokens); !reflect.DeepEqual(got, []types.TokenKind{types.IDENT, types.IDENT, types.EOF}) {
		t.Fatalf("got %v", got)
	}

	if _, _, err := lex(t, "a  b\n", Options{Strict: true}); err != nil {
		t.Fatalf("spaces and newlines are fine in strict mode: %v", err)
	}
}

func TestPositions(t *testing.T) {
	tokens := mustLex(t, "fun\n  add(")
	add := tokens[2]
	if add.Literal != "add" {
		t.Fatalf("expected add, got %s", add)
	}
	if add.Location.From.Line != 2 || add.Location.From.Column != 3 {
		t.Fatalf("add starts at %s", add.Location.From)
	}
	if add.Location.To.Column != 5 {
		t.Fatalf("add ends at %s", add.Location.To)
	}
	if add.Location.From.Filename != "test" {
		t.Fatalf("filename lost: %s", add.Location)
	}
}

func TestDeterministic(t *testing.T) {
	src := `
    struct test {
        a: int,
        b: int,
    }

    fun add(a: int, b: int): int {
        const result = a + b; // sum
        return result;
    }
    `
	first, err := Tokenize(src, "test", Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Tokenize(src, "test", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("token sequences differ:\n%s\n%s", repr.String(first), repr.String(second))
	}
	if first[len(first)-1].Kind != types.EOF {
		t.Fatalf("sequence does not end in EOF")
	}
}
