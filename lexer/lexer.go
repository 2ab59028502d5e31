package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/logging"
	"github.com/fetttttjoe/Compiler/types"
)

var plog = capnslog.NewPackageLogger(logging.Repo, "lexer")

type Options struct {
	// Strict turns an unexpected character into a lex error instead of a warning.
	// Only the space character counts as whitespace in strict mode; tab and carriage
	// return are unexpected characters there.
	Strict bool
}

type Lexer struct {
	reader  *bufio.Reader
	options Options

	current    rune
	hasCurrent bool
	pos        types.Position // position of current
	last       types.Position // position of the last consumed rune
	exhausted  bool

	braces nesting

	warnings []errors.Warning
	err      error
}

func NewLexer(reader io.Reader, filename string, options Options) *Lexer {
	l := &Lexer{
		reader:  bufio.NewReader(reader),
		options: options,
		pos:     types.Position{Line: 1, Column: 0, Filename: filename},
	}
	l.advance()
	return l
}

// Tokenize lexes a whole source string, see (*Lexer).Tokenize.
func Tokenize(source, filename string, options Options) ([]types.Token, error) {
	return NewLexer(strings.NewReader(source), filename, options).Tokenize()
}

// Depth is the current brace nesting, zero outside of any body.
func (l *Lexer) Depth() int {
	return int(l.braces)
}

func (l *Lexer) Warnings() []errors.Warning {
	return l.warnings
}

func (l *Lexer) advance() {
	if l.hasCurrent {
		l.last = l.pos
	}

	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err != io.EOF {
			l.fail(tracerr.Wrap(err))
		}
		l.hasCurrent = false
		return
	}

	if l.hasCurrent && l.current == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.current = r
	l.hasCurrent = true
}

func (l *Lexer) fail(err error) {
	if l.err == nil {
		l.err = err
	}
}

func (l *Lexer) warn(message string, at types.Span) {
	w := errors.Warning{Message: message, Location: at}
	plog.Warning(w.Error())
	l.warnings = append(l.warnings, w)
}

func (l *Lexer) kinded(t types.TokenKind, from types.Position) types.Token {
	return types.Token{
		Kind:     t,
		Location: types.Span{From: from, To: l.last},
	}
}

func isSpace(r rune, strict bool) bool {
	if strict {
		return r == ' '
	}
	return r == ' ' || r == '\t' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func otherChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (l *Lexer) skipWhitespace() {
	for l.hasCurrent && isSpace(l.current, l.options.Strict) {
		l.advance()
	}
}

var single = map[rune]types.TokenKind{
	':':  types.COLON,
	'(':  types.LPAREN,
	')':  types.RPAREN,
	',':  types.COMMA,
	';':  types.SEMICOLON,
	'.':  types.PERIOD,
	'=':  types.EQUALS,
	'+':  types.PLUS,
	'-':  types.MINUS,
	'*':  types.ASTERISK,
	'%':  types.PERCENT,
	'!':  types.BANG,
	'<':  types.LESS,
	'>':  types.GREATER,
	'\n': types.NEWLINE,
}

// doubled lists the characters whose repetition forms a different token.
var doubled = map[rune][2]types.TokenKind{
	'&': {types.AMPERSAND, types.AND},
	'|': {types.PIPE, types.OR},
	'/': {types.SLASH, types.COMMENT},
}

// Next returns the next token. Once the end of input has been produced it keeps
// returning EOF.
func (l *Lexer) Next() (tok types.Token) {
	defer func() {
		plog.Tracef("token %s at %s", tok, tok.Location)
	}()

	if l.exhausted {
		return types.Token{Kind: types.EOF, Location: types.SingleCharSpan(l.pos)}
	}

	l.skipWhitespace()
	if !l.hasCurrent {
		l.exhausted = true
		return types.Token{Kind: types.EOF, Location: types.SingleCharSpan(l.pos)}
	}

	from := l.pos
	c := l.current

	if kind, ok := single[c]; ok {
		l.advance()
		return l.kinded(kind, from)
	}

	if kinds, ok := doubled[c]; ok {
		l.advance()
		if l.hasCurrent && l.current == c {
			l.advance()
			if kinds[1] == types.COMMENT {
				return l.lexComment(from)
			}
			return l.kinded(kinds[1], from)
		}
		return l.kinded(kinds[0], from)
	}

	switch {
	case c == '{':
		l.braces.open()
		l.advance()
		return l.kinded(types.LBRACKET, from)
	case c == '}':
		kind, matched := l.braces.close()
		l.advance()
		tok := l.kinded(kind, from)
		if !matched {
			err := errors.UnmatchedBrace{Location: tok.Location}
			plog.Error(err.Error())
			l.fail(err)
		}
		return tok
	case unicode.IsLetter(c):
		return l.lexIdent(from)
	case isDigit(c):
		return l.lexNumber(from)
	}

	at := types.SingleCharSpan(from)
	if l.options.Strict {
		err := errors.UnexpectedCharacter{Char: c, Location: at}
		plog.Error(err.Error())
		l.fail(err)
	} else {
		l.warn("unexpected character "+strconv.QuoteRune(c)+", treated as end of input", at)
	}
	l.exhausted = true
	return types.Token{Kind: types.EOF, Location: at}
}

func (l *Lexer) lexIdent(from types.Position) types.Token {
	var lit strings.Builder
	for l.hasCurrent && otherChar(l.current) {
		lit.WriteRune(l.current)
		l.advance()
	}

	if kind, ok := types.Keywords[lit.String()]; ok {
		return l.kinded(kind, from)
	}

	tok := l.kinded(types.IDENT, from)
	tok.Literal = lit.String()
	return tok
}

func (l *Lexer) lexNumber(from types.Position) types.Token {
	var digits strings.Builder
	for l.hasCurrent && isDigit(l.current) {
		digits.WriteRune(l.current)
		l.advance()
	}

	tok := l.kinded(types.INT, from)
	tok.Literal = digits.String()

	parsed, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		l.warn("integer literal "+tok.Literal+" does not fit in 32 bits, using 0", tok.Location)
		parsed = 0
	}
	tok.Int = int32(parsed)

	return tok
}

// lexComment is called past the two slashes and takes the rest of the line.
func (l *Lexer) lexComment(from types.Position) types.Token {
	var text strings.Builder
	for l.hasCurrent && l.current != '\n' {
		text.WriteRune(l.current)
		l.advance()
	}

	tok := l.kinded(types.COMMENT, from)
	tok.Literal = strings.TrimRight(text.String(), "\r")
	return tok
}

// Tokenize drains the lexer. The returned sequence always ends with the EOF token.
// The error is the first lex error encountered; the tokens are complete either way.
func (l *Lexer) Tokenize() ([]types.Token, error) {
	var tokens []types.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			break
		}
	}

	plog.Debugf("lexed %d tokens, %d warnings", len(tokens), len(l.warnings))

	if l.err != nil {
		return tokens, tracerr.Wrap(l.err)
	}
	return tokens, nil
}
