package parser

import (
	"fmt"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/fetttttjoe/Compiler/ast"
	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/logging"
	"github.com/fetttttjoe/Compiler/types"
)

var plog = capnslog.NewPackageLogger(logging.Repo, "parser")

type Options struct {
	// EntryPoint is the function name that becomes an ast.MainFunction.
	EntryPoint string
	// CollapseTypeRuns makes a type position swallow a run of identical type
	// names ("int int int") instead of exactly one.
	CollapseTypeRuns bool
}

func DefaultOptions() Options {
	return Options{
		EntryPoint:       "main",
		CollapseTypeRuns: true,
	}
}

type AST struct {
	Declarations []ast.Declaration
}

type Parser struct {
	c       *Cursor
	options Options

	AST AST
	// Diagnostics are the non-fatal problems found while building.
	Diagnostics []error
}

func New(tokens []types.Token, options Options) *Parser {
	if options.EntryPoint == "" {
		options.EntryPoint = DefaultOptions().EntryPoint
	}
	return &Parser{
		c:       NewCursor(tokens),
		options: options,
	}
}

// BuildTree runs a parser over tokens and returns the declarations, the non-fatal
// diagnostics and the fatal error, if any.
func BuildTree(tokens []types.Token, options Options) ([]ast.Declaration, []error, error) {
	p := New(tokens, options)
	err := p.Parse()
	return p.AST.Declarations, p.Diagnostics, err
}

func (p *Parser) diagnose(err error) {
	plog.Warning(err.Error())
	p.Diagnostics = append(p.Diagnostics, err)
}

func (p *Parser) Parse() (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for {
		tok := p.c.Peek()

		switch tok.Kind {
		case types.EOF:
			plog.Debugf("built %d declarations, %d diagnostics", len(p.AST.Declarations), len(p.Diagnostics))
			return
		case types.STRUCT:
			p.AST.Declarations = append(p.AST.Declarations, p.parseStruct())
		case types.FUN:
			if next := p.c.PeekAt(1); next.Kind == types.IDENT && next.Literal == p.options.EntryPoint {
				p.AST.Declarations = append(p.AST.Declarations, p.parseMain())
			} else {
				p.AST.Declarations = append(p.AST.Declarations, p.parseFunction())
			}
		default:
			p.diagnose(errors.UnexpectedTopLevel{
				Got:      tok,
				Index:    p.c.Pos(),
				Location: tok.Location,
			})
		}

		// declaration builders stop on their closing marker; step over it
		// (or over the skipped token)
		p.c.Advance()
	}
}

// names tracks the identifiers already used in one field or parameter list.
type names map[string]bool

// unique diagnoses a repeated name. The entry is still kept in the tree.
func (p *Parser) unique(seen names, tok types.Token, in string) {
	if seen[tok.Literal] {
		p.diagnose(errors.DuplicateField{
			Name:     tok.Literal,
			In:       in,
			Location: tok.Location,
		})
	}
	seen[tok.Literal] = true
}

// parseStruct leaves the cursor on the closing brace of the struct body.
func (p *Parser) parseStruct() ast.Struct {
	p.c.Expect(types.STRUCT)
	s := ast.Struct{Name: p.c.Expect(types.IDENT).Literal}
	p.c.Expect(types.LBRACKET)

	seen := names{}
	for p.c.Is(types.IDENT) {
		tok := p.c.Advance()
		p.c.Expect(types.COLON)
		p.unique(seen, tok, "struct "+s.Name)
		s.Fields = append(s.Fields, ast.Field{
			Name: tok.Literal,
			Type: p.parseType(),
		})

		if p.c.Is(types.COMMA) {
			p.c.Advance()
		}
	}

	p.c.Check(types.BODYCLOSED)
	plog.Debugf("struct %s with %d fields", s.Name, len(s.Fields))
	return s
}

// parseFunction leaves the cursor on the closing brace of the function body.
func (p *Parser) parseFunction() ast.Function {
	p.c.Expect(types.FUN)
	fn := ast.Function{
		Name:    p.c.Expect(types.IDENT).Literal,
		Returns: ast.Int,
	}
	p.c.Expect(types.LPAREN)

	seen := names{}
	for p.c.Is(types.IDENT) {
		tok := p.c.Advance()
		p.c.Expect(types.COLON)
		p.unique(seen, tok, "the parameters of "+fn.Name)
		fn.Parameters = append(fn.Parameters, ast.Parameter{
			Name: tok.Literal,
			Type: p.parseType(),
		})

		if p.c.Is(types.COMMA) {
			p.c.Advance()
		}
	}
	p.c.Expect(types.RPAREN)

	if p.c.Is(types.COLON) {
		p.c.Advance()
		fn.Returns = p.parseType()
	}

	p.c.Expect(types.LBRACKET)
	for !p.c.Is(types.BODYCLOSED) {
		if p.c.Is(types.EOF) {
			panic(p.c.end("reading the body of " + fn.Name))
		}

		start := p.c.Pos()
		fn.Body = append(fn.Body, p.parseStatement())
		if p.c.Pos() == start {
			p.c.Advance()
		}
	}

	plog.Debugf("function %s with %d parameters, %d statements", fn.Name, len(fn.Parameters), len(fn.Body))
	return fn
}

func (p *Parser) parseMain() ast.MainFunction {
	return ast.MainFunction{Function: p.parseFunction()}
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.c.Peek()
	index := p.c.Pos()

	switch tok.Kind {
	case types.IDENT:
		if !p.c.PeekAt(1).Is(types.EQUALS) {
			return p.skipStatement(tok, index)
		}
		return p.parseAssignment()
	case types.VAR, types.CONST:
		p.c.Advance()
		return ast.Unimplemented{
			Context: fmt.Sprintf("%s binding at token %d is not lowered", tok.Kind.Symbol(), index),
			Token:   tok,
			Index:   index,
		}
	case types.RETURN:
		p.c.Advance()
		return ast.Unimplemented{
			Context: fmt.Sprintf("return at token %d is not lowered", index),
			Token:   tok,
			Index:   index,
		}
	}

	return ast.Unimplemented{
		Context: fmt.Sprintf("unrecognised %s at token %d", tok, index),
		Token:   tok,
		Index:   index,
	}
}

// skipStatement consumes everything up to and including the next semicolon, but
// never the end of the body.
func (p *Parser) skipStatement(tok types.Token, index int) ast.Statement {
	for !p.c.Is(types.BODYCLOSED, types.EOF) {
		if p.c.Advance().Kind == types.SEMICOLON {
			break
		}
	}

	return ast.Unimplemented{
		Context: fmt.Sprintf("statement starting with %q at token %d is not an assignment", tok.Literal, index),
		Token:   tok,
		Index:   index,
	}
}

func (p *Parser) parseAssignment() ast.Statement {
	target := p.c.Expect(types.IDENT)
	p.c.Expect(types.EQUALS)
	fragments := p.parseFragments()
	end := p.c.Expect(types.SEMICOLON)

	a := ast.Assignment{
		Target:    target.Literal,
		Fragments: fragments,
		Location:  types.Span{From: target.Location.From, To: end.Location.To},
	}

	value, err := BuildExpression(fragments)
	if err != nil {
		p.diagnose(errors.MalformedExpression{
			Target:   a.Target,
			Reason:   err.Error(),
			Location: a.Location,
		})
	} else {
		a.Value = value
	}

	return a
}

// parseFragments collects the right-hand side of an assignment up to, not
// including, the semicolon.
func (p *Parser) parseFragments() []ast.Fragment {
	var fragments []ast.Fragment
	for !p.c.Is(types.SEMICOLON, types.BODYCLOSED) {
		if p.c.Is(types.EOF) {
			panic(p.c.end("reading an expression"))
		}
		fragments = append(fragments, ast.NewFragment(p.c.Advance()))
	}
	return fragments
}

func (p *Parser) parseType() ast.Type {
	tok := p.c.Peek()
	t, ok := ast.TypeOf(tok.Kind)
	if !ok {
		if tok.Kind == types.EOF {
			panic(p.c.end("expecting a type"))
		}
		panic(errors.ExpectedType{
			Got:      tok,
			Index:    p.c.Pos(),
			Location: tok.Location,
		})
	}

	p.c.Advance()
	if p.options.CollapseTypeRuns {
		for p.c.Is(tok.Kind) {
			p.c.Advance()
		}
	}

	return t
}
