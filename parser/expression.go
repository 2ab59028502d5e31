package parser

import (
	"fmt"

	"github.com/fetttttjoe/Compiler/ast"
	"github.com/fetttttjoe/Compiler/errors"
	"github.com/fetttttjoe/Compiler/types"
)

// binary lists the operators that combine two operands. Their binding strength
// comes from the fragment precedence table; everything not in Sum or Product
// binds at Lowest.
var binary = map[types.TokenKind]bool{
	types.PLUS:      true,
	types.MINUS:     true,
	types.ASTERISK:  true,
	types.SLASH:     true,
	types.PERCENT:   true,
	types.LESS:      true,
	types.GREATER:   true,
	types.AMPERSAND: true,
	types.PIPE:      true,
	types.AND:       true,
	types.OR:        true,
}

type fragmentReader struct {
	fragments []ast.Fragment
	i         int
}

func (r *fragmentReader) peekIs(k ...types.TokenKind) bool {
	return r.i < len(r.fragments) && r.fragments[r.i].Token.Is(k...)
}

func (r *fragmentReader) next() (ast.Fragment, error) {
	if r.i >= len(r.fragments) {
		return ast.Fragment{}, fmt.Errorf("expression ends early")
	}
	f := r.fragments[r.i]
	r.i++
	return f, nil
}

func (r *fragmentReader) expect(k ...types.TokenKind) (ast.Fragment, error) {
	f, err := r.next()
	if err != nil {
		return f, fmt.Errorf("expected %s: %w", k[0], err)
	}
	if !f.Token.Is(k...) {
		return f, fmt.Errorf("expected %s, got %s", k[0], f.Token)
	}
	return f, nil
}

// BuildExpression folds a flat fragment stream into an expression tree by
// precedence climbing. All binary operators are left associative.
func BuildExpression(fragments []ast.Fragment) (ast.Expression, error) {
	if len(fragments) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	r := &fragmentReader{fragments: fragments}
	expr, err := r.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if r.i < len(fragments) {
		return nil, fmt.Errorf("unexpected %s after expression", fragments[r.i].Token)
	}

	return expr, nil
}

func (r *fragmentReader) parseExpression(min ast.Precedence) (ast.Expression, error) {
	left, err := r.parsePrimary()
	if err != nil {
		return nil, err
	}

	for r.i < len(r.fragments) {
		op := r.fragments[r.i]
		if !binary[op.Token.Kind] || op.Precedence < min {
			break
		}
		r.i++

		right, err := r.parseExpression(op.Precedence + 1)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryOp{Left: left, Op: op.Token.Kind, Right: right}
	}

	return left, nil
}

func (r *fragmentReader) parsePrimary() (ast.Expression, error) {
	f, err := r.next()
	if err != nil {
		return nil, err
	}

	var expr ast.Expression
	switch f.Token.Kind {
	case types.INT:
		expr = ast.Literal{Value: f.Token.Int}
	case types.IDENT:
		switch {
		case r.peekIs(types.LPAREN):
			expr, err = r.parseCall(f.Token.Literal)
		case r.peekIs(types.LBRACKET):
			expr, err = r.parseStructLiteral(f.Token.Literal)
		default:
			expr = ast.Variable{Name: f.Token.Literal}
		}
	case types.LPAREN:
		expr, err = r.parseExpression(ast.Lowest)
		if err == nil {
			_, err = r.expect(types.RPAREN)
		}
	case types.MINUS, types.BANG:
		var operand ast.Expression
		operand, err = r.parsePrimary()
		expr = ast.UnaryOp{Op: f.Token.Kind, Operand: operand}
	default:
		return nil, fmt.Errorf("unexpected %s", f.Token)
	}
	if err != nil {
		return nil, err
	}

	for r.peekIs(types.PERIOD) {
		r.i++
		field, err := r.expect(types.IDENT)
		if err != nil {
			return nil, err
		}
		expr = ast.FieldAccess{Of: expr, Field: field.Token.Literal}
	}

	return expr, nil
}

// parseCall is called with the callee consumed and the opening paren next.
func (r *fragmentReader) parseCall(name string) (ast.Expression, error) {
	r.i++
	call := ast.Call{Function: name}

	for !r.peekIs(types.RPAREN) {
		arg, err := r.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
		call.Arguments = append(call.Arguments, arg)

		if !r.peekIs(types.COMMA) {
			break
		}
		r.i++
	}

	if _, err := r.expect(types.RPAREN); err != nil {
		return nil, err
	}
	return call, nil
}

// parseStructLiteral is called with the struct name consumed and the opening
// brace next. The closing brace is a body close when the literal is lexed on its own.
func (r *fragmentReader) parseStructLiteral(name string) (ast.Expression, error) {
	r.i++
	lit := ast.StructLiteral{Name: name}

	seen := map[string]bool{}
	for r.peekIs(types.IDENT) {
		tok := r.fragments[r.i].Token
		field := tok.Literal
		r.i++
		if _, err := r.expect(types.COLON); err != nil {
			return nil, err
		}
		if seen[field] {
			return nil, errors.DuplicateField{
				Name:     field,
				In:       "the literal of " + name,
				Location: tok.Location,
			}
		}
		seen[field] = true

		value, err := r.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
		lit.Fields = append(lit.Fields, ast.FieldValue{Name: field, Value: value})

		if !r.peekIs(types.COMMA) {
			break
		}
		r.i++
	}

	if _, err := r.expect(types.RBRACKET, types.BODYCLOSED); err != nil {
		return nil, err
	}
	return lit, nil
}
