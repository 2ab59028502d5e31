package ast

import "github.com/fetttttjoe/Compiler/types"

//go:generate sh -c "cd ../tool && go run . ../ast/sumtypes.adt ../ast/sumtypes.go ast"

type Type int

const (
	Int Type = iota
	Float
)

// TypeOf maps a type-name token kind to its Type.
func TypeOf(k types.TokenKind) (Type, bool) {
	switch k {
	case types.INTTYPE:
		return Int, true
	case types.FLOATTYPE:
		return Float, true
	}
	return 0, false
}

type Field struct {
	Name string
	Type Type
}

type Parameter struct {
	Name string
	Type Type
}

type Struct struct {
	Name   string
	Fields []Field
}

type Function struct {
	Name       string
	Parameters []Parameter
	Returns    Type
	Body       []Statement
}

// MainFunction is the program entry point.
type MainFunction struct {
	Function Function
}

type Assignment struct {
	Target    string
	Fragments []Fragment
	// Value is nil when the fragments do not form an expression.
	Value    Expression
	Location types.Span
}

// Unimplemented stands in for a statement that is recognised but not lowered yet,
// or not recognised at all.
type Unimplemented struct {
	Context string
	Token   types.Token
	Index   int
}

type Literal struct {
	Value int32
}

type Variable struct {
	Name string
}

type BinaryOp struct {
	Left  Expression
	Op    types.TokenKind
	Right Expression
}

type UnaryOp struct {
	Op      types.TokenKind
	Operand Expression
}

type Call struct {
	Function  string
	Arguments []Expression
}

type FieldAccess struct {
	Of    Expression
	Field string
}

type FieldValue struct {
	Name  string
	Value Expression
}

type StructLiteral struct {
	Name   string
	Fields []FieldValue
}
