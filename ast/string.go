package ast

import (
	"fmt"
	"strings"
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (s Struct) String() string {
	var fields []string
	for _, f := range s.Fields {
		fields = append(fields, f.Name+": "+f.Type.String())
	}
	return fmt.Sprintf("struct %s { %s }", s.Name, strings.Join(fields, ", "))
}

func (f Function) signature() string {
	var params []string
	for _, p := range f.Parameters {
		params = append(params, p.Name+": "+p.Type.String())
	}
	return fmt.Sprintf("fun %s(%s): %s", f.Name, strings.Join(params, ", "), f.Returns)
}

func (f Function) String() string {
	var b strings.Builder
	b.WriteString(f.signature())
	b.WriteString(" {\n")
	for _, stmt := range f.Body {
		b.WriteString("    ")
		b.WriteString(StatementString(stmt))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func (m MainFunction) String() string {
	return "entry " + m.Function.String()
}

func (a Assignment) String() string {
	if a.Value != nil {
		return fmt.Sprintf("%s = %s;", a.Target, ExpressionString(a.Value))
	}
	var parts []string
	for _, f := range a.Fragments {
		parts = append(parts, f.Token.Text())
	}
	return fmt.Sprintf("%s = %s; // unshaped", a.Target, strings.Join(parts, " "))
}

func (u Unimplemented) String() string {
	return "<unimplemented: " + u.Context + ">"
}

func StatementString(s Statement) string {
	switch v := s.(type) {
	case Assignment:
		return v.String()
	case Unimplemented:
		return v.String()
	}
	return fmt.Sprintf("%#v", s)
}

func ExpressionString(e Expression) string {
	switch v := e.(type) {
	case Literal:
		return fmt.Sprint(v.Value)
	case Variable:
		return v.Name
	case BinaryOp:
		return fmt.Sprintf("(%s %s %s)", ExpressionString(v.Left), v.Op.Symbol(), ExpressionString(v.Right))
	case UnaryOp:
		return v.Op.Symbol() + ExpressionString(v.Operand)
	case Call:
		var args []string
		for _, arg := range v.Arguments {
			args = append(args, ExpressionString(arg))
		}
		return v.Function + "(" + strings.Join(args, ", ") + ")"
	case FieldAccess:
		return ExpressionString(v.Of) + "." + v.Field
	case StructLiteral:
		var fields []string
		for _, f := range v.Fields {
			fields = append(fields, f.Name+": "+ExpressionString(f.Value))
		}
		return v.Name + " { " + strings.Join(fields, ", ") + " }"
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%#v", e)
}

// Format renders declarations one after another, separated by blank lines.
func Format(decls []Declaration) string {
	var out []string
	for _, d := range decls {
		switch v := d.(type) {
		case Struct:
			out = append(out, v.String())
		case Function:
			out = append(out, v.String())
		case MainFunction:
			out = append(out, v.String())
		}
	}
	return strings.Join(out, "\n\n")
}
