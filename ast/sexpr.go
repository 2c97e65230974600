package ast

import (
	"strings"

	"github.com/akrennmair/onyx/types"
)

// Sexpr renders n and everything reachable from it as a single-line
// S-expression, e.g.
//
//	(program (funcdef main (params) void (block (return))))
//
// Bindings (locals, parameters, types, functions) are rendered by name and
// type wherever they are referenced. A function is only rendered in full as
// a top-level declaration or as n itself. An absent node is rendered as nil.
func Sexpr(n Node) string {
	var buf strings.Builder
	if fn, ok := n.(*FuncDef); ok && fn != nil {
		writeFuncDef(&buf, fn)
	} else {
		writeSexpr(&buf, n)
	}
	return buf.String()
}

func writeSexpr(buf *strings.Builder, n Node) {
	if isNil(n) {
		buf.WriteString("nil")
		return
	}

	switch v := n.(type) {
	case *Program:
		buf.WriteString("(program")
		for _, decl := range v.Decls() {
			buf.WriteByte(' ')
			if fn, ok := decl.(*FuncDef); ok {
				writeFuncDef(buf, fn)
			} else {
				writeSexpr(buf, decl)
			}
		}
		buf.WriteString(")")
	case *FuncDef:
		// a reference; the definition itself is printed by writeFuncDef
		buf.WriteString("(func ")
		buf.WriteString(nameOrPlaceholder(v))
		buf.WriteByte(' ')
		buf.WriteString(typeName(v.ReturnType))
		buf.WriteString(")")
	case *Block:
		buf.WriteString("(block")
		for _, stmt := range v.Statements() {
			buf.WriteByte(' ')
			writeSexpr(buf, stmt)
		}
		buf.WriteString(")")
	case *Local:
		writeBinding(buf, "local", v)
	case *Param:
		writeBinding(buf, "param", v)
	case *TypeRef:
		buf.WriteString("(type ")
		buf.WriteString(typeName(v.Type))
		buf.WriteString(")")
	case *Literal:
		buf.WriteString("(literal ")
		buf.WriteString(nameOrPlaceholder(v))
		buf.WriteString(")")
	case *Binary:
		buf.WriteByte('(')
		buf.WriteString(strings.ToLower(v.Kind.String()))
		buf.WriteByte(' ')
		writeSexpr(buf, v.Left)
		buf.WriteByte(' ')
		writeSexpr(buf, v.Right)
		buf.WriteByte(')')
	case *Unary:
		buf.WriteByte('(')
		buf.WriteString(strings.ToLower(v.Kind.String()))
		buf.WriteByte(' ')
		writeSexpr(buf, v.Operand)
		buf.WriteByte(')')
	case *Call:
		buf.WriteString("(call ")
		buf.WriteString(nameOrPlaceholder(v))
		for _, arg := range v.Args {
			buf.WriteByte(' ')
			writeSexpr(buf, arg)
		}
		buf.WriteString(")")
	case *Assignment:
		buf.WriteString("(assign ")
		writeSexpr(buf, v.Target)
		buf.WriteByte(' ')
		writeSexpr(buf, v.Value)
		buf.WriteString(")")
	case *Return:
		buf.WriteString("(return")
		if !isNil(v.Expr) {
			buf.WriteByte(' ')
			writeSexpr(buf, v.Expr)
		}
		buf.WriteString(")")
	case *If:
		buf.WriteString("(if ")
		writeSexpr(buf, v.Cond)
		buf.WriteByte(' ')
		writeSexpr(buf, v.True)
		buf.WriteByte(' ')
		writeSexpr(buf, v.False)
		buf.WriteString(")")
	case *Loop:
		buf.WriteString("(loop ")
		writeSexpr(buf, v.Cond)
		buf.WriteByte(' ')
		writeSexpr(buf, v.Body)
		buf.WriteString(")")
	case *Scope:
		buf.WriteString("(scope)")
	case *Error:
		buf.WriteString("(error)")
	default:
		buf.WriteString("(?)")
	}
}

func writeFuncDef(buf *strings.Builder, fn *FuncDef) {
	buf.WriteString("(funcdef ")
	buf.WriteString(nameOrPlaceholder(fn))
	if fn.Flags.Has(FlagExported) {
		buf.WriteString(" exported")
	}
	buf.WriteString(" (params")
	for _, p := range fn.ParamList() {
		buf.WriteByte(' ')
		writeSexpr(buf, p)
	}
	buf.WriteString(") ")
	buf.WriteString(typeName(fn.ReturnType))
	buf.WriteByte(' ')
	if fn.Body == nil {
		buf.WriteString("---")
	} else {
		writeSexpr(buf, fn.Body)
	}
	buf.WriteString(")")
}

func writeBinding(buf *strings.Builder, label string, n Node) {
	buf.WriteByte('(')
	buf.WriteString(label)
	buf.WriteByte(' ')
	buf.WriteString(nameOrPlaceholder(n))
	buf.WriteByte(' ')
	buf.WriteString(typeName(n.Head().Type))
	buf.WriteByte(')')
}

func nameOrPlaceholder(n Node) string {
	if name := Name(n); name != "" {
		return name
	}
	return "?"
}

func typeName(t *types.Info) string {
	return t.String()
}
