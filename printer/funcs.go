package printer

import (
	"fmt"
	"strings"

	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/types"
)

var operators = map[ast.Kind]string{
	ast.KindAdd:      "+",
	ast.KindMinus:    "-",
	ast.KindMultiply: "*",
	ast.KindDivide:   "/",
	ast.KindModulus:  "%",
	ast.KindNegate:   "-",
	ast.KindNot:      "!",
}

// frame is a statement or block together with its indentation depth.
type frame struct {
	Node  ast.Node
	Depth int
}

func at(n ast.Node, depth int) frame {
	return frame{Node: n, Depth: depth}
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

func inc(i int) int {
	return i + 1
}

func kind(n ast.Node) string {
	if ast.IsNil(n) {
		return ""
	}
	return n.Head().Kind.String()
}

func exported(n ast.Node) bool {
	return n.Head().Flags.Has(ast.FlagExported)
}

func typeName(t *types.Info) string {
	return t.String()
}

// localType returns the declared type followed by a space, or nothing if
// the type was omitted.
func localType(n ast.Node) string {
	if t := n.Head().Type; t.IsResolved() {
		return t.Name + " "
	}
	return ""
}

// isDecl reports whether the assignment is the initializer of the local it
// assigns to. Both are built from the same symbol token.
func isDecl(n ast.Node) bool {
	assignment, ok := n.(*ast.Assignment)
	if !ok {
		return false
	}
	local, ok := assignment.Target.(*ast.Local)
	return ok && local.Token != nil && local.Token == assignment.Token
}

func params(fn *ast.FuncDef) string {
	var buf strings.Builder

	for idx, param := range fn.ParamList() {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(ast.Name(param))
		buf.WriteString(" : ")
		buf.WriteString(typeName(param.Type))
	}

	return buf.String()
}

func toExpr(n ast.Node) (string, error) {
	if ast.IsNil(n) {
		return "", fmt.Errorf("missing expression")
	}

	switch e := n.(type) {
	case *ast.Literal:
		return ast.Name(e), nil
	case *ast.Local, *ast.Param, *ast.FuncDef:
		return ast.Name(e), nil
	case *ast.TypeRef:
		return typeName(e.Type), nil
	case *ast.Binary:
		op, ok := operators[e.Kind]
		if !ok {
			return "", fmt.Errorf("no operator for %s", e.Kind)
		}
		left, err := toExpr(e.Left)
		if err != nil {
			return "", err
		}
		right, err := operand(e.Right)
		if err != nil {
			return "", err
		}
		return left + " " + op + " " + right, nil
	case *ast.Unary:
		op, ok := operators[e.Kind]
		if !ok {
			return "", fmt.Errorf("no operator for %s", e.Kind)
		}
		x, err := operand(e.Operand)
		if err != nil {
			return "", err
		}
		return op + x, nil
	case *ast.Call:
		var buf strings.Builder
		buf.WriteString(ast.Name(e))
		buf.WriteString("(")
		for idx, arg := range e.Args {
			if idx > 0 {
				buf.WriteString(", ")
			}
			s, err := toExpr(arg)
			if err != nil {
				return "", err
			}
			buf.WriteString(s)
		}
		buf.WriteString(")")
		return buf.String(), nil
	case *ast.Error:
		return "", fmt.Errorf("error node at %s", errorPos(e))
	default:
		return "", fmt.Errorf("can't print %s as expression", n.Head().Kind)
	}
}

// operand renders a right-hand operand, grouping binary expressions since
// all operators associate to the left at the same level.
func operand(n ast.Node) (string, error) {
	s, err := toExpr(n)
	if err != nil {
		return "", err
	}
	if _, ok := n.(*ast.Binary); ok {
		return "(" + s + ")", nil
	}
	return s, nil
}

func errorPos(n ast.Node) string {
	if t := n.Head().Token; t != nil {
		return t.Pos.String()
	}
	return "unknown position"
}
