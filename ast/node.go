package ast

import (
	"github.com/akrennmair/onyx/token"
	"github.com/akrennmair/onyx/types"
)

// Node is implemented by every AST node variant. All variants embed
// Header, so the common fields are reachable through Head regardless of
// the variant.
type Node interface {
	Head() *Header
}

// Header holds the fields shared by all node variants.
type Header struct {
	Kind  Kind
	Flags Flags

	// Token is the token the node was built from. For function definitions
	// it is the symbol naming the function.
	Token *token.Token

	Type *types.Info

	// Next chains sibling statements within a block and top-level
	// declarations within a program.
	Next Node
}

func (h *Header) Head() *Header { return h }

// IsNil reports whether n is absent, including typed nil pointers stored in
// a Node.
func IsNil(n Node) bool {
	return isNil(n)
}

// Name returns the text of the node's token, or "" if it has none.
func Name(n Node) string {
	if isNil(n) || n.Head().Token == nil {
		return ""
	}
	return n.Head().Token.Text
}

// Chain collects first and every node reachable from it through Next.
func Chain(first Node) []Node {
	var nodes []Node
	for n := first; !isNil(n); n = n.Head().Next {
		nodes = append(nodes, n)
	}
	return nodes
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Program:
		return v == nil
	case *FuncDef:
		return v == nil
	case *Block:
		return v == nil
	case *Scope:
		return v == nil
	case *Local:
		return v == nil
	case *Param:
		return v == nil
	case *Binary:
		return v == nil
	case *Unary:
		return v == nil
	case *TypeRef:
		return v == nil
	case *Literal:
		return v == nil
	case *Call:
		return v == nil
	case *Assignment:
		return v == nil
	case *Return:
		return v == nil
	case *If:
		return v == nil
	case *Loop:
		return v == nil
	case *Error:
		return v == nil
	}
	return false
}

// Program is the root of a parsed file. Header.Next is the first top-level
// declaration.
type Program struct {
	Header
}

// Decls returns the top-level declarations in source order.
func (p *Program) Decls() []Node {
	return Chain(p.Next)
}

type FuncDef struct {
	Header
	ReturnType *types.Info
	Body       *Block // nil for an empty body (---)
	Params     *Param // nil if there are no parameters
}

// ParamList returns the parameters in declaration order.
func (f *FuncDef) ParamList() []*Param {
	var params []*Param
	for p := f.Params; p != nil; p = p.NextParam {
		params = append(params, p)
	}
	return params
}

type Block struct {
	Header
	ReturnType *types.Info // currently unused
	Body       Node        // first statement
	Scope      *Scope      // only set on function bodies
}

// Statements returns the statements of the block in order.
func (b *Block) Statements() []Node {
	return Chain(b.Body)
}

// Scope marks a lexical scope while it is open.
type Scope struct {
	Header
	PrevScope *Scope
	LastLocal *Local // most recently declared local
}

type Local struct {
	Header
	PrevLocal *Local // previous local declared in the same scope
	Shadowed  Node   // binding hidden by this local, if any
}

type Param struct {
	Header
	NextParam *Param
	Count     int  // number of parameters; only set on the first parameter
	Shadowed  Node // binding hidden while the function body is parsed
}

// Binary is used by the arithmetic and comparison kinds.
type Binary struct {
	Header
	Left  Node
	Right Node
}

// Unary is used by KindNegate, KindNot and KindCast.
type Unary struct {
	Header
	Operand Node
}

// TypeRef binds a type name; the descriptor is in Header.Type.
type TypeRef struct {
	Header
}

// Literal is a numeric literal; its text is in Header.Token.
type Literal struct {
	Header
}

type Call struct {
	Header
	Callee Node
	Args   []Node
}

type Assignment struct {
	Header
	Target Node // nil if the target did not resolve
	Value  Node
}

type Return struct {
	Header
	Expr Node // nil for a bare return
}

type If struct {
	Header
	Cond  Node
	True  *Block
	False *Block
}

type Loop struct {
	Header
	Cond Node
	Body *Block
}

// Error is the sentinel for "parse failed here". It is never linked into a
// Next chain.
type Error struct {
	Header
}
