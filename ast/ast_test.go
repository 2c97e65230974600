package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akrennmair/onyx/token"
	"github.com/akrennmair/onyx/types"
)

func TestArenaNew(t *testing.T) {
	a := NewArena()

	for k := KindError; k < kindCount; k++ {
		n := a.New(k)
		require.NotNil(t, n, "kind %s", k)
		h := n.Head()
		require.Equal(t, k, h.Kind)
		require.Zero(t, h.Flags)
		require.Nil(t, h.Token)
		require.Nil(t, h.Type)
		require.Nil(t, h.Next)
	}

	require.Equal(t, int(kindCount), a.Len())
	require.IsType(t, &Binary{}, a.New(KindLessEqual))
	require.IsType(t, &Unary{}, a.New(KindCast))

	a.Release()
	require.Zero(t, a.Len())
}

func TestArenaUniqueAcrossSlabs(t *testing.T) {
	a := NewArena()
	seen := map[*Local]bool{}

	for i := 0; i < 3*slabSize; i++ {
		l := a.NewLocal()
		require.False(t, seen[l], "local %d handed out twice", i)
		seen[l] = true
		l.Flags = FlagLValue
	}

	for l := range seen {
		require.Equal(t, KindLocal, l.Kind)
		require.Equal(t, FlagLValue, l.Flags)
	}
}

func TestArenaInvalidKind(t *testing.T) {
	require.Panics(t, func() {
		NewArena().New(kindCount)
	})
}

func TestKindString(t *testing.T) {
	require.Equal(t, "FUNCDEF", KindFuncDef.String())
	require.Equal(t, "ASSIGN", KindAssignment.String())
	require.Equal(t, "LESS_EQUAL", KindLessEqual.String())
	require.Equal(t, "INVALID(99)", Kind(99).String())
}

func TestFlags(t *testing.T) {
	f := FlagExported | FlagConst
	require.True(t, f.Has(FlagExported))
	require.True(t, f.Has(FlagConst))
	require.False(t, f.Has(FlagLValue))
	require.Equal(t, "exported|const", f.String())
}

func TestChainAndIsNil(t *testing.T) {
	a := NewArena()
	b := a.NewBlock()
	r1 := a.NewReturn()
	r2 := a.NewReturn()
	b.Body = r1
	r1.Next = r2

	require.Equal(t, []Node{r1, r2}, b.Statements())
	require.True(t, IsNil(nil))
	require.True(t, IsNil((*Block)(nil)))
	require.False(t, IsNil(b))
	require.Empty(t, Chain((*Local)(nil)))
}

func TestSexpr(t *testing.T) {
	a := NewArena()

	sym := func(text string) *token.Token {
		return &token.Token{Kind: token.Symbol, Text: text}
	}

	prog := a.NewProgram()
	fn := a.NewFuncDef()
	fn.Token = sym("main")
	fn.Flags |= FlagExported
	fn.ReturnType = types.Builtin(types.KindVoid)

	param := a.NewParam()
	param.Token = sym("a")
	param.Type = types.Builtin(types.KindInt32)
	param.Count = 1
	fn.Params = param

	body := a.NewBlock()
	fn.Body = body

	local := a.NewLocal()
	local.Token = sym("x")
	local.Type = types.Builtin(types.KindInt32)

	lit := a.NewLiteral()
	lit.Token = &token.Token{Kind: token.LiteralNumeric, Text: "1"}

	sum := a.NewBinary(KindAdd)
	sum.Left = param
	sum.Right = lit

	assign := a.NewAssignment()
	assign.Target = local
	assign.Value = sum

	neg := a.NewUnary(KindNegate)
	neg.Operand = local

	ret := a.NewReturn()
	ret.Expr = neg

	body.Body = assign
	assign.Next = ret
	prog.Next = fn

	empty := a.NewFuncDef()
	empty.Token = sym("f")
	empty.ReturnType = types.Unknown
	fn.Next = empty

	require.Equal(t,
		"(program (funcdef main exported (params (param a i32)) void (block (assign (local x i32) (add (param a i32) (literal 1))) (return (negate (local x i32))))) (funcdef f (params) unknown ---))",
		Sexpr(prog))
	require.Equal(t, "nil", Sexpr(nil))
	require.Equal(t, "(assign nil nil)", Sexpr(a.NewAssignment()))
	require.Equal(t, "(error)", Sexpr(a.NewError()))
}

func TestSexprFunctionReference(t *testing.T) {
	a := NewArena()

	fn := a.NewFuncDef()
	fn.Token = &token.Token{Kind: token.Symbol, Text: "loop"}
	fn.ReturnType = types.Builtin(types.KindInt64)

	ret := a.NewReturn()
	ret.Expr = fn
	fn.Body = a.NewBlock()
	fn.Body.Body = ret

	prog := a.NewProgram()
	prog.Next = fn

	const expected = "(funcdef loop (params) i64 (block (return (func loop i64))))"
	require.Equal(t, "(program "+expected+")", Sexpr(prog))
	require.Equal(t, expected, Sexpr(fn))
	require.Equal(t, "(return (func loop i64))", Sexpr(ret))
}
