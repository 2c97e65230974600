package ast

import "fmt"

const slabSize = 64

// slab hands out pointers into fixed-capacity chunks. A full chunk is
// never grown, only replaced, so returned pointers stay valid.
type slab[T any] struct {
	buf []T
}

func (s *slab[T]) alloc() *T {
	if len(s.buf) == cap(s.buf) {
		s.buf = make([]T, 0, slabSize)
	}
	s.buf = s.buf[:len(s.buf)+1]
	return &s.buf[len(s.buf)-1]
}

// Arena allocates AST nodes. It owns every node it returns; nodes are never
// freed individually. An Arena must not be shared between concurrent
// parses.
type Arena struct {
	count int

	programs    slab[Program]
	funcDefs    slab[FuncDef]
	blocks      slab[Block]
	scopes      slab[Scope]
	locals      slab[Local]
	params      slab[Param]
	binaries    slab[Binary]
	unaries     slab[Unary]
	typeRefs    slab[TypeRef]
	literals    slab[Literal]
	calls       slab[Call]
	assignments slab[Assignment]
	returns     slab[Return]
	ifs         slab[If]
	loops       slab[Loop]
	errors      slab[Error]
}

func NewArena() *Arena {
	return &Arena{}
}

// New returns a zeroed node of the variant belonging to kind, tagged with
// kind.
func (a *Arena) New(kind Kind) Node {
	var n Node
	switch {
	case kind == KindError:
		n = a.errors.alloc()
	case kind == KindProgram:
		n = a.programs.alloc()
	case kind == KindFuncDef:
		n = a.funcDefs.alloc()
	case kind == KindBlock:
		n = a.blocks.alloc()
	case kind == KindScope:
		n = a.scopes.alloc()
	case kind == KindLocal:
		n = a.locals.alloc()
	case kind == KindParam:
		n = a.params.alloc()
	case kind.IsBinary():
		n = a.binaries.alloc()
	case kind.IsUnary():
		n = a.unaries.alloc()
	case kind == KindType:
		n = a.typeRefs.alloc()
	case kind == KindLiteral:
		n = a.literals.alloc()
	case kind == KindCall:
		n = a.calls.alloc()
	case kind == KindAssignment:
		n = a.assignments.alloc()
	case kind == KindReturn:
		n = a.returns.alloc()
	case kind == KindIf:
		n = a.ifs.alloc()
	case kind == KindLoop:
		n = a.loops.alloc()
	default:
		panic(fmt.Sprintf("ast: cannot allocate node of kind %s", kind))
	}
	n.Head().Kind = kind
	a.count++
	return n
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int {
	return a.count
}

// Release drops the arena's references to its storage. Nodes handed out
// earlier must not be used by the caller afterwards.
func (a *Arena) Release() {
	*a = Arena{}
}

func (a *Arena) NewProgram() *Program       { return a.New(KindProgram).(*Program) }
func (a *Arena) NewFuncDef() *FuncDef       { return a.New(KindFuncDef).(*FuncDef) }
func (a *Arena) NewBlock() *Block           { return a.New(KindBlock).(*Block) }
func (a *Arena) NewScope() *Scope           { return a.New(KindScope).(*Scope) }
func (a *Arena) NewLocal() *Local           { return a.New(KindLocal).(*Local) }
func (a *Arena) NewParam() *Param           { return a.New(KindParam).(*Param) }
func (a *Arena) NewTypeRef() *TypeRef       { return a.New(KindType).(*TypeRef) }
func (a *Arena) NewLiteral() *Literal       { return a.New(KindLiteral).(*Literal) }
func (a *Arena) NewCall() *Call             { return a.New(KindCall).(*Call) }
func (a *Arena) NewAssignment() *Assignment { return a.New(KindAssignment).(*Assignment) }
func (a *Arena) NewReturn() *Return         { return a.New(KindReturn).(*Return) }
func (a *Arena) NewError() *Error           { return a.New(KindError).(*Error) }

func (a *Arena) NewBinary(kind Kind) *Binary {
	return a.New(kind).(*Binary)
}

func (a *Arena) NewUnary(kind Kind) *Unary {
	return a.New(kind).(*Unary)
}
