package parser

import (
	"log"

	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/types"
)

// scopeTable maps identifiers to the node currently denoting them. Each
// open scope remembers its locals so that leaving it can undo exactly the
// bindings it made, restoring whatever they shadowed.
type scopeTable struct {
	identifiers map[string]ast.Node
	curr        *ast.Scope
	arena       *ast.Arena
	logger      *log.Logger
}

func newScopeTable(arena *ast.Arena, logger *log.Logger) *scopeTable {
	s := &scopeTable{
		identifiers: make(map[string]ast.Node),
		arena:       arena,
		logger:      logger,
	}

	for _, info := range types.Builtins() {
		typeNode := arena.NewTypeRef()
		typeNode.Type = info
		s.identifiers[info.Name] = typeNode
	}

	return s
}

func (s *scopeTable) enter() *ast.Scope {
	scope := s.arena.NewScope()
	scope.PrevScope = s.curr
	s.curr = scope
	return scope
}

// leave closes the current scope and returns the enclosing one, which is
// nil at the top level.
func (s *scopeTable) leave() *ast.Scope {
	if s.curr == nil {
		panic(&FatalError{Msg: "leave without enter"})
	}

	for local := s.curr.LastLocal; local != nil; local = local.PrevLocal {
		name := local.Token.Text
		if local.Shadowed != nil {
			s.identifiers[name] = local.Shadowed
		} else {
			delete(s.identifiers, name)
		}
	}

	s.curr = s.curr.PrevScope
	return s.curr
}

func (s *scopeTable) insert(local *ast.Local) {
	if s.curr == nil {
		panic(&FatalError{Pos: local.Token.Pos, Msg: "local " + local.Token.Text + " declared outside of any scope"})
	}

	local.PrevLocal = s.curr.LastLocal
	s.curr.LastLocal = local

	name := local.Token.Text
	if prev, ok := s.identifiers[name]; ok {
		local.Shadowed = prev
	}
	s.identifiers[name] = local
}

func (s *scopeTable) lookup(name string) ast.Node {
	return s.identifiers[name]
}

// bindParams makes the parameters visible, recording what each one hides.
func (s *scopeTable) bindParams(first *ast.Param) {
	for p := first; p != nil; p = p.NextParam {
		if p.Token == nil {
			continue
		}
		p.Shadowed = s.identifiers[p.Token.Text]
		s.identifiers[p.Token.Text] = p
	}
}

// unbindParams undoes bindParams in reverse order.
func (s *scopeTable) unbindParams(first *ast.Param) {
	var params []*ast.Param
	for p := first; p != nil; p = p.NextParam {
		if p.Token != nil {
			params = append(params, p)
		}
	}

	for i := len(params) - 1; i >= 0; i-- {
		p := params[i]
		if p.Shadowed != nil {
			s.identifiers[p.Token.Text] = p.Shadowed
		} else {
			delete(s.identifiers, p.Token.Text)
		}
	}
}

// declareGlobal binds a top-level declaration for the rest of the parse.
// Names of built-in types stay bound to their type; for them nothing is
// bound and false is returned.
func (s *scopeTable) declareGlobal(n ast.Node) bool {
	name := ast.Name(n)
	if name == "" {
		return true
	}
	if _, ok := types.Lookup(name); ok {
		return false
	}
	if prev, ok := s.identifiers[name]; ok {
		s.logger.Printf("%s redeclares %s", name, prev.Head().Kind)
	}
	s.identifiers[name] = n
	return true
}
