package parser

import (
	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/token"
	"github.com/akrennmair/onyx/types"
)

// isBinding reports whether n is a declaration node. Such nodes are what a
// bare identifier expression evaluates to, and linking them into a
// statement chain would overwrite their Next.
func isBinding(n ast.Node) bool {
	switch n.(type) {
	case *ast.Local, *ast.Param, *ast.TypeRef, *ast.FuncDef:
		return true
	}
	return false
}

// parseExpressionStatement handles declarations (name : [type] [= expr])
// and assignments (name = expr). The bool result reports whether the
// leading symbol was consumed; if it is false, the cursor is unchanged.
func (p *Parser) parseExpressionStatement() (ast.Node, bool) {
	if p.current().Kind != token.Symbol {
		return nil, false
	}
	symbol := p.expect(token.Symbol)

	switch p.current().Kind {
	case token.SymColon:
		p.advance()

		typ := types.Unknown
		if p.current().Kind == token.Symbol {
			typ = p.parseType()
		}

		local := p.arena.NewLocal()
		local.Token = symbol
		local.Type = typ
		p.scopes.insert(local)

		if p.current().Kind == token.SymEquals {
			p.advance()

			expr := p.parseExpression()
			assignment := p.arena.NewAssignment()
			assignment.Token = symbol
			assignment.Target = local
			assignment.Value = expr
			return assignment, true
		}
		return nil, true

	case token.SymEquals:
		p.advance()

		lval := p.scopes.lookup(symbol.Text)
		if lval == nil {
			p.unresolvedSymbol(symbol)
		}

		rval := p.parseExpression()
		assignment := p.arena.NewAssignment()
		assignment.Token = symbol
		assignment.Target = lval
		assignment.Value = rval
		return assignment, true
	}

	p.retreat()
	return nil, false
}

func (p *Parser) parseReturnStatement() ast.Node {
	ret := p.arena.NewReturn()
	ret.Token = p.expect(token.KeywordReturn)
	ret.Type = types.Builtin(types.KindVoid)

	if !isTerminatingToken(p.current().Kind) {
		expr := p.parseExpression()
		if expr == nil || isErrorNode(expr) {
			return p.errorNode
		}
		ret.Expr = expr
	}

	return ret
}

// parseIfStatement is not implemented yet; if statements always yield the
// error node.
func (p *Parser) parseIfStatement() ast.Node {
	return p.errorNode
}

// parseStatement returns nil if no statement starts at the current token.
func (p *Parser) parseStatement() ast.Node {
	switch p.current().Kind {
	case token.KeywordReturn:
		return p.parseReturnStatement()

	case token.OpenBrace:
		if block := p.parseBlock(false); block != nil {
			return block
		}
		return nil

	case token.Symbol:
		if stmt, consumed := p.parseExpressionStatement(); consumed {
			return stmt
		}
		return p.parseExpression()

	case token.OpenParen, token.SymPlus, token.SymMinus, token.SymBang,
		token.LiteralNumeric, token.LiteralString:
		return p.parseExpression()

	case token.KeywordIf:
		return p.parseIfStatement()
	}

	return nil
}

// parseBlock parses { stmt; ... } or the empty block ---, for which nil is
// returned. Every block opens a scope; only function bodies keep a
// reference to it.
func (p *Parser) parseBlock(belongsToFunction bool) *ast.Block {
	if p.current().Kind == token.SymMinus {
		p.expect(token.SymMinus)
		p.expect(token.SymMinus)
		p.expect(token.SymMinus)
		return nil
	}

	block := p.arena.NewBlock()
	block.Token = p.expect(token.OpenBrace)

	scope := p.scopes.enter()
	if belongsToFunction {
		block.Scope = scope
	}
	p.logger.Printf("entered scope at %s", p.current().Pos)

	var last ast.Node
	for p.current().Kind != token.CloseBrace && p.current().Kind != token.EndStream {
		stmt := p.parseStatement()

		if stmt != nil && !isErrorNode(stmt) && !isBinding(stmt) {
			if last == nil {
				block.Body = stmt
			} else {
				last.Head().Next = stmt
			}
			last = stmt
		}

		if k := p.current().Kind; k != token.SymSemicolon {
			p.expectedToken(token.SymSemicolon, p.current())
			if k == token.CloseBrace || k == token.EndStream {
				break
			}
		}
		p.advance()
	}

	p.expect(token.CloseBrace)

	p.scopes.leave()
	p.logger.Printf("left scope at %s", p.previous().Pos)

	return block
}
