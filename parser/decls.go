package parser

import (
	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/msgs"
	"github.com/akrennmair/onyx/token"
	"github.com/akrennmair/onyx/types"
)

// parseType resolves a type name. Anything that does not name a registered
// type yields types.Unknown.
func (p *Parser) parseType() *types.Info {
	symbol := p.expect(token.Symbol)
	if symbol == nil {
		return types.Unknown
	}

	if typeNode, ok := p.scopes.lookup(symbol.Text).(*ast.TypeRef); ok {
		return typeNode.Type
	}

	p.report(msgs.UnknownType, symbol.Pos, symbol.Text)
	return types.Unknown
}

// parseFunctionParams parses ( name : type, ... ). Commas are optional. It
// returns nil for an empty list; otherwise the first parameter carries the
// parameter count.
func (p *Parser) parseFunctionParams() *ast.Param {
	p.expect(token.OpenParen)

	if p.current().Kind == token.CloseParen {
		p.advance()
		return nil
	}

	var (
		first      *ast.Param
		trailer    *ast.Param
		paramCount int
		closed     = true
	)

	for p.current().Kind != token.CloseParen {
		if k := p.current().Kind; isTerminatingToken(k) || k == token.RightArrow {
			p.expectedToken(token.CloseParen, p.current())
			closed = false
			break
		}

		if p.current().Kind == token.SymComma {
			p.advance()
			continue
		}

		paramCount++

		param := p.arena.NewParam()
		param.Token = p.expect(token.Symbol)

		if p.current().Kind == token.SymColon {
			p.advance()
			param.Type = p.parseType()
		} else {
			p.expectedToken(token.SymColon, p.current())
			param.Type = types.Unknown
		}

		if first == nil {
			first = param
		}
		if trailer != nil {
			trailer.NextParam = param
		}
		trailer = param
	}

	if first != nil {
		first.Count = paramCount
	}

	if closed {
		p.advance() // skip the )
	}
	return first
}

// parseFunctionDefinition parses proc (params) -> type body. The function
// is bound under name before its parameters are parsed, so the body can
// call it. A function named like a built-in type is parsed but not bound.
func (p *Parser) parseFunctionDefinition(name *token.Token) *ast.FuncDef {
	p.expect(token.KeywordProc)

	funcDef := p.arena.NewFuncDef()
	funcDef.Token = name
	if !p.scopes.declareGlobal(funcDef) {
		p.redeclaredType(name)
	}

	funcDef.Params = p.parseFunctionParams()

	p.expect(token.RightArrow)

	funcDef.ReturnType = p.parseType()

	p.scopes.bindParams(funcDef.Params)
	funcDef.Body = p.parseBlock(true)
	p.scopes.unbindParams(funcDef.Params)

	return funcDef
}

// parseTopLevelStatement returns nil if no declaration could be parsed. In
// that case at least one token has been consumed.
func (p *Parser) parseTopLevelStatement() ast.Node {
	switch p.current().Kind {
	case token.KeywordUse:
		p.fatalf(p.current().Pos, "use is not implemented")

	case token.KeywordExport:
		p.expect(token.KeywordExport)
		if p.current().Kind != token.Symbol {
			p.expectedToken(token.Symbol, p.current())
			break
		}

		decl := p.parseTopLevelStatement()
		if decl != nil {
			decl.Head().Flags |= ast.FlagExported
		}
		return decl

	case token.Symbol:
		symbol := p.current()
		p.advance()

		p.expect(token.SymColon)
		p.expect(token.SymColon)

		switch p.current().Kind {
		case token.KeywordProc:
			return p.parseFunctionDefinition(symbol)
		case token.KeywordStruct:
			p.fatalf(p.current().Pos, "struct is not implemented")
		default:
			p.unexpectedToken(p.current())
		}

	default:
		p.unexpectedToken(p.current())
	}

	p.logger.Printf("skipping %s at %s", p.current(), p.current().Pos)
	p.advance()
	return nil
}
