package parser

import (
	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/token"
	"github.com/akrennmair/onyx/types"
)

var binaryOperators = map[token.Kind]ast.Kind{
	token.SymPlus:    ast.KindAdd,
	token.SymMinus:   ast.KindMinus,
	token.SymStar:    ast.KindMultiply,
	token.SymFslash:  ast.KindDivide,
	token.SymPercent: ast.KindModulus,
}

func isBinaryOperator(k token.Kind) bool {
	_, ok := binaryOperators[k]
	return ok
}

// parseFactor returns nil for identifiers that are not bound.
func (p *Parser) parseFactor() ast.Node {
	switch p.current().Kind {
	case token.OpenParen:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.CloseParen)
		return expr

	case token.SymMinus, token.SymBang:
		kind := ast.KindNegate
		if p.current().Kind == token.SymBang {
			kind = ast.KindNot
		}
		op := p.current()
		p.advance()

		operand := p.parseFactor()
		if isErrorNode(operand) {
			return operand
		}

		unary := p.arena.NewUnary(kind)
		unary.Token = op
		unary.Operand = operand
		return unary

	case token.SymPlus:
		p.advance()
		return p.parseFactor()

	case token.Symbol:
		sym := p.expect(token.Symbol)
		if p.current().Kind == token.OpenParen {
			return p.parseCall(sym)
		}

		node := p.scopes.lookup(sym.Text)
		if node == nil {
			p.unresolvedSymbol(sym)
		}
		return node

	case token.LiteralNumeric:
		lit := p.arena.NewLiteral()
		lit.Type = types.Builtin(types.KindInt64)
		lit.Token = p.expect(token.LiteralNumeric)
		return lit

	default:
		p.unexpectedToken(p.current())
	}

	return p.errorNode
}

// parseCall parses the argument list following a callee name. Commas
// between arguments are optional.
func (p *Parser) parseCall(sym *token.Token) ast.Node {
	call := p.arena.NewCall()
	call.Token = sym
	call.Callee = p.scopes.lookup(sym.Text)
	if call.Callee == nil {
		p.unresolvedSymbol(sym)
	}

	p.expect(token.OpenParen)

	for p.current().Kind != token.CloseParen && !isTerminatingToken(p.current().Kind) {
		if p.current().Kind == token.SymComma {
			p.advance()
			continue
		}

		arg := p.parseExpression()
		if isErrorNode(arg) {
			break
		}
		call.Args = append(call.Args, arg)
	}

	p.expect(token.CloseParen)
	return call
}

// parseBinOp folds operators and their right-hand factors onto left,
// associating to the left. All operators share one precedence level.
func (p *Parser) parseBinOp(left ast.Node) ast.Node {
	for {
		kind, ok := binaryOperators[p.current().Kind]
		if !ok {
			return left
		}

		op := p.current()
		p.advance()

		right := p.parseFactor()
		if isErrorNode(right) {
			return right
		}

		binOp := p.arena.NewBinary(kind)
		binOp.Token = op
		binOp.Left = left
		binOp.Right = right
		left = binOp
	}
}

func (p *Parser) parseExpression() ast.Node {
	left := p.parseFactor()
	if isErrorNode(left) {
		return left
	}

	if isBinaryOperator(p.current().Kind) {
		return p.parseBinOp(left)
	}

	return left
}
