package parser

import (
	"github.com/akrennmair/onyx/msgs"
	"github.com/akrennmair/onyx/token"
)

// report passes a diagnostic to the sink unless Config.MaxDiagnostics of
// them have been passed on already.
func (p *Parser) report(kind msgs.Kind, pos token.Pos, args ...string) {
	p.logger.Printf("%s: %s %v", pos, kind, args)

	p.reported++
	if limit := p.config.MaxDiagnostics; limit > 0 && p.reported > limit {
		return
	}
	p.sink.Add(kind, pos, args...)
}

func (p *Parser) expectedToken(want token.Kind, got *token.Token) {
	p.report(msgs.ExpectedToken, got.Pos, want.String(), got.Kind.String())
}

func (p *Parser) unexpectedToken(got *token.Token) {
	p.report(msgs.UnexpectedToken, got.Pos, got.Kind.String())
}

func (p *Parser) redeclaredType(name *token.Token) {
	p.report(msgs.RedeclaredType, name.Pos, name.Text)
}

func (p *Parser) unresolvedSymbol(sym *token.Token) {
	if !p.config.ReportUnresolved {
		return
	}
	p.report(msgs.UnresolvedSymbol, sym.Pos, sym.Text)
}

// expect consumes the current token, whatever it is. If it is not of kind
// k, an ExpectedToken diagnostic is emitted and nil is returned.
func (p *Parser) expect(k token.Kind) *token.Token {
	t := p.current()
	p.advance()

	if t.Kind != k {
		p.expectedToken(k, t)
		return nil
	}

	return t
}
