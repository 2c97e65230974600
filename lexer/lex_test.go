package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akrennmair/onyx/token"
)

func kinds(tokens []token.Token) []token.Kind {
	var ks []token.Kind
	for _, t := range tokens {
		ks = append(ks, t.Kind)
	}
	return ks
}

func TestLexer(t *testing.T) {
	testData := []struct {
		name  string
		input string
		kinds []token.Kind
	}{
		{
			"empty",
			"",
			[]token.Kind{token.EndStream},
		},
		{
			"function header",
			"main :: proc () -> void",
			[]token.Kind{token.Symbol, token.SymColon, token.SymColon, token.KeywordProc, token.OpenParen, token.CloseParen, token.RightArrow, token.Symbol, token.EndStream},
		},
		{
			"empty block sigil",
			"---",
			[]token.Kind{token.SymMinus, token.SymMinus, token.SymMinus, token.EndStream},
		},
		{
			"declaration with initializer",
			"x : i32 = 1;",
			[]token.Kind{token.Symbol, token.SymColon, token.Symbol, token.SymEquals, token.LiteralNumeric, token.SymSemicolon, token.EndStream},
		},
		{
			"arithmetic",
			"a + b - c * d / e % f",
			[]token.Kind{token.Symbol, token.SymPlus, token.Symbol, token.SymMinus, token.Symbol, token.SymStar, token.Symbol, token.SymFslash, token.Symbol, token.SymPercent, token.Symbol, token.EndStream},
		},
		{
			"comments are kept",
			"// leading\nreturn; // trailing",
			[]token.Kind{token.Comment, token.KeywordReturn, token.SymSemicolon, token.Comment, token.EndStream},
		},
		{
			"arrows and angles",
			"<- < > ->",
			[]token.Kind{token.LeftArrow, token.OpenAngle, token.CloseAngle, token.RightArrow, token.EndStream},
		},
		{
			"keywords",
			"use export struct if else for do return foreign global",
			[]token.Kind{token.KeywordUse, token.KeywordExport, token.KeywordStruct, token.KeywordIf, token.KeywordElse, token.KeywordFor, token.KeywordDo, token.KeywordReturn, token.KeywordForeign, token.KeywordGlobal, token.EndStream},
		},
		{
			"string and float literals",
			`"hello \"world\"" 3.25`,
			[]token.Kind{token.LiteralString, token.LiteralNumeric, token.EndStream},
		},
		{
			"unknown rune",
			"a $ b",
			[]token.Kind{token.Symbol, token.Unknown, token.Symbol, token.EndStream},
		},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Lex(tt.name, tt.input)
			require.Equal(t, tt.kinds, kinds(tokens))
		})
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := Lex("pos.onyx", "main ::\n  proc")

	require.Len(t, tokens, 5)
	require.Equal(t, token.Pos{Filename: "pos.onyx", Line: 1, Column: 1}, tokens[0].Pos)
	require.Equal(t, token.Pos{Filename: "pos.onyx", Line: 1, Column: 6}, tokens[1].Pos)
	require.Equal(t, token.Pos{Filename: "pos.onyx", Line: 2, Column: 3}, tokens[3].Pos)
	require.Equal(t, "proc", tokens[3].Text)
	require.Equal(t, "pos.onyx:2:3", tokens[3].Pos.String())
}

func TestLexerSymbolText(t *testing.T) {
	tokens := Lex("", "some_name42 12")

	require.Equal(t, "some_name42", tokens[0].Text)
	require.Equal(t, "12", tokens[1].Text)
}
