package msgs

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/akrennmair/onyx/token"
)

func TestMessageText(t *testing.T) {
	testData := []struct {
		msg  Message
		text string
	}{
		{Message{Kind: ExpectedToken, Args: []string{";", "}"}}, "expected token ';', got '}'"},
		{Message{Kind: UnexpectedToken, Args: []string{"->"}}, "unexpected token '->'"},
		{Message{Kind: UnknownType, Args: []string{"int"}}, "unknown type 'int'"},
		{Message{Kind: UnresolvedSymbol, Args: []string{"y"}}, "unresolved symbol 'y'"},
		{Message{Kind: RedeclaredType, Args: []string{"i32"}}, "'i32' is a built-in type and cannot be redeclared"},
		{Message{Kind: ExpectedToken, Args: []string{";"}}, "expected token ';', got '?'"},
	}

	for _, tt := range testData {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.text, tt.msg.Text())
		})
	}
}

func TestMessagesCollect(t *testing.T) {
	var m Messages
	var sink Sink = &m

	pos := token.Pos{Filename: "a.onyx", Line: 3, Column: 7}
	sink.Add(UnknownType, pos, "foo")
	sink.Add(ExpectedToken, pos, ":", "symbol")

	require.Equal(t, 2, m.Len())
	require.Equal(t, []Kind{UnknownType, ExpectedToken}, m.Kinds())
	require.True(t, m.Has(ExpectedToken))
	require.False(t, m.Has(UnexpectedToken))
	require.Equal(t, "a.onyx:3:7: error: unknown type 'foo'", m.List()[0].String())
}

func TestMessagesPrint(t *testing.T) {
	var m Messages
	for i := 0; i < 2; i++ {
		m.Add(UnexpectedToken, token.Pos{Line: i + 1, Column: 1}, "}")
	}

	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))
	require.Equal(t,
		"1:1: error: unexpected token '}'\n"+
			"2:1: error: unexpected token '}'\n",
		buf.String())
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{ExpectedToken, UnexpectedToken, UnknownType, UnresolvedSymbol, RedeclaredType} {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok)
		require.Equal(t, k, parsed)
	}

	_, ok := ParseKind("Bogus")
	require.False(t, ok)
}
