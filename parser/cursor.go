package parser

import "github.com/akrennmair/onyx/token"

// cursor is a view over a token array that never rests on a comment.
type cursor struct {
	tokens []token.Token
	curr   int
	prev   int // -1 if nothing has been consumed yet
}

func newCursor(tokens []token.Token) cursor {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EndStream {
		var pos token.Pos
		if n > 0 {
			pos = tokens[n-1].Pos
		}
		tokens = append(tokens[:n:n], token.Token{Kind: token.EndStream, Pos: pos})
	}

	c := cursor{tokens: tokens, prev: -1}
	c.curr = c.skipForward(0)
	return c
}

func (c *cursor) skipForward(i int) int {
	for i < len(c.tokens)-1 && c.tokens[i].Kind == token.Comment {
		i++
	}
	return i
}

func (c *cursor) skipBack(i int) int {
	for i >= 0 && c.tokens[i].Kind == token.Comment {
		i--
	}
	return i
}

func (c *cursor) current() *token.Token {
	return &c.tokens[c.curr]
}

func (c *cursor) previous() *token.Token {
	if c.prev < 0 {
		return nil
	}
	return &c.tokens[c.prev]
}

// advance moves to the next non-comment token. At the end of the stream it
// stays on the EndStream token.
func (c *cursor) advance() {
	c.prev = c.curr
	if c.curr < len(c.tokens)-1 {
		c.curr = c.skipForward(c.curr + 1)
	}
}

// retreat undoes one advance.
func (c *cursor) retreat() {
	if c.prev < 0 {
		return
	}
	c.curr = c.prev
	c.prev = c.skipBack(c.curr - 1)
}

func isTerminatingToken(k token.Kind) bool {
	switch k {
	case token.SymSemicolon, token.CloseBrace, token.OpenBrace, token.EndStream:
		return true
	}
	return false
}
