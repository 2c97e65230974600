package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akrennmair/onyx/token"
)

const eof = -1

type stateFn func(*lexer) stateFn

type lexer struct {
	name  string
	input string
	state stateFn
	pos   int
	start int
	width int

	// line and column of start.
	line int
	col  int

	tokens chan token.Token
}

// Lex tokenizes input and returns the complete token array, terminated by
// an EndStream token. Comments are kept as Comment tokens.
func Lex(name, input string) []token.Token {
	l := lex(name, input)

	var tokens []token.Token
	for {
		t := l.nextToken()
		tokens = append(tokens, t)
		if t.Kind == token.EndStream {
			return tokens
		}
	}
}

func lex(name, input string) *lexer {
	l := &lexer{
		name:   name,
		input:  input,
		line:   1,
		col:    1,
		tokens: make(chan token.Token),
	}
	go l.run()
	return l
}

func (l *lexer) run() {
	for l.state = lexText; l.state != nil; {
		l.state = l.state(l)
	}
	close(l.tokens)
}

func (l *lexer) nextToken() token.Token {
	t, ok := <-l.tokens
	if !ok {
		return token.Token{Kind: token.EndStream, Pos: l.position()}
	}
	return t
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) position() token.Pos {
	return token.Pos{Filename: l.name, Line: l.line, Column: l.col}
}

// advanceStart moves start to pos, keeping line and col in sync.
func (l *lexer) advanceStart() {
	for _, r := range l.input[l.start:l.pos] {
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	l.start = l.pos
}

func (l *lexer) emit(k token.Kind) {
	l.tokens <- token.Token{Kind: k, Text: l.input[l.start:l.pos], Pos: l.position()}
	l.advanceStart()
}

func (l *lexer) ignore() {
	l.advanceStart()
}

func (l *lexer) accept(valid string) bool {
	if strings.IndexRune(valid, l.next()) >= 0 {
		return true
	}
	l.backup()
	return false
}

func (l *lexer) acceptRun(valid string) {
	for strings.IndexRune(valid, l.next()) >= 0 {
	}
	l.backup()
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.tokens <- token.Token{Kind: token.Unknown, Text: fmt.Sprintf(format, args...), Pos: l.position()}
	l.advanceStart()
	return lexText
}

var singleRuneTokens = map[rune]token.Kind{
	'(':  token.OpenParen,
	')':  token.CloseParen,
	'{':  token.OpenBrace,
	'}':  token.CloseBrace,
	'[':  token.OpenBracket,
	']':  token.CloseBracket,
	'>':  token.CloseAngle,
	'+':  token.SymPlus,
	'*':  token.SymStar,
	'%':  token.SymPercent,
	'.':  token.SymDot,
	'\\': token.SymBslash,
	':':  token.SymColon,
	';':  token.SymSemicolon,
	',':  token.SymComma,
	'=':  token.SymEquals,
	'`':  token.SymGrave,
	'~':  token.SymTilde,
	'!':  token.SymBang,
	'^':  token.SymCaret,
	'&':  token.SymAmpersand,
}

const (
	digits     = "0123456789"
	identRunes = "_0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func lexText(l *lexer) stateFn {
	r := l.peek()
	switch {
	case r == ' ' || r == '\n' || r == '\r' || r == '\t':
		l.acceptRun("\r\n\t ")
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		return lexSymbol
	case r == '"':
		return lexString
	case r == '-':
		l.next()
		if l.accept(">") {
			l.emit(token.RightArrow)
		} else {
			l.emit(token.SymMinus)
		}
		return lexText
	case r == '<':
		l.next()
		if l.accept("-") {
			l.emit(token.LeftArrow)
		} else {
			l.emit(token.OpenAngle)
		}
		return lexText
	case r == '/':
		l.next()
		if l.peek() == '/' {
			return lexComment
		}
		l.emit(token.SymFslash)
		return lexText
	case r == eof:
		l.emit(token.EndStream)
		return nil
	}

	if k, ok := singleRuneTokens[r]; ok {
		l.next()
		l.emit(k)
		return lexText
	}

	l.next()
	return l.errorf("%c", r)
}

func lexNumber(l *lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	l.emit(token.LiteralNumeric)
	return lexText
}

func lexSymbol(l *lexer) stateFn {
	l.acceptRun(identRunes)
	if k, found := token.Keywords[l.input[l.start:l.pos]]; found {
		l.emit(k)
	} else {
		l.emit(token.Symbol)
	}
	return lexText
}

func lexString(l *lexer) stateFn {
	l.next() // opening quote
	for r := l.next(); r != '"'; r = l.next() {
		switch r {
		case '\\':
			l.next()
		case eof, '\n':
			return l.errorf("unterminated string")
		}
	}
	l.emit(token.LiteralString)
	return lexText
}

// lexComment is entered after the first '/' of a line comment.
func lexComment(l *lexer) stateFn {
	for r := l.next(); r != eof && r != '\n'; r = l.next() {
	}
	if l.width > 0 && l.input[l.pos-1] == '\n' {
		l.backup()
	}
	l.emit(token.Comment)
	return lexText
}
