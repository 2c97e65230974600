package token

import "fmt"

// Kind identifies the type of a token.
type Kind int

const (
	Unknown Kind = iota
	EndStream
	Comment

	KeywordStruct
	KeywordUse
	KeywordExport
	KeywordIf
	KeywordElse
	KeywordFor
	KeywordDo
	KeywordReturn
	KeywordForeign
	KeywordProc
	KeywordGlobal

	RightArrow
	LeftArrow
	OpenParen
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	OpenAngle
	CloseAngle

	SymPlus
	SymMinus
	SymStar
	SymPercent
	SymDot
	SymFslash
	SymBslash
	SymColon
	SymSemicolon
	SymComma
	SymEquals
	SymGrave
	SymTilde
	SymBang
	SymCaret
	SymAmpersand

	Symbol
	LiteralString
	LiteralNumeric

	kindCount
)

var kindNames = [...]string{
	Unknown:   "unknown",
	EndStream: "end of stream",
	Comment:   "comment",

	KeywordStruct:  "struct",
	KeywordUse:     "use",
	KeywordExport:  "export",
	KeywordIf:      "if",
	KeywordElse:    "else",
	KeywordFor:     "for",
	KeywordDo:      "do",
	KeywordReturn:  "return",
	KeywordForeign: "foreign",
	KeywordProc:    "proc",
	KeywordGlobal:  "global",

	RightArrow:   "->",
	LeftArrow:    "<-",
	OpenParen:    "(",
	CloseParen:   ")",
	OpenBrace:    "{",
	CloseBrace:   "}",
	OpenBracket:  "[",
	CloseBracket: "]",
	OpenAngle:    "<",
	CloseAngle:   ">",

	SymPlus:      "+",
	SymMinus:     "-",
	SymStar:      "*",
	SymPercent:   "%",
	SymDot:       ".",
	SymFslash:    "/",
	SymBslash:    "\\",
	SymColon:     ":",
	SymSemicolon: ";",
	SymComma:     ",",
	SymEquals:    "=",
	SymGrave:     "`",
	SymTilde:     "~",
	SymBang:      "!",
	SymCaret:     "^",
	SymAmpersand: "&",

	Symbol:         "symbol",
	LiteralString:  "string",
	LiteralNumeric: "numeric",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("INVALID(%d)", int(k))
	}
	return kindNames[k]
}

// Keywords maps the reserved words of the language to their token kinds.
var Keywords = map[string]Kind{
	"struct":  KeywordStruct,
	"use":     KeywordUse,
	"export":  KeywordExport,
	"if":      KeywordIf,
	"else":    KeywordElse,
	"for":     KeywordFor,
	"do":      KeywordDo,
	"return":  KeywordReturn,
	"foreign": KeywordForeign,
	"proc":    KeywordProc,
	"global":  KeywordGlobal,
}

// Pos describes a position in a source file. Line and Column are 1-based.
type Pos struct {
	Filename string
	Line     int
	Column   int
}

func (p Pos) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Token is a single lexical token. Text holds the source text for symbols
// and literals; for punctuation it holds the punctuation itself.
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case EndStream:
		return "EOF"
	case Symbol, LiteralNumeric, LiteralString, Unknown:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}
