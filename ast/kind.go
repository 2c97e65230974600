package ast

import (
	"fmt"
	"strings"
)

// Kind is the tag of an AST node.
type Kind int

const (
	KindError Kind = iota
	KindProgram

	KindFuncDef
	KindBlock
	KindScope
	KindLocal

	KindAdd
	KindMinus
	KindMultiply
	KindDivide
	KindModulus
	KindNegate

	KindType
	KindLiteral
	KindCast
	KindParam
	KindCall
	KindAssignment
	KindReturn

	KindEqual
	KindNotEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual
	KindNot

	KindIf
	KindLoop

	kindCount
)

var kindNames = [...]string{
	KindError:   "ERROR",
	KindProgram: "PROGRAM",

	KindFuncDef: "FUNCDEF",
	KindBlock:   "BLOCK",
	KindScope:   "SCOPE",
	KindLocal:   "LOCAL",

	KindAdd:      "ADD",
	KindMinus:    "MINUS",
	KindMultiply: "MULTIPLY",
	KindDivide:   "DIVIDE",
	KindModulus:  "MODULUS",
	KindNegate:   "NEGATE",

	KindType:       "TYPE",
	KindLiteral:    "LITERAL",
	KindCast:       "CAST",
	KindParam:      "PARAM",
	KindCall:       "CALL",
	KindAssignment: "ASSIGN",
	KindReturn:     "RETURN",

	KindEqual:        "EQUAL",
	KindNotEqual:     "NOT_EQUAL",
	KindGreater:      "GREATER",
	KindGreaterEqual: "GREATER_EQUAL",
	KindLess:         "LESS",
	KindLessEqual:    "LESS_EQUAL",
	KindNot:          "NOT",

	KindIf:   "IF",
	KindLoop: "LOOP",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("INVALID(%d)", int(k))
	}
	return kindNames[k]
}

// IsBinary reports whether nodes of this kind are *Binary.
func (k Kind) IsBinary() bool {
	switch k {
	case KindAdd, KindMinus, KindMultiply, KindDivide, KindModulus,
		KindEqual, KindNotEqual, KindGreater, KindGreaterEqual, KindLess, KindLessEqual:
		return true
	}
	return false
}

// IsUnary reports whether nodes of this kind are *Unary.
func (k Kind) IsUnary() bool {
	return k == KindNegate || k == KindNot || k == KindCast
}

// Flags is a bit set of node attributes.
type Flags uint32

const (
	FlagExported Flags = 1 << (iota + 1)
	FlagLValue
	FlagConst
	FlagComptime
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	var names []string
	if f.Has(FlagExported) {
		names = append(names, "exported")
	}
	if f.Has(FlagLValue) {
		names = append(names, "lvalue")
	}
	if f.Has(FlagConst) {
		names = append(names, "const")
	}
	if f.Has(FlagComptime) {
		names = append(names, "comptime")
	}
	return strings.Join(names, "|")
}
