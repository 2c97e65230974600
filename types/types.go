// Package types contains the registry of built-in primitive types.
package types

// Kind identifies a built-in primitive type.
type Kind int

const (
	KindUnknown Kind = iota
	KindVoid
	KindBool

	KindUint8
	KindUint16
	KindUint32
	KindUint64

	KindInt8
	KindInt16
	KindInt32
	KindInt64

	KindFloat32
	KindFloat64
	KindSoftFloat // 64 bits of data, but may be treated as 32-bit

	kindCount
)

// Info describes a primitive type. Descriptors are shared and must not be
// modified.
type Info struct {
	Kind       Kind
	Size       int // in bytes
	Name       string
	IsInt      bool
	IsUnsigned bool
	IsFloat    bool
	IsBool     bool
}

// IsResolved reports whether the descriptor denotes an actual type.
func (t *Info) IsResolved() bool {
	return t != nil && t.Kind != KindUnknown
}

func (t *Info) String() string {
	if t == nil {
		return "unknown"
	}
	return t.Name
}

var builtins = [kindCount]Info{
	KindUnknown: {Kind: KindUnknown, Size: 0, Name: "unknown"},
	KindVoid:    {Kind: KindVoid, Size: 0, Name: "void"},

	KindBool: {Kind: KindBool, Size: 1, Name: "bool", IsBool: true},

	KindUint8:  {Kind: KindUint8, Size: 1, Name: "u8", IsInt: true, IsUnsigned: true},
	KindUint16: {Kind: KindUint16, Size: 2, Name: "u16", IsInt: true, IsUnsigned: true},
	KindUint32: {Kind: KindUint32, Size: 4, Name: "u32", IsInt: true, IsUnsigned: true},
	KindUint64: {Kind: KindUint64, Size: 8, Name: "u64", IsInt: true, IsUnsigned: true},

	KindInt8:  {Kind: KindInt8, Size: 1, Name: "i8", IsInt: true},
	KindInt16: {Kind: KindInt16, Size: 2, Name: "i16", IsInt: true},
	KindInt32: {Kind: KindInt32, Size: 4, Name: "i32", IsInt: true},
	KindInt64: {Kind: KindInt64, Size: 8, Name: "i64", IsInt: true},

	KindFloat32:   {Kind: KindFloat32, Size: 4, Name: "f32", IsFloat: true},
	KindFloat64:   {Kind: KindFloat64, Size: 8, Name: "f64", IsFloat: true},
	KindSoftFloat: {Kind: KindSoftFloat, Size: 8, Name: "sf64", IsFloat: true},
}

// Unknown is the descriptor for types that are not (yet) resolved.
var Unknown = &builtins[KindUnknown]

// Builtin returns the descriptor of the given kind. Out-of-range kinds
// yield Unknown.
func Builtin(k Kind) *Info {
	if k < 0 || k >= kindCount {
		return Unknown
	}
	return &builtins[k]
}

// Builtins returns all registered descriptors that can be named in source,
// i.e. every descriptor except Unknown, in registry order.
func Builtins() []*Info {
	list := make([]*Info, 0, kindCount-1)
	for k := KindVoid; k < kindCount; k++ {
		list = append(list, &builtins[k])
	}
	return list
}

// Lookup finds a built-in type by name. If there is no such type, Unknown
// and false are returned.
func Lookup(name string) (*Info, bool) {
	for k := KindVoid; k < kindCount; k++ {
		if builtins[k].Name == name {
			return &builtins[k], true
		}
	}
	return Unknown, false
}
