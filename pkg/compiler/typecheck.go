package compiler

// BuiltinType is one of the source language's primitive types.
type BuiltinType int

const (
	TypeNone BuiltinType = iota // "no builtin type" sentinel; renders as void
	TypeU8
	TypeI8
	TypeU16
	TypeI16
	TypeU32
	TypeI32
	TypeU64
	TypeI64
	TypeF32
	TypeF64
	TypeChar
)

// builtinNames maps a BuiltinType back to its source spelling.
var builtinNames = [...]string{
	TypeNone: "none",
	TypeU8:   "u8",
	TypeI8:   "i8",
	TypeU16:  "u16",
	TypeI16:  "i16",
	TypeU32:  "u32",
	TypeI32:  "i32",
	TypeU64:  "u64",
	TypeI64:  "i64",
	TypeF32:  "f32",
	TypeF64:  "f64",
	TypeChar: "char",
}

// builtinCNames maps a BuiltinType to the C spelling it is emitted as.
// The stdint.h names keep the source widths exact.
var builtinCNames = [...]string{
	TypeNone: "void",
	TypeU8:   "uint8_t",
	TypeI8:   "int8_t",
	TypeU16:  "uint16_t",
	TypeI16:  "int16_t",
	TypeU32:  "uint32_t",
	TypeI32:  "int32_t",
	TypeU64:  "uint64_t",
	TypeI64:  "int64_t",
	TypeF32:  "float",
	TypeF64:  "double",
	TypeChar: "char",
}

var builtinFromName = map[string]BuiltinType{
	"none": TypeNone,
	"u8":   TypeU8,
	"i8":   TypeI8,
	"u16":  TypeU16,
	"i16":  TypeI16,
	"u32":  TypeU32,
	"i32":  TypeI32,
	"u64":  TypeU64,
	"i64":  TypeI64,
	"f32":  TypeF32,
	"f64":  TypeF64,
	"char": TypeChar,
}

// BuiltinFromString resolves a source type identifier. Anything that is not
// a builtin type name resolves to TypeNone.
func BuiltinFromString(name string) BuiltinType {
	if b, ok := builtinFromName[name]; ok {
		return b
	}
	return TypeNone
}

// BuiltinToC returns the C spelling of a builtin type. Total over the
// enumeration; TypeNone is the void return type.
func BuiltinToC(b BuiltinType) string {
	if int(b) >= 0 && int(b) < len(builtinCNames) {
		return builtinCNames[b]
	}
	return "void"
}

func (b BuiltinType) String() string {
	if int(b) >= 0 && int(b) < len(builtinNames) {
		return builtinNames[b]
	}
	return "none"
}

// IsBuiltinType reports whether a source identifier names a declarable
// builtin type. "none" is only valid as a return type, never for variables.
func IsBuiltinType(name string) bool {
	b, ok := builtinFromName[name]
	return ok && b != TypeNone
}
