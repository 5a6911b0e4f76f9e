package angel

import (
	"fmt"
)

// Kind identifies which member of the closed scalar set a Value holds.
type Kind int

const (
	// KindBool is a boolean; it renders as True or False.
	KindBool Kind = iota
	// KindInt is a signed integer of any width.
	KindInt
	// KindUint is an unsigned integer of any width.
	KindUint
	// KindFloat is a 32- or 64-bit floating point number.
	KindFloat
	// KindChar is a single character.
	KindChar
	// KindText is a string.
	KindText
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Char is a character value. Go's rune is an alias of int32, so generated
// code uses Char wherever the source program had a character; a plain int32
// renders as a number.
type Char rune

// Formattable is anything with a textual form. Value, Sequence and any
// generated type with a String method qualify.
type Formattable = fmt.Stringer

// Scalar is the closed set of Go types with a built-in textual form.
// Using Of or PrintScalar with any other type does not compile.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | Char
}

// Value is a tagged scalar. The tag is set by the constructor and decides
// how the value renders; there is no fallback rendering path.
//
// The zero Value is Bool(false).
type Value struct {
	kind Kind
	bits int // float width: 32 or 64
	b    bool
	i    int64 // KindInt, and the rune for KindChar
	u    uint64
	f    float64
	s    string
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a signed integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Uint returns an unsigned integer Value.
func Uint(u uint64) Value {
	return Value{kind: KindUint, u: u}
}

// Float returns a 64-bit floating point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, bits: 64, f: f}
}

// Float32 returns a floating point Value rendered at 32-bit precision.
func Float32(f float32) Value {
	return Value{kind: KindFloat, bits: 32, f: float64(f)}
}

// Rune returns a character Value.
func Rune(r rune) Value {
	return Value{kind: KindChar, i: int64(r)}
}

// Str returns a text Value.
func Str(s string) Value {
	return Value{kind: KindText, s: s}
}

// Of tags a raw scalar with its kind.
func Of[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Uint(uint64(x))
	case uint8:
		return Uint(uint64(x))
	case uint16:
		return Uint(uint64(x))
	case uint32:
		return Uint(uint64(x))
	case uint64:
		return Uint(x)
	case float32:
		return Float32(x)
	case float64:
		return Float(x)
	case Char:
		return Rune(rune(x))
	case string:
		return Str(x)
	}
	// Scalar is closed, so every instantiation is handled above.
	panic(fmt.Sprintf("angel: unhandled scalar type %T", v))
}

// Values tags every element of a raw scalar slice.
func Values[T Scalar](values []T) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Of(v)
	}
	return out
}

// Kind reports the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value with the default format options.
func (v Value) String() string {
	return DefaultFormatter().value(v)
}
