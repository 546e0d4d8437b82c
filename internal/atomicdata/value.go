// Package atomicdata decodes and encodes the schema-typed attribute maps
// carried by assets and templates of the asset system.
package atomicdata

import (
	"fmt"
	"math"
	"strings"

	"RedeemVault/internal/fault"
)

// Kind is the scalar category of an attribute.
type Kind uint8

// Supported attribute kinds. The set is closed: any other schema type is rejected.
const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFixed8
	KindFixed16
	KindFixed32
	KindFixed64
	KindFloat
	KindDouble
	KindString
	KindImage
	KindIPFS
	KindBool
)

// kindNames maps schema type names to kinds.
var kindNames = map[string]Kind{
	"int8":    KindInt8,
	"int16":   KindInt16,
	"int32":   KindInt32,
	"int64":   KindInt64,
	"uint8":   KindUint8,
	"uint16":  KindUint16,
	"uint32":  KindUint32,
	"uint64":  KindUint64,
	"fixed8":  KindFixed8,
	"byte":    KindFixed8,
	"fixed16": KindFixed16,
	"fixed32": KindFixed32,
	"fixed64": KindFixed64,
	"float":   KindFloat,
	"double":  KindDouble,
	"string":  KindString,
	"image":   KindImage,
	"ipfs":    KindIPFS,
	"bool":    KindBool,
}

// String returns the canonical schema name of the kind.
func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k && name != "byte" {
			return name
		}
	}

	return "invalid"
}

// IsSigned reports whether k is a signed integer width.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsigned reports whether k is an unsigned (varint) integer width.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// IsFixed reports whether k is a fixed-width unsigned integer.
func (k Kind) IsFixed() bool {
	return k >= KindFixed8 && k <= KindFixed64
}

// isText reports whether k is a length-prefixed string kind.
func (k Kind) isText() bool {
	return k == KindString || k == KindImage || k == KindIPFS
}

// bits returns the integer width of k, or 0 for non-integers.
func (k Kind) bits() int {
	switch k {
	case KindInt8, KindUint8, KindFixed8:
		return 8
	case KindInt16, KindUint16, KindFixed16:
		return 16
	case KindInt32, KindUint32, KindFixed32:
		return 32
	case KindInt64, KindUint64, KindFixed64:
		return 64
	default:
		return 0
	}
}

// Type is a declared attribute type: a kind, optionally as an array.
type Type struct {
	Kind  Kind // Kind is the scalar (or element) kind
	Array bool // Array marks a "T[]" declaration
}

// ParseType parses a schema type string such as "uint64" or "string[]".
func ParseType(s string) (Type, error) {
	array := strings.HasSuffix(s, "[]")
	base := strings.TrimSuffix(s, "[]")

	kind, ok := kindNames[base]
	if !ok {
		return Type{}, fault.Newf(fault.ErrMalformedInput, "unsupported attribute type %q", s)
	}

	return Type{Kind: kind, Array: array}, nil
}

// String renders the schema type string.
func (t Type) String() string {
	if t.Array {
		return t.Kind.String() + "[]"
	}

	return t.Kind.String()
}

// Value is one typed attribute value. Only the field matching Type is meaningful.
type Value struct {
	typ   Type    // typ is the value's declared type
	bits  uint64  // bits holds integers (two's complement), bools and float bit patterns
	text  string  // text holds string kinds
	elems []Value // elems holds array elements
}

// Type returns the value's type.
func (v Value) Type() Type {
	return v.typ
}

// Int builds a signed integer value, checking the width.
func Int(kind Kind, n int64) (Value, error) {
	if !kind.IsSigned() {
		return Value{}, fmt.Errorf("%s is not a signed integer kind", kind)
	}

	bits := kind.bits()
	if bits < 64 {
		lo, hi := -(int64(1) << (bits - 1)), int64(1)<<(bits-1)-1
		if n < lo || n > hi {
			return Value{}, fault.Newf(fault.ErrMalformedInput, "%d overflows %s", n, kind)
		}
	}

	return Value{typ: Type{Kind: kind}, bits: uint64(n)}, nil
}

// Uint builds an unsigned or fixed integer value, checking the width.
func Uint(kind Kind, n uint64) (Value, error) {
	if !kind.IsUnsigned() && !kind.IsFixed() {
		return Value{}, fmt.Errorf("%s is not an unsigned integer kind", kind)
	}

	if bits := kind.bits(); bits < 64 && n >= uint64(1)<<bits {
		return Value{}, fault.Newf(fault.ErrMalformedInput, "%d overflows %s", n, kind)
	}

	return Value{typ: Type{Kind: kind}, bits: n}, nil
}

// Float builds a float (32-bit) value.
func Float(f float32) Value {
	return Value{typ: Type{Kind: KindFloat}, bits: uint64(math.Float32bits(f))}
}

// Double builds a double value.
func Double(f float64) Value {
	return Value{typ: Type{Kind: KindDouble}, bits: math.Float64bits(f)}
}

// Text builds a string, image or ipfs value.
func Text(kind Kind, s string) (Value, error) {
	if !kind.isText() {
		return Value{}, fmt.Errorf("%s is not a text kind", kind)
	}

	return Value{typ: Type{Kind: kind}, text: s}, nil
}

// String builds a string value.
func String(s string) Value {
	return Value{typ: Type{Kind: KindString}, text: s}
}

// Bool builds a bool value.
func Bool(b bool) Value {
	v := Value{typ: Type{Kind: KindBool}}
	if b {
		v.bits = 1
	}

	return v
}

// Array builds an array of elements that must all share kind.
func Array(kind Kind, elems []Value) (Value, error) {
	for i, e := range elems {
		if e.typ.Array || e.typ.Kind != kind {
			return Value{}, fault.Newf(fault.ErrMalformedInput, "array element %d is %s, want %s", i, e.typ, kind)
		}
	}

	return Value{typ: Type{Kind: kind, Array: true}, elems: elems}, nil
}

// Integer returns a signed or unsigned integer value widened to int64.
// ok is false for non-integer kinds, arrays, and uint64 values above MaxInt64.
func (v Value) Integer() (n int64, ok bool) {
	if v.typ.Array {
		return 0, false
	}

	switch {
	case v.typ.Kind.IsSigned():
		return v.signed(), true
	case v.typ.Kind.IsUnsigned(), v.typ.Kind.IsFixed():
		if v.bits > math.MaxInt64 {
			return 0, false
		}
		return int64(v.bits), true
	default:
		return 0, false
	}
}

// signed sign-extends the stored bits to the value's width.
func (v Value) signed() int64 {
	shift := 64 - v.typ.Kind.bits()
	return int64(v.bits<<shift) >> shift
}

// Unsigned returns the raw unsigned value of an unsigned or fixed integer.
func (v Value) Unsigned() (uint64, bool) {
	if v.typ.Array || !(v.typ.Kind.IsUnsigned() || v.typ.Kind.IsFixed()) {
		return 0, false
	}

	return v.bits, true
}

// Str returns the text of a string kind.
func (v Value) Str() (string, bool) {
	if v.typ.Array || !v.typ.Kind.isText() {
		return "", false
	}

	return v.text, true
}

// BoolValue returns the bool of a bool kind.
func (v Value) BoolValue() (bool, bool) {
	if v.typ.Array || v.typ.Kind != KindBool {
		return false, false
	}

	return v.bits != 0, true
}

// FloatValue returns float and double kinds as float64.
func (v Value) FloatValue() (float64, bool) {
	if v.typ.Array {
		return 0, false
	}

	switch v.typ.Kind {
	case KindFloat:
		return float64(math.Float32frombits(uint32(v.bits))), true
	case KindDouble:
		return math.Float64frombits(v.bits), true
	default:
		return 0, false
	}
}

// Elems returns the elements of an array value.
func (v Value) Elems() []Value {
	return v.elems
}

// Equal reports deep equality of type and content.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ || v.bits != o.bits || v.text != o.text || len(v.elems) != len(o.elems) {
		return false
	}

	for i := range v.elems {
		if !v.elems[i].Equal(o.elems[i]) {
			return false
		}
	}

	return true
}

// Any renders the value as a plain Go value for JSON output.
func (v Value) Any() any {
	if v.typ.Array {
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Any()
		}
		return out
	}

	switch k := v.typ.Kind; {
	case k.IsSigned():
		return v.signed()
	case k.IsUnsigned(), k.IsFixed():
		return v.bits
	case k == KindFloat, k == KindDouble:
		f, _ := v.FloatValue()
		return f
	case k == KindBool:
		return v.bits != 0
	default:
		return v.text
	}
}

// Map is a deserialized attribute map keyed by field name.
type Map map[string]Value

// Has reports whether the field is present.
func (m Map) Has(name string) bool {
	_, ok := m[name]
	return ok
}

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Format is one (name, type) field of a schema.
type Format struct {
	Name string `yaml:"name" json:"name"` // Name is the attribute name
	Type string `yaml:"type" json:"type"` // Type is the schema type string
}

// lookup returns the declared format for name.
func lookup(formats []Format, name string) (int, bool) {
	for i, f := range formats {
		if f.Name == name {
			return i, true
		}
	}

	return 0, false
}
