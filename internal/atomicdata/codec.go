package atomicdata

import (
	"encoding/binary"

	"RedeemVault/internal/fault"
)

// Attribute ids on the wire are the format index offset by this value.
const idOffset = 4

// Deserialize decodes an attribute byte string against a schema format.
// Each present attribute is encoded as varint(index+4) followed by its value.
// Empty input yields an empty map.
func Deserialize(data []byte, formats []Format) (Map, error) {
	types, err := parseFormats(formats)
	if err != nil {
		return nil, err
	}

	out := make(Map)
	pos := 0

	for pos < len(data) {
		id, n := binary.Uvarint(data[pos:])
		if n <= 0 {
			return nil, malformed("truncated attribute id at offset %d", pos)
		}
		pos += n

		if id < idOffset || id-idOffset >= uint64(len(formats)) {
			return nil, malformed("attribute id %d outside schema", id)
		}
		idx := int(id - idOffset)

		v, n, err := decode(data[pos:], types[idx])
		if err != nil {
			return nil, err
		}
		pos += n

		out[formats[idx].Name] = v
	}

	return out, nil
}

// Serialize encodes m in format order. Every key of m must be declared
// with a matching type; absent attributes are omitted.
func Serialize(m Map, formats []Format) ([]byte, error) {
	types, err := parseFormats(formats)
	if err != nil {
		return nil, err
	}

	for name := range m {
		if _, ok := lookup(formats, name); !ok {
			return nil, malformed("attribute %q not in schema", name)
		}
	}

	var buf []byte
	for i, f := range formats {
		v, ok := m[f.Name]
		if !ok {
			continue
		}

		if v.typ != types[i] {
			return nil, malformed("attribute %q is %s, schema declares %s", f.Name, v.typ, types[i])
		}

		buf = binary.AppendUvarint(buf, uint64(i+idOffset))
		buf = encode(buf, v)
	}

	return buf, nil
}

// parseFormats resolves every declared type.
func parseFormats(formats []Format) ([]Type, error) {
	types := make([]Type, len(formats))

	for i, f := range formats {
		t, err := ParseType(f.Type)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}

	return types, nil
}

// decode reads one value of type t, returning bytes consumed.
func decode(data []byte, t Type) (Value, int, error) {
	if !t.Array {
		return decodeScalar(data, t.Kind)
	}

	count, pos := binary.Uvarint(data)
	if pos <= 0 {
		return Value{}, 0, malformed("truncated array length")
	}
	if count > uint64(len(data)) {
		return Value{}, 0, malformed("array length %d exceeds input", count)
	}

	elems := make([]Value, 0, count)
	for i := uint64(0); i < count; i++ {
		v, n, err := decodeScalar(data[pos:], t.Kind)
		if err != nil {
			return Value{}, 0, err
		}
		pos += n
		elems = append(elems, v)
	}

	return Value{typ: t, elems: elems}, pos, nil
}

// decodeScalar reads one non-array value of kind k.
func decodeScalar(data []byte, k Kind) (Value, int, error) {
	v := Value{typ: Type{Kind: k}}

	switch {
	case k.IsSigned():
		u, n := binary.Uvarint(data)
		if n <= 0 {
			return Value{}, 0, malformed("truncated %s", k)
		}
		raw := unzigzag(u)
		checked, err := Int(k, raw)
		if err != nil {
			return Value{}, 0, err
		}
		return checked, n, nil

	case k.IsUnsigned():
		u, n := binary.Uvarint(data)
		if n <= 0 {
			return Value{}, 0, malformed("truncated %s", k)
		}
		checked, err := Uint(k, u)
		if err != nil {
			return Value{}, 0, err
		}
		return checked, n, nil

	case k.IsFixed(), k == KindFloat, k == KindDouble:
		size := fixedSize(k)
		if len(data) < size {
			return Value{}, 0, malformed("truncated %s", k)
		}
		v.bits = readLE(data[:size])
		return v, size, nil

	case k == KindBool:
		if len(data) < 1 {
			return Value{}, 0, malformed("truncated bool")
		}
		if data[0] > 1 {
			return Value{}, 0, malformed("bool byte %d", data[0])
		}
		v.bits = uint64(data[0])
		return v, 1, nil

	case k.isText():
		l, n := binary.Uvarint(data)
		if n <= 0 {
			return Value{}, 0, malformed("truncated %s length", k)
		}
		if l > uint64(len(data)-n) {
			return Value{}, 0, malformed("%s length %d exceeds input", k, l)
		}
		v.text = string(data[n : n+int(l)])
		return v, n + int(l), nil
	}

	return Value{}, 0, malformed("unsupported kind %d", k)
}

// encode appends the wire form of v.
func encode(buf []byte, v Value) []byte {
	if v.typ.Array {
		buf = binary.AppendUvarint(buf, uint64(len(v.elems)))
		for _, e := range v.elems {
			buf = encodeScalar(buf, e)
		}
		return buf
	}

	return encodeScalar(buf, v)
}

// encodeScalar appends one non-array value.
func encodeScalar(buf []byte, v Value) []byte {
	k := v.typ.Kind

	switch {
	case k.IsSigned():
		return binary.AppendUvarint(buf, zigzag(v.signed()))
	case k.IsUnsigned():
		return binary.AppendUvarint(buf, v.bits)
	case k.IsFixed(), k == KindFloat, k == KindDouble:
		return appendLE(buf, v.bits, fixedSize(k))
	case k == KindBool:
		return append(buf, byte(v.bits))
	default:
		buf = binary.AppendUvarint(buf, uint64(len(v.text)))
		return append(buf, v.text...)
	}
}

// fixedSize returns the little-endian byte width of fixed and float kinds.
func fixedSize(k Kind) int {
	switch k {
	case KindFloat:
		return 4
	case KindDouble:
		return 8
	default:
		return k.bits() / 8
	}
}

// readLE reads a little-endian unsigned integer of len(b) bytes.
func readLE(b []byte) uint64 {
	var out uint64
	for i := len(b) - 1; i >= 0; i-- {
		out = out<<8 | uint64(b[i])
	}

	return out
}

// appendLE appends the low size bytes of n in little-endian order.
func appendLE(buf []byte, n uint64, size int) []byte {
	for i := 0; i < size; i++ {
		buf = append(buf, byte(n>>(8*i)))
	}

	return buf
}

// zigzag maps signed integers onto unsigned so small magnitudes stay short.
func zigzag(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// unzigzag reverses zigzag.
func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// malformed builds a MalformedInput error.
func malformed(format string, args ...any) error {
	return fault.Newf(fault.ErrMalformedInput, format, args...)
}
