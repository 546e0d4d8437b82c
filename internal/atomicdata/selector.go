package atomicdata

import "math"

// Selector reads field from m as a signed integer.
// found is false when the attribute is absent. The declared type must be
// one of int8..int64 or uint8..uint64; anything else, or a uint64 above
// MaxInt64, fails with MalformedInput "<field> of invalid format".
func Selector(m Map, formats []Format, field string) (n int64, found bool, err error) {
	v, ok := m[field]
	if !ok {
		return 0, false, nil
	}

	idx, declared := lookup(formats, field)
	if !declared {
		return 0, false, malformed("%s of invalid format", field)
	}

	t, err := ParseType(formats[idx].Type)
	if err != nil || t.Array || !(t.Kind.IsSigned() || t.Kind.IsUnsigned()) {
		return 0, false, malformed("%s of invalid format", field)
	}

	if u, isUnsigned := v.Unsigned(); isUnsigned && u > math.MaxInt64 {
		return 0, false, malformed("%s of invalid format", field)
	}

	n, ok = v.Integer()
	if !ok {
		return 0, false, malformed("%s of invalid format", field)
	}

	return n, true, nil
}
