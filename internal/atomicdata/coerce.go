package atomicdata

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"RedeemVault/internal/fault"
)

// Coerce converts a loosely typed value, as produced by YAML or JSON
// decoding, into a Value of the declared schema type.
func Coerce(raw any, typ string) (Value, error) {
	t, err := ParseType(typ)
	if err != nil {
		return Value{}, err
	}

	if !t.Array {
		return coerceScalar(raw, t.Kind)
	}

	list, ok := raw.([]any)
	if !ok {
		return Value{}, fault.Newf(fault.ErrMalformedInput, "expected list for %s, got %T", typ, raw)
	}

	elems := make([]Value, len(list))
	for i, item := range list {
		if elems[i], err = coerceScalar(item, t.Kind); err != nil {
			return Value{}, fmt.Errorf("element %d:\n%w", i, err)
		}
	}

	return Array(t.Kind, elems)
}

// CoerceMap converts a loose attribute map against formats.
// Every key must be declared in formats.
func CoerceMap(raw map[string]any, formats []Format) (Map, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Map, len(raw))
	for _, k := range keys {
		idx, ok := lookup(formats, k)
		if !ok {
			return nil, fault.Newf(fault.ErrMalformedInput, "attribute %q not in schema", k)
		}

		v, err := Coerce(raw[k], formats[idx].Type)
		if err != nil {
			return nil, fmt.Errorf("attribute %q:\n%w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

// coerceScalar converts one loose value to kind k.
func coerceScalar(raw any, k Kind) (Value, error) {
	switch {
	case k.IsSigned():
		n, err := toInt64(raw)
		if err != nil {
			return Value{}, err
		}
		return Int(k, n)

	case k.IsUnsigned(), k.IsFixed():
		n, err := toUint64(raw)
		if err != nil {
			return Value{}, err
		}
		return Uint(k, n)

	case k == KindFloat, k == KindDouble:
		f, err := toFloat64(raw)
		if err != nil {
			return Value{}, err
		}
		if k == KindFloat {
			return Float(float32(f)), nil
		}
		return Double(f), nil

	case k == KindBool:
		b, ok := raw.(bool)
		if !ok {
			return Value{}, fault.Newf(fault.ErrMalformedInput, "expected bool, got %T", raw)
		}
		return Bool(b), nil

	default:
		s, ok := raw.(string)
		if !ok {
			return Value{}, fault.Newf(fault.ErrMalformedInput, "expected string, got %T", raw)
		}
		return Text(k, s)
	}
}

// toInt64 accepts Go integers, integral floats and decimal strings.
func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fault.Newf(fault.ErrMalformedInput, "%d overflows int64", v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fault.Newf(fault.ErrMalformedInput, "%v is not an integer", v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fault.Newf(fault.ErrMalformedInput, "%q is not an integer", v)
		}
		return n, nil
	default:
		return 0, fault.Newf(fault.ErrMalformedInput, "expected integer, got %T", raw)
	}
}

// toUint64 accepts non-negative Go integers, integral floats and decimal strings.
func toUint64(raw any) (uint64, error) {
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, fault.Newf(fault.ErrMalformedInput, "%d is negative", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fault.Newf(fault.ErrMalformedInput, "%d is negative", v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || v < 0 || v >= math.MaxUint64 {
			return 0, fault.Newf(fault.ErrMalformedInput, "%v is not an unsigned integer", v)
		}
		return uint64(v), nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, fault.Newf(fault.ErrMalformedInput, "%q is not an unsigned integer", v)
		}
		return n, nil
	default:
		return 0, fault.Newf(fault.ErrMalformedInput, "expected unsigned integer, got %T", raw)
	}
}

// toFloat64 accepts any Go number.
func toFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fault.Newf(fault.ErrMalformedInput, "expected number, got %T", raw)
	}
}
