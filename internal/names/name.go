// Package names implements the 64-bit account and collection names used by
// the host ledger: up to 13 characters from ".12345a-z", packed five bits
// per character (four for the thirteenth).
package names

import (
	"encoding/binary"
	"fmt"
)

// charmap maps a 5-bit symbol to its character.
const charmap = ".12345abcdefghijklmnopqrstuvwxyz"

// maxLen is the longest encodable name.
const maxLen = 13

// Name is a packed account, collection or schema name.
type Name uint64

// Empty is the zero name.
const Empty Name = 0

// Parse validates and packs s.
func Parse(s string) (Name, error) {
	if len(s) > maxLen {
		return Empty, fmt.Errorf("name %q longer than %d characters", s, maxLen)
	}

	var v uint64

	for i := 0; i < len(s); i++ {
		sym, ok := symbol(s[i])
		if !ok {
			return Empty, fmt.Errorf("name %q has invalid character %q", s, s[i])
		}

		if i < 12 {
			v |= uint64(sym&0x1f) << (64 - 5*(i+1))
			continue
		}

		if sym > 0x0f {
			return Empty, fmt.Errorf("name %q has invalid thirteenth character %q", s, s[i])
		}

		v |= uint64(sym)
	}

	n := Name(v)
	if n.String() != s {
		return Empty, fmt.Errorf("name %q is not in canonical form", s)
	}

	return n, nil
}

// MustParse is Parse for constants; it panics on invalid input.
func MustParse(s string) Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// symbol returns the 5-bit value of a name character.
func symbol(c byte) (byte, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 6, true
	case c >= '1' && c <= '5':
		return c - '1' + 1, true
	case c == '.':
		return 0, true
	default:
		return 0, false
	}
}

// String unpacks the name, dropping trailing dots.
func (n Name) String() string {
	var out [maxLen]byte

	tmp := uint64(n)
	for i := 0; i < maxLen; i++ {
		if i == 0 {
			out[maxLen-1] = charmap[tmp&0x0f]
			tmp >>= 4
			continue
		}

		out[maxLen-1-i] = charmap[tmp&0x1f]
		tmp >>= 5
	}

	end := maxLen
	for end > 0 && out[end-1] == '.' {
		end--
	}

	return string(out[:end])
}

// Bytes returns the big-endian key encoding, which sorts like the packed value.
func (n Name) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(n))

	return b[:]
}

// FromBytes decodes a big-endian key encoding.
func FromBytes(b []byte) Name {
	if len(b) < 8 {
		return Empty
	}

	return Name(binary.BigEndian.Uint64(b))
}

// MarshalText renders the name for JSON and YAML.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText parses a textual name.
func (n *Name) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}

	*n = v

	return nil
}

// Contains reports whether list holds n.
func Contains(list []Name, n Name) bool {
	for _, x := range list {
		if x == n {
			return true
		}
	}

	return false
}
