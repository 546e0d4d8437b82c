package action

import (
	"encoding/binary"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/token"
)

// Writer encodes action arguments in Borsh layout: little-endian integers,
// u32 length prefixes for strings and vectors, names as u64.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded arguments.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// U32 appends a little-endian u32.
func (w *Writer) U32(n uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, n)
	return w
}

// U64 appends a little-endian u64.
func (w *Writer) U64(n uint64) *Writer {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, n)
	return w
}

// I64 appends a little-endian i64.
func (w *Writer) I64(n int64) *Writer {
	return w.U64(uint64(n))
}

// Name appends an account name.
func (w *Writer) Name(n names.Name) *Writer {
	return w.U64(uint64(n))
}

// Text appends a u32 length prefix and the bytes of s.
func (w *Writer) Text(s string) *Writer {
	w.U32(uint32(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// IDs appends a u32 count followed by each id.
func (w *Writer) IDs(ids []uint64) *Writer {
	w.U32(uint32(len(ids)))
	for _, id := range ids {
		w.U64(id)
	}
	return w
}

// Asset appends a token quantity as i64 amount then u64 symbol.
func (w *Writer) Asset(a token.Asset) *Writer {
	return w.I64(a.Amount).U64(a.Symbol.Raw())
}

// Reader decodes Borsh arguments. The first failure sticks; check Err or Done.
type Reader struct {
	data []byte
	err  error
}

// NewReader reads from data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// take consumes n bytes.
func (r *Reader) take(n int, what string) []byte {
	if r.err != nil {
		return nil
	}

	if n < 0 || len(r.data) < n {
		r.err = fault.Newf(fault.ErrMalformedInput, "truncated %s", what)
		return nil
	}

	out := r.data[:n]
	r.data = r.data[n:]

	return out
}

// U32 reads a little-endian u32.
func (r *Reader) U32() uint32 {
	b := r.take(4, "u32")
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint32(b)
}

// U64 reads a little-endian u64.
func (r *Reader) U64() uint64 {
	b := r.take(8, "u64")
	if b == nil {
		return 0
	}

	return binary.LittleEndian.Uint64(b)
}

// I64 reads a little-endian i64.
func (r *Reader) I64() int64 {
	return int64(r.U64())
}

// Name reads an account name.
func (r *Reader) Name() names.Name {
	return names.Name(r.U64())
}

// Text reads a length-prefixed string.
func (r *Reader) Text() string {
	n := r.U32()
	return string(r.take(int(n), "string"))
}

// IDs reads a length-prefixed u64 vector.
func (r *Reader) IDs() []uint64 {
	n := r.U32()
	if r.err == nil && uint64(n)*8 > uint64(len(r.data)) {
		r.err = fault.Newf(fault.ErrMalformedInput, "vector of %d ids exceeds input", n)
	}

	if r.err != nil {
		return nil
	}

	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = r.U64()
	}

	return ids
}

// Asset reads a token quantity.
func (r *Reader) Asset() token.Asset {
	amount := r.I64()
	raw := r.U64()

	if r.err != nil {
		return token.Asset{}
	}

	sym, err := token.SymbolFromRaw(raw)
	if err != nil {
		r.err = fault.Newf(fault.ErrMalformedInput, "symbol: %v", err)
		return token.Asset{}
	}

	return token.Asset{Amount: amount, Symbol: sym}
}

// Err returns the first decoding failure.
func (r *Reader) Err() error {
	return r.err
}

// Done returns the first failure, or an error if input remains.
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}

	if len(r.data) != 0 {
		return fault.Newf(fault.ErrMalformedInput, "%d trailing bytes", len(r.data))
	}

	return nil
}
