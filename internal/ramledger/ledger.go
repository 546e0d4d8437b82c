// Package ramledger tracks the signed RAM byte balance funded per collection.
package ramledger

import (
	"encoding/binary"
	"fmt"
	"math"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

// prefix scopes balance keys.
var prefix = []byte("b:")

// Entry is one collection balance.
type Entry struct {
	Collection names.Name `json:"collection"` // Collection owning the balance
	Bytes      int64      `json:"bytes"`      // Bytes is the funded RAM balance
}

// key returns the balance key of a collection.
func key(collection names.Name) []byte {
	return append(append([]byte{}, prefix...), collection.Bytes()...)
}

// Balance returns the balance of collection and whether a record exists.
func Balance(tx *storage.Tx, collection names.Name) (int64, bool, error) {
	raw, err := tx.Get(key(collection))
	if err != nil {
		return 0, false, fmt.Errorf("read ram balance:\n%w", err)
	}

	if raw == nil {
		return 0, false, nil
	}

	if len(raw) != 8 {
		return 0, false, fmt.Errorf("corrupt ram balance for %s: %d bytes", collection, len(raw))
	}

	return int64(binary.BigEndian.Uint64(raw)), true, nil
}

// Validate fails with ResourceExhausted when the balance is below bytes.
// It never mutates state.
func Validate(tx *storage.Tx, collection names.Name, bytes int64) error {
	balance, _, err := Balance(tx, collection)
	if err != nil {
		return err
	}

	if balance < bytes {
		return fault.Newf(fault.ErrResourceExhausted,
			"The collection does not have enough RAM to mint the assets (has %d, needs %d)", balance, bytes)
	}

	return nil
}

// Debit re-validates and subtracts bytes. The balance never goes negative.
func Debit(tx *storage.Tx, collection names.Name, bytes int64) error {
	if bytes <= 0 {
		return fault.Newf(fault.ErrMalformedInput, "ram debit must be positive, got %d", bytes)
	}

	if err := Validate(tx, collection, bytes); err != nil {
		return err
	}

	balance, _, err := Balance(tx, collection)
	if err != nil {
		return err
	}

	return put(tx, collection, balance-bytes)
}

// Credit adds bytes, creating the record when the collection has none.
func Credit(tx *storage.Tx, collection names.Name, bytes int64) error {
	if bytes <= 0 {
		return fault.Newf(fault.ErrMalformedInput, "ram credit must be positive, got %d", bytes)
	}

	balance, _, err := Balance(tx, collection)
	if err != nil {
		return err
	}

	if balance > 0 && bytes > maxBalance-balance {
		return fault.Newf(fault.ErrMalformedInput, "ram credit overflows balance of %s", collection)
	}

	return put(tx, collection, balance+bytes)
}

// maxBalance caps stored balances.
const maxBalance = math.MaxInt64

// All returns every balance record in collection order.
func All(tx *storage.Tx) ([]Entry, error) {
	var out []Entry

	err := tx.IteratePrefix(prefix, func(k, v []byte) error {
		if len(k) != len(prefix)+8 || len(v) != 8 {
			return fmt.Errorf("corrupt ram balance key %x", k)
		}

		out = append(out, Entry{
			Collection: names.FromBytes(k[len(prefix):]),
			Bytes:      int64(binary.BigEndian.Uint64(v)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan ram balances:\n%w", err)
	}

	return out, nil
}

// put writes a balance.
func put(tx *storage.Tx, collection names.Name, balance int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(balance))

	if err := tx.Set(key(collection), buf[:]); err != nil {
		return fmt.Errorf("write ram balance:\n%w", err)
	}

	return nil
}
