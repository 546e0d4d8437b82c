package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// ErrReadOnly is returned when a write is attempted inside View.
var ErrReadOnly = errors.New("read-only transaction")

// Tx is one atomic unit of work over the store.
// Reads observe the unit's own uncommitted writes. Nothing is visible
// to other readers until the owning Update returns without error.
type Tx struct {
	batch    *pebble.Batch // batch is an indexed batch over the database
	readOnly bool          // readOnly rejects writes (View)
}

// Update runs fn inside a new unit of work.
// The unit is committed if fn returns nil and discarded otherwise.
func (s *Storage) Update(fn func(tx *Tx) error) error {
	batch := s.db.NewIndexedBatch()
	defer batch.Close()

	if err := fn(&Tx{batch: batch}); err != nil {
		return err
	}

	if err := batch.Commit(pebble.NoSync); err != nil {
		return fmt.Errorf("commit unit:\n%w", err)
	}

	return nil
}

// View runs fn against a read-only view of the committed state.
func (s *Storage) View(fn func(tx *Tx) error) error {
	batch := s.db.NewIndexedBatch()
	defer batch.Close()

	return fn(&Tx{batch: batch, readOnly: true})
}

// Get returns the value for key, or nil if absent.
func (t *Tx) Get(key []byte) ([]byte, error) {
	value, closer, err := t.batch.Get(key)
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return clone(value), nil
}

// Has reports whether key exists.
func (t *Tx) Has(key []byte) (bool, error) {
	value, err := t.Get(key)
	return value != nil, err
}

// Set stages a write.
func (t *Tx) Set(key, value []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}

	return t.batch.Set(key, value, nil)
}

// Delete stages a deletion.
func (t *Tx) Delete(key []byte) error {
	if t.readOnly {
		return ErrReadOnly
	}

	return t.batch.Delete(key, nil)
}

// IteratePrefix calls fn for each key with the given prefix, including
// writes staged in this unit. Keys are visited in lexicographic order.
// fn must not retain key or value.
func (t *Tx) IteratePrefix(prefix []byte, fn func(key, value []byte) error) error {
	iter, err := t.batch.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}

	return walk(iter, fn)
}

// HasPrefix reports whether at least one key starts with prefix.
func (t *Tx) HasPrefix(prefix []byte) (bool, error) {
	found := false

	err := t.IteratePrefix(prefix, func(_, _ []byte) error {
		found = true
		return errStop
	})
	if err == errStop {
		err = nil
	}

	return found, err
}

// errStop ends an iteration early.
var errStop = errors.New("stop")
