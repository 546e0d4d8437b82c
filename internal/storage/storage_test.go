package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newTestStorage creates a temporary storage for testing.
func newTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	s, err := New(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create storage: %v", err)
	}

	cleanup := func() {
		s.Close()
		os.RemoveAll(dir)
	}

	return s, cleanup
}

// put commits a single key in its own unit.
func put(t *testing.T, s *Storage, key, value string) {
	t.Helper()

	err := s.Update(func(tx *Tx) error {
		return tx.Set([]byte(key), []byte(value))
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

// get reads a committed key in a read-only unit.
func get(t *testing.T, s *Storage, key string) []byte {
	t.Helper()

	var value []byte
	err := s.View(func(tx *Tx) error {
		var err error
		value, err = tx.Get([]byte(key))
		return err
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}

	return value
}

func TestUpdateCommits(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	put(t, s, "test-key", "test-value")

	if got := get(t, s, "test-key"); !bytes.Equal(got, []byte("test-value")) {
		t.Errorf("Get returned %q, want %q", got, "test-value")
	}
}

func TestGetNonExistent(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	if got := get(t, s, "non-existent"); got != nil {
		t.Errorf("Get returned %q, want nil", got)
	}
}

func TestUpdateDiscardsOnError(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	put(t, s, "balance", "1000")

	boom := errors.New("boom")
	err := s.Update(func(tx *Tx) error {
		if err := tx.Set([]byte("balance"), []byte("0")); err != nil {
			return err
		}
		if err := tx.Set([]byte("other"), []byte("x")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := get(t, s, "balance"); string(got) != "1000" {
		t.Errorf("balance = %q after discarded unit, want 1000", got)
	}

	if other := get(t, s, "other"); other != nil {
		t.Errorf("discarded write leaked: %q", other)
	}
}

func TestTxReadsOwnWrites(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	err := s.Update(func(tx *Tx) error {
		if err := tx.Set([]byte("k"), []byte("v")); err != nil {
			return err
		}

		got, err := tx.Get([]byte("k"))
		if err != nil {
			return err
		}
		if string(got) != "v" {
			t.Errorf("staged read = %q, want v", got)
		}

		if err := tx.Delete([]byte("k")); err != nil {
			return err
		}

		has, err := tx.Has([]byte("k"))
		if err != nil {
			return err
		}
		if has {
			t.Error("staged delete not visible")
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestTxIteratePrefix(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	put(t, s, "p:1", "a")
	put(t, s, "p:3", "c")
	put(t, s, "q:1", "z")

	var keys []string
	err := s.Update(func(tx *Tx) error {
		if err := tx.Set([]byte("p:2"), []byte("b")); err != nil {
			return err
		}

		return tx.IteratePrefix([]byte("p:"), func(key, _ []byte) error {
			keys = append(keys, string(key))
			return nil
		})
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	want := []string{"p:1", "p:2", "p:3"}
	if len(keys) != len(want) {
		t.Fatalf("got keys %v, want %v", keys, want)
	}

	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %s, want %s", i, keys[i], want[i])
		}
	}
}

func TestTxHasPrefix(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	put(t, s, "scope:alice:1", "x")

	err := s.View(func(tx *Tx) error {
		found, err := tx.HasPrefix([]byte("scope:alice:"))
		if err != nil {
			return err
		}
		if !found {
			t.Error("expected alice scope to be non-empty")
		}

		found, err = tx.HasPrefix([]byte("scope:bob:"))
		if err != nil {
			return err
		}
		if found {
			t.Error("expected bob scope to be empty")
		}

		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestViewIsReadOnly(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	err := s.View(func(tx *Tx) error {
		return tx.Set([]byte("k"), []byte("v"))
	})
	if !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestUnitIsAtomicAcrossKeys(t *testing.T) {
	s, cleanup := newTestStorage(t)
	defer cleanup()

	err := s.Update(func(tx *Tx) error {
		for _, k := range []string{"batch-1", "batch-2", "batch-3"} {
			if err := tx.Set([]byte(k), []byte("v")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	count := 0
	err = s.View(func(tx *Tx) error {
		return tx.IteratePrefix([]byte("batch-"), func(_, _ []byte) error {
			count++
			return nil
		})
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}

	if count != 3 {
		t.Errorf("iterated %d keys, want 3", count)
	}
}

func TestPrefixUpperBound(t *testing.T) {
	if got := prefixUpperBound([]byte("ab")); !bytes.Equal(got, []byte("ac")) {
		t.Errorf("upper(ab) = %q", got)
	}

	if got := prefixUpperBound([]byte{'a', 0xFF}); !bytes.Equal(got, []byte("b")) {
		t.Errorf("upper(a\\xff) = %q", got)
	}

	if got := prefixUpperBound([]byte{0xFF, 0xFF}); got != nil {
		t.Errorf("upper(ff ff) = %x, want nil", got)
	}
}
