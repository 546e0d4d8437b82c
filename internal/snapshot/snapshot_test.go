package snapshot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"RedeemVault/internal/storage"
)

// newTestStorage creates a temporary storage for testing.
func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	dir, err := os.MkdirTemp("", "snapshot-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	db, err := storage.New(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create storage: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(dir)
	})

	return db
}

// fill commits the given pairs in one unit.
func fill(t *testing.T, db *storage.Storage, pairs map[string]string) {
	t.Helper()

	err := db.Update(func(tx *storage.Tx) error {
		for k, v := range pairs {
			if err := tx.Set([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

var rows = map[string]string{
	"c:config":   "cfg",
	"p:00000001": "pending",
	"b:coll":     "balance",
	"q:00000001": "effect",
}

func TestExportRestore(t *testing.T) {
	src := newTestStorage(t)
	fill(t, src, rows)

	data, info, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if info.Entries != len(rows) {
		t.Errorf("exported %d entries, want %d", info.Entries, len(rows))
	}

	dst := newTestStorage(t)

	restored, err := Restore(dst, data)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Checksum != info.Checksum {
		t.Error("checksum changed across restore")
	}

	for k, v := range rows {
		var got []byte
		err := dst.View(func(tx *storage.Tx) error {
			var err error
			got, err = tx.Get([]byte(k))
			return err
		})
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", k, err)
		}
		if string(got) != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestExportDeterministic(t *testing.T) {
	a := newTestStorage(t)
	b := newTestStorage(t)

	fill(t, a, rows)
	fill(t, b, rows)

	da, _, err := Export(a)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	db, _, err := Export(b)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !bytes.Equal(da, db) {
		t.Error("equal states exported different bytes")
	}
}

func TestRestoreRejectsNonEmpty(t *testing.T) {
	src := newTestStorage(t)
	fill(t, src, rows)

	data, _, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if _, err := Restore(src, data); !errors.Is(err, ErrNotEmpty) {
		t.Errorf("expected ErrNotEmpty, got %v", err)
	}
}

func TestTamperedSnapshotRejected(t *testing.T) {
	src := newTestStorage(t)
	fill(t, src, rows)

	data, _, err := Export(src)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	tampered := append([]byte(nil), data...)
	tampered[10] ^= 0xFF // inside the stored checksum

	if _, err := Inspect(tampered); !errors.Is(err, ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}

	if _, err := Inspect([]byte("nope")); err == nil {
		t.Error("expected error for short input")
	}
}

func TestEmptyStoreExport(t *testing.T) {
	db := newTestStorage(t)

	data, info, err := Export(db)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if info.Entries != 0 {
		t.Errorf("entries = %d, want 0", info.Entries)
	}

	if _, err := Inspect(data); err != nil {
		t.Errorf("Inspect failed: %v", err)
	}
}
