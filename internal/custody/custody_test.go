package custody

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

var (
	alice = names.MustParse("alice")
	coll  = names.MustParse("kittycards")
)

// newTestStorage creates a temporary storage for testing.
func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	dir, err := os.MkdirTemp("", "custody-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	s, err := storage.New(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create storage: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
		os.RemoveAll(dir)
	})

	return s
}

// update runs fn in a unit and fails the test on error.
func update(t *testing.T, s *storage.Storage, fn func(tx *storage.Tx) error) {
	t.Helper()

	if err := s.Update(fn); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

// --- config ---

func TestConfigRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	err := s.View(func(tx *storage.Tx) error {
		_, err := MustConfig(tx)
		return err
	})
	if !errors.Is(err, fault.ErrNotFound) {
		t.Fatalf("expected NotFound before init, got %v", err)
	}

	update(t, s, func(tx *storage.Tx) error {
		return PutConfig(tx, Config{RedemptionCounter: 7, TokenReceiver: DefaultTokenReceiver})
	})

	var cfg Config
	err = s.View(func(tx *storage.Tx) error {
		var err error
		cfg, err = MustConfig(tx)
		return err
	})
	if err != nil {
		t.Fatalf("MustConfig failed: %v", err)
	}

	if cfg.RedemptionCounter != 7 || cfg.TokenReceiver.String() != "waxchihkaiyu" {
		t.Errorf("config = %+v", cfg)
	}
}

// --- pending / redemption exclusion ---

func TestPendingThenRedemption(t *testing.T) {
	s := newTestStorage(t)
	deposit := time.Unix(1700000000, 0).UTC()

	update(t, s, func(tx *storage.Tx) error {
		return InsertPending(tx, Pending{AssetID: 42, Owner: alice, DepositTime: deposit})
	})

	err := s.Update(func(tx *storage.Tx) error {
		return InsertRedemption(tx, Redemption{AssetID: 42, Collection: coll, Owner: alice, Status: StatusRedeemed})
	})
	if !errors.Is(err, fault.ErrStateConflict) {
		t.Fatalf("expected StateConflict while pending, got %v", err)
	}

	update(t, s, func(tx *storage.Tx) error {
		p, found, err := GetPending(tx, 42)
		if err != nil {
			return err
		}
		if !found || p.Owner != alice || !p.DepositTime.Equal(deposit) {
			t.Errorf("pending = %+v (found=%v)", p, found)
		}

		if err := DeletePending(tx, 42); err != nil {
			return err
		}

		return InsertRedemption(tx, Redemption{
			AssetID:    42,
			Collection: coll,
			Owner:      alice,
			Status:     StatusRedeemed,
			RedeemedAt: deposit.Add(time.Minute),
		})
	})

	err = s.Update(func(tx *storage.Tx) error {
		return InsertPending(tx, Pending{AssetID: 42, Owner: alice, DepositTime: deposit})
	})
	if !errors.Is(err, fault.ErrStateConflict) {
		t.Fatalf("expected StateConflict while redeemed, got %v", err)
	}

	err = s.View(func(tx *storage.Tx) error {
		r, found, err := FindRedemption(tx, 42)
		if err != nil {
			return err
		}
		if !found || r.Collection != coll || r.Status != StatusRedeemed {
			t.Errorf("redemption = %+v (found=%v)", r, found)
		}
		if !r.RedeemedAt.Equal(deposit.Add(time.Minute)) || !r.AcceptedAt.IsZero() {
			t.Errorf("timestamps = %v / %v", r.RedeemedAt, r.AcceptedAt)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestRedemptionScopedByCollection(t *testing.T) {
	s := newTestStorage(t)
	other := names.MustParse("alienworlds")

	update(t, s, func(tx *storage.Tx) error {
		for _, id := range []uint64{3, 1, 2} {
			err := InsertRedemption(tx, Redemption{AssetID: id, Collection: coll, Owner: alice, Status: StatusRedeemed})
			if err != nil {
				return err
			}
		}
		return InsertRedemption(tx, Redemption{AssetID: 9, Collection: other, Owner: alice, Status: StatusRedeemed})
	})

	err := s.View(func(tx *storage.Tx) error {
		list, err := ListRedemptions(tx, coll)
		if err != nil {
			return err
		}
		if len(list) != 3 || list[0].AssetID != 1 || list[2].AssetID != 3 {
			t.Errorf("ListRedemptions = %+v", list)
		}

		if _, found, _ := GetRedemption(tx, coll, 9); found {
			t.Error("asset 9 visible under the wrong collection")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestUpdateAndDeleteRedemption(t *testing.T) {
	s := newTestStorage(t)
	accepted := time.UnixMilli(1700000000123).UTC()

	update(t, s, func(tx *storage.Tx) error {
		return InsertRedemption(tx, Redemption{AssetID: 5, Collection: coll, Owner: alice, Status: StatusRedeemed})
	})

	update(t, s, func(tx *storage.Tx) error {
		r, _, err := GetRedemption(tx, coll, 5)
		if err != nil {
			return err
		}
		r.Status = StatusAccepted
		r.AcceptedAt = accepted
		return UpdateRedemption(tx, r)
	})

	update(t, s, func(tx *storage.Tx) error {
		r, _, err := FindRedemption(tx, 5)
		if err != nil {
			return err
		}
		if r.Status != StatusAccepted || !r.AcceptedAt.Equal(accepted) {
			t.Errorf("after accept: %+v", r)
		}
		return DeleteRedemption(tx, coll, 5)
	})

	err := s.View(func(tx *storage.Tx) error {
		if _, found, _ := FindRedemption(tx, 5); found {
			t.Error("redemption survived delete")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}

	err = s.Update(func(tx *storage.Tx) error {
		return UpdateRedemption(tx, Redemption{AssetID: 5, Collection: coll})
	})
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected NotFound updating erased record, got %v", err)
	}
}

func TestListPending(t *testing.T) {
	s := newTestStorage(t)

	update(t, s, func(tx *storage.Tx) error {
		for _, id := range []uint64{300, 20, 1} {
			if err := InsertPending(tx, Pending{AssetID: id, Owner: alice}); err != nil {
				return err
			}
		}
		return nil
	})

	err := s.View(func(tx *storage.Tx) error {
		list, err := ListPending(tx)
		if err != nil {
			return err
		}
		if len(list) != 3 || list[0].AssetID != 1 || list[1].AssetID != 20 || list[2].AssetID != 300 {
			t.Errorf("ListPending = %+v", list)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}
