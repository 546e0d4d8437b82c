package migrate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
)

var (
	vault = names.MustParse("redeemvault")
	alice = names.MustParse("alice")
	coll  = names.MustParse("kittycards")
)

// newTestStorage creates a temporary storage with config and two assets:
// 10 held by vault, 11 held by alice.
func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	dir, err := os.MkdirTemp("", "migrate-test-*")
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

	l := assets.New()

	err = db.Update(func(tx *storage.Tx) error {
		if err := custody.PutConfig(tx, custody.Config{RedemptionCounter: 5, TokenReceiver: custody.DefaultTokenReceiver}); err != nil {
			return err
		}
		if err := l.PutAsset(tx, assets.Asset{ID: 10, Owner: vault, Collection: coll, TemplateID: assets.NoTemplate}); err != nil {
			return err
		}
		return l.PutAsset(tx, assets.Asset{ID: 11, Owner: alice, Collection: coll, TemplateID: assets.NoTemplate})
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	return db
}

const dump = `{
  "rows": [
    {"asset_id": 10, "redemption_id": 1099511627790, "method": "mark", "requester": "alice"},
    {"asset_id": "11", "redemption_id": "1099511627791", "method": "transfer", "requester": "alice"},
    {"asset_id": 12, "redemption_id": 1099511627792, "method": "burn", "redeemer": "alice"}
  ],
  "more": false
}`

// --- parsing ---

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("parsed %d rows, want 3", len(rows))
	}

	if rows[1].AssetID != 11 || rows[1].RedemptionID != LegacySeed+15 {
		t.Errorf("string columns parsed as %+v", rows[1])
	}

	if rows[2].Requester != alice {
		t.Errorf("redeemer column not used: %+v", rows[2])
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		`{"rows": [], "more": true}`,
		`{"rows": [{"asset_id": "x", "requester": "alice"}]}`,
		`{"rows": [{"asset_id": 1, "requester": "NotAName"}]}`,
		`not json`,
	}

	for _, in := range inputs {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%s): expected error", in)
		}
	}
}

// --- apply ---

func TestApply(t *testing.T) {
	db := newTestStorage(t)

	rows, err := Parse(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var report Report
	err = db.Update(func(tx *storage.Tx) error {
		report, err = Apply(tx, assets.New(), vault, rows, now)
		return err
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if len(report.Imported) != 1 || report.Imported[0] != 10 {
		t.Errorf("imported = %v, want [10]", report.Imported)
	}

	if len(report.Skipped) != 2 {
		t.Errorf("skipped = %+v, want 2 rows", report.Skipped)
	}

	if report.Counter != LegacySeed+15 {
		t.Errorf("counter = %d, want %d", report.Counter, LegacySeed+15)
	}

	err = db.View(func(tx *storage.Tx) error {
		r, found, err := custody.GetRedemption(tx, coll, 10)
		if err != nil {
			return err
		}
		if !found || r.Owner != alice || r.Status != custody.StatusRedeemed {
			t.Errorf("imported record = %+v (found=%v)", r, found)
		}

		cfg, err := custody.MustConfig(tx)
		if err != nil {
			return err
		}
		if cfg.RedemptionCounter != report.Counter {
			t.Errorf("stored counter = %d, want %d", cfg.RedemptionCounter, report.Counter)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestApplyTwiceSkipsTracked(t *testing.T) {
	db := newTestStorage(t)
	rows := []Row{{AssetID: 10, RedemptionID: 3, Method: "mark", Requester: alice}}

	for i := 0; i < 2; i++ {
		var report Report

		err := db.Update(func(tx *storage.Tx) error {
			var err error
			report, err = Apply(tx, assets.New(), vault, rows, time.Unix(0, 0))
			return err
		})
		if err != nil {
			t.Fatalf("Apply #%d failed: %v", i+1, err)
		}

		if report.Counter != 5 {
			t.Errorf("counter lowered to %d", report.Counter)
		}

		if i == 1 && len(report.Skipped) != 1 {
			t.Errorf("second import did not skip the tracked asset: %+v", report)
		}
	}
}

func TestApplyRequiresConfig(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.New(filepath.Join(dir, "db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	defer db.Close()

	err = db.Update(func(tx *storage.Tx) error {
		_, err := Apply(tx, assets.New(), vault, nil, time.Now())
		return err
	})
	if !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}
