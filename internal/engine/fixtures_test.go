package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"RedeemVault/internal/assets"
	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/storage"
	"RedeemVault/internal/token"
)

var (
	vault   = names.MustParse("redeemvault")
	alice   = names.MustParse("alice")
	bob     = names.MustParse("bob")
	curator = names.MustParse("curator")
	coll    = names.MustParse("kittycards")
	cards   = names.MustParse("cards")
)

var cardFormat = []atomicdata.Format{
	{Name: "name", Type: "string"},
	{Name: "redemption_type", Type: "uint8"},
	{Name: "redemption_template", Type: "int32"},
	{Name: "redemption_status", Type: "string"},
}

// Fixture asset ids.
const (
	assetBurn       uint64 = 1   // template 1, redemption_type 0
	assetReissue    uint64 = 2   // template 2 (type 1), own immutable type 0
	assetReissueTwo uint64 = 3   // template 2
	assetMark       uint64 = 4   // template 4, redemption_type 2
	assetNoStatus   uint64 = 6   // template 1, mutable map lacks redemption_status
	assetBadPolicy  uint64 = 7   // template 5, redemption_type 7
	assetUntemplate uint64 = 8   // no template, own immutable type 0
	assetCapped     uint64 = 9   // template 7, replacement template at cap
	assetKeeper     uint64 = 100 // keeps alice's scope non-empty
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// attrs serializes a loose attribute map against cardFormat.
func attrs(t *testing.T, raw map[string]any) []byte {
	t.Helper()

	m, err := atomicdata.CoerceMap(raw, cardFormat)
	if err != nil {
		t.Fatalf("CoerceMap failed: %v", err)
	}

	data, err := atomicdata.Serialize(m, cardFormat)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	return data
}

// newTestEngine creates an initialized engine over a temp store with fixtures loaded.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	dir, err := os.MkdirTemp("", "engine-test-*")
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

	market, err := ramledger.NewFixedRateMarket("1000")
	if err != nil {
		t.Fatalf("NewFixedRateMarket failed: %v", err)
	}

	e, err := New(Config{Storage: db, Self: vault, Market: market, Clock: func() time.Time { return testNow }})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := e.Init(Authorize(vault)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	seedFixtures(t, e)

	return e
}

// seedFixtures loads the collection, schema, templates and assets.
func seedFixtures(t *testing.T, e *Engine) {
	t.Helper()

	status := map[string]any{"redemption_status": "pending"}

	templates := []assets.Template{
		{ID: 1, ImmutableData: attrs(t, map[string]any{"redemption_type": 0})},
		{ID: 2, ImmutableData: attrs(t, map[string]any{"redemption_type": 1, "redemption_template": 3})},
		{ID: 3, ImmutableData: attrs(t, map[string]any{"name": "Replacement"})},
		{ID: 4, ImmutableData: attrs(t, map[string]any{"redemption_type": 2})},
		{ID: 5, ImmutableData: attrs(t, map[string]any{"redemption_type": 7})},
		{ID: 6, ImmutableData: attrs(t, map[string]any{"name": "Capped"}), MaxSupply: 1, IssuedSupply: 1},
		{ID: 7, ImmutableData: attrs(t, map[string]any{"redemption_type": 1, "redemption_template": 6})},
	}

	list := []assets.Asset{
		{ID: assetBurn, TemplateID: 1, MutableData: attrs(t, status)},
		{ID: assetReissue, TemplateID: 2, ImmutableData: attrs(t, map[string]any{"redemption_type": 0}), MutableData: attrs(t, status)},
		{ID: assetReissueTwo, TemplateID: 2, MutableData: attrs(t, status)},
		{ID: assetMark, TemplateID: 4, MutableData: attrs(t, status)},
		{ID: assetNoStatus, TemplateID: 1},
		{ID: assetBadPolicy, TemplateID: 5, MutableData: attrs(t, status)},
		{ID: assetUntemplate, TemplateID: assets.NoTemplate, ImmutableData: attrs(t, map[string]any{"redemption_type": 0}), MutableData: attrs(t, status)},
		{ID: assetCapped, TemplateID: 7, MutableData: attrs(t, status)},
		{ID: assetKeeper, TemplateID: 3},
	}

	err := e.Seed(func(tx *storage.Tx, l *assets.Ledger) error {
		err := l.PutCollection(tx, assets.Collection{
			Name:               coll,
			Author:             curator,
			AuthorizedAccounts: []names.Name{curator, vault},
		})
		if err != nil {
			return err
		}

		if err := l.PutSchema(tx, assets.Schema{Collection: coll, Name: cards, Format: cardFormat}); err != nil {
			return err
		}

		for _, tmpl := range templates {
			tmpl.Collection, tmpl.Schema = coll, cards
			tmpl.Transferable, tmpl.Burnable = true, true
			if err := l.PutTemplate(tx, tmpl); err != nil {
				return err
			}
		}

		for _, a := range list {
			a.Owner, a.Collection, a.Schema = alice, coll, cards
			if err := l.PutAsset(tx, a); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

// deposit transfers ids from alice into custody with a redeem memo.
func deposit(t *testing.T, e *Engine, ids ...uint64) {
	t.Helper()

	if err := e.TransferAssets(Authorize(alice), alice, vault, ids, "redeem"); err != nil {
		t.Fatalf("deposit %v failed: %v", ids, err)
	}
}

// fund credits the collection through a token deposit at 1000 bytes per WAX.
func fund(t *testing.T, e *Engine, quantity string) {
	t.Helper()

	qty, err := token.ParseAsset(quantity)
	if err != nil {
		t.Fatalf("ParseAsset failed: %v", err)
	}

	err = e.ReceiveTokenTransfer(Authorize(TokenContract), TokenContract, bob, vault, qty, "deposit_collection_ram:kittycards")
	if err != nil {
		t.Fatalf("fund failed: %v", err)
	}
}

// redeemAndAccept moves a deposited asset to Accepted.
func redeemAndAccept(t *testing.T, e *Engine, id uint64) {
	t.Helper()

	if err := e.Redeem(Authorize(alice), alice, id); err != nil {
		t.Fatalf("Redeem(%d) failed: %v", id, err)
	}

	if err := e.Accept(Authorize(curator), curator, coll, id); err != nil {
		t.Fatalf("Accept(%d) failed: %v", id, err)
	}
}

// expectKind fails unless err unwraps to kind.
func expectKind(t *testing.T, err, kind error) {
	t.Helper()

	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}

// assertExclusive checks that id is not both pending and in redemption.
func assertExclusive(t *testing.T, e *Engine, id uint64) {
	t.Helper()

	_, pendErr := e.Pending(id)
	_, redErr := e.Redemption(id)

	if pendErr == nil && redErr == nil {
		t.Fatalf("asset %d is both pending and in redemption", id)
	}
}

// status returns the redemption status of id or fails.
func status(t *testing.T, e *Engine, id uint64) custody.Status {
	t.Helper()

	r, err := e.Redemption(id)
	if err != nil {
		t.Fatalf("Redemption(%d) failed: %v", id, err)
	}

	return r.Status
}

// gone asserts that id has neither a pending row nor a redemption.
func gone(t *testing.T, e *Engine, id uint64) {
	t.Helper()

	if _, err := e.Pending(id); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("asset %d still pending (err=%v)", id, err)
	}

	if _, err := e.Redemption(id); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("asset %d still in redemption (err=%v)", id, err)
	}
}
