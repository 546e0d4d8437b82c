package outbox

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"RedeemVault/internal/names"
	"RedeemVault/internal/storage"
	"RedeemVault/internal/token"
)

var (
	vault = names.MustParse("redeemvault")
	alice = names.MustParse("alice")
	coll  = names.MustParse("kittycards")
	unit  = [32]byte{1, 2, 3}
)

// newTestStorage creates a temporary storage for testing.
func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	dir, err := os.MkdirTemp("", "outbox-test-*")
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

// recorder executes effects by remembering them; a proxy effect queues a relay.
type recorder struct {
	log  *Log
	seen []Kind
	fail Kind
}

func (r *recorder) Execute(_ *storage.Tx, e Effect) error {
	r.seen = append(r.seen, e.Kind)

	if e.Kind == r.fail {
		return errors.New("rejected by asset system")
	}

	if e.Kind == KindBuyRAMProxy {
		r.log.Queue(Effect{Kind: KindBuyRAM, Collection: e.Collection, Quantity: e.Quantity})
	}

	return nil
}

// --- flush ---

func TestFlushFIFOAndDrain(t *testing.T) {
	s := newTestStorage(t)

	qty, _ := token.ParseAsset("1.00000000 WAX")

	var log Log
	log.Queue(Effect{Kind: KindBurn, AssetIDs: []uint64{1}})
	log.Queue(Effect{Kind: KindBuyRAMProxy, Collection: coll, Quantity: qty})
	log.Queue(Effect{Kind: KindTransfer, From: vault, To: alice, AssetIDs: []uint64{2}, Memo: "back"})

	rec := &recorder{log: &log}

	err := s.Update(func(tx *storage.Tx) error {
		return log.Flush(tx, unit, rec)
	})
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := []Kind{KindBurn, KindBuyRAMProxy, KindTransfer, KindBuyRAM}
	if len(rec.seen) != len(want) {
		t.Fatalf("executed %v, want %v", rec.seen, want)
	}

	for i := range want {
		if rec.seen[i] != want[i] {
			t.Errorf("effect %d = %s, want %s", i, rec.seen[i], want[i])
		}
	}

	if log.Pending() != 0 {
		t.Errorf("pending = %d after flush", log.Pending())
	}
}

func TestFlushErrorAbortsUnit(t *testing.T) {
	s := newTestStorage(t)

	var log Log
	log.Queue(Effect{Kind: KindBurn, AssetIDs: []uint64{1}})
	log.Queue(Effect{Kind: KindMint, Collection: coll, To: alice})

	err := s.Update(func(tx *storage.Tx) error {
		return log.Flush(tx, unit, &recorder{log: &log, fail: KindMint})
	})
	if err == nil {
		t.Fatal("expected flush error")
	}

	err = s.View(func(tx *storage.Tx) error {
		entries, err := Read(tx, 0, 0)
		if err != nil {
			return err
		}
		if len(entries) != 0 {
			t.Errorf("aborted unit left %d journal entries", len(entries))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

// --- journal ---

func TestJournalRoundTripAndChain(t *testing.T) {
	s := newTestStorage(t)

	qty, _ := token.ParseAsset("2.50000000 WAX")
	effects := []Effect{
		{Kind: KindTransfer, Contract: names.MustParse("atomicassets"), Actor: vault, From: vault, To: alice, AssetIDs: []uint64{7, 8}, Memo: "rejected"},
		{Kind: KindMint, Collection: coll, Schema: names.MustParse("cards"), TemplateID: 12, To: alice},
		{Kind: KindBuyRAM, Collection: coll, Quantity: qty},
		{Kind: KindSetAssetData, AssetIDs: []uint64{9}, Data: []byte{7, 8, 'r'}},
	}

	err := s.Update(func(tx *storage.Tx) error {
		for _, e := range effects {
			if _, err := Append(tx, unit, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	err = s.View(func(tx *storage.Tx) error {
		if err := Verify(tx); err != nil {
			return err
		}

		all, err := Read(tx, 0, 0)
		if err != nil {
			return err
		}
		if len(all) != len(effects) {
			t.Fatalf("read %d entries, want %d", len(all), len(effects))
		}

		first := all[0]
		if first.Seq != 1 || first.Unit != unit || first.Effect.Memo != "rejected" || len(first.Effect.AssetIDs) != 2 {
			t.Errorf("entry 1 = %+v", first)
		}

		if all[1].Effect.TemplateID != 12 || all[1].Effect.To != alice {
			t.Errorf("entry 2 = %+v", all[1].Effect)
		}

		if all[2].Effect.Quantity != qty {
			t.Errorf("entry 3 quantity = %s, want %s", all[2].Effect.Quantity, qty)
		}

		if string(all[3].Effect.Data) != string([]byte{7, 8, 'r'}) {
			t.Errorf("entry 4 data = %v", all[3].Effect.Data)
		}

		page, err := Read(tx, 1, 2)
		if err != nil {
			return err
		}
		if len(page) != 2 || page[0].Seq != 2 || page[1].Seq != 3 {
			t.Errorf("page = %+v", page)
		}

		seq, digest, err := Head(tx)
		if err != nil {
			return err
		}
		if seq != 4 || digest != all[3].Digest {
			t.Errorf("head = %d/%x", seq, digest[:4])
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	s := newTestStorage(t)

	err := s.Update(func(tx *storage.Tx) error {
		if _, err := Append(tx, unit, Effect{Kind: KindBurn, AssetIDs: []uint64{1}}); err != nil {
			return err
		}
		_, err := Append(tx, unit, Effect{Kind: KindBurn, AssetIDs: []uint64{2}})
		return err
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	err = s.Update(func(tx *storage.Tx) error {
		value, err := tx.Get(entryKey(1))
		if err != nil {
			return err
		}
		value[len(value)-1] ^= 0xFF
		return tx.Set(entryKey(1), value)
	})
	if err != nil {
		t.Fatalf("tamper failed: %v", err)
	}

	err = s.View(func(tx *storage.Tx) error { return Verify(tx) })
	if err == nil {
		t.Error("expected Verify to detect a modified entry")
	}
}

// --- json ---

func TestEffectJSONCarriesQuantity(t *testing.T) {
	qty, _ := token.ParseAsset("1.00000000 WAX")

	data, err := json.Marshal(Effect{Kind: KindBuyRAM, Collection: coll, Quantity: qty})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if raw["quantity"] != "1.00000000 WAX" {
		t.Errorf("quantity = %v, want 1.00000000 WAX", raw["quantity"])
	}

	var back Effect
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Kind != KindBuyRAM || back.Quantity != qty {
		t.Errorf("decoded %+v", back)
	}

	data, _ = json.Marshal(Effect{Kind: KindBurn, AssetIDs: []uint64{1}})
	raw = nil
	json.Unmarshal(data, &raw)
	if _, ok := raw["quantity"]; ok {
		t.Errorf("burn effect rendered a quantity: %s", data)
	}
}
