package api

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"RedeemVault/internal/action"
	"RedeemVault/internal/assets"
	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/engine"
	"RedeemVault/internal/names"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/snapshot"
	"RedeemVault/internal/storage"
)

var (
	vault   = names.MustParse("redeemvault")
	alice   = names.MustParse("alice")
	curator = names.MustParse("curator")
	coll    = names.MustParse("kittycards")
	cards   = names.MustParse("cards")
)

var format = []atomicdata.Format{
	{Name: "redemption_type", Type: "uint8"},
	{Name: "redemption_status", Type: "string"},
}

// testServer bundles a server with the signing keys of its accounts.
type testServer struct {
	http  *httptest.Server
	keys  map[names.Name]ed25519.PrivateKey
	nonce uint64
}

// newTestServer starts a server over an initialized engine holding asset 1 (burn policy) owned by alice.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir, err := os.MkdirTemp("", "api-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	db, err := storage.New(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create storage: %v", err)
	}

	market, err := ramledger.NewFixedRateMarket("1000")
	if err != nil {
		t.Fatalf("NewFixedRateMarket failed: %v", err)
	}

	e, err := engine.New(engine.Config{Storage: db, Self: vault, Market: market})
	if err != nil {
		t.Fatalf("engine.New failed: %v", err)
	}

	if err := e.Init(engine.Authorize(vault)); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	err = e.Seed(func(tx *storage.Tx, l *assets.Ledger) error {
		if err := l.PutCollection(tx, assets.Collection{Name: coll, Author: curator, AuthorizedAccounts: []names.Name{curator, vault}}); err != nil {
			return err
		}
		if err := l.PutSchema(tx, assets.Schema{Collection: coll, Name: cards, Format: format}); err != nil {
			return err
		}

		typ, _ := atomicdata.Uint(atomicdata.KindUint8, 0)
		immutable, err := atomicdata.Serialize(atomicdata.Map{"redemption_type": typ}, format)
		if err != nil {
			return err
		}
		mutable, err := atomicdata.Serialize(atomicdata.Map{"redemption_status": atomicdata.String("pending")}, format)
		if err != nil {
			return err
		}

		return l.PutAsset(tx, assets.Asset{
			ID: 1, Owner: alice, Collection: coll, Schema: cards,
			TemplateID: assets.NoTemplate, ImmutableData: immutable, MutableData: mutable,
		})
	})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	ts := &testServer{keys: make(map[names.Name]ed25519.PrivateKey)}
	pubs := make(map[names.Name]ed25519.PublicKey)

	for _, n := range []names.Name{vault, alice, curator} {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatalf("GenerateKey failed: %v", err)
		}
		ts.keys[n], pubs[n] = priv, pub
	}

	ts.http = httptest.NewServer(New("", e, db, pubs).Handler())

	t.Cleanup(func() {
		ts.http.Close()
		db.Close()
		os.RemoveAll(dir)
	})

	return ts
}

// post signs and submits an action, returning status and decoded body.
func (ts *testServer) post(t *testing.T, signer names.Name, name string, args []byte) (int, map[string]string) {
	t.Helper()

	ts.nonce++
	env := action.Sign(ts.keys[signer], action.Action{Name: name, Signer: signer, Args: args, Nonce: ts.nonce})

	return ts.postRaw(t, env)
}

// postRaw submits envelope bytes.
func (ts *testServer) postRaw(t *testing.T, env []byte) (int, map[string]string) {
	t.Helper()

	resp, err := http.Post(ts.http.URL+"/v1/actions", "application/octet-stream", bytes.NewReader(env))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)

	return resp.StatusCode, body
}

// get fetches path and decodes the JSON body into out.
func (ts *testServer) get(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := http.Get(ts.http.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		json.NewDecoder(resp.Body).Decode(out)
	}

	return resp.StatusCode
}

// --- actions ---

func TestLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.post(t, alice, action.NameTransfer, action.Transfer{From: alice, To: vault, AssetIDs: []uint64{1}, Memo: "redeem"}.Encode())
	if status != http.StatusOK {
		t.Fatalf("transfer: %d %v", status, body)
	}

	var pending struct {
		Owner string `json:"owner"`
	}
	if code := ts.get(t, "/v1/pending/1", &pending); code != http.StatusOK || pending.Owner != "alice" {
		t.Fatalf("pending: %d %+v", code, pending)
	}

	if status, body := ts.post(t, alice, action.NameRedeem, action.Redeem{Owner: alice, AssetID: 1}.Encode()); status != http.StatusOK {
		t.Fatalf("redeem: %d %v", status, body)
	}

	var rec struct {
		Status string `json:"status"`
	}
	if code := ts.get(t, "/v1/redemption/1", &rec); code != http.StatusOK || rec.Status != "redeemed" {
		t.Fatalf("redemption: %d %+v", code, rec)
	}

	var list []map[string]any
	if code := ts.get(t, "/v1/redemptions/kittycards", &list); code != http.StatusOK || len(list) != 1 {
		t.Errorf("redemptions: %d %v", code, list)
	}

	review := action.Review{Operator: curator, Collection: coll, AssetID: 1}.Encode()

	if status, body := ts.post(t, curator, action.NameAccept, review); status != http.StatusOK {
		t.Fatalf("accept: %d %v", status, body)
	}

	if status, body := ts.post(t, curator, action.NameRelease, review); status != http.StatusOK {
		t.Fatalf("release: %d %v", status, body)
	}

	if code := ts.get(t, "/v1/assets/1", nil); code != http.StatusNotFound {
		t.Errorf("burned asset: status %d, want 404", code)
	}

	var journal []struct {
		Seq  uint64 `json:"seq"`
		Name string `json:"name"`
	}
	if code := ts.get(t, "/v1/journal?after=0&limit=10", &journal); code != http.StatusOK || len(journal) != 2 {
		t.Fatalf("journal: %d %+v", code, journal)
	}

	if journal[1].Seq != 2 {
		t.Errorf("journal seq = %d, want 2", journal[1].Seq)
	}
}

func TestFaultStatusCodes(t *testing.T) {
	ts := newTestServer(t)

	redeem := action.Redeem{Owner: alice, AssetID: 1}.Encode()

	status, body := ts.post(t, alice, action.NameRedeem, redeem)
	if status != http.StatusNotFound || body["code"] != "not_found" {
		t.Errorf("redeem before deposit: %d %v", status, body)
	}

	status, body = ts.post(t, curator, action.NameRedeem, redeem)
	if status != http.StatusForbidden || body["code"] != "authorization" {
		t.Errorf("redeem by non-owner: %d %v", status, body)
	}

	status, body = ts.post(t, alice, action.NameTransfer, action.Transfer{From: alice, To: vault, AssetIDs: []uint64{1}, Memo: "hello"}.Encode())
	if status != http.StatusBadRequest || body["error"] != "transfer:\nInvalid Memo." {
		t.Errorf("bad memo: %d %v", status, body)
	}

	status, _ = ts.post(t, alice, "launch", nil)
	if status != http.StatusBadRequest {
		t.Errorf("unknown action: status %d, want 400", status)
	}

	status, _ = ts.post(t, alice, action.NameWithdrawRAM, action.WithdrawRAM{Operator: curator, Collection: coll, Recipient: curator, Bytes: 1}.Encode())
	if status != http.StatusForbidden {
		t.Errorf("withdraw for someone else: status %d, want 403", status)
	}

	status, body = ts.post(t, curator, action.NameWithdrawRAM, action.WithdrawRAM{Operator: curator, Collection: coll, Recipient: curator, Bytes: 1}.Encode())
	if status != http.StatusInsufficientStorage || body["code"] != "resource_exhausted" {
		t.Errorf("withdraw unfunded: %d %v", status, body)
	}
}

func TestReplayAndKeyChecks(t *testing.T) {
	ts := newTestServer(t)

	env := action.Sign(ts.keys[vault], action.Action{
		Name:   action.NameSetTR,
		Signer: vault,
		Args:   action.SetTR{Receiver: alice}.Encode(),
		Nonce:  42,
	})

	if status, body := ts.postRaw(t, env); status != http.StatusOK {
		t.Fatalf("settr: %d %v", status, body)
	}

	if status, _ := ts.postRaw(t, env); status != http.StatusConflict {
		t.Errorf("replay: status %d, want 409", status)
	}

	forged := action.Sign(ts.keys[alice], action.Action{Name: action.NameInit, Signer: vault})
	if status, _ := ts.postRaw(t, forged); status != http.StatusForbidden {
		t.Errorf("wrong key: status %d, want 403", status)
	}

	_, stranger, _ := ed25519.GenerateKey(rand.Reader)
	unknown := action.Sign(stranger, action.Action{Name: action.NameInit, Signer: names.MustParse("mallory")})
	if status, _ := ts.postRaw(t, unknown); status != http.StatusForbidden {
		t.Errorf("unregistered signer: status %d, want 403", status)
	}

	if status, _ := ts.postRaw(t, []byte("garbage!")); status != http.StatusBadRequest {
		t.Errorf("garbage: status %d, want 400", status)
	}

	var cfg struct {
		TokenReceiver string `json:"token_receiver"`
	}
	if code := ts.get(t, "/v1/config", &cfg); code != http.StatusOK || cfg.TokenReceiver != "alice" {
		t.Errorf("config: %d %+v", code, cfg)
	}
}

// --- queries ---

func TestQueries(t *testing.T) {
	ts := newTestServer(t)

	if code := ts.get(t, "/v1/pending/abc", nil); code != http.StatusBadRequest {
		t.Errorf("bad id: status %d, want 400", code)
	}

	if code := ts.get(t, "/v1/redemptions/BAD", nil); code != http.StatusBadRequest {
		t.Errorf("bad name: status %d, want 400", code)
	}

	var balance struct {
		Bytes int64 `json:"bytes"`
	}
	if code := ts.get(t, "/v1/balances/kittycards", &balance); code != http.StatusOK || balance.Bytes != 0 {
		t.Errorf("balance: %d %+v", code, balance)
	}

	var asset struct {
		Owner   string         `json:"owner"`
		Mutable map[string]any `json:"mutable_data"`
	}
	if code := ts.get(t, "/v1/assets/1", &asset); code != http.StatusOK || asset.Mutable["redemption_status"] != "pending" {
		t.Errorf("asset: %d %+v", code, asset)
	}

	var owned []uint64
	if code := ts.get(t, "/v1/accounts/alice/assets", &owned); code != http.StatusOK || len(owned) != 1 {
		t.Errorf("owned: %d %v", code, owned)
	}

	var health map[string]string
	if code := ts.get(t, "/health", &health); code != http.StatusOK || health["status"] != "ok" {
		t.Errorf("health: %d %v", code, health)
	}

	var st map[string]any
	if code := ts.get(t, "/status", &st); code != http.StatusOK || st["contract"] != "redeemvault" {
		t.Errorf("status: %d %v", code, st)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.http.URL + "/v1/snapshot")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	info, err := snapshot.Inspect(data)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Entries == 0 {
		t.Error("snapshot of a seeded store is empty")
	}

	if resp.Header.Get(requestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestRequestIDReused(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.http.URL+"/health", nil)
	req.Header.Set(requestIDHeader, "0b4f1f8e-5d5c-4b9c-9f61-3a0d1c2b7e11")

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(requestIDHeader); got != "0b4f1f8e-5d5c-4b9c-9f61-3a0d1c2b7e11" {
		t.Errorf("request id = %q", got)
	}
}
