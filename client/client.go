// Package client talks to a vault node over HTTP: wallets sign actions, the
// client submits them and reads the contract tables back.
package client

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"RedeemVault/internal/action"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
)

// Client connects to a vault node via HTTP.
type Client struct {
	nodeAddr string       // nodeAddr is the HTTP address (e.g. "127.0.0.1:8080")
	http     *http.Client // http carries requests
}

// NewClient creates a client for the node at nodeAddr.
func NewClient(nodeAddr string) *Client {
	return &Client{
		nodeAddr: nodeAddr,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// url builds an absolute URL for path.
func (c *Client) url(path string) string {
	return "http://" + c.nodeAddr + path
}

// Wallet signs actions for one account.
type Wallet struct {
	account names.Name         // account is the signing account
	privKey ed25519.PrivateKey // privKey is the Ed25519 private key
	nonce   atomic.Uint64      // nonce distinguishes otherwise identical actions
}

// NewWallet creates a wallet for account with a random Ed25519 keypair.
func NewWallet(account names.Name) *Wallet {
	_, priv, _ := ed25519.GenerateKey(rand.Reader)
	return newWallet(account, priv)
}

// LoadWallet creates a wallet from a hex-encoded Ed25519 seed.
func LoadWallet(account names.Name, seedHex string) (*Wallet, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("invalid key seed for %s", account)
	}

	return newWallet(account, ed25519.NewKeyFromSeed(seed)), nil
}

// newWallet seeds the nonce from the clock so restarts do not replay.
func newWallet(account names.Name, priv ed25519.PrivateKey) *Wallet {
	w := &Wallet{account: account, privKey: priv}
	w.nonce.Store(uint64(time.Now().UnixNano()))

	return w
}

// Account returns the wallet's account.
func (w *Wallet) Account() names.Name {
	return w.account
}

// Pubkey returns the wallet's public key.
func (w *Wallet) Pubkey() ed25519.PublicKey {
	return w.privKey.Public().(ed25519.PublicKey)
}

// PubkeyHex returns the public key as registered in a genesis file.
func (w *Wallet) PubkeyHex() string {
	return hex.EncodeToString(w.Pubkey())
}

// sign builds a signed envelope for the named action.
func (w *Wallet) sign(name string, args []byte) []byte {
	return action.Sign(w.privKey, action.Action{
		Name:   name,
		Signer: w.account,
		Args:   args,
		Nonce:  w.nonce.Add(1),
	})
}

// --- queries ---

// Config returns the contract configuration.
func (c *Client) Config() (custody.Config, error) {
	var cfg custody.Config
	err := c.get("/v1/config", &cfg)
	return cfg, err
}

// PendingDeposit mirrors a pending row as served by the node.
type PendingDeposit struct {
	AssetID     uint64     `json:"asset_id"`
	Owner       names.Name `json:"owner"`
	DepositTime time.Time  `json:"deposit_time"`
}

// Pending returns the pending deposit of an asset.
func (c *Client) Pending(id uint64) (PendingDeposit, error) {
	var p PendingDeposit
	err := c.get("/v1/pending/"+strconv.FormatUint(id, 10), &p)
	return p, err
}

// RedemptionInfo mirrors a redemption record as served by the node.
type RedemptionInfo struct {
	AssetID    uint64     `json:"asset_id"`
	Collection names.Name `json:"collection"`
	Owner      names.Name `json:"owner"`
	Status     string     `json:"status"`
	RedeemedAt time.Time  `json:"redeemed_at"`
	AcceptedAt time.Time  `json:"accepted_at"`
}

// Redemption returns the in-flight redemption of an asset.
func (c *Client) Redemption(id uint64) (RedemptionInfo, error) {
	var r RedemptionInfo
	err := c.get("/v1/redemption/"+strconv.FormatUint(id, 10), &r)
	return r, err
}

// Redemptions lists the records of a collection.
func (c *Client) Redemptions(collection names.Name) ([]RedemptionInfo, error) {
	var list []RedemptionInfo
	err := c.get("/v1/redemptions/"+collection.String(), &list)
	return list, err
}

// Balance returns the RAM balance of a collection in bytes.
func (c *Client) Balance(collection names.Name) (int64, error) {
	var resp struct {
		Bytes int64 `json:"bytes"`
	}

	err := c.get("/v1/balances/"+collection.String(), &resp)
	return resp.Bytes, err
}

// AssetInfo mirrors an asset with decoded attributes.
type AssetInfo struct {
	ID         uint64         `json:"asset_id"`
	Owner      names.Name     `json:"owner"`
	Collection names.Name     `json:"collection"`
	Schema     names.Name     `json:"schema"`
	TemplateID int32          `json:"template_id"`
	Immutable  map[string]any `json:"immutable_data"`
	Mutable    map[string]any `json:"mutable_data"`
}

// Asset returns an asset of the mirror.
func (c *Client) Asset(id uint64) (AssetInfo, error) {
	var a AssetInfo
	err := c.get("/v1/assets/"+strconv.FormatUint(id, 10), &a)
	return a, err
}

// AssetsOf lists the asset ids held by owner.
func (c *Client) AssetsOf(owner names.Name) ([]uint64, error) {
	var ids []uint64
	err := c.get("/v1/accounts/"+owner.String()+"/assets", &ids)
	return ids, err
}

// JournalEntry is one executed effect.
type JournalEntry struct {
	Seq    uint64        `json:"seq"`
	Unit   string        `json:"unit"`
	Digest string        `json:"digest"`
	Name   string        `json:"name"`
	Effect outbox.Effect `json:"effect"`
}

// Journal returns up to limit entries after seq.
func (c *Client) Journal(after uint64, limit int) ([]JournalEntry, error) {
	var list []JournalEntry
	err := c.get(fmt.Sprintf("/v1/journal?after=%d&limit=%d", after, limit), &list)
	return list, err
}

// Snapshot downloads a snapshot of the node's tables.
func (c *Client) Snapshot() ([]byte, error) {
	return c.getRaw("/v1/snapshot")
}

// Health reports whether the node answers.
func (c *Client) Health() error {
	var resp map[string]string
	return c.get("/health", &resp)
}
