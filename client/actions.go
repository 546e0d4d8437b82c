package client

import (
	"RedeemVault/internal/action"
	"RedeemVault/internal/names"
	"RedeemVault/internal/token"
)

// Memo tags understood by the vault.
const (
	RedeemMemo     = "redeem"
	DepositRAMMemo = "deposit_collection_ram:"
)

// Init creates the contract configuration. The wallet must be the contract account.
func (w *Wallet) Init(c *Client) error {
	return c.submit(w.sign(action.NameInit, nil))
}

// SetTokenReceiver updates the default token receiver.
func (w *Wallet) SetTokenReceiver(c *Client, receiver names.Name) error {
	return c.submit(w.sign(action.NameSetTR, action.SetTR{Receiver: receiver}.Encode()))
}

// Transfer moves the wallet's assets to another account.
func (w *Wallet) Transfer(c *Client, to names.Name, ids []uint64, memo string) error {
	args := action.Transfer{From: w.account, To: to, AssetIDs: ids, Memo: memo}
	return c.submit(w.sign(action.NameTransfer, args.Encode()))
}

// Deposit hands assets to the vault for redemption.
func (w *Wallet) Deposit(c *Client, vault names.Name, ids ...uint64) error {
	return w.Transfer(c, vault, ids, RedeemMemo)
}

// Redeem requests redemption of a deposited asset.
func (w *Wallet) Redeem(c *Client, id uint64) error {
	return c.submit(w.sign(action.NameRedeem, action.Redeem{Owner: w.account, AssetID: id}.Encode()))
}

// Accept approves a redemption as a collection operator.
func (w *Wallet) Accept(c *Client, collection names.Name, id uint64) error {
	args := action.Review{Operator: w.account, Collection: collection, AssetID: id}
	return c.submit(w.sign(action.NameAccept, args.Encode()))
}

// Reject returns a redeemed asset to its owner.
func (w *Wallet) Reject(c *Client, collection names.Name, id uint64, memo string) error {
	args := action.Reject{Operator: w.account, Collection: collection, AssetID: id, Memo: memo}
	return c.submit(w.sign(action.NameReject, args.Encode()))
}

// Release executes an accepted redemption.
func (w *Wallet) Release(c *Client, collection names.Name, id uint64) error {
	args := action.Review{Operator: w.account, Collection: collection, AssetID: id}
	return c.submit(w.sign(action.NameRelease, args.Encode()))
}

// WithdrawRAM withdraws bytes of a collection's RAM balance to recipient.
func (w *Wallet) WithdrawRAM(c *Client, collection, recipient names.Name, bytes int64) error {
	args := action.WithdrawRAM{Operator: w.account, Collection: collection, Recipient: recipient, Bytes: bytes}
	return c.submit(w.sign(action.NameWithdrawRAM, args.Encode()))
}

// NotifyTokenTransfer reports a token transfer to the vault. The wallet
// must be the token contract.
func (w *Wallet) NotifyTokenTransfer(c *Client, from, to names.Name, quantity token.Asset, memo string) error {
	args := action.TokenTransfer{From: from, To: to, Quantity: quantity, Memo: memo}
	return c.submit(w.sign(action.NameTokenNotify, args.Encode()))
}

// FundRAM reports a core-token deposit that buys RAM for collection.
func (w *Wallet) FundRAM(c *Client, from, vault, collection names.Name, quantity token.Asset) error {
	return w.NotifyTokenTransfer(c, from, vault, quantity, DepositRAMMemo+collection.String())
}

// NotifyAssetTransfer reports an asset transfer to the vault. The wallet
// must be the asset system contract.
func (w *Wallet) NotifyAssetTransfer(c *Client, from, to names.Name, ids []uint64, memo string) error {
	args := action.Transfer{From: from, To: to, AssetIDs: ids, Memo: memo}
	return c.submit(w.sign(action.NameAssetNotify, args.Encode()))
}
