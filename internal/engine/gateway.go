package engine

import (
	"errors"
	"strings"

	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/token"
)

// Memo tags recognized by the notification handlers.
const (
	redeemTag  = "redeem"
	depositTag = "deposit_collection_ram:"
)

// TransferAssets moves assets held by from and notifies the receiver in the
// same unit. A transfer to the contract is a custody deposit.
func (e *Engine) TransferAssets(call Call, from, to names.Name, ids []uint64, memo string) error {
	return e.run("transfer", call, func(u *unit) error {
		if err := u.require(from); err != nil {
			return err
		}

		u.queue(outbox.Effect{
			Kind:     outbox.KindTransfer,
			Contract: AtomicAssets,
			Actor:    from,
			From:     from,
			To:       to,
			AssetIDs: ids,
			Memo:     memo,
		})

		return nil
	})
}

// ReceiveAssetTransfer handles a transfer notification delivered by the asset system.
func (e *Engine) ReceiveAssetTransfer(call Call, from, to names.Name, ids []uint64, memo string) error {
	return e.run("assets_notify", call, func(u *unit) error {
		if err := u.require(AtomicAssets); err != nil {
			return err
		}

		return u.receiveAssets(from, to, ids, memo)
	})
}

// receiveAssets records each custodied asset as pending. Any invalid id
// fails the whole batch.
func (u *unit) receiveAssets(from, to names.Name, ids []uint64, memo string) error {
	if to != u.self {
		return nil
	}

	if !strings.HasPrefix(memo, redeemTag) {
		return fault.Newf(fault.ErrMalformedInput, "Invalid Memo.")
	}

	seen := make(map[uint64]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			return fault.Newf(fault.ErrMalformedInput, "asset %d listed twice", id)
		}
		seen[id] = true

		if _, err := u.assets.OwnedAsset(u.tx, u.self, id); err != nil {
			if errors.Is(err, fault.ErrNotFound) {
				return fault.Newf(fault.ErrNotFound, "Asset ID not found in contract: %d", id)
			}
			return err
		}

		r, err := u.resolve(id)
		if err != nil {
			return err
		}

		if err := r.requireStatus(); err != nil {
			return err
		}

		if err := custody.InsertPending(u.tx, custody.Pending{AssetID: id, Owner: from, DepositTime: u.now}); err != nil {
			return err
		}
	}

	return nil
}

// ReceiveTokenTransfer handles a token transfer notification. Deposits
// tagged deposit_collection_ram:<collection> buy RAM for that collection
// through the buyramproxy self-call; everything else is ignored.
func (e *Engine) ReceiveTokenTransfer(call Call, contract, from, to names.Name, quantity token.Asset, memo string) error {
	return e.run("token_notify", call, func(u *unit) error {
		if err := u.require(contract); err != nil {
			return err
		}

		if to != u.self || !strings.HasPrefix(memo, depositTag) {
			return nil
		}

		if contract != TokenContract || quantity.Symbol != token.Core {
			return fault.Newf(fault.ErrMalformedInput, "Must transfer WAX when depositing RAM")
		}

		if !quantity.IsPositive() {
			return fault.Newf(fault.ErrMalformedInput, "deposit quantity must be positive")
		}

		collection, err := names.Parse(memo[len(depositTag):])
		if err != nil {
			return fault.Newf(fault.ErrMalformedInput, "invalid collection in memo: %v", err)
		}

		if _, err := u.assets.Collection(u.tx, collection); err != nil {
			return fault.Newf(fault.ErrNotFound, "No collection with this name exists: %s", collection)
		}

		u.queue(outbox.Effect{
			Kind:       outbox.KindBuyRAMProxy,
			Contract:   u.self,
			Actor:      u.self,
			From:       from,
			Collection: collection,
			Quantity:   quantity,
		})

		return nil
	})
}

// BuyRAMProxy buys RAM with quantity and credits the bytes to collection.
// Only the contract itself may call it.
func (e *Engine) BuyRAMProxy(call Call, collection names.Name, quantity token.Asset) error {
	return e.run("buyramproxy", call, func(u *unit) error {
		if err := u.require(u.self); err != nil {
			return err
		}

		return u.buyRAMProxy(collection, quantity)
	})
}

// buyRAMProxy relays the purchase and credits the quoted bytes.
func (u *unit) buyRAMProxy(collection names.Name, quantity token.Asset) error {
	bytes, err := u.market.Quote(quantity)
	if err != nil {
		return err
	}

	u.queue(outbox.Effect{
		Kind:       outbox.KindBuyRAM,
		Contract:   SystemAccount,
		Actor:      u.self,
		From:       u.self,
		To:         u.self,
		Collection: collection,
		Bytes:      bytes,
		Quantity:   quantity,
	})

	return ramledger.Credit(u.tx, collection, bytes)
}

// WithdrawRAM debits a collection's RAM balance and relays the withdrawal to recipient.
func (e *Engine) WithdrawRAM(call Call, operator, collection, recipient names.Name, bytes int64) error {
	return e.run("withdrawram", call, func(u *unit) error {
		if err := u.require(operator); err != nil {
			return err
		}

		c, err := u.assets.Collection(u.tx, collection)
		if err != nil {
			return err
		}

		if !c.IsAuthorized(operator) {
			return fault.Newf(fault.ErrAuthorization, "Account %s is not authorized", operator)
		}

		if err := ramledger.Debit(u.tx, collection, bytes); err != nil {
			return err
		}

		u.queue(outbox.Effect{
			Kind:       outbox.KindWithdrawRAM,
			Contract:   SystemAccount,
			Actor:      u.self,
			From:       u.self,
			To:         recipient,
			Collection: collection,
			Bytes:      bytes,
		})

		return nil
	})
}
