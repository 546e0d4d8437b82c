package engine

import (
	"RedeemVault/internal/assets"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/ramledger"
	"RedeemVault/internal/storage"
)

// Config returns the contract configuration.
func (e *Engine) Config() (cfg custody.Config, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		cfg, err = custody.MustConfig(tx)
		return err
	})

	return cfg, err
}

// Pending returns the pending deposit of id.
func (e *Engine) Pending(id uint64) (p custody.Pending, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		var found bool
		p, found, err = custody.GetPending(tx, id)
		if err == nil && !found {
			err = fault.Newf(fault.ErrNotFound, "asset %d is not deposited", id)
		}
		return err
	})

	return p, err
}

// PendingAll lists every pending deposit.
func (e *Engine) PendingAll() (list []custody.Pending, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		list, err = custody.ListPending(tx)
		return err
	})

	return list, err
}

// Redemption returns the in-flight redemption of id.
func (e *Engine) Redemption(id uint64) (r custody.Redemption, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		var found bool
		r, found, err = custody.FindRedemption(tx, id)
		if err == nil && !found {
			err = fault.Newf(fault.ErrNotFound, "No active Redemption for asset %d", id)
		}
		return err
	})

	return r, err
}

// Redemptions lists the records scoped to collection.
func (e *Engine) Redemptions(collection names.Name) (list []custody.Redemption, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		list, err = custody.ListRedemptions(tx, collection)
		return err
	})

	return list, err
}

// Balance returns the RAM balance of collection; zero when unfunded.
func (e *Engine) Balance(collection names.Name) (bytes int64, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		bytes, _, err = ramledger.Balance(tx, collection)
		return err
	})

	return bytes, err
}

// Balances lists every funded collection.
func (e *Engine) Balances() (list []ramledger.Entry, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		list, err = ramledger.All(tx)
		return err
	})

	return list, err
}

// Journal returns up to limit effects journaled after seq.
func (e *Engine) Journal(after uint64, limit int) (list []outbox.Entry, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		list, err = outbox.Read(tx, after, limit)
		return err
	})

	return list, err
}

// VerifyJournal checks the journal digest chain.
func (e *Engine) VerifyJournal() error {
	return e.db.View(outbox.Verify)
}

// Asset returns an asset of the mirror.
func (e *Engine) Asset(id uint64) (a assets.Asset, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		a, err = e.assets.Asset(tx, id)
		return err
	})

	return a, err
}

// AssetsOf lists the asset ids held by owner.
func (e *Engine) AssetsOf(owner names.Name) (ids []uint64, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		ids, err = e.assets.AssetsOf(tx, owner)
		return err
	})

	return ids, err
}

// Seed runs fn against the mirror in one unit, outside the operation
// surface. It is used to load fixtures at startup.
func (e *Engine) Seed(fn func(tx *storage.Tx, l *assets.Ledger) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.db.Update(func(tx *storage.Tx) error {
		return fn(tx, e.assets)
	})
}

// JournalHead returns the last journaled sequence number and its digest.
func (e *Engine) JournalHead() (seq uint64, digest [32]byte, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		seq, digest, err = outbox.Head(tx)
		return err
	})

	return seq, digest, err
}

// Schema returns a schema of the mirror.
func (e *Engine) Schema(collection, name names.Name) (s assets.Schema, err error) {
	err = e.db.View(func(tx *storage.Tx) error {
		s, err = e.assets.Schema(tx, collection, name)
		return err
	})

	return s, err
}
