package engine

import (
	"RedeemVault/internal/assets"
	"RedeemVault/internal/atomicdata"
	"RedeemVault/internal/custody"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/names"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/ramledger"
)

// Redeem turns owner's pending deposit of id into a Redeemed record.
// Minting policies check RAM with Validate only; the debit happens at release.
func (e *Engine) Redeem(call Call, owner names.Name, id uint64) error {
	return e.run("redeem", call, func(u *unit) error {
		if err := u.require(owner); err != nil {
			return err
		}

		cfg, err := custody.MustConfig(u.tx)
		if err != nil {
			return err
		}

		if _, found, err := custody.FindRedemption(u.tx, id); err != nil {
			return err
		} else if found {
			return fault.Newf(fault.ErrStateConflict, "asset %d already has a redemption in flight", id)
		}

		pending, found, err := custody.GetPending(u.tx, id)
		if err != nil {
			return err
		}

		if !found {
			return fault.Newf(fault.ErrNotFound, "asset %d is not deposited", id)
		}

		if pending.Owner != owner {
			return fault.Newf(fault.ErrAuthorization, "asset %d was deposited by %s", id, pending.Owner)
		}

		r, err := u.resolve(id)
		if err != nil {
			return err
		}

		if r.asset.Owner != u.self {
			return fault.Newf(fault.ErrNotFound, "Asset ID not found in contract: %d", id)
		}

		if err := r.requireStatus(); err != nil {
			return err
		}

		if err := u.precheck(r, owner); err != nil {
			return err
		}

		if err := custody.DeletePending(u.tx, id); err != nil {
			return err
		}

		err = custody.InsertRedemption(u.tx, custody.Redemption{
			AssetID:    id,
			Collection: r.asset.Collection,
			Owner:      owner,
			Status:     custody.StatusRedeemed,
			RedeemedAt: u.now,
		})
		if err != nil {
			return err
		}

		cfg.RedemptionCounter++

		return custody.PutConfig(u.tx, cfg)
	})
}

// precheck validates what redeem can know about the eventual disposition.
func (u *unit) precheck(r *resolution, recipient names.Name) error {
	if !r.policy.known() {
		return fault.Newf(fault.ErrInvalidPolicy, "redemption_type %d is not supported", r.policy)
	}

	if r.policy == PolicyBurn {
		return nil
	}

	collection, err := u.assets.Collection(u.tx, r.asset.Collection)
	if err != nil {
		return err
	}

	if !collection.IsAuthorized(u.self) {
		return fault.Newf(fault.ErrAuthorization, "Contract is not authorized within collection %s", r.asset.Collection)
	}

	if r.policy != PolicyReissue {
		return nil
	}

	cost, _, err := u.reissueCost(r, recipient)
	if err != nil {
		return err
	}

	return ramledger.Validate(u.tx, r.asset.Collection, cost)
}

// reissueCost resolves the replacement template, checks its supply headroom
// and sizes the mint cost on the recipient's scope.
func (u *unit) reissueCost(r *resolution, recipient names.Name) (int64, assets.Template, error) {
	tid, err := r.replacementTemplate()
	if err != nil {
		return 0, assets.Template{}, err
	}

	t, err := u.assets.Template(u.tx, r.asset.Collection, tid)
	if err != nil {
		return 0, assets.Template{}, err
	}

	if !t.HasSupply() {
		return 0, assets.Template{}, fault.Newf(fault.ErrSupplyExceeded, "Template %d has reached max supply", tid)
	}

	hasAssets, err := u.assets.HasAssets(u.tx, recipient)
	if err != nil {
		return 0, assets.Template{}, err
	}

	return ramledger.MintCost(hasAssets), t, nil
}

// operatorRecord authorizes operator on collection and loads the record for id.
func (u *unit) operatorRecord(operator, collection names.Name, id uint64) (custody.Redemption, error) {
	if err := u.require(operator); err != nil {
		return custody.Redemption{}, err
	}

	c, err := u.assets.Collection(u.tx, collection)
	if err != nil {
		return custody.Redemption{}, err
	}

	if !c.IsAuthorized(operator) {
		return custody.Redemption{}, fault.Newf(fault.ErrAuthorization, "Account %s is not authorized", operator)
	}

	rec, found, err := custody.GetRedemption(u.tx, collection, id)
	if err != nil {
		return custody.Redemption{}, err
	}

	if !found {
		return custody.Redemption{}, fault.Newf(fault.ErrNotFound, "No active Redemption for asset %d in %s", id, collection)
	}

	return rec, nil
}

// Accept moves a Redeemed record to Accepted.
func (e *Engine) Accept(call Call, operator, collection names.Name, id uint64) error {
	return e.run("accept", call, func(u *unit) error {
		rec, err := u.operatorRecord(operator, collection, id)
		if err != nil {
			return err
		}

		if rec.Status != custody.StatusRedeemed {
			return fault.Newf(fault.ErrStateConflict, "Redemption has already been accepted")
		}

		rec.Status = custody.StatusAccepted
		rec.AcceptedAt = u.now

		return custody.UpdateRedemption(u.tx, rec)
	})
}

// Reject returns a Redeemed asset to its recorded owner and erases the record.
func (e *Engine) Reject(call Call, operator, collection names.Name, id uint64, memo string) error {
	return e.run("reject", call, func(u *unit) error {
		rec, err := u.operatorRecord(operator, collection, id)
		if err != nil {
			return err
		}

		if rec.Status != custody.StatusRedeemed {
			return fault.Newf(fault.ErrStateConflict, "Redemption has already been accepted")
		}

		u.queue(outbox.Effect{
			Kind:     outbox.KindTransfer,
			Contract: AtomicAssets,
			Actor:    u.self,
			From:     u.self,
			To:       rec.Owner,
			AssetIDs: []uint64{id},
			Memo:     memo,
		})

		return custody.DeleteRedemption(u.tx, collection, id)
	})
}

// Release executes the disposition of an Accepted record and erases it.
// The policy is resolved again so attribute changes since redeem apply.
// On failure the record stays Accepted.
func (e *Engine) Release(call Call, operator, collection names.Name, id uint64) error {
	return e.run("release", call, func(u *unit) error {
		rec, err := u.operatorRecord(operator, collection, id)
		if err != nil {
			return err
		}

		if rec.Status != custody.StatusAccepted {
			return fault.Newf(fault.ErrStateConflict, "Redemption is not accepted yet or has already been processed")
		}

		r, err := u.resolve(id)
		if err != nil {
			return err
		}

		if err := u.dispatch(r, rec); err != nil {
			return err
		}

		return custody.DeleteRedemption(u.tx, collection, id)
	})
}

// dispatch queues the terminal effects of a disposition.
// Unknown policies fail before anything is queued.
func (u *unit) dispatch(r *resolution, rec custody.Redemption) error {
	id := r.asset.ID

	switch r.policy {
	case PolicyBurn:
		u.queueBurn(id)
		return nil

	case PolicyReissue:
		u.queueBurn(id)

		cost, t, err := u.reissueCost(r, rec.Owner)
		if err != nil {
			return err
		}

		if err := ramledger.Debit(u.tx, r.asset.Collection, cost); err != nil {
			return err
		}

		u.queue(outbox.Effect{
			Kind:       outbox.KindMint,
			Contract:   AtomicAssets,
			Actor:      u.self,
			Collection: r.asset.Collection,
			Schema:     t.Schema,
			TemplateID: t.ID,
			To:         rec.Owner,
		})
		return nil

	case PolicyMark:
		if err := r.requireStatus(); err != nil {
			return err
		}

		mutable := r.mutable.Clone()
		mutable[fieldStatus] = atomicdata.String(statusRedeemed)

		data, err := atomicdata.Serialize(mutable, r.format)
		if err != nil {
			return err
		}

		u.queue(outbox.Effect{
			Kind:     outbox.KindSetAssetData,
			Contract: AtomicAssets,
			Actor:    u.self,
			From:     u.self,
			AssetIDs: []uint64{id},
			Data:     data,
		})
		return nil

	default:
		return fault.Newf(fault.ErrInvalidPolicy, "redemption_type %d is not supported", r.policy)
	}
}

// queueBurn queues a burn of a custodied asset.
func (u *unit) queueBurn(id uint64) {
	u.queue(outbox.Effect{
		Kind:     outbox.KindBurn,
		Contract: AtomicAssets,
		Actor:    u.self,
		From:     u.self,
		AssetIDs: []uint64{id},
	})
}
