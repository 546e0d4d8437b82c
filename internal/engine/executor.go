package engine

import (
	"RedeemVault/internal/assets"
	"RedeemVault/internal/fault"
	"RedeemVault/internal/logger"
	"RedeemVault/internal/outbox"
	"RedeemVault/internal/storage"
)

// executor routes flushed effects to their receiving contract.
type executor struct {
	u *unit
}

// Execute performs one outbound call inside the unit.
func (x executor) Execute(tx *storage.Tx, e outbox.Effect) error {
	u := x.u

	switch e.Kind {
	case outbox.KindTransfer:
		if e.Actor != e.From {
			return fault.Newf(fault.ErrAuthorization, "missing authority of %s", e.From)
		}
		if err := u.assets.Transfer(tx, e.From, e.To, e.AssetIDs); err != nil {
			return err
		}
		return u.receiveAssets(e.From, e.To, e.AssetIDs, e.Memo)

	case outbox.KindBurn:
		for _, id := range e.AssetIDs {
			if err := u.assets.Burn(tx, e.Actor, id); err != nil {
				return err
			}
		}
		return nil

	case outbox.KindMint:
		_, err := u.assets.Mint(tx, assets.MintRequest{
			Minter:     e.Actor,
			Collection: e.Collection,
			Schema:     e.Schema,
			TemplateID: e.TemplateID,
			NewOwner:   e.To,
		})
		return err

	case outbox.KindSetAssetData:
		for _, id := range e.AssetIDs {
			if err := u.assets.SetAssetData(tx, e.Actor, e.From, id, e.Data); err != nil {
				return err
			}
		}
		return nil

	case outbox.KindBuyRAMProxy:
		if e.Actor != u.self {
			return fault.Newf(fault.ErrAuthorization, "missing authority of %s", u.self)
		}
		return u.buyRAMProxy(e.Collection, e.Quantity)

	case outbox.KindBuyRAM, outbox.KindWithdrawRAM:
		logger.Debug("relay effect", "effect", e.String())
		return nil

	default:
		return fault.Newf(fault.ErrMalformedInput, "unknown effect kind %d", e.Kind)
	}
}
