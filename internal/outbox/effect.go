// Package outbox holds the outbound calls an operation issues. Effects are
// queued while the operation runs, executed in FIFO order inside the same
// unit once the operation succeeds, and recorded in a hash-chained journal.
package outbox

import (
	"fmt"

	"RedeemVault/internal/names"
	"RedeemVault/internal/token"
)

// Kind identifies the outbound call.
type Kind uint8

const (
	// KindTransfer moves assets between scopes.
	KindTransfer Kind = iota + 1
	// KindBurn destroys a custodied asset.
	KindBurn
	// KindMint issues a replacement asset.
	KindMint
	// KindSetAssetData replaces an asset's mutable data.
	KindSetAssetData
	// KindBuyRAMProxy is the inline self-call that credits a collection.
	KindBuyRAMProxy
	// KindBuyRAM relays a RAM purchase to the system contract.
	KindBuyRAM
	// KindWithdrawRAM relays a RAM withdrawal.
	KindWithdrawRAM
)

// kindNames are the action names used in logs and the journal API.
var kindNames = map[Kind]string{
	KindTransfer:     "transfer",
	KindBurn:         "burnasset",
	KindMint:         "mintasset",
	KindSetAssetData: "setassetdata",
	KindBuyRAMProxy:  "buyramproxy",
	KindBuyRAM:       "buyram",
	KindWithdrawRAM:  "withdrawram",
}

// String returns the action name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText renders the action name for JSON.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses an action name.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown effect %q", b)
}

// Effect is one outbound call. Only the fields relevant to Kind are set.
type Effect struct {
	Kind       Kind        `json:"kind"`                  // Kind selects the call
	Contract   names.Name  `json:"contract"`              // Contract receives the call
	Actor      names.Name  `json:"actor"`                 // Actor authorizes the call
	From       names.Name  `json:"from,omitempty"`        // From is the sending scope
	To         names.Name  `json:"to,omitempty"`          // To is the receiving scope or account
	AssetIDs   []uint64    `json:"asset_ids,omitempty"`   // AssetIDs lists affected assets
	Memo       string      `json:"memo,omitempty"`        // Memo accompanies transfers
	Collection names.Name  `json:"collection,omitempty"`  // Collection scopes mint and RAM calls
	Schema     names.Name  `json:"schema,omitempty"`      // Schema of a minted asset
	TemplateID int32       `json:"template_id,omitempty"` // TemplateID of a minted asset
	Bytes      int64       `json:"bytes,omitempty"`       // Bytes of RAM bought or withdrawn
	Quantity   token.Asset `json:"quantity,omitzero"`     // Quantity of tokens spent
	Data       []byte      `json:"data,omitempty"`        // Data is serialized mutable attributes
}

// String renders a short description for logs.
func (e Effect) String() string {
	switch e.Kind {
	case KindTransfer:
		return fmt.Sprintf("transfer %v %s->%s", e.AssetIDs, e.From, e.To)
	case KindBurn:
		return fmt.Sprintf("burnasset %v", e.AssetIDs)
	case KindMint:
		return fmt.Sprintf("mintasset %s/%d -> %s", e.Collection, e.TemplateID, e.To)
	case KindSetAssetData:
		return fmt.Sprintf("setassetdata %v", e.AssetIDs)
	case KindBuyRAMProxy, KindBuyRAM:
		return fmt.Sprintf("%s %s %s", e.Kind, e.Collection, e.Quantity)
	case KindWithdrawRAM:
		return fmt.Sprintf("withdrawram %s %d bytes -> %s", e.Collection, e.Bytes, e.To)
	default:
		return e.Kind.String()
	}
}
