// Package custody persists the escrow and redemption tables: the Config
// singleton, PendingAsset rows and collection-scoped redemption records.
package custody

import (
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"RedeemVault/internal/names"
	"RedeemVault/internal/types"
)

// Status is the lifecycle state of a redemption record.
type Status uint8

const (
	// StatusRedeemed is set by redeem.
	StatusRedeemed Status = 1
	// StatusAccepted is set by accept.
	StatusAccepted Status = 2
)

// String returns the lowercase state name.
func (s Status) String() string {
	switch s {
	case StatusRedeemed:
		return "redeemed"
	case StatusAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// MarshalText renders the status for JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DefaultTokenReceiver is the token receiver written by init.
var DefaultTokenReceiver = names.MustParse("waxchihkaiyu")

// Config is the contract-global singleton.
type Config struct {
	RedemptionCounter uint64     `json:"redemption_counter"` // RedemptionCounter counts accepted redeem calls
	TokenReceiver     names.Name `json:"token_receiver"`     // TokenReceiver is the default token receiver
}

// Pending is an asset held in escrow awaiting redeem.
type Pending struct {
	AssetID     uint64     `json:"asset_id"`     // AssetID is the custodied asset
	Owner       names.Name `json:"owner"`        // Owner deposited the asset
	DepositTime time.Time  `json:"deposit_time"` // DepositTime is second-resolution
}

// Redemption is an in-flight redemption request.
type Redemption struct {
	AssetID    uint64     `json:"asset_id"`              // AssetID is the custodied asset
	Collection names.Name `json:"collection"`            // Collection scopes the record
	Owner      names.Name `json:"owner"`                 // Owner receives returns and replacements
	Status     Status     `json:"status"`                // Status is Redeemed or Accepted
	RedeemedAt time.Time  `json:"redeemed_at"`           // RedeemedAt is when redeem ran
	AcceptedAt time.Time  `json:"accepted_at,omitempty"` // AcceptedAt is set by accept
}

// encodeConfig serializes a Config.
func encodeConfig(c Config) []byte {
	builder := flatbuffers.NewBuilder(64)

	types.ConfigStart(builder)
	types.ConfigAddRedemptionCounter(builder, c.RedemptionCounter)
	types.ConfigAddTokenReceiver(builder, uint64(c.TokenReceiver))
	builder.Finish(types.ConfigEnd(builder))

	return builder.FinishedBytes()
}

// decodeConfig parses a Config.
func decodeConfig(data []byte) Config {
	fb := types.GetRootAsConfig(data, 0)

	return Config{
		RedemptionCounter: fb.RedemptionCounter(),
		TokenReceiver:     names.Name(fb.TokenReceiver()),
	}
}

// encodePending serializes a Pending row.
func encodePending(p Pending) []byte {
	builder := flatbuffers.NewBuilder(64)

	types.PendingAssetStart(builder)
	types.PendingAssetAddAssetId(builder, p.AssetID)
	types.PendingAssetAddOwner(builder, uint64(p.Owner))
	types.PendingAssetAddDepositTime(builder, seconds(p.DepositTime))
	builder.Finish(types.PendingAssetEnd(builder))

	return builder.FinishedBytes()
}

// decodePending parses a Pending row.
func decodePending(data []byte) Pending {
	fb := types.GetRootAsPendingAsset(data, 0)

	return Pending{
		AssetID:     fb.AssetId(),
		Owner:       names.Name(fb.Owner()),
		DepositTime: fromSeconds(fb.DepositTime()),
	}
}

// encodeRedemption serializes a Redemption.
func encodeRedemption(r Redemption) []byte {
	builder := flatbuffers.NewBuilder(96)

	types.RedemptionStart(builder)
	types.RedemptionAddAssetId(builder, r.AssetID)
	types.RedemptionAddCollection(builder, uint64(r.Collection))
	types.RedemptionAddOwner(builder, uint64(r.Owner))
	types.RedemptionAddStatus(builder, byte(r.Status))
	types.RedemptionAddRedeemedAt(builder, millis(r.RedeemedAt))
	types.RedemptionAddAcceptedAt(builder, millis(r.AcceptedAt))
	builder.Finish(types.RedemptionEnd(builder))

	return builder.FinishedBytes()
}

// decodeRedemption parses a Redemption.
func decodeRedemption(data []byte) Redemption {
	fb := types.GetRootAsRedemption(data, 0)

	return Redemption{
		AssetID:    fb.AssetId(),
		Collection: names.Name(fb.Collection()),
		Owner:      names.Name(fb.Owner()),
		Status:     Status(fb.Status()),
		RedeemedAt: fromMillis(fb.RedeemedAt()),
		AcceptedAt: fromMillis(fb.AcceptedAt()),
	}
}

// seconds converts t to unix seconds, zero for the zero time.
func seconds(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}

	return uint32(t.Unix())
}

// millis converts t to unix milliseconds, zero for the zero time.
func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}

	return t.UnixMilli()
}

// fromSeconds reverses seconds.
func fromSeconds(s uint32) time.Time {
	if s == 0 {
		return time.Time{}
	}

	return time.Unix(int64(s), 0).UTC()
}

// fromMillis reverses millis.
func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(ms).UTC()
}
