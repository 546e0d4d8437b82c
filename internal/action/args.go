package action

import (
	"RedeemVault/internal/names"
	"RedeemVault/internal/token"
)

// Operation names.
const (
	NameInit        = "init"
	NameSetTR       = "settr"
	NameRedeem      = "redeem"
	NameAccept      = "accept"
	NameReject      = "reject"
	NameRelease     = "release"
	NameTransfer    = "transfer"
	NameAssetNotify = "assetnotify"
	NameTokenNotify = "tokennotify"
	NameBuyRAMProxy = "buyramproxy"
	NameWithdrawRAM = "withdrawram"
)

// SetTR carries settr arguments.
type SetTR struct {
	Receiver names.Name
}

// Encode returns the Borsh arguments.
func (a SetTR) Encode() []byte {
	return new(Writer).Name(a.Receiver).Bytes()
}

// DecodeSetTR parses settr arguments.
func DecodeSetTR(data []byte) (SetTR, error) {
	r := NewReader(data)
	a := SetTR{Receiver: r.Name()}
	return a, r.Done()
}

// Redeem carries redeem arguments.
type Redeem struct {
	Owner   names.Name
	AssetID uint64
}

// Encode returns the Borsh arguments.
func (a Redeem) Encode() []byte {
	return new(Writer).Name(a.Owner).U64(a.AssetID).Bytes()
}

// DecodeRedeem parses redeem arguments.
func DecodeRedeem(data []byte) (Redeem, error) {
	r := NewReader(data)
	a := Redeem{Owner: r.Name(), AssetID: r.U64()}
	return a, r.Done()
}

// Review carries accept and release arguments.
type Review struct {
	Operator   names.Name
	Collection names.Name
	AssetID    uint64
}

// Encode returns the Borsh arguments.
func (a Review) Encode() []byte {
	return new(Writer).Name(a.Operator).Name(a.Collection).U64(a.AssetID).Bytes()
}

// DecodeReview parses accept or release arguments.
func DecodeReview(data []byte) (Review, error) {
	r := NewReader(data)
	a := Review{Operator: r.Name(), Collection: r.Name(), AssetID: r.U64()}
	return a, r.Done()
}

// Reject carries reject arguments.
type Reject struct {
	Operator   names.Name
	Collection names.Name
	AssetID    uint64
	Memo       string
}

// Encode returns the Borsh arguments.
func (a Reject) Encode() []byte {
	return new(Writer).Name(a.Operator).Name(a.Collection).U64(a.AssetID).Text(a.Memo).Bytes()
}

// DecodeReject parses reject arguments.
func DecodeReject(data []byte) (Reject, error) {
	r := NewReader(data)
	a := Reject{Operator: r.Name(), Collection: r.Name(), AssetID: r.U64(), Memo: r.Text()}
	return a, r.Done()
}

// Transfer carries asset transfer and asset notification arguments.
type Transfer struct {
	From     names.Name
	To       names.Name
	AssetIDs []uint64
	Memo     string
}

// Encode returns the Borsh arguments.
func (a Transfer) Encode() []byte {
	return new(Writer).Name(a.From).Name(a.To).IDs(a.AssetIDs).Text(a.Memo).Bytes()
}

// DecodeTransfer parses transfer arguments.
func DecodeTransfer(data []byte) (Transfer, error) {
	r := NewReader(data)
	a := Transfer{From: r.Name(), To: r.Name(), AssetIDs: r.IDs(), Memo: r.Text()}
	return a, r.Done()
}

// TokenTransfer carries token notification arguments.
type TokenTransfer struct {
	From     names.Name
	To       names.Name
	Quantity token.Asset
	Memo     string
}

// Encode returns the Borsh arguments.
func (a TokenTransfer) Encode() []byte {
	return new(Writer).Name(a.From).Name(a.To).Asset(a.Quantity).Text(a.Memo).Bytes()
}

// DecodeTokenTransfer parses token notification arguments.
func DecodeTokenTransfer(data []byte) (TokenTransfer, error) {
	r := NewReader(data)
	a := TokenTransfer{From: r.Name(), To: r.Name(), Quantity: r.Asset(), Memo: r.Text()}
	return a, r.Done()
}

// BuyRAMProxy carries buyramproxy arguments.
type BuyRAMProxy struct {
	Collection names.Name
	Quantity   token.Asset
}

// Encode returns the Borsh arguments.
func (a BuyRAMProxy) Encode() []byte {
	return new(Writer).Name(a.Collection).Asset(a.Quantity).Bytes()
}

// DecodeBuyRAMProxy parses buyramproxy arguments.
func DecodeBuyRAMProxy(data []byte) (BuyRAMProxy, error) {
	r := NewReader(data)
	a := BuyRAMProxy{Collection: r.Name(), Quantity: r.Asset()}
	return a, r.Done()
}

// WithdrawRAM carries withdrawram arguments.
type WithdrawRAM struct {
	Operator   names.Name
	Collection names.Name
	Recipient  names.Name
	Bytes      int64
}

// Encode returns the Borsh arguments.
func (a WithdrawRAM) Encode() []byte {
	return new(Writer).Name(a.Operator).Name(a.Collection).Name(a.Recipient).I64(a.Bytes).Bytes()
}

// DecodeWithdrawRAM parses withdrawram arguments.
func DecodeWithdrawRAM(data []byte) (WithdrawRAM, error) {
	r := NewReader(data)
	a := WithdrawRAM{Operator: r.Name(), Collection: r.Name(), Recipient: r.Name(), Bytes: r.I64()}
	return a, r.Done()
}
