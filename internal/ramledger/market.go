package ramledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"RedeemVault/internal/fault"
	"RedeemVault/internal/token"
)

// Market quotes how many RAM bytes a token quantity buys.
type Market interface {
	Quote(quantity token.Asset) (int64, error)
}

// FixedRateMarket prices RAM at a constant number of bytes per whole token.
type FixedRateMarket struct {
	BytesPerToken decimal.Decimal // BytesPerToken is the rate applied to the token amount
}

// NewFixedRateMarket creates a market from a decimal rate string such as "10000".
func NewFixedRateMarket(rate string) (*FixedRateMarket, error) {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("parse ram rate %q:\n%w", rate, err)
	}

	if !d.IsPositive() {
		return nil, fmt.Errorf("ram rate must be positive, got %s", rate)
	}

	return &FixedRateMarket{BytesPerToken: d}, nil
}

// Quote returns floor(quantity * rate). Quotes below one byte are rejected.
func (m *FixedRateMarket) Quote(quantity token.Asset) (int64, error) {
	bytes := quantity.Decimal().Mul(m.BytesPerToken).Floor()

	if !bytes.IsPositive() {
		return 0, fault.Newf(fault.ErrMalformedInput, "%s buys no RAM", quantity)
	}

	if !bytes.LessThanOrEqual(decimal.NewFromInt(maxBalance)) {
		return 0, fault.Newf(fault.ErrMalformedInput, "%s buys more RAM than a balance can hold", quantity)
	}

	return bytes.IntPart(), nil
}
