// Package token models fungible token quantities of the host ledger.
package token

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol is a token symbol with its decimal precision, e.g. "8,WAX".
type Symbol struct {
	Precision uint8  // Precision is the number of decimal places
	Code      string // Code is 1-7 uppercase letters
}

// Core is the native ledger asset used to fund collection RAM.
var Core = Symbol{Precision: 8, Code: "WAX"}

// NewSymbol validates a symbol.
func NewSymbol(precision uint8, code string) (Symbol, error) {
	if len(code) == 0 || len(code) > 7 {
		return Symbol{}, fmt.Errorf("symbol code %q must have 1-7 characters", code)
	}

	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return Symbol{}, fmt.Errorf("symbol code %q must be uppercase letters", code)
		}
	}

	if precision > 18 {
		return Symbol{}, fmt.Errorf("precision %d out of range", precision)
	}

	return Symbol{Precision: precision, Code: code}, nil
}

// Raw packs the symbol as the host does: precision in the low byte,
// code characters in the following bytes.
func (s Symbol) Raw() uint64 {
	v := uint64(s.Precision)
	for i := 0; i < len(s.Code); i++ {
		v |= uint64(s.Code[i]) << (8 * (i + 1))
	}

	return v
}

// SymbolFromRaw unpacks a raw symbol.
func SymbolFromRaw(raw uint64) (Symbol, error) {
	precision := uint8(raw & 0xff)

	var code []byte
	for tmp := raw >> 8; tmp != 0; tmp >>= 8 {
		code = append(code, byte(tmp&0xff))
	}

	return NewSymbol(precision, string(code))
}

// String renders "precision,CODE".
func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}

// Asset is an amount of a token in its smallest unit.
type Asset struct {
	Amount int64  // Amount is in units of 10^-Precision
	Symbol Symbol // Symbol identifies the token
}

// ParseAsset parses "1.50000000 WAX". The number of decimals fixes the precision.
func ParseAsset(s string) (Asset, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Asset{}, fmt.Errorf("asset %q must be \"<amount> <CODE>\"", s)
	}

	precision := 0
	if dot := strings.IndexByte(parts[0], '.'); dot >= 0 {
		precision = len(parts[0]) - dot - 1
	}

	sym, err := NewSymbol(uint8(precision), parts[1])
	if err != nil {
		return Asset{}, err
	}

	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Asset{}, fmt.Errorf("asset amount %q:\n%w", parts[0], err)
	}

	units := d.Shift(int32(precision))
	if !units.IsInteger() || units.Abs().GreaterThan(decimal.NewFromInt(maxAmount)) {
		return Asset{}, fmt.Errorf("asset amount %q out of range", parts[0])
	}

	return Asset{Amount: units.IntPart(), Symbol: sym}, nil
}

// maxAmount is the largest representable amount (2^62 - 1).
const maxAmount = int64(1)<<62 - 1

// Decimal returns the amount in whole tokens.
func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

// String renders "1.50000000 WAX".
func (a Asset) String() string {
	return a.Decimal().StringFixed(int32(a.Symbol.Precision)) + " " + a.Symbol.Code
}

// MarshalText renders the asset for JSON.
func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses an asset rendered by MarshalText.
func (a *Asset) UnmarshalText(b []byte) error {
	parsed, err := ParseAsset(string(b))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// IsPositive reports whether the amount is strictly positive.
func (a Asset) IsPositive() bool {
	return a.Amount > 0
}
