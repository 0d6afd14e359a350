package transfer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the fixed precision used for every bridged amount.
const Decimals = 18

// ParseAmount converts a positive decimal string with at most 18 fractional
// digits into base units.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if strings.ContainsAny(s, "eE") {
		return nil, fmt.Errorf("%w: exponent notation not accepted", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > Decimals {
		return nil, fmt.Errorf("%w: more than %d fractional digits", ErrInvalidAmount, Decimals)
	}

	return d.Shift(Decimals).BigInt(), nil
}

// FormatAmount renders base units as a decimal string.
func FormatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -Decimals).String()
}
