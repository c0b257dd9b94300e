package money

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
)

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount (e.g. rupees) into the
// provider's minor-unit integer (paise), rounding half up. The result
// is exact for amounts with at most two fractional digits.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// ValidatePositive rejects zero and negative amounts.
func ValidatePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
