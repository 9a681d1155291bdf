package transaction

import (
	"assetflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Bounds is the configured min/max range for order amounts. The limits are a
// deployment option, not business law; only "positive" is intrinsic.
type Bounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewBounds builds a validated amount range.
func NewBounds(minAmount, maxAmount decimal.Decimal) (Bounds, error) {
	if !minAmount.IsPositive() {
		return Bounds{}, errs.NewValueIsInvalidError("minimum amount")
	}
	if maxAmount.LessThanOrEqual(minAmount) {
		return Bounds{}, errs.NewValueIsInvalidError("maximum amount")
	}
	return Bounds{Min: minAmount, Max: maxAmount}, nil
}

// DefaultBounds returns the standard deployment limits: 1 to 10,000,000.
func DefaultBounds() Bounds {
	return Bounds{
		Min: decimal.NewFromInt(1),
		Max: decimal.NewFromInt(10_000_000),
	}
}

// Check reports ErrValueIsOutOfRange for an amount outside the range.
func (b Bounds) Check(amount decimal.Decimal) error {
	if amount.LessThan(b.Min) || amount.GreaterThan(b.Max) {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), b.Min.String(), b.Max.String())
	}
	return nil
}
