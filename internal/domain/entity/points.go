package entity

import (
	"math"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/error"
)

var maxPoints = decimal.NewFromInt(math.MaxInt64)

// CreditPointsFor returns floor(amountSpent * creditPercentage / 100).
// The amount is converted through its shortest decimal representation so
// that 150 * 10 / 100 is exactly 15. A result outside [0, MaxInt64] is
// ErrInvalidAmount.
func CreditPointsFor(amountSpent float64, creditPercentage decimal.Decimal) (int64, error) {
	if math.IsNaN(amountSpent) || math.IsInf(amountSpent, 0) {
		return 0, errs.ErrInvalidAmount
	}
	amount := decimal.NewFromFloat(amountSpent)
	points := amount.Mul(creditPercentage).Div(hundred).Floor()
	if points.IsNegative() {
		return 0, errs.ErrInvalidAmount
	}
	if points.GreaterThan(maxPoints) {
		return 0, errs.WithMessage(errs.ErrInvalidAmount, "amountSpent yields more points than a balance can hold")
	}
	return points.IntPart(), nil
}

// RedeemedValueFor returns points * rate with no rounding
func RedeemedValueFor(points int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(points).Mul(rate)
}
