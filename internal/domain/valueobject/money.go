// Package valueobject holds small immutable domain values shared across use cases.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/financy/backend/internal/domain/error"
)

// MaxSafeCents bounds stored amounts to the range where every integer is
// exactly representable by API clients (2^53 - 1).
const MaxSafeCents int64 = 1<<53 - 1

// ToCents converts a decimal currency amount (e.g. 10.50) to integer cents
// (e.g. 1050), rounding half away from zero on the scaled value.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, domainerror.NewMoneyError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be a finite number",
			domainerror.ErrInvalidAmount,
		)
	}
	if amount < 0 {
		return 0, domainerror.NewMoneyError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be non-negative",
			domainerror.ErrInvalidAmount,
		)
	}

	cents := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0)
	if cents.GreaterThan(decimal.NewFromInt(MaxSafeCents)) {
		return 0, domainerror.NewMoneyError(
			domainerror.ErrCodeAmountTooLarge,
			"amount is too large",
			domainerror.ErrAmountTooLarge,
		)
	}

	return cents.IntPart(), nil
}

// FromCents converts integer cents (e.g. 1050) to a decimal currency amount
// (e.g. 10.50). Callers must validate stored values with CheckStoredCents
// first; FromCents itself never fails.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// CheckStoredCents validates a cents value read back from storage. A value
// outside [0, MaxSafeCents] means the row was corrupted upstream; this is an
// internal failure, not caller error, and must never be coerced to zero.
func CheckStoredCents(cents int64) error {
	if cents < 0 || cents > MaxSafeCents {
		return domainerror.NewMoneyError(
			domainerror.ErrCodeInternalInconsistency,
			"stored amount is outside the representable range",
			domainerror.ErrInternalInconsistency,
		)
	}
	return nil
}
