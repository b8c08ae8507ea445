package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
)

// MoneyScale is the number of fractional digits carried by monetary amounts.
// Rates stay at full precision; rounding happens once, at line creation.
const MoneyScale = 2

// Round rounds a monetary amount to cents, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// Accounted converts an entered amount into the ledger currency using rate,
// rounding to cents at this single point.
func Accounted(entered decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return Round(entered.Mul(rate))
}

// ValidateLineAmounts checks the per-line amount invariant: amounts are
// non-negative and a line carries a debit or a credit, never both.
func ValidateLineAmounts(debit, credit decimal.Decimal) error {
	if debit.IsNegative() || credit.IsNegative() {
		return fmt.Errorf("%w: line amounts must be non-negative", apperrors.ErrValidation)
	}
	if debit.IsPositive() && credit.IsPositive() {
		return fmt.Errorf("%w: line may carry a debit or a credit, not both", apperrors.ErrValidation)
	}
	return nil
}
