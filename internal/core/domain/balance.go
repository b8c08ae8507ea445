package domain

import "github.com/shopspring/decimal"

// Balance is one cube cell: period-to-date debit/credit aggregates for a
// (ledger, combination, currency, period) key. Cells are derived state,
// mutated only by the posting engine inside the posting transaction.
// Year-to-date is computed on read by summing cells, never stored.
type Balance struct {
	LedgerID      string `json:"ledgerID"`
	CombinationID string `json:"combinationID"`
	CurrencyCode  string `json:"currencyCode"` // transaction currency of the activity
	PeriodName    string `json:"periodName"`
	FiscalYear    int    `json:"fiscalYear"`
	// Entered aggregates are in the transaction currency, accounted in the
	// ledger currency.
	PeriodEnteredDebit    decimal.Decimal `json:"periodEnteredDebit"`
	PeriodEnteredCredit   decimal.Decimal `json:"periodEnteredCredit"`
	PeriodAccountedDebit  decimal.Decimal `json:"periodAccountedDebit"`
	PeriodAccountedCredit decimal.Decimal `json:"periodAccountedCredit"`
}

// AccountedNet returns the accounted debit-minus-credit net of the cell.
func (b Balance) AccountedNet() decimal.Decimal {
	return b.PeriodAccountedDebit.Sub(b.PeriodAccountedCredit)
}

// EnteredNet returns the entered debit-minus-credit net of the cell.
func (b Balance) EnteredNet() decimal.Decimal {
	return b.PeriodEnteredDebit.Sub(b.PeriodEnteredCredit)
}

// BalanceDelta is the increment a posting applies to one cube cell.
// Addition is commutative, so replaying deltas in any order rebuilds the
// same cube.
type BalanceDelta struct {
	LedgerID        string
	CombinationID   string
	CurrencyCode    string
	PeriodName      string
	FiscalYear      int
	EnteredDebit    decimal.Decimal
	EnteredCredit   decimal.Decimal
	AccountedDebit  decimal.Decimal
	AccountedCredit decimal.Decimal
}
