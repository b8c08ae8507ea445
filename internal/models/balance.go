package models

import "github.com/shopspring/decimal"

// Balance represents a row in the balances table. The primary key is
// (ledger_id, combination_id, currency_code, period_name).
type Balance struct {
	LedgerID              string          `json:"ledgerID"`
	CombinationID         string          `json:"combinationID"`
	CurrencyCode          string          `json:"currencyCode"`
	PeriodName            string          `json:"periodName"`
	FiscalYear            int             `json:"fiscalYear"`
	PeriodEnteredDebit    decimal.Decimal `json:"periodEnteredDebit"`
	PeriodEnteredCredit   decimal.Decimal `json:"periodEnteredCredit"`
	PeriodAccountedDebit  decimal.Decimal `json:"periodAccountedDebit"`
	PeriodAccountedCredit decimal.Decimal `json:"periodAccountedCredit"`
}
