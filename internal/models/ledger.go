package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger represents a row in the ledgers table.
type Ledger struct {
	LedgerID          string `json:"ledgerID"` // Primary Key (UUID)
	Name              string `json:"name"`
	CurrencyCode      string `json:"currencyCode"`
	ChartOfAccountsID string `json:"chartOfAccountsID"`
	Granularity       string `json:"granularity"`
	AuditFields
}

// Period represents a row in the periods table.
type Period struct {
	PeriodID   string    `json:"periodID"` // Primary Key (UUID)
	LedgerID   string    `json:"ledgerID"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	FiscalYear int       `json:"fiscalYear"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	AuditFields
}

// LedgerControl represents the one-per-ledger control row.
type LedgerControl struct {
	LedgerID              string          `json:"ledgerID"` // Primary Key, FK to ledgers
	EnforcePeriodClose    bool            `json:"enforcePeriodClose"`
	PreventFutureEntry    bool            `json:"preventFutureEntry"`
	AllowPriorPeriodEntry bool            `json:"allowPriorPeriodEntry"`
	EnforceCvr            bool            `json:"enforceCvr"`
	ApprovalLimit         decimal.Decimal `json:"approvalLimit"`
	SuspenseCombinationID string          `json:"suspenseCombinationID"`
	RoundingCombinationID string          `json:"roundingCombinationID"`
	GainLossCombinationID string          `json:"gainLossCombinationID"`
	APControlCombination  string          `json:"apControlCombination"`
	ARControlCombination  string          `json:"arControlCombination"`
	AuditFields
}
