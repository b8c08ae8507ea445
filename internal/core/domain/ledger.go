package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodGranularity is the period-set granularity of a ledger's calendar.
type PeriodGranularity string

const (
	GranularityMonthly PeriodGranularity = "MONTHLY"
)

// Ledger is the top-level accounting book: one currency, one chart of
// accounts, one period calendar. Structural attributes are immutable once
// journals exist against it.
type Ledger struct {
	LedgerID          string            `json:"ledgerID"`
	Name              string            `json:"name"`
	CurrencyCode      string            `json:"currencyCode"`
	ChartOfAccountsID string            `json:"chartOfAccountsID"`
	Granularity       PeriodGranularity `json:"granularity"`
	AuditFields
}

// PeriodStatus is the lifecycle state of an accounting period. Periods move
// forward only; reopening is an audited administrative override outside the core.
type PeriodStatus string

const (
	PeriodFuture            PeriodStatus = "FUTURE"
	PeriodOpen              PeriodStatus = "OPEN"
	PeriodClosing           PeriodStatus = "CLOSING"
	PeriodClosed            PeriodStatus = "CLOSED"
	PeriodPermanentlyClosed PeriodStatus = "PERMANENTLY_CLOSED"
)

// Period is a named accounting interval within a ledger.
type Period struct {
	PeriodID   string       `json:"periodID"`
	LedgerID   string       `json:"ledgerID"`
	Name       string       `json:"name"` // e.g. "Jan-2026"
	Status     PeriodStatus `json:"status"`
	FiscalYear int          `json:"fiscalYear"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	AuditFields
}

// Contains reports whether t falls within the period's date range (inclusive).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// LedgerControl carries per-ledger posting and close-enforcement settings.
// One row per ledger.
type LedgerControl struct {
	LedgerID              string          `json:"ledgerID"`
	EnforcePeriodClose    bool            `json:"enforcePeriodClose"`
	PreventFutureEntry    bool            `json:"preventFutureEntry"`
	AllowPriorPeriodEntry bool            `json:"allowPriorPeriodEntry"`
	EnforceCvr            bool            `json:"enforceCvr"`
	ApprovalLimit         decimal.Decimal `json:"approvalLimit"` // zero disables the approval gate
	SuspenseCombinationID string          `json:"suspenseCombinationID"`
	RoundingCombinationID string          `json:"roundingCombinationID"`
	GainLossCombinationID string          `json:"gainLossCombinationID"` // unrealized FX gain/loss account
	APControlCombination  string          `json:"apControlCombination"`
	ARControlCombination  string          `json:"arControlCombination"`
	AuditFields
}
