package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
)

// ResolveCombinationRequest asks the resolver for the CCID of a segment tuple.
type ResolveCombinationRequest struct {
	ChartOfAccountsID string   `json:"chartOfAccountsID" validate:"required"`
	Segments          []string `json:"segments" validate:"required,min=1,dive,required"`
}

// JobFailure reports one failed item of a batch job so callers can retry
// selectively.
type JobFailure struct {
	ItemID string `json:"itemID"`
	Reason string `json:"reason"`
}

// RevaluationResult is the structured outcome of one revaluation run.
// A run that finds nothing to re-net creates no journal and reports zero cells.
type RevaluationResult struct {
	LedgerID        string          `json:"ledgerID"`
	PeriodName      string          `json:"periodName"`
	CurrencyCode    string          `json:"currencyCode"`
	JournalID       string          `json:"journalID,omitempty"`
	CellsRevalued   int             `json:"cellsRevalued"`
	UnrealizedDelta decimal.Decimal `json:"unrealizedDelta"` // net gain (+) or loss (-)
}

// GenerationResult is the structured outcome of one recurring-generator run.
type GenerationResult struct {
	LedgerID     string       `json:"ledgerID"`
	Generated    []string     `json:"generated"` // journal IDs, all left in Draft
	Failures     []JobFailure `json:"failures"`
	TemplatesDue int          `json:"templatesDue"`
}

// ReversalResult is the structured outcome of one auto-reversal run.
type ReversalResult struct {
	LedgerID   string       `json:"ledgerID"`
	PeriodName string       `json:"periodName"`
	Reversed   []string     `json:"reversed"` // original journal IDs successfully reversed
	Failures   []JobFailure `json:"failures"`
}

// ReconciliationReport is the on-demand comparison of subledger totals
// against GL control accounts for one (ledger, period).
type ReconciliationReport struct {
	LedgerID   string                     `json:"ledgerID"`
	PeriodName string                     `json:"periodName"`
	Rows       []domain.ReconciliationRow `json:"rows"`
}

// BlockingVariances counts rows outside tolerance; these surface to the close
// orchestrator as blocking exceptions.
func (r ReconciliationReport) BlockingVariances() int {
	n := 0
	for _, row := range r.Rows {
		if !row.WithinTolerance {
			n++
		}
	}
	return n
}

// CloseStatusResponse mirrors the close rollup for callers.
type CloseStatusResponse struct {
	LedgerID           string              `json:"ledgerID"`
	PeriodName         string              `json:"periodName"`
	PeriodStatus       domain.PeriodStatus `json:"periodStatus"`
	TotalTasks         int                 `json:"totalTasks"`
	CompletedTasks     int                 `json:"completedTasks"`
	BlockingExceptions int                 `json:"blockingExceptions"`
	CanClose           bool                `json:"canClose"`
}
