package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/dto"
)

// CombinationSvcFacade resolves segment tuples into code combinations.
type CombinationSvcFacade interface {
	// ResolveCombination validates the segment tuple and returns the existing
	// CCID, creating one if the tuple is structurally valid and new. Safe
	// under concurrent first-use.
	ResolveCombination(ctx context.Context, req dto.ResolveCombinationRequest, actorID string) (*domain.CodeCombination, error)

	// GetCombinationByID retrieves a combination by CCID.
	GetCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error)

	// SetCombinationEnabled disables or re-enables a combination. Disabled
	// combinations are rejected for new postings but stay resolvable for history.
	SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, actorID string) error
}

// CrossValidationSvcFacade enforces cross-validation rules against candidate
// combinations.
type CrossValidationSvcFacade interface {
	// CheckCombination evaluates the ledger's enabled rules in sequence order
	// and returns apperrors.ErrCrossValidationViolation (with the rule's
	// configured message) on the first violation. Bypassed entirely when the
	// ledger control has CVR enforcement off.
	CheckCombination(ctx context.Context, ledgerID string, combination domain.CodeCombination) error
}

// JournalSvcFacade is the posting engine: the single path to the ledger for
// every journal producer.
type JournalSvcFacade interface {
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, actorID string) (*domain.Journal, error)
	PostJournal(ctx context.Context, journalID string, actorID string) (*domain.Journal, error)
	VoidJournal(ctx context.Context, journalID string, actorID string) error
	SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, actorID string) error
	ApproveJournal(ctx context.Context, journalID string, approverID string) error
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
}

// RateSvcFacade loads the daily conversion rates consumed by journal
// creation and revaluation.
type RateSvcFacade interface {
	// UpsertDailyRate validates and stores a rate, replacing any prior value
	// for the same (pair, type, date) key.
	UpsertDailyRate(ctx context.Context, req dto.UpsertRateRequest, actorID string) (*domain.DailyRate, error)
}

// BalanceSvcFacade reads the balances cube.
type BalanceSvcFacade interface {
	GetBalance(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (*domain.Balance, error)

	// GetYearToDateNet computes the accounted year-to-date net by summing
	// period cells through the named period. Derived on read, never stored.
	GetYearToDateNet(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (decimal.Decimal, error)
}

// RevaluationSvcFacade recomputes unrealized FX gain/loss at period end.
type RevaluationSvcFacade interface {
	RunRevaluation(ctx context.Context, ledgerID, periodName, currencyCode, actorID string) (*dto.RevaluationResult, error)
}

// RecurringSvcFacade materializes due recurring templates into Draft journals.
type RecurringSvcFacade interface {
	GenerateDueJournals(ctx context.Context, ledgerID string, asOf time.Time, actorID string) (*dto.GenerationResult, error)
}

// ReversalSvcFacade generates mirror-image reversing journals in the
// following period for posted journals flagged auto-reverse.
type ReversalSvcFacade interface {
	RunAutoReversal(ctx context.Context, ledgerID, periodName, actorID string) (*dto.ReversalResult, error)
}

// PeriodCloseSvcFacade tracks the close checklist and gates the Closed
// transition. It never posts or mutates financial data.
type PeriodCloseSvcFacade interface {
	GetCloseStatus(ctx context.Context, ledgerID, periodName string) (*dto.CloseStatusResponse, error)
	CompleteTask(ctx context.Context, taskID string, actorID string) error
	BeginClose(ctx context.Context, ledgerID, periodName string, actorID string) error
	ClosePeriod(ctx context.Context, ledgerID, periodName string, actorID string) error
}

// ReconciliationSvcFacade compares GL control-account balances against
// subledger open-item totals. Read-only.
type ReconciliationSvcFacade interface {
	Reconcile(ctx context.Context, ledgerID, periodName string) (*dto.ReconciliationReport, error)
}
