package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
)

// BalanceRepositoryFacade reads the balances cube. Writes happen only inside
// JournalRepositoryFacade.PostJournal.
type BalanceRepositoryFacade interface {
	// FindBalance retrieves one cube cell. Returns apperrors.ErrNotFound when
	// the cell has never been touched.
	FindBalance(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (*domain.Balance, error)

	// ListBalancesForPeriods retrieves the cells for one account/currency
	// across the named periods. Feeds the read-time year-to-date sum.
	ListBalancesForPeriods(ctx context.Context, ledgerID, combinationID, currencyCode string, periodNames []string) ([]domain.Balance, error)

	// ListRevaluationCells retrieves the period's cells in the given currency
	// whose combination is flagged revaluation-eligible.
	ListRevaluationCells(ctx context.Context, ledgerID, periodName, currencyCode string) ([]domain.Balance, error)

	// AccountedNetThrough sums the accounted net of one account across all
	// periods ending on or before the cutoff. Used for control-account
	// reconciliation, which compares cumulative GL balances.
	AccountedNetThrough(ctx context.Context, ledgerID, combinationID string, through time.Time) (decimal.Decimal, error)
}

// RateRepositoryFacade provides daily conversion rates.
type RateRepositoryFacade interface {
	// FindDailyRate retrieves the rate for (from, to, type, date). Returns
	// apperrors.ErrRateNotFound when no rate exists.
	FindDailyRate(ctx context.Context, fromCurrency, toCurrency string, conversionType domain.ConversionType, rateDate time.Time) (*domain.DailyRate, error)

	// SaveDailyRate inserts or updates the rate for its (pair, type, date) key.
	SaveDailyRate(ctx context.Context, rate domain.DailyRate) error
}

// RecurringRepositoryFacade provides recurring journal templates.
type RecurringRepositoryFacade interface {
	// ListDueTemplates lists active templates with nextRunDate on or before
	// asOf, lines included.
	ListDueTemplates(ctx context.Context, ledgerID string, asOf time.Time) ([]domain.RecurringTemplate, error)

	// UpdateTemplateRunDates advances the schedule after a materialization.
	UpdateTemplateRunDates(ctx context.Context, templateID string, nextRunDate, lastRunDate time.Time, updatedBy string, updatedAt time.Time) error
}

// CloseRepositoryFacade provides the period-close checklist.
type CloseRepositoryFacade interface {
	// ListCloseTasks lists the checklist for a (ledger, period) in sequence order.
	ListCloseTasks(ctx context.Context, ledgerID, periodName string) ([]domain.CloseTask, error)

	// CompleteCloseTask marks one task complete.
	CompleteCloseTask(ctx context.Context, taskID string, completedBy string, completedAt time.Time) error
}

// SubledgerRepositoryFacade is the read-only feed of subledger open-item
// totals. The core never writes back to subledgers.
type SubledgerRepositoryFacade interface {
	// OpenItemTotal returns the subledger's summed open-item balance as of the
	// period end (e.g. unpaid invoice totals).
	OpenItemTotal(ctx context.Context, ledgerID string, subledger domain.Subledger, asOf time.Time) (decimal.Decimal, error)
}
