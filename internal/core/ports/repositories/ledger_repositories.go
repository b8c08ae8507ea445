package repositories

import (
	"context"
	"time"

	"github.com/finware/glcore/internal/core/domain"
)

// LedgerRepositoryFacade provides access to ledgers, their periods and their
// control settings.
type LedgerRepositoryFacade interface {
	// FindLedgerByID retrieves a ledger. Returns apperrors.ErrNotFound when absent.
	FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error)

	// FindLedgerControl retrieves the ledger's control row.
	FindLedgerControl(ctx context.Context, ledgerID string) (*domain.LedgerControl, error)

	// FindPeriodByName retrieves one named period of a ledger.
	FindPeriodByName(ctx context.Context, ledgerID, periodName string) (*domain.Period, error)

	// FindOpenPeriod retrieves the ledger's single period in Open status, if any.
	FindOpenPeriod(ctx context.Context, ledgerID string) (*domain.Period, error)

	// FindNextPeriod retrieves the period immediately following the named one
	// by calendar order.
	FindNextPeriod(ctx context.Context, ledgerID, periodName string) (*domain.Period, error)

	// ListPeriodsThrough lists the fiscal year's periods whose start date does
	// not exceed the named period's start, in calendar order. Feeds the
	// read-time year-to-date computation.
	ListPeriodsThrough(ctx context.Context, ledgerID string, fiscalYear int, throughPeriodName string) ([]domain.Period, error)

	// UpdatePeriodStatus persists a period status transition.
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error
}
