package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	"github.com/finware/glcore/internal/models"
	"github.com/finware/glcore/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger, period and
// control data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// FindLedgerByID retrieves a ledger by its ID.
func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	query := `
		SELECT ledger_id, name, currency_code, chart_of_accounts_id, granularity,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ledgers
		WHERE ledger_id = $1;
	`
	var m models.Ledger
	err := r.Pool.QueryRow(ctx, query, ledgerID).Scan(
		&m.LedgerID,
		&m.Name,
		&m.CurrencyCode,
		&m.ChartOfAccountsID,
		&m.Granularity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger by ID "+ledgerID, err)
	}
	ledger := mapping.ToDomainLedger(m)
	return &ledger, nil
}

// FindLedgerControl retrieves the ledger's control row.
func (r *PgxLedgerRepository) FindLedgerControl(ctx context.Context, ledgerID string) (*domain.LedgerControl, error) {
	query := `
		SELECT ledger_id, enforce_period_close, prevent_future_entry, allow_prior_period_entry,
		       enforce_cvr, approval_limit, suspense_combination_id, rounding_combination_id,
		       gain_loss_combination_id, ap_control_combination, ar_control_combination,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_controls
		WHERE ledger_id = $1;
	`
	var m models.LedgerControl
	err := r.Pool.QueryRow(ctx, query, ledgerID).Scan(
		&m.LedgerID,
		&m.EnforcePeriodClose,
		&m.PreventFutureEntry,
		&m.AllowPriorPeriodEntry,
		&m.EnforceCvr,
		&m.ApprovalLimit,
		&m.SuspenseCombinationID,
		&m.RoundingCombinationID,
		&m.GainLossCombinationID,
		&m.APControlCombination,
		&m.ARControlCombination,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger control for "+ledgerID, err)
	}
	control := mapping.ToDomainLedgerControl(m)
	return &control, nil
}

const periodColumns = `period_id, ledger_id, name, status, fiscal_year, start_date, end_date,
       created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (*models.Period, error) {
	var m models.Period
	err := row.Scan(
		&m.PeriodID,
		&m.LedgerID,
		&m.Name,
		&m.Status,
		&m.FiscalYear,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPeriodByName retrieves one named period of a ledger.
func (r *PgxLedgerRepository) FindPeriodByName(ctx context.Context, ledgerID, periodName string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE ledger_id = $1 AND name = $2;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, ledgerID, periodName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period "+periodName, err)
	}
	period := mapping.ToDomainPeriod(*m)
	return &period, nil
}

// FindOpenPeriod retrieves the ledger's single period in Open status.
func (r *PgxLedgerRepository) FindOpenPeriod(ctx context.Context, ledgerID string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods
		WHERE ledger_id = $1 AND status = $2
		ORDER BY start_date
		LIMIT 1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, ledgerID, string(domain.PeriodOpen)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open period for ledger "+ledgerID, err)
	}
	period := mapping.ToDomainPeriod(*m)
	return &period, nil
}

// FindNextPeriod retrieves the period immediately following the named one by
// calendar order.
func (r *PgxLedgerRepository) FindNextPeriod(ctx context.Context, ledgerID, periodName string) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods
		WHERE ledger_id = $1
		  AND start_date > (SELECT start_date FROM periods WHERE ledger_id = $1 AND name = $2)
		ORDER BY start_date
		LIMIT 1;`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, ledgerID, periodName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period following "+periodName, err)
	}
	period := mapping.ToDomainPeriod(*m)
	return &period, nil
}

// ListPeriodsThrough lists the fiscal year's periods up to and including the
// named period, in calendar order.
func (r *PgxLedgerRepository) ListPeriodsThrough(ctx context.Context, ledgerID string, fiscalYear int, throughPeriodName string) ([]domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods
		WHERE ledger_id = $1
		  AND fiscal_year = $2
		  AND start_date <= (SELECT start_date FROM periods WHERE ledger_id = $1 AND name = $3)
		ORDER BY start_date;`
	rows, err := r.Pool.Query(ctx, query, ledgerID, fiscalYear, throughPeriodName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods for ledger "+ledgerID, err)
	}
	defer rows.Close()

	periods := []models.Period{}
	for rows.Next() {
		m, err := scanPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		periods = append(periods, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate period rows", err)
	}
	return mapping.ToDomainPeriodSlice(periods), nil
}

// UpdatePeriodStatus persists a period status transition.
func (r *PgxLedgerRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of period "+periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
