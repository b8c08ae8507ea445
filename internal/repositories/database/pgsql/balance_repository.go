package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	"github.com/finware/glcore/internal/models"
	"github.com/finware/glcore/internal/utils/mapping"
)

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new read-side repository for the balances
// cube. Writes go through the journal repository's posting transaction.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

const balanceColumns = `ledger_id, combination_id, currency_code, period_name, fiscal_year,
       period_entered_debit, period_entered_credit,
       period_accounted_debit, period_accounted_credit`

func scanBalance(row pgx.Row) (*models.Balance, error) {
	var m models.Balance
	err := row.Scan(
		&m.LedgerID,
		&m.CombinationID,
		&m.CurrencyCode,
		&m.PeriodName,
		&m.FiscalYear,
		&m.PeriodEnteredDebit,
		&m.PeriodEnteredCredit,
		&m.PeriodAccountedDebit,
		&m.PeriodAccountedCredit,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindBalance retrieves one cube cell.
func (r *PgxBalanceRepository) FindBalance(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (*domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances
		WHERE ledger_id = $1 AND combination_id = $2 AND currency_code = $3 AND period_name = $4;`
	m, err := scanBalance(r.Pool.QueryRow(ctx, query, ledgerID, combinationID, currencyCode, periodName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find balance cell", err)
	}
	balance := mapping.ToDomainBalance(*m)
	return &balance, nil
}

// ListBalancesForPeriods retrieves the cells for one account/currency across
// the named periods.
func (r *PgxBalanceRepository) ListBalancesForPeriods(ctx context.Context, ledgerID, combinationID, currencyCode string, periodNames []string) ([]domain.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances
		WHERE ledger_id = $1 AND combination_id = $2 AND currency_code = $3 AND period_name = ANY($4);`
	rows, err := r.Pool.Query(ctx, query, ledgerID, combinationID, currencyCode, periodNames)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balance cells", err)
	}
	defer rows.Close()

	cells := []models.Balance{}
	for rows.Next() {
		m, err := scanBalance(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row", err)
		}
		cells = append(cells, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate balance rows", err)
	}
	return mapping.ToDomainBalanceSlice(cells), nil
}

// ListRevaluationCells retrieves the period's cells in the given currency
// whose combination is flagged revaluation-eligible and still enabled.
func (r *PgxBalanceRepository) ListRevaluationCells(ctx context.Context, ledgerID, periodName, currencyCode string) ([]domain.Balance, error) {
	query := `
		SELECT b.ledger_id, b.combination_id, b.currency_code, b.period_name, b.fiscal_year,
		       b.period_entered_debit, b.period_entered_credit,
		       b.period_accounted_debit, b.period_accounted_credit
		FROM balances b
		JOIN code_combinations cc ON cc.combination_id = b.combination_id
		WHERE b.ledger_id = $1
		  AND b.period_name = $2
		  AND b.currency_code = $3
		  AND cc.revaluation_eligible
		  AND cc.enabled;
	`
	rows, err := r.Pool.Query(ctx, query, ledgerID, periodName, currencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query revaluation cells", err)
	}
	defer rows.Close()

	cells := []models.Balance{}
	for rows.Next() {
		m, err := scanBalance(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan revaluation cell", err)
		}
		cells = append(cells, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate revaluation cells", err)
	}
	return mapping.ToDomainBalanceSlice(cells), nil
}

// AccountedNetThrough sums the accounted net of one account across all
// currencies and all periods ending on or before the cutoff.
func (r *PgxBalanceRepository) AccountedNetThrough(ctx context.Context, ledgerID, combinationID string, through time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(b.period_accounted_debit - b.period_accounted_credit), 0)
		FROM balances b
		JOIN periods p ON p.ledger_id = b.ledger_id AND p.name = b.period_name
		WHERE b.ledger_id = $1
		  AND b.combination_id = $2
		  AND p.end_date <= $3;
	`
	var net decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, ledgerID, combinationID, through).Scan(&net); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum balances for combination "+combinationID, err)
	}
	return net, nil
}
