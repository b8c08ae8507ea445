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

type PgxCombinationRepository struct {
	BaseRepository
}

// newPgxCombinationRepository creates a new repository for segment values and
// code combinations.
func newPgxCombinationRepository(pool *pgxpool.Pool) portsrepo.CombinationRepositoryFacade {
	return &PgxCombinationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CombinationRepositoryFacade = (*PgxCombinationRepository)(nil)

// FindSegmentValues retrieves the catalog rows for the given segment tuple.
// Values absent from the catalog are simply absent from the result map.
func (r *PgxCombinationRepository) FindSegmentValues(ctx context.Context, chartOfAccountsID string, segments []string) (map[portsrepo.SegmentKey]domain.SegmentValue, error) {
	indexes := make([]int, len(segments))
	values := make([]string, len(segments))
	for i, v := range segments {
		indexes[i] = i
		values[i] = v
	}

	query := `
		SELECT chart_of_accounts_id, segment_index, value, description, enabled,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM segment_values
		WHERE chart_of_accounts_id = $1
		  AND (segment_index, value) IN (SELECT * FROM unnest($2::int[], $3::text[]));
	`
	rows, err := r.Pool.Query(ctx, query, chartOfAccountsID, indexes, values)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query segment values for chart "+chartOfAccountsID, err)
	}
	defer rows.Close()

	result := make(map[portsrepo.SegmentKey]domain.SegmentValue, len(segments))
	for rows.Next() {
		var m models.SegmentValue
		err := rows.Scan(
			&m.ChartOfAccountsID,
			&m.SegmentIndex,
			&m.Value,
			&m.Description,
			&m.Enabled,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan segment value row", err)
		}
		result[portsrepo.SegmentKey{Index: m.SegmentIndex, Value: m.Value}] = mapping.ToDomainSegmentValue(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate segment value rows", err)
	}
	return result, nil
}

const combinationColumns = `combination_id, chart_of_accounts_id, segments, account_class, enabled,
       revaluation_eligible, created_at, created_by, last_updated_at, last_updated_by`

func scanCombination(row pgx.Row) (*models.CodeCombination, error) {
	var m models.CodeCombination
	err := row.Scan(
		&m.CombinationID,
		&m.ChartOfAccountsID,
		&m.Segments,
		&m.AccountClass,
		&m.Enabled,
		&m.RevaluationEligible,
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

// FindCombinationBySegments retrieves an existing combination for the tuple.
func (r *PgxCombinationRepository) FindCombinationBySegments(ctx context.Context, chartOfAccountsID string, segments []string) (*domain.CodeCombination, error) {
	query := `SELECT ` + combinationColumns + ` FROM code_combinations
		WHERE chart_of_accounts_id = $1 AND segments = $2::text[];`
	m, err := scanCombination(r.Pool.QueryRow(ctx, query, chartOfAccountsID, segments))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find combination by segments", err)
	}
	combination := mapping.ToDomainCodeCombination(*m)
	return &combination, nil
}

// FindCombinationByID retrieves a combination by CCID.
func (r *PgxCombinationRepository) FindCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error) {
	query := `SELECT ` + combinationColumns + ` FROM code_combinations WHERE combination_id = $1;`
	m, err := scanCombination(r.Pool.QueryRow(ctx, query, combinationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find combination by ID "+combinationID, err)
	}
	combination := mapping.ToDomainCodeCombination(*m)
	return &combination, nil
}

// FindCombinationsByIDs batch-retrieves combinations keyed by CCID.
func (r *PgxCombinationRepository) FindCombinationsByIDs(ctx context.Context, combinationIDs []string) (map[string]domain.CodeCombination, error) {
	query := `SELECT ` + combinationColumns + ` FROM code_combinations WHERE combination_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, combinationIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query combinations by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.CodeCombination, len(combinationIDs))
	for rows.Next() {
		m, err := scanCombination(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan combination row", err)
		}
		result[m.CombinationID] = mapping.ToDomainCodeCombination(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate combination rows", err)
	}
	return result, nil
}

// SaveCombination inserts the combination under the tuple uniqueness
// constraint. A concurrent insert of the same tuple loses the conflict and
// returns the winner, so first-use never mints duplicate CCIDs.
func (r *PgxCombinationRepository) SaveCombination(ctx context.Context, combination domain.CodeCombination) (*domain.CodeCombination, error) {
	m := mapping.ToModelCodeCombination(combination)
	query := `
		INSERT INTO code_combinations (
			combination_id, chart_of_accounts_id, segments, account_class, enabled,
			revaluation_eligible, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (chart_of_accounts_id, segments) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CombinationID,
		m.ChartOfAccountsID,
		m.Segments,
		m.AccountClass,
		m.Enabled,
		m.RevaluationEligible,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert combination", err)
	}

	// Fetch whichever row holds the tuple now, ours or the concurrent winner's.
	return r.FindCombinationBySegments(ctx, combination.ChartOfAccountsID, combination.Segments)
}

// SetCombinationEnabled flips the enabled flag. Combinations are never deleted.
func (r *PgxCombinationRepository) SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE code_combinations
		SET enabled = $2, last_updated_at = $3, last_updated_by = $4
		WHERE combination_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, combinationID, enabled, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update combination "+combinationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
