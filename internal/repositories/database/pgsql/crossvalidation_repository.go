package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	"github.com/finware/glcore/internal/models"
	"github.com/finware/glcore/internal/utils/mapping"
)

type PgxCrossValidationRepository struct {
	BaseRepository
}

// newPgxCrossValidationRepository creates a new repository for cross-validation rules.
func newPgxCrossValidationRepository(pool *pgxpool.Pool) portsrepo.CrossValidationRepositoryFacade {
	return &PgxCrossValidationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CrossValidationRepositoryFacade = (*PgxCrossValidationRepository)(nil)

// ListEnabledRules returns the ledger's enabled rules ordered by sequence.
func (r *PgxCrossValidationRepository) ListEnabledRules(ctx context.Context, ledgerID string) ([]domain.CrossValidationRule, error) {
	query := `
		SELECT rule_id, ledger_id, name, sequence, include_filter, exclude_filter,
		       enabled, error_message,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM cross_validation_rules
		WHERE ledger_id = $1 AND enabled
		ORDER BY sequence;
	`
	rows, err := r.Pool.Query(ctx, query, ledgerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rules for ledger "+ledgerID, err)
	}
	defer rows.Close()

	rules := []domain.CrossValidationRule{}
	for rows.Next() {
		var m models.CrossValidationRule
		err := rows.Scan(
			&m.RuleID,
			&m.LedgerID,
			&m.Name,
			&m.Sequence,
			&m.IncludeFilter,
			&m.ExcludeFilter,
			&m.Enabled,
			&m.ErrorMessage,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rule row", err)
		}
		rules = append(rules, mapping.ToDomainCrossValidationRule(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate rule rows", err)
	}
	return rules, nil
}
