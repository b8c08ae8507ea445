package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	"github.com/finware/glcore/internal/models"
	"github.com/finware/glcore/internal/utils/mapping"
)

type PgxCloseRepository struct {
	BaseRepository
}

// newPgxCloseRepository creates a new repository for the period-close checklist.
func newPgxCloseRepository(pool *pgxpool.Pool) portsrepo.CloseRepositoryFacade {
	return &PgxCloseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CloseRepositoryFacade = (*PgxCloseRepository)(nil)

// ListCloseTasks lists the checklist for a (ledger, period) in sequence order.
func (r *PgxCloseRepository) ListCloseTasks(ctx context.Context, ledgerID, periodName string) ([]domain.CloseTask, error) {
	query := `
		SELECT task_id, ledger_id, period_name, sequence, name, required, completed,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM close_tasks
		WHERE ledger_id = $1 AND period_name = $2
		ORDER BY sequence;
	`
	rows, err := r.Pool.Query(ctx, query, ledgerID, periodName)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query close tasks for "+ledgerID+"/"+periodName, err)
	}
	defer rows.Close()

	tasks := []models.CloseTask{}
	for rows.Next() {
		var m models.CloseTask
		err := rows.Scan(
			&m.TaskID,
			&m.LedgerID,
			&m.PeriodName,
			&m.Sequence,
			&m.Name,
			&m.Required,
			&m.Completed,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan close task row", err)
		}
		tasks = append(tasks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate close task rows", err)
	}
	return mapping.ToDomainCloseTaskSlice(tasks), nil
}

// CompleteCloseTask marks one task complete.
func (r *PgxCloseRepository) CompleteCloseTask(ctx context.Context, taskID string, completedBy string, completedAt time.Time) error {
	query := `
		UPDATE close_tasks
		SET completed = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE task_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, taskID, completedAt, completedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to complete close task "+taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
