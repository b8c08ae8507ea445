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

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring journal templates.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryFacade {
	return &PgxRecurringRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

// ListDueTemplates lists active templates with nextRunDate on or before asOf,
// lines included, oldest due first.
func (r *PgxRecurringRepository) ListDueTemplates(ctx context.Context, ledgerID string, asOf time.Time) ([]domain.RecurringTemplate, error) {
	query := `
		SELECT template_id, ledger_id, name, description, currency_code,
		       schedule, status, next_run_date, last_run_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM recurring_templates
		WHERE ledger_id = $1
		  AND status = $2
		  AND next_run_date <= $3
		ORDER BY next_run_date;
	`
	rows, err := r.Pool.Query(ctx, query, ledgerID, string(domain.TemplateActive), asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due templates for ledger "+ledgerID, err)
	}
	defer rows.Close()

	templates := []domain.RecurringTemplate{}
	templateIDs := []string{}
	for rows.Next() {
		var m models.RecurringTemplate
		err := rows.Scan(
			&m.TemplateID,
			&m.LedgerID,
			&m.Name,
			&m.Description,
			&m.CurrencyCode,
			&m.Schedule,
			&m.Status,
			&m.NextRunDate,
			&m.LastRunDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan template row", err)
		}
		templates = append(templates, mapping.ToDomainRecurringTemplate(m))
		templateIDs = append(templateIDs, m.TemplateID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate template rows", err)
	}
	if len(templates) == 0 {
		return templates, nil
	}

	lines, err := r.findLinesByTemplateIDs(ctx, templateIDs)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Lines = lines[templates[i].TemplateID]
	}
	return templates, nil
}

func (r *PgxRecurringRepository) findLinesByTemplateIDs(ctx context.Context, templateIDs []string) (map[string][]domain.RecurringTemplateLine, error) {
	query := `
		SELECT template_id, line_number, combination_id, debit, credit, description
		FROM recurring_template_lines
		WHERE template_id = ANY($1)
		ORDER BY template_id, line_number;
	`
	rows, err := r.Pool.Query(ctx, query, templateIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query template lines", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.RecurringTemplateLine, len(templateIDs))
	for rows.Next() {
		var m models.RecurringTemplateLine
		err := rows.Scan(
			&m.TemplateID,
			&m.LineNumber,
			&m.CombinationID,
			&m.Debit,
			&m.Credit,
			&m.Description,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan template line row", err)
		}
		result[m.TemplateID] = append(result[m.TemplateID], mapping.ToDomainRecurringTemplateLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate template line rows", err)
	}
	return result, nil
}

// UpdateTemplateRunDates advances the schedule after a materialization.
func (r *PgxRecurringRepository) UpdateTemplateRunDates(ctx context.Context, templateID string, nextRunDate, lastRunDate time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_templates
		SET next_run_date = $2, last_run_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE template_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, templateID, nextRunDate, lastRunDate, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update run dates of template "+templateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
