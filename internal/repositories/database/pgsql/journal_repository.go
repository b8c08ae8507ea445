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

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal headers, lines
// and the atomic post.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournal persists a Draft journal header with its lines in one transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelJournal(journal)
	headerQuery := `
		INSERT INTO journals (
			journal_id, ledger_id, period_name, journal_date, description, currency_code,
			source, category, status, approval_status, auto_reverse,
			reversed_journal_id, reversing_journal_id, posted_at, total_accounted_debit,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.JournalID,
		m.LedgerID,
		m.PeriodName,
		m.JournalDate,
		m.Description,
		m.CurrencyCode,
		m.Source,
		m.Category,
		m.Status,
		m.ApprovalStatus,
		m.AutoReverse,
		m.ReversedJournalID,
		m.ReversingJournalID,
		m.PostedAt,
		m.TotalAccountedDebit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+m.JournalID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (
			line_id, journal_id, line_number, combination_id, currency_code,
			entered_debit, entered_credit, accounted_debit, accounted_credit, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, line := range lines {
		ml := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			ml.LineID,
			ml.JournalID,
			ml.LineNumber,
			ml.CombinationID,
			ml.CurrencyCode,
			ml.EnteredDebit,
			ml.EnteredCredit,
			ml.AccountedDebit,
			ml.AccountedCredit,
			ml.Description,
			ml.CreatedAt,
			ml.CreatedBy,
			ml.LastUpdatedAt,
			ml.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for journal "+m.JournalID, err)
	}

	return r.Commit(ctx, tx)
}

const journalColumns = `journal_id, ledger_id, period_name, journal_date, description, currency_code,
       source, category, status, approval_status, auto_reverse,
       reversed_journal_id, reversing_journal_id, posted_at, total_accounted_debit,
       created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (*models.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.LedgerID,
		&m.PeriodName,
		&m.JournalDate,
		&m.Description,
		&m.CurrencyCode,
		&m.Source,
		&m.Category,
		&m.Status,
		&m.ApprovalStatus,
		&m.AutoReverse,
		&m.ReversedJournalID,
		&m.ReversingJournalID,
		&m.PostedAt,
		&m.TotalAccountedDebit,
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

// FindJournalByID retrieves a journal header (without lines).
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}
	journal := mapping.ToDomainJournal(*m)
	return &journal, nil
}

// FindLinesByJournalID retrieves a journal's lines in line-number order.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, line_number, combination_id, currency_code,
		       entered_debit, entered_credit, accounted_debit, accounted_credit, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.JournalID,
			&m.LineNumber,
			&m.CombinationID,
			&m.CurrencyCode,
			&m.EnteredDebit,
			&m.EnteredCredit,
			&m.AccountedDebit,
			&m.AccountedCredit,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate line rows", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// PostJournal atomically flips the journal from Draft to Posted and applies
// the balance deltas to the cube in the same transaction. The status flip is
// guarded on Draft, so a concurrent double post loses the race and surfaces
// as ErrAlreadyPosted with no balance effect.
func (r *PgxJournalRepository) PostJournal(ctx context.Context, journalID string, postedAt time.Time, postedBy string, deltas []domain.BalanceDelta) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	flipQuery := `
		UPDATE journals
		SET status = $2, posted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = $5;
	`
	tag, err := tx.Exec(ctx, flipQuery, journalID, string(domain.Posted), postedAt, postedBy, string(domain.Draft))
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the journal does not exist or it already left Draft.
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM journals WHERE journal_id = $1;`, journalID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to check status of journal "+journalID, err)
		}
		return apperrors.ErrAlreadyPosted
	}

	batch := &pgx.Batch{}
	upsertQuery := `
		INSERT INTO balances (
			ledger_id, combination_id, currency_code, period_name, fiscal_year,
			period_entered_debit, period_entered_credit,
			period_accounted_debit, period_accounted_credit
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (ledger_id, combination_id, currency_code, period_name) DO UPDATE
		SET period_entered_debit    = balances.period_entered_debit + EXCLUDED.period_entered_debit,
		    period_entered_credit   = balances.period_entered_credit + EXCLUDED.period_entered_credit,
		    period_accounted_debit  = balances.period_accounted_debit + EXCLUDED.period_accounted_debit,
		    period_accounted_credit = balances.period_accounted_credit + EXCLUDED.period_accounted_credit;
	`
	for _, delta := range deltas {
		batch.Queue(upsertQuery,
			delta.LedgerID,
			delta.CombinationID,
			delta.CurrencyCode,
			delta.PeriodName,
			delta.FiscalYear,
			delta.EnteredDebit,
			delta.EnteredCredit,
			delta.AccountedDebit,
			delta.AccountedCredit,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to apply balance deltas for journal "+journalID, err)
	}

	return r.Commit(ctx, tx)
}

// VoidJournal flips a Draft journal to Void. No balance effect.
func (r *PgxJournalRepository) VoidJournal(ctx context.Context, journalID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, journalID, string(domain.Void), updatedAt, updatedBy, string(domain.Draft))
	if err != nil {
		return apperrors.NewAppError(500, "failed to void journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// SetAutoReverse flips the auto-reverse flag on a Draft journal.
func (r *PgxJournalRepository) SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET auto_reverse = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, journalID, autoReverse, updatedAt, updatedBy, string(domain.Draft))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update auto-reverse flag of journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// SetApprovalStatus records an approval decision on the journal header.
func (r *PgxJournalRepository) SetApprovalStatus(ctx context.Context, journalID string, status domain.ApprovalStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET approval_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, journalID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update approval status of journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetReversalLink stamps the original journal with the ID of the journal
// reversing it.
func (r *PgxJournalRepository) SetReversalLink(ctx context.Context, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET reversing_journal_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND reversing_journal_id IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, journalID, reversingJournalID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set reversal link on journal "+journalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// ListAutoReverseCandidates lists posted journals in the period flagged
// auto-reverse that no reversal links back to yet.
func (r *PgxJournalRepository) ListAutoReverseCandidates(ctx context.Context, ledgerID, periodName string) ([]domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals
		WHERE ledger_id = $1
		  AND period_name = $2
		  AND status = $3
		  AND auto_reverse
		  AND reversing_journal_id IS NULL
		ORDER BY posted_at;`
	rows, err := r.Pool.Query(ctx, query, ledgerID, periodName, string(domain.Posted))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query auto-reverse candidates", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		journals = append(journals, mapping.ToDomainJournal(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal rows", err)
	}
	return journals, nil
}

// CountDraftJournals counts unposted journals in the period.
func (r *PgxJournalRepository) CountDraftJournals(ctx context.Context, ledgerID, periodName string) (int, error) {
	query := `SELECT COUNT(*) FROM journals WHERE ledger_id = $1 AND period_name = $2 AND status = $3;`
	var count int
	if err := r.Pool.QueryRow(ctx, query, ledgerID, periodName, string(domain.Draft)).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count draft journals", err)
	}
	return count, nil
}
