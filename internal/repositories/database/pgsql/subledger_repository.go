package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
)

type PgxSubledgerRepository struct {
	BaseRepository
}

// newPgxSubledgerRepository creates the read-only feed of subledger open-item
// totals used by reconciliation.
func newPgxSubledgerRepository(pool *pgxpool.Pool) portsrepo.SubledgerRepositoryFacade {
	return &PgxSubledgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SubledgerRepositoryFacade = (*PgxSubledgerRepository)(nil)

// OpenItemTotal returns the subledger's summed open-item balance as of the
// cutoff. An item counts while it was open on the cutoff date, settled or not
// afterwards.
func (r *PgxSubledgerRepository) OpenItemTotal(ctx context.Context, ledgerID string, subledger domain.Subledger, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM subledger_open_items
		WHERE ledger_id = $1
		  AND subledger = $2
		  AND item_date <= $3
		  AND (settled_date IS NULL OR settled_date > $3);
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, ledgerID, string(subledger), asOf).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum open items for subledger "+string(subledger), err)
	}
	return total, nil
}
