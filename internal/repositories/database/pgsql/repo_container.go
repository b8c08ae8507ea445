package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:          newPgxLedgerRepository(dbPool),
		CombinationRepo:     newPgxCombinationRepository(dbPool),
		CrossValidationRepo: newPgxCrossValidationRepository(dbPool),
		JournalRepo:         newPgxJournalRepository(dbPool),
		BalanceRepo:         newPgxBalanceRepository(dbPool),
		RateRepo:            newPgxRateRepository(dbPool),
		RecurringRepo:       newPgxRecurringRepository(dbPool),
		CloseRepo:           newPgxCloseRepository(dbPool),
		SubledgerRepo:       newPgxSubledgerRepository(dbPool),
	}
}
