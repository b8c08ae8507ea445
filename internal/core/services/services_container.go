package services

import (
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/pkg/config"
)

// NewServiceContainer wires every service with its dependencies. The journal
// service comes first since revaluation, recurring, and reversal all post
// through it.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Combination = NewCombinationService(repos.CombinationRepo)
	container.CrossValidation = NewCrossValidationService(repos.CrossValidationRepo, repos.LedgerRepo)

	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.LedgerRepo,
		repos.RateRepo,
		container.Combination,
		container.CrossValidation,
	)

	container.Rate = NewRateService(repos.RateRepo)
	container.Balance = NewBalanceService(repos.BalanceRepo, repos.LedgerRepo)
	container.Revaluation = NewRevaluationService(repos.BalanceRepo, repos.LedgerRepo, repos.RateRepo, container.Journal)
	container.Recurring = NewRecurringService(repos.RecurringRepo, repos.LedgerRepo, container.Journal)
	container.Reversal = NewReversalService(repos.JournalRepo, repos.LedgerRepo, container.Journal)

	container.Reconciliation = NewReconciliationService(
		repos.SubledgerRepo,
		repos.BalanceRepo,
		repos.LedgerRepo,
		cfg.ReconciliationTolerance,
	)
	container.PeriodClose = NewPeriodCloseService(
		repos.CloseRepo,
		repos.LedgerRepo,
		repos.JournalRepo,
		container.Reconciliation,
	)

	return container
}
