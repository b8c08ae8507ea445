package repositories

// RepositoryProvider bundles every repository facade so wiring passes one
// value instead of a parameter list.
type RepositoryProvider struct {
	LedgerRepo          LedgerRepositoryFacade
	CombinationRepo     CombinationRepositoryFacade
	CrossValidationRepo CrossValidationRepositoryFacade
	JournalRepo         JournalRepositoryFacade
	BalanceRepo         BalanceRepositoryFacade
	RateRepo            RateRepositoryFacade
	RecurringRepo       RecurringRepositoryFacade
	CloseRepo           CloseRepositoryFacade
	SubledgerRepo       SubledgerRepositoryFacade
}
