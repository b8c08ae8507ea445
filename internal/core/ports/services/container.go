package services

// ServiceContainer holds every service facade the application exposes.
type ServiceContainer struct {
	Combination     CombinationSvcFacade
	CrossValidation CrossValidationSvcFacade
	Journal         JournalSvcFacade
	Rate            RateSvcFacade
	Balance         BalanceSvcFacade
	Revaluation     RevaluationSvcFacade
	Recurring       RecurringSvcFacade
	Reversal        ReversalSvcFacade
	PeriodClose     PeriodCloseSvcFacade
	Reconciliation  ReconciliationSvcFacade
}
