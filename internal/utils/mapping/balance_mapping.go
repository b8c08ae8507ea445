package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToDomainBalance converts a model Balance to a domain Balance
func ToDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{
		LedgerID:              m.LedgerID,
		CombinationID:         m.CombinationID,
		CurrencyCode:          m.CurrencyCode,
		PeriodName:            m.PeriodName,
		FiscalYear:            m.FiscalYear,
		PeriodEnteredDebit:    m.PeriodEnteredDebit,
		PeriodEnteredCredit:   m.PeriodEnteredCredit,
		PeriodAccountedDebit:  m.PeriodAccountedDebit,
		PeriodAccountedCredit: m.PeriodAccountedCredit,
	}
}

// ToDomainBalanceSlice converts a slice of model Balances to domain Balances
func ToDomainBalanceSlice(ms []models.Balance) []domain.Balance {
	ds := make([]domain.Balance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalance(m)
	}
	return ds
}
