package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:          m.LedgerID,
		Name:              m.Name,
		CurrencyCode:      m.CurrencyCode,
		ChartOfAccountsID: m.ChartOfAccountsID,
		Granularity:       domain.PeriodGranularity(m.Granularity),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		LedgerID:    m.LedgerID,
		Name:        m.Name,
		Status:      domain.PeriodStatus(m.Status),
		FiscalYear:  m.FiscalYear,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model Periods to domain Periods
func ToDomainPeriodSlice(ms []models.Period) []domain.Period {
	ds := make([]domain.Period, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}

// ToDomainLedgerControl converts a model LedgerControl to a domain LedgerControl
func ToDomainLedgerControl(m models.LedgerControl) domain.LedgerControl {
	return domain.LedgerControl{
		LedgerID:              m.LedgerID,
		EnforcePeriodClose:    m.EnforcePeriodClose,
		PreventFutureEntry:    m.PreventFutureEntry,
		AllowPriorPeriodEntry: m.AllowPriorPeriodEntry,
		EnforceCvr:            m.EnforceCvr,
		ApprovalLimit:         m.ApprovalLimit,
		SuspenseCombinationID: m.SuspenseCombinationID,
		RoundingCombinationID: m.RoundingCombinationID,
		GainLossCombinationID: m.GainLossCombinationID,
		APControlCombination:  m.APControlCombination,
		ARControlCombination:  m.ARControlCombination,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
