package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:           d.JournalID,
		LedgerID:            d.LedgerID,
		PeriodName:          d.PeriodName,
		JournalDate:         d.JournalDate,
		Description:         d.Description,
		CurrencyCode:        d.CurrencyCode,
		Source:              string(d.Source),
		Category:            string(d.Category),
		Status:              string(d.Status),
		ApprovalStatus:      string(d.ApprovalStatus),
		AutoReverse:         d.AutoReverse,
		ReversedJournalID:   d.ReversedJournalID,
		ReversingJournalID:  d.ReversingJournalID,
		PostedAt:            d.PostedAt,
		TotalAccountedDebit: d.TotalAccountedDebit,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:           m.JournalID,
		LedgerID:            m.LedgerID,
		PeriodName:          m.PeriodName,
		JournalDate:         m.JournalDate,
		Description:         m.Description,
		CurrencyCode:        m.CurrencyCode,
		Source:              domain.JournalSource(m.Source),
		Category:            domain.JournalCategory(m.Category),
		Status:              domain.JournalStatus(m.Status),
		ApprovalStatus:      domain.ApprovalStatus(m.ApprovalStatus),
		AutoReverse:         m.AutoReverse,
		ReversedJournalID:   m.ReversedJournalID,
		ReversingJournalID:  m.ReversingJournalID,
		PostedAt:            m.PostedAt,
		TotalAccountedDebit: m.TotalAccountedDebit,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:          d.LineID,
		JournalID:       d.JournalID,
		LineNumber:      d.LineNumber,
		CombinationID:   d.CombinationID,
		CurrencyCode:    d.CurrencyCode,
		EnteredDebit:    d.EnteredDebit,
		EnteredCredit:   d.EnteredCredit,
		AccountedDebit:  d.AccountedDebit,
		AccountedCredit: d.AccountedCredit,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:          m.LineID,
		JournalID:       m.JournalID,
		LineNumber:      m.LineNumber,
		CombinationID:   m.CombinationID,
		CurrencyCode:    m.CurrencyCode,
		EnteredDebit:    m.EnteredDebit,
		EnteredCredit:   m.EnteredCredit,
		AccountedDebit:  m.AccountedDebit,
		AccountedCredit: m.AccountedCredit,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
