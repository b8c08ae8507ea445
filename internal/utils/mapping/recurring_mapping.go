package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToDomainRecurringTemplate converts a model RecurringTemplate to a domain
// RecurringTemplate. Lines are attached separately by the repository.
func ToDomainRecurringTemplate(m models.RecurringTemplate) domain.RecurringTemplate {
	return domain.RecurringTemplate{
		TemplateID:   m.TemplateID,
		LedgerID:     m.LedgerID,
		Name:         m.Name,
		Description:  m.Description,
		CurrencyCode: m.CurrencyCode,
		Schedule:     domain.ScheduleType(m.Schedule),
		Status:       domain.TemplateStatus(m.Status),
		NextRunDate:  m.NextRunDate,
		LastRunDate:  m.LastRunDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringTemplateLine converts a model RecurringTemplateLine to a
// domain RecurringTemplateLine
func ToDomainRecurringTemplateLine(m models.RecurringTemplateLine) domain.RecurringTemplateLine {
	return domain.RecurringTemplateLine{
		TemplateID:    m.TemplateID,
		LineNumber:    m.LineNumber,
		CombinationID: m.CombinationID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Description:   m.Description,
	}
}
