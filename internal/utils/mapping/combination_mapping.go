package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToModelCodeCombination converts a domain CodeCombination to a model CodeCombination
func ToModelCodeCombination(d domain.CodeCombination) models.CodeCombination {
	return models.CodeCombination{
		CombinationID:       d.CombinationID,
		ChartOfAccountsID:   d.ChartOfAccountsID,
		Segments:            d.Segments,
		AccountClass:        string(d.AccountClass),
		Enabled:             d.Enabled,
		RevaluationEligible: d.RevaluationEligible,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCodeCombination converts a model CodeCombination to a domain CodeCombination
func ToDomainCodeCombination(m models.CodeCombination) domain.CodeCombination {
	return domain.CodeCombination{
		CombinationID:       m.CombinationID,
		ChartOfAccountsID:   m.ChartOfAccountsID,
		Segments:            m.Segments,
		AccountClass:        domain.AccountClass(m.AccountClass),
		Enabled:             m.Enabled,
		RevaluationEligible: m.RevaluationEligible,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSegmentValue converts a model SegmentValue to a domain SegmentValue
func ToDomainSegmentValue(m models.SegmentValue) domain.SegmentValue {
	return domain.SegmentValue{
		ChartOfAccountsID: m.ChartOfAccountsID,
		SegmentIndex:      m.SegmentIndex,
		Value:             m.Value,
		Description:       m.Description,
		Enabled:           m.Enabled,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCrossValidationRule converts a model CrossValidationRule to a domain CrossValidationRule
func ToDomainCrossValidationRule(m models.CrossValidationRule) domain.CrossValidationRule {
	return domain.CrossValidationRule{
		RuleID:        m.RuleID,
		LedgerID:      m.LedgerID,
		Name:          m.Name,
		Sequence:      m.Sequence,
		IncludeFilter: m.IncludeFilter,
		ExcludeFilter: m.ExcludeFilter,
		Enabled:       m.Enabled,
		ErrorMessage:  m.ErrorMessage,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
