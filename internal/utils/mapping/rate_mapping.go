package mapping

import (
	"github.com/finware/glcore/internal/core/domain"
	"github.com/finware/glcore/internal/models"
)

// ToModelDailyRate converts a domain DailyRate to a model DailyRate
func ToModelDailyRate(d domain.DailyRate) models.DailyRate {
	return models.DailyRate{
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		ConversionType:   string(d.ConversionType),
		RateDate:         d.RateDate,
		Rate:             d.Rate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyRate converts a model DailyRate to a domain DailyRate
func ToDomainDailyRate(m models.DailyRate) domain.DailyRate {
	return domain.DailyRate{
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		ConversionType:   domain.ConversionType(m.ConversionType),
		RateDate:         m.RateDate,
		Rate:             m.Rate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
