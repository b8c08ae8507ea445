package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRate represents a row in the daily_rates table. The natural key is
// (from_currency_code, to_currency_code, conversion_type, rate_date).
type DailyRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	ConversionType   string          `json:"conversionType"`
	RateDate         time.Time       `json:"rateDate"`
	Rate             decimal.Decimal `json:"rate"`
	AuditFields
}
