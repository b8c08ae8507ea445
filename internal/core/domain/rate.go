package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionType distinguishes rate series for the same currency pair.
type ConversionType string

const (
	ConversionCorporate ConversionType = "CORPORATE"
	ConversionSpot      ConversionType = "SPOT"
)

// DailyRate converts one unit of the from-currency into the to-currency on a
// given date. Rates carry high decimal precision; rounding to cents happens
// only at journal-line creation.
type DailyRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	ConversionType   ConversionType  `json:"conversionType"`
	RateDate         time.Time       `json:"rateDate"`
	Rate             decimal.Decimal `json:"rate"`
	AuditFields
}
