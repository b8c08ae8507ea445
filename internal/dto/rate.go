package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
)

// UpsertRateRequest loads one daily conversion rate.
type UpsertRateRequest struct {
	FromCurrencyCode string                `json:"fromCurrencyCode" validate:"required,len=3"`
	ToCurrencyCode   string                `json:"toCurrencyCode" validate:"required,len=3"`
	ConversionType   domain.ConversionType `json:"conversionType" validate:"required"`
	RateDate         time.Time             `json:"rateDate" validate:"required"`
	Rate             decimal.Decimal       `json:"rate"`
}
