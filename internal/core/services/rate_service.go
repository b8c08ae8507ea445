package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
)

// rateService maintains the daily rate series consumed by journal creation
// (CORPORATE) and revaluation (SPOT).
type rateService struct {
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// UpsertDailyRate validates and stores a rate, replacing any prior value for
// the same (pair, type, date) key.
func (s *rateService) UpsertDailyRate(ctx context.Context, req dto.UpsertRateRequest, actorID string) (*domain.DailyRate, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.FromCurrencyCode == req.ToCurrencyCode {
		return nil, fmt.Errorf("%w: rate pair %s/%s converts a currency to itself", apperrors.ErrValidation, req.FromCurrencyCode, req.ToCurrencyCode)
	}
	switch req.ConversionType {
	case domain.ConversionCorporate, domain.ConversionSpot:
	default:
		return nil, fmt.Errorf("%w: unknown conversion type %s", apperrors.ErrValidation, req.ConversionType)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrValidation, req.Rate)
	}

	now := time.Now().UTC()
	rate := domain.DailyRate{
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		ConversionType:   req.ConversionType,
		RateDate:         req.RateDate,
		Rate:             req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if err := s.rateRepo.SaveDailyRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save daily rate %s/%s: %w", req.FromCurrencyCode, req.ToCurrencyCode, err)
	}

	logger.Info("Daily rate loaded",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("type", string(req.ConversionType)),
		slog.String("date", req.RateDate.Format("2006-01-02")),
		slog.String("rate", req.Rate.String()),
	)
	return &rate, nil
}
