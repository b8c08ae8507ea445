package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
)

// combinationService resolves segment tuples into code combinations (CCIDs).
type combinationService struct {
	combinationRepo portsrepo.CombinationRepositoryFacade
}

// NewCombinationService creates a new CombinationService.
func NewCombinationService(combinationRepo portsrepo.CombinationRepositoryFacade) portssvc.CombinationSvcFacade {
	return &combinationService{combinationRepo: combinationRepo}
}

var _ portssvc.CombinationSvcFacade = (*combinationService)(nil)

// ResolveCombination validates each segment value against the catalog and
// returns the existing CCID for the tuple, creating one on first use.
// Creation is insert-or-fetch under the tuple uniqueness constraint, so
// concurrent resolution of the same tuple converges on a single CCID.
func (s *combinationService) ResolveCombination(ctx context.Context, req dto.ResolveCombinationRequest, actorID string) (*domain.CodeCombination, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	values, err := s.combinationRepo.FindSegmentValues(ctx, req.ChartOfAccountsID, req.Segments)
	if err != nil {
		logger.Error("Failed to fetch segment values", slog.String("chart_id", req.ChartOfAccountsID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch segment values: %w", err)
	}

	var accountClass domain.AccountClass
	for i, segment := range req.Segments {
		value, found := values[portsrepo.SegmentKey{Index: i, Value: segment}]
		if !found {
			return nil, fmt.Errorf("%w: segment %d value %q does not exist in chart %s", apperrors.ErrInvalidSegmentValue, i+1, segment, req.ChartOfAccountsID)
		}
		if !value.Enabled {
			return nil, fmt.Errorf("%w: segment %d value %q is disabled", apperrors.ErrInvalidSegmentValue, i+1, segment)
		}
		// The natural-account segment carries the accounting class; by chart
		// convention it is the last segment.
		if i == len(req.Segments)-1 {
			accountClass = accountClassForValue(value)
		}
	}

	existing, err := s.combinationRepo.FindCombinationBySegments(ctx, req.ChartOfAccountsID, req.Segments)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up combination", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up combination: %w", err)
	}

	now := time.Now().UTC()
	combination := domain.CodeCombination{
		CombinationID:       uuid.NewString(),
		ChartOfAccountsID:   req.ChartOfAccountsID,
		Segments:            req.Segments,
		AccountClass:        accountClass,
		Enabled:             true,
		RevaluationEligible: accountClass == domain.ClassAsset || accountClass == domain.ClassLiability,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	// SaveCombination returns the winner when a concurrent resolve inserted
	// the same tuple first.
	saved, err := s.combinationRepo.SaveCombination(ctx, combination)
	if err != nil {
		logger.Error("Failed to save combination", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save combination: %w", err)
	}

	logger.Info("Code combination resolved", slog.String("combination_id", saved.CombinationID), slog.String("segments", saved.Concatenated()))
	return saved, nil
}

// GetCombinationByID retrieves a combination by CCID.
func (s *combinationService) GetCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error) {
	combination, err := s.combinationRepo.FindCombinationByID(ctx, combinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find combination %s: %w", combinationID, err)
	}
	return combination, nil
}

// SetCombinationEnabled disables or re-enables a combination. Combinations
// are never deleted, so historical journals stay resolvable.
func (s *combinationService) SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, actorID string) error {
	if err := s.combinationRepo.SetCombinationEnabled(ctx, combinationID, enabled, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update combination %s: %w", combinationID, err)
	}
	return nil
}

// accountClassForValue derives the accounting class from the natural-account
// value's leading digit, the chart's numbering convention.
func accountClassForValue(value domain.SegmentValue) domain.AccountClass {
	if value.Value == "" {
		return domain.ClassAsset
	}
	switch value.Value[0] {
	case '1':
		return domain.ClassAsset
	case '2':
		return domain.ClassLiability
	case '3':
		return domain.ClassEquity
	case '4':
		return domain.ClassRevenue
	default:
		return domain.ClassExpense
	}
}
