package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
)

// reversalService generates the mirror-image reversing journal in the
// following period for posted journals flagged auto-reverse.
type reversalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewReversalService creates a new ReversalService.
func NewReversalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	journalSvc portssvc.JournalSvcFacade,
) portssvc.ReversalSvcFacade {
	return &reversalService{
		journalRepo: journalRepo,
		ledgerRepo:  ledgerRepo,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

// RunAutoReversal reverses every posted journal in the period flagged
// auto-reverse that has not been reversed yet. Each journal fails fast on its
// own: one failure is recorded and the batch continues, so callers can retry
// selectively from the result.
func (s *reversalService) RunAutoReversal(ctx context.Context, ledgerID, periodName, actorID string) (*dto.ReversalResult, error) {
	logger := ctxlog.FromContext(ctx)

	candidates, err := s.journalRepo.ListAutoReverseCandidates(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-reverse candidates for %s/%s: %w", ledgerID, periodName, err)
	}

	result := &dto.ReversalResult{
		LedgerID:   ledgerID,
		PeriodName: periodName,
		Reversed:   []string{},
		Failures:   []dto.JobFailure{},
	}
	if len(candidates) == 0 {
		return result, nil
	}

	// Reversals land in the immediately following period.
	nextPeriod, err := s.ledgerRepo.FindNextPeriod(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to find period following %s: %w", periodName, err)
	}

	for _, original := range candidates {
		if err := s.reverseOne(ctx, original, nextPeriod, actorID); err != nil {
			logger.Warn("Auto-reversal failed for journal",
				slog.String("journal_id", original.JournalID),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, dto.JobFailure{ItemID: original.JournalID, Reason: err.Error()})
			continue
		}
		result.Reversed = append(result.Reversed, original.JournalID)
	}

	logger.Info("Auto-reversal completed",
		slog.String("ledger_id", ledgerID),
		slog.String("period", periodName),
		slog.Int("reversed", len(result.Reversed)),
		slog.Int("failed", len(result.Failures)),
	)
	return result, nil
}

// reverseOne creates and posts the mirror journal for one original, then
// links the original forward to its reversal.
func (s *reversalService) reverseOne(ctx context.Context, original domain.Journal, nextPeriod *domain.Period, actorID string) error {
	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, original.JournalID)
	if err != nil {
		return fmt.Errorf("failed to fetch lines of journal %s: %w", original.JournalID, err)
	}

	// Mirror image: every line's debit and credit swap sides, on both the
	// entered and the accounted measure. Carrying the original accounted
	// amounts keeps the reversal from being re-rated at the next period's
	// rate, so original plus reversal net to exactly zero in the ledger
	// currency.
	lines := make([]dto.CreateJournalLineRequest, len(originalLines))
	for i, line := range originalLines {
		lines[i] = dto.CreateJournalLineRequest{
			CombinationID:   line.CombinationID,
			CurrencyCode:    line.CurrencyCode,
			Debit:           line.EnteredCredit,
			Credit:          line.EnteredDebit,
			AccountedDebit:  line.AccountedCredit,
			AccountedCredit: line.AccountedDebit,
			Description:     line.Description,
		}
	}

	originalID := original.JournalID
	reversal, err := s.journalSvc.CreateJournal(ctx, dto.CreateJournalRequest{
		LedgerID:          original.LedgerID,
		PeriodName:        nextPeriod.Name,
		JournalDate:       nextPeriod.StartDate,
		Description:       fmt.Sprintf("Reversal of %s", original.Description),
		CurrencyCode:      original.CurrencyCode,
		Source:            domain.SourceReversal,
		Category:          original.Category,
		ReversedJournalID: &originalID,
		Lines:             lines,
	}, actorID)
	if err != nil {
		return fmt.Errorf("failed to create reversal of journal %s: %w", originalID, err)
	}

	if err := s.journalRepo.SetReversalLink(ctx, originalID, reversal.JournalID, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to link reversal %s to journal %s: %w", reversal.JournalID, originalID, err)
	}

	if _, err := s.journalSvc.PostJournal(ctx, reversal.JournalID, actorID); err != nil {
		return fmt.Errorf("failed to post reversal %s of journal %s: %w", reversal.JournalID, originalID, err)
	}
	return nil
}
