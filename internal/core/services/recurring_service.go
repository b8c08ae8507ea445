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

// recurringService materializes due recurring templates into Draft journals.
// Generated journals are never posted here: scheduling and commitment stay
// separate concerns.
type recurringService struct {
	recurringRepo portsrepo.RecurringRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	journalSvc    portssvc.JournalSvcFacade
}

// NewRecurringService creates a new RecurringService.
func NewRecurringService(
	recurringRepo portsrepo.RecurringRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	journalSvc portssvc.JournalSvcFacade,
) portssvc.RecurringSvcFacade {
	return &recurringService{
		recurringRepo: recurringRepo,
		ledgerRepo:    ledgerRepo,
		journalSvc:    journalSvc,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

// GenerateDueJournals materializes every active template with nextRunDate on
// or before asOf. One bad template does not abort the batch: failures are
// collected per item and the rest proceed. Running with nothing due is a
// no-op returning an empty processed list.
func (s *recurringService) GenerateDueJournals(ctx context.Context, ledgerID string, asOf time.Time, actorID string) (*dto.GenerationResult, error) {
	logger := ctxlog.FromContext(ctx)

	templates, err := s.recurringRepo.ListDueTemplates(ctx, ledgerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list due templates for ledger %s: %w", ledgerID, err)
	}

	result := &dto.GenerationResult{
		LedgerID:     ledgerID,
		TemplatesDue: len(templates),
		Generated:    []string{},
		Failures:     []dto.JobFailure{},
	}
	if len(templates) == 0 {
		return result, nil
	}

	// Materialized journals land in the ledger's current open period.
	openPeriod, err := s.ledgerRepo.FindOpenPeriod(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find open period for ledger %s: %w", ledgerID, err)
	}

	for _, template := range templates {
		journalID, err := s.generateFromTemplate(ctx, template, openPeriod, asOf, actorID)
		if err != nil {
			logger.Warn("Recurring template failed",
				slog.String("template_id", template.TemplateID),
				slog.String("error", err.Error()),
			)
			result.Failures = append(result.Failures, dto.JobFailure{ItemID: template.TemplateID, Reason: err.Error()})
			continue
		}
		result.Generated = append(result.Generated, journalID)
	}

	logger.Info("Recurring generation completed",
		slog.String("ledger_id", ledgerID),
		slog.Int("due", result.TemplatesDue),
		slog.Int("generated", len(result.Generated)),
		slog.Int("failed", len(result.Failures)),
	)
	return result, nil
}

func (s *recurringService) generateFromTemplate(ctx context.Context, template domain.RecurringTemplate, period *domain.Period, asOf time.Time, actorID string) (string, error) {
	lines := make([]dto.CreateJournalLineRequest, len(template.Lines))
	for i, tl := range template.Lines {
		lines[i] = dto.CreateJournalLineRequest{
			CombinationID: tl.CombinationID,
			Debit:         tl.Debit,
			Credit:        tl.Credit,
			Description:   tl.Description,
		}
	}

	journal, err := s.journalSvc.CreateJournal(ctx, dto.CreateJournalRequest{
		LedgerID:     template.LedgerID,
		PeriodName:   period.Name,
		JournalDate:  asOf,
		Description:  fmt.Sprintf("Recurring: %s", template.Name),
		CurrencyCode: template.CurrencyCode,
		Source:       domain.SourceRecurring,
		Category:     domain.CategoryStandard,
		Lines:        lines,
	}, actorID)
	if err != nil {
		return "", fmt.Errorf("failed to materialize template %s: %w", template.TemplateID, err)
	}

	nextRun := template.NextRunAfter(template.NextRunDate)
	if err := s.recurringRepo.UpdateTemplateRunDates(ctx, template.TemplateID, nextRun, asOf, actorID, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to advance schedule for template %s: %w", template.TemplateID, err)
	}

	return journal.JournalID, nil
}
