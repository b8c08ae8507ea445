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
	"github.com/finware/glcore/internal/statemachine"
)

// periodCloseService tracks the close checklist and gates the Closed
// transition. It orchestrates only; posting stays with the posting engine and
// corrections stay with their owning services.
type periodCloseService struct {
	closeRepo         portsrepo.CloseRepositoryFacade
	ledgerRepo        portsrepo.LedgerRepositoryFacade
	journalRepo       portsrepo.JournalRepositoryFacade
	reconciliationSvc portssvc.ReconciliationSvcFacade
}

// NewPeriodCloseService creates a new PeriodCloseService.
func NewPeriodCloseService(
	closeRepo portsrepo.CloseRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	reconciliationSvc portssvc.ReconciliationSvcFacade,
) portssvc.PeriodCloseSvcFacade {
	return &periodCloseService{
		closeRepo:         closeRepo,
		ledgerRepo:        ledgerRepo,
		journalRepo:       journalRepo,
		reconciliationSvc: reconciliationSvc,
	}
}

var _ portssvc.PeriodCloseSvcFacade = (*periodCloseService)(nil)

// GetCloseStatus rolls up the checklist, unposted journal count, and
// reconciliation variances into the single gate the Closed transition checks.
func (s *periodCloseService) GetCloseStatus(ctx context.Context, ledgerID, periodName string) (*dto.CloseStatusResponse, error) {
	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}

	status, err := s.rollup(ctx, ledgerID, periodName)
	if err != nil {
		return nil, err
	}

	return &dto.CloseStatusResponse{
		LedgerID:           ledgerID,
		PeriodName:         periodName,
		PeriodStatus:       period.Status,
		TotalTasks:         status.TotalTasks,
		CompletedTasks:     status.CompletedTasks,
		BlockingExceptions: status.BlockingExceptions(),
		CanClose:           status.CanClose(),
	}, nil
}

// CompleteTask marks one checklist task complete.
func (s *periodCloseService) CompleteTask(ctx context.Context, taskID string, actorID string) error {
	if err := s.closeRepo.CompleteCloseTask(ctx, taskID, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to complete close task %s: %w", taskID, err)
	}
	ctxlog.FromContext(ctx).Info("Close task completed",
		slog.String("task_id", taskID),
		slog.String("actor", actorID),
	)
	return nil
}

// BeginClose moves the period from Open to Closing. Closing still accepts
// adjustment and closing entries, so no gate applies here.
func (s *periodCloseService) BeginClose(ctx context.Context, ledgerID, periodName string, actorID string) error {
	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}

	machine := statemachine.NewPeriodFSM(period)
	if err := machine.BeginClose(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	}
	if err := s.ledgerRepo.UpdatePeriodStatus(ctx, period.PeriodID, period.Status, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update status of period %s: %w", periodName, err)
	}

	ctxlog.FromContext(ctx).Info("Period close begun",
		slog.String("ledger_id", ledgerID),
		slog.String("period", periodName),
	)
	return nil
}

// ClosePeriod transitions the period to Closed. The gate requires every
// checklist task complete and zero blocking exceptions; a blocked close
// reports what remains instead of transitioning.
func (s *periodCloseService) ClosePeriod(ctx context.Context, ledgerID, periodName string, actorID string) error {
	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}

	status, err := s.rollup(ctx, ledgerID, periodName)
	if err != nil {
		return err
	}
	if !status.CanClose() {
		return fmt.Errorf("%w: period %s has %d of %d tasks complete, %d draft journals, %d reconciliation gaps",
			apperrors.ErrCloseBlocked, periodName,
			status.CompletedTasks, status.TotalTasks,
			status.UnpostedJournals, status.ReconciliationGaps,
		)
	}

	machine := statemachine.NewPeriodFSM(period)
	if err := machine.Close(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	}
	if err := s.ledgerRepo.UpdatePeriodStatus(ctx, period.PeriodID, period.Status, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update status of period %s: %w", periodName, err)
	}

	ctxlog.FromContext(ctx).Info("Period closed",
		slog.String("ledger_id", ledgerID),
		slog.String("period", periodName),
		slog.String("actor", actorID),
	)
	return nil
}

func (s *periodCloseService) rollup(ctx context.Context, ledgerID, periodName string) (*domain.CloseStatus, error) {
	tasks, err := s.closeRepo.ListCloseTasks(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to list close tasks: %w", err)
	}
	total, completed := 0, 0
	for _, task := range tasks {
		if !task.Required {
			continue
		}
		total++
		if task.Completed {
			completed++
		}
	}

	drafts, err := s.journalRepo.CountDraftJournals(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to count draft journals: %w", err)
	}

	report, err := s.reconciliationSvc.Reconcile(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile subledgers: %w", err)
	}

	return &domain.CloseStatus{
		LedgerID:           ledgerID,
		PeriodName:         periodName,
		TotalTasks:         total,
		CompletedTasks:     completed,
		UnpostedJournals:   drafts,
		ReconciliationGaps: report.BlockingVariances(),
	}, nil
}
