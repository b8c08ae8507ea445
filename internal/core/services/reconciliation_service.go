package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
)

// reconciliationService compares GL control-account balances against
// subledger open-item totals. It only reads: variances are reported, never
// corrected here.
type reconciliationService struct {
	subledgerRepo portsrepo.SubledgerRepositoryFacade
	balanceRepo   portsrepo.BalanceRepositoryFacade
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	tolerance     decimal.Decimal
}

// NewReconciliationService creates a new ReconciliationService. Variances
// whose absolute value exceeds tolerance count as blocking.
func NewReconciliationService(
	subledgerRepo portsrepo.SubledgerRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	tolerance decimal.Decimal,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		subledgerRepo: subledgerRepo,
		balanceRepo:   balanceRepo,
		ledgerRepo:    ledgerRepo,
		tolerance:     tolerance,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// Reconcile compares each configured control account against its subledger as
// of the period end. AR control accounts carry debit (positive) balances and
// AP control accounts carry credit (negative) balances, so the AP side is
// negated before comparing against the subledger's positive open-item total.
func (s *reconciliationService) Reconcile(ctx context.Context, ledgerID, periodName string) (*dto.ReconciliationReport, error) {
	logger := ctxlog.FromContext(ctx)

	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}
	control, err := s.ledgerRepo.FindLedgerControl(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger control for %s: %w", ledgerID, err)
	}

	report := &dto.ReconciliationReport{
		LedgerID:   ledgerID,
		PeriodName: periodName,
		Rows:       []domain.ReconciliationRow{},
	}

	type target struct {
		subledger     domain.Subledger
		combinationID string
		negateGL      bool
	}
	targets := []target{
		{domain.SubledgerPayables, control.APControlCombination, true},
		{domain.SubledgerReceivables, control.ARControlCombination, false},
	}

	for _, t := range targets {
		if t.combinationID == "" {
			return nil, fmt.Errorf("%w: ledger %s has no %s control account configured", apperrors.ErrValidation, ledgerID, t.subledger)
		}

		subTotal, err := s.subledgerRepo.OpenItemTotal(ctx, ledgerID, t.subledger, period.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s open-item total: %w", t.subledger, err)
		}
		glNet, err := s.balanceRepo.AccountedNetThrough(ctx, ledgerID, t.combinationID, period.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch GL balance of control account %s: %w", t.combinationID, err)
		}
		if t.negateGL {
			glNet = glNet.Neg()
		}

		variance := glNet.Sub(subTotal)
		report.Rows = append(report.Rows, domain.ReconciliationRow{
			Subledger:            t.subledger,
			ControlCombinationID: t.combinationID,
			SubledgerBalance:     subTotal,
			GLBalance:            glNet,
			Variance:             variance,
			WithinTolerance:      variance.Abs().LessThanOrEqual(s.tolerance),
		})
	}

	logger.Info("Reconciliation completed",
		slog.String("ledger_id", ledgerID),
		slog.String("period", periodName),
		slog.Int("blocking_variances", report.BlockingVariances()),
	)
	return report, nil
}
