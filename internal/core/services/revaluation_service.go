package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
	"github.com/finware/glcore/internal/utils/accounting"
)

// revaluationService recomputes unrealized gain/loss on foreign-currency
// balances at the period-end rate and posts the adjustment through the
// posting engine, flagged to auto-reverse in the following period.
type revaluationService struct {
	balanceRepo portsrepo.BalanceRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	rateRepo    portsrepo.RateRepositoryFacade
	journalSvc  portssvc.JournalSvcFacade
}

// NewRevaluationService creates a new RevaluationService.
func NewRevaluationService(
	balanceRepo portsrepo.BalanceRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	rateRepo portsrepo.RateRepositoryFacade,
	journalSvc portssvc.JournalSvcFacade,
) portssvc.RevaluationSvcFacade {
	return &revaluationService{
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		rateRepo:    rateRepo,
		journalSvc:  journalSvc,
	}
}

var _ portssvc.RevaluationSvcFacade = (*revaluationService)(nil)

// RunRevaluation revalues the period's foreign-currency balances in one
// currency. Each run re-nets against the latest accounted balance, so a rerun
// with no new foreign-currency activity finds nothing to adjust and posts
// nothing, so the net ledger impact of a doubled run is zero. The external
// scheduler is expected to keep per-ledger runs non-overlapping.
func (s *revaluationService) RunRevaluation(ctx context.Context, ledgerID, periodName, currencyCode, actorID string) (*dto.RevaluationResult, error) {
	logger := ctxlog.FromContext(ctx)

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger %s: %w", ledgerID, err)
	}
	if currencyCode == ledger.CurrencyCode {
		return nil, fmt.Errorf("%w: cannot revalue the ledger currency %s", apperrors.ErrValidation, currencyCode)
	}
	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}
	control, err := s.ledgerRepo.FindLedgerControl(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger control for %s: %w", ledgerID, err)
	}
	if control.GainLossCombinationID == "" {
		return nil, fmt.Errorf("%w: ledger %s has no unrealized gain/loss account configured", apperrors.ErrValidation, ledgerID)
	}

	rate, err := s.rateRepo.FindDailyRate(ctx, currencyCode, ledger.CurrencyCode, domain.ConversionSpot, period.EndDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			return nil, fmt.Errorf("%w: %s to %s on %s", apperrors.ErrRateNotFound, currencyCode, ledger.CurrencyCode, period.EndDate.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to fetch period-end rate: %w", err)
	}

	cells, err := s.balanceRepo.ListRevaluationCells(ctx, ledgerID, periodName, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list revaluation cells: %w", err)
	}

	// Full precision through the walk; rounding happens once per line.
	lines := make([]dto.CreateJournalLineRequest, 0, len(cells)+1)
	netGain := decimal.Zero
	revalued := 0
	for _, cell := range cells {
		target := cell.EnteredNet().Mul(rate.Rate)
		delta := accounting.Round(target.Sub(cell.AccountedNet()))
		if delta.IsZero() {
			continue
		}
		revalued++
		netGain = netGain.Add(delta)
		// The adjustment lands on the revalued cell itself: line currency is
		// the foreign currency, entered amounts stay zero, and the delta moves
		// the accounted measure only. The cell's accounted net then equals
		// rate times entered net, so a rerun at the same rate finds no delta.
		line := dto.CreateJournalLineRequest{
			CombinationID: cell.CombinationID,
			CurrencyCode:  currencyCode,
			Description:   fmt.Sprintf("Revaluation %s at %s", currencyCode, rate.Rate),
		}
		if delta.IsPositive() {
			line.AccountedDebit = delta
		} else {
			line.AccountedCredit = delta.Neg()
		}
		lines = append(lines, line)
	}

	result := &dto.RevaluationResult{
		LedgerID:        ledgerID,
		PeriodName:      periodName,
		CurrencyCode:    currencyCode,
		CellsRevalued:   revalued,
		UnrealizedDelta: netGain,
	}

	if revalued == 0 {
		logger.Info("Revaluation found nothing to adjust",
			slog.String("ledger_id", ledgerID),
			slog.String("period", periodName),
			slog.String("currency", currencyCode),
		)
		return result, nil
	}

	// Balance the batch against the configured gain/loss account. The offset
	// is a ledger-currency line, so accounted debits and credits net to zero
	// across the batch.
	offset := dto.CreateJournalLineRequest{
		CombinationID: control.GainLossCombinationID,
		Description:   fmt.Sprintf("Unrealized %s gain/loss %s", currencyCode, periodName),
	}
	if netGain.IsPositive() {
		offset.Credit = netGain
	} else {
		offset.Debit = netGain.Neg()
	}
	lines = append(lines, offset)

	// The adjustment is entered in the ledger currency and flagged to
	// auto-reverse so the unrealized entry unwinds next period.
	journal, err := s.journalSvc.CreateJournal(ctx, dto.CreateJournalRequest{
		LedgerID:     ledgerID,
		PeriodName:   periodName,
		JournalDate:  period.EndDate,
		Description:  fmt.Sprintf("FX revaluation %s %s", currencyCode, periodName),
		CurrencyCode: ledger.CurrencyCode,
		Source:       domain.SourceRevaluation,
		Category:     domain.CategoryAdjustment,
		AutoReverse:  true,
		Lines:        lines,
	}, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create revaluation journal: %w", err)
	}
	if _, err := s.journalSvc.PostJournal(ctx, journal.JournalID, actorID); err != nil {
		return nil, fmt.Errorf("failed to post revaluation journal %s: %w", journal.JournalID, err)
	}

	result.JournalID = journal.JournalID
	logger.Info("Revaluation posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("ledger_id", ledgerID),
		slog.String("period", periodName),
		slog.String("currency", currencyCode),
		slog.Int("cells", revalued),
		slog.String("unrealized_delta", netGain.String()),
	)
	return result, nil
}
