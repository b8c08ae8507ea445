package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/dto"
	"github.com/finware/glcore/internal/utils/accounting"
)

// journalService is the posting engine. Every producer (manual entry,
// revaluation, recurring generation, auto-reversal) creates and posts
// journals through this one path.
type journalService struct {
	journalRepo    portsrepo.JournalRepositoryFacade
	ledgerRepo     portsrepo.LedgerRepositoryFacade
	rateRepo       portsrepo.RateRepositoryFacade
	combinationSvc portssvc.CombinationSvcFacade
	cvrSvc         portssvc.CrossValidationSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	rateRepo portsrepo.RateRepositoryFacade,
	combinationSvc portssvc.CombinationSvcFacade,
	cvrSvc portssvc.CrossValidationSvcFacade,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:    journalRepo,
		ledgerRepo:     ledgerRepo,
		rateRepo:       rateRepo,
		combinationSvc: combinationSvc,
		cvrSvc:         cvrSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal validates the request, computes accounted amounts via the
// daily rate, and persists the batch in Draft status.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, actorID string) (*domain.Journal, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, req.LedgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger %s: %w", req.LedgerID, err)
	}
	if _, err := s.ledgerRepo.FindPeriodByName(ctx, req.LedgerID, req.PeriodName); err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", req.PeriodName, err)
	}
	control, err := s.ledgerRepo.FindLedgerControl(ctx, req.LedgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger control for %s: %w", req.LedgerID, err)
	}

	// Rate is 1 when the transaction currency is the ledger currency.
	// Otherwise the daily rate for the journal date is fetched once, and only
	// if some line actually needs converting; lines carrying explicit
	// accounted amounts never do.
	rate := decimal.NewFromInt(1)
	rateLoaded := req.CurrencyCode == ledger.CurrencyCode
	batchRate := func() (decimal.Decimal, error) {
		if rateLoaded {
			return rate, nil
		}
		dailyRate, err := s.rateRepo.FindDailyRate(ctx, req.CurrencyCode, ledger.CurrencyCode, domain.ConversionCorporate, req.JournalDate)
		if err != nil {
			if errors.Is(err, apperrors.ErrRateNotFound) {
				return decimal.Zero, fmt.Errorf("%w: %s to %s on %s", apperrors.ErrRateNotFound, req.CurrencyCode, ledger.CurrencyCode, req.JournalDate.Format("2006-01-02"))
			}
			return decimal.Zero, fmt.Errorf("failed to fetch daily rate: %w", err)
		}
		rate = dailyRate.Rate
		rateLoaded = true
		return rate, nil
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	totalDebit := decimal.Zero
	for i, lineReq := range req.Lines {
		if err := accounting.ValidateLineAmounts(lineReq.Debit, lineReq.Credit); err != nil {
			return nil, fmt.Errorf("line %d (account %s): %w", i+1, lineReq.CombinationID, err)
		}
		lineCurrency := lineReq.CurrencyCode
		if lineCurrency == "" {
			lineCurrency = req.CurrencyCode
		}

		var accountedDebit, accountedCredit decimal.Decimal
		switch {
		case !lineReq.AccountedDebit.IsZero() || !lineReq.AccountedCredit.IsZero():
			// Explicit accounted amounts stand as given; zero entered amounts
			// are allowed here so a line can move the accounted measure alone.
			if err := accounting.ValidateLineAmounts(lineReq.AccountedDebit, lineReq.AccountedCredit); err != nil {
				return nil, fmt.Errorf("line %d (account %s): %w", i+1, lineReq.CombinationID, err)
			}
			accountedDebit = lineReq.AccountedDebit
			accountedCredit = lineReq.AccountedCredit
		case lineReq.Debit.IsZero() && lineReq.Credit.IsZero():
			return nil, fmt.Errorf("%w: line %d (account %s) carries no amount", apperrors.ErrValidation, i+1, lineReq.CombinationID)
		case lineCurrency == ledger.CurrencyCode:
			accountedDebit = lineReq.Debit
			accountedCredit = lineReq.Credit
		case lineCurrency == req.CurrencyCode:
			lineRate, err := batchRate()
			if err != nil {
				return nil, err
			}
			accountedDebit = accounting.Accounted(lineReq.Debit, lineRate)
			accountedCredit = accounting.Accounted(lineReq.Credit, lineRate)
		default:
			return nil, fmt.Errorf("%w: line %d (account %s) currency %s requires explicit accounted amounts", apperrors.ErrValidation, i+1, lineReq.CombinationID, lineCurrency)
		}

		lines[i] = domain.JournalLine{
			LineID:          uuid.NewString(),
			JournalID:       journalID,
			LineNumber:      i + 1,
			CombinationID:   lineReq.CombinationID,
			CurrencyCode:    lineCurrency,
			EnteredDebit:    lineReq.Debit,
			EnteredCredit:   lineReq.Credit,
			AccountedDebit:  accountedDebit,
			AccountedCredit: accountedCredit,
			Description:     lineReq.Description,
			AuditFields:     audit,
		}
		totalDebit = totalDebit.Add(lines[i].AccountedDebit)
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}
	category := req.Category
	if category == "" {
		category = domain.CategoryStandard
	}
	approvalStatus := domain.ApprovalNotRequired
	if control.ApprovalLimit.IsPositive() && totalDebit.GreaterThan(control.ApprovalLimit) {
		approvalStatus = domain.ApprovalPending
	}

	journal := domain.Journal{
		JournalID:           journalID,
		LedgerID:            req.LedgerID,
		PeriodName:          req.PeriodName,
		JournalDate:         req.JournalDate,
		Description:         req.Description,
		CurrencyCode:        req.CurrencyCode,
		Source:              source,
		Category:            category,
		Status:              domain.Draft,
		ApprovalStatus:      approvalStatus,
		AutoReverse:         req.AutoReverse,
		ReversedJournalID:   req.ReversedJournalID,
		TotalAccountedDebit: totalDebit,
		AuditFields:         audit,
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lines); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("ledger_id", req.LedgerID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal created",
		slog.String("journal_id", journalID),
		slog.String("ledger_id", req.LedgerID),
		slog.String("period", req.PeriodName),
		slog.String("source", string(source)),
	)
	journal.Lines = lines
	return &journal, nil
}

// PostJournal re-validates every line through the resolver and the CVR
// enforcer, checks the balancing invariant and the ledger-control gates, then
// atomically flips the journal to Posted and applies the cube deltas. Nothing
// is partially applied: either the status flip and every balance update
// commit together, or none do.
func (s *journalService) PostJournal(ctx context.Context, journalID string, actorID string) (*domain.Journal, error) {
	logger := ctxlog.FromContext(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}
	switch journal.Status {
	case domain.Posted:
		return nil, fmt.Errorf("%w: journal %s", apperrors.ErrAlreadyPosted, journalID)
	case domain.Void:
		return nil, fmt.Errorf("%w: journal %s is void", apperrors.ErrConflict, journalID)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lines for journal %s: %w", journalID, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: journal %s", apperrors.ErrEmptyJournal, journalID)
	}

	control, err := s.ledgerRepo.FindLedgerControl(ctx, journal.LedgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger control for %s: %w", journal.LedgerID, err)
	}
	period, err := s.ledgerRepo.FindPeriodByName(ctx, journal.LedgerID, journal.PeriodName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", journal.PeriodName, err)
	}

	if err := s.checkPeriodGates(ctx, journal, period, control); err != nil {
		return nil, err
	}

	// Every line re-validates through the resolver and the CVR enforcer so a
	// combination disabled or newly restricted since Draft cannot slip through.
	for _, line := range lines {
		combination, err := s.combinationSvc.GetCombinationByID(ctx, line.CombinationID)
		if err != nil {
			return nil, fmt.Errorf("journal %s line %d: %w", journalID, line.LineNumber, err)
		}
		if !combination.Enabled {
			return nil, fmt.Errorf("%w: journal %s line %d account %s is disabled", apperrors.ErrInvalidSegmentValue, journalID, line.LineNumber, combination.Concatenated())
		}
		if err := s.cvrSvc.CheckCombination(ctx, journal.LedgerID, *combination); err != nil {
			return nil, fmt.Errorf("journal %s line %d: %w", journalID, line.LineNumber, err)
		}
	}

	totalDebit, totalCredit, err := sumAccounted(journalID, lines)
	if err != nil {
		return nil, err
	}
	if !totalDebit.Equal(totalCredit) {
		delta := totalDebit.Sub(totalCredit)
		return nil, fmt.Errorf("%w: journal %s debits %s credits %s delta %s", apperrors.ErrUnbalancedJournal, journalID, totalDebit, totalCredit, delta)
	}

	if control.ApprovalLimit.IsPositive() && totalDebit.GreaterThan(control.ApprovalLimit) && journal.ApprovalStatus != domain.ApprovalApproved {
		return nil, fmt.Errorf("%w: journal %s amount %s exceeds limit %s", apperrors.ErrApprovalRequired, journalID, totalDebit, control.ApprovalLimit)
	}

	deltas := buildBalanceDeltas(journal, period, lines)

	postedAt := time.Now().UTC()
	if err := s.journalRepo.PostJournal(ctx, journalID, postedAt, actorID, deltas); err != nil {
		logger.Error("Failed to post journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post journal %s: %w", journalID, err)
	}

	logger.Info("Journal posted",
		slog.String("journal_id", journalID),
		slog.String("ledger_id", journal.LedgerID),
		slog.String("period", journal.PeriodName),
		slog.String("amount", totalDebit.String()),
	)

	journal.Status = domain.Posted
	journal.PostedAt = &postedAt
	journal.TotalAccountedDebit = totalDebit
	journal.LastUpdatedAt = postedAt
	journal.LastUpdatedBy = actorID
	journal.Lines = lines
	return journal, nil
}

// checkPeriodGates enforces the period status and the ledger-control date gates.
func (s *journalService) checkPeriodGates(ctx context.Context, journal *domain.Journal, period *domain.Period, control *domain.LedgerControl) error {
	switch period.Status {
	case domain.PeriodOpen:
		// ordinary entry
	case domain.PeriodClosing:
		// Only closing-specific entries (adjustments, closing entries) may
		// post while close processing runs.
		if journal.Category != domain.CategoryAdjustment && journal.Category != domain.CategoryClosing {
			return fmt.Errorf("%w: period %s is closing and journal %s is not a closing entry", apperrors.ErrPeriodNotOpen, period.Name, journal.JournalID)
		}
	default:
		return fmt.Errorf("%w: period %s has status %s", apperrors.ErrPeriodNotOpen, period.Name, period.Status)
	}

	if control.PreventFutureEntry && journal.JournalDate.After(time.Now().UTC()) {
		return fmt.Errorf("%w: journal %s is dated %s", apperrors.ErrFutureDatedEntryBlocked, journal.JournalID, journal.JournalDate.Format("2006-01-02"))
	}

	if !control.AllowPriorPeriodEntry {
		open, err := s.ledgerRepo.FindOpenPeriod(ctx, journal.LedgerID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to fetch open period for ledger %s: %w", journal.LedgerID, err)
		}
		if open != nil && period.EndDate.Before(open.StartDate) {
			return fmt.Errorf("%w: journal %s targets period %s, current open period is %s", apperrors.ErrPriorPeriodEntryBlocked, journal.JournalID, period.Name, open.Name)
		}
	}
	return nil
}

// VoidJournal abandons a Draft journal. Terminal, no balance effect.
func (s *journalService) VoidJournal(ctx context.Context, journalID string, actorID string) error {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}
	if journal.Status == domain.Posted {
		return fmt.Errorf("%w: journal %s cannot be voided", apperrors.ErrAlreadyPosted, journalID)
	}
	if journal.Status == domain.Void {
		return nil
	}
	if err := s.journalRepo.VoidJournal(ctx, journalID, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to void journal %s: %w", journalID, err)
	}
	return nil
}

// SetAutoReverse toggles the auto-reverse flag. Permitted only while Draft.
func (s *journalService) SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, actorID string) error {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}
	if journal.Status == domain.Posted {
		return fmt.Errorf("%w: auto-reverse cannot change on journal %s", apperrors.ErrAlreadyPosted, journalID)
	}
	if journal.Status != domain.Draft {
		return fmt.Errorf("%w: journal %s has status %s", apperrors.ErrConflict, journalID, journal.Status)
	}
	if err := s.journalRepo.SetAutoReverse(ctx, journalID, autoReverse, actorID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update auto-reverse on journal %s: %w", journalID, err)
	}
	return nil
}

// ApproveJournal records an approval on a Draft journal pending one.
func (s *journalService) ApproveJournal(ctx context.Context, journalID string, approverID string) error {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}
	if journal.Status != domain.Draft {
		return fmt.Errorf("%w: journal %s has status %s", apperrors.ErrConflict, journalID, journal.Status)
	}
	if err := s.journalRepo.SetApprovalStatus(ctx, journalID, domain.ApprovalApproved, approverID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to approve journal %s: %w", journalID, err)
	}
	return nil
}

// GetJournalByID retrieves a journal with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal %s: %w", journalID, err)
	}
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lines for journal %s: %w", journalID, err)
	}
	journal.Lines = lines
	return journal, nil
}

// sumAccounted validates per-line amounts and totals the accounted sides.
func sumAccounted(journalID string, lines []domain.JournalLine) (decimal.Decimal, decimal.Decimal, error) {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		if err := accounting.ValidateLineAmounts(line.AccountedDebit, line.AccountedCredit); err != nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("journal %s line %d: %w", journalID, line.LineNumber, err)
		}
		totalDebit = totalDebit.Add(line.AccountedDebit)
		totalCredit = totalCredit.Add(line.AccountedCredit)
	}
	return totalDebit, totalCredit, nil
}

// buildBalanceDeltas aggregates the journal's lines into one delta per
// touched cube cell.
func buildBalanceDeltas(journal *domain.Journal, period *domain.Period, lines []domain.JournalLine) []domain.BalanceDelta {
	type cellKey struct {
		combinationID string
		currencyCode  string
	}
	index := make(map[cellKey]int)
	deltas := make([]domain.BalanceDelta, 0, len(lines))
	for _, line := range lines {
		key := cellKey{combinationID: line.CombinationID, currencyCode: line.CurrencyCode}
		i, ok := index[key]
		if !ok {
			i = len(deltas)
			index[key] = i
			deltas = append(deltas, domain.BalanceDelta{
				LedgerID:        journal.LedgerID,
				CombinationID:   line.CombinationID,
				CurrencyCode:    line.CurrencyCode,
				PeriodName:      period.Name,
				FiscalYear:      period.FiscalYear,
				EnteredDebit:    decimal.Zero,
				EnteredCredit:   decimal.Zero,
				AccountedDebit:  decimal.Zero,
				AccountedCredit: decimal.Zero,
			})
		}
		deltas[i].EnteredDebit = deltas[i].EnteredDebit.Add(line.EnteredDebit)
		deltas[i].EnteredCredit = deltas[i].EnteredCredit.Add(line.EnteredCredit)
		deltas[i].AccountedDebit = deltas[i].AccountedDebit.Add(line.AccountedDebit)
		deltas[i].AccountedCredit = deltas[i].AccountedCredit.Add(line.AccountedCredit)
	}
	return deltas
}
