package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/dto"
)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgerControl(ctx context.Context, ledgerID string) (*domain.LedgerControl, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerControl), args.Error(1)
}

func (m *MockLedgerRepository) FindPeriodByName(ctx context.Context, ledgerID, periodName string) (*domain.Period, error) {
	args := m.Called(ctx, ledgerID, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockLedgerRepository) FindOpenPeriod(ctx context.Context, ledgerID string) (*domain.Period, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockLedgerRepository) FindNextPeriod(ctx context.Context, ledgerID, periodName string) (*domain.Period, error) {
	args := m.Called(ctx, ledgerID, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockLedgerRepository) ListPeriodsThrough(ctx context.Context, ledgerID string, fiscalYear int, throughPeriodName string) ([]domain.Period, error) {
	args := m.Called(ctx, ledgerID, fiscalYear, throughPeriodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockLedgerRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, periodID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CombinationRepository ---

type MockCombinationRepository struct {
	mock.Mock
}

var _ portsrepo.CombinationRepositoryFacade = (*MockCombinationRepository)(nil)

func (m *MockCombinationRepository) FindSegmentValues(ctx context.Context, chartOfAccountsID string, segments []string) (map[portsrepo.SegmentKey]domain.SegmentValue, error) {
	args := m.Called(ctx, chartOfAccountsID, segments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[portsrepo.SegmentKey]domain.SegmentValue), args.Error(1)
}

func (m *MockCombinationRepository) FindCombinationBySegments(ctx context.Context, chartOfAccountsID string, segments []string) (*domain.CodeCombination, error) {
	args := m.Called(ctx, chartOfAccountsID, segments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationRepository) FindCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error) {
	args := m.Called(ctx, combinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationRepository) FindCombinationsByIDs(ctx context.Context, combinationIDs []string) (map[string]domain.CodeCombination, error) {
	args := m.Called(ctx, combinationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationRepository) SaveCombination(ctx context.Context, combination domain.CodeCombination) (*domain.CodeCombination, error) {
	args := m.Called(ctx, combination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationRepository) SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, combinationID, enabled, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CrossValidationRepository ---

type MockCrossValidationRepository struct {
	mock.Mock
}

var _ portsrepo.CrossValidationRepositoryFacade = (*MockCrossValidationRepository)(nil)

func (m *MockCrossValidationRepository) ListEnabledRules(ctx context.Context, ledgerID string) ([]domain.CrossValidationRule, error) {
	args := m.Called(ctx, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrossValidationRule), args.Error(1)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	args := m.Called(ctx, journal, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) PostJournal(ctx context.Context, journalID string, postedAt time.Time, postedBy string, deltas []domain.BalanceDelta) error {
	args := m.Called(ctx, journalID, postedAt, postedBy, deltas)
	return args.Error(0)
}

func (m *MockJournalRepository) VoidJournal(ctx context.Context, journalID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, autoReverse, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SetApprovalStatus(ctx context.Context, journalID string, status domain.ApprovalStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SetReversalLink(ctx context.Context, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, journalID, reversingJournalID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) ListAutoReverseCandidates(ctx context.Context, ledgerID, periodName string) ([]domain.Journal, error) {
	args := m.Called(ctx, ledgerID, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) CountDraftJournals(ctx context.Context, ledgerID, periodName string) (int, error) {
	args := m.Called(ctx, ledgerID, periodName)
	return args.Int(0), args.Error(1)
}

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.BalanceRepositoryFacade = (*MockBalanceRepository)(nil)

func (m *MockBalanceRepository) FindBalance(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (*domain.Balance, error) {
	args := m.Called(ctx, ledgerID, combinationID, currencyCode, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) ListBalancesForPeriods(ctx context.Context, ledgerID, combinationID, currencyCode string, periodNames []string) ([]domain.Balance, error) {
	args := m.Called(ctx, ledgerID, combinationID, currencyCode, periodNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) ListRevaluationCells(ctx context.Context, ledgerID, periodName, currencyCode string) ([]domain.Balance, error) {
	args := m.Called(ctx, ledgerID, periodName, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) AccountedNetThrough(ctx context.Context, ledgerID, combinationID string, through time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ledgerID, combinationID, through)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock RateRepository ---

type MockRateRepository struct {
	mock.Mock
}

var _ portsrepo.RateRepositoryFacade = (*MockRateRepository)(nil)

func (m *MockRateRepository) FindDailyRate(ctx context.Context, fromCurrency, toCurrency string, conversionType domain.ConversionType, rateDate time.Time) (*domain.DailyRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency, conversionType, rateDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRate), args.Error(1)
}

func (m *MockRateRepository) SaveDailyRate(ctx context.Context, rate domain.DailyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock RecurringRepository ---

type MockRecurringRepository struct {
	mock.Mock
}

var _ portsrepo.RecurringRepositoryFacade = (*MockRecurringRepository)(nil)

func (m *MockRecurringRepository) ListDueTemplates(ctx context.Context, ledgerID string, asOf time.Time) ([]domain.RecurringTemplate, error) {
	args := m.Called(ctx, ledgerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTemplate), args.Error(1)
}

func (m *MockRecurringRepository) UpdateTemplateRunDates(ctx context.Context, templateID string, nextRunDate, lastRunDate time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, templateID, nextRunDate, lastRunDate, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CloseRepository ---

type MockCloseRepository struct {
	mock.Mock
}

var _ portsrepo.CloseRepositoryFacade = (*MockCloseRepository)(nil)

func (m *MockCloseRepository) ListCloseTasks(ctx context.Context, ledgerID, periodName string) ([]domain.CloseTask, error) {
	args := m.Called(ctx, ledgerID, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CloseTask), args.Error(1)
}

func (m *MockCloseRepository) CompleteCloseTask(ctx context.Context, taskID string, completedBy string, completedAt time.Time) error {
	args := m.Called(ctx, taskID, completedBy, completedAt)
	return args.Error(0)
}

// --- Mock SubledgerRepository ---

type MockSubledgerRepository struct {
	mock.Mock
}

var _ portsrepo.SubledgerRepositoryFacade = (*MockSubledgerRepository)(nil)

func (m *MockSubledgerRepository) OpenItemTotal(ctx context.Context, ledgerID string, subledger domain.Subledger, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ledgerID, subledger, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock CombinationService ---

type MockCombinationService struct {
	mock.Mock
}

var _ portssvc.CombinationSvcFacade = (*MockCombinationService)(nil)

func (m *MockCombinationService) ResolveCombination(ctx context.Context, req dto.ResolveCombinationRequest, actorID string) (*domain.CodeCombination, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationService) GetCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error) {
	args := m.Called(ctx, combinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CodeCombination), args.Error(1)
}

func (m *MockCombinationService) SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, actorID string) error {
	args := m.Called(ctx, combinationID, enabled, actorID)
	return args.Error(0)
}

// --- Mock CrossValidationService ---

type MockCrossValidationService struct {
	mock.Mock
}

var _ portssvc.CrossValidationSvcFacade = (*MockCrossValidationService)(nil)

func (m *MockCrossValidationService) CheckCombination(ctx context.Context, ledgerID string, combination domain.CodeCombination) error {
	args := m.Called(ctx, ledgerID, combination)
	return args.Error(0)
}

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, actorID string) (*domain.Journal, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalService) PostJournal(ctx context.Context, journalID string, actorID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalService) VoidJournal(ctx context.Context, journalID string, actorID string) error {
	args := m.Called(ctx, journalID, actorID)
	return args.Error(0)
}

func (m *MockJournalService) SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, actorID string) error {
	args := m.Called(ctx, journalID, autoReverse, actorID)
	return args.Error(0)
}

func (m *MockJournalService) ApproveJournal(ctx context.Context, journalID string, approverID string) error {
	args := m.Called(ctx, journalID, approverID)
	return args.Error(0)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock ReconciliationService ---

type MockReconciliationService struct {
	mock.Mock
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

func (m *MockReconciliationService) Reconcile(ctx context.Context, ledgerID, periodName string) (*dto.ReconciliationReport, error) {
	args := m.Called(ctx, ledgerID, periodName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReconciliationReport), args.Error(1)
}
