package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockBalanceRepo *MockBalanceRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.BalanceSvcFacade

	ledgerID      string
	combinationID string
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewBalanceService(suite.mockBalanceRepo, suite.mockLedgerRepo)
	suite.ledgerID = "ledger-1"
	suite.combinationID = "ccid-1"
}

func (suite *BalanceServiceTestSuite) period(name string, fiscalYear int, month time.Month) domain.Period {
	return domain.Period{
		PeriodID:   "period-" + name,
		LedgerID:   suite.ledgerID,
		Name:       name,
		Status:     domain.PeriodOpen,
		FiscalYear: fiscalYear,
		StartDate:  time.Date(fiscalYear, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *BalanceServiceTestSuite) TestGetBalance_ExistingCell() {
	ctx := context.Background()
	cell := &domain.Balance{
		LedgerID:              suite.ledgerID,
		CombinationID:         suite.combinationID,
		CurrencyCode:          "USD",
		PeriodName:            "Jan-2026",
		PeriodAccountedDebit:  dec("500.00"),
		PeriodAccountedCredit: dec("200.00"),
	}

	suite.mockBalanceRepo.On("FindBalance", ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026").Return(cell, nil).Once()

	balance, err := suite.service.GetBalance(ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026")

	suite.Require().NoError(err)
	suite.True(balance.AccountedNet().Equal(dec("300.00")))
}

func (suite *BalanceServiceTestSuite) TestGetBalance_UntouchedCellReadsZero() {
	ctx := context.Background()
	period := suite.period("Jan-2026", 2026, time.January)

	suite.mockBalanceRepo.On("FindBalance", ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedgerRepo.On("FindPeriodByName", ctx, suite.ledgerID, "Jan-2026").Return(&period, nil).Once()

	balance, err := suite.service.GetBalance(ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026")

	suite.Require().NoError(err)
	suite.True(balance.PeriodAccountedDebit.IsZero())
	suite.True(balance.PeriodAccountedCredit.IsZero())
	suite.Equal(2026, balance.FiscalYear)
	suite.Equal("Jan-2026", balance.PeriodName)
}

func (suite *BalanceServiceTestSuite) TestGetBalance_RepoError() {
	ctx := context.Background()

	suite.mockBalanceRepo.On("FindBalance", ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetBalance(ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BalanceServiceTestSuite) TestGetYearToDateNet_SumsPeriodCells() {
	ctx := context.Background()
	march := suite.period("Mar-2026", 2026, time.March)
	periods := []domain.Period{
		suite.period("Jan-2026", 2026, time.January),
		suite.period("Feb-2026", 2026, time.February),
		march,
	}
	cells := []domain.Balance{
		{PeriodName: "Jan-2026", PeriodAccountedDebit: dec("100.00"), PeriodAccountedCredit: dec("20.00")},
		{PeriodName: "Mar-2026", PeriodAccountedDebit: dec("50.00"), PeriodAccountedCredit: dec("10.00")},
	}

	suite.mockLedgerRepo.On("FindPeriodByName", ctx, suite.ledgerID, "Mar-2026").Return(&march, nil).Once()
	suite.mockLedgerRepo.On("ListPeriodsThrough", ctx, suite.ledgerID, 2026, "Mar-2026").Return(periods, nil).Once()
	suite.mockBalanceRepo.On("ListBalancesForPeriods", ctx, suite.ledgerID, suite.combinationID, "USD",
		[]string{"Jan-2026", "Feb-2026", "Mar-2026"}).Return(cells, nil).Once()

	net, err := suite.service.GetYearToDateNet(ctx, suite.ledgerID, suite.combinationID, "USD", "Mar-2026")

	suite.Require().NoError(err)
	// 80 from January plus 40 from March; February has no activity.
	suite.True(net.Equal(dec("120.00")))
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetYearToDateNet_NoActivityIsZero() {
	ctx := context.Background()
	jan := suite.period("Jan-2026", 2026, time.January)

	suite.mockLedgerRepo.On("FindPeriodByName", ctx, suite.ledgerID, "Jan-2026").Return(&jan, nil).Once()
	suite.mockLedgerRepo.On("ListPeriodsThrough", ctx, suite.ledgerID, 2026, "Jan-2026").Return([]domain.Period{jan}, nil).Once()
	suite.mockBalanceRepo.On("ListBalancesForPeriods", ctx, suite.ledgerID, suite.combinationID, "USD",
		[]string{"Jan-2026"}).Return([]domain.Balance{}, nil).Once()

	net, err := suite.service.GetYearToDateNet(ctx, suite.ledgerID, suite.combinationID, "USD", "Jan-2026")

	suite.Require().NoError(err)
	suite.True(net.IsZero())
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
