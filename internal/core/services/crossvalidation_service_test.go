package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/core/services"
)

type CrossValidationServiceTestSuite struct {
	suite.Suite
	mockRuleRepo   *MockCrossValidationRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.CrossValidationSvcFacade

	ledgerID string
}

func (suite *CrossValidationServiceTestSuite) SetupTest() {
	suite.mockRuleRepo = new(MockCrossValidationRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewCrossValidationService(suite.mockRuleRepo, suite.mockLedgerRepo)
	suite.ledgerID = "ledger-1"
}

func (suite *CrossValidationServiceTestSuite) control(enforce bool) *domain.LedgerControl {
	return &domain.LedgerControl{LedgerID: suite.ledgerID, EnforceCvr: enforce}
}

func (suite *CrossValidationServiceTestSuite) combination(segments ...string) domain.CodeCombination {
	return domain.CodeCombination{CombinationID: "ccid-1", Segments: segments, Enabled: true}
}

// Department 20 may not use account 25000: include "20*", exclude "*5000".
func (suite *CrossValidationServiceTestSuite) restrictedRule() domain.CrossValidationRule {
	return domain.CrossValidationRule{
		RuleID:        "rule-1",
		LedgerID:      suite.ledgerID,
		Name:          "No intercompany payables for dept 20",
		Sequence:      1,
		IncludeFilter: "20*",
		ExcludeFilter: "*5000",
		Enabled:       true,
		ErrorMessage:  "department 20 may not post to intercompany payables",
	}
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_Violation() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(true), nil).Once()
	suite.mockRuleRepo.On("ListEnabledRules", ctx, suite.ledgerID).Return([]domain.CrossValidationRule{suite.restrictedRule()}, nil).Once()

	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("20", "100", "25000"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCrossValidationViolation)
	suite.Contains(err.Error(), "department 20 may not post to intercompany payables")
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_ExcludeDoesNotMatch() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(true), nil).Once()
	suite.mockRuleRepo.On("ListEnabledRules", ctx, suite.ledgerID).Return([]domain.CrossValidationRule{suite.restrictedRule()}, nil).Once()

	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("20", "100", "26000"))

	suite.Require().NoError(err)
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_IncludeDoesNotMatch() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(true), nil).Once()
	suite.mockRuleRepo.On("ListEnabledRules", ctx, suite.ledgerID).Return([]domain.CrossValidationRule{suite.restrictedRule()}, nil).Once()

	// Dept 30 is outside the rule's include filter entirely.
	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("30", "100", "25000"))

	suite.Require().NoError(err)
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_FirstViolationWins() {
	ctx := context.Background()
	first := suite.restrictedRule()
	second := domain.CrossValidationRule{
		RuleID:        "rule-2",
		Sequence:      2,
		IncludeFilter: "*",
		ExcludeFilter: "20*",
		Enabled:       true,
		ErrorMessage:  "second rule message",
	}

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(true), nil).Once()
	suite.mockRuleRepo.On("ListEnabledRules", ctx, suite.ledgerID).Return([]domain.CrossValidationRule{first, second}, nil).Once()

	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("20", "100", "25000"))

	suite.Require().Error(err)
	suite.Contains(err.Error(), first.ErrorMessage)
	suite.NotContains(err.Error(), second.ErrorMessage)
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_BypassWhenEnforcementOff() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(false), nil).Once()

	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("20", "100", "25000"))

	suite.Require().NoError(err)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "ListEnabledRules", mock.Anything, mock.Anything)
}

func (suite *CrossValidationServiceTestSuite) TestCheckCombination_EmptyExcludeNeverFires() {
	ctx := context.Background()
	rule := suite.restrictedRule()
	rule.ExcludeFilter = ""

	suite.mockLedgerRepo.On("FindLedgerControl", ctx, suite.ledgerID).Return(suite.control(true), nil).Once()
	suite.mockRuleRepo.On("ListEnabledRules", ctx, suite.ledgerID).Return([]domain.CrossValidationRule{rule}, nil).Once()

	err := suite.service.CheckCombination(ctx, suite.ledgerID, suite.combination("20", "100", "25000"))

	suite.Require().NoError(err)
}

func TestCrossValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrossValidationServiceTestSuite))
}
