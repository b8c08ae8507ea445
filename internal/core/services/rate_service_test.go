package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/core/services"
	"github.com/finware/glcore/internal/dto"
)

type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockRateRepository
	service      portssvc.RateSvcFacade

	actorID string
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.service = services.NewRateService(suite.mockRateRepo)
	suite.actorID = "rate-loader"
}

func (suite *RateServiceTestSuite) request() dto.UpsertRateRequest {
	return dto.UpsertRateRequest{
		FromCurrencyCode: "EUR",
		ToCurrencyCode:   "USD",
		ConversionType:   domain.ConversionCorporate,
		RateDate:         time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Rate:             dec("1.0857"),
	}
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_Success() {
	ctx := context.Background()
	req := suite.request()

	suite.mockRateRepo.On("SaveDailyRate", ctx, mock.MatchedBy(func(rate domain.DailyRate) bool {
		return rate.FromCurrencyCode == "EUR" &&
			rate.ToCurrencyCode == "USD" &&
			rate.ConversionType == domain.ConversionCorporate &&
			rate.RateDate.Equal(req.RateDate) &&
			rate.Rate.Equal(dec("1.0857")) &&
			rate.CreatedBy == suite.actorID
	})).Return(nil).Once()

	saved, err := suite.service.UpsertDailyRate(ctx, req, suite.actorID)

	suite.Require().NoError(err)
	suite.Equal("EUR", saved.FromCurrencyCode)
	suite.True(saved.Rate.Equal(dec("1.0857")))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_SamePairRejected() {
	req := suite.request()
	req.ToCurrencyCode = "EUR"

	_, err := suite.service.UpsertDailyRate(context.Background(), req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveDailyRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_UnknownConversionType() {
	req := suite.request()
	req.ConversionType = "FORWARD"

	_, err := suite.service.UpsertDailyRate(context.Background(), req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_NonPositiveRate() {
	req := suite.request()
	req.Rate = dec("0")

	_, err := suite.service.UpsertDailyRate(context.Background(), req, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveDailyRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_InvalidRequest() {
	_, err := suite.service.UpsertDailyRate(context.Background(), dto.UpsertRateRequest{}, suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestUpsertDailyRate_RepoFailurePropagates() {
	ctx := context.Background()

	suite.mockRateRepo.On("SaveDailyRate", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.UpsertDailyRate(ctx, suite.request(), suite.actorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
