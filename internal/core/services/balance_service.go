package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
)

// balanceService reads the balances cube. Cells are written only by the
// posting engine; this service owns the derived reads.
type balanceService struct {
	balanceRepo portsrepo.BalanceRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(balanceRepo portsrepo.BalanceRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{balanceRepo: balanceRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetBalance retrieves one cube cell. A cell no posting has touched reads as
// zero rather than not-found.
func (s *balanceService) GetBalance(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, ledgerID, combinationID, currencyCode, periodName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			period, perr := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
			if perr != nil {
				return nil, fmt.Errorf("failed to fetch period %s: %w", periodName, perr)
			}
			return &domain.Balance{
				LedgerID:              ledgerID,
				CombinationID:         combinationID,
				CurrencyCode:          currencyCode,
				PeriodName:            periodName,
				FiscalYear:            period.FiscalYear,
				PeriodEnteredDebit:    decimal.Zero,
				PeriodEnteredCredit:   decimal.Zero,
				PeriodAccountedDebit:  decimal.Zero,
				PeriodAccountedCredit: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}

// GetYearToDateNet computes the accounted year-to-date net as a read-time sum
// over the fiscal year's period cells through the named period. Storing YTD
// would be a second source of truth that concurrent posts could desynchronize.
func (s *balanceService) GetYearToDateNet(ctx context.Context, ledgerID, combinationID, currencyCode, periodName string) (decimal.Decimal, error) {
	period, err := s.ledgerRepo.FindPeriodByName(ctx, ledgerID, periodName)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch period %s: %w", periodName, err)
	}

	periods, err := s.ledgerRepo.ListPeriodsThrough(ctx, ledgerID, period.FiscalYear, periodName)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list fiscal-year periods: %w", err)
	}
	periodNames := make([]string, len(periods))
	for i, p := range periods {
		periodNames[i] = p.Name
	}

	cells, err := s.balanceRepo.ListBalancesForPeriods(ctx, ledgerID, combinationID, currencyCode, periodNames)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list balances: %w", err)
	}

	net := decimal.Zero
	for _, cell := range cells {
		net = net.Add(cell.AccountedNet())
	}
	return net, nil
}
