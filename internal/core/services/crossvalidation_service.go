package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finware/glcore/internal/apperrors"
	"github.com/finware/glcore/internal/core/domain"
	portsrepo "github.com/finware/glcore/internal/core/ports/repositories"
	portssvc "github.com/finware/glcore/internal/core/ports/services"
	"github.com/finware/glcore/internal/ctxlog"
	"github.com/finware/glcore/internal/utils/matching"
)

// crossValidationService enforces cross-validation rules at line-validation
// time, before a journal may be posted.
type crossValidationService struct {
	ruleRepo   portsrepo.CrossValidationRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewCrossValidationService creates a new CrossValidationService.
func NewCrossValidationService(ruleRepo portsrepo.CrossValidationRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.CrossValidationSvcFacade {
	return &crossValidationService{ruleRepo: ruleRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.CrossValidationSvcFacade = (*crossValidationService)(nil)

// CheckCombination evaluates the ledger's enabled rules in stored sequence
// against the combination's concatenated segments. For each rule whose include
// filter matches, the exclude filter must not match; the first violation is
// reported with the rule's configured error message. When the ledger control
// has CVR enforcement off, the check is bypassed entirely.
func (s *crossValidationService) CheckCombination(ctx context.Context, ledgerID string, combination domain.CodeCombination) error {
	logger := ctxlog.FromContext(ctx)

	control, err := s.ledgerRepo.FindLedgerControl(ctx, ledgerID)
	if err != nil {
		return fmt.Errorf("failed to fetch ledger control for %s: %w", ledgerID, err)
	}
	if !control.EnforceCvr {
		return nil
	}

	rules, err := s.ruleRepo.ListEnabledRules(ctx, ledgerID)
	if err != nil {
		return fmt.Errorf("failed to fetch cross-validation rules for ledger %s: %w", ledgerID, err)
	}

	concatenated := combination.Concatenated()
	for _, rule := range rules {
		if !matching.Match(rule.IncludeFilter, concatenated) {
			continue
		}
		if matching.Match(rule.ExcludeFilter, concatenated) {
			logger.Warn("Cross-validation rule violated",
				slog.String("rule_id", rule.RuleID),
				slog.String("combination", concatenated),
			)
			return fmt.Errorf("%w: rule %q rejects account %s: %s", apperrors.ErrCrossValidationViolation, rule.Name, concatenated, rule.ErrorMessage)
		}
	}
	return nil
}
