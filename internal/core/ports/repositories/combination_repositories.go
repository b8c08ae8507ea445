package repositories

import (
	"context"
	"time"

	"github.com/finware/glcore/internal/core/domain"
)

// SegmentKey identifies one segment-value lookup: the position in the
// combination plus the value itself.
type SegmentKey struct {
	Index int
	Value string
}

// CombinationRepositoryFacade provides access to segment values and code
// combinations.
type CombinationRepositoryFacade interface {
	// FindSegmentValues retrieves the catalog rows for the given segment tuple.
	// Missing values are simply absent from the result map.
	FindSegmentValues(ctx context.Context, chartOfAccountsID string, segments []string) (map[SegmentKey]domain.SegmentValue, error)

	// FindCombinationBySegments retrieves an existing combination for the tuple.
	FindCombinationBySegments(ctx context.Context, chartOfAccountsID string, segments []string) (*domain.CodeCombination, error)

	// FindCombinationByID retrieves a combination by CCID.
	FindCombinationByID(ctx context.Context, combinationID string) (*domain.CodeCombination, error)

	// FindCombinationsByIDs batch-retrieves combinations keyed by CCID.
	FindCombinationsByIDs(ctx context.Context, combinationIDs []string) (map[string]domain.CodeCombination, error)

	// SaveCombination inserts the combination under the tuple uniqueness
	// constraint. On conflict it fetches and returns the winner, so concurrent
	// first-use of the same tuple never yields duplicate CCIDs.
	SaveCombination(ctx context.Context, combination domain.CodeCombination) (*domain.CodeCombination, error)

	// SetCombinationEnabled flips the enabled flag. Combinations are never deleted.
	SetCombinationEnabled(ctx context.Context, combinationID string, enabled bool, updatedBy string, updatedAt time.Time) error
}

// CrossValidationRepositoryFacade provides access to a ledger's rule set.
type CrossValidationRepositoryFacade interface {
	// ListEnabledRules returns the ledger's enabled rules ordered by sequence.
	ListEnabledRules(ctx context.Context, ledgerID string) ([]domain.CrossValidationRule, error)
}
