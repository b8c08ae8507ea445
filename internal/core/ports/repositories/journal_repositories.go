package repositories

import (
	"context"
	"time"

	"github.com/finware/glcore/internal/core/domain"
)

// JournalRepositoryFacade persists journal batches and performs the atomic
// post. PostJournal is the only write path into the balances cube.
type JournalRepositoryFacade interface {
	// SaveJournal persists a Draft journal header with its lines in one
	// transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// FindJournalByID retrieves a journal header (without lines).
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves a journal's lines in line-number order.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// PostJournal atomically flips the journal from Draft to Posted and applies
	// the balance deltas to the cube in the same transaction. The status flip
	// is guarded on Draft, so a concurrent double post surfaces as
	// apperrors.ErrAlreadyPosted with no balance effect.
	PostJournal(ctx context.Context, journalID string, postedAt time.Time, postedBy string, deltas []domain.BalanceDelta) error

	// VoidJournal flips a Draft journal to Void. No balance effect.
	VoidJournal(ctx context.Context, journalID string, updatedBy string, updatedAt time.Time) error

	// SetAutoReverse flips the auto-reverse flag on a Draft journal.
	SetAutoReverse(ctx context.Context, journalID string, autoReverse bool, updatedBy string, updatedAt time.Time) error

	// SetApprovalStatus records an approval decision on the journal header.
	SetApprovalStatus(ctx context.Context, journalID string, status domain.ApprovalStatus, updatedBy string, updatedAt time.Time) error

	// SetReversalLink stamps the original journal with the ID of the journal
	// reversing it.
	SetReversalLink(ctx context.Context, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error

	// ListAutoReverseCandidates lists posted journals in the period flagged
	// auto-reverse that no reversal links back to yet.
	ListAutoReverseCandidates(ctx context.Context, ledgerID, periodName string) ([]domain.Journal, error)

	// CountDraftJournals counts unposted journals in the period. Feeds the
	// close orchestrator's blocking-exception rollup.
	CountDraftJournals(ctx context.Context, ledgerID, periodName string) (int, error)
}
