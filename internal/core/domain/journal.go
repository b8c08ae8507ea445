package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal batch.
// DRAFT -> POSTED is the one-way success path; DRAFT -> VOID abandons the
// journal with no balance effect.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// JournalSource identifies the producer of a journal. Every producer feeds the
// same posting engine; sources are a tag, not subtypes.
type JournalSource string

const (
	SourceManual      JournalSource = "MANUAL"
	SourceRevaluation JournalSource = "REVALUATION"
	SourceRecurring   JournalSource = "RECURRING"
	SourceReversal    JournalSource = "REVERSAL"
)

// JournalCategory classifies the business nature of a journal.
type JournalCategory string

const (
	CategoryStandard   JournalCategory = "STANDARD"
	CategoryAdjustment JournalCategory = "ADJUSTMENT"
	CategoryClosing    JournalCategory = "CLOSING"
)

// ApprovalStatus records whether a journal above the ledger's approval limit
// has a recorded approval.
type ApprovalStatus string

const (
	ApprovalNotRequired ApprovalStatus = "NOT_REQUIRED"
	ApprovalPending     ApprovalStatus = "PENDING"
	ApprovalApproved    ApprovalStatus = "APPROVED"
)

// Journal is a batch header for a balanced set of journal lines.
// Immutable once Posted; the only legal follow-ons are generating its
// reversal or including it in revaluation.
type Journal struct {
	JournalID      string          `json:"journalID"`
	LedgerID       string          `json:"ledgerID"`
	PeriodName     string          `json:"periodName"`
	JournalDate    time.Time       `json:"journalDate"`
	Description    string          `json:"description"`
	CurrencyCode   string          `json:"currencyCode"` // transaction currency of the batch
	Source         JournalSource   `json:"source"`
	Category       JournalCategory `json:"category"`
	Status         JournalStatus   `json:"status"`
	ApprovalStatus ApprovalStatus  `json:"approvalStatus"`
	AutoReverse    bool            `json:"autoReverse"`
	// ReversedJournalID links a reversal back to the journal it reverses.
	ReversedJournalID *string `json:"reversedJournalID,omitempty"`
	// ReversingJournalID links a posted journal forward to its reversal.
	ReversingJournalID *string    `json:"reversingJournalID,omitempty"`
	PostedAt           *time.Time `json:"postedAt,omitempty"`
	// TotalAccountedDebit is the accounted debit sum across lines; for a
	// balanced journal it equals the credit sum and represents the journal amount.
	TotalAccountedDebit decimal.Decimal `json:"totalAccountedDebit"`
	AuditFields
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single debit or credit against one code combination.
// A line carries a debit or a credit, never both; amounts are non-negative.
// Entered amounts are in the transaction currency, accounted amounts in the
// ledger currency.
type JournalLine struct {
	LineID          string          `json:"lineID"`
	JournalID       string          `json:"journalID"`
	LineNumber      int             `json:"lineNumber"`
	CombinationID   string          `json:"combinationID"`
	CurrencyCode    string          `json:"currencyCode"`
	EnteredDebit    decimal.Decimal `json:"enteredDebit"`
	EnteredCredit   decimal.Decimal `json:"enteredCredit"`
	AccountedDebit  decimal.Decimal `json:"accountedDebit"`
	AccountedCredit decimal.Decimal `json:"accountedCredit"`
	Description     string          `json:"description"`
	AuditFields
}
