package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal represents a row in the journals table.
type Journal struct {
	JournalID           string          `json:"journalID"` // Primary Key (UUID)
	LedgerID            string          `json:"ledgerID"`
	PeriodName          string          `json:"periodName"`
	JournalDate         time.Time       `json:"journalDate"`
	Description         string          `json:"description"`
	CurrencyCode        string          `json:"currencyCode"`
	Source              string          `json:"source"`
	Category            string          `json:"category"`
	Status              string          `json:"status"`
	ApprovalStatus      string          `json:"approvalStatus"`
	AutoReverse         bool            `json:"autoReverse"`
	ReversedJournalID   *string         `json:"reversedJournalID,omitempty"`  // Nullable, back-link to the journal being reversed
	ReversingJournalID  *string         `json:"reversingJournalID,omitempty"` // Nullable, forward link to the reversal
	PostedAt            *time.Time      `json:"postedAt,omitempty"`           // Nullable, set when status flips to POSTED
	TotalAccountedDebit decimal.Decimal `json:"totalAccountedDebit"`
	AuditFields
}

// JournalLine represents a row in the journal_lines table.
type JournalLine struct {
	LineID          string          `json:"lineID"` // Primary Key (UUID)
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
