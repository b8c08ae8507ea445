package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finware/glcore/internal/core/domain"
)

// CreateJournalLineRequest is one line of a journal creation request.
// Amounts are entered in the line's currency (the batch currency unless
// CurrencyCode overrides it); accounted amounts are computed by the posting
// engine via the daily rate. System producers whose amounts are already in
// the ledger currency (revaluation deltas, reversal mirrors) set
// AccountedDebit/AccountedCredit directly and the engine skips the rate
// conversion for that line.
type CreateJournalLineRequest struct {
	CombinationID   string          `json:"combinationID" validate:"required"`
	CurrencyCode    string          `json:"currencyCode,omitempty" validate:"omitempty,len=3"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	AccountedDebit  decimal.Decimal `json:"accountedDebit"`
	AccountedCredit decimal.Decimal `json:"accountedCredit"`
	Description     string          `json:"description"`
}

// CreateJournalRequest creates a journal batch in Draft status.
// ReversedJournalID back-links a reversal to the journal it reverses.
type CreateJournalRequest struct {
	LedgerID          string                     `json:"ledgerID" validate:"required"`
	PeriodName        string                     `json:"periodName" validate:"required"`
	JournalDate       time.Time                  `json:"journalDate" validate:"required"`
	Description       string                     `json:"description" validate:"required"`
	CurrencyCode      string                     `json:"currencyCode" validate:"required,len=3"`
	Source            domain.JournalSource       `json:"source"`
	Category          domain.JournalCategory     `json:"category"`
	AutoReverse       bool                       `json:"autoReverse"`
	ReversedJournalID *string                    `json:"reversedJournalID,omitempty"`
	Lines             []CreateJournalLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// JournalLineResponse mirrors a persisted journal line.
type JournalLineResponse struct {
	LineID          string          `json:"lineID"`
	LineNumber      int             `json:"lineNumber"`
	CombinationID   string          `json:"combinationID"`
	CurrencyCode    string          `json:"currencyCode"`
	EnteredDebit    decimal.Decimal `json:"enteredDebit"`
	EnteredCredit   decimal.Decimal `json:"enteredCredit"`
	AccountedDebit  decimal.Decimal `json:"accountedDebit"`
	AccountedCredit decimal.Decimal `json:"accountedCredit"`
	Description     string          `json:"description"`
}

// JournalResponse mirrors a journal batch header.
type JournalResponse struct {
	JournalID          string                `json:"journalID"`
	LedgerID           string                `json:"ledgerID"`
	PeriodName         string                `json:"periodName"`
	JournalDate        time.Time             `json:"journalDate"`
	Description        string                `json:"description"`
	CurrencyCode       string                `json:"currencyCode"`
	Source             domain.JournalSource  `json:"source"`
	Status             domain.JournalStatus  `json:"status"`
	ApprovalStatus     domain.ApprovalStatus `json:"approvalStatus"`
	AutoReverse        bool                  `json:"autoReverse"`
	ReversedJournalID  *string               `json:"reversedJournalID,omitempty"`
	ReversingJournalID *string               `json:"reversingJournalID,omitempty"`
	PostedAt           *time.Time            `json:"postedAt,omitempty"`
	Amount             decimal.Decimal       `json:"amount"`
	Lines              []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalResponse converts a domain journal to its response form.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:          j.JournalID,
		LedgerID:           j.LedgerID,
		PeriodName:         j.PeriodName,
		JournalDate:        j.JournalDate,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		Source:             j.Source,
		Status:             j.Status,
		ApprovalStatus:     j.ApprovalStatus,
		AutoReverse:        j.AutoReverse,
		ReversedJournalID:  j.ReversedJournalID,
		ReversingJournalID: j.ReversingJournalID,
		PostedAt:           j.PostedAt,
		Amount:             j.TotalAccountedDebit,
	}
	for _, line := range j.Lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			LineID:          line.LineID,
			LineNumber:      line.LineNumber,
			CombinationID:   line.CombinationID,
			CurrencyCode:    line.CurrencyCode,
			EnteredDebit:    line.EnteredDebit,
			EnteredCredit:   line.EnteredCredit,
			AccountedDebit:  line.AccountedDebit,
			AccountedCredit: line.AccountedCredit,
			Description:     line.Description,
		})
	}
	return resp
}
