package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTemplate represents a row in the recurring_templates table.
type RecurringTemplate struct {
	TemplateID   string     `json:"templateID"` // Primary Key (UUID)
	LedgerID     string     `json:"ledgerID"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CurrencyCode string     `json:"currencyCode"`
	Schedule     string     `json:"schedule"`
	Status       string     `json:"status"`
	NextRunDate  time.Time  `json:"nextRunDate"`
	LastRunDate  *time.Time `json:"lastRunDate,omitempty"` // Nullable until first materialization
	AuditFields
}

// RecurringTemplateLine represents a row in the recurring_template_lines
// table, keyed by (template_id, line_number).
type RecurringTemplateLine struct {
	TemplateID    string          `json:"templateID"`
	LineNumber    int             `json:"lineNumber"`
	CombinationID string          `json:"combinationID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
}
