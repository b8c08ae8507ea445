package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleType is the interval at which a recurring template materializes.
type ScheduleType string

const (
	ScheduleWeekly    ScheduleType = "WEEKLY"
	ScheduleMonthly   ScheduleType = "MONTHLY"
	ScheduleQuarterly ScheduleType = "QUARTERLY"
	ScheduleAnnually  ScheduleType = "ANNUALLY"
)

// TemplateStatus gates whether a template is picked up by the generator.
type TemplateStatus string

const (
	TemplateActive   TemplateStatus = "ACTIVE"
	TemplateInactive TemplateStatus = "INACTIVE"
)

// RecurringTemplate materializes Draft journals on a schedule. Generated
// journals are never auto-posted; scheduling and commitment stay separate.
type RecurringTemplate struct {
	TemplateID   string         `json:"templateID"`
	LedgerID     string         `json:"ledgerID"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	CurrencyCode string         `json:"currencyCode"`
	Schedule     ScheduleType   `json:"schedule"`
	Status       TemplateStatus `json:"status"`
	NextRunDate  time.Time      `json:"nextRunDate"`
	LastRunDate  *time.Time     `json:"lastRunDate,omitempty"`
	AuditFields
	Lines []RecurringTemplateLine `json:"lines,omitempty"`
}

// RecurringTemplateLine is the stored line template copied onto each
// materialized journal.
type RecurringTemplateLine struct {
	TemplateID    string          `json:"templateID"`
	LineNumber    int             `json:"lineNumber"`
	CombinationID string          `json:"combinationID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
}

// NextRunAfter advances from onto the following scheduled run date.
func (t RecurringTemplate) NextRunAfter(from time.Time) time.Time {
	switch t.Schedule {
	case ScheduleWeekly:
		return from.AddDate(0, 0, 7)
	case ScheduleQuarterly:
		return from.AddDate(0, 3, 0)
	case ScheduleAnnually:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}
