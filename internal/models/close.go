package models

// CloseTask represents a row in the close_tasks table.
type CloseTask struct {
	TaskID     string `json:"taskID"` // Primary Key (UUID)
	LedgerID   string `json:"ledgerID"`
	PeriodName string `json:"periodName"`
	Sequence   int    `json:"sequence"`
	Name       string `json:"name"`
	Required   bool   `json:"required"`
	Completed  bool   `json:"completed"`
	AuditFields
}
