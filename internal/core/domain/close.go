package domain

// CloseTask is one required checklist item for closing a (ledger, period).
type CloseTask struct {
	TaskID     string `json:"taskID"`
	LedgerID   string `json:"ledgerID"`
	PeriodName string `json:"periodName"`
	Sequence   int    `json:"sequence"`
	Name       string `json:"name"`
	Required   bool   `json:"required"`
	Completed  bool   `json:"completed"`
	AuditFields
}

// CloseStatus is the rollup the close orchestrator gates on. The period may
// transition to Closed only when all required tasks are complete and no
// blocking exceptions remain.
type CloseStatus struct {
	LedgerID           string `json:"ledgerID"`
	PeriodName         string `json:"periodName"`
	TotalTasks         int    `json:"totalTasks"`
	CompletedTasks     int    `json:"completedTasks"`
	UnpostedJournals   int    `json:"unpostedJournals"`
	ReconciliationGaps int    `json:"reconciliationGaps"`
}

// BlockingExceptions is the count of conditions that block the close gate.
func (s CloseStatus) BlockingExceptions() int {
	return s.UnpostedJournals + s.ReconciliationGaps
}

// CanClose is the single gating predicate for the Closed transition.
func (s CloseStatus) CanClose() bool {
	return s.CompletedTasks == s.TotalTasks && s.BlockingExceptions() == 0
}
