package models

// SegmentValue represents a row in the segment_values table. The natural key
// is (chart_of_accounts_id, segment_index, value).
type SegmentValue struct {
	ChartOfAccountsID string `json:"chartOfAccountsID"`
	SegmentIndex      int    `json:"segmentIndex"`
	Value             string `json:"value"`
	Description       string `json:"description"`
	Enabled           bool   `json:"enabled"`
	AuditFields
}

// CodeCombination represents a row in the code_combinations table. Segments
// are stored as a text[] column; the tuple carries a uniqueness constraint so
// concurrent first-use cannot mint duplicate CCIDs.
type CodeCombination struct {
	CombinationID       string   `json:"combinationID"` // Primary Key (UUID)
	ChartOfAccountsID   string   `json:"chartOfAccountsID"`
	Segments            []string `json:"segments"`
	AccountClass        string   `json:"accountClass"`
	Enabled             bool     `json:"enabled"`
	RevaluationEligible bool     `json:"revaluationEligible"`
	AuditFields
}

// CrossValidationRule represents a row in the cross_validation_rules table.
type CrossValidationRule struct {
	RuleID        string `json:"ruleID"` // Primary Key (UUID)
	LedgerID      string `json:"ledgerID"`
	Name          string `json:"name"`
	Sequence      int    `json:"sequence"`
	IncludeFilter string `json:"includeFilter"`
	ExcludeFilter string `json:"excludeFilter"`
	Enabled       bool   `json:"enabled"`
	ErrorMessage  string `json:"errorMessage"`
	AuditFields
}
