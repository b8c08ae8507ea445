package domain

// CrossValidationRule restricts which account combinations may be posted.
// For each enabled rule whose include filter matches a combination, the
// exclude filter must not match; otherwise the combination is rejected with
// the rule's configured error message. Rules are evaluated in Sequence order.
type CrossValidationRule struct {
	RuleID        string `json:"ruleID"`
	LedgerID      string `json:"ledgerID"`
	Name          string `json:"name"`
	Sequence      int    `json:"sequence"`
	IncludeFilter string `json:"includeFilter"` // wildcard pattern over the concatenated segments
	ExcludeFilter string `json:"excludeFilter"`
	Enabled       bool   `json:"enabled"`
	ErrorMessage  string `json:"errorMessage"`
	AuditFields
}
