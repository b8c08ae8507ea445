package domain

import "strings"

// SegmentDelimiter joins segment values into the concatenated account string.
const SegmentDelimiter = "-"

// AccountClass is the fundamental accounting classification carried by a
// code combination's natural account segment.
type AccountClass string

const (
	ClassAsset     AccountClass = "ASSET"
	ClassLiability AccountClass = "LIABILITY"
	ClassEquity    AccountClass = "EQUITY"
	ClassRevenue   AccountClass = "REVENUE"
	ClassExpense   AccountClass = "EXPENSE"
)

// SegmentValue is one valid value for a chart-of-accounts segment.
// Values are disabled rather than deleted to preserve history.
type SegmentValue struct {
	ChartOfAccountsID string `json:"chartOfAccountsID"`
	SegmentIndex      int    `json:"segmentIndex"`
	Value             string `json:"value"`
	Description       string `json:"description"`
	Enabled           bool   `json:"enabled"`
	AuditFields
}

// CodeCombination is the resolved, immutable identifier (CCID) for one valid
// combination of chart-of-account segment values. Created on first use and
// never deleted; disabled combinations remain resolvable for history but are
// rejected for new postings.
type CodeCombination struct {
	CombinationID       string       `json:"combinationID"`
	ChartOfAccountsID   string       `json:"chartOfAccountsID"`
	Segments            []string     `json:"segments"`
	AccountClass        AccountClass `json:"accountClass"`
	Enabled             bool         `json:"enabled"`
	RevaluationEligible bool         `json:"revaluationEligible"`
	AuditFields
}

// Concatenated returns the segments joined by the segment delimiter,
// e.g. "20-100-25000". Cross-validation filters match against this form.
func (c CodeCombination) Concatenated() string {
	return strings.Join(c.Segments, SegmentDelimiter)
}
