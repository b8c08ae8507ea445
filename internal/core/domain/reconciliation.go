package domain

import "github.com/shopspring/decimal"

// Subledger identifies a tracked detail ledger whose control-account total
// must reconcile to the GL.
type Subledger string

const (
	SubledgerPayables    Subledger = "AP"
	SubledgerReceivables Subledger = "AR"
)

// ReconciliationRow compares one subledger's independently-summed open-item
// total against the corresponding GL control-account balance for a period.
// Computed on demand; never persisted.
type ReconciliationRow struct {
	Subledger            Subledger       `json:"subledger"`
	ControlCombinationID string          `json:"controlCombinationID"`
	SubledgerBalance     decimal.Decimal `json:"subledgerBalance"`
	GLBalance            decimal.Decimal `json:"glBalance"`
	Variance             decimal.Decimal `json:"variance"`
	WithinTolerance      bool            `json:"withinTolerance"`
}
