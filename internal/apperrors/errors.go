package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// Posting and close-gating errors. These are the typed failures the accounting
// core returns to callers before any mutation takes place.
var (
	// ErrInvalidSegmentValue indicates a segment value that is absent or disabled.
	ErrInvalidSegmentValue = errors.New("invalid segment value")

	// ErrCrossValidationViolation indicates a code combination rejected by a
	// cross-validation rule. The wrapping error carries the rule's message.
	ErrCrossValidationViolation = errors.New("cross-validation rule violation")

	// ErrUnbalancedJournal indicates accounted debits do not equal accounted credits.
	ErrUnbalancedJournal = errors.New("journal is out of balance")

	// ErrEmptyJournal indicates a journal with no lines was submitted for posting.
	ErrEmptyJournal = errors.New("journal has no lines")

	// ErrAlreadyPosted indicates an attempt to post a journal that is already posted.
	ErrAlreadyPosted = errors.New("journal already posted")

	// ErrPeriodNotOpen indicates the journal's period does not accept entries.
	ErrPeriodNotOpen = errors.New("period is not open for posting")

	// ErrFutureDatedEntryBlocked indicates future-dated entry is disabled on the ledger.
	ErrFutureDatedEntryBlocked = errors.New("future-dated entry is blocked")

	// ErrPriorPeriodEntryBlocked indicates prior-period entry is disabled on the ledger.
	ErrPriorPeriodEntryBlocked = errors.New("prior-period entry is blocked")

	// ErrApprovalRequired indicates the journal amount exceeds the approval limit
	// without a recorded approval.
	ErrApprovalRequired = errors.New("journal requires approval before posting")

	// ErrRateNotFound indicates no daily rate exists for the currency pair and date.
	ErrRateNotFound = errors.New("daily rate not found")

	// ErrCloseBlocked indicates the period cannot close while required tasks or
	// blocking exceptions remain outstanding.
	ErrCloseBlocked = errors.New("period close is blocked")
)

// AppError wraps a lower-level error with a status code and message. Used by the
// repository layer so database failures surface with context attached.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation via errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
