package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the use cases unwraps to one of these,
// so adapters can map them without knowing each specific error.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflict")
	ErrExternalService   = errors.New("external service failure")
	ErrInconsistentState = errors.New("inconsistent state")
)

// DomainError is a specific, comparable error that belongs to a kind.
type DomainError struct {
	kind error
	msg  string
}

func newDomainError(kind error, msg string) *DomainError {
	return &DomainError{kind: kind, msg: msg}
}

func (e *DomainError) Error() string { return e.msg }
func (e *DomainError) Unwrap() error { return e.kind }

var (
	ErrFreightNotFound     = newDomainError(ErrNotFound, "freight not found")
	ErrClientNotFound      = newDomainError(ErrNotFound, "client not found")
	ErrDriverNotFound      = newDomainError(ErrNotFound, "driver not found")
	ErrTransactionNotFound = newDomainError(ErrNotFound, "transaction not found")
	ErrEvidenceNotFound    = newDomainError(ErrNotFound, "delivery proof not found")

	ErrInvalidFreightID      = newDomainError(ErrValidation, "invalid freight id")
	ErrInvalidClientID       = newDomainError(ErrValidation, "invalid client id")
	ErrInvalidDriverID       = newDomainError(ErrValidation, "invalid driver id")
	ErrInvalidTransactionID  = newDomainError(ErrValidation, "invalid transaction id")
	ErrInvalidRoute          = newDomainError(ErrValidation, "origin and destination are required")
	ErrInvalidSchedule       = newDomainError(ErrValidation, "pickup and delivery dates are required")
	ErrInvalidAmount         = newDomainError(ErrValidation, "invalid amount")
	ErrMissingReason         = newDomainError(ErrValidation, "rejection reason is required")
	ErrInsufficientEvidence  = newDomainError(ErrValidation, "minimum of 3 delivery proofs required")
	ErrInvalidTaxID          = newDomainError(ErrValidation, "invalid tax id")
	ErrInvalidName           = newDomainError(ErrValidation, "name is required")
	ErrInvalidDriverStatus   = newDomainError(ErrValidation, "invalid driver status")
	ErrInvalidTransaction    = newDomainError(ErrValidation, "invalid transaction")
	ErrBillingWithoutClient  = newDomainError(ErrValidation, "freight has no client linked")
	ErrFreightNotDelivered   = newDomainError(ErrValidation, "freight not delivered")
	ErrInvalidBillingValue   = newDomainError(ErrValidation, "invalid billing value")
	ErrInvalidDueDate        = newDomainError(ErrValidation, "invalid due date")
	ErrInvalidDrilldown      = newDomainError(ErrValidation, "invalid drilldown filter")
	ErrInvalidStatus         = newDomainError(ErrValidation, "status is required")
	ErrInvalidPaymentID      = newDomainError(ErrValidation, "invalid payment id")
	ErrInvalidPeriod         = newDomainError(ErrValidation, "invalid period")
	ErrInvalidDocumentKind   = newDomainError(ErrValidation, "invalid document kind")
	ErrEmptyFile             = newDomainError(ErrValidation, "file is empty")
	ErrTransitionNotAllowed  = newDomainError(ErrConflict, "status transition not allowed")
	ErrBoletoAlreadyIssued   = newDomainError(ErrConflict, "boleto already issued for this freight")
	ErrClientTaxIDExists     = newDomainError(ErrConflict, "client tax id already registered")
	ErrDriverTaxIDExists     = newDomainError(ErrConflict, "driver tax id already registered")
	ErrPaymentGatewayMissing = newDomainError(ErrExternalService, "payment gateway not configured")
)

// externalServiceError wraps a gateway failure so it matches ErrExternalService
// while keeping the original cause reachable.
func externalServiceError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrExternalService, cause)
}

// InconsistentStateError reports that the payment gateway accepted a boleto but
// the local commit failed. The boleto exists externally and must be reconciled.
type InconsistentStateError struct {
	FreightID  string
	IntentID   string
	ExternalID string
	Cause      error
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("boleto %s issued for freight %s but local commit failed (intent %s): %v",
		e.ExternalID, e.FreightID, e.IntentID, e.Cause)
}

func (e *InconsistentStateError) Unwrap() []error {
	return []error{ErrInconsistentState, e.Cause}
}
