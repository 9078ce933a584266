package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Base error types
var (
	// ErrMissingFields is returned when required request fields are absent
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidEmail is returned when an email does not match the basic local@domain.tld shape
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrPasswordTooShort is returned when a registration password has fewer than 6 characters
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrInvalidUserID is returned when a user identifier is missing or not numeric
	ErrInvalidUserID = errors.New("user ID must be a positive number")

	// ErrInvalidAmount is returned when a transfer amount is missing, not numeric, or not greater than zero
	ErrInvalidAmount = errors.New("amount must be a number greater than zero")

	// ErrUserNotFound is returned when no user matches a lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on a password mismatch, hashed or legacy
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail is returned when the provisioning procedure reports an already registered email
	ErrDuplicateEmail = errors.New("email is already registered")

	// ErrInstrumentNotFound is returned when the transfer procedure cannot locate the origin instrument
	ErrInstrumentNotFound = errors.New("origin instrument not found")

	// ErrInsufficientFunds is returned when the transfer procedure rejects a debit that exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoChargeHistory is returned when a user has no recorded charges
	ErrNoChargeHistory = errors.New("no charge history for user")

	// ErrNoProcedureResult is returned when a stored procedure completes without returning a row
	ErrNoProcedureResult = errors.New("no data returned by procedure")

	// ErrMailerNotConfigured is returned when the mail capability was never configured at process start
	ErrMailerNotConfigured = errors.New("email service is not configured")

	// ErrMailDelivery is returned when the mail capability reports a delivery failure
	ErrMailDelivery = errors.New("email delivery failed")

	// ErrDatabaseConnection is returned when the relational engine is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatus maps a domain error to the HTTP status the gateway must emit.
func HTTPStatus(err error) int {
	switch {
	case IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInstrumentNotFound),
		errors.Is(err, ErrNoChargeHistory):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// IsValidationError reports whether the error is a malformed-input rejection
// raised before any collaborator call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAmount)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInstrumentNotFound) ||
		errors.Is(err, ErrNoChargeHistory)
}

// ProcedureError wraps a failure raised while executing one of the atomic
// stored procedures, keeping the procedure name for structured logging.
type ProcedureError struct {
	Procedure string
	Err       error
}

// Error implements the error interface for ProcedureError
func (e *ProcedureError) Error() string {
	return fmt.Sprintf("procedure %s failed: %v", e.Procedure, e.Err)
}

// Unwrap returns the underlying error
func (e *ProcedureError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProcedureError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "procedure_error",
		"procedure":  e.Procedure,
		"error":      e.Err.Error(),
	}
}

// NewProcedureError wraps err with the procedure that raised it.
func NewProcedureError(procedure string, err error) error {
	return &ProcedureError{Procedure: procedure, Err: err}
}
