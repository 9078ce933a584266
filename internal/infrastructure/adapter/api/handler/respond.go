package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error onto the HTTP status and envelope the
// client expects. Validation errors surface their own message; everything
// else gets a fixed, non-leaky phrase.
func respondError(c *gin.Context, err error) {
	c.JSON(errs.HTTPStatus(err), dto.Error(errorMessage(err)))
}

func errorMessage(err error) string {
	switch {
	case errs.IsValidationError(err):
		return err.Error()
	case errors.Is(err, errs.ErrUserNotFound):
		return "User is not registered."
	case errors.Is(err, errs.ErrInvalidCredentials):
		return "Invalid credentials."
	case errors.Is(err, errs.ErrDuplicateEmail):
		return "The email is already registered."
	case errors.Is(err, errs.ErrInstrumentNotFound):
		return "Origin card not found."
	case errors.Is(err, errs.ErrInsufficientFunds):
		return "Insufficient funds for this transfer."
	case errors.Is(err, errs.ErrNoChargeHistory):
		return "No charges found for this user."
	case errors.Is(err, errs.ErrNoProcedureResult):
		return "No data returned by the operation."
	case errors.Is(err, errs.ErrMailerNotConfigured):
		return "Server configuration error: the email service is not available."
	case errors.Is(err, errs.ErrMailDelivery):
		return "The email could not be sent."
	default:
		return "Internal server error."
	}
}
