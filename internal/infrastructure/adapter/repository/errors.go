package repository

import (
	"errors"
	"strings"

	errs "github.com/mazebank/transaction-service/internal/domain/error"
	"gorm.io/gorm"
)

// classifyProcedureError maps an error raised by one of the stored
// procedures to a domain error. The procedures signal business rejections
// through RAISE EXCEPTION messages; the original deployment emitted them in
// Spanish, so both spellings are recognized.
func classifyProcedureError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "already registered") ||
		strings.Contains(msg, "ya está registrado") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint"):
		return errs.ErrDuplicateEmail

	case strings.Contains(msg, "insufficient funds") ||
		strings.Contains(msg, "saldo insuficiente"):
		return errs.ErrInsufficientFunds

	case strings.Contains(msg, "instrument not found") ||
		strings.Contains(msg, "card not found") ||
		strings.Contains(msg, "tarjeta no encontrada"):
		return errs.ErrInstrumentNotFound

	case strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no connection") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded"):
		return errs.ErrDatabaseConnection

	default:
		return errs.ErrInternalServer
	}
}

// classifyUserError maps gorm errors from user row operations.
func classifyUserError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	return classifyProcedureError(err)
}
