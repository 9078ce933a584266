package receipt

import (
	"context"
	"fmt"

	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/mail"
)

// Service implements usecase.ReceiptUseCase. It is invoked only after the
// caller has already observed transfer success; nothing here can unwind a
// completed transfer.
type Service struct {
	mailer mail.Mailer // nil when mail credentials were absent at startup
	logger coreport.Logger
}

// NewService creates a new receipt notifier. A nil mailer is accepted and
// makes every send report the capability as unconfigured.
func NewService(mailer mail.Mailer, logger coreport.Logger) *Service {
	return &Service{
		mailer: mailer,
		logger: logger,
	}
}

// SendReceipt validates and dispatches one receipt email. Delivery is never
// retried.
func (s *Service) SendReceipt(ctx context.Context, to, subject, htmlBody string) error {
	if s.mailer == nil {
		s.logger.Error("Receipt requested but no mailer is configured", map[string]any{
			"to": to,
		})
		return errs.ErrMailerNotConfigured
	}

	if to == "" || subject == "" || htmlBody == "" {
		return fmt.Errorf("%w: to_email, subject and htmlBody are required", errs.ErrMissingFields)
	}

	if err := s.mailer.Send(ctx, to, subject, htmlBody); err != nil {
		s.logger.Error("Receipt delivery failed", map[string]any{
			"to":    to,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrMailDelivery, err.Error())
	}

	s.logger.Info("Receipt sent", map[string]any{
		"to":      to,
		"subject": subject,
	})
	return nil
}
