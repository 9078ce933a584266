package mail

import (
	"context"
	"fmt"

	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/infrastructure/config"
	gomail "github.com/wneessen/go-mail"
)

// SMTPMailer implements the Mailer port over SMTP. One instance is built at
// process start when credentials are present; otherwise the receipt service
// runs without a mailer and reports the capability as unavailable.
type SMTPMailer struct {
	cfg    config.MailConfig
	logger coreport.Logger
}

// NewSMTPMailer creates an SMTP-backed mailer from the mail configuration.
func NewSMTPMailer(cfg config.MailConfig, logger coreport.Logger) (*SMTPMailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp credentials are required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Send delivers one HTML email. Each call dials its own SMTP session; the
// service sends receipts rarely enough that pooling is not worth it.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	msg := gomail.NewMsg()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	if err := msg.FromFormat(m.cfg.FromName, from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	tlsPolicy := gomail.TLSMandatory
	if m.cfg.Insecure {
		tlsPolicy = gomail.TLSOpportunistic
	}

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client init failed: %w", err)
	}

	m.logger.Debug("Dispatching receipt email", map[string]any{
		"host": m.cfg.Host,
		"to":   to,
	})

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
