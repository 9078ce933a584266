package mail

import "context"

// Mailer is the opaque send capability behind receipt delivery.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
