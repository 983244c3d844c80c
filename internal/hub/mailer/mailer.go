// Package mailer sends transactional email. The only message the service
// sends today is the password reset link, so the interface stays narrow.
package mailer

import "context"

type Mailer interface {
	// SendPasswordReset delivers the reset link to the address. The link
	// embeds the raw reset token; callers must not log it.
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
