package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/mailer"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/slogx"
)

// DefaultResetTTL is how long a password reset link stays valid.
const DefaultResetTTL = time.Hour

var (
	ErrInvalidResetToken = errors.New("invalid_reset_token")
	ErrMailDelivery      = errors.New("mail_delivery_failed")
)

// PasswordResetService implements the forgot-password flow. Only a SHA-256
// fingerprint of the reset token is stored; the raw token travels once, in
// the emailed link.
type PasswordResetService struct {
	Store    store.Store
	Sessions *SessionService
	Mailer   mailer.Mailer

	// BaseURL is the public origin used to build reset links.
	BaseURL string

	// TTL defaults to DefaultResetTTL when zero.
	TTL time.Duration
}

func (s *PasswordResetService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultResetTTL
}

// RequestReset issues a reset token for the address and mails the link.
// Unknown addresses return nil so the endpoint cannot be used to probe for
// accounts. Requesting again overwrites any outstanding token; last write
// wins. If mail delivery fails the token is cleared again so no usable token
// lingers for a link the user never received.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	// Addresses are stored normalized; look them up the same way so the
	// form accepts whatever casing the user types.
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("password reset requested for unknown address")
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}
	fingerprint := cryptox.FingerprintToken(token)

	if err := s.Store.Users().SetResetToken(ctx, user.ID, fingerprint, time.Now().Add(s.ttl())); err != nil {
		return err
	}

	resetURL := s.BaseURL + "/reset-password/" + token
	if err := s.Mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		l.Error("reset mail delivery failed", slog.Any("error", err))
		if clearErr := s.Store.Users().ClearResetToken(ctx, user.ID); clearErr != nil {
			l.Error("failed to clear reset token after delivery failure", slog.Any("error", clearErr))
		}
		return ErrMailDelivery
	}

	l.Info("password reset mail sent", slog.String("user_id", user.ID))
	return nil
}

// ResetPassword consumes a reset token and sets a new password. Unknown and
// expired tokens are indistinguishable to the caller; expired tokens are
// cleared on sight. On success the password update and the token clear land
// in one statement, and every session of the user is invalidated.
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	user, err := s.Store.Users().GetUserByResetTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if !user.HasActiveResetToken(time.Now()) {
		_ = s.Store.Users().ClearResetToken(ctx, user.ID)
		return ErrInvalidResetToken
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordAndClearResetToken(ctx, user.ID, hash); err != nil {
			return err
		}
		return tx.Sessions().DeleteUserSessions(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset completed", slog.String("user_id", user.ID))
	return nil
}
