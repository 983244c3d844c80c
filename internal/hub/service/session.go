package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/slogx"
)

const (
	// DefaultSessionTTL is the absolute lifetime of a session. Validation
	// re-stamps the expiry once less than half of it remains, so an active
	// user is never logged out.
	DefaultSessionTTL = 30 * 24 * time.Hour

	// SessionCookieName carries the opaque session token.
	SessionCookieName = "hub_session"
)

var ErrInvalidSession = errors.New("invalid_session")

// SessionService issues and validates opaque cookie sessions. It is plain
// dependency-injected state so tests can construct as many as they like.
type SessionService struct {
	Store store.Store

	// TTL defaults to DefaultSessionTTL when zero.
	TTL time.Duration

	// Secure marks issued cookies Secure; off only for local development.
	Secure bool
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultSessionTTL
}

// Create mints a new session for the user. The session ID doubles as the
// bearer token, so it is generated with the full 256-bit token size.
func (s *SessionService) Create(ctx context.Context, userID string) (domain.Session, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Validate resolves a session token to its user. It fails closed: any store
// error, unknown token, or expired session yields ErrInvalidSession. Expired
// sessions are deleted on sight. When less than half the TTL remains the
// expiry is re-stamped and Fresh is set so the caller reissues the cookie.
func (s *SessionService) Validate(ctx context.Context, sessionID string) (domain.User, domain.Session, error) {
	if sessionID == "" {
		return domain.User{}, domain.Session{}, ErrInvalidSession
	}

	session, user, err := s.Store.Sessions().GetSessionWithUser(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("session lookup failed", slog.Any("error", err))
		}
		return domain.User{}, domain.Session{}, ErrInvalidSession
	}

	now := time.Now()
	if session.Expired(now) {
		_ = s.Store.Sessions().DeleteSession(ctx, session.ID)
		return domain.User{}, domain.Session{}, ErrInvalidSession
	}

	if session.ExpiresAt.Sub(now) < s.ttl()/2 {
		session.ExpiresAt = now.Add(s.ttl())
		session.Fresh = true
		if err := s.Store.Sessions().RefreshSession(ctx, session.ID, session.ExpiresAt); err != nil {
			return domain.User{}, domain.Session{}, ErrInvalidSession
		}
	}

	return user, session, nil
}

// Invalidate removes a single session. Unknown tokens are not an error so
// logout is idempotent.
func (s *SessionService) Invalidate(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().DeleteSession(ctx, sessionID)
}

// InvalidateAll removes every session of a user. Used after a password reset.
func (s *SessionService) InvalidateAll(ctx context.Context, userID string) error {
	return s.Store.Sessions().DeleteUserSessions(ctx, userID)
}

// SessionCookie builds the Set-Cookie directive for a session. No Max-Age is
// set; the server-side expiry is authoritative and the cookie lives until the
// browser session ends or it is replaced.
func (s *SessionService) SessionCookie(session domain.Session) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// BlankSessionCookie builds the cookie that clears the session on logout.
func (s *SessionService) BlankSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
